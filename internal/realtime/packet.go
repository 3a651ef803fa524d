// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Engine.IO v4 packet types.
const (
	eioOpen    byte = '0'
	eioClose   byte = '1'
	eioPing    byte = '2'
	eioPong    byte = '3'
	eioMessage byte = '4'
	eioUpgrade byte = '5'
	eioNoop    byte = '6'
)

// Socket.IO v5 packet types, carried inside an Engine.IO message.
const (
	sioConnect      byte = '0'
	sioDisconnect   byte = '1'
	sioEvent        byte = '2'
	sioAck          byte = '3'
	sioConnectError byte = '4'
)

// recordSeparator delimits packets in a long-polling payload.
const recordSeparator = "\x1e"

var (
	errEmptyPacket     = errors.New("empty packet")
	errMalformedPacket = errors.New("malformed packet")
)

// handshake is the payload of the Engine.IO open packet.
type handshake struct {
	SID          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval int      `json:"pingInterval"`
	PingTimeout  int      `json:"pingTimeout"`
	MaxPayload   int      `json:"maxPayload"`
}

// packet is a decoded Engine.IO packet. kind is the Socket.IO type when
// engine is eioMessage and zero otherwise.
type packet struct {
	engine byte
	kind   byte
	data   string
}

func decodePacket(raw string) (packet, error) {
	if raw == "" {
		return packet{}, errEmptyPacket
	}

	p := packet{engine: raw[0], data: raw[1:]}
	if p.engine < eioOpen || p.engine > eioNoop {
		return packet{}, fmt.Errorf("%w: engine type %q", errMalformedPacket, p.engine)
	}

	if p.engine == eioMessage {
		if p.data == "" {
			return packet{}, fmt.Errorf("%w: empty message", errMalformedPacket)
		}
		p.kind, p.data = p.data[0], p.data[1:]
		// the default namespace has no "/nsp," prefix; others are not used
		if strings.HasPrefix(p.data, "/") {
			if _, rest, found := strings.Cut(p.data, ","); found {
				p.data = rest
			} else {
				p.data = ""
			}
		}
	}

	return p, nil
}

func decodeHandshake(raw string) (handshake, error) {
	p, err := decodePacket(raw)
	if err != nil {
		return handshake{}, err
	}
	if p.engine != eioOpen {
		return handshake{}, fmt.Errorf("%w: expected open packet, got %q", errMalformedPacket, p.engine)
	}

	var hs handshake
	if err = json.Unmarshal([]byte(p.data), &hs); err != nil {
		return handshake{}, fmt.Errorf("%w: open payload: %v", errMalformedPacket, err)
	}
	return hs, nil
}

func encodeConnect(token string) (string, error) {
	auth, err := json.Marshal(struct {
		Token string `json:"token"`
	}{Token: token})
	if err != nil {
		return "", err
	}
	return string([]byte{eioMessage, sioConnect}) + string(auth), nil
}

func encodeDisconnect() string {
	return string([]byte{eioMessage, sioDisconnect})
}

func encodeEvent(name string, payload any) (string, error) {
	body, err := json.Marshal([]any{name, payload})
	if err != nil {
		return "", fmt.Errorf("encode %q event: %w", name, err)
	}
	return string([]byte{eioMessage, sioEvent}) + string(body), nil
}

// decodeEvent splits `["name", arg...]` into the event name and its
// arguments.
func decodeEvent(data string) (string, []json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal([]byte(data), &parts); err != nil {
		return "", nil, fmt.Errorf("%w: event: %v", errMalformedPacket, err)
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("%w: event without name", errMalformedPacket)
	}

	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return "", nil, fmt.Errorf("%w: event name: %v", errMalformedPacket, err)
	}
	return name, parts[1:], nil
}

// connectErrorMessage extracts the "message" of a connect_error payload.
func connectErrorMessage(data string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(data), &payload); err != nil || payload.Message == "" {
		return "connection refused"
	}
	return payload.Message
}

func splitPayload(payload string) []string {
	if payload == "" {
		return nil
	}
	return strings.Split(payload, recordSeparator)
}

func joinPayload(packets []string) string {
	return strings.Join(packets, recordSeparator)
}
