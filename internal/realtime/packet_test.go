// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-issue-desk/models"
)

func TestDecodePacket(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want packet
	}{
		{name: "ping", raw: "2", want: packet{engine: eioPing}},
		{name: "close", raw: "1", want: packet{engine: eioClose}},
		{name: "event", raw: `42["a",1]`, want: packet{engine: eioMessage, kind: sioEvent, data: `["a",1]`}},
		{name: "connect ack", raw: `40{"sid":"x"}`, want: packet{engine: eioMessage, kind: sioConnect, data: `{"sid":"x"}`}},
		{name: "namespaced", raw: `42/chat,["a"]`, want: packet{engine: eioMessage, kind: sioEvent, data: `["a"]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePacket(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePacket_Malformed(t *testing.T) {
	_, err := decodePacket("")
	assert.ErrorIs(t, err, errEmptyPacket)

	_, err = decodePacket("9")
	assert.ErrorIs(t, err, errMalformedPacket)

	_, err = decodePacket("4")
	assert.ErrorIs(t, err, errMalformedPacket)
}

func TestDecodeHandshake(t *testing.T) {
	hs, err := decodeHandshake(fakeOpenPacket)
	require.NoError(t, err)
	assert.Equal(t, "eio-1", hs.SID)
	assert.Equal(t, 25000, hs.PingInterval)
	assert.Equal(t, 20000, hs.PingTimeout)

	_, err = decodeHandshake("2")
	assert.ErrorIs(t, err, errMalformedPacket)

	_, err = decodeHandshake("0{not json")
	assert.ErrorIs(t, err, errMalformedPacket)
}

func TestEncodeConnect(t *testing.T) {
	p, err := encodeConnect(`tok"en`)
	require.NoError(t, err)
	assert.Equal(t, `40{"token":"tok\"en"}`, p)
}

func TestEncodeEvent(t *testing.T) {
	p, err := encodeEvent(EventTypingStart, models.TypingNotice{ReceiverID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, `42["typing_start",{"receiverId":"u2"}]`, p)

	_, err = encodeEvent("bad", make(chan int))
	assert.Error(t, err)
}

func TestDecodeEvent(t *testing.T) {
	name, args, err := decodeEvent(`["user_typing",{"userId":"u1"},2]`)
	require.NoError(t, err)
	assert.Equal(t, "user_typing", name)
	require.Len(t, args, 2)

	var ev models.TypingEvent
	require.NoError(t, json.Unmarshal(args[0], &ev))
	assert.Equal(t, "u1", ev.UserID)

	_, _, err = decodeEvent(`[]`)
	assert.ErrorIs(t, err, errMalformedPacket)
	_, _, err = decodeEvent(`[1]`)
	assert.ErrorIs(t, err, errMalformedPacket)
	_, _, err = decodeEvent(`{}`)
	assert.ErrorIs(t, err, errMalformedPacket)
}

func TestConnectErrorMessage(t *testing.T) {
	assert.Equal(t, "Authentication error", connectErrorMessage(`{"message":"Authentication error"}`))
	assert.Equal(t, "connection refused", connectErrorMessage(``))
	assert.Equal(t, "connection refused", connectErrorMessage(`{"data":1}`))
}

func TestPayloadFraming(t *testing.T) {
	assert.Nil(t, splitPayload(""))
	assert.Equal(t, []string{"2", `42["a"]`}, splitPayload("2\x1e42[\"a\"]"))
	assert.Equal(t, "40\x1e2", joinPayload([]string{"40", "2"}))
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		base, transport, want string
	}{
		{"http://localhost:5000", TransportWebSocket, "ws://localhost:5000/socket.io/?EIO=4&transport=websocket"},
		{"https://desk.example.com/", TransportWebSocket, "wss://desk.example.com/socket.io/?EIO=4&transport=websocket"},
		{"http://localhost:5000", TransportPolling, "http://localhost:5000/socket.io/?EIO=4&transport=polling"},
	}

	for _, tt := range tests {
		t.Run(tt.base+" "+tt.transport, func(t *testing.T) {
			u, err := endpointURL(tt.base, tt.transport)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}

	_, err := endpointURL("not a url", TransportPolling)
	assert.Error(t, err)
}

func TestNewTransport_Unknown(t *testing.T) {
	_, err := newTransport("carrier-pigeon", "http://localhost", nil)
	assert.Error(t, err)
}
