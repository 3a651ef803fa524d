// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

const (
	socketPath      = "/socket.io/"
	protocolVersion = "4"

	TransportWebSocket = "websocket"
	TransportPolling   = "polling"
)

// ErrTransportClosed is returned by transport operations after Close.
var ErrTransportClosed = errors.New("transport closed")

// transport moves raw Engine.IO packets between client and server.
type transport interface {
	// Name returns the Engine.IO transport name.
	Name() string

	// Open performs the Engine.IO handshake and returns the open payload.
	Open(ctx context.Context) (handshake, error)

	// Send writes packets in order.
	Send(ctx context.Context, packets ...string) error

	// Receive blocks until at least one packet arrives.
	Receive(ctx context.Context) ([]string, error)

	// Close releases the underlying connection. It is safe to call more
	// than once.
	Close() error
}

// newTransport builds the transport called name for baseURL.
func newTransport(name, baseURL string, log *logger.Logger) (transport, error) {
	switch name {
	case TransportWebSocket:
		return newWebSocketTransport(baseURL, log)
	case TransportPolling:
		return newPollingTransport(baseURL, log)
	default:
		return nil, fmt.Errorf("unknown realtime transport %q", name)
	}
}

// endpointURL returns the Engine.IO endpoint on baseURL for transport name,
// switching the scheme to ws/wss for websockets.
func endpointURL(baseURL, name string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse realtime base url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("realtime base url %q has no host", baseURL)
	}

	if name == TransportWebSocket {
		switch u.Scheme {
		case "https", "wss":
			u.Scheme = "wss"
		default:
			u.Scheme = "ws"
		}
	}

	u.Path += socketPath
	q := u.Query()
	q.Set("EIO", protocolVersion)
	q.Set("transport", name)
	u.RawQuery = q.Encode()

	return u, nil
}
