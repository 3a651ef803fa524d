// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

const writeWait = 10 * time.Second

type webSocketTransport struct {
	url    string
	dialer *websocket.Dialer

	conn    *websocket.Conn
	writeMu sync.Mutex

	closeOnce sync.Once
	logger    *logger.Logger
}

func newWebSocketTransport(baseURL string, log *logger.Logger) (*webSocketTransport, error) {
	u, err := endpointURL(baseURL, TransportWebSocket)
	if err != nil {
		return nil, err
	}

	return &webSocketTransport{
		url: u.String(),
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		logger: log,
	}, nil
}

func (t *webSocketTransport) Name() string {
	return TransportWebSocket
}

func (t *webSocketTransport) Open(ctx context.Context) (handshake, error) {
	conn, resp, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		if resp != nil {
			return handshake{}, fmt.Errorf("websocket dial %s: status %d: %w", t.url, resp.StatusCode, err)
		}
		return handshake{}, fmt.Errorf("websocket dial %s: %w", t.url, err)
	}
	t.conn = conn

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultHandshakeTimeout)
	}
	_ = conn.SetReadDeadline(deadline)
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })

	_, msg, err := conn.ReadMessage()
	stop()
	if err != nil {
		conn.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return handshake{}, fmt.Errorf("read open packet: %w", ctxErr)
		}
		return handshake{}, fmt.Errorf("read open packet: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})

	hs, err := decodeHandshake(string(msg))
	if err != nil {
		conn.Close()
		return handshake{}, err
	}

	t.logger.Debug().Str("func", "webSocketTransport.Open").Str("sid", hs.SID).Msg("engine.io handshake completed")
	return hs, nil
}

func (t *webSocketTransport) Send(_ context.Context, packets ...string) error {
	if t.conn == nil {
		return ErrTransportClosed
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	for _, p := range packets {
		_ = t.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := t.conn.WriteMessage(websocket.TextMessage, []byte(p)); err != nil {
			return fmt.Errorf("websocket write: %w", err)
		}
	}
	return nil
}

func (t *webSocketTransport) Receive(_ context.Context) ([]string, error) {
	if t.conn == nil {
		return nil, ErrTransportClosed
	}

	_, msg, err := t.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("websocket read: %w", err)
	}
	return []string{string(msg)}, nil
}

func (t *webSocketTransport) Close() error {
	if t.conn == nil {
		return nil
	}

	var err error
	t.closeOnce.Do(func() {
		t.writeMu.Lock()
		_ = t.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		t.writeMu.Unlock()

		err = t.conn.Close()
	})
	return err
}
