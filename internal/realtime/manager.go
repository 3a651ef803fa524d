// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/models"
)

// Manager is the [ConnectionManager] implementation. Construct one per
// process and share it by reference.
type Manager struct {
	baseURL    string
	transports []string

	mu     sync.Mutex
	socket *Socket

	// newTransport is swapped in tests.
	newTransport func(name, baseURL string, log *logger.Logger) (transport, error)

	logger *logger.Logger
}

// NewManager returns a disconnected Manager dialling adapterCfg.BaseURL with
// the transports listed in adapterCfg.RealtimeTransports, in order.
func NewManager(adapterCfg config.ClientAdapter, log *logger.Logger) *Manager {
	transports := adapterCfg.RealtimeTransports
	if len(transports) == 0 {
		transports = config.DefaultRealtimeTransports
	}

	return &Manager{
		baseURL:      adapterCfg.BaseURL,
		transports:   transports,
		newTransport: newTransport,
		logger:       log.Component("realtime"),
	}
}

// Connect implements [ConnectionManager].
//
// Transports are tried in order; a failure to reach the server moves on to
// the next one, while a connect_error from the server is final. A stale
// handle left by a dropped connection is replaced.
func (m *Manager) Connect(ctx context.Context, token string) (*Socket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.socket != nil {
		if m.socket.Connected() {
			return m.socket, nil
		}
		_ = m.socket.Close()
		m.socket = nil
	}

	var errs []error
	for _, name := range m.transports {
		t, err := m.newTransport(name, m.baseURL, m.logger)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		socket, err := dial(ctx, t, token, m.logger)
		if err == nil {
			m.attachLifecycleLogging(socket)
			m.socket = socket
			m.logger.Info().
				Str("event", EventConnect).
				Str("sid", socket.ID()).
				Str("transport", socket.Transport()).
				Msg("Connected to socket server")
			return socket, nil
		}

		var connectErr *ConnectError
		if errors.As(err, &connectErr) {
			m.logger.Error().Str("event", EventConnectError).Str("message", connectErr.Message).Msg("Socket connection error")
			return nil, err
		}

		errs = append(errs, fmt.Errorf("%s: %w", name, err))
		if ctx.Err() != nil {
			break
		}
		m.logger.Warn().Err(err).Str("transport", name).Msg("realtime transport unavailable, trying next")
	}

	err := errors.Join(errs...)
	m.logger.Error().Err(err).Str("event", EventConnectError).Msg("Socket connection error")
	return nil, fmt.Errorf("realtime connect: %w", err)
}

func (m *Manager) attachLifecycleLogging(s *Socket) {
	s.On(EventDisconnect, func(args []json.RawMessage) {
		var reason string
		if len(args) > 0 {
			_ = json.Unmarshal(args[0], &reason)
		}
		m.logger.Info().Str("event", EventDisconnect).Str("reason", reason).Msg("Disconnected from socket server")
	})
	s.On(EventConnectError, func(args []json.RawMessage) {
		var payload struct {
			Message string `json:"message"`
		}
		if len(args) > 0 {
			_ = json.Unmarshal(args[0], &payload)
		}
		m.logger.Error().Str("event", EventConnectError).Str("message", payload.Message).Msg("Socket connection error")
	})
}

// Disconnect implements [ConnectionManager].
func (m *Manager) Disconnect() {
	m.mu.Lock()
	socket := m.socket
	m.socket = nil
	m.mu.Unlock()

	if socket == nil {
		return
	}
	// disconnect handlers run inside Close, so the lock is released first
	if err := socket.Close(); err != nil {
		m.logger.Debug().Err(err).Str("func", "Manager.Disconnect").Msg("closing transport")
	}
}

// Connection implements [ConnectionManager].
func (m *Manager) Connection() *Socket {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.socket
}

// IsConnected implements [ConnectionManager].
func (m *Manager) IsConnected() bool {
	socket := m.Connection()
	return socket != nil && socket.Connected()
}

// emit sends event on the live connection. Without one it does nothing.
func (m *Manager) emit(event string, payload any) {
	socket := m.Connection()
	if socket == nil || !socket.Connected() {
		return
	}

	if err := socket.Emit(event, payload); err != nil {
		m.logger.Warn().Err(err).Str("event", event).Msg("realtime emit failed")
	}
}

// SendMessage implements [ConnectionManager].
func (m *Manager) SendMessage(msg models.OutgoingMessage) {
	m.emit(EventSendMessage, msg)
}

// StartTyping implements [ConnectionManager].
func (m *Manager) StartTyping(receiverID string) {
	m.emit(EventTypingStart, models.TypingNotice{ReceiverID: receiverID})
}

// StopTyping implements [ConnectionManager].
func (m *Manager) StopTyping(receiverID string) {
	m.emit(EventTypingStop, models.TypingNotice{ReceiverID: receiverID})
}

// on registers a decoding handler for event. Without a connection the
// registration is dropped.
func on[T any](m *Manager, event string, fn func(T)) {
	socket := m.Connection()
	if socket == nil {
		m.logger.Debug().Str("event", event).Msg("no realtime connection, handler dropped")
		return
	}

	socket.On(event, func(args []json.RawMessage) {
		var payload T
		if len(args) > 0 {
			if err := json.Unmarshal(args[0], &payload); err != nil {
				m.logger.Warn().Err(err).Str("event", event).Msg("cannot decode realtime payload")
				return
			}
		}
		fn(payload)
	})
}

func (m *Manager) off(event string) {
	if socket := m.Connection(); socket != nil {
		socket.Off(event)
	}
}

// OnReceiveMessage implements [ConnectionManager].
func (m *Manager) OnReceiveMessage(fn func(models.ChatMessage)) {
	on(m, EventReceiveMessage, fn)
}

// OnUserTyping implements [ConnectionManager].
func (m *Manager) OnUserTyping(fn func(models.TypingEvent)) {
	on(m, EventUserTyping, fn)
}

// OnUserStopTyping implements [ConnectionManager].
func (m *Manager) OnUserStopTyping(fn func(models.TypingEvent)) {
	on(m, EventUserStopTyping, fn)
}

// OffReceiveMessage implements [ConnectionManager].
func (m *Manager) OffReceiveMessage() {
	m.off(EventReceiveMessage)
}

// OffUserTyping implements [ConnectionManager].
func (m *Manager) OffUserTyping() {
	m.off(EventUserTyping)
}

// OffUserStopTyping implements [ConnectionManager].
func (m *Manager) OffUserStopTyping() {
	m.off(EventUserStopTyping)
}
