// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

// Lifecycle events a Socket reports to its handlers.
const (
	EventConnect      = "connect"
	EventDisconnect   = "disconnect"
	EventConnectError = "connect_error"
)

const defaultHandshakeTimeout = 20 * time.Second

var (
	// ErrNotConnected is returned by Emit on a socket that is not connected.
	ErrNotConnected = errors.New("socket is not connected")

	// ErrConnectRefused is matched by a [*ConnectError].
	ErrConnectRefused = errors.New("connection refused by server")
)

// ConnectError is returned when the server answers the handshake with a
// connect_error packet, typically because the token was rejected.
type ConnectError struct {
	Message string
}

func (e *ConnectError) Error() string {
	return "connect_error: " + e.Message
}

func (e *ConnectError) Is(target error) bool {
	return target == ErrConnectRefused
}

// Handler receives the JSON arguments of an event.
type Handler func(args []json.RawMessage)

// Socket is a live, authenticated Socket.IO connection on the default
// namespace. Handlers run on the socket's read goroutine.
type Socket struct {
	transport transport
	handshake handshake
	id        string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.RWMutex
	handlers  map[string][]Handler
	pingTimer *time.Timer

	connected atomic.Bool
	closing   atomic.Bool

	logger *logger.Logger
}

// dial opens t, sends the Socket.IO connect packet with token and waits for
// the server's verdict. On success the read loop is running.
func dial(ctx context.Context, t transport, token string, log *logger.Logger) (*Socket, error) {
	hs, err := t.Open(ctx)
	if err != nil {
		return nil, err
	}

	s := &Socket{
		transport: t,
		handshake: hs,
		done:      make(chan struct{}),
		handlers:  make(map[string][]Handler),
		logger:    log,
	}

	pending, err := s.connect(ctx, token)
	if err != nil {
		_ = t.Close()
		return nil, err
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.connected.Store(true)
	s.startPingTimer()

	go s.readLoop(pending)
	return s, nil
}

// connect runs the Socket.IO handshake and returns packets that arrived
// after the connect acknowledgement.
func (s *Socket) connect(ctx context.Context, token string) ([]string, error) {
	connectPacket, err := encodeConnect(token)
	if err != nil {
		return nil, fmt.Errorf("encode connect packet: %w", err)
	}

	timeout := defaultHandshakeTimeout
	if s.handshake.PingInterval > 0 {
		timeout = time.Duration(s.handshake.PingInterval+s.handshake.PingTimeout) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// unblocks a transport read that ignores ctx
	stop := context.AfterFunc(ctx, func() { _ = s.transport.Close() })
	defer stop()

	if err = s.transport.Send(ctx, connectPacket); err != nil {
		return nil, fmt.Errorf("send connect packet: %w", err)
	}

	for {
		packets, err := s.transport.Receive(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("waiting for connect ack: %w", ctxErr)
			}
			return nil, fmt.Errorf("waiting for connect ack: %w", err)
		}

		for i, raw := range packets {
			p, err := decodePacket(raw)
			if err != nil {
				s.logger.Warn().Err(err).Str("func", "Socket.connect").Msg("skipping malformed packet")
				continue
			}

			switch {
			case p.engine == eioPing:
				if err = s.transport.Send(ctx, string(eioPong)); err != nil {
					return nil, fmt.Errorf("answer ping: %w", err)
				}
			case p.engine == eioClose:
				return nil, errors.New("server closed the connection during handshake")
			case p.engine == eioMessage && p.kind == sioConnect:
				var ack struct {
					SID string `json:"sid"`
				}
				_ = json.Unmarshal([]byte(p.data), &ack)
				s.id = ack.SID
				return packets[i+1:], nil
			case p.engine == eioMessage && p.kind == sioConnectError:
				return nil, &ConnectError{Message: connectErrorMessage(p.data)}
			}
		}
	}
}

func (s *Socket) readLoop(pending []string) {
	defer close(s.done)

	if !s.handlePackets(pending) {
		return
	}

	for {
		packets, err := s.transport.Receive(s.ctx)
		if err != nil {
			if !s.closing.Load() {
				s.logger.Warn().Err(err).Str("func", "Socket.readLoop").Msg("realtime transport failed")
				s.teardown("transport error", false)
			}
			return
		}

		s.resetPingTimer()
		if !s.handlePackets(packets) {
			return
		}
	}
}

// handlePackets returns false once the connection has ended.
func (s *Socket) handlePackets(packets []string) bool {
	for _, raw := range packets {
		p, err := decodePacket(raw)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "Socket.handlePackets").Msg("skipping malformed packet")
			continue
		}

		switch p.engine {
		case eioPing:
			if err = s.transport.Send(s.ctx, string(eioPong)); err != nil {
				s.logger.Warn().Err(err).Str("func", "Socket.handlePackets").Msg("failed to answer ping")
			}
		case eioClose:
			s.teardown("transport close", false)
			return false
		case eioMessage:
			if !s.handleMessage(p) {
				return false
			}
		}
	}
	return true
}

func (s *Socket) handleMessage(p packet) bool {
	switch p.kind {
	case sioEvent:
		name, args, err := decodeEvent(p.data)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "Socket.handleMessage").Msg("skipping malformed event")
			return true
		}
		s.dispatch(name, args)
	case sioDisconnect:
		s.teardown("io server disconnect", false)
		return false
	case sioConnectError:
		s.dispatchValue(EventConnectError, map[string]string{"message": connectErrorMessage(p.data)})
	}
	return true
}

func (s *Socket) dispatch(event string, args []json.RawMessage) {
	s.mu.RLock()
	handlers := append([]Handler(nil), s.handlers[event]...)
	s.mu.RUnlock()

	for _, h := range handlers {
		h(args)
	}
}

func (s *Socket) dispatchValue(event string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.dispatch(event, []json.RawMessage{raw})
}

func (s *Socket) startPingTimer() {
	if s.handshake.PingInterval <= 0 {
		return
	}

	s.mu.Lock()
	s.pingTimer = time.AfterFunc(s.pingDeadline(), func() {
		s.logger.Warn().Str("func", "Socket.pingTimer").Msg("no ping from server, dropping connection")
		s.teardown("ping timeout", false)
	})
	s.mu.Unlock()
}

func (s *Socket) resetPingTimer() {
	s.mu.Lock()
	if s.pingTimer != nil {
		s.pingTimer.Reset(s.pingDeadline())
	}
	s.mu.Unlock()
}

func (s *Socket) pingDeadline() time.Duration {
	return time.Duration(s.handshake.PingInterval+s.handshake.PingTimeout) * time.Millisecond
}

// teardown ends the connection once and reports EventDisconnect with reason.
func (s *Socket) teardown(reason string, notifyServer bool) error {
	if !s.closing.CompareAndSwap(false, true) {
		return nil
	}
	s.connected.Store(false)

	if notifyServer {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = s.transport.Send(ctx, encodeDisconnect())
		cancel()
	}

	s.mu.Lock()
	if s.pingTimer != nil {
		s.pingTimer.Stop()
	}
	s.mu.Unlock()

	s.cancel()
	err := s.transport.Close()

	s.dispatchValue(EventDisconnect, reason)
	return err
}

// ID returns the Socket.IO session id assigned by the server.
func (s *Socket) ID() string {
	return s.id
}

// Transport returns the name of the transport in use.
func (s *Socket) Transport() string {
	return s.transport.Name()
}

// Connected reports whether the socket is still connected.
func (s *Socket) Connected() bool {
	return s.connected.Load()
}

// Done is closed when the read loop has exited.
func (s *Socket) Done() <-chan struct{} {
	return s.done
}

// Emit sends event with payload. It fails with ErrNotConnected after the
// socket was closed.
func (s *Socket) Emit(event string, payload any) error {
	if !s.Connected() {
		return ErrNotConnected
	}

	pkt, err := encodeEvent(event, payload)
	if err != nil {
		return err
	}
	return s.transport.Send(s.ctx, pkt)
}

// On adds h to the handlers of event.
func (s *Socket) On(event string, h Handler) {
	s.mu.Lock()
	s.handlers[event] = append(s.handlers[event], h)
	s.mu.Unlock()
}

// Off removes every handler of event.
func (s *Socket) Off(event string) {
	s.mu.Lock()
	delete(s.handlers, event)
	s.mu.Unlock()
}

// Close disconnects from the server. Calling it again has no effect.
func (s *Socket) Close() error {
	return s.teardown("io client disconnect", true)
}
