// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime keeps the client's single live chat connection to the
// backend's Socket.IO server.
//
// The connection speaks Engine.IO v4 with Socket.IO v5 framing over a
// websocket (gorilla/websocket) and falls back to HTTP long-polling (resty)
// when the websocket cannot be dialled. There is no automatic reconnection.
package realtime

import (
	"context"

	"github.com/MKhiriev/go-issue-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connection_manager_mock.go -package=mock

// Outbound and inbound chat events.
const (
	EventSendMessage    = "send_message"
	EventTypingStart    = "typing_start"
	EventTypingStop     = "typing_stop"
	EventReceiveMessage = "receive_message"
	EventUserTyping     = "user_typing"
	EventUserStopTyping = "user_stop_typing"
)

// ConnectionManager owns at most one authenticated realtime connection.
//
// Senders are silent no-ops while disconnected and handler registrations
// made before Connect are dropped, not queued.
type ConnectionManager interface {
	// Connect dials the server with token as handshake credential. While a
	// connection is live it returns that connection without a new handshake.
	Connect(ctx context.Context, token string) (*Socket, error)

	// Disconnect closes the live connection, if any, and forgets it.
	Disconnect()

	// Connection returns the current connection or nil.
	Connection() *Socket

	// IsConnected reports whether a connection exists and is connected.
	IsConnected() bool

	// SendMessage emits send_message.
	SendMessage(msg models.OutgoingMessage)

	// StartTyping emits typing_start for receiverID.
	StartTyping(receiverID string)

	// StopTyping emits typing_stop for receiverID.
	StopTyping(receiverID string)

	// OnReceiveMessage registers fn for receive_message.
	OnReceiveMessage(fn func(models.ChatMessage))

	// OnUserTyping registers fn for user_typing.
	OnUserTyping(fn func(models.TypingEvent))

	// OnUserStopTyping registers fn for user_stop_typing.
	OnUserStopTyping(fn func(models.TypingEvent))

	// OffReceiveMessage removes the receive_message handlers.
	OffReceiveMessage()

	// OffUserTyping removes the user_typing handlers.
	OffUserTyping()

	// OffUserStopTyping removes the user_stop_typing handlers.
	OffUserStopTyping()
}
