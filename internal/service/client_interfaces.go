// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side use cases built on top of the
// request client, the realtime connection and the credential store.
package service

import (
	"context"

	"github.com/MKhiriev/go-issue-desk/internal/realtime"
	"github.com/MKhiriev/go-issue-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService manages the session: it talks to the auth endpoints and
// keeps the returned token in the credential store.
type ClientAuthService interface {
	// Login authenticates with email and password and persists the token.
	// On failure the request client's error is returned unchanged, so its
	// message is the server's.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Register creates an account and persists the token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Logout drops the realtime connection and deletes the stored token.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a stored token exists whose "exp"
	// claim lies in the future. It never fails: any decode problem is false.
	IsAuthenticated(ctx context.Context) bool

	// CurrentUser decodes the stored token's claims without verifying the
	// signature. ok is false when there is no decodable token.
	CurrentUser(ctx context.Context) (claims models.Claims, ok bool)

	// Token returns the stored token, if any.
	Token(ctx context.Context) (string, bool)
}

// ClientChatService is the realtime connection manager plus the ability to
// connect with the session's own token.
type ClientChatService interface {
	realtime.ConnectionManager

	// ConnectWithSession connects using the stored token. It fails with
	// ErrNotAuthenticated when the session is missing or expired.
	ConnectWithSession(ctx context.Context) (*realtime.Socket, error)
}

// ClientSessionJob watches the stored token in the background and ends the
// session once it expires.
type ClientSessionJob interface {
	// Start launches the watcher. A running watcher is restarted.
	Start(ctx context.Context)

	// Stop signals the watcher to exit and blocks until it has terminated.
	Stop()

	// OnExpired sets a callback run after an expired session was cleared.
	OnExpired(fn func())
}
