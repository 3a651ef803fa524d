// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore persists the single bearer token the client works with.
//
// There is one token per process: SaveToken overwrites the previous value
// and DeleteToken removes it. Every request and the realtime handshake read
// it through LoadToken.
type CredentialStore interface {
	// LoadToken returns the stored token or ErrTokenNotFound.
	LoadToken(ctx context.Context) (string, error)

	// SaveToken stores token, replacing any previous value.
	SaveToken(ctx context.Context, token string) error

	// DeleteToken removes the stored token. Deleting an absent token is not
	// an error.
	DeleteToken(ctx context.Context) error
}
