// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyToken is returned when the backend answers login or
	// registration without a token.
	ErrEmptyToken = errors.New("server returned an empty token")

	// ErrPersistToken is returned when the token cannot be written to the
	// credential store.
	ErrPersistToken = errors.New("failed to persist token")

	// ErrNotAuthenticated is returned by operations that need a valid
	// session when there is none.
	ErrNotAuthenticated = errors.New("not authenticated")
)
