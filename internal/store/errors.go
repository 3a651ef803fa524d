// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [CredentialStore] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned by LoadToken when no token is stored.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenUnreadable is returned by LoadToken when a stored value exists
	// but cannot be unsealed with the configured storage key.
	ErrTokenUnreadable = errors.New("stored token cannot be read")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
