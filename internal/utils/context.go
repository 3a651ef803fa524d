// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for carrying request identifiers in a context,
// decoding bearer tokens, generating UUIDs and building HTTP clients.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store an outgoing request identifier in
// the context. Callers that want several requests to share one identifier
// put it there with [WithRequestID].
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}
