// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	id, ok := GetRequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestRequestIDContext_Missing(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)
	_, ok = GetRequestIDFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "requestID", RequestIDCtxKey.String())
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
