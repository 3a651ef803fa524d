// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decodeEntry(t, &buf)["role"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("globals")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", path)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestNewClientLogger_FallsBackWhenFileCannotBeOpened(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l := NewClientLogger("client", path)
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestComponent_AddsFieldAndInherits(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.Component("realtime")
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "realtime", entry["component"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}
