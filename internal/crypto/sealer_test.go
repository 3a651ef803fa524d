// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"
)

// newTestSealer keeps Argon2 cheap so the suite stays fast.
func newTestSealer(passphrase string) *tokenSealer {
	return &tokenSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  8,
		argonThreads: 1,
	}
}

func TestTokenSealer_RoundTrip(t *testing.T) {
	s := newTestSealer("correct horse battery staple")

	sealed, err := s.Seal("header.payload.signature")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "payload")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", opened)
}

func TestTokenSealer_Layout(t *testing.T) {
	s := newTestSealer("pw")

	sealed, err := s.Seal("tok")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	assert.Len(t, blob, saltSize+chacha20poly1305.NonceSizeX+len("tok")+chacha20poly1305.Overhead)
}

func TestTokenSealer_RandomizedOutput(t *testing.T) {
	s := newTestSealer("pw")

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenSealer_WrongPassphrase(t *testing.T) {
	sealed, err := newTestSealer("right").Seal("tok")
	require.NoError(t, err)

	_, err = newTestSealer("wrong").Open(sealed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestTokenSealer_Malformed(t *testing.T) {
	s := newTestSealer("pw")

	tests := []struct {
		name   string
		sealed string
	}{
		{name: "not base64", sealed: "%%%"},
		{name: "too short", sealed: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(tt.sealed)
			assert.ErrorIs(t, err, ErrOpenFailed)
		})
	}
}

func TestTokenSealer_TamperedCiphertext(t *testing.T) {
	s := newTestSealer("pw")

	sealed, err := s.Seal("tok")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF

	_, err = s.Open(base64.StdEncoding.EncodeToString(blob))
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestNewTokenSealer_EmptyPassphrase(t *testing.T) {
	s := NewTokenSealer("")

	sealed, err := s.Seal("tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", sealed)

	opened, err := s.Open("tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", opened)
}

func TestNewTokenSealer_WithPassphrase(t *testing.T) {
	s, ok := NewTokenSealer("pw").(*tokenSealer)
	require.True(t, ok)
	assert.Equal(t, uint32(64*1024), s.argonMemory)
}
