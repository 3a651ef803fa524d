// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

// ErrOpenFailed is returned by [TokenSealer.Open] for malformed or
// unauthenticated blobs.
var ErrOpenFailed = errors.New("cannot open sealed token")

// tokenSealer is the passphrase based implementation of [TokenSealer].
type tokenSealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewTokenSealer returns a [TokenSealer] keyed by passphrase, using the
// Argon2id parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// An empty passphrase yields a sealer that stores tokens as-is.
func NewTokenSealer(passphrase string) TokenSealer {
	if passphrase == "" {
		return plainSealer{}
	}

	return &tokenSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (s *tokenSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, chacha20poly1305.KeySize)
}

func (s *tokenSealer) Seal(token string) (string, error) {
	salt := make([]byte, saltSize, saltSize+chacha20poly1305.NonceSizeX+len(token)+chacha20poly1305.Overhead)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	blob = aead.Seal(blob, nonce, []byte(token), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (s *tokenSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return string(plaintext), nil
}

// plainSealer stores tokens unchanged.
type plainSealer struct{}

func (plainSealer) Seal(token string) (string, error) { return token, nil }

func (plainSealer) Open(sealed string) (string, error) { return sealed, nil }
