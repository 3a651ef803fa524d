// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer protects the persisted bearer token at rest.
//
// Layout of a sealed value (base64, standard encoding):
//
//	salt (16 bytes) ‖ nonce (24 bytes) ‖ ciphertext
//
// The sealing key is derived per value from the passphrase and the salt
// with Argon2id; the ciphertext is produced by XChaCha20-Poly1305.
type TokenSealer interface {
	// Seal encrypts token and returns the encoded blob.
	Seal(token string) (string, error)

	// Open reverses Seal. It fails with ErrOpenFailed when the blob is
	// malformed or was sealed with a different passphrase.
	Open(sealed string) (string, error)
}
