// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memoryCredentialStore keeps the token in process memory. It is used when
// no local database is configured, so a session lasts until the client exits.
type memoryCredentialStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryCredentialStore returns a [CredentialStore] holding a single
// in-process token. The last write wins.
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{}
}

func (s *memoryCredentialStore) LoadToken(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrTokenNotFound
	}
	return s.token, nil
}

func (s *memoryCredentialStore) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *memoryCredentialStore) DeleteToken(context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
