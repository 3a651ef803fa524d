// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/crypto"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Credentials holds the bearer token.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages initialises the storage layer once at startup:
//  1. With an empty DSN it returns an in-memory credential store.
//  2. Otherwise it opens the SQLite file, creating it when missing.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Wires a SQLite-backed [CredentialStore] that seals tokens with sealer.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.TokenSealer, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DSN == "" {
		logger.Info().Msg("no storage DSN configured, credentials are kept in memory until exit")
		return &ClientStorages{Credentials: NewMemoryCredentialStore()}, nil
	}

	logger.Info().Str("dsn", cfg.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewSQLiteCredentialStore(db, sealer, logger),
		db:          db,
	}, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
