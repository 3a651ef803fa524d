// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-issue-desk/internal/crypto"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
)

type sqliteCredentialStore struct {
	db     *DB
	sealer crypto.TokenSealer
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteCredentialStore returns a [CredentialStore] keeping the token in
// the credentials table. Values pass through sealer on the way in and out.
func NewSQLiteCredentialStore(db *DB, sealer crypto.TokenSealer, logger *logger.Logger) CredentialStore {
	return &sqliteCredentialStore{
		db:     db,
		sealer: sealer,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteCredentialStore) LoadToken(ctx context.Context) (string, error) {
	log := s.logger

	query, args, err := selectCredentialQuery(tokenKey)
	if err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.LoadToken").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.LoadToken").Msg("failed to read token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.LoadToken").Msg("failed to unseal stored token")
		return "", fmt.Errorf("%w: %w", ErrTokenUnreadable, err)
	}

	return token, nil
}

func (s *sqliteCredentialStore) SaveToken(ctx context.Context, token string) error {
	log := s.logger

	sealed, err := s.sealer.Seal(token)
	if err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.SaveToken").Msg("failed to seal token")
		return fmt.Errorf("failed to seal token: %w", err)
	}

	query, args, err := upsertCredentialQuery(tokenKey, sealed, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.SaveToken").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.SaveToken").Msg("failed to write token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteCredentialStore) DeleteToken(ctx context.Context) error {
	log := s.logger

	query, args, err := deleteCredentialQuery(tokenKey)
	if err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.DeleteToken").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteCredentialStore.DeleteToken").Msg("failed to delete token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
