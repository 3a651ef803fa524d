// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable = "credentials"

	// tokenKey is the fixed row name holding the bearer token.
	tokenKey = "token"
)

func selectCredentialQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(credentialsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func upsertCredentialQuery(name, value string, now time.Time) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, now).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteCredentialQuery(name string) (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
