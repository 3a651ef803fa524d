// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/migrations"
)

// DB is the local database handle shared by SQL-backed stores.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
