// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations registered: goose's first query fails
	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "desk.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// second run is a no-op
	require.NoError(t, Migrate(db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'credentials'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "credentials", name)
}
