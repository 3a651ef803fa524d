// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied after all sources are merged.
const (
	DefaultHTTPAddress          = "http://localhost:5000"
	DefaultSessionCheckInterval = time.Minute
)

// DefaultRealtimeTransports is the transport preference used for the
// realtime handshake when none is configured.
var DefaultRealtimeTransports = []string{"websocket", "polling"}

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StorageKey is an optional passphrase used to seal the persisted token
	// at rest. When empty the token is stored as-is.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// LogFile is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local credential store.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path. When empty the token is kept in memory
	// and the session ends with the process.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for talking to the backend.
type Adapter struct {
	// HTTPAddress is the base URL of the backend, shared by the HTTP API and
	// the realtime endpoint (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP request. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RealtimeTransports is the ordered transport preference for the
	// realtime connection ("websocket", "polling").
	// Env: ADAPTER_REALTIME_TRANSPORTS (comma separated)
	RealtimeTransports []string `env:"REALTIME_TRANSPORTS" envSeparator:","`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionCheckInterval is how often the session watcher checks the
	// token expiry.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
