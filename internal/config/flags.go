// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a backend base URL (e.g. http://localhost:5000)
//	-request-timeout HTTP request timeout (e.g. "30s"); 0 disables it
//	-transports realtime transport preference, comma separated
//	-d SQLite file for persisted credentials
//	-storage-key passphrase sealing the persisted token
//	-log-file client log file path
//	-session-check-interval how often the token expiry is checked
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-issue-desk", flag.ContinueOnError)

	var (
		address              string
		requestTimeout       time.Duration
		transports           string
		databaseDSN          string
		storageKey           string
		logFile              string
		sessionCheckInterval time.Duration
		jsonConfigPath       string
	)

	fs.StringVar(&address, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "HTTP request timeout (e.g., 30s)")
	fs.StringVar(&transports, "transports", "", "Realtime transports in preference order (e.g., websocket,polling)")
	fs.StringVar(&databaseDSN, "d", "", "SQLite file for persisted credentials")
	fs.StringVar(&storageKey, "storage-key", "", "Passphrase sealing the persisted token")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Token expiry check interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StorageKey: storageKey,
			LogFile:    logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:        address,
			RequestTimeout:     requestTimeout,
			RealtimeTransports: splitList(transports),
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
