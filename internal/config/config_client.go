// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// StorageKey seals the persisted token when non-empty.
	StorageKey string
	// LogFile is where the client logger writes.
	LogFile string
}

// ClientAdapter holds settings used by the transport layer.
type ClientAdapter struct {
	// BaseURL is the normalised backend URL, without a trailing slash.
	BaseURL string
	// RequestTimeout bounds a single HTTP request; zero disables it.
	RequestTimeout time.Duration
	// RealtimeTransports is the ordered realtime transport preference.
	RealtimeTransports []string
}

// ClientStorage holds credential store settings.
type ClientStorage struct {
	// DSN is the SQLite file path; empty keeps the token in memory.
	DSN string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// SessionCheckInterval defines how often the session watcher runs.
	SessionCheckInterval time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL, err := NormalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			StorageKey: cfg.App.StorageKey,
			LogFile:    cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:            baseURL,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			RealtimeTransports: cfg.Adapter.RealtimeTransports,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Workers: ClientWorkers{SessionCheckInterval: cfg.Workers.SessionCheckInterval},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
