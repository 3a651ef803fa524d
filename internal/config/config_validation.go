// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

var knownTransports = map[string]bool{
	"websocket": true,
	"polling":   true,
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if len(cfg.Adapter.RealtimeTransports) == 0 {
		return fmt.Errorf("%w: no realtime transports", ErrInvalidAdapterConfigs)
	}
	for _, t := range cfg.Adapter.RealtimeTransports {
		if !knownTransports[t] {
			return fmt.Errorf("%w: unknown realtime transport %q", ErrInvalidAdapterConfigs, t)
		}
	}

	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// NormalizeBaseURL turns a user-supplied address into an absolute URL
// without a trailing slash. A missing scheme defaults to http.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
