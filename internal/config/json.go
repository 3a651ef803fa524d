// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		StorageKey string `json:"storage_key"`
		LogFile    string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		RealtimeTransports []string `json:"realtime_transports"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionCheckInterval Duration `json:"session_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StorageKey: jsonCfg.App.StorageKey,
			LogFile:    jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:        jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			RealtimeTransports: jsonCfg.Adapter.RealtimeTransports,
		},
		Workers: Workers{
			SessionCheckInterval: time.Duration(jsonCfg.Workers.SessionCheckInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
