// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-issue-desk/internal/adapter"
	"github.com/MKhiriev/go-issue-desk/internal/client"
	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/crypto"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/realtime"
	"github.com/MKhiriev/go-issue-desk/internal/service"
	"github.com/MKhiriev/go-issue-desk/internal/store"
	"github.com/MKhiriev/go-issue-desk/internal/tui"
	"github.com/MKhiriev/go-issue-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("issue-desk-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("issue-desk-client", cfg.App.LogFile)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, crypto.NewTokenSealer(cfg.App.StorageKey), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Credentials, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	connections := realtime.NewManager(cfg.Adapter, log)
	services := service.NewClientServices(storages, serverAdapter, connections, cfg.Workers, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}
}
