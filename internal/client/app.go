// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/service"
	"github.com/MKhiriev/go-issue-desk/internal/workers"
)

// Frontend is the interactive part of the client, normally the TUI.
type Frontend interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	frontend Frontend
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, frontend Frontend, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client app: services are nil")
	}
	if frontend == nil {
		return nil, errors.New("client app: frontend is nil")
	}

	return &App{
		services: services,
		frontend: frontend,
		workers:  workers.NewWorkers(services.SessionJob),
		logger:   log.Component("app"),
	}, nil
}

// Run starts the background workers, runs the front end until it returns or
// the process is interrupted, then stops the workers and drops the realtime
// connection.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.StartAll(ctx)
	defer a.workers.StopAll()
	defer a.services.ChatService.Disconnect()

	a.logger.Info().Str("func", "App.Run").Msg("client started")
	err := a.frontend.Run(ctx)
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return err
}
