// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea front end of the issue desk client: login
// and registration, the issue list with its detail and edit views, issue
// statistics and the realtime chat.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/service"
	"github.com/MKhiriev/go-issue-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger.Component("tui")}, nil
}

// Run shows the program until the user quits or ctx is cancelled. Inbound
// chat events and session expiry reach the program through Program.Send.
func (t *TUI) Run(ctx context.Context) error {
	sender := &msgSender{}
	model := newAppModel(ctx, t.services, sender, t.buildInfo)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	sender.bind(program.Send)

	t.services.SessionJob.OnExpired(func() {
		sender.Send(sessionExpiredMsg{})
	})
	defer t.services.SessionJob.OnExpired(nil)

	_, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Str("func", "TUI.Run").Msg("program stopped by context")
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
