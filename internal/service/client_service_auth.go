// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-issue-desk/internal/adapter"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/realtime"
	"github.com/MKhiriev/go-issue-desk/internal/store"
	"github.com/MKhiriev/go-issue-desk/internal/utils"
	"github.com/MKhiriev/go-issue-desk/models"
)

type clientAuthService struct {
	credentials store.CredentialStore
	adapter     adapter.ServerAdapter
	realtime    realtime.ConnectionManager

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(
	credentials store.CredentialStore,
	serverAdapter adapter.ServerAdapter,
	connections realtime.ConnectionManager,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		credentials: credentials,
		adapter:     serverAdapter,
		realtime:    connections,
		now:         time.Now,
		logger:      logger.Component("auth"),
	}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	auth, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	if err = a.persist(ctx, auth); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Str("user_id", auth.User.ID).Msg("logged in")
	return auth.User, nil
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	auth, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, err
	}

	if err = a.persist(ctx, auth); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("func", "clientAuthService.Register").Str("user_id", auth.User.ID).Msg("registered")
	return auth.User, nil
}

func (a *clientAuthService) persist(ctx context.Context, auth models.AuthResponse) error {
	if auth.Token == "" {
		a.logger.Error().Str("func", "clientAuthService.persist").Msg("auth response carried no token")
		return ErrEmptyToken
	}

	if err := a.credentials.SaveToken(ctx, auth.Token); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.persist").Msg("failed to save token")
		return fmt.Errorf("%w: %w", ErrPersistToken, err)
	}
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.realtime.Disconnect()

	if err := a.credentials.DeleteToken(ctx); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Logout").Msg("failed to delete token")
		return fmt.Errorf("delete token: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("logged out")
	return nil
}

func (a *clientAuthService) IsAuthenticated(ctx context.Context) bool {
	token, ok := a.Token(ctx)
	if !ok {
		return false
	}
	return utils.TokenValidAt(token, a.now())
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.Claims, bool) {
	token, ok := a.Token(ctx)
	if !ok {
		return models.Claims{}, false
	}
	return utils.DecodeClaims(token)
}

func (a *clientAuthService) Token(ctx context.Context) (string, bool) {
	token, err := a.credentials.LoadToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			a.logger.Warn().Err(err).Str("func", "clientAuthService.Token").Msg("cannot read stored token")
		}
		return "", false
	}
	return token, token != ""
}
