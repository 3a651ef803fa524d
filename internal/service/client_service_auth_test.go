// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-issue-desk/internal/adapter"
	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/crypto"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/mock"
	"github.com/MKhiriev/go-issue-desk/internal/store"
	"github.com/MKhiriev/go-issue-desk/models"
)

// newTestAuthSvc creates clientAuthService wired to mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockCredentialStore,
	*mock.MockConnectionManager,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockCredentialStore(ctrl)
	mockRealtime := mock.NewMockConnectionManager(ctrl)

	svc := NewClientAuthService(mockStore, mockAdapter, mockRealtime, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockStore, mockRealtime
}

// ── Login ──

func TestClientAuthService_Login_PersistsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u-1", Name: "Ann", Email: "ann@example.com", Role: models.RoleResident}
	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "ann@example.com", "pw").
			Return(models.AuthResponse{Token: "tok", User: user}, nil),
		mockStore.EXPECT().SaveToken(ctx, "tok").Return(nil),
	)

	got, err := svc.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestClientAuthService_Login_ServerMessageUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	serverErr := &adapter.RequestError{Status: 401, Message: "Invalid credentials"}
	mockAdapter.EXPECT().Login(ctx, "ann@example.com", "bad").Return(models.AuthResponse{}, serverErr)

	_, err := svc.Login(ctx, "ann@example.com", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.ErrorIs(t, err, adapter.ErrRequestFailed)
}

func TestClientAuthService_Login_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, nil)

	_, err := svc.Login(ctx, "ann@example.com", "pw")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestClientAuthService_Login_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "tok"}, nil)
	mockStore.EXPECT().SaveToken(ctx, "tok").Return(errors.New("disk full"))

	_, err := svc.Login(ctx, "ann@example.com", "pw")
	assert.ErrorIs(t, err, ErrPersistToken)
}

// ── Register ──

func TestClientAuthService_Register_PersistsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "pw", Role: models.RoleAdmin}
	user := models.User{ID: "u-2", Name: "Bob", Email: "bob@example.com", Role: models.RoleAdmin}
	mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{Token: "tok-2", User: user}, nil)
	mockStore.EXPECT().SaveToken(ctx, "tok-2").Return(nil)

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).
		Return(models.AuthResponse{}, &adapter.RequestError{Status: 400, Message: "Email already exists"})

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "taken@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Email already exists", err.Error())
}

// ── Logout ──

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore, mockRealtime := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRealtime.EXPECT().Disconnect(),
		mockStore.EXPECT().DeleteToken(ctx).Return(nil),
	)

	require.NoError(t, svc.Logout(ctx))
}

func TestClientAuthService_Logout_DeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore, mockRealtime := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRealtime.EXPECT().Disconnect()
	mockStore.EXPECT().DeleteToken(ctx).Return(errors.New("locked"))

	assert.Error(t, svc.Logout(ctx))
}

// ── IsAuthenticated / CurrentUser ──

func TestClientAuthService_IsAuthenticated(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    string
		loadErr  error
		expected bool
	}{
		{name: "valid token", token: tokenExpiringAt(t, now.Add(time.Hour)), expected: true},
		{name: "expired token", token: tokenExpiringAt(t, now.Add(-time.Second)), expected: false},
		{name: "expires right now", token: tokenExpiringAt(t, now), expected: false},
		{name: "no token", loadErr: store.ErrTokenNotFound, expected: false},
		{name: "unreadable token", loadErr: store.ErrTokenUnreadable, expected: false},
		{name: "one segment", token: "opaque", expected: false},
		{name: "not base64", token: "a.@@@.c", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockStore, _ := newTestAuthSvc(t, ctrl)
			svc.now = func() time.Time { return now }

			mockStore.EXPECT().LoadToken(gomock.Any()).Return(tt.token, tt.loadErr)

			assert.Equal(t, tt.expected, svc.IsAuthenticated(context.Background()))
		})
	}
}

func TestClientAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore, _ := newTestAuthSvc(t, ctrl)

	mockStore.EXPECT().LoadToken(gomock.Any()).Return(tokenExpiringAt(t, time.Now().Add(time.Hour)), nil)

	claims, ok := svc.CurrentUser(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Ann", claims.User().Name)
	assert.Equal(t, models.RoleResident, claims.Role)
}

func TestClientAuthService_CurrentUser_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore, _ := newTestAuthSvc(t, ctrl)

	mockStore.EXPECT().LoadToken(gomock.Any()).Return("", store.ErrTokenNotFound)

	_, ok := svc.CurrentUser(context.Background())
	assert.False(t, ok)
}

// ── with a real credential store ──

func TestClientAuthService_LogoutThenIsAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx,
		config.ClientStorage{DSN: filepath.Join(t.TempDir(), "desk.db")},
		crypto.NewTokenSealer(""),
		logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRealtime := mock.NewMockConnectionManager(ctrl)
	svc := NewClientAuthService(storages.Credentials, mockAdapter, mockRealtime, logger.Nop())

	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{Token: tokenExpiringAt(t, time.Now().Add(time.Hour))}, nil)
	mockRealtime.EXPECT().Disconnect()

	_, err = svc.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated(ctx))

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, svc.IsAuthenticated(ctx))
	_, err = storages.Credentials.LoadToken(ctx)
	assert.ErrorIs(t, err, store.ErrTokenNotFound)
}
