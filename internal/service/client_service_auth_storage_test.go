// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
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

func TestClientAuthService_LoginWithoutDSN_AuthorizesRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	token := tokenExpiringAt(t, time.Now().Add(time.Hour))

	authHeaders := make(chan string, 1)
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Message: "ok", Token: token})
	})
	r.Get("/api/issues/stats", func(w http.ResponseWriter, req *http.Request) {
		authHeaders <- req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":0}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{}, crypto.NewTokenSealer(""), logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{BaseURL: srv.URL}, storages.Credentials, logger.Nop())
	require.NoError(t, err)

	svc := NewClientAuthService(storages.Credentials, serverAdapter, mock.NewMockConnectionManager(ctrl), logger.Nop())

	_, err = svc.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, svc.IsAuthenticated(ctx))

	_, err = serverAdapter.GetIssueStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, <-authHeaders)
}
