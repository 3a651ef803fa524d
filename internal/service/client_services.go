// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-issue-desk/internal/adapter"
	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/realtime"
	"github.com/MKhiriev/go-issue-desk/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	ChatService ClientChatService
	SessionJob  ClientSessionJob

	// Issues is the request client; issue calls need no extra logic.
	Issues adapter.ServerAdapter
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	connections realtime.ConnectionManager,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) *ClientServices {
	authSvc := NewClientAuthService(storages.Credentials, serverAdapter, connections, logger)

	return &ClientServices{
		AuthService: authSvc,
		ChatService: NewClientChatService(connections, authSvc),
		SessionJob:  NewClientSessionJob(authSvc, workersCfg.SessionCheckInterval, logger),
		Issues:      serverAdapter,
	}
}
