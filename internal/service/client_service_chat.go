// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-issue-desk/internal/realtime"
)

type clientChatService struct {
	realtime.ConnectionManager
	auth ClientAuthService
}

func NewClientChatService(connections realtime.ConnectionManager, auth ClientAuthService) ClientChatService {
	return &clientChatService{ConnectionManager: connections, auth: auth}
}

func (c *clientChatService) ConnectWithSession(ctx context.Context) (*realtime.Socket, error) {
	if !c.auth.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}

	token, ok := c.auth.Token(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return c.Connect(ctx, token)
}
