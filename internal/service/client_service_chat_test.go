// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-issue-desk/internal/mock"
	"github.com/MKhiriev/go-issue-desk/internal/realtime"
	"github.com/MKhiriev/go-issue-desk/models"
)

func TestClientChatService_ConnectWithSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockRealtime := mock.NewMockConnectionManager(ctrl)
	svc := NewClientChatService(mockRealtime, mockAuth)
	ctx := context.Background()

	socket := &realtime.Socket{}
	mockAuth.EXPECT().IsAuthenticated(ctx).Return(true)
	mockAuth.EXPECT().Token(ctx).Return("tok", true)
	mockRealtime.EXPECT().Connect(ctx, "tok").Return(socket, nil)

	got, err := svc.ConnectWithSession(ctx)
	require.NoError(t, err)
	assert.Same(t, socket, got)
}

func TestClientChatService_ConnectWithSession_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockRealtime := mock.NewMockConnectionManager(ctrl)
	svc := NewClientChatService(mockRealtime, mockAuth)

	mockAuth.EXPECT().IsAuthenticated(gomock.Any()).Return(false)

	_, err := svc.ConnectWithSession(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientChatService_DelegatesToManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRealtime := mock.NewMockConnectionManager(ctrl)
	svc := NewClientChatService(mockRealtime, mock.NewMockClientAuthService(ctrl))

	msg := models.OutgoingMessage{ReceiverID: "u2", Content: "hi"}
	mockRealtime.EXPECT().SendMessage(msg)
	mockRealtime.EXPECT().StartTyping("u2")
	mockRealtime.EXPECT().IsConnected().Return(true)

	svc.SendMessage(msg)
	svc.StartTyping("u2")
	assert.True(t, svc.IsConnected())
}
