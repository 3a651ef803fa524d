// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/mock"
	"github.com/MKhiriev/go-issue-desk/internal/service"
)

type frontendFunc func(ctx context.Context) error

func (f frontendFunc) Run(ctx context.Context) error { return f(ctx) }

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, frontendFunc(func(context.Context) error { return nil }), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSessionJob(ctrl)
	chat := mock.NewMockClientChatService(ctrl)

	var ran bool
	frontend := frontendFunc(func(context.Context) error {
		ran = true
		return nil
	})

	gomock.InOrder(
		job.EXPECT().Start(gomock.Any()),
		chat.EXPECT().Disconnect(),
		job.EXPECT().Stop(),
	)

	app, err := NewApp(&service.ClientServices{SessionJob: job, ChatService: chat}, frontend, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ran)
}

func TestApp_Run_FrontendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSessionJob(ctrl)
	chat := mock.NewMockClientChatService(ctrl)

	job.EXPECT().Start(gomock.Any())
	job.EXPECT().Stop()
	chat.EXPECT().Disconnect()

	boom := errors.New("terminal gone")
	app, err := NewApp(&service.ClientServices{SessionJob: job, ChatService: chat},
		frontendFunc(func(context.Context) error { return boom }), logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.run(context.Background()), boom)
}
