// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/mock"
	"github.com/MKhiriev/go-issue-desk/internal/store"
)

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	storages := &store.ClientStorages{Credentials: store.NewMemoryCredentialStore()}

	svcs := NewClientServices(storages, mockAdapter, mock.NewMockConnectionManager(ctrl),
		config.ClientWorkers{SessionCheckInterval: 3 * time.Second}, logger.Nop())

	assert.NotNil(t, svcs.AuthService)
	assert.NotNil(t, svcs.ChatService)
	assert.Same(t, mockAdapter, svcs.Issues)
	assert.Equal(t, 3*time.Second, svcs.SessionJob.(*clientSessionJob).interval)
}
