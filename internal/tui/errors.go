// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-issue-desk/internal/adapter"
	"github.com/MKhiriev/go-issue-desk/internal/app"
	"github.com/MKhiriev/go-issue-desk/internal/service"
)

// humanizeError turns transport failures into one readable line and keeps
// server-supplied messages as they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrNotAuthenticated) {
		return app.MsgNotAuthenticated
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) && reqErr.Status != 0 {
		return reqErr.Message
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}
