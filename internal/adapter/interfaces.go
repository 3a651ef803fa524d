// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP request client for the issue-desk
// backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer and the terminal UI from the wire format. The package ships a
// resty-based implementation ([NewHTTPServerAdapter]).
//
// Every failure (non-2xx status, unreachable host, malformed body) surfaces
// as a [*RequestError] that matches [ErrRequestFailed] with [errors.Is]. Its
// Error() is the server-supplied "message" when one is present, otherwise
// [DefaultErrorMessage]. Failures are logged before they are returned.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-issue-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the calls the client makes against the backend REST
// API. Implementations read the bearer token from the credential store
// before every request and attach it when present.
type ServerAdapter interface {
	// Login posts credentials to POST /api/auth/login and returns the auth
	// payload (token and user). It does not persist the token.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Register posts a new account to POST /api/auth/register and returns
	// the auth payload. It does not persist the token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// CreateIssue posts a new issue to POST /api/issues. An empty priority is
	// left out of the body.
	CreateIssue(ctx context.Context, req models.CreateIssueRequest) (models.IssueResponse, error)

	// GetAllIssues lists issues via GET /api/issues. Only the filters that
	// are set end up in the query string, in the order status, category,
	// page, limit.
	GetAllIssues(ctx context.Context, filter models.IssueFilter) (models.IssueList, error)

	// GetMyIssues lists the caller's own issues via
	// GET /api/issues/my-issues, with the same query rule as GetAllIssues
	// (status, page, limit).
	GetMyIssues(ctx context.Context, filter models.MyIssueFilter) (models.IssueList, error)

	// UpdateIssueStatus sends PUT /api/issues/{id} with only the non-nil
	// fields of req.
	UpdateIssueStatus(ctx context.Context, id string, req models.UpdateIssueRequest) (models.IssueResponse, error)

	// GetIssueByID fetches a single issue via GET /api/issues/{id}.
	GetIssueByID(ctx context.Context, id string) (models.IssueResponse, error)

	// GetIssueStats fetches the dashboard counters via
	// GET /api/issues/stats.
	GetIssueStats(ctx context.Context) (models.IssueStats, error)
}
