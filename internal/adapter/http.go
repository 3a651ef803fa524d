// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-issue-desk/internal/config"
	"github.com/MKhiriev/go-issue-desk/internal/logger"
	"github.com/MKhiriev/go-issue-desk/internal/store"
	"github.com/MKhiriev/go-issue-desk/internal/utils"
	"github.com/MKhiriev/go-issue-desk/models"
)

const (
	loginEndpoint      = "/api/auth/login"
	registerEndpoint   = "/api/auth/register"
	issuesEndpoint     = "/api/issues"
	myIssuesEndpoint   = "/api/issues/my-issues"
	issueStatsEndpoint = "/api/issues/stats"
	issueByIDEndpoint  = "/api/issues/{id}"

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

type httpServerAdapter struct {
	client      *utils.HTTPClient
	credentials store.CredentialStore
	ids         *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. The base URL is normalised with [config.NormalizeBaseURL]
// and requests are bounded by adapterCfg.RequestTimeout when it is non-zero.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, credentials store.CredentialStore, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpServerAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		credentials: credentials,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger.Component("adapter"),
	}, nil
}

// call describes one request.
type call struct {
	method     string
	endpoint   string
	pathParams map[string]string
	body       any
}

// do performs c and decodes the response body into result (which may be nil).
//
// The body is parsed as JSON whatever the status. Non-2xx responses turn
// into a *RequestError carrying the "message" field or DefaultErrorMessage.
func (h *httpServerAdapter) do(ctx context.Context, c call, result any) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(RequestIDHeader, h.requestID(ctx))

	if token, ok := h.token(ctx); ok {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	if c.pathParams != nil {
		req.SetPathParams(c.pathParams)
	}
	if c.body != nil {
		req.SetBody(c.body)
	}

	resp, err := req.Execute(c.method, c.endpoint)
	if err != nil {
		return h.fail(c, &RequestError{Message: err.Error(), Err: err})
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && !json.Valid(body) {
		return h.fail(c, &RequestError{
			Status:  resp.StatusCode(),
			Message: "invalid JSON in response body",
			Err:     fmt.Errorf("status %d: %q", resp.StatusCode(), truncate(body, 128)),
		})
	}

	if !resp.IsSuccess() {
		return h.fail(c, &RequestError{
			Status:  resp.StatusCode(),
			Message: serverMessage(body),
		})
	}

	if result == nil || len(body) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, result); err != nil {
		return h.fail(c, &RequestError{
			Status:  resp.StatusCode(),
			Message: "unexpected response body: " + err.Error(),
			Err:     err,
		})
	}

	return nil
}

// fail logs reqErr and returns it.
func (h *httpServerAdapter) fail(c call, reqErr *RequestError) error {
	event := h.logger.Error()
	if reqErr.Err != nil {
		event = event.Err(reqErr.Err)
	}
	event.
		Str("func", "httpServerAdapter.do").
		Str("method", c.method).
		Str("endpoint", c.endpoint).
		Int("status", reqErr.Status).
		Str("message", reqErr.Message).
		Msg("API request error")

	return reqErr
}

// token reads the bearer token. A missing or unreadable token means the
// request goes out unauthenticated.
func (h *httpServerAdapter) token(ctx context.Context) (string, bool) {
	token, err := h.credentials.LoadToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			h.logger.Warn().Err(err).Str("func", "httpServerAdapter.token").Msg("cannot read stored token, sending request without it")
		}
		return "", false
	}
	return token, token != ""
}

func (h *httpServerAdapter) requestID(ctx context.Context) string {
	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		return id
	}
	return h.ids.Generate()
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	// a body that is valid JSON but not an object has no message
	_ = json.Unmarshal(body, &payload)

	if payload.Message == "" {
		return DefaultErrorMessage
	}
	return payload.Message
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: loginEndpoint,
		body:     models.LoginRequest{Email: email, Password: password},
	}, &auth)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: registerEndpoint,
		body:     req,
	}, &auth)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// CreateIssue implements [ServerAdapter].
func (h *httpServerAdapter) CreateIssue(ctx context.Context, req models.CreateIssueRequest) (models.IssueResponse, error) {
	var created models.IssueResponse

	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: issuesEndpoint,
		body:     req,
	}, &created)
	if err != nil {
		return models.IssueResponse{}, err
	}

	return created, nil
}

// GetAllIssues implements [ServerAdapter].
func (h *httpServerAdapter) GetAllIssues(ctx context.Context, filter models.IssueFilter) (models.IssueList, error) {
	var list models.IssueList

	err := h.do(ctx, call{
		method:   http.MethodGet,
		endpoint: allIssuesPath(filter),
	}, &list)
	if err != nil {
		return models.IssueList{}, err
	}

	return list, nil
}

// GetMyIssues implements [ServerAdapter].
func (h *httpServerAdapter) GetMyIssues(ctx context.Context, filter models.MyIssueFilter) (models.IssueList, error) {
	var list models.IssueList

	err := h.do(ctx, call{
		method:   http.MethodGet,
		endpoint: myIssuesPath(filter),
	}, &list)
	if err != nil {
		return models.IssueList{}, err
	}

	return list, nil
}

// UpdateIssueStatus implements [ServerAdapter].
func (h *httpServerAdapter) UpdateIssueStatus(ctx context.Context, id string, req models.UpdateIssueRequest) (models.IssueResponse, error) {
	var updated models.IssueResponse

	err := h.do(ctx, call{
		method:     http.MethodPut,
		endpoint:   issueByIDEndpoint,
		pathParams: map[string]string{"id": id},
		body:       req,
	}, &updated)
	if err != nil {
		return models.IssueResponse{}, err
	}

	return updated, nil
}

// GetIssueByID implements [ServerAdapter].
func (h *httpServerAdapter) GetIssueByID(ctx context.Context, id string) (models.IssueResponse, error) {
	var found models.IssueResponse

	err := h.do(ctx, call{
		method:     http.MethodGet,
		endpoint:   issueByIDEndpoint,
		pathParams: map[string]string{"id": id},
	}, &found)
	if err != nil {
		return models.IssueResponse{}, err
	}

	return found, nil
}

// GetIssueStats implements [ServerAdapter].
func (h *httpServerAdapter) GetIssueStats(ctx context.Context) (models.IssueStats, error) {
	var stats models.IssueStats

	err := h.do(ctx, call{
		method:   http.MethodGet,
		endpoint: issueStatsEndpoint,
	}, &stats)
	if err != nil {
		return models.IssueStats{}, err
	}

	return stats, nil
}
