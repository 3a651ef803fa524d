// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL. A zero timeout leaves
// requests unbounded. Retries are disabled.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 0)
//	resp, err := client.R().Get("/api/issues")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
