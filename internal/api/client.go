// Copyright 2025 Weft Data
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package api is the typed client for the Weft platform REST API.
//
// The client sets a stable User-Agent, propagates a correlation ID per
// request, enforces TLS 1.2+, and rate-limits itself client-side. It does
// not retry: commands surface API failures immediately.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	wefterrors "github.com/weftdata/weft/pkg/errors"
)

const (
	// requestIDHeader carries the client-generated correlation ID; the
	// platform echoes it in responses and logs.
	requestIDHeader = "X-Request-Id"

	// defaultRate bounds request throughput so bulk list operations stay
	// inside the platform's per-token quota.
	defaultRate  = rate.Limit(10)
	defaultBurst = 5
)

// Config configures the API client.
type Config struct {
	// BaseURL is the platform API base URL, e.g. https://api.weftdata.io.
	BaseURL string

	// Token is the bearer token. Empty means unauthenticated requests,
	// which the platform rejects for everything but /v1/status.
	Token string

	// Timeout bounds one request end to end.
	Timeout time.Duration

	// UserAgent overrides the default weft-cli User-Agent.
	UserAgent string
}

// Client calls the platform REST API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates an API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, &wefterrors.ConfigError{Key: "api_url", Reason: "base URL is required"}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "weft-cli"
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},

		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
	}, nil
}

// do performs one API request. A non-2xx response becomes an APIError; a
// 401 or 403 is additionally wrapped as an AuthError so callers can branch
// on authentication failures without inspecting status codes.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &wefterrors.APIError{Message: "request failed", RequestID: requestID, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.errorFromResponse(resp, requestID)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return &wefterrors.AuthError{Reason: apiErr.Message, Cause: apiErr}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &wefterrors.APIError{
			StatusCode: resp.StatusCode,
			Message:    "decoding response body",
			RequestID:  requestID,
			Cause:      err,
		}
	}
	return nil
}

// errorFromResponse builds an APIError from a failed response, preferring
// the platform's structured error body when present.
func (c *Client) errorFromResponse(resp *http.Response, requestID string) *wefterrors.APIError {
	apiErr := &wefterrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		RequestID:  requestID,
	}
	if echoed := resp.Header.Get(requestIDHeader); echoed != "" {
		apiErr.RequestID = echoed
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&body); err == nil {
		if body.Code != "" {
			apiErr.Code = body.Code
		}
		if body.Message != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
