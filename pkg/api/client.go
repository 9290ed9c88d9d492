// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api is the typed client for the Cosmo Connect backend.
//
// Every call is context-bound, attempted exactly once, and returns an
// explicit error from the taxonomy in errors.go: transport failures are
// wrapped, 401 becomes ErrUnauthorized after the session-expiry hook runs,
// and other non-2xx responses become *Error carrying the backend's message
// string. The bearer token is attached centrally from an injected
// TokenSource, never read from ambient globals.
//
// Post, competition, and profile-photo writes use multipart encoding: the
// JSON payload travels as a string field next to the file parts (see
// multipart.go).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/logging"
)

// DefaultBaseURL is the consolidated backend endpoint. Overridden by
// configuration; kept here so a zero-config client still points somewhere
// sensible for local development.
const DefaultBaseURL = "http://localhost:8080/api"

// defaultTimeout bounds every request. The original relied on the HTTP
// client's defaults; a CLI should not hang forever on a dead backend.
const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for authenticated requests. An
// empty string means "not authenticated" and no Authorization header is
// attached.
type TokenSource interface {
	Token() string
}

// Client talks to the Cosmo Connect backend.
//
// Client is safe for concurrent use. A modest rate limiter smooths bursts
// (e.g. scripted CLI loops) so the client stays a polite API consumer.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	limiter        *rate.Limiter
	logger         *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Tests use this (or
// just point BaseURL at an httptest server).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTokenSource wires the session that supplies bearer tokens.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHook registers a callback invoked on any 401 response,
// before ErrUnauthorized is returned. The session uses this to clear its
// stored credentials so every surface uniformly asks for a re-login.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) { c.onUnauthorized = hook }
}

// WithLogger replaces the default quiet logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRateLimit overrides the default request throttle.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// New creates a Client for the backend at baseURL. Pass DefaultBaseURL (or
// the configured value) explicitly; the client does not read environment
// variables itself.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		logger:     logging.New(logging.Config{Quiet: true, Service: "api"}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one request and decodes a JSON response into out (when out is
// non-nil). This is the single choke point where the bearer token, the
// rate limiter, and the error taxonomy are applied.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// getJSON fetches path and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// postJSON sends in as a JSON body and decodes the response into out
// (either may be nil).
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// putJSON sends in as a JSON body and decodes the response into out.
func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

// delete issues a DELETE for path, discarding any response body.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func encodeJSON(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, "", fmt.Errorf("api: encode request: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}
