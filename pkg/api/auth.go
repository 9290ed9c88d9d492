// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"fmt"
	"net/url"
)

// Login exchanges credentials for a token and user object.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/auth/login", creds, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account and returns the same token + user shape as
// Login, so the caller can establish a session immediately.
func (c *Client) Register(ctx context.Context, reg Registration) (AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/auth/register", reg, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// OAuthResult is the outcome of an OAuth2 provider redirect.
type OAuthResult struct {
	Token string
	// Err carries the provider/backend error string when the redirect
	// reported a failure instead of a token.
	Err string
}

// ParseOAuthRedirect extracts the token or error query parameter from an
// OAuth2 redirect URL. Exactly one of Token / Err is set on success; a
// redirect carrying neither is malformed.
func ParseOAuthRedirect(rawURL string) (OAuthResult, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return OAuthResult{}, fmt.Errorf("api: parse redirect url: %w", err)
	}

	query := parsed.Query()
	token := query.Get("token")
	oauthErr := query.Get("error")

	if token == "" && oauthErr == "" {
		return OAuthResult{}, fmt.Errorf("api: redirect url carries neither token nor error")
	}
	if token != "" && oauthErr != "" {
		// Token wins; the error parameter is provider noise at that point.
		oauthErr = ""
	}
	return OAuthResult{Token: token, Err: oauthErr}, nil
}
