// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogin verifies the login exchange returns token and user.
func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "ada@observatory.lk", creds.Email)

		json.NewEncoder(w).Encode(AuthResponse{
			Token: "jwt-abc",
			User:  User{ID: "u1", FullName: "Ada", Email: creds.Email},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login(context.Background(), Credentials{
		Email:    "ada@observatory.lk",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

// TestParseOAuthRedirect covers the token, error, and malformed cases.
func TestParseOAuthRedirect(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		result, err := ParseOAuthRedirect("http://localhost:3000/oauth/callback?token=jwt-xyz")
		require.NoError(t, err)
		assert.Equal(t, "jwt-xyz", result.Token)
		assert.Empty(t, result.Err)
	})

	t.Run("provider error", func(t *testing.T) {
		result, err := ParseOAuthRedirect("http://localhost:3000/oauth/callback?error=access_denied")
		require.NoError(t, err)
		assert.Empty(t, result.Token)
		assert.Equal(t, "access_denied", result.Err)
	})

	t.Run("token wins over stray error", func(t *testing.T) {
		result, err := ParseOAuthRedirect("http://localhost:3000/cb?token=jwt-xyz&error=ignored")
		require.NoError(t, err)
		assert.Equal(t, "jwt-xyz", result.Token)
		assert.Empty(t, result.Err)
	})

	t.Run("neither", func(t *testing.T) {
		_, err := ParseOAuthRedirect("http://localhost:3000/cb?state=123")
		assert.Error(t, err)
	})
}
