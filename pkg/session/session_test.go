// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(expiresIn).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// TestEstablishAndRead verifies the login → token/user round trip.
func TestEstablishAndRead(t *testing.T) {
	s, err := Open("", nil)
	require.NoError(t, err)
	defer s.Close()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())

	token := signedToken(t, time.Hour)
	require.NoError(t, s.Establish(token, api.User{ID: "u1", FullName: "Ada"}))

	assert.True(t, s.Authenticated())
	assert.Equal(t, token, s.Token())

	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ada", user.FullName)
}

// TestPersistsAcrossReopen verifies credentials survive a process restart.
func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	token := signedToken(t, time.Hour)

	s, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Establish(token, api.User{ID: "u1"}))
	require.NoError(t, s.Close())

	reopened, err := Open(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, token, reopened.Token())
	user, ok := reopened.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)
}

// TestExpiredTokenIsRejected verifies Token() goes empty once the exp
// claim passes, so no doomed requests are issued.
func TestExpiredTokenIsRejected(t *testing.T) {
	s, err := Open("", nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Establish(signedToken(t, -time.Minute), api.User{ID: "u1"}))

	assert.Empty(t, s.Token())
	assert.False(t, s.Authenticated())
}

// TestOpaqueTokenAccepted verifies non-JWT tokens are treated as opaque
// and never expire client-side.
func TestOpaqueTokenAccepted(t *testing.T) {
	s, err := Open("", nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.EstablishToken("opaque-session-key"))
	assert.Equal(t, "opaque-session-key", s.Token())
}

// TestClear verifies logout teardown removes both token and user.
func TestClear(t *testing.T) {
	s, err := Open("", nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Establish(signedToken(t, time.Hour), api.User{ID: "u1"}))
	require.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

// TestClearPersists verifies a cleared session stays cleared after reopen.
func TestClearPersists(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Establish(signedToken(t, time.Hour), api.User{ID: "u1"}))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Close())

	reopened, err := Open(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()
	assert.False(t, reopened.Authenticated())
}
