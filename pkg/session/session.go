// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package session owns the authenticated-user lifecycle.
//
// The web client kept its token and cached user in browser storage, read
// ambiently from every call site. Here the session is an explicit object
// with a defined lifecycle: opened at startup, established on login or
// OAuth redirect, cleared on logout or a backend 401, closed at exit. It
// is passed by injection (it implements api.TokenSource) rather than read
// from globals.
//
// While resident, the token lives in a memguard enclave so it is encrypted
// in memory and excluded from core dumps; it only materializes briefly
// when a request needs the Authorization header.
package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/dgraph-io/badger/v4"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/logging"
)

var (
	keyToken = []byte("session/token")
	keyUser  = []byte("session/user")
)

// Session is the explicit authentication state of the client.
//
// All methods are safe for concurrent use. Writes only happen on explicit
// login/logout actions (and the 401 hook), matching the original's
// benign-race model, but here they are mutex-coordinated anyway.
type Session struct {
	mu     sync.Mutex
	db     *badger.DB
	token  *memguard.Enclave
	user   *api.User
	logger *logging.Logger
}

// Open opens (or creates) the credential store at dir and loads any
// persisted session. Pass an empty dir to run in memory, which tests use.
func Open(dir string, logger *logging.Logger) (*Session, error) {
	if logger == nil {
		logger = logging.New(logging.Config{Quiet: true, Service: "session"})
	}

	db, err := openStore(StoreConfig{
		Path:       dir,
		InMemory:   dir == "",
		SyncWrites: dir != "",
		Logger:     nil, // badger internals are too chatty for a CLI
	})
	if err != nil {
		return nil, err
	}

	s := &Session{db: db, logger: logger}

	if raw, err := get(db, keyToken); err == nil && len(raw) > 0 {
		s.token = memguard.NewEnclave(raw)
	}
	if raw, err := get(db, keyUser); err == nil && len(raw) > 0 {
		var user api.User
		if json.Unmarshal(raw, &user) == nil {
			s.user = &user
		}
	}

	logger.Debug("session opened", "authenticated", s.token != nil)
	return s, nil
}

// Establish stores a fresh token and user after login, registration, or an
// OAuth redirect. Any previous session is replaced.
func (s *Session) Establish(token string, user api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := set(s.db, keyToken, []byte(token)); err != nil {
		return err
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := set(s.db, keyUser, userJSON); err != nil {
		return err
	}

	s.token = memguard.NewEnclave([]byte(token))
	s.user = &user
	s.logger.Info("session established", "user_id", user.ID)
	return nil
}

// EstablishToken stores a token without a user object (the OAuth redirect
// path, where the profile is fetched in a follow-up call to /users/me).
func (s *Session) EstablishToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := set(s.db, keyToken, []byte(token)); err != nil {
		return err
	}
	s.token = memguard.NewEnclave([]byte(token))
	return nil
}

// CacheUser stores/refreshes the cached user object for the current
// session.
func (s *Session) CacheUser(user api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := set(s.db, keyUser, userJSON); err != nil {
		return err
	}
	s.user = &user
	return nil
}

// Token returns the bearer token, or "" when the session is absent or the
// token's exp claim has passed. Opaque non-JWT tokens are treated as
// non-expiring. Implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil {
		return ""
	}
	buf, err := s.token.Open()
	if err != nil {
		s.logger.Warn("token enclave unreadable", "error", err.Error())
		return ""
	}
	defer buf.Destroy()

	token := buf.String()
	if tokenExpired(token) {
		s.logger.Info("stored token expired")
		return ""
	}
	return token
}

// CurrentUser returns the cached user object, when one is present.
func (s *Session) CurrentUser() (api.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a usable (present, unexpired) token is
// held. The feed's like guard keys off this: unauthenticated likes are
// silent no-ops.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Clear tears the session down: credentials are removed from the store and
// the in-memory enclave is dropped. Called on logout and by the api
// client's 401 hook.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := del(s.db, keyToken, keyUser); err != nil {
		return err
	}
	s.token = nil
	s.user = nil
	s.logger.Info("session cleared")
	return nil
}

// Close releases the credential store. The session is unusable afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// tokenExpired peeks at a JWT's exp claim without verifying the signature.
// Verification is the backend's job; the client only wants to avoid
// issuing requests it knows will bounce with a 401.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Not a JWT; treat as opaque and let the backend judge it.
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
