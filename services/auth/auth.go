// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package auth runs the login, registration and OAuth redirect flows and
// owns the handoff into the persistent session.
package auth

import (
	"context"
	"fmt"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/logging"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// Flow binds the auth endpoints to the session store.
type Flow struct {
	client  *api.Client
	session *session.Session
	logger  *logging.Logger
}

func NewFlow(client *api.Client, sess *session.Session, logger *logging.Logger) *Flow {
	if logger == nil {
		logger = logging.New(logging.Config{Quiet: true, Service: "auth"})
	}
	return &Flow{client: client, session: sess, logger: logger}
}

// Login authenticates and establishes the session. Credential validation
// happens before the wire; a failed login leaves any existing session
// untouched.
func (f *Flow) Login(ctx context.Context, email, password string) (api.User, error) {
	creds := api.Credentials{Email: email, Password: password}
	if err := validation.Struct(creds); err != nil {
		return api.User{}, err
	}
	resp, err := f.client.Login(ctx, creds)
	if err != nil {
		return api.User{}, err
	}
	if err := f.session.Establish(resp.Token, resp.User); err != nil {
		return api.User{}, err
	}
	f.logger.Info("logged in", "user_id", resp.User.ID)
	return resp.User, nil
}

// Register creates the account and logs straight in, matching the
// backend's register response carrying a token.
func (f *Flow) Register(ctx context.Context, reg api.Registration) (api.User, error) {
	if err := validation.Struct(reg); err != nil {
		return api.User{}, err
	}
	resp, err := f.client.Register(ctx, reg)
	if err != nil {
		return api.User{}, err
	}
	if err := f.session.Establish(resp.Token, resp.User); err != nil {
		return api.User{}, err
	}
	f.logger.Info("registered", "user_id", resp.User.ID)
	return resp.User, nil
}

// CompleteOAuth finishes the Google redirect flow: the token from the
// redirect URL establishes the session, then the profile is fetched with
// it. A redirect carrying an error (or neither token nor error) fails
// without touching the session.
func (f *Flow) CompleteOAuth(ctx context.Context, redirectURL string) (api.User, error) {
	result, err := api.ParseOAuthRedirect(redirectURL)
	if err != nil {
		return api.User{}, err
	}
	if result.Err != "" {
		return api.User{}, fmt.Errorf("auth: provider rejected sign-in: %s", result.Err)
	}
	if err := f.session.EstablishToken(result.Token); err != nil {
		return api.User{}, err
	}
	user, err := f.client.Me(ctx)
	if err != nil {
		// Token proved unusable; do not leave a half-open session.
		f.session.Clear()
		return api.User{}, err
	}
	if err := f.session.CacheUser(user); err != nil {
		return api.User{}, err
	}
	f.logger.Info("oauth login", "user_id", user.ID)
	return user, nil
}

// Logout clears the persistent session. Safe to call when logged out.
func (f *Flow) Logout() error {
	return f.session.Clear()
}
