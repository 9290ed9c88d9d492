// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
)

var (
	loginEmail    string
	loginPassword string

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE:  runLogin,
	}

	registerCmd = &cobra.Command{
		Use:   "register",
		Short: "Create a Cosmo Connect account",
		RunE:  runRegister,
	}

	oauthCmd = &cobra.Command{
		Use:   "oauth [redirect-url]",
		Short: "Finish a Google sign-in by pasting the redirect URL",
		Long: `After approving the Google consent screen the browser lands on a
redirect URL carrying a token. Paste that full URL here to finish
logging in.`,
		Args: cobra.ExactArgs(1),
		RunE: runOAuth,
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cosmo.auth.Logout(); err != nil {
				return err
			}
			ux.Success("Logged out.")
			return nil
		},
	}

	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := cosmo.session.CurrentUser()
			if !ok {
				ux.Muted("Not logged in.")
				return nil
			}
			ux.Title(user.FullName)
			ux.Info(user.Email)
			return nil
		},
	}
)

func runLogin(cmd *cobra.Command, args []string) error {
	email, password := loginEmail, loginPassword
	if email == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	var user api.User
	err := withSpinner("Logging in", func() error {
		var err error
		user, err = cosmo.auth.Login(cmd.Context(), email, password)
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Welcome back, %s.", user.FullName))
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	var reg api.Registration
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Full name").Value(&reg.FullName),
		huh.NewInput().Title("Email").Value(&reg.Email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&reg.Password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&reg.ConfirmPassword),
	))
	if err := form.Run(); err != nil {
		return err
	}

	var user api.User
	err := withSpinner("Creating your account", func() error {
		var err error
		user, err = cosmo.auth.Register(cmd.Context(), reg)
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Welcome to Cosmo Connect, %s.", user.FullName))
	return nil
}

func runOAuth(cmd *cobra.Command, args []string) error {
	var user api.User
	err := withSpinner("Completing sign-in", func() error {
		var err error
		user, err = cosmo.auth.CompleteOAuth(cmd.Context(), args[0])
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Signed in as %s.", user.FullName))
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")
}
