// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/cmd/cosmo/config"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/logging"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/auth"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/competitions"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/feed"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/notify"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/plans"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/progress"
)

// --- Global Command Variables ---
var (
	quietMode bool
	apiURL    string
	yesFlag   bool

	rootCmd = &cobra.Command{
		Use:   "cosmo",
		Short: "A cli for the Cosmo Connect astronomy learning community",
		Long: `Cosmo Connect is a skill-sharing community for amateur astronomers.
This cli talks to the Cosmo Connect backend: browse and post to the feed,
manage learning plans, log study progress, and follow competitions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ux.SetQuiet(quietMode)
			return bootstrap()
		},
	}
)

// app holds the wired service graph for the lifetime of one command.
type app struct {
	logger       *logging.Logger
	session      *session.Session
	client       *api.Client
	auth         *auth.Flow
	feed         *feed.Controller
	plans        *plans.Service
	notify       *notify.Center
	progress     *progress.Tracker
	competitions *competitions.Board
}

var cosmo app

// bootstrap wires config, logging, the persistent session and the API
// client. Every command runs through here via PersistentPreRunE.
func bootstrap() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Global

	cosmo.logger = logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.Logging.Level),
		LogDir:  cfg.Logging.Dir,
		Service: "cosmo",
		JSON:    cfg.Logging.JSON,
		Quiet:   true, // cli output goes through ux, not the logger
	})

	sessionDir, err := config.SessionDir()
	if err != nil {
		return err
	}
	cosmo.session, err = session.Open(sessionDir, cosmo.logger)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	baseURL := cfg.API.BaseURL
	if apiURL != "" {
		baseURL = apiURL
	}
	opts := []api.Option{
		api.WithTokenSource(cosmo.session),
		api.WithLogger(cosmo.logger),
		api.WithUnauthorizedHook(func() {
			// Expired or revoked token: drop the session so the next
			// command starts logged out instead of looping on 401s.
			if err := cosmo.session.Clear(); err != nil {
				cosmo.logger.Warn("session clear failed", "error", err)
			}
			ux.Warning("Your session has expired, please log in again.")
		}),
	}
	if cfg.API.RateLimit > 0 {
		opts = append(opts, api.WithRateLimit(cfg.API.RateLimit, cfg.API.Burst))
	}
	cosmo.client = api.New(baseURL, opts...)

	cosmo.auth = auth.NewFlow(cosmo.client, cosmo.session, cosmo.logger)
	cosmo.feed = feed.NewController(cosmo.client, cosmo.session, cosmo.logger)
	cosmo.plans = plans.NewService(cosmo.client, cosmo.session, cosmo.logger)
	cosmo.notify = notify.NewCenter(cosmo.client)
	cosmo.progress = progress.NewTracker(cosmo.client)
	cosmo.competitions = competitions.NewBoard(cosmo.client)
	return nil
}

func shutdown() {
	if cosmo.session != nil {
		if err := cosmo.session.Close(); err != nil {
			cosmo.logger.Warn("session close failed", "error", err)
		}
	}
	if cosmo.logger != nil {
		cosmo.logger.Close()
	}
}

// requireLogin fails fast for commands that cannot run logged out.
func requireLogin() error {
	if !cosmo.session.Authenticated() {
		return fmt.Errorf("you are not logged in; run 'cosmo login' first")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "plain machine-friendly output")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the backend base URL")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompts")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(oauthCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(profileCmd)

	rootCmd.AddCommand(feedCmd)
	feedCmd.AddCommand(feedListCmd)
	feedCmd.AddCommand(feedPostCmd)
	feedCmd.AddCommand(feedEditCmd)
	feedCmd.AddCommand(feedDeleteCmd)
	feedCmd.AddCommand(feedLikeCmd)

	rootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentLikeCmd)

	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planEditCmd)
	planCmd.AddCommand(planDeleteCmd)
	planCmd.AddCommand(planShareCmd)

	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressAddCmd)
	progressCmd.AddCommand(progressDeleteCmd)

	rootCmd.AddCommand(competitionCmd)
	competitionCmd.AddCommand(competitionListCmd)
	competitionCmd.AddCommand(competitionCreateCmd)
	competitionCmd.AddCommand(competitionDeleteCmd)

	rootCmd.AddCommand(notificationsCmd)
}
