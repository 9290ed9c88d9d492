// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
)

var (
	compTitle        string
	compDescription  string
	compStart        string
	compEnd          string
	compBanner       string
	compInstructions string
	compActiveOnly   bool

	competitionCmd = &cobra.Command{
		Use:     "competition",
		Aliases: []string{"comp"},
		Short:   "Browse and run astronomy competitions",
	}

	competitionListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show competition listings",
		RunE:  runCompetitionList,
	}

	competitionCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Publish a competition",
		RunE:  runCompetitionCreate,
	}

	competitionDeleteCmd = &cobra.Command{
		Use:   "delete [competition-id]",
		Short: "Remove a competition listing",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompetitionDelete,
	}
)

func runCompetitionList(cmd *cobra.Command, args []string) error {
	err := withSpinner("Fetching competitions", func() error {
		return cosmo.competitions.Refresh(cmd.Context())
	})
	if err != nil {
		return err
	}

	list := cosmo.competitions.Competitions()
	if compActiveOnly {
		list = cosmo.competitions.Active(time.Now())
	}
	if len(list) == 0 {
		ux.Muted("No competitions right now.")
		return nil
	}
	for _, c := range list {
		ux.Box(strings.Join([]string{
			ux.Styles.Title.Render(c.Title),
			c.Description,
			ux.Styles.Muted.Render(fmt.Sprintf("%s  %s → %s",
				c.ID, c.StartDate.Format("Jan 2"), c.EndDate.Format("Jan 2 2006"))),
		}, "\n"))
	}
	return nil
}

func runCompetitionCreate(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	start, err := time.Parse("2006-01-02", compStart)
	if err != nil {
		return fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}
	end, err := time.Parse("2006-01-02", compEnd)
	if err != nil {
		return fmt.Errorf("end date must be YYYY-MM-DD: %w", err)
	}

	banner, closeBanner, err := openFilePart(compBanner)
	if err != nil {
		return err
	}
	defer closeBanner()
	instructions, closeInstructions, err := openFilePart(compInstructions)
	if err != nil {
		return err
	}
	defer closeInstructions()

	var created api.Competition
	err = withSpinner("Publishing the competition", func() error {
		var err error
		created, err = cosmo.competitions.Create(cmd.Context(), api.CompetitionRequest{
			Title:       compTitle,
			Description: compDescription,
			StartDate:   start,
			EndDate:     end,
		}, banner, instructions)
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Competition %s published.", created.ID))
	return nil
}

func runCompetitionDelete(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := withSpinner("Fetching competitions", func() error {
		return cosmo.competitions.Refresh(cmd.Context())
	}); err != nil {
		return err
	}
	err := cosmo.competitions.Delete(cmd.Context(), args[0], func() bool {
		return confirm(fmt.Sprintf("Delete competition %s?", args[0]))
	})
	if err != nil {
		return err
	}
	ux.Success("Done.")
	return nil
}

func init() {
	competitionListCmd.Flags().BoolVar(&compActiveOnly, "active", false, "only competitions running today")

	competitionCreateCmd.Flags().StringVar(&compTitle, "title", "", "competition title")
	competitionCreateCmd.Flags().StringVar(&compDescription, "description", "", "what the competition is about")
	competitionCreateCmd.Flags().StringVar(&compStart, "start", "", "start date (YYYY-MM-DD)")
	competitionCreateCmd.Flags().StringVar(&compEnd, "end", "", "end date (YYYY-MM-DD)")
	competitionCreateCmd.Flags().StringVar(&compBanner, "banner", "", "banner image file")
	competitionCreateCmd.Flags().StringVar(&compInstructions, "instructions", "", "instructions PDF")
}
