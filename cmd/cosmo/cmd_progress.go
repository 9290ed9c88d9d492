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
	progTopic   string
	progSubject string
	progStart   string
	progEnd     string
	progHours   float64
	progStage   int
	progSkills  []string

	progressCmd = &cobra.Command{
		Use:   "progress",
		Short: "Track your study log",
	}

	progressListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show your progress entries",
		RunE:  runProgressList,
	}

	progressAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Log a study period",
		RunE:  runProgressAdd,
	}

	progressDeleteCmd = &cobra.Command{
		Use:   "delete [entry-id]",
		Short: "Remove a progress entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runProgressDelete,
	}
)

func refreshProgress(cmd *cobra.Command) error {
	return withSpinner("Fetching your study log", func() error {
		return cosmo.progress.Refresh(cmd.Context())
	})
}

func runProgressList(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := refreshProgress(cmd); err != nil {
		return err
	}
	entries := cosmo.progress.Entries()
	if len(entries) == 0 {
		ux.Muted("No study log entries yet.")
		return nil
	}
	for _, e := range entries {
		stage := strings.Repeat("★", e.CurrentProgressStage) +
			strings.Repeat("☆", 10-e.CurrentProgressStage)
		ux.Box(strings.Join([]string{
			ux.Styles.Title.Render(e.Topic),
			fmt.Sprintf("%s · %.1fh", e.Subject, e.TimeSpentInHours),
			ux.Styles.Muted.Render(fmt.Sprintf("%s  %s → %s  %s",
				e.ID,
				e.StartDate.Format("2006-01-02"),
				e.EndDate.Format("2006-01-02"),
				stage)),
		}, "\n"))
	}
	return nil
}

func runProgressAdd(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	start, err := time.Parse("2006-01-02", progStart)
	if err != nil {
		return fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}
	end, err := time.Parse("2006-01-02", progEnd)
	if err != nil {
		return fmt.Errorf("end date must be YYYY-MM-DD: %w", err)
	}

	entry, err := cosmo.progress.Add(cmd.Context(), api.LearningProgressRequest{
		Topic:                progTopic,
		Subject:              progSubject,
		StartDate:            start,
		EndDate:              end,
		TimeSpentInHours:     progHours,
		CurrentProgressStage: progStage,
		Skills:               progSkills,
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Logged %s.", entry.ID))
	return nil
}

func runProgressDelete(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := refreshProgress(cmd); err != nil {
		return err
	}
	err := cosmo.progress.Delete(cmd.Context(), args[0], func() bool {
		return confirm("Remove this entry from your study log?")
	})
	if err != nil {
		return err
	}
	ux.Success("Done.")
	return nil
}

func init() {
	progressAddCmd.Flags().StringVar(&progTopic, "topic", "", "what you studied")
	progressAddCmd.Flags().StringVar(&progSubject, "subject", "", "broader subject area")
	progressAddCmd.Flags().StringVar(&progStart, "start", "", "start date (YYYY-MM-DD)")
	progressAddCmd.Flags().StringVar(&progEnd, "end", "", "end date (YYYY-MM-DD)")
	progressAddCmd.Flags().Float64Var(&progHours, "hours", 0, "time spent in hours")
	progressAddCmd.Flags().IntVar(&progStage, "stage", 1, "progress stage (1-10)")
	progressAddCmd.Flags().StringSliceVar(&progSkills, "skills", nil, "skills practised")
}
