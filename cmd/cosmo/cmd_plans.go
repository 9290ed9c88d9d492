// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/cmd/cosmo/config"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/plans"
)

var (
	shareEmail string
	sharePhone string

	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Create and share learning plans",
	}

	planListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show learning plans",
		RunE:  runPlanList,
	}

	planCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a learning plan with the step-by-step wizard",
		RunE:  runPlanCreate,
	}

	planEditCmd = &cobra.Command{
		Use:   "edit [plan-id]",
		Short: "Edit one of your plans",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlanEdit,
	}

	planDeleteCmd = &cobra.Command{
		Use:   "delete [plan-id]",
		Short: "Delete one of your plans",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlanDelete,
	}

	planShareCmd = &cobra.Command{
		Use:   "share [plan-id]",
		Short: "Share a plan by email or WhatsApp",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlanShare,
	}
)

func refreshPlans(cmd *cobra.Command) error {
	return withSpinner("Fetching plans", func() error {
		return cosmo.plans.Refresh(cmd.Context())
	})
}

func runPlanList(cmd *cobra.Command, args []string) error {
	if err := refreshPlans(cmd); err != nil {
		return err
	}
	list := cosmo.plans.Plans()
	if len(list) == 0 {
		ux.Muted("No learning plans yet.")
		return nil
	}
	for _, plan := range list {
		price := "free"
		if plan.Price != nil {
			price = fmt.Sprintf("$%.2f", *plan.Price)
		}
		ux.Box(strings.Join([]string{
			ux.Styles.Title.Render(plan.Title),
			plan.Description,
			ux.Styles.Muted.Render(fmt.Sprintf("%s  %s · %d weeks · %s",
				plan.ID, plan.DifficultyLevel, plan.DurationWeeks, price)),
		}, "\n"))
	}
	return nil
}

// runPlanCreate walks the four wizard pages. Nothing is validated until
// the final submit; Back keeps everything typed so far, and quitting the
// form discards the draft entirely.
func runPlanCreate(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}

	wizard := plans.NewWizard(cosmo.plans)
	var weeksText, priceText string
	var materialPaths string

	for {
		var err error
		switch wizard.Step() {
		case plans.StepTitle:
			err = huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Plan title").Value(&wizard.Title),
			).Title("Step 1 of 4 - Title")).Run()
		case plans.StepDetails:
			err = huh.NewForm(huh.NewGroup(
				huh.NewText().Title("Description").Value(&wizard.Description),
				huh.NewSelect[string]().Title("Difficulty").
					Options(
						huh.NewOption(api.DifficultyBeginner, api.DifficultyBeginner),
						huh.NewOption(api.DifficultyIntermediate, api.DifficultyIntermediate),
						huh.NewOption(api.DifficultyAdvanced, api.DifficultyAdvanced),
					).Value(&wizard.Difficulty),
				huh.NewInput().Title("Duration (weeks)").Value(&weeksText),
				huh.NewInput().Title("Certificate (optional)").Value(&wizard.Certificate),
				huh.NewInput().Title("Price (optional)").Value(&priceText),
				huh.NewConfirm().Title("Public?").Value(&wizard.IsPublic),
			).Title("Step 2 of 4 - Details")).Run()
		case plans.StepUpload:
			err = huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Material files (comma separated, optional)").
					Value(&materialPaths),
			).Title("Step 3 of 4 - Upload")).Run()
		case plans.StepReview:
			return submitPlan(cmd, wizard, weeksText, priceText, materialPaths)
		}
		if err != nil {
			// User aborted the form: discard the draft, as promised.
			wizard.Cancel()
			ux.Muted("Plan discarded.")
			return nil
		}
		if err := wizard.Next(); err != nil {
			return err
		}
	}
}

func submitPlan(cmd *cobra.Command, wizard *plans.Wizard, weeksText, priceText, materialPaths string) error {
	// Free-text numerics parse here, at the same boundary as the rest of
	// the validation.
	if weeksText != "" {
		weeks, err := strconv.Atoi(strings.TrimSpace(weeksText))
		if err != nil {
			return fmt.Errorf("duration must be a whole number of weeks: %w", err)
		}
		wizard.Weeks = weeks
	}
	if priceText != "" {
		price, err := strconv.ParseFloat(strings.TrimSpace(priceText), 64)
		if err != nil {
			return fmt.Errorf("price must be a number: %w", err)
		}
		wizard.Price = &price
	}

	var paths []string
	for _, p := range strings.Split(materialPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	materials, cleanup, err := openFileParts(paths)
	if err != nil {
		return err
	}
	defer cleanup()
	wizard.Materials = materials

	req := wizard.Request()
	ux.Title("Step 4 of 4 - Review")
	ux.Info(fmt.Sprintf("%s (%s, %d weeks)", req.Title, req.DifficultyLevel, req.DurationWeeks))
	ux.Info(req.Description)
	if !confirm("Publish this plan?") {
		wizard.Cancel()
		ux.Muted("Plan discarded.")
		return nil
	}

	var created api.LearningPlan
	err = withSpinner("Publishing the plan", func() error {
		var err error
		created, err = wizard.Submit(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Plan %s published.", created.ID))
	return nil
}

func runPlanEdit(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := refreshPlans(cmd); err != nil {
		return err
	}
	current, ok := cosmo.plans.Plan(args[0])
	if !ok {
		return fmt.Errorf("plan %s not found", args[0])
	}
	if !cosmo.plans.CanModify(current) {
		return fmt.Errorf("plan %s is not yours to edit", args[0])
	}

	req := api.LearningPlanRequest{
		Title:           current.Title,
		Description:     current.Description,
		DifficultyLevel: current.DifficultyLevel,
		DurationWeeks:   current.DurationWeeks,
		Certificate:     current.Certificate,
		Price:           current.Price,
		IsPublic:        current.IsPublic,
	}
	weeksText := strconv.Itoa(req.DurationWeeks)
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(&req.Title),
		huh.NewText().Title("Description").Value(&req.Description),
		huh.NewSelect[string]().Title("Difficulty").
			Options(
				huh.NewOption(api.DifficultyBeginner, api.DifficultyBeginner),
				huh.NewOption(api.DifficultyIntermediate, api.DifficultyIntermediate),
				huh.NewOption(api.DifficultyAdvanced, api.DifficultyAdvanced),
			).Value(&req.DifficultyLevel),
		huh.NewInput().Title("Duration (weeks)").Value(&weeksText),
		huh.NewConfirm().Title("Public?").Value(&req.IsPublic),
	)).Run()
	if err != nil {
		ux.Muted("Edit cancelled.")
		return nil
	}
	weeks, err := strconv.Atoi(strings.TrimSpace(weeksText))
	if err != nil {
		return fmt.Errorf("duration must be a whole number of weeks: %w", err)
	}
	req.DurationWeeks = weeks

	err = withSpinner("Saving", func() error {
		_, err := cosmo.plans.Update(cmd.Context(), args[0], req)
		return err
	})
	if err != nil {
		return err
	}
	ux.Success("Plan updated.")
	return nil
}

func runPlanDelete(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := refreshPlans(cmd); err != nil {
		return err
	}
	err := cosmo.plans.Delete(cmd.Context(), args[0], func() bool {
		return confirm(fmt.Sprintf("Delete plan %s?", args[0]))
	})
	if err != nil {
		return err
	}
	ux.Success("Done.")
	return nil
}

func runPlanShare(cmd *cobra.Command, args []string) error {
	if err := refreshPlans(cmd); err != nil {
		return err
	}
	links, err := cosmo.plans.Share(cmd.Context(), args[0], plans.ShareOptions{
		Email:  shareEmail,
		Phone:  sharePhone,
		AppURL: shareAppURL(),
	})
	if err != nil {
		return err
	}
	ux.Title("Share links")
	ux.Info(links.Mailto)
	if links.WhatsApp != "" {
		ux.Info(links.WhatsApp)
	}
	return nil
}

func shareAppURL() string {
	return config.Global.Share.AppURL
}

func init() {
	planShareCmd.Flags().StringVar(&shareEmail, "email", "", "recipient email address")
	planShareCmd.Flags().StringVar(&sharePhone, "phone", "", "recipient WhatsApp number (+countrycode...)")
}
