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

	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

var (
	profileBio       string
	profileLocation  string
	profileLevel     string
	profileInterests []string
	profileEquipment []string
	profilePhoto     string

	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
		RunE:  runProfile,
	}
)

// runProfile shows the profile when called without flags, or saves the
// given changes as one explicit update. Nothing autosaves: the backend
// only hears from us when the user asked to save.
func runProfile(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}

	var user api.User
	err := withSpinner("Fetching your profile", func() error {
		var err error
		user, err = cosmo.client.Me(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}

	changed := profileBio != "" || profileLocation != "" || profileLevel != "" ||
		len(profileInterests) > 0 || len(profileEquipment) > 0

	if !changed && profilePhoto == "" {
		renderProfile(user)
		return nil
	}

	if profilePhoto != "" {
		photo, cleanup, err := openFilePart(profilePhoto)
		if err != nil {
			return err
		}
		defer cleanup()
		err = withSpinner("Uploading photo", func() error {
			var err error
			user, err = cosmo.client.UpdatePhoto(cmd.Context(), user.ID, *photo)
			return err
		})
		if err != nil {
			return err
		}
	}

	if changed {
		update := api.ProfileUpdate{
			FullName:       user.FullName,
			Biography:      firstNonEmpty(profileBio, user.Biography),
			Location:       firstNonEmpty(profileLocation, user.Location),
			Timezone:       user.Timezone,
			AstronomyLevel: firstNonEmpty(profileLevel, user.AstronomyLevel),
			Interests:      user.Interests,
			Equipment:      user.Equipment,
			SocialLinks:    user.SocialLinks,
			Languages:      user.Languages,
		}
		if len(profileInterests) > 0 {
			update.Interests = profileInterests
		}
		if len(profileEquipment) > 0 {
			update.Equipment = profileEquipment
		}
		if err := validation.Struct(update); err != nil {
			return err
		}
		err = withSpinner("Saving your profile", func() error {
			var err error
			user, err = cosmo.client.UpdateUser(cmd.Context(), user.ID, update)
			return err
		})
		if err != nil {
			return err
		}
		if err := cosmo.session.CacheUser(user); err != nil {
			return err
		}
	}

	ux.Success("Profile saved.")
	renderProfile(user)
	return nil
}

func renderProfile(user api.User) {
	lines := []string{ux.Styles.Title.Render(user.FullName), user.Email}
	if user.Biography != "" {
		lines = append(lines, user.Biography)
	}
	var facets []string
	if user.AstronomyLevel != "" {
		facets = append(facets, user.AstronomyLevel)
	}
	if user.Location != "" {
		facets = append(facets, user.Location)
	}
	if len(user.Interests) > 0 {
		facets = append(facets, strings.Join(user.Interests, ", "))
	}
	if len(facets) > 0 {
		lines = append(lines, ux.Styles.Muted.Render(strings.Join(facets, " · ")))
	}
	if len(user.Equipment) > 0 {
		lines = append(lines, fmt.Sprintf("Equipment: %s", strings.Join(user.Equipment, ", ")))
	}
	ux.Box(strings.Join(lines, "\n"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	profileCmd.Flags().StringVar(&profileBio, "bio", "", "biography text")
	profileCmd.Flags().StringVar(&profileLocation, "location", "", "where you observe from")
	profileCmd.Flags().StringVar(&profileLevel, "level", "", "astronomy experience level")
	profileCmd.Flags().StringSliceVar(&profileInterests, "interests", nil, "astronomy interests")
	profileCmd.Flags().StringSliceVar(&profileEquipment, "equipment", nil, "telescopes and gear")
	profileCmd.Flags().StringVar(&profilePhoto, "photo", "", "profile photo file")
}
