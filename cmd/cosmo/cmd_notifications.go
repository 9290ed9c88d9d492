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

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
)

var (
	markReadID string

	notificationsCmd = &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Show your notifications",
		RunE:    runNotifications,
	}
)

func runNotifications(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	err := withSpinner("Fetching notifications", func() error {
		return cosmo.notify.Refresh(cmd.Context())
	})
	if err != nil {
		return err
	}

	if markReadID != "" {
		if err := cosmo.notify.MarkRead(cmd.Context(), markReadID); err != nil {
			return err
		}
	}

	list := cosmo.notify.Notifications()
	if len(list) == 0 {
		ux.Muted("No notifications.")
		return nil
	}
	ux.Title(fmt.Sprintf("Notifications (%d unread)", cosmo.notify.UnreadCount()))
	for _, n := range list {
		marker := ux.IconPending.Render()
		text := n.Message
		if n.IsRead {
			marker = " "
			text = ux.Styles.Muted.Render(text)
		}
		ux.Info(fmt.Sprintf("%s %s %s  %s", marker, ux.Styles.Muted.Render(n.ID),
			text, ux.Styles.Muted.Render(n.CreatedAt.Format("Jan 2 15:04"))))
	}
	return nil
}

func init() {
	notificationsCmd.Flags().StringVar(&markReadID, "mark-read", "", "mark a notification as read")
}
