// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package notify mirrors the notification list and keeps the unread
// badge honest: marking a notification read decrements the count exactly
// once, no matter how many times it is clicked.
package notify

import (
	"context"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/mirror"
)

// Center is the view-state owner for notifications.
type Center struct {
	client        *api.Client
	notifications *mirror.Mirror[api.Notification]
	mutator       *mirror.Mutator[api.Notification]
}

func NewCenter(client *api.Client) *Center {
	notifications := mirror.New(func(n api.Notification) string { return n.ID })
	return &Center{
		client:        client,
		notifications: notifications,
		mutator:       mirror.NewMutator(notifications),
	}
}

// Refresh replaces the list with the backend's current state.
func (c *Center) Refresh(ctx context.Context) error {
	return c.notifications.Load(ctx, c.client.ListNotifications)
}

// Notifications returns the mirrored list in backend order.
func (c *Center) Notifications() []api.Notification {
	return c.notifications.Items()
}

// UnreadCount counts the unread notifications in the mirror.
func (c *Center) UnreadCount() int {
	n := 0
	for _, notification := range c.notifications.Items() {
		if !notification.IsRead {
			n++
		}
	}
	return n
}

// MarkRead flips a notification to read. Already-read notifications are
// a local no-op: no request goes out and the unread count is untouched,
// so repeated clicks decrement the badge at most once. The flip is
// optimistic and reverts if the backend refuses.
func (c *Center) MarkRead(ctx context.Context, id string) error {
	notification, ok := c.notifications.Get(id)
	if !ok {
		return mirror.ErrNotFound
	}
	if notification.IsRead {
		return nil
	}

	err := c.mutator.Do(ctx, id,
		func(n *api.Notification) { n.IsRead = true },
		func(ctx context.Context) error { return c.client.MarkNotificationRead(ctx, id) },
	)
	if err == mirror.ErrMutationInFlight {
		return nil
	}
	return err
}
