// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"net/url"
)

// ListNotifications fetches the user's notifications in backend order.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.getJSON(ctx, "/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead flips a notification to read. The controller layer
// guarantees this is only issued for unread ids, which keeps mark-read
// idempotent at the UI: a second click is a local no-op.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/notifications/mark-read/"+url.PathEscape(id), nil, nil)
}
