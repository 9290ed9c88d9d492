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

// ListProgress fetches the caller's learning progress log.
func (c *Client) ListProgress(ctx context.Context) ([]LearningProgressEntry, error) {
	var out []LearningProgressEntry
	if err := c.getJSON(ctx, "/v1/progress", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProgress adds a progress entry and returns the stored record.
func (c *Client) CreateProgress(ctx context.Context, req LearningProgressRequest) (LearningProgressEntry, error) {
	var out LearningProgressEntry
	if err := c.postJSON(ctx, "/v1/progress", req, &out); err != nil {
		return LearningProgressEntry{}, err
	}
	return out, nil
}

// UpdateProgress edits a progress entry.
func (c *Client) UpdateProgress(ctx context.Context, id string, req LearningProgressRequest) (LearningProgressEntry, error) {
	var out LearningProgressEntry
	if err := c.putJSON(ctx, "/v1/progress/"+url.PathEscape(id), req, &out); err != nil {
		return LearningProgressEntry{}, err
	}
	return out, nil
}

// DeleteProgress removes a progress entry.
func (c *Client) DeleteProgress(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/progress/"+url.PathEscape(id))
}
