// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"net/http"
	"net/url"
)

// Learning plan endpoints live under the versioned /v1 prefix, unlike
// posts and comments. That asymmetry is the backend's, not ours.

// ListLearningPlans fetches the caller's visible plans.
func (c *Client) ListLearningPlans(ctx context.Context) ([]LearningPlan, error) {
	var out []LearningPlan
	if err := c.getJSON(ctx, "/v1/learningplan", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLearningPlan fetches one plan by id.
func (c *Client) GetLearningPlan(ctx context.Context, id string) (LearningPlan, error) {
	var out LearningPlan
	if err := c.getJSON(ctx, "/v1/learningplan/"+url.PathEscape(id), &out); err != nil {
		return LearningPlan{}, err
	}
	return out, nil
}

// CreateLearningPlan submits a plan with optional learning material
// attachments and returns the stored entity.
func (c *Client) CreateLearningPlan(ctx context.Context, req LearningPlanRequest, materials []FilePart) (LearningPlan, error) {
	for i := range materials {
		materials[i].Field = "materials"
	}
	body, contentType, err := encodeMultipart("plan", req, materials)
	if err != nil {
		return LearningPlan{}, err
	}
	var out LearningPlan
	if err := c.do(ctx, http.MethodPost, "/v1/learningplan", body, contentType, &out); err != nil {
		return LearningPlan{}, err
	}
	return out, nil
}

// UpdateLearningPlan replaces a plan's mutable fields.
func (c *Client) UpdateLearningPlan(ctx context.Context, id string, req LearningPlanRequest) (LearningPlan, error) {
	var out LearningPlan
	if err := c.putJSON(ctx, "/v1/learningplan/"+url.PathEscape(id), req, &out); err != nil {
		return LearningPlan{}, err
	}
	return out, nil
}

// DeleteLearningPlan removes a plan.
func (c *Client) DeleteLearningPlan(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/learningplan/"+url.PathEscape(id))
}

// ShareLearningPlan records a share server-side. The deep-link fallback
// (mailto / WhatsApp) is built client-side and bypasses the backend
// entirely; see services/plans.
func (c *Client) ShareLearningPlan(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/v1/learningplan/"+url.PathEscape(id)+"/share", nil, nil)
}
