// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package progress mirrors the personal study log. All mutations block
// on the backend and reconcile afterwards.
package progress

import (
	"context"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/mirror"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// Tracker is the view-state owner for learning progress entries.
type Tracker struct {
	client  *api.Client
	entries *mirror.Mirror[api.LearningProgressEntry]
	mutator *mirror.Mutator[api.LearningProgressEntry]
}

func NewTracker(client *api.Client) *Tracker {
	entries := mirror.New(func(e api.LearningProgressEntry) string { return e.ID })
	return &Tracker{
		client:  client,
		entries: entries,
		mutator: mirror.NewMutator(entries),
	}
}

// Refresh replaces the log with the backend's current state.
func (t *Tracker) Refresh(ctx context.Context) error {
	return t.entries.Load(ctx, t.client.ListProgress)
}

// Entries returns the mirrored log in backend order.
func (t *Tracker) Entries() []api.LearningProgressEntry {
	return t.entries.Items()
}

// Add validates and creates a progress entry, appending the stored
// record on confirmation.
func (t *Tracker) Add(ctx context.Context, req api.LearningProgressRequest) (api.LearningProgressEntry, error) {
	if err := validation.Struct(req); err != nil {
		return api.LearningProgressEntry{}, err
	}
	created, err := t.client.CreateProgress(ctx, req)
	if err != nil {
		return api.LearningProgressEntry{}, err
	}
	t.entries.Append(created)
	return created, nil
}

// Update replaces an entry's fields after backend confirmation.
func (t *Tracker) Update(ctx context.Context, id string, req api.LearningProgressRequest) (api.LearningProgressEntry, error) {
	if err := validation.Struct(req); err != nil {
		return api.LearningProgressEntry{}, err
	}
	var updated api.LearningProgressEntry
	err := t.mutator.Run(ctx, id,
		func(ctx context.Context) error {
			var err error
			updated, err = t.client.UpdateProgress(ctx, id, req)
			return err
		},
		func(m *mirror.Mirror[api.LearningProgressEntry]) { m.Replace(updated) },
	)
	if err != nil {
		return api.LearningProgressEntry{}, err
	}
	return updated, nil
}

// Delete removes an entry after confirmation. Declining issues no
// request.
func (t *Tracker) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return t.mutator.Run(ctx, id,
		func(ctx context.Context) error { return t.client.DeleteProgress(ctx, id) },
		func(m *mirror.Mirror[api.LearningProgressEntry]) { m.RemoveByID(id) },
	)
}
