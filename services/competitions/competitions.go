// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package competitions mirrors the competition board.
package competitions

import (
	"context"
	"errors"
	"time"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/mirror"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// ErrDatesInverted is returned when a listing ends before it starts.
var ErrDatesInverted = errors.New("competitions: end date before start date")

// Board is the view-state owner for competition listings.
type Board struct {
	client       *api.Client
	competitions *mirror.Mirror[api.Competition]
	mutator      *mirror.Mutator[api.Competition]
}

func NewBoard(client *api.Client) *Board {
	competitions := mirror.New(func(c api.Competition) string { return c.ID })
	return &Board{
		client:       client,
		competitions: competitions,
		mutator:      mirror.NewMutator(competitions),
	}
}

// Refresh replaces the board with the backend's current listings.
func (b *Board) Refresh(ctx context.Context) error {
	return b.competitions.Load(ctx, b.client.ListCompetitions)
}

// Competitions returns the mirrored board in backend order.
func (b *Board) Competitions() []api.Competition {
	return b.competitions.Items()
}

// Active filters the mirror down to listings running at the given time.
func (b *Board) Active(at time.Time) []api.Competition {
	var out []api.Competition
	for _, c := range b.competitions.Items() {
		if !at.Before(c.StartDate) && !at.After(c.EndDate) {
			out = append(out, c)
		}
	}
	return out
}

// Create validates and submits a listing with its optional banner and
// instruction files, appending the stored entity on confirmation.
func (b *Board) Create(ctx context.Context, req api.CompetitionRequest, banner, instructions *api.FilePart) (api.Competition, error) {
	if err := checkRequest(req); err != nil {
		return api.Competition{}, err
	}
	created, err := b.client.CreateCompetition(ctx, req, banner, instructions)
	if err != nil {
		return api.Competition{}, err
	}
	b.competitions.Append(created)
	return created, nil
}

// Update edits a listing; nil files keep the stored ones.
func (b *Board) Update(ctx context.Context, id string, req api.CompetitionRequest, banner, instructions *api.FilePart) (api.Competition, error) {
	if err := checkRequest(req); err != nil {
		return api.Competition{}, err
	}
	var updated api.Competition
	err := b.mutator.Run(ctx, id,
		func(ctx context.Context) error {
			var err error
			updated, err = b.client.UpdateCompetition(ctx, id, req, banner, instructions)
			return err
		},
		func(m *mirror.Mirror[api.Competition]) { m.Replace(updated) },
	)
	if err != nil {
		return api.Competition{}, err
	}
	return updated, nil
}

// Delete removes a listing after confirmation. Declining issues no
// request.
func (b *Board) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return b.mutator.Run(ctx, id,
		func(ctx context.Context) error { return b.client.DeleteCompetition(ctx, id) },
		func(m *mirror.Mirror[api.Competition]) { m.RemoveByID(id) },
	)
}

func checkRequest(req api.CompetitionRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrDatesInverted
	}
	return nil
}
