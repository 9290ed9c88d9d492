// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package plans

import (
	"context"
	"errors"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
)

// Step identifies one page of the plan creation wizard.
type Step int

const (
	StepTitle Step = iota
	StepDetails
	StepUpload
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepTitle:
		return "Title"
	case StepDetails:
		return "Details"
	case StepUpload:
		return "Upload"
	case StepReview:
		return "Review"
	default:
		return "unknown"
	}
}

var (
	// ErrWizardDone is returned by Next past the review step.
	ErrWizardDone = errors.New("plans: wizard already on the last step")
	// ErrWizardAtStart is returned by Back on the first step.
	ErrWizardAtStart = errors.New("plans: wizard already on the first step")
)

// Wizard is the linear plan creation flow: Title, Details, Upload,
// Review. Steps only move one at a time, Back never loses entered data,
// and validation runs once at Submit, not per step. Cancel discards
// everything; no draft survives it.
type Wizard struct {
	service *Service
	step    Step

	// Draft fields, written freely by the UI as the user types.
	Title       string
	Description string
	Difficulty  string
	Weeks       int
	Certificate string
	Price       *float64
	IsPublic    bool
	Materials   []api.FilePart
}

// NewWizard starts a fresh draft on the title step.
func NewWizard(service *Service) *Wizard {
	return &Wizard{service: service, step: StepTitle}
}

// Step returns the current page.
func (w *Wizard) Step() Step {
	return w.step
}

// Next advances one step. Values entered so far are kept as-is; nothing
// is validated here.
func (w *Wizard) Next() error {
	if w.step >= StepReview {
		return ErrWizardDone
	}
	w.step++
	return nil
}

// Back retreats one step without touching the draft.
func (w *Wizard) Back() error {
	if w.step <= StepTitle {
		return ErrWizardAtStart
	}
	w.step--
	return nil
}

// Cancel discards the draft. The wizard is reset to a blank title step;
// the caller is expected to drop it.
func (w *Wizard) Cancel() {
	*w = Wizard{service: w.service, step: StepTitle}
}

// Request assembles the submission payload from the draft.
func (w *Wizard) Request() api.LearningPlanRequest {
	return api.LearningPlanRequest{
		Title:           w.Title,
		Description:     w.Description,
		DifficultyLevel: w.Difficulty,
		DurationWeeks:   w.Weeks,
		Certificate:     w.Certificate,
		Price:           w.Price,
		IsPublic:        w.IsPublic,
	}
}

// Submit validates the whole draft and creates the plan. Validation
// failures leave the wizard on the review step with the draft intact so
// the user can go Back and fix fields.
func (w *Wizard) Submit(ctx context.Context) (api.LearningPlan, error) {
	return w.service.Create(ctx, w.Request(), w.Materials)
}
