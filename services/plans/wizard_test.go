// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package plans

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
)

func TestWizardStepsAreLinear(t *testing.T) {
	w := NewWizard(nil)
	assert.Equal(t, StepTitle, w.Step())

	assert.ErrorIs(t, w.Back(), ErrWizardAtStart)

	require.NoError(t, w.Next())
	assert.Equal(t, StepDetails, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepUpload, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())

	assert.ErrorIs(t, w.Next(), ErrWizardDone)
}

func TestWizardBackKeepsDraft(t *testing.T) {
	w := NewWizard(nil)
	w.Title = "Orbital Mechanics"
	require.NoError(t, w.Next())
	w.Description = "Kepler to Hohmann transfers in six weeks"
	w.Difficulty = api.DifficultyIntermediate
	w.Weeks = 6

	require.NoError(t, w.Back())
	assert.Equal(t, "Orbital Mechanics", w.Title)
	assert.Equal(t, "Kepler to Hohmann transfers in six weeks", w.Description)
	assert.Equal(t, 6, w.Weeks)
}

func TestWizardNoValidationBeforeSubmit(t *testing.T) {
	// An entirely blank draft walks through every step; only Submit
	// rejects it.
	w := NewWizard(nil)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())
}

func TestWizardCancelDiscardsDraft(t *testing.T) {
	w := NewWizard(nil)
	w.Title = "Draft to throw away"
	require.NoError(t, w.Next())
	w.Description = "gone"

	w.Cancel()
	assert.Equal(t, StepTitle, w.Step())
	assert.Empty(t, w.Title)
	assert.Empty(t, w.Description)
	assert.Empty(t, w.Materials)
}

func TestWizardSubmitValidatesWholeDraft(t *testing.T) {
	service, requests := planFixture(t)
	w := NewWizard(service)
	w.Title = "Orbital Mechanics"
	// Description intentionally missing.
	w.Difficulty = api.DifficultyIntermediate
	w.Weeks = 6
	before := requests.Load()

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, before, requests.Load(), "invalid drafts never reach the wire")

	w.Description = "Kepler to Hohmann transfers in six weeks"
	created, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Orbital Mechanics", created.Title)
}
