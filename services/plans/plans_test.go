// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package plans

import (
	"context"
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
)

// planServer stores created plans in memory and echoes them back, which
// is enough to prove the submit-then-read round trip keeps every field.
func planServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var stored []api.LearningPlan
	var requests atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/learningplan":
			json.NewEncoder(w).Encode(stored)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/learningplan":
			mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			require.NoError(t, err)
			require.Equal(t, "multipart/form-data", mediaType)
			reader := multipart.NewReader(r.Body, params["boundary"])
			form, err := reader.ReadForm(32 << 20)
			require.NoError(t, err)
			require.Contains(t, form.Value, "plan")

			var req api.LearningPlanRequest
			require.NoError(t, json.Unmarshal([]byte(form.Value["plan"][0]), &req))
			plan := api.LearningPlan{
				ID:              uuid.NewString(),
				Title:           req.Title,
				Description:     req.Description,
				DifficultyLevel: req.DifficultyLevel,
				DurationWeeks:   req.DurationWeeks,
				Certificate:     req.Certificate,
				Price:           req.Price,
				IsPublic:        req.IsPublic,
				CreatedBy:       "u1",
			}
			for _, file := range form.File["materials"] {
				plan.LearningMaterials = append(plan.LearningMaterials, file.Filename)
			}
			stored = append(stored, plan)
			json.NewEncoder(w).Encode(plan)
		default:
			w.Write([]byte("{}"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func planFixture(t *testing.T) (*Service, *atomic.Int64) {
	t.Helper()
	srv, requests := planServer(t)

	sess, err := session.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	require.NoError(t, sess.Establish("opaque-test-token", api.User{ID: "u1", FullName: "Nova"}))

	client := api.New(srv.URL+"/api", api.WithTokenSource(sess))
	return NewService(client, sess, nil), requests
}

func TestPlanRoundTripPreservesEveryField(t *testing.T) {
	service, _ := planFixture(t)
	ctx := context.Background()

	req := api.LearningPlanRequest{
		Title:           "Orbital Mechanics",
		Description:     "Kepler to Hohmann transfers in six weeks",
		DifficultyLevel: api.DifficultyIntermediate,
		DurationWeeks:   6,
		Certificate:     "None",
		IsPublic:        true,
	}
	created, err := service.Create(ctx, req, nil)
	require.NoError(t, err)

	require.NoError(t, service.Refresh(ctx))
	listed, ok := service.Plan(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Orbital Mechanics", listed.Title)
	assert.Equal(t, "Kepler to Hohmann transfers in six weeks", listed.Description)
	assert.Equal(t, api.DifficultyIntermediate, listed.DifficultyLevel)
	assert.Equal(t, 6, listed.DurationWeeks)
	assert.Equal(t, "None", listed.Certificate)
	assert.Nil(t, listed.Price)
	assert.True(t, listed.IsPublic)
}

func TestCreateRejectsUnknownDifficulty(t *testing.T) {
	service, requests := planFixture(t)
	before := requests.Load()

	_, err := service.Create(context.Background(), api.LearningPlanRequest{
		Title:           "Quasars",
		Description:     "what even is a quasar",
		DifficultyLevel: "Expert",
		DurationWeeks:   2,
	}, nil)
	require.Error(t, err)
	assert.Equal(t, before, requests.Load())
}

func TestDeleteDeclinedKeepsPlan(t *testing.T) {
	service, requests := planFixture(t)
	ctx := context.Background()

	_, err := service.Create(ctx, api.LearningPlanRequest{
		Title:           "Meteor Showers",
		Description:     "Perseids and Geminids observing guide",
		DifficultyLevel: api.DifficultyBeginner,
		DurationWeeks:   1,
	}, nil)
	require.NoError(t, err)

	before := requests.Load()
	plans := service.Plans()
	require.Len(t, plans, 1)

	require.NoError(t, service.Delete(ctx, plans[0].ID, func() bool { return false }))
	assert.Equal(t, before, requests.Load())
	assert.Len(t, service.Plans(), 1)
}

func TestCanModifyChecksOwnership(t *testing.T) {
	service, _ := planFixture(t)

	assert.True(t, service.CanModify(api.LearningPlan{CreatedBy: "u1"}))
	assert.False(t, service.CanModify(api.LearningPlan{CreatedBy: "u2"}))
}
