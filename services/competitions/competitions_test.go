// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package competitions

import (
	"context"
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
)

func boardFixture(t *testing.T) (*Board, *[]string) {
	t.Helper()
	var stored []api.Competition
	var uploads []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/competitions":
			json.NewEncoder(w).Encode(stored)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/competitions":
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			require.NoError(t, err)
			form, err := multipart.NewReader(r.Body, params["boundary"]).ReadForm(32 << 20)
			require.NoError(t, err)

			var req api.CompetitionRequest
			require.NoError(t, json.Unmarshal([]byte(form.Value["competition"][0]), &req))
			for field, files := range form.File {
				for _, f := range files {
					uploads = append(uploads, field+":"+f.Filename)
				}
			}
			c := api.Competition{
				ID:          uuid.NewString(),
				Title:       req.Title,
				Description: req.Description,
				StartDate:   req.StartDate,
				EndDate:     req.EndDate,
			}
			stored = append(stored, c)
			json.NewEncoder(w).Encode(c)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Write([]byte("{}"))
		}
	}))
	t.Cleanup(srv.Close)

	return NewBoard(api.New(srv.URL + "/api")), &uploads
}

func astroRequest(start time.Time) api.CompetitionRequest {
	return api.CompetitionRequest{
		Title:       "Astrophotography Challenge",
		Description: "Best deep-sky image wins",
		StartDate:   start,
		EndDate:     start.AddDate(0, 1, 0),
	}
}

func TestCreateUploadsBannerAndInstructions(t *testing.T) {
	board, uploads := boardFixture(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	created, err := board.Create(context.Background(), astroRequest(start),
		&api.FilePart{Name: "banner.png", Content: strings.NewReader("png")},
		&api.FilePart{Name: "rules.pdf", Content: strings.NewReader("pdf")})
	require.NoError(t, err)
	assert.Equal(t, "Astrophotography Challenge", created.Title)

	assert.ElementsMatch(t, []string{"banner:banner.png", "instructions:rules.pdf"}, *uploads)
	assert.Len(t, board.Competitions(), 1)
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	board, _ := boardFixture(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	req := astroRequest(start)
	req.EndDate = start.AddDate(0, 0, -1)
	_, err := board.Create(context.Background(), req, nil, nil)
	assert.ErrorIs(t, err, ErrDatesInverted)
}

func TestActiveFiltersByDate(t *testing.T) {
	board, _ := boardFixture(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := board.Create(context.Background(), astroRequest(start), nil, nil)
	require.NoError(t, err)

	assert.Len(t, board.Active(start.AddDate(0, 0, 10)), 1)
	assert.Empty(t, board.Active(start.AddDate(0, 2, 0)))
	assert.Empty(t, board.Active(start.AddDate(0, 0, -1)))
}
