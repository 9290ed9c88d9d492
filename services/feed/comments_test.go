// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
)

func commentFixture(t *testing.T, comments []api.Comment) (*CommentSection, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.mu.Lock()
		backend.requests = append(backend.requests, r.Method+" "+r.URL.Path)
		backend.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/comments":
			json.NewEncoder(w).Encode(comments)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/comments":
			var req api.CommentRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(api.Comment{
				ID:      "c-new",
				PostID:  req.PostID,
				Author:  api.Author{ID: "u1", Name: "Nova"},
				Content: req.Content,
			})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Write([]byte("{}"))
		}
	}))
	t.Cleanup(srv.Close)

	sess, err := session.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	require.NoError(t, sess.Establish("opaque-test-token", api.User{ID: "u1", FullName: "Nova"}))

	client := api.New(srv.URL+"/v1", api.WithTokenSource(sess))
	section := NewCommentSection(client, sess, "p1")
	require.NoError(t, section.Refresh(context.Background()))
	return section, backend
}

func TestAddCommentAppendsStoredEntity(t *testing.T) {
	section, _ := commentFixture(t, nil)

	created, err := section.Add(context.Background(), "Great shot of the rings!")
	require.NoError(t, err)
	assert.Equal(t, "c-new", created.ID)

	thread := section.Comments()
	require.Len(t, thread, 1)
	assert.Equal(t, "Great shot of the rings!", thread[0].Content)
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	section, backend := commentFixture(t, nil)
	before := backend.total()

	_, err := section.Add(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, before, backend.total())
}

func TestEditForeignCommentRefused(t *testing.T) {
	section, backend := commentFixture(t, []api.Comment{{
		ID:      "c1",
		PostID:  "p1",
		Author:  api.Author{ID: "u2", Name: "Stella"},
		Content: "Which eyepiece?",
	}})
	before := backend.total()

	_, err := section.Edit(context.Background(), "c1", "rewritten")
	assert.ErrorIs(t, err, ErrNotOwner)

	err = section.Delete(context.Background(), "c1", nil)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, before, backend.total(), "ownership refusals stay off the wire")
}

func TestDeleteOwnCommentRemovesExactlyOne(t *testing.T) {
	section, backend := commentFixture(t, []api.Comment{
		{ID: "c1", PostID: "p1", Author: api.Author{ID: "u1"}, Content: "first"},
		{ID: "c2", PostID: "p1", Author: api.Author{ID: "u1"}, Content: "second"},
	})

	require.NoError(t, section.Delete(context.Background(), "c1", func() bool { return true }))

	assert.Equal(t, 1, backend.count("DELETE /v1/comments/c1"))
	thread := section.Comments()
	require.Len(t, thread, 1)
	assert.Equal(t, "c2", thread[0].ID)
}
