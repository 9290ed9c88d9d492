// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreatePostMultipart verifies the multipart shape: a "post" field
// carrying the JSON-encoded request plus one "media" part per attachment.
func TestCreatePostMultipart(t *testing.T) {
	var gotReq PostRequest
	var mediaNames []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/posts", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(16<<20))

		require.NoError(t, json.Unmarshal([]byte(r.FormValue("post")), &gotReq))
		for _, fh := range r.MultipartForm.File["media"] {
			mediaNames = append(mediaNames, fh.Filename)
		}

		json.NewEncoder(w).Encode(Post{ID: "p-new", Content: gotReq.Content})
	}))
	defer server.Close()

	client := New(server.URL)
	created, err := client.CreatePost(context.Background(),
		PostRequest{
			Content:   "Saturn's rings through a 6-inch dobsonian",
			Category:  "Observation",
			SkillTags: []string{"telescopes"},
			IsPublic:  true,
		},
		[]FilePart{
			{Name: "saturn1.jpg", Content: strings.NewReader("jpeg-bytes-1")},
			{Name: "saturn2.jpg", Content: strings.NewReader("jpeg-bytes-2")},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "p-new", created.ID)
	assert.Equal(t, "Saturn's rings through a 6-inch dobsonian", gotReq.Content)
	assert.Equal(t, []string{"saturn1.jpg", "saturn2.jpg"}, mediaNames)
}

// TestUpdatePostMediaDiff verifies an edit that removes one of two
// existing images and adds one new image: removedMedia must contain
// exactly the dropped filename, and exactly one new file is attached.
func TestUpdatePostMediaDiff(t *testing.T) {
	var gotReq PostRequest
	var attached []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/posts/p1", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(16<<20))

		require.NoError(t, json.Unmarshal([]byte(r.FormValue("post")), &gotReq))
		for _, fh := range r.MultipartForm.File["media"] {
			attached = append(attached, fh.Filename)
		}

		json.NewEncoder(w).Encode(Post{ID: "p1"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.UpdatePost(context.Background(), "p1",
		PostRequest{
			Content:      "edited caption",
			RemovedMedia: []string{"old-moon.jpg"},
			IsPublic:     true,
		},
		[]FilePart{{Name: "new-nebula.png", Content: strings.NewReader("png-bytes")}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"old-moon.jpg"}, gotReq.RemovedMedia)
	assert.Equal(t, []string{"new-nebula.png"}, attached)
}

// TestLikeUnlikeEndpoints verifies the like toggle hits the dedicated
// endpoints with empty bodies.
func TestLikeUnlikeEndpoints(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL)
	require.NoError(t, client.LikePost(context.Background(), "p1"))
	require.NoError(t, client.UnlikePost(context.Background(), "p1"))
	require.NoError(t, client.LikeComment(context.Background(), "c9"))
	require.NoError(t, client.UnlikeComment(context.Background(), "c9"))

	assert.Equal(t, []string{
		"POST /posts/p1/like",
		"POST /posts/p1/unlike",
		"POST /comments/c9/like",
		"POST /comments/c9/unlike",
	}, paths)
}

// TestPollRendersFromBackend verifies a post carrying a degenerate poll
// (single option, empty question) decodes cleanly; rendering such polls
// is current behavior, not an error.
func TestPollRendersFromBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Post{{
			ID:   "p1",
			Poll: &Poll{Question: "", Options: []string{"only choice"}},
		}})
	}))
	defer server.Close()

	client := New(server.URL)
	posts, err := client.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].Poll)
	assert.Empty(t, posts[0].Poll.Question)
	assert.Len(t, posts[0].Poll.Options, 1)
}
