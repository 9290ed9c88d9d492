// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package mirror

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPost struct {
	ID        string
	Content   string
	LikeCount int
	IsLiked   bool
}

func postKey(p testPost) string { return p.ID }

func seeded(t *testing.T, posts ...testPost) *Mirror[testPost] {
	t.Helper()
	m := New(postKey)
	err := m.Load(context.Background(), func(context.Context) ([]testPost, error) {
		return posts, nil
	})
	require.NoError(t, err)
	return m
}

// TestLoadReplacesWholesale verifies a successful load discards prior
// contents entirely, with no merge.
func TestLoadReplacesWholesale(t *testing.T) {
	m := seeded(t, testPost{ID: "p1"}, testPost{ID: "p2"})
	require.Equal(t, 2, m.Len())

	err := m.Load(context.Background(), func(context.Context) ([]testPost, error) {
		return []testPost{{ID: "p3"}}, nil
	})
	require.NoError(t, err)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p3", items[0].ID)
	assert.True(t, m.Loaded())
	assert.NoError(t, m.Err())
}

// TestLoadFailureKeepsPriorState verifies a failed load leaves the mirror
// untouched and surfaces the error via Err.
func TestLoadFailureKeepsPriorState(t *testing.T) {
	m := seeded(t, testPost{ID: "p1", Content: "stargazing tonight"})

	boom := errors.New("connection refused")
	err := m.Load(context.Background(), func(context.Context) ([]testPost, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "stargazing tonight", items[0].Content)
	assert.ErrorIs(t, m.Err(), boom)

	// A later successful load clears the retained error.
	require.NoError(t, m.Load(context.Background(), func(context.Context) ([]testPost, error) {
		return []testPost{{ID: "p1"}}, nil
	}))
	assert.NoError(t, m.Err())
}

// TestItemsReturnsCopy verifies callers cannot mutate the mirror through
// the slice returned by Items.
func TestItemsReturnsCopy(t *testing.T) {
	m := seeded(t, testPost{ID: "p1", LikeCount: 3})

	items := m.Items()
	items[0].LikeCount = 99

	stored, ok := m.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 3, stored.LikeCount)
}

// TestReplacePreservesPosition verifies an in-place edit does not move the
// entity within backend order.
func TestReplacePreservesPosition(t *testing.T) {
	m := seeded(t, testPost{ID: "p1"}, testPost{ID: "p2"}, testPost{ID: "p3"})

	require.True(t, m.Replace(testPost{ID: "p2", Content: "edited"}))

	items := m.Items()
	assert.Equal(t, "p2", items[1].ID)
	assert.Equal(t, "edited", items[1].Content)

	assert.False(t, m.Replace(testPost{ID: "missing"}))
}

// TestRemoveByIDRemovesExactlyOne verifies delete reconciliation filters a
// single matching entry.
func TestRemoveByIDRemovesExactlyOne(t *testing.T) {
	m := seeded(t, testPost{ID: "p1"}, testPost{ID: "p2"}, testPost{ID: "p3"})

	require.True(t, m.RemoveByID("p2"))
	require.Equal(t, 2, m.Len())
	_, ok := m.Get("p2")
	assert.False(t, ok)

	assert.False(t, m.RemoveByID("p2"))
	assert.Equal(t, 2, m.Len())
}

// TestUpdateInPlace verifies the optimistic primitive mutates the stored
// value, not a copy.
func TestUpdateInPlace(t *testing.T) {
	m := seeded(t, testPost{ID: "p1", LikeCount: 5})

	require.True(t, m.Update("p1", func(p *testPost) {
		p.IsLiked = true
		p.LikeCount++
	}))

	stored, ok := m.Get("p1")
	require.True(t, ok)
	assert.True(t, stored.IsLiked)
	assert.Equal(t, 6, stored.LikeCount)

	assert.False(t, m.Update("missing", func(p *testPost) {}))
}
