// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
)

func centerFixture(t *testing.T, notifications []api.Notification) (*Center, *atomic.Int64) {
	t.Helper()
	var markReads atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/notifications":
			json.NewEncoder(w).Encode(notifications)
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/v1/notifications/mark-read/"):
			markReads.Add(1)
			w.Write([]byte("{}"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	center := NewCenter(api.New(srv.URL + "/v1"))
	require.NoError(t, center.Refresh(context.Background()))
	return center, &markReads
}

func TestMarkReadDecrementsOnce(t *testing.T) {
	center, markReads := centerFixture(t, []api.Notification{
		{ID: "n1", Message: "Stella liked your post"},
		{ID: "n2", Message: "New comment on your plan"},
	})
	ctx := context.Background()
	require.Equal(t, 2, center.UnreadCount())

	require.NoError(t, center.MarkRead(ctx, "n1"))
	assert.Equal(t, 1, center.UnreadCount())
	assert.Equal(t, int64(1), markReads.Load())

	// Second and third clicks on the same notification: local no-ops.
	require.NoError(t, center.MarkRead(ctx, "n1"))
	require.NoError(t, center.MarkRead(ctx, "n1"))
	assert.Equal(t, 1, center.UnreadCount())
	assert.Equal(t, int64(1), markReads.Load(), "no extra requests for an already-read notification")
}

func TestMarkReadUnknownID(t *testing.T) {
	center, _ := centerFixture(t, nil)
	assert.Error(t, center.MarkRead(context.Background(), "missing"))
}

func TestAlreadyReadFromBackendStaysQuiet(t *testing.T) {
	center, markReads := centerFixture(t, []api.Notification{
		{ID: "n1", Message: "old news", IsRead: true},
	})

	require.NoError(t, center.MarkRead(context.Background(), "n1"))
	assert.Equal(t, int64(0), markReads.Load())
	assert.Equal(t, 0, center.UnreadCount())
}
