// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package mirror holds client-side copies of server-owned entity lists and
// the optimistic mutation machinery that keeps them honest.
//
// A Mirror is a cache, never the source of truth. Loads replace the whole
// list (the backend does not paginate or diff), and every optimistic
// mutation either gets confirmed by the backend or rolled back to the exact
// pre-mutation value. The same abstraction backs posts, comments, learning
// plans, progress entries, competitions, and notifications; only the key
// function differs.
//
// Typical wiring:
//
//	posts := mirror.New(func(p api.Post) string { return p.ID })
//	likes := mirror.NewMutator(posts)
//
//	err := posts.Load(ctx, func(ctx context.Context) ([]api.Post, error) {
//	    return client.ListPosts(ctx)
//	})
package mirror

import (
	"context"
	"sync"
)

// Mirror is the last-known list of entities for a single view, keyed by a
// caller-supplied id function.
//
// List order is whatever the source returned; the mirror never re-sorts.
// All methods are safe for concurrent use, and all reads return copies.
type Mirror[T any] struct {
	mu      sync.RWMutex
	keyOf   func(T) string
	items   []T
	loaded  bool
	loadErr error
}

// New creates an empty Mirror keyed by keyOf. The key function must be
// stable for the lifetime of an entity (the backend's id field).
func New[T any](keyOf func(T) string) *Mirror[T] {
	return &Mirror[T]{keyOf: keyOf}
}

// Load replaces the mirror wholesale with the result of source.
//
// There are no merge semantics: success discards everything previously
// held. On failure the prior contents stay untouched and the error is
// retained for Err, so a view can keep rendering stale data alongside an
// error banner.
func (m *Mirror[T]) Load(ctx context.Context, source func(context.Context) ([]T, error)) error {
	fresh, err := source(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.loadErr = err
		return err
	}
	m.items = make([]T, len(fresh))
	copy(m.items, fresh)
	m.loaded = true
	m.loadErr = nil
	return nil
}

// Loaded reports whether at least one Load has succeeded.
func (m *Mirror[T]) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Err returns the error from the most recent failed Load, or nil after a
// successful one.
func (m *Mirror[T]) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadErr
}

// Items returns a copy of the mirrored list in backend order.
func (m *Mirror[T]) Items() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of mirrored entities.
func (m *Mirror[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Get returns a copy of the entity with the given id, if present.
func (m *Mirror[T]) Get(id string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if m.keyOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a server-confirmed entity to the end of the list. Used after
// a blocking create when the backend returns the stored entity.
func (m *Mirror[T]) Append(item T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
}

// Replace swaps the entity with the same id in place, preserving list
// position. Returns false when no entity matches.
func (m *Mirror[T]) Replace(item T) bool {
	id := m.keyOf(item)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.keyOf(m.items[i]) == id {
			m.items[i] = item
			return true
		}
	}
	return false
}

// RemoveByID filters the entity with the given id out of the list. Exactly
// one entry is removed; returns false when no entity matches.
func (m *Mirror[T]) RemoveByID(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.keyOf(m.items[i]) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies fn to the stored entity with the given id, in place.
// Returns false when no entity matches. This is the primitive the
// optimistic Mutator builds on.
func (m *Mirror[T]) Update(id string, fn func(*T)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.keyOf(m.items[i]) == id {
			fn(&m.items[i])
			return true
		}
	}
	return false
}
