// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package mirror

import (
	"context"
	"sync"
)

// Mutator dispatches mutations against a Mirror with two disciplines:
//
//   - Do: optimistic. The local entity is mutated before the network call
//     resolves; on failure it is restored to the exact pre-mutation value.
//     Used for like/unlike, where responsiveness matters.
//   - Run: blocking. The mirror is only touched after the backend confirms,
//     via the caller's reconcile step. Used for create, edit, and delete.
//
// Both paths share the in-flight guard: at most one mutation per entity id
// is outstanding at any time. A second dispatch for the same id while the
// first is unresolved returns ErrMutationInFlight and changes nothing,
// which removes the last-response-wins race that rapid repeated clicks
// used to cause. Distinct ids never block each other.
//
// Every mutation is attempted exactly once. There is no retry, no backoff,
// and no queueing of failed mutations.
type Mutator[T any] struct {
	mirror *Mirror[T]

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewMutator creates a Mutator bound to the given mirror.
func NewMutator[T any](m *Mirror[T]) *Mutator[T] {
	return &Mutator[T]{
		mirror:   m,
		inFlight: make(map[string]struct{}),
	}
}

// Do performs an optimistic mutation of the entity with the given id.
//
// The pre-mutation value is captured first, then apply transitions the
// local copy to the expected post-mutation state, then call issues the
// network request. When call fails, the captured value is written back
// verbatim and the error is returned. On success the optimistic state is
// trusted as-is; callers that want the authoritative view re-fetch via
// Mirror.Load.
//
// Returns ErrNotFound when the id is not mirrored, and ErrMutationInFlight
// when another mutation for the same id has not resolved yet.
func (d *Mutator[T]) Do(ctx context.Context, id string, apply func(*T), call func(context.Context) error) error {
	if err := d.acquire(id); err != nil {
		return err
	}
	defer d.release(id)

	prior, ok := d.mirror.Get(id)
	if !ok {
		return ErrNotFound
	}

	d.mirror.Update(id, apply)

	if err := call(ctx); err != nil {
		// Roll back to the captured value exactly.
		d.mirror.Replace(prior)
		return err
	}
	return nil
}

// Run performs a blocking mutation: call first, reconcile only on success.
//
// reconcile receives the mirror and applies the confirmed outcome (append
// the returned entity, replace in place, or filter the id out). It may be
// nil when the caller reconciles by full reload instead. The in-flight
// guard applies exactly as in Do; for creates, pass a caller-chosen
// placeholder id (e.g. the form's client id) so double submissions of the
// same form coalesce.
func (d *Mutator[T]) Run(ctx context.Context, id string, call func(context.Context) error, reconcile func(*Mirror[T])) error {
	if err := d.acquire(id); err != nil {
		return err
	}
	defer d.release(id)

	if err := call(ctx); err != nil {
		return err
	}
	if reconcile != nil {
		reconcile(d.mirror)
	}
	return nil
}

// InFlight reports whether a mutation for the given id is outstanding.
func (d *Mutator[T]) InFlight(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, busy := d.inFlight[id]
	return busy
}

func (d *Mutator[T]) acquire(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, busy := d.inFlight[id]; busy {
		return ErrMutationInFlight
	}
	d.inFlight[id] = struct{}{}
	return nil
}

func (d *Mutator[T]) release(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inFlight, id)
}
