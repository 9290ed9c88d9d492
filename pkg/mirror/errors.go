// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package mirror

import "errors"

var (
	// ErrNotFound indicates the entity id is not present in the mirror.
	// Usually means the view is stale and needs a reload.
	ErrNotFound = errors.New("mirror: entity not found")

	// ErrMutationInFlight indicates another mutation for the same entity
	// id has not resolved yet. The caller should drop the action; the
	// outstanding request's outcome will settle the entity's state.
	ErrMutationInFlight = errors.New("mirror: mutation already in flight for entity")
)
