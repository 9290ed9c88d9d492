// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feed

import "github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"

// MediaEdit accumulates the media changes of a post edit session. The
// backend wants a diff, not a final list: filenames to delete plus the
// newly attached files. Removing an attachment that was never stored is
// local-only and produces no removal entry.
type MediaEdit struct {
	existing map[string]bool
	removed  []string
	added    []api.FilePart
}

// NewMediaEdit starts an edit over the post's stored media filenames.
func NewMediaEdit(existing []string) *MediaEdit {
	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}
	return &MediaEdit{existing: known}
}

// Remove marks a stored attachment for deletion. Unknown names and
// repeats are ignored.
func (e *MediaEdit) Remove(name string) {
	if !e.existing[name] {
		return
	}
	e.existing[name] = false
	e.removed = append(e.removed, name)
}

// Add queues a new attachment for upload.
func (e *MediaEdit) Add(part api.FilePart) {
	e.added = append(e.added, part)
}

// Discard drops a queued upload by filename before submission.
func (e *MediaEdit) Discard(name string) {
	kept := e.added[:0]
	for _, part := range e.added {
		if part.Name != name {
			kept = append(kept, part)
		}
	}
	e.added = kept
}

// Removed returns the stored filenames marked for deletion, in marking
// order.
func (e *MediaEdit) Removed() []string {
	out := make([]string, len(e.removed))
	copy(out, e.removed)
	return out
}

// Added returns the queued uploads.
func (e *MediaEdit) Added() []api.FilePart {
	out := make([]api.FilePart, len(e.added))
	copy(out, e.added)
	return out
}
