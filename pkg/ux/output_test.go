// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconRender(t *testing.T) {
	// Styled icons still contain the glyph whatever the terminal does
	// with the color codes.
	assert.Contains(t, IconSuccess.Render(), "✓")
	assert.Contains(t, IconError.Render(), "✗")
	assert.Contains(t, IconStar.Render(), "✦")
}

func TestQuietToggle(t *testing.T) {
	SetQuiet(true)
	defer SetQuiet(false)
	assert.True(t, Quiet())
}
