// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := NewSpinner("fetching feed").WithType(SpinnerOrbit)
	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.UpdateMessage("almost there")
	s.Stop()
	// Double stop must not panic.
	s.Stop()
}

func TestSpinnerQuietMode(t *testing.T) {
	SetQuiet(true)
	defer SetQuiet(false)
	s := NewSpinner("quiet")
	s.Start()
	s.Stop()
}
