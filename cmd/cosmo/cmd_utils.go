// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
)

// confirm asks a yes/no question on stdin. The --yes flag short-circuits
// every prompt for scripting.
func confirm(question string) bool {
	if yesFlag {
		return true
	}
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// openFileParts opens the given paths as upload parts. Callers own
// closing via the returned cleanup.
func openFileParts(paths []string) ([]api.FilePart, func(), error) {
	var parts []api.FilePart
	var handles []*os.File
	cleanup := func() {
		for _, h := range handles {
			h.Close()
		}
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		handles = append(handles, f)
		parts = append(parts, api.FilePart{Name: filepath.Base(path), Content: f})
	}
	return parts, cleanup, nil
}

// openFilePart opens a single optional path; "" yields nil.
func openFilePart(path string) (*api.FilePart, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	parts, cleanup, err := openFileParts([]string{path})
	if err != nil {
		return nil, nil, err
	}
	return &parts[0], cleanup, nil
}

// withSpinner runs fn behind a spinner so slow backends do not look like
// a hung cli.
func withSpinner(message string, fn func() error) error {
	s := ux.NewSpinner(message).WithType(ux.SpinnerOrbit)
	s.Start()
	err := fn()
	s.Stop()
	return err
}
