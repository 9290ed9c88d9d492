// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// Global is a singleton instance
	Global CosmoConfig
	once   sync.Once
)

// Load ensures the config is loaded into the Global variable. A local
// .env file is read first so COSMO_* variables can override the yaml.
func Load() error {
	var err error
	once.Do(func() {
		err = loadInternal()
	})
	return err
}

func loadInternal() error {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not find the user's home directory: %w", err)
	}
	configPath := filepath.Join(home, ".cosmo", "cosmo.yaml")
	// create it if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("First run detected, creating the config at %s\n", configPath)
		if err := createDefault(configPath); err != nil {
			return err
		}
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &Global); err != nil {
		return fmt.Errorf("failed to parse the config into the Global singleton: %w", err)
	}
	applyEnvOverrides()
	return nil
}

func applyEnvOverrides() {
	if v := os.Getenv("COSMO_API_URL"); v != "" {
		Global.API.BaseURL = v
	}
	if v := os.Getenv("COSMO_LOG_LEVEL"); v != "" {
		Global.Logging.Level = v
	}
	if v := os.Getenv("COSMO_SESSION_DIR"); v != "" {
		Global.Session.Dir = v
	}
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	defaultCfg := DefaultConfig()
	data, err := yaml.Marshal(defaultCfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SessionDir resolves the session store location, defaulting next to
// the config file.
func SessionDir() (string, error) {
	if Global.Session.Dir != "" {
		return Global.Session.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".cosmo", "session"), nil
}
