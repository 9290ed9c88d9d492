// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

type CosmoConfig struct {
	// API: where the Cosmo Connect backend lives
	API APIConfig `yaml:"api"`

	// Session: persistent login state on disk
	Session SessionConfig `yaml:"session"`

	// Logging: CLI log output
	Logging LoggingConfig `yaml:"logging"`

	// Share: defaults for the plan share links
	Share ShareConfig `yaml:"share"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"` // e.g. http://localhost:8080/api
	// RateLimit caps outgoing requests per second; 0 keeps the default.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	Burst     int     `yaml:"burst,omitempty"`
}

type SessionConfig struct {
	// Dir holds the badger session store. Empty means ~/.cosmo/session.
	Dir string `yaml:"dir,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`          // debug, info, warn, error
	Dir   string `yaml:"dir,omitempty"`  // file logging when set
	JSON  bool   `yaml:"json,omitempty"` // JSON handler instead of text
}

type ShareConfig struct {
	// AppURL is the public base of the plan pages embedded in share
	// links.
	AppURL string `yaml:"app_url,omitempty"`
}

// DefaultConfig is what a first run writes to disk.
func DefaultConfig() CosmoConfig {
	return CosmoConfig{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
