// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	var cfg CosmoConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COSMO_API_URL", "https://backend.example.com/api")
	t.Setenv("COSMO_LOG_LEVEL", "debug")

	Global = DefaultConfig()
	applyEnvOverrides()

	assert.Equal(t, "https://backend.example.com/api", Global.API.BaseURL)
	assert.Equal(t, "debug", Global.Logging.Level)
}
