// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"PREPARE_LOG_DIR":      "/srv/logs",
		"PREPARE_LOG_DIR_MODE": "0750",
		"PREPARE_OWNER":        "app",
		"PREPARE_GROUP":        "app",
		"PREPARE_STRICT_OWNER": "true",

		"SERVER_COMMAND":    "gunicorn",
		"SERVER_APP_TARGET": "app:app",
		"SERVER_ADDRESS":    "0.0.0.0:8000",
		"SERVER_WORKERS":    "4",
		"SERVER_THREADS":    "2",
		"SERVER_LOG_LEVEL":  "debug",
		"SERVER_ACCESS_LOG": "-",
		"SERVER_ERROR_LOG":  "-",
		"SERVER_PRELOAD":    "true",

		"PREINIT_COMMAND":         "load-config --once",
		"PREINIT_COMMAND_TIMEOUT": "45s",
		"PREINIT_WAIT_URL":        "http://upstream:9000/healthz",
		"PREINIT_PROBE_ATTEMPTS":  "10",
		"PREINIT_PROBE_INTERVAL":  "3s",
		"PREINIT_PROBE_TIMEOUT":   "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/srv/logs", cfg.Prepare.LogDir)
	assert.Equal(t, FileMode(0o750), cfg.Prepare.LogDirMode)
	assert.Equal(t, "app", cfg.Prepare.Owner)
	assert.Equal(t, "app", cfg.Prepare.Group)
	assert.True(t, cfg.Prepare.StrictOwner)

	assert.Equal(t, "gunicorn", cfg.Server.Command)
	assert.Equal(t, "app:app", cfg.Server.AppTarget)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.BindAddress)
	assert.Equal(t, 4, cfg.Server.Workers)
	assert.Equal(t, 2, cfg.Server.Threads)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "-", cfg.Server.AccessLog)
	assert.Equal(t, "-", cfg.Server.ErrorLog)
	assert.True(t, cfg.Server.Preload)

	assert.Equal(t, "load-config --once", cfg.Preinit.Command)
	assert.Equal(t, 45*time.Second, cfg.Preinit.CommandTimeout)
	assert.Equal(t, "http://upstream:9000/healthz", cfg.Preinit.WaitURL)
	assert.Equal(t, 10, cfg.Preinit.ProbeAttempts)
	assert.Equal(t, 3*time.Second, cfg.Preinit.ProbeInterval)
	assert.Equal(t, 5*time.Second, cfg.Preinit.ProbeTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_ADDRESS":  "localhost:8080",
		"PREPARE_LOG_DIR": "/tmp/logs",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Prepare partially filled
	assert.Equal(t, "/tmp/logs", cfg.Prepare.LogDir)
	assert.Zero(t, cfg.Prepare.LogDirMode)
	assert.Empty(t, cfg.Prepare.Owner)

	// Server partially filled
	assert.Equal(t, "localhost:8080", cfg.Server.BindAddress)
	assert.Empty(t, cfg.Server.Command)
	assert.Zero(t, cfg.Server.Workers)

	// Others untouched
	assert.Equal(t, Preinit{}, cfg.Preinit)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, Prepare{}, cfg.Prepare)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Preinit{}, cfg.Preinit)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PREINIT_COMMAND_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidMode(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PREPARE_LOG_DIR_MODE": "rwxr-xr-x",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"PREINIT_PROBE_INTERVAL": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Preinit.ProbeInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"PREPARE_LOG_DIR",
		"PREPARE_LOG_DIR_MODE",
		"PREPARE_OWNER",
		"PREPARE_GROUP",
		"PREPARE_STRICT_OWNER",

		"SERVER_COMMAND",
		"SERVER_APP_TARGET",
		"SERVER_ADDRESS",
		"SERVER_WORKERS",
		"SERVER_THREADS",
		"SERVER_LOG_LEVEL",
		"SERVER_ACCESS_LOG",
		"SERVER_ERROR_LOG",
		"SERVER_PRELOAD",

		"PREINIT_COMMAND",
		"PREINIT_COMMAND_TIMEOUT",
		"PREINIT_WAIT_URL",
		"PREINIT_PROBE_ATTEMPTS",
		"PREINIT_PROBE_INTERVAL",
		"PREINIT_PROBE_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
