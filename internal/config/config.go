// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default configuration values applied for every field that is not set by
// the environment, flags, or the JSON file.
const (
	DefaultLogDir      = "/app/logs"
	DefaultLogDirMode  = FileMode(0o755)
	DefaultCommand     = "gunicorn"
	DefaultAppTarget   = "app:app"
	DefaultBindAddress = "0.0.0.0:8000"
	DefaultWorkers     = 4
	DefaultThreads     = 2
	DefaultLogLevel    = "info"
	DefaultAccessLog   = "-"
	DefaultErrorLog    = "-"

	DefaultCommandTimeout = 30 * time.Second
	DefaultProbeAttempts  = 30
	DefaultProbeInterval  = 2 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// entrypoint binary. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Prepare holds the log directory preparation settings: path, mode,
	// and ownership.
	Prepare Prepare `envPrefix:"PREPARE_"`

	// Server holds the argument set passed to the exec'd server process
	// manager: bind address, worker and thread counts, log routing.
	Server Server `envPrefix:"SERVER_"`

	// Preinit holds the optional pre-start steps executed after the
	// filesystem is prepared and before the process image is replaced.
	Preinit Preinit `envPrefix:"PREINIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Prepare holds the settings for the log directory preparation step.
type Prepare struct {
	// LogDir is the directory created (with parents) before hand-off.
	// The exec'd server writes its log files here.
	// Env: PREPARE_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// LogDirMode is the permission mode applied to LogDir, given in octal
	// notation (e.g. "0755").
	// Env: PREPARE_LOG_DIR_MODE
	LogDirMode FileMode `env:"LOG_DIR_MODE"`

	// Owner is the user name that should own LogDir. Empty means the
	// ownership step does not run.
	// Env: PREPARE_OWNER
	Owner string `env:"OWNER"`

	// Group is the group name that should own LogDir. Empty means the
	// group is left unchanged.
	// Env: PREPARE_GROUP
	Group string `env:"GROUP"`

	// StrictOwner selects the strict ownership variant: a failed chown
	// aborts startup. When false the ownership step is skipped entirely.
	// Env: PREPARE_STRICT_OWNER
	StrictOwner bool `env:"STRICT_OWNER"`
}

// Server holds the argument set for the exec'd server process manager.
// None of these values are interpreted by the entrypoint itself; they are
// assembled into the replacement command line verbatim.
type Server struct {
	// Command is the server executable resolved on PATH (e.g. "gunicorn").
	// Env: SERVER_COMMAND
	Command string `env:"COMMAND"`

	// AppTarget is the module:callable string handed to the server as its
	// application target (e.g. "app:app").
	// Env: SERVER_APP_TARGET
	AppTarget string `env:"APP_TARGET"`

	// BindAddress is the TCP address the server binds to, in "host:port"
	// format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	BindAddress string `env:"ADDRESS"`

	// Workers is the worker process count passed to the server.
	// Env: SERVER_WORKERS
	Workers int `env:"WORKERS"`

	// Threads is the per-worker thread count passed to the server.
	// Env: SERVER_THREADS
	Threads int `env:"THREADS"`

	// LogLevel is the server log verbosity (e.g. "info", "debug").
	// Env: SERVER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// AccessLog is the server access log destination. "-" routes to
	// stdout; empty omits the flag from the command line.
	// Env: SERVER_ACCESS_LOG
	AccessLog string `env:"ACCESS_LOG"`

	// ErrorLog is the server error log destination. "-" routes to
	// stderr; empty omits the flag from the command line.
	// Env: SERVER_ERROR_LOG
	ErrorLog string `env:"ERROR_LOG"`

	// Preload makes the server load the application before forking
	// workers (--preload).
	// Env: SERVER_PRELOAD
	Preload bool `env:"PRELOAD"`
}

// Preinit holds the optional pre-start steps. Both steps are disabled by
// their empty defaults and run only when explicitly configured.
type Preinit struct {
	// Command is an optional command line executed before hand-off
	// (e.g. a one-shot configuration loader). Split on whitespace; no
	// shell interpretation.
	// Env: PREINIT_COMMAND
	Command string `env:"COMMAND"`

	// CommandTimeout bounds the pre-start command's runtime.
	// Env: PREINIT_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`

	// WaitURL is an optional URL probed until it reports ready before
	// hand-off proceeds (e.g. an upstream dependency's health endpoint).
	// Env: PREINIT_WAIT_URL
	WaitURL string `env:"WAIT_URL"`

	// ProbeAttempts is the maximum number of readiness probes before
	// startup is aborted.
	// Env: PREINIT_PROBE_ATTEMPTS
	ProbeAttempts int `env:"PROBE_ATTEMPTS"`

	// ProbeInterval is the pause between consecutive readiness probes.
	// Env: PREINIT_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single readiness probe request.
	// Env: PREINIT_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the entrypoint
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
