// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for strategyhub.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Remote holds the spreadsheet script endpoint configuration used by
	// the gateway.
	Remote Remote `envPrefix:"REMOTE_"`

	// Cache holds local cache store settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Watch holds background sheet-watcher settings.
	Watch Watch `envPrefix:"WATCH_"`

	// Stub holds settings for the development stub server binary.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// LogPath is where the dashboard binary writes its rotated log file.
	// Empty means "next to the executable".
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Remote configures access to the spreadsheet-backed system of record.
type Remote struct {
	// ScriptURL is the deployed web-app /exec endpoint serving all
	// read and write actions.
	// Env: REMOTE_SCRIPT_URL
	ScriptURL string `env:"SCRIPT_URL"`

	// UploadURL is the endpoint accepting image uploads. Defaults to
	// ScriptURL when empty.
	// Env: REMOTE_UPLOAD_URL
	UploadURL string `env:"UPLOAD_URL"`

	// Disabled turns the remote off entirely; the dashboard then runs
	// on the local cache alone.
	// Env: REMOTE_DISABLED
	Disabled bool `env:"DISABLED"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryMax caps transport-level retries on read actions.
	// Env: REMOTE_RETRY_MAX
	RetryMax int `env:"RETRY_MAX"`
}

// Cache holds settings for the durable local cache.
type Cache struct {
	// Path is the bbolt database file location. Empty selects an
	// in-memory store (nothing survives the process).
	// Env: CACHE_PATH
	Path string `env:"PATH"`
}

// Watch configures the background poll for external sheet updates.
type Watch struct {
	// Interval between getSheetLastUpdated polls (e.g. "1h").
	// Env: WATCH_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// BookingsSheetID and VoicemailsSheetID identify the externally
	// maintained sheets whose modification times are watched.
	BookingsSheetID   string `env:"BOOKINGS_SHEET_ID"`
	VoicemailsSheetID string `env:"VOICEMAILS_SHEET_ID"`
}

// Stub holds the development stub server settings.
type Stub struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: STUB_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// DBPath is the sqlite database file backing the stub.
	// Env: STUB_DB_PATH
	DBPath string `env:"DB_PATH"`
}

// GetConfig assembles the final configuration by merging flags, environment
// variables, and the optional JSON file, in that precedence order, then
// validating the result.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
