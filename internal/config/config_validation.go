// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package config

import (
	"regexp"
	"strings"
	"time"
)

// scriptURLPattern matches a deployed web-app /exec endpoint. Anything
// else (library links, preview links, plain spreadsheet URLs) will not
// answer the action contract.
var scriptURLPattern = regexp.MustCompile(`^https://script\.google\.com/macros/s/[^/]+/exec$`)

// applyDefaults fills in the values used when neither flags, env, nor the
// JSON file set them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Remote.UploadURL == "" {
		cfg.Remote.UploadURL = cfg.Remote.ScriptURL
	}
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = 15 * time.Second
	}
	if cfg.Remote.RetryMax <= 0 {
		cfg.Remote.RetryMax = 2
	}
	if cfg.Watch.Interval <= 0 {
		cfg.Watch.Interval = time.Hour
	}
	if cfg.Stub.HTTPAddress == "" {
		cfg.Stub.HTTPAddress = "localhost:8080"
	}
	if cfg.Stub.DBPath == "" {
		cfg.Stub.DBPath = "sheetstub.db"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup.
//
// A missing or malformed remote endpoint is NOT an error: the dashboard is
// designed to run cache-only and surface the problem as a persistent
// warning instead. See [Remote.ConfigWarning].
func (cfg *StructuredConfig) validate() error {
	return nil
}

// IsConfigured reports whether the remote endpoint is present, enabled,
// and well-formed. Every gateway operation short-circuits when this is
// false.
func (r Remote) IsConfigured() bool {
	return !r.Disabled && scriptURLPattern.MatchString(strings.TrimSpace(r.ScriptURL))
}

// ConfigWarning returns a human-readable description of why the remote is
// unusable, or "" when it is configured correctly. The dashboard shows the
// text as a persistent non-blocking banner.
func (r Remote) ConfigWarning() string {
	if r.Disabled {
		return ""
	}
	raw := strings.TrimSpace(r.ScriptURL)
	if raw == "" {
		return "Remote script URL is missing."
	}
	if strings.Contains(raw, "/macros/library/") {
		return "Remote script URL is a library link. Use the Web App /exec URL instead."
	}
	if !scriptURLPattern.MatchString(raw) {
		return "Remote script URL must be the Web App /exec link."
	}
	return ""
}
