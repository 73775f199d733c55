// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-journal-keeper client. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the journal owner
	// identifier and the application version.
	App App `envPrefix:"APP_"`

	// Endpoints holds the URLs of the five remote journal endpoints.
	// Every endpoint is an opaque external HTTP JSON service; the client
	// carries no server of its own.
	Endpoints Endpoints `envPrefix:"JOURNAL_"`

	// Adapter holds network settings for the outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Assistant holds settings of the local reflection assistant.
	Assistant Assistant `envPrefix:"ASSISTANT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the journal owner identifier sent with every remote
	// request. When empty the client asks for it at startup.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Endpoints holds the URLs of the remote journal services. Absence of any
// of them is a configuration error, not a network error: it is reported
// before any I/O happens.
type Endpoints struct {
	// UploadURL is the media upload endpoint.
	// Env: JOURNAL_UPLOAD_URL
	UploadURL string `env:"UPLOAD_URL"`

	// CreateURL is the entry create endpoint.
	// Env: JOURNAL_CREATE_URL
	CreateURL string `env:"CREATE_URL"`

	// GetURL is the entry list endpoint.
	// Env: JOURNAL_GET_URL
	GetURL string `env:"GET_URL"`

	// UpdateURL is the entry update endpoint.
	// Env: JOURNAL_UPDATE_URL
	UpdateURL string `env:"UPDATE_URL"`

	// DeleteURL is the entry delete endpoint.
	// Env: JOURNAL_DELETE_URL
	DeleteURL string `env:"DELETE_URL"`
}

// Adapter holds settings of the outbound HTTP transport layer.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m"). Zero disables the timeout: a call then blocks
	// until the transport resolves or fails.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Assistant holds settings of the local mock reflection assistant.
type Assistant struct {
	// ReplyDelay is the cosmetic "thinking" pause before the assistant
	// reply appears in the transcript. Defaults to 400ms when unset.
	// Env: ASSISTANT_REPLY_DELAY
	ReplyDelay time.Duration `env:"REPLY_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (exported into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
