// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// chest-tracker application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the workspace persistence backends,
	// including the local SQLite database and the import file directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Validation holds settings for the validation engine, including fuzzy
	// matching behavior.
	Validation Validation `envPrefix:"VALIDATION_"`

	// Workers holds configuration for background jobs such as the periodic
	// workspace autosave.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for chest log imports.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local workspace database.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the workspace
	// database (e.g. "chest-tracker.db" or a full file path).
	// When empty, the application runs without workspace persistence.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for chest log imports.
type Files struct {
	// DataDir is the directory scanned for chest log text files and CSV
	// rule/list files during import.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Validation holds settings for the validation engine.
//
// The boolean fields are phrased so that the zero value encodes the default
// behavior (fuzzy matching enabled, case-sensitive matching); the mergo-based
// config merge cannot distinguish an explicit false from an unset field.
type Validation struct {
	// FuzzyThreshold is the minimum similarity score (0-100) for a fuzzy
	// match to count as a hit.
	// Env: VALIDATION_FUZZY_THRESHOLD
	FuzzyThreshold int `env:"FUZZY_THRESHOLD"`

	// FuzzyDisabled turns off fuzzy matching entirely; validation then
	// falls back to exact list membership.
	// Env: VALIDATION_FUZZY_DISABLED
	FuzzyDisabled bool `env:"FUZZY_DISABLED"`

	// CaseInsensitive makes exact list membership checks ignore letter
	// case.
	// Env: VALIDATION_CASE_INSENSITIVE
	CaseInsensitive bool `env:"CASE_INSENSITIVE"`
}

// FuzzyEnabled reports whether fuzzy matching should be used.
func (v Validation) FuzzyEnabled() bool {
	return !v.FuzzyDisabled
}

// CaseSensitive reports whether exact list membership checks honor letter
// case.
func (v Validation) CaseSensitive() bool {
	return !v.CaseInsensitive
}

// Workers holds configuration for background jobs.
type Workers struct {
	// AutosaveInterval defines how often the workspace autosave job
	// persists the in-memory collections (e.g. "2m", "30s").
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
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
