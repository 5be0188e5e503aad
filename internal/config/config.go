// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the key store endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Credentials is the opaque authentication context forwarded with every
	// key store request. Valid JSON is forwarded verbatim, anything else as a
	// JSON string.
	// Env: APP_CREDENTIALS
	Credentials string `env:"CREDENTIALS"`
}

// Adapter holds the settings of the remote key store.
type Adapter struct {
	// HTTPAddress is the key store address, either "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// GetKeysPath is the path of the "get keys" endpoint.
	// Env: ADAPTER_GET_KEYS_PATH
	GetKeysPath string `env:"GET_KEYS_PATH"`

	// SetKeysPath is the path of the "set keys" endpoint.
	// Env: ADAPTER_SET_KEYS_PATH
	SetKeysPath string `env:"SET_KEYS_PATH"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is where client logs are appended. Relative paths are resolved
	// next to the executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources using the process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
