// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package config

import (
	"time"
)

// Backend selector values for [Storage.Backend]. The filesystem store
// belongs to the legacy CRUD layer; the vault recognizes the value but
// refuses to operate on it.
const (
	BackendKeyValue   = "keyvalue"
	BackendRelational = "relational"
	BackendFilesystem = "filesystem"
)

// Mode selector values for [Directory.Mode].
const (
	DirectoryModeHTTP   = "http"
	DirectoryModeStatic = "static"
	DirectoryModeNone   = "none"
)

// StructuredConfig is the top-level configuration container for the vault
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json      — field name inside the optional JSON config file.
type StructuredConfig struct {
	// App holds application-level settings: the vault master key, API
	// token parameters, and the application version.
	App App `envPrefix:"APP_" json:"app,omitempty"`

	// Storage selects and configures the active persistence backend.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_" json:"server,omitempty"`

	// Directory configures the external account-directory collaborator
	// used for tenant routing.
	Directory Directory `envPrefix:"DIRECTORY_" json:"directory,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// MasterKey is the secret the token cipher derives per-record keys
	// from. Must be at least 32 characters and kept confidential.
	// Env: APP_MASTER_KEY
	MasterKey string `env:"MASTER_KEY" json:"master_key"`

	// TokenSignKey is the secret key used to sign and verify the JWTs
	// presented by calling services on the vault API.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenIssuer is the "iss" claim expected on every service token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the configuration of all persistence backends.
type Storage struct {
	// Backend selects the active store: "keyvalue", "relational", or
	// "filesystem" (recognized but rejected by the vault).
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND" json:"backend"`

	// DB holds the relational backend connection settings.
	DB DBConfig `envPrefix:"DB_" json:"db,omitempty"`

	// KV holds the key/value backend settings.
	KV KVConfig `envPrefix:"KV_" json:"kv,omitempty"`

	// Tables controls generated table names for the key/value backend.
	Tables TablesConfig `envPrefix:"TABLES_" json:"tables,omitempty"`
}

// DBConfig holds the relational database connection settings.
type DBConfig struct {
	// Driver is "pgx" for PostgreSQL or "sqlite3" for single-node and
	// test deployments.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// DSN is the driver-specific connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// KVConfig holds the DynamoDB client settings. Endpoint and the static
// credential pair exist for local stacks and tests.
type KVConfig struct {
	Region          string `env:"REGION" json:"region"`
	Endpoint        string `env:"ENDPOINT" json:"endpoint"`
	AccessKeyID     string `env:"ACCESS_KEY_ID" json:"access_key_id"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" json:"secret_access_key"`
}

// TablesConfig controls the deterministic table-name scheme: the shared
// administrative table, the fixed public-tenant table, and the per-account
// private-tenant tables all derive from Prefix and Env.
type TablesConfig struct {
	// Prefix is the leading component of every generated table name.
	// Env: STORAGE_TABLES_PREFIX
	Prefix string `env:"PREFIX" json:"prefix"`

	// Env is the workspace/environment discriminator embedded in every
	// generated table name (e.g. "dev", "prod").
	// Env: STORAGE_TABLES_ENV
	Env string `env:"ENV" json:"env"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Directory configures the account-directory collaborator.
type Directory struct {
	// Mode selects the implementation: "http", "static", or "none".
	// Env: DIRECTORY_MODE
	Mode string `env:"MODE" json:"mode"`

	// HTTPAddress is the base URL of the account service when Mode is
	// "http".
	// Env: DIRECTORY_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS" json:"http_address"`

	// RequestTimeout bounds one directory lookup.
	// Env: DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// Routes seeds a static directory when Mode is "static". Keyed by
	// account id; each value holds the remote account id and the raw
	// cloud type. Only settable through the JSON config file.
	Routes map[string]StaticRoute `json:"routes,omitempty"`
}

// StaticRoute is one entry of a statically configured account directory.
type StaticRoute struct {
	RemoteAccountID string `json:"remote_account_id"`
	CloudType       string `json:"cloud_type"`
}

// GetStructuredConfig loads, merges, and validates the full service
// configuration from environment variables, flags, and the optional JSON
// file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
