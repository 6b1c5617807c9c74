// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-backend active storage backend (keyvalue, relational)
//	-d relational database DSN
//	-driver relational database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-master-key vault master key (prefer APP_MASTER_KEY in production)
//	-token-sign-key service token signing key
//	-token-issuer service token issuer name
//	-table-prefix key/value table name prefix
//	-table-env workspace/environment discriminator for table names
//	-directory-mode account directory mode (http, static, none)
//	-directory-address account directory base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var (
		serverAddress    string
		backend          string
		databaseDSN      string
		databaseDriver   string
		jsonConfigPath   string
		masterKey        string
		tokenSignKey     string
		tokenIssuer      string
		tablePrefix      string
		tableEnv         string
		directoryMode    string
		directoryAddress string
		requestTimeout   time.Duration
	)

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&backend, "backend", "", "Active storage backend (keyvalue, relational)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&masterKey, "master-key", "", "Vault master key")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.StringVar(&tablePrefix, "table-prefix", "", "Key/value table name prefix")
	flag.StringVar(&tableEnv, "table-env", "", "Workspace/environment discriminator")
	flag.StringVar(&directoryMode, "directory-mode", "", "Account directory mode (http, static, none)")
	flag.StringVar(&directoryAddress, "directory-address", "", "Account directory base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MasterKey:    masterKey,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			Backend: backend,
			DB: DBConfig{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Tables: TablesConfig{
				Prefix: tablePrefix,
				Env:    tableEnv,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Directory: Directory{
			Mode:        directoryMode,
			HTTPAddress: directoryAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
