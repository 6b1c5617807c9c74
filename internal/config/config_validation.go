// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. The filesystem backend passes
// validation here — it is a recognized selector — and is rejected later by
// the storage layer, which owns the decision of what it can operate on.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.MasterKey) < 32 {
		return ErrMasterKeyTooShort
	}

	switch cfg.Storage.Backend {
	case BackendKeyValue:
		if cfg.Storage.KV.Region == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendRelational:
		if cfg.Storage.DB.Driver == "" || cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendFilesystem:
		// Recognized; the vault's storage layer fails fast on it.
	default:
		return ErrUnknownBackend
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
