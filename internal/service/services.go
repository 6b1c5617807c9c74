// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package service

import (
	"github.com/workstreamhq/credvault/internal/config"
	"github.com/workstreamhq/credvault/internal/crypto"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/store"
	"github.com/workstreamhq/credvault/internal/tenant"
	"github.com/workstreamhq/credvault/models"
)

type Services struct {
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewTokenCipher(cfg.App.MasterKey)
	if err != nil {
		return nil, err
	}

	router := tenant.NewRouter(newDirectory(cfg.Directory), logger)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		VaultService:   NewVaultService(cipher, router, storages.Credentials, storages.Tables, logger),
		AppInfoService: appInfoService,
	}, nil
}

// newDirectory builds the account-directory collaborator selected by
// configuration. An unset or "none" mode yields no directory at all, which
// the router treats as "no tenant ever has a dedicated store".
func newDirectory(cfg config.Directory) tenant.AccountDirectory {
	switch cfg.Mode {
	case config.DirectoryModeHTTP:
		return tenant.NewHTTPDirectory(tenant.HTTPDirectoryConfig{
			BaseURL: cfg.HTTPAddress,
			Timeout: cfg.RequestTimeout,
		})
	case config.DirectoryModeStatic:
		routes := make(map[string]models.AccountRoute, len(cfg.Routes))
		for accountID, route := range cfg.Routes {
			routes[accountID] = models.AccountRoute{
				RemoteAccountID: route.RemoteAccountID,
				CloudType:       route.CloudType,
			}
		}
		return tenant.NewStaticDirectory(routes)
	default:
		return nil
	}
}
