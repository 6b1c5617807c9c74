// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package tenant

import (
	"context"

	"github.com/workstreamhq/credvault/models"
)

// StaticDirectory is an [AccountDirectory] seeded from configuration.
// Used in air-gapped deployments where no account service is reachable.
type StaticDirectory struct {
	routes map[string]models.AccountRoute
}

// NewStaticDirectory constructs a [StaticDirectory] from a fixed route map
// keyed by account id. The map is copied; later mutation of the argument
// does not affect the directory.
func NewStaticDirectory(routes map[string]models.AccountRoute) *StaticDirectory {
	copied := make(map[string]models.AccountRoute, len(routes))
	for accountID, route := range routes {
		copied[accountID] = route
	}

	return &StaticDirectory{routes: copied}
}

// Lookup implements [AccountDirectory]. Unknown accounts return (nil, nil).
func (d *StaticDirectory) Lookup(_ context.Context, accountID string) (*models.AccountRoute, error) {
	route, ok := d.routes[accountID]
	if !ok {
		return nil, nil
	}

	return &route, nil
}
