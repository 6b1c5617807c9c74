// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"fmt"

	"github.com/workstreamhq/credvault/models"
)

// TableResolver derives physical table names for the key/value backend.
// All generated names carry the workspace/environment discriminator so
// parallel deployments never collide.
type TableResolver struct {
	prefix string
	env    string
}

// NewTableResolver constructs a resolver for the given table-name prefix and
// environment discriminator.
func NewTableResolver(prefix, env string) *TableResolver {
	return &TableResolver{
		prefix: prefix,
		env:    env,
	}
}

// Resolve maps a routing decision onto a table name:
//
//   - no remote account id — the shared administrative table;
//   - public cloud class   — one fixed table shared by all public tenants;
//   - private cloud class  — a table of the tenant's own, parameterized by
//     account id.
//
// The mapping is deterministic: the same decision and account always land in
// the same table, so one tenant's secrets never split across stores absent a
// directory change.
func (r *TableResolver) Resolve(route models.RouteDecision, accountID string) string {
	if !route.Dedicated() {
		return r.Shared()
	}

	if route.CloudClass == models.CloudPrivate {
		return fmt.Sprintf("%s-vault-%s-%s", r.prefix, accountID, r.env)
	}

	return fmt.Sprintf("%s-vault-public-%s", r.prefix, r.env)
}

// Shared returns the shared administrative table name.
func (r *TableResolver) Shared() string {
	return fmt.Sprintf("%s-vault-%s", r.prefix, r.env)
}
