// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package tenant decides, per vault call, which physical store a tenant's
// credentials live in. The decision is derived from an explicit caller hint
// or from the external account directory, and degrades to the shared
// administrative store when neither yields a remote account id.
package tenant

import (
	"context"
	"strings"

	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/models"
)

//go:generate mockgen -source=router.go -destination=../mock/account_directory_mock.go -package=mock

// AccountDirectory is the external collaborator that knows, for a given
// account id, whether the tenant has a dedicated remote store. A nil route
// with a nil error means the directory has no record for the account.
type AccountDirectory interface {
	Lookup(ctx context.Context, accountID string) (*models.AccountRoute, error)
}

// RouteResolver resolves the physical-store routing decision for one call.
type RouteResolver interface {
	Resolve(ctx context.Context, accountID, explicitRemoteID string, explicitClass models.CloudClass) models.RouteDecision
}

// Router is the [RouteResolver] backed by an [AccountDirectory].
type Router struct {
	directory AccountDirectory
	logger    *logger.Logger
}

// NewRouter constructs a [Router] over the given directory.
func NewRouter(directory AccountDirectory, log *logger.Logger) *Router {
	return &Router{
		directory: directory,
		logger:    log,
	}
}

// Resolve implements [RouteResolver].
//
// An explicit remote id supplied by the caller is trusted as-is and combined
// with the explicit (or default) cloud class; no directory lookup happens.
// Otherwise the directory is consulted. A lookup failure or a missing record
// is treated as "no dedicated store" — routing never fails a vault call.
func (r *Router) Resolve(ctx context.Context, accountID, explicitRemoteID string, explicitClass models.CloudClass) models.RouteDecision {
	log := logger.FromContext(ctx)

	if explicitRemoteID != "" {
		return models.RouteDecision{
			RemoteAccountID: explicitRemoteID,
			CloudClass:      defaultClass(explicitClass),
		}
	}

	if accountID == "" || r.directory == nil {
		return models.RouteDecision{CloudClass: defaultClass(explicitClass)}
	}

	route, err := r.directory.Lookup(ctx, accountID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("account_id", accountID).
			Msg("account directory lookup failed, routing to shared store")
		return models.RouteDecision{CloudClass: defaultClass(explicitClass)}
	}

	if route == nil || route.RemoteAccountID == "" {
		return models.RouteDecision{CloudClass: defaultClass(explicitClass)}
	}

	class := NormalizeCloudClass(route.CloudType)
	if explicitClass != "" {
		class = defaultClass(explicitClass)
	}

	return models.RouteDecision{
		RemoteAccountID: route.RemoteAccountID,
		CloudClass:      class,
	}
}

// NormalizeCloudClass collapses the directory's free-text cloud
// classification onto exactly one of the two enumerated classes.
// The match is case-insensitive and substring based; subscription-tier
// synonyms for dedicated infrastructure count as private. Anything
// ambiguous defaults to public.
func NormalizeCloudClass(raw string) models.CloudClass {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(lowered, "private"),
		strings.Contains(lowered, "dedicated"),
		strings.Contains(lowered, "reserved"):
		return models.CloudPrivate
	default:
		return models.CloudPublic
	}
}

// defaultClass maps an unset caller-supplied class to public and normalizes
// anything else that slipped past JSON decoding as free text.
func defaultClass(class models.CloudClass) models.CloudClass {
	if class == "" {
		return models.CloudPublic
	}
	if class != models.CloudPublic && class != models.CloudPrivate {
		return NormalizeCloudClass(string(class))
	}
	return class
}
