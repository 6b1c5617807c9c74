// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package partition derives partition keys from tenant contexts.
//
// A context key is the join key between a credential record and every lookup
// against it. It is a pure function of the ordered tuple of present tenant
// fields; absent fields contribute nothing rather than a placeholder.
package partition

import (
	"strings"

	"github.com/workstreamhq/credvault/models"
)

// DefaultKey is the sentinel partition for records written with no tenant
// context at all. The read ladder falls back to it as the last resort.
const DefaultKey = "DEFAULT"

// Fixed short tags per field, applied in fixed order. Changing any of these
// orphans every record already written under the old key scheme.
const (
	tagEnterpriseID   = "ENT"
	tagEnterpriseName = "ENTN"
	tagAccountID      = "ACC"
	tagAccountName    = "ACCN"
	tagWorkstream     = "WS"
	tagProduct        = "PRD"
	tagService        = "SVC"
)

const separator = "#"

// Key builds the partition key for a tenant context. Each present field
// contributes a "TAG#value" fragment; fragments are joined with "#" in the
// fixed field order. An empty context yields [DefaultKey].
//
// Key is pure: the same tuple always produces the same string.
func Key(ctx models.TenantContext) string {
	fragments := make([]string, 0, 7)

	appendFragment := func(tag, value string) {
		if value != "" {
			fragments = append(fragments, tag+separator+value)
		}
	}

	appendFragment(tagEnterpriseID, ctx.EnterpriseID)
	appendFragment(tagEnterpriseName, ctx.EnterpriseName)
	appendFragment(tagAccountID, ctx.AccountID)
	appendFragment(tagAccountName, ctx.AccountName)
	appendFragment(tagWorkstream, ctx.Workstream)
	appendFragment(tagProduct, ctx.Product)
	appendFragment(tagService, ctx.Service)

	if len(fragments) == 0 {
		return DefaultKey
	}

	return strings.Join(fragments, separator)
}

// CandidateKeys builds the ordered list of partition-key variants the read
// path tries, most specific first:
//
//  1. all supplied fields
//  2. accountName dropped
//  3. enterpriseName dropped
//  4. ids plus workstream/product/service (both names dropped)
//  5. the legacy four fields only (ids + names, workstream/product/service dropped)
//  6. ids only
//
// Historical records were written before some fields existed, which is why
// the ladder degrades by omission instead of failing on an exact miss.
// Duplicate key strings are removed while preserving first-seen order.
func CandidateKeys(ctx models.TenantContext) []string {
	variants := []models.TenantContext{
		ctx,
		{
			EnterpriseID:   ctx.EnterpriseID,
			EnterpriseName: ctx.EnterpriseName,
			AccountID:      ctx.AccountID,
			Workstream:     ctx.Workstream,
			Product:        ctx.Product,
			Service:        ctx.Service,
		},
		{
			EnterpriseID: ctx.EnterpriseID,
			AccountID:    ctx.AccountID,
			AccountName:  ctx.AccountName,
			Workstream:   ctx.Workstream,
			Product:      ctx.Product,
			Service:      ctx.Service,
		},
		{
			EnterpriseID: ctx.EnterpriseID,
			AccountID:    ctx.AccountID,
			Workstream:   ctx.Workstream,
			Product:      ctx.Product,
			Service:      ctx.Service,
		},
		{
			EnterpriseID:   ctx.EnterpriseID,
			EnterpriseName: ctx.EnterpriseName,
			AccountID:      ctx.AccountID,
			AccountName:    ctx.AccountName,
		},
		{
			EnterpriseID: ctx.EnterpriseID,
			AccountID:    ctx.AccountID,
		},
	}

	seen := make(map[string]struct{}, len(variants))
	keys := make([]string, 0, len(variants))

	for _, variant := range variants {
		key := Key(variant)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}
