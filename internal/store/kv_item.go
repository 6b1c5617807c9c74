// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"github.com/workstreamhq/credvault/models"
)

// Key attribute names and prefixes of the vault's key/value item shape.
const (
	attrPK = "PK"
	attrSK = "SK"

	// PKVaultPrefix precedes the context key on primary records.
	PKVaultPrefix = "VAULT#"
	// PKUserPrefix precedes the user id on secondary lookup records.
	PKUserPrefix = "USER#"
	// SKTokenPrefix precedes the record id on both record kinds.
	SKTokenPrefix = "TOKEN#"

	attrEntityType = "entity_type"
)

// marshalCredentialItem renders a credential record as a key/value item.
// Every data attribute is written twice, under its snake_case name and its
// camelCase alias, for read-compatibility with records produced by the
// earlier deployment, which used the camelCase names.
func marshalCredentialItem(pk string, record models.CredentialRecord) Item {
	item := Item{
		attrPK:         pk,
		attrSK:         SKTokenPrefix + record.ID,
		"id":           record.ID,
		attrEntityType: models.EntityTypeCredential,
		"entityType":   models.EntityTypeCredential,
	}

	setAliased := func(snake, camel, value string) {
		if value == "" {
			return
		}
		item[snake] = value
		if camel != snake {
			item[camel] = value
		}
	}

	setAliased("user_id", "userId", record.UserID)
	setAliased("account_id", "accountId", record.Context.AccountID)
	setAliased("account_name", "accountName", record.Context.AccountName)
	setAliased("enterprise_id", "enterpriseId", record.Context.EnterpriseID)
	setAliased("enterprise_name", "enterpriseName", record.Context.EnterpriseName)
	setAliased("workstream", "workstream", record.Context.Workstream)
	setAliased("product", "product", record.Context.Product)
	setAliased("service", "service", record.Context.Service)
	setAliased("credential_name", "credentialName", record.CredentialName)
	setAliased("connector_name", "connectorName", record.ConnectorName)
	setAliased("encrypted_secret", "encryptedSecret", record.EncryptedSecret)
	setAliased("token_type", "tokenType", record.TokenType)
	setAliased("scope", "scope", record.Scope)
	setAliased("remote_account_id", "remoteAccountId", record.RemoteAccountID)
	setAliased("cloud_class", "cloudClass", string(record.CloudClass))
	setAliased("created_at", "createdAt", record.CreatedAt)
	setAliased("updated_at", "updatedAt", record.UpdatedAt)
	setAliased("expires_at", "expiresAt", record.ExpiresAt)

	return item
}

// parseCredentialItem reconstructs a credential record from a key/value
// item, accepting either naming convention per attribute. Snake_case wins
// when both are present.
func parseCredentialItem(item Item) models.CredentialRecord {
	pick := func(snake, camel string) string {
		if v, ok := item[snake].(string); ok && v != "" {
			return v
		}
		if v, ok := item[camel].(string); ok {
			return v
		}
		return ""
	}

	return models.CredentialRecord{
		ID:     pick("id", "id"),
		UserID: pick("user_id", "userId"),
		Context: models.TenantContext{
			EnterpriseID:   pick("enterprise_id", "enterpriseId"),
			EnterpriseName: pick("enterprise_name", "enterpriseName"),
			AccountID:      pick("account_id", "accountId"),
			AccountName:    pick("account_name", "accountName"),
			Workstream:     pick("workstream", "workstream"),
			Product:        pick("product", "product"),
			Service:        pick("service", "service"),
		},
		CredentialName:  pick("credential_name", "credentialName"),
		ConnectorName:   pick("connector_name", "connectorName"),
		EncryptedSecret: pick("encrypted_secret", "encryptedSecret"),
		TokenType:       pick("token_type", "tokenType"),
		Scope:           pick("scope", "scope"),
		RemoteAccountID: pick("remote_account_id", "remoteAccountId"),
		CloudClass:      models.CloudClass(pick("cloud_class", "cloudClass")),
		CreatedAt:       pick("created_at", "createdAt"),
		UpdatedAt:       pick("updated_at", "updatedAt"),
		ExpiresAt:       pick("expires_at", "expiresAt"),
	}
}

// isCredentialItem reports whether an item carries the credential entity tag
// under either naming convention.
func isCredentialItem(item Item) bool {
	if v, ok := item[attrEntityType].(string); ok && v == models.EntityTypeCredential {
		return true
	}
	if v, ok := item["entityType"].(string); ok && v == models.EntityTypeCredential {
		return true
	}
	return false
}
