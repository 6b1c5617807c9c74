package store

import (
	"testing"

	"github.com/workstreamhq/credvault/models"
)

func sampleRecord() models.CredentialRecord {
	return models.CredentialRecord{
		ID:     "rec-1",
		UserID: "U100",
		Context: models.TenantContext{
			EnterpriseID:   "E1",
			EnterpriseName: "Acme Corp",
			AccountID:      "A1",
			AccountName:    "Acme",
			Workstream:     "support",
			Product:        "desk",
			Service:        "chat",
		},
		CredentialName:  "prod-bot",
		ConnectorName:   "slack",
		EncryptedSecret: "v1:aXY=:Y3Q=",
		TokenType:       "Bearer",
		Scope:           "read write",
		RemoteAccountID: "R1",
		CloudClass:      models.CloudPrivate,
		CreatedAt:       "2026-08-01T10:00:00Z",
		UpdatedAt:       "2026-08-01T10:00:00Z",
		ExpiresAt:       "2027-08-01T10:00:00Z",
	}
}

func TestMarshalCredentialItem_Keys(t *testing.T) {
	item := marshalCredentialItem(PKVaultPrefix+"ENT#E1#ACC#A1", sampleRecord())

	if got := item[attrPK]; got != "VAULT#ENT#E1#ACC#A1" {
		t.Errorf("PK = %v, want VAULT#ENT#E1#ACC#A1", got)
	}
	if got := item[attrSK]; got != "TOKEN#rec-1" {
		t.Errorf("SK = %v, want TOKEN#rec-1", got)
	}
	if got := item[attrEntityType]; got != models.EntityTypeCredential {
		t.Errorf("entity_type = %v, want %s", got, models.EntityTypeCredential)
	}
	if got := item["entityType"]; got != models.EntityTypeCredential {
		t.Errorf("entityType alias = %v, want %s", got, models.EntityTypeCredential)
	}
}

func TestMarshalCredentialItem_DualAliases(t *testing.T) {
	item := marshalCredentialItem(PKVaultPrefix+"DEFAULT", sampleRecord())

	aliases := map[string]string{
		"user_id":           "userId",
		"account_id":        "accountId",
		"enterprise_name":   "enterpriseName",
		"credential_name":   "credentialName",
		"encrypted_secret":  "encryptedSecret",
		"remote_account_id": "remoteAccountId",
		"created_at":        "createdAt",
	}
	for snake, camel := range aliases {
		sv, ok := item[snake]
		if !ok {
			t.Errorf("missing snake_case attribute %q", snake)
			continue
		}
		cv, ok := item[camel]
		if !ok {
			t.Errorf("missing camelCase alias %q", camel)
			continue
		}
		if sv != cv {
			t.Errorf("alias mismatch for %q: %v != %v", snake, sv, cv)
		}
	}
}

func TestMarshalCredentialItem_SkipsEmptyAttributes(t *testing.T) {
	record := models.CredentialRecord{
		ID:              "rec-2",
		EncryptedSecret: "v1:aXY=:Y3Q=",
		TokenType:       "Bearer",
		CreatedAt:       "2026-08-01T10:00:00Z",
		UpdatedAt:       "2026-08-01T10:00:00Z",
	}

	item := marshalCredentialItem(PKVaultPrefix+"DEFAULT", record)

	for _, absent := range []string{"user_id", "userId", "scope", "expires_at", "cloud_class"} {
		if _, ok := item[absent]; ok {
			t.Errorf("empty attribute %q should not be written", absent)
		}
	}
}

func TestParseCredentialItem_RoundTrip(t *testing.T) {
	want := sampleRecord()
	got := parseCredentialItem(marshalCredentialItem(PKVaultPrefix+"DEFAULT", want))

	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestParseCredentialItem_CamelCaseOnly(t *testing.T) {
	// Records written by earlier deployments carry only camelCase names.
	item := Item{
		attrPK:            "VAULT#ENT#E1",
		attrSK:            "TOKEN#legacy-1",
		"id":              "legacy-1",
		"entityType":      models.EntityTypeCredential,
		"enterpriseId":    "E1",
		"accountId":       "A1",
		"encryptedSecret": "v1:aXY=:Y3Q=",
		"tokenType":       "Bearer",
		"createdAt":       "2024-01-01T00:00:00Z",
		"updatedAt":       "2024-01-01T00:00:00Z",
	}

	got := parseCredentialItem(item)

	if got.ID != "legacy-1" || got.Context.EnterpriseID != "E1" || got.Context.AccountID != "A1" {
		t.Errorf("camelCase-only item parsed incorrectly: %+v", got)
	}
	if got.EncryptedSecret != "v1:aXY=:Y3Q=" {
		t.Errorf("EncryptedSecret = %q", got.EncryptedSecret)
	}
}

func TestParseCredentialItem_SnakeCaseWins(t *testing.T) {
	item := Item{
		"id":          "rec-3",
		"account_id":  "A-snake",
		"accountId":   "A-camel",
		"entity_type": models.EntityTypeCredential,
		"token_type":  "Bearer",
		"created_at":  "2026-01-01T00:00:00Z",
		"updated_at":  "2026-01-01T00:00:00Z",
	}

	if got := parseCredentialItem(item); got.Context.AccountID != "A-snake" {
		t.Errorf("AccountID = %q, want snake_case value to win", got.Context.AccountID)
	}
}

func TestIsCredentialItem(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"snake tag", Item{attrEntityType: models.EntityTypeCredential}, true},
		{"camel tag", Item{"entityType": models.EntityTypeCredential}, true},
		{"other entity", Item{attrEntityType: "ACCOUNT"}, false},
		{"untagged", Item{"id": "x"}, false},
		{"non-string tag", Item{attrEntityType: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCredentialItem(tt.item); got != tt.want {
				t.Errorf("isCredentialItem() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToRecords_FiltersAndSortsNewestFirst(t *testing.T) {
	items := []Item{
		{
			attrPK: "VAULT#DEFAULT", "id": "older", attrEntityType: models.EntityTypeCredential,
			"token_type": "Bearer", "created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-01T00:00:00Z",
		},
		{
			// Secondary user-lookup entry: must not surface.
			attrPK: "USER#U100", "id": "dupe", attrEntityType: models.EntityTypeCredential,
			"token_type": "Bearer", "created_at": "2026-03-01T00:00:00Z", "updated_at": "2026-03-01T00:00:00Z",
		},
		{
			// Foreign entity sharing the table: must not surface.
			attrPK: "VAULT#DEFAULT", "id": "other", attrEntityType: "ACCOUNT",
		},
		{
			attrPK: "VAULT#DEFAULT", "id": "newer", attrEntityType: models.EntityTypeCredential,
			"token_type": "Bearer", "created_at": "2026-02-01T00:00:00Z", "updated_at": "2026-02-01T00:00:00Z",
		},
	}

	records := toRecords(items)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if records[0].ID != "newer" || records[1].ID != "older" {
		t.Errorf("order = [%s %s], want [newer older]", records[0].ID, records[1].ID)
	}
}
