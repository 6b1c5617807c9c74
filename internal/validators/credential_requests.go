// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package validators

import (
	"context"
	"time"

	"github.com/workstreamhq/credvault/models"
)

const (
	FieldToken      = "token"
	FieldExpiresAt  = "expires_at"
	FieldCloudClass = "cloud_class"
	FieldLookupName = "lookup_name"
)

// CredentialRequestValidator validates the vault API's request shapes before
// they reach the service layer.
type CredentialRequestValidator struct {
}

func NewCredentialRequestValidator() Validator {
	return &CredentialRequestValidator{}
}

func (v *CredentialRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoreTokenRequest:
		return v.validateStoreTokenRequest(ctx, value, fields...)
	case *models.StoreTokenRequest:
		return v.validateStoreTokenRequest(ctx, *value, fields...)

	case models.TokenQuery:
		return v.validateTokenQuery(ctx, value, fields...)
	case *models.TokenQuery:
		return v.validateTokenQuery(ctx, *value, fields...)

	case models.NameQuery:
		return v.validateNameQuery(ctx, value, fields...)
	case *models.NameQuery:
		return v.validateNameQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidCloudClass(class models.CloudClass) bool {
	return class == "" || class == models.CloudPublic || class == models.CloudPrivate
}

func (v *CredentialRequestValidator) validateStoreTokenRequest(_ context.Context, req models.StoreTokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldExpiresAt, FieldCloudClass}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if req.Token == "" {
				return ErrNoToken
			}
		case FieldExpiresAt:
			if req.ExpiresAt != "" {
				if _, err := time.Parse(time.RFC3339, req.ExpiresAt); err != nil {
					return ErrInvalidExpiresAt
				}
			}
		case FieldCloudClass:
			if !isValidCloudClass(req.CloudClass) {
				return ErrInvalidCloudClass
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialRequestValidator) validateTokenQuery(_ context.Context, query models.TokenQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCloudClass}
	}

	for _, f := range fields {
		switch f {
		case FieldCloudClass:
			if !isValidCloudClass(query.CloudClass) {
				return ErrInvalidCloudClass
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialRequestValidator) validateNameQuery(_ context.Context, query models.NameQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLookupName, FieldCloudClass}
	}

	for _, f := range fields {
		switch f {
		case FieldLookupName:
			if query.CredentialName == "" && query.ConnectorName == "" {
				return ErrNoLookupName
			}
		case FieldCloudClass:
			if !isValidCloudClass(query.CloudClass) {
				return ErrInvalidCloudClass
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
