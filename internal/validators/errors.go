// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoToken           = errors.New("token is required")
	ErrInvalidExpiresAt  = errors.New("invalid expiresAt timestamp")
	ErrInvalidCloudClass = errors.New("invalid cloud class")
	ErrNoLookupName      = errors.New("credential or connector name is required")
)
