// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package service

import "errors"

var (
	ErrNoTokenProvided      = errors.New("no token provided")
	ErrNoLookupNameProvided = errors.New("no credential or connector name provided")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
