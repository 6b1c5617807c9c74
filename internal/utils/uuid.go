// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for stored credential records.
// Prefers time-ordered UUIDv7 so records sort naturally by creation time,
// falling back to UUIDv4 when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
