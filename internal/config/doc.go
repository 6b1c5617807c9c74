// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package config provides configuration loading, merging, and validation
// facilities for the credential vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
