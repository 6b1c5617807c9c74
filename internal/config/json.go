// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads configuration from the JSON file at jsonFilePath. Field
// mapping is defined by the `json` tags on [StructuredConfig].
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	cfg := &StructuredConfig{}
	if err := json.NewDecoder(jsonFile).Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return cfg, nil
}
