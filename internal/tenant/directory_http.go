// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package tenant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/workstreamhq/credvault/models"
)

// HTTPDirectoryConfig configures the resty client behind [HTTPDirectory].
type HTTPDirectoryConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPDirectory is an [AccountDirectory] backed by the account service's
// REST API.
type HTTPDirectory struct {
	client *resty.Client
}

// NewHTTPDirectory constructs an [HTTPDirectory] for the given config.
// A zero timeout falls back to 10 seconds.
func NewHTTPDirectory(cfg HTTPDirectoryConfig) *HTTPDirectory {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &HTTPDirectory{client: cli}
}

// Lookup implements [AccountDirectory]. A 404 from the account service means
// the account has no route recorded and maps to (nil, nil); any other
// non-2xx status or transport failure is returned as an error for the router
// to degrade on.
func (d *HTTPDirectory) Lookup(ctx context.Context, accountID string) (*models.AccountRoute, error) {
	var route models.AccountRoute

	resp, err := d.client.R().
		SetContext(ctx).
		SetPathParam("accountID", accountID).
		SetResult(&route).
		Get("/api/v1/accounts/{accountID}/route")
	if err != nil {
		return nil, fmt.Errorf("account directory request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("account directory returned status %d", resp.StatusCode())
	}

	return &route, nil
}
