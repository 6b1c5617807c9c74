// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

// TenantContext is the ordered tuple of optional tenant fields that scopes a
// credential record. An empty string means the field was not supplied; absent
// fields contribute nothing to the derived partition key.
//
// Field order is significant and fixed: enterprise id, enterprise name,
// account id, account name, workstream, product, service.
type TenantContext struct {
	EnterpriseID   string `json:"enterpriseId,omitempty"`
	EnterpriseName string `json:"enterpriseName,omitempty"`
	AccountID      string `json:"accountId,omitempty"`
	AccountName    string `json:"accountName,omitempty"`
	Workstream     string `json:"workstream,omitempty"`
	Product        string `json:"product,omitempty"`
	Service        string `json:"service,omitempty"`
}

// IsEmpty reports whether no tenant field was supplied at all. Records
// written with an empty context land in the sentinel DEFAULT partition.
func (t TenantContext) IsEmpty() bool {
	return t == TenantContext{}
}
