// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GetAPIKeysRequest is the body of the "get keys" call.
type GetAPIKeysRequest struct {
	Credentials Credentials `json:"credentials"`
}

// GetAPIKeysResponse is the body returned by the "get keys" call.
//
// APIKeys is nil when the server omitted the field (or sent null); an empty
// JSON array decodes to a non-nil empty slice.
type GetAPIKeysResponse struct {
	APIKeys []APIKeyEntry `json:"api_keys,omitempty"`
}

// SetAPIKeysRequest is the body of the "set keys" call. The full entry list is
// always transmitted.
type SetAPIKeysRequest struct {
	Credentials Credentials   `json:"credentials"`
	APIKeys     []APIKeyEntry `json:"api_keys"`
}
