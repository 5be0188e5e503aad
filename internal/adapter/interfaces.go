// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote API key store.
//
// The primary abstraction is [KeyStoreAdapter], which decouples the panel
// controller from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPKeyStoreAdapter]).
//
// Non-2xx responses are mapped to [*StatusError] values that unwrap to the
// sentinels in errors.go, so callers can use [errors.Is] for status checks
// and [IsStatusError] to tell a rejected request from a transport failure.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_store_adapter_mock.go -package=mock

// KeyStoreAdapter defines transport-agnostic communication with the key store.
// Credentials are forwarded unchanged and never inspected.
type KeyStoreAdapter interface {
	// GetAPIKeys fetches the stored entry list. It returns [ErrNoAPIKeys] when
	// the store answered successfully without an "api_keys" field, a
	// [*StatusError] on a non-2xx response, or a wrapped transport error.
	GetAPIKeys(ctx context.Context, credentials models.Credentials) ([]models.APIKeyEntry, error)

	// SetAPIKeys sends the full entry list to the store. Only the response
	// status is consulted.
	SetAPIKeys(ctx context.Context, credentials models.Credentials, apiKeys []models.APIKeyEntry) error
}
