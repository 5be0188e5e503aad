// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic behind the API key
// settings panel.
//
// [APIKeyPanel] is the UI-independent controller: it owns the in-memory entry
// list, the per-entry visibility flags and the loading flag, and it talks to
// the key store through an [adapter.KeyStoreAdapter]. Results meant for the
// user are reported through an injected [StatusNotifier].
package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StatusNotifier is the host page's capability for showing a transient status
// message. Implementations must not call back into the panel.
type StatusNotifier interface {
	AddStatusMessage(message string, severity models.Severity)
}

// APIKeyPanel defines the lifecycle and operations of one API key settings
// panel instance.
type APIKeyPanel interface {
	// Mount binds the panel lifetime to ctx and performs the initial Load.
	// Only the first call has any effect.
	Mount(ctx context.Context)

	// Load fetches the stored entries. Any failure falls back to
	// [models.DefaultAPIKeys] and is only logged.
	Load(ctx context.Context)

	// UpdateEntry replaces the value of the entry called name, if present.
	UpdateEntry(name, value string)

	// ToggleVisibility flips the visibility flag of name. Names start hidden.
	ToggleVisibility(name string)

	// IsVisible reports whether the value of name is currently shown in clear.
	IsVisible(name string) bool

	// Entries returns a copy of the current entry list in display order.
	Entries() []models.APIKeyEntry

	// Entry returns a copy of the entry called name.
	Entry(name string) (models.APIKeyEntry, bool)

	// Loading reports whether a load or save is in flight.
	Loading() bool

	// Save sends the full entry list to the key store and reports the outcome
	// through the [StatusNotifier] exactly once.
	Save(ctx context.Context)

	// Unmount aborts in-flight requests and turns every later operation into
	// a no-op. Safe to call more than once.
	Unmount()
}
