// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// key keeper client.
//
// All Msg* constants are human-readable strings shown in the status bar of
// the settings page. Keeping them in one place ensures consistent wording
// between the panel controller and the terminal UI.
package app

const (
	// MsgAPIKeysSaved is reported with SUCCESS when the key store accepted a
	// save.
	MsgAPIKeysSaved = "API keys saved successfully"

	// MsgAPIKeysSaveFailed is reported with ERROR when the key store answered
	// a save with a non-success status.
	MsgAPIKeysSaveFailed = "Failed to save API keys"

	// MsgAPIKeysSaveError is reported with ERROR when a save never got a
	// response (network failure, timeout).
	MsgAPIKeysSaveError = "Error saving API keys"

	// MsgNothingToCopy is shown when the selected key has no value.
	MsgNothingToCopy = "Nothing to copy"

	// MsgClipboardUnavailable is shown when no clipboard backend is installed.
	MsgClipboardUnavailable = "Clipboard is not available on this system"
)
