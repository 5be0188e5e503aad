// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Severity classifies a status message shown by the host page.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeveritySuccess Severity = "SUCCESS"
	SeverityError   Severity = "ERROR"
)

// StatusMessage is a single user-facing notification.
type StatusMessage struct {
	Message   string
	Severity  Severity
	CreatedAt time.Time
}
