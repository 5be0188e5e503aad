// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-key-keeper/internal/app"
)

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "no clipboard utilities") ||
		strings.Contains(s, "executable file not found") ||
		strings.Contains(s, "can't open display") {
		return app.MsgClipboardUnavailable
	}

	return "Copy failed: " + err.Error()
}
