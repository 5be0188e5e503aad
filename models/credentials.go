// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Credentials is an opaque authentication context forwarded unchanged with
// every key store request. The client never inspects its contents; it only
// serialises the raw JSON it was built from.
type Credentials struct {
	raw json.RawMessage
}

// NewCredentials builds [Credentials] from a configuration value. A value that
// is already valid JSON is forwarded as is; any other non-empty value is
// forwarded as a JSON string. An empty value produces JSON null.
func NewCredentials(value string) Credentials {
	value = strings.TrimSpace(value)
	if value == "" {
		return Credentials{}
	}

	if json.Valid([]byte(value)) {
		return Credentials{raw: json.RawMessage(value)}
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return Credentials{}
	}
	return Credentials{raw: encoded}
}

// IsZero reports whether no credentials were configured.
func (c Credentials) IsZero() bool {
	return len(c.raw) == 0 || bytes.Equal(c.raw, []byte("null"))
}

// MarshalJSON implements [json.Marshaler].
func (c Credentials) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return []byte("null"), nil
	}
	return c.raw, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. The payload is kept verbatim.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	c.raw = append(c.raw[:0], data...)
	return nil
}
