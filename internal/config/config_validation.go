// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the client view built from the merged sources. Partial
// sources are merged first, so this is the only place settings are enforced.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.GetKeysPath, "/") || !strings.HasPrefix(cfg.Adapter.SetKeysPath, "/") {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Log.FilePath) == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
