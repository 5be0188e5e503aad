// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
	"golang.org/x/sync/semaphore"
)

type apiKeyPanel struct {
	keyStore    adapter.KeyStoreAdapter
	credentials models.Credentials
	notifier    StatusNotifier
	validator   validators.Validator
	logger      *logger.Logger

	// ops serializes Load and Save: at most one request per panel is in flight.
	ops *semaphore.Weighted

	mu       sync.RWMutex
	entries  []models.APIKeyEntry
	visible  map[string]bool
	loading  bool
	loaded   bool
	stopHost func() bool

	lifetime  context.Context
	cancel    context.CancelFunc
	mountOnce sync.Once
}

// NewAPIKeyPanel creates an unmounted panel. The entry list stays empty and
// the panel reports itself as loading until the first Load completes.
func NewAPIKeyPanel(keyStore adapter.KeyStoreAdapter, credentials models.Credentials, notifier StatusNotifier, log *logger.Logger) APIKeyPanel {
	lifetime, cancel := context.WithCancel(context.Background())

	return &apiKeyPanel{
		keyStore:    keyStore,
		credentials: credentials,
		notifier:    notifier,
		validator:   validators.NewAPIKeysValidator(),
		logger:      log.WithComponent("api_key_panel"),
		ops:         semaphore.NewWeighted(1),
		visible:     make(map[string]bool),
		lifetime:    lifetime,
		cancel:      cancel,
	}
}

// Mount implements APIKeyPanel. Cancelling ctx afterwards unmounts the panel.
func (p *apiKeyPanel) Mount(ctx context.Context) {
	p.mountOnce.Do(func() {
		p.mu.Lock()
		if p.lifetime.Err() == nil {
			p.stopHost = context.AfterFunc(ctx, p.Unmount)
		}
		p.mu.Unlock()

		p.logger.Debug().Msg("panel mounted")
		p.Load(ctx)
	})
}

// Load implements APIKeyPanel.
func (p *apiKeyPanel) Load(ctx context.Context) {
	opCtx, done, ok := p.begin(ctx)
	if !ok {
		return
	}
	defer done()

	p.setLoading(true)
	defer p.setLoading(false)

	entries, err := p.keyStore.GetAPIKeys(opCtx, p.credentials)
	if opCtx.Err() != nil {
		p.logger.Debug().Err(opCtx.Err()).Msg("load abandoned, response discarded")
		return
	}
	if err == nil {
		err = p.validator.Validate(opCtx, entries)
	}
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to load api keys, using defaults")
		entries = models.DefaultAPIKeys()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lifetime.Err() != nil {
		return
	}
	p.entries = entries
	p.loaded = true

	p.logger.Debug().Int("entries", len(entries)).Msg("api keys loaded")
}

// UpdateEntry implements APIKeyPanel.
func (p *apiKeyPanel) UpdateEntry(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lifetime.Err() != nil {
		return
	}

	for i := range p.entries {
		if p.entries[i].Name == name {
			p.entries[i].Value = value
			return
		}
	}
}

// ToggleVisibility implements APIKeyPanel.
func (p *apiKeyPanel) ToggleVisibility(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lifetime.Err() != nil {
		return
	}

	p.visible[name] = !p.visible[name]
}

// IsVisible implements APIKeyPanel.
func (p *apiKeyPanel) IsVisible(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visible[name]
}

// Entries implements APIKeyPanel.
func (p *apiKeyPanel) Entries() []models.APIKeyEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.entries)
}

// Entry implements APIKeyPanel.
func (p *apiKeyPanel) Entry(name string) (models.APIKeyEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := slices.IndexFunc(p.entries, func(e models.APIKeyEntry) bool { return e.Name == name })
	if i < 0 {
		return models.APIKeyEntry{}, false
	}
	return p.entries[i], true
}

// Loading implements APIKeyPanel. A panel whose first Load has not finished
// is loading.
func (p *apiKeyPanel) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading || !p.loaded
}

// Save implements APIKeyPanel. The entry list is captured after any pending
// Load has finished, so a save issued during a load sends the loaded list.
// Until a Load has populated the list Save sends nothing: an empty list would
// wipe every key in the store.
func (p *apiKeyPanel) Save(ctx context.Context) {
	opCtx, done, ok := p.begin(ctx)
	if !ok {
		return
	}
	defer done()

	if !p.isLoaded() {
		p.logger.Warn().Msg("save requested before api keys were loaded, ignored")
		return
	}

	p.setLoading(true)
	defer p.setLoading(false)

	err := p.keyStore.SetAPIKeys(opCtx, p.credentials, p.Entries())
	if opCtx.Err() != nil {
		p.logger.Debug().Err(opCtx.Err()).Msg("save abandoned, response discarded")
		return
	}

	switch {
	case err == nil:
		p.logger.Info().Msg("api keys saved")
		p.notify(app.MsgAPIKeysSaved, models.SeveritySuccess)
	case adapter.IsStatusError(err):
		p.logger.Error().Err(err).Msg("key store rejected api keys")
		p.notify(app.MsgAPIKeysSaveFailed, models.SeverityError)
	default:
		p.logger.Error().Err(err).Msg("error saving api keys")
		p.notify(app.MsgAPIKeysSaveError, models.SeverityError)
	}
}

// Unmount implements APIKeyPanel.
func (p *apiKeyPanel) Unmount() {
	p.mu.Lock()
	if p.lifetime.Err() != nil {
		p.mu.Unlock()
		return
	}
	p.cancel()
	stopHost := p.stopHost
	p.stopHost = nil
	p.mu.Unlock()

	if stopHost != nil {
		stopHost()
	}
	p.logger.Debug().Msg("panel unmounted")
}

// begin derives the operation context from ctx and the panel lifetime and
// waits for its turn. done must be called once the operation is over.
func (p *apiKeyPanel) begin(ctx context.Context) (context.Context, func(), bool) {
	if p.lifetime.Err() != nil {
		return nil, nil, false
	}

	opCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.lifetime, cancel)

	if err := p.ops.Acquire(opCtx, 1); err != nil {
		stop()
		cancel()
		return nil, nil, false
	}

	return opCtx, func() {
		p.ops.Release(1)
		stop()
		cancel()
	}, true
}

func (p *apiKeyPanel) isLoaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

func (p *apiKeyPanel) setLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = loading
}

// notify holds the read lock so that no message is emitted once Unmount has
// returned.
func (p *apiKeyPanel) notify(message string, severity models.Severity) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.lifetime.Err() != nil {
		return
	}
	p.notifier.AddStatusMessage(message, severity)
}
