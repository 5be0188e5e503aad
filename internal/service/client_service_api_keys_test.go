// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCredentials = models.NewCredentials(`{"deployment":"Local"}`)

// newTestPanel creates an apiKeyPanel backed by mocks. The notifier has no
// expectations unless the test adds them, so any unexpected status message
// fails the test.
func newTestPanel(t *testing.T, ctrl *gomock.Controller) (*apiKeyPanel, *mock.MockKeyStoreAdapter, *mock.MockStatusNotifier) {
	t.Helper()
	mockKeyStore := mock.NewMockKeyStoreAdapter(ctrl)
	mockNotifier := mock.NewMockStatusNotifier(ctrl)

	p := NewAPIKeyPanel(mockKeyStore, testCredentials, mockNotifier, logger.Nop()).(*apiKeyPanel)
	t.Cleanup(p.Unmount)

	return p, mockKeyStore, mockNotifier
}

func twoEntries() []models.APIKeyEntry {
	return []models.APIKeyEntry{
		{Name: "A", Value: "alpha", Description: "first"},
		{Name: "B", Value: "", Description: "second", Required: true},
	}
}

// blockingGet returns a GetAPIKeys stub that signals started, then waits for
// release or for its context to end.
func blockingGet(started chan<- struct{}, release <-chan struct{}, result []models.APIKeyEntry) func(context.Context, models.Credentials) ([]models.APIKeyEntry, error) {
	return func(ctx context.Context, _ models.Credentials) ([]models.APIKeyEntry, error) {
		close(started)
		select {
		case <-release:
			return result, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// loadEntries runs a successful Load so the panel holds entries.
func loadEntries(t *testing.T, p *apiKeyPanel, mockKeyStore *mock.MockKeyStoreAdapter, entries []models.APIKeyEntry) {
	t.Helper()
	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(entries, nil)
	p.Load(context.Background())
	require.False(t, p.Loading())
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for signal")
	}
}

// ── NewAPIKeyPanel ───────────────────────────────────────────────────────────

func TestNewAPIKeyPanel_InitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, _, _ := newTestPanel(t, ctrl)

	assert.Empty(t, p.Entries())
	assert.True(t, p.Loading(), "a panel is loading until its first load finishes")
	assert.False(t, p.IsVisible("OPENAI_API_KEY"))
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestAPIKeyPanel_Load_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	loaded := []models.APIKeyEntry{{Name: "X", Value: "abc", Description: "d", Required: true}}
	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), testCredentials).Return(loaded, nil)

	p.Load(context.Background())

	assert.Equal(t, loaded, p.Entries())
	assert.False(t, p.Loading())
}

func TestAPIKeyPanel_Load_EmptyListKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return([]models.APIKeyEntry{}, nil)

	p.Load(context.Background())

	assert.Empty(t, p.Entries())
}

func TestAPIKeyPanel_Load_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.APIKeyEntry
		err     error
	}{
		{name: "status error", err: &adapter.StatusError{StatusCode: http.StatusInternalServerError, Body: "boom"}},
		{name: "transport error", err: errors.New("connection refused")},
		{name: "missing api_keys", err: adapter.ErrNoAPIKeys},
		{name: "duplicate names", entries: []models.APIKeyEntry{{Name: "A"}, {Name: "A"}}},
		{name: "empty name", entries: []models.APIKeyEntry{{Name: " "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p, mockKeyStore, _ := newTestPanel(t, ctrl)

			mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(tt.entries, tt.err)

			p.Load(context.Background())

			assert.Equal(t, models.DefaultAPIKeys(), p.Entries())
		})
	}
}

// TestAPIKeyPanel_Load_NoMerge verifies a failed reload replaces a previously
// loaded list with the defaults instead of merging them.
func TestAPIKeyPanel_Load_NoMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	gomock.InOrder(
		mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil),
		mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(nil, errors.New("down")),
	)

	p.Load(context.Background())
	require.Equal(t, twoEntries(), p.Entries())

	p.Load(context.Background())
	assert.Equal(t, models.DefaultAPIKeys(), p.Entries())
}

func TestAPIKeyPanel_Load_LoadingWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Credentials) ([]models.APIKeyEntry, error) {
			assert.True(t, p.Loading())
			return twoEntries(), nil
		},
	)

	p.Load(context.Background())
	assert.False(t, p.Loading())
}

// ── UpdateEntry / ToggleVisibility ──────────────────────────────────────────

func TestAPIKeyPanel_UpdateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil)
	p.Load(context.Background())

	p.UpdateEntry("B", "beta")

	want := twoEntries()
	want[1].Value = "beta"
	assert.Equal(t, want, p.Entries())
}

func TestAPIKeyPanel_UpdateEntry_UnknownName(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil)
	p.Load(context.Background())

	p.UpdateEntry("MISSING", "value")

	assert.Equal(t, twoEntries(), p.Entries())
}

func TestAPIKeyPanel_Entries_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil)
	p.Load(context.Background())

	entries := p.Entries()
	entries[0].Value = "mutated"

	entry, ok := p.Entry("A")
	require.True(t, ok)
	assert.Equal(t, "alpha", entry.Value)

	_, ok = p.Entry("MISSING")
	assert.False(t, ok)
}

func TestAPIKeyPanel_ToggleVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, _, _ := newTestPanel(t, ctrl)

	p.ToggleVisibility("A")
	assert.True(t, p.IsVisible("A"))
	assert.False(t, p.IsVisible("B"))

	p.ToggleVisibility("A")
	assert.False(t, p.IsVisible("A"))

	// names that are not in the list are tracked too
	p.ToggleVisibility("NOT_LISTED")
	assert.True(t, p.IsVisible("NOT_LISTED"))
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestAPIKeyPanel_Save_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, mockNotifier := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil)
	p.Load(context.Background())
	p.UpdateEntry("B", "beta")

	want := twoEntries()
	want[1].Value = "beta"

	gomock.InOrder(
		mockKeyStore.EXPECT().SetAPIKeys(gomock.Any(), testCredentials, want).Return(nil),
		mockNotifier.EXPECT().AddStatusMessage(app.MsgAPIKeysSaved, models.SeveritySuccess).Times(1),
	)

	p.Save(context.Background())
	assert.False(t, p.Loading())
}

func TestAPIKeyPanel_Save_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "status error", err: &adapter.StatusError{StatusCode: http.StatusBadRequest, Body: "bad"}, message: app.MsgAPIKeysSaveFailed},
		{name: "transport error", err: errors.New("connection reset"), message: app.MsgAPIKeysSaveError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p, mockKeyStore, mockNotifier := newTestPanel(t, ctrl)
			loadEntries(t, p, mockKeyStore, twoEntries())

			mockKeyStore.EXPECT().SetAPIKeys(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.err)
			mockNotifier.EXPECT().AddStatusMessage(tt.message, models.SeverityError).Times(1)

			assert.NotPanics(t, func() { p.Save(context.Background()) })
		})
	}
}

// TestAPIKeyPanel_Save_BeforeFirstLoad verifies that a save reaching the panel
// before the initial load never sends the empty list to the store.
func TestAPIKeyPanel_Save_BeforeFirstLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, mockNotifier := newTestPanel(t, ctrl)

	// no SetAPIKeys or notifier expectations: either call fails the test
	p.Save(context.Background())

	assert.True(t, p.Loading())
	assert.Empty(t, p.Entries())

	loadEntries(t, p, mockKeyStore, twoEntries())

	mockKeyStore.EXPECT().SetAPIKeys(gomock.Any(), gomock.Any(), twoEntries()).Return(nil)
	mockNotifier.EXPECT().AddStatusMessage(app.MsgAPIKeysSaved, models.SeveritySuccess)
	p.Save(context.Background())
}

// TestAPIKeyPanel_Save_WaitsForLoad verifies that a save issued while a load
// is in flight runs after it and sends the loaded list.
func TestAPIKeyPanel_Save_WaitsForLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, mockNotifier := newTestPanel(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).DoAndReturn(blockingGet(started, release, twoEntries()))
	mockKeyStore.EXPECT().SetAPIKeys(gomock.Any(), gomock.Any(), twoEntries()).Return(nil)
	mockNotifier.EXPECT().AddStatusMessage(app.MsgAPIKeysSaved, models.SeveritySuccess)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.Load(context.Background())
	}()
	waitFor(t, started)

	go func() {
		defer wg.Done()
		p.Save(context.Background())
	}()

	close(release)
	wg.Wait()
}

// ── Mount / Unmount ──────────────────────────────────────────────────────────

func TestAPIKeyPanel_Mount_LoadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil).Times(1)

	p.Mount(context.Background())
	p.Mount(context.Background())

	assert.Equal(t, twoEntries(), p.Entries())
}

func TestAPIKeyPanel_Mount_HostCancelUnmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	p.Mount(ctx)
	cancel()

	assert.Eventually(t, func() bool { return p.lifetime.Err() != nil }, time.Second, 5*time.Millisecond)

	// no SetAPIKeys expectation: a save after unmount must not reach the store
	p.Save(context.Background())
}

func TestAPIKeyPanel_Unmount_DiscardsLoadResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	started := make(chan struct{})
	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).DoAndReturn(blockingGet(started, nil, nil))

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Load(context.Background())
	}()

	waitFor(t, started)
	p.Unmount()
	waitFor(t, done)

	assert.Empty(t, p.Entries(), "abandoned load must not fall back to defaults")
}

func TestAPIKeyPanel_Unmount_SuppressesSaveMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)
	loadEntries(t, p, mockKeyStore, twoEntries())

	started := make(chan struct{})
	mockKeyStore.EXPECT().SetAPIKeys(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.Credentials, _ []models.APIKeyEntry) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		},
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Save(context.Background())
	}()

	waitFor(t, started)
	p.Unmount()
	waitFor(t, done)
	// the notifier mock has no expectations, so any message fails the test
}

func TestAPIKeyPanel_Unmount_ReleasesWaitingOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	started := make(chan struct{})
	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).DoAndReturn(blockingGet(started, nil, nil))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.Load(context.Background())
	}()
	waitFor(t, started)
	go func() {
		defer wg.Done()
		p.Save(context.Background())
	}()

	p.Unmount()

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	waitFor(t, finished)
}

func TestAPIKeyPanel_AfterUnmount_NoOps(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, mockKeyStore, _ := newTestPanel(t, ctrl)

	mockKeyStore.EXPECT().GetAPIKeys(gomock.Any(), gomock.Any()).Return(twoEntries(), nil)
	p.Load(context.Background())

	p.Unmount()
	p.Unmount()

	p.Load(context.Background())
	p.Save(context.Background())
	p.Mount(context.Background())
	p.UpdateEntry("A", "changed")
	p.ToggleVisibility("A")

	assert.Equal(t, twoEntries(), p.Entries())
	assert.False(t, p.IsVisible("A"))
	assert.False(t, p.Loading())
}

// ── against an HTTP key store ───────────────────────────────────────────────

func newHTTPPanel(t *testing.T, ctrl *gomock.Controller, serverURL string) (APIKeyPanel, *mock.MockStatusNotifier) {
	t.Helper()
	keyStore, err := adapter.NewHTTPKeyStoreAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	mockNotifier := mock.NewMockStatusNotifier(ctrl)
	p := NewAPIKeyPanel(keyStore, testCredentials, mockNotifier, logger.Nop())
	t.Cleanup(p.Unmount)
	return p, mockNotifier
}

func TestAPIKeyPanel_HTTP_LoadServerErrorGivesDefaults(t *testing.T) {
	r := chi.NewRouter()
	r.Post(config.DefaultGetKeysPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctrl := gomock.NewController(t)
	p, _ := newHTTPPanel(t, ctrl, srv.URL)

	p.Mount(context.Background())

	entries := p.Entries()
	require.Len(t, entries, 7)
	for _, e := range entries {
		assert.Empty(t, e.Value)
	}
	assert.Equal(t, models.DefaultAPIKeys(), entries)
}

func TestAPIKeyPanel_HTTP_LoadThenSave(t *testing.T) {
	r := chi.NewRouter()
	r.Post(config.DefaultGetKeysPath, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"api_keys":[{"name":"X","key":"abc","description":"d","required":true}]}`))
	})
	r.Post(config.DefaultSetKeysPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctrl := gomock.NewController(t)
	p, mockNotifier := newHTTPPanel(t, ctrl, srv.URL)

	p.Mount(context.Background())
	assert.Equal(t, []models.APIKeyEntry{{Name: "X", Value: "abc", Description: "d", Required: true}}, p.Entries())

	mockNotifier.EXPECT().AddStatusMessage(app.MsgAPIKeysSaved, models.SeveritySuccess).Times(1)
	p.Save(context.Background())
}

func TestAPIKeyPanel_HTTP_SaveNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ctrl := gomock.NewController(t)
	p, mockNotifier := newHTTPPanel(t, ctrl, url)

	// the load fails too and falls back to the defaults
	p.Mount(context.Background())
	require.Equal(t, models.DefaultAPIKeys(), p.Entries())

	mockNotifier.EXPECT().AddStatusMessage(app.MsgAPIKeysSaveError, models.SeverityError).Times(1)

	assert.NotPanics(t, func() { p.Save(context.Background()) })
}
