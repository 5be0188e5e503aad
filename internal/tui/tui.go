package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoAPIKeyPanel = errors.New("api key panel is not configured")

type TUI struct {
	services  *service.ClientServices
	status    *StatusBoard
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, status *StatusBoard, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.APIKeys == nil {
		return nil, ErrNoAPIKeyPanel
	}

	return &TUI{
		services:  services,
		status:    status,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run shows the API key panel until the user quits or ctx is cancelled. The
// panel is unmounted on return either way.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.APIKeys.Unmount()

	model := newAPIKeysModel(ctx, t.services.APIKeys, t.status, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run api keys panel: %w", err)
	}

	t.logger.Info().Msg("api keys panel closed")
	return nil
}
