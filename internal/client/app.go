package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

var ErrNoUI = errors.New("ui is not configured")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{ui: ui, logger: log}, nil
}

// Run implements Client.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui stopped with error: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
