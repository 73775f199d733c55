package client

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	cfg      *config.ClientConfig

	logger *logger.Logger
}

// NewApp assembles the client runtime from its already constructed parts.
func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run implements [Client]. It opens the interactive journal session and
// blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	a.logger.Info().Str("userID", a.cfg.App.UserID).Msg("starting journal session")
	if err := a.ui.Run(ctx, a.cfg.App.UserID); err != nil {
		return err
	}
	a.logger.Info().Msg("journal session finished")

	return nil
}
