package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services   *service.ClientServices
	replyDelay time.Duration
}

func New(services *service.ClientServices, replyDelay time.Duration, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, replyDelay: replyDelay}, nil
}

// Run starts the interactive journal session and blocks until the user quits.
// userID may be empty: the UI then asks for it before the journal opens.
func (t *TUI) Run(ctx context.Context, userID string) error {
	model := newAppModel(ctx, t.services, userID, t.replyDelay)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && result.err != ErrUserQuit {
		return result.err
	}

	return nil
}
