package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/service"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/models"
)

var ErrUserQuit = errors.New("quit by user")

// TUI is the terminal front-end. It reads snapshots through the store and
// drives all mutations through the services; it never touches collections
// directly.
type TUI struct {
	services  *service.Services
	store     store.DataStore
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, dataStore store.DataStore, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		store:     dataStore,
		buildInfo: buildInfo,
	}, nil
}

// Run blocks until the user quits the program.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.store, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}

	return nil
}
