package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chest-tracker/internal/config"
	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/parser"
	"github.com/MKhiriev/chest-tracker/internal/service"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/internal/tui"
	"github.com/MKhiriev/chest-tracker/internal/workers"
	"github.com/MKhiriev/chest-tracker/models"
)

// App wires the store, services, background workers, and the terminal UI
// into one process.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	store    store.DataStore
	services *service.Services
	tui      *tui.TUI
	autosave *workers.AutosaveWorker
}

func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	dataStore := store.NewDataStore(log)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init storages: %w", err)
	}

	loader := parser.NewLoader(log)
	services := service.NewServices(dataStore, storages, loader, *cfg, log)

	ui, err := tui.New(services, dataStore, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init terminal ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		store:    dataStore,
		services: services,
		tui:      ui,
	}, nil
}

// Run blocks until the user quits the terminal UI. The workspace is
// restored on startup and saved once more on the way out.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.subscribeAutoValidation()

	if err := a.services.WorkspaceService.LoadWorkspace(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to restore workspace, starting empty")
	}

	a.autosave = workers.NewAutosaveWorker(ctx, a.cfg.Workers.AutosaveInterval, a.services.WorkspaceService, a.logger)
	workers.NewWorkers(a.autosave).Run()
	defer a.autosave.Stop()

	if err := a.tui.Run(ctx); err != nil {
		return fmt.Errorf("terminal ui exited with error: %w", err)
	}

	if err := a.services.WorkspaceService.SaveWorkspace(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to save workspace on exit")
		return err
	}

	return nil
}

// subscribeAutoValidation re-runs validation whenever entries change from
// the outside (file imports, UI edits, workspace restore). Writes made by
// the engines themselves are skipped so a validation pass never triggers
// another one.
func (a *App) subscribeAutoValidation() {
	a.store.Subscribe(models.EventEntriesUpdated, func(event models.Event) {
		payload, ok := event.Payload.(models.EntriesUpdatedPayload)
		if !ok {
			return
		}

		switch payload.Source {
		case "correction_service", "validation_service":
			return
		}

		if _, err := a.services.ValidationService.ValidateEntries(); err != nil {
			a.logger.Err(err).
				Str("func", "App.subscribeAutoValidation").
				Str("source", payload.Source).
				Msg("auto-validation failed")
		}
	})
}
