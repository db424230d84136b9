package service

import (
	"github.com/MKhiriev/chest-tracker/internal/config"
	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/store"
)

type Services struct {
	CorrectionService CorrectionService
	ValidationService ValidationService
	WorkspaceService  WorkspaceService
}

func NewServices(dataStore store.DataStore, storages *store.Storages, loader FileLoader, cfg config.ClientConfig, logger *logger.Logger) *Services {
	return &Services{
		CorrectionService: NewCorrectionService(dataStore, logger),
		ValidationService: NewValidationService(dataStore, cfg.Validation, logger),
		WorkspaceService:  NewWorkspaceService(dataStore, storages.Workspace, loader, logger),
	}
}
