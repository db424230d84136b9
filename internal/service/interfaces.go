package service

import (
	"context"

	"github.com/MKhiriev/chest-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type CorrectionService interface {
	ApplyCorrections(entryIDs ...int64) (models.CorrectionStats, error)
	ApplySpecificCorrection(entryID int64, field, fromText, toText string) (bool, error)
	ResetCorrections(entryIDs ...int64) (models.ResetStats, error)

	AddCorrectionRule(field, fromText, toText string, caseSensitive bool, matchType string, enabled bool) error
}

type ValidationService interface {
	ValidateEntries(entryIDs ...int64) (models.ValidationStats, error)

	GetInvalidEntries() []int64
	GetValidationErrors(entryID int64) []string
}

type WorkspaceService interface {
	LoadWorkspace(ctx context.Context) error
	SaveWorkspace(ctx context.Context) error

	ImportEntries(path string) (int, error)
	ImportCorrectionRules(path string) (int, error)
	ImportValidationList(path string) (int, error)
	ExportEntries(path string) error
}

// FileLoader reads and writes workspace collections in their on-disk
// interchange formats. Implementations live in the parser package.
type FileLoader interface {
	ParseEntriesFile(path string) ([]models.Entry, error)
	ParseCorrectionRulesFile(path string) ([]models.CorrectionRule, error)
	ParseValidationListFile(path string) (models.ValidationList, error)
	SaveEntriesFile(path string, entries []models.Entry) error
}
