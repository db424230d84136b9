package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chest-tracker/internal/config"
	"github.com/MKhiriev/chest-tracker/internal/logger"
)

// Storages groups the persistence repositories into a single value that can
// be passed around the service layer. Currently it holds only
// [WorkspaceRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// Workspace is the SQLite-backed repository snapshotting the in-memory
	// collections. Nil when persistence is disabled (empty DSN).
	Workspace WorkspaceRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [WorkspaceRepository].
//
// An empty DSN disables workspace persistence: the returned Storages has a
// nil Workspace and no database file is created.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("workspace persistence disabled: no database DSN configured")
		return &Storages{}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Workspace: NewWorkspaceRepository(db, logger),
	}, nil
}
