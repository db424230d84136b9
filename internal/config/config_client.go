package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown in the TUI header.
	Version string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string for the workspace database.
	// Empty means the client runs without workspace persistence.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// DataDir is the directory scanned for chest log and CSV imports.
	DataDir string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// AutosaveInterval defines how often the workspace autosave job runs.
	AutosaveInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains client storage settings.
	Storage ClientStorage
	// Validation contains validation engine settings.
	Validation Validation
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			DataDir: cfg.Storage.Files.DataDir,
		},
		Validation: cfg.Validation,
		Workers:    ClientWorkers{AutosaveInterval: cfg.Workers.AutosaveInterval},
	}

	return clientCfg, clientCfg.validate()
}
