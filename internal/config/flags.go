package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN for the local workspace database
//	-f data directory scanned for chest log and CSV files
//	-c/-config json file path with configs
//	-fuzzy-threshold minimum fuzzy match score (0-100)
//	-fuzzy-disabled disable fuzzy matching
//	-case-insensitive ignore letter case in exact list checks
//	-autosave-interval workspace autosave period (e.g., "2m", "30s")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var dataDir string
	var jsonConfigPath string
	var fuzzyThreshold int
	var fuzzyDisabled bool
	var caseInsensitive bool
	var autosaveInterval time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&dataDir, "f", "", "Data directory for chest log imports")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&fuzzyThreshold, "fuzzy-threshold", 0, "Minimum fuzzy match score (0-100)")
	flag.BoolVar(&fuzzyDisabled, "fuzzy-disabled", false, "Disable fuzzy matching")
	flag.BoolVar(&caseInsensitive, "case-insensitive", false, "Ignore letter case in exact list checks")
	flag.DurationVar(&autosaveInterval, "autosave-interval", 0, "Workspace autosave period (e.g., 2m, 30s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				DataDir: dataDir,
			},
		},
		Validation: Validation{
			FuzzyThreshold:  fuzzyThreshold,
			FuzzyDisabled:   fuzzyDisabled,
			CaseInsensitive: caseInsensitive,
		},
		Workers: Workers{
			AutosaveInterval: autosaveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
