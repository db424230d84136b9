// Package parser reads and writes the interchange files of the tracker:
// chest report text files, correction rule CSVs, and validation list CSVs.
package parser

import (
	"regexp"

	"github.com/MKhiriev/chest-tracker/internal/logger"
)

// Loader implements file parsing and saving for all workspace collections.
type Loader struct {
	logger *logger.Logger
}

func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log}
}

var filenameDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// dateFromFilename extracts a YYYY-MM-DD date embedded in the file name.
// Returns "" when the name carries no date.
func dateFromFilename(path string) string {
	return filenameDatePattern.FindString(path)
}
