package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/chest-tracker/models"
)

// ParseValidationListFile parses a validation list CSV. The file carries a
// three-row preamble (a Type row naming the category, a Name row, an Entry
// header row) followed by one value per row. Duplicate values are dropped,
// first occurrence wins.
func (l *Loader) ParseValidationListFile(path string) (models.ValidationList, error) {
	log := l.logger.With().Str("func", "Loader.ParseValidationListFile").Str("path", path).Logger()

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		return models.ValidationList{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return models.ValidationList{}, fmt.Errorf("open list file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return models.ValidationList{}, fmt.Errorf("parse list csv: %w", err)
	}
	if len(records) < 3 {
		return models.ValidationList{}, fmt.Errorf("%w: incomplete preamble", ErrInvalidListFile)
	}

	if len(records[0]) != 2 || records[0][0] != "Type" {
		return models.ValidationList{}, fmt.Errorf("%w: missing Type row", ErrInvalidListFile)
	}
	category := models.ListCategory(strings.TrimSpace(records[0][1]))
	if !category.Valid() {
		return models.ValidationList{}, fmt.Errorf("%w: unknown list type %q", ErrInvalidListFile, records[0][1])
	}

	if len(records[1]) != 2 || records[1][0] != "Name" {
		return models.ValidationList{}, fmt.Errorf("%w: missing Name row", ErrInvalidListFile)
	}
	if len(records[2]) != 1 || records[2][0] != "Entry" {
		return models.ValidationList{}, fmt.Errorf("%w: missing Entry header", ErrInvalidListFile)
	}

	list := models.NewValidationList(category)
	now := time.Now()
	for _, row := range records[3:] {
		if len(row) == 0 {
			continue
		}
		value := strings.TrimSpace(row[0])
		if value == "" || list.Contains(value) {
			continue
		}
		list.Entries = append(list.Entries, models.ListEntry{Value: value, Enabled: true, CreatedAt: now})
	}

	log.Info().Str("category", string(category)).Int("values", list.Len()).Msg("list file parsed")
	return list, nil
}
