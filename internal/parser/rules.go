package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/chest-tracker/internal/utils"
	"github.com/MKhiriev/chest-tracker/models"
)

// ParseCorrectionRulesFile parses a correction rule CSV. The minimal format
// is a From,To header plus data rows; the full format adds field (or the
// legacy category column), case_sensitive, match_type and enabled columns.
// The delimiter (comma, semicolon or tab) is detected from the header line.
// Rows with a blank From or To are skipped with a warning.
func (l *Loader) ParseCorrectionRulesFile(path string) ([]models.CorrectionRule, error) {
	log := l.logger.With().Str("func", "Loader.ParseCorrectionRulesFile").Str("path", path).Logger()

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" && ext != ".tsv" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		log.Warn().Msg("rules file is empty")
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = detectDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse rules csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	fromCol, hasFrom := columns["from"]
	toCol, hasTo := columns["to"]
	if !hasFrom || !hasTo {
		return nil, fmt.Errorf("%w: need From and To", ErrMissingHeaders)
	}

	fieldCol, hasField := columns["field"]
	if !hasField {
		// Older exports call the field column "category".
		fieldCol, hasField = columns["category"]
	}
	caseCol, hasCase := columns["case_sensitive"]
	matchCol, hasMatch := columns["match_type"]
	enabledCol, hasEnabled := columns["enabled"]

	now := time.Now()
	var rules []models.CorrectionRule
	for rowNum, row := range records[1:] {
		if emptyRow(row) {
			continue
		}

		fromText := strings.TrimSpace(cell(row, fromCol))
		toText := strings.TrimSpace(cell(row, toCol))
		if fromText == "" || toText == "" {
			log.Warn().Int("row", rowNum+2).Msg("row without From or To value, skipping")
			continue
		}

		field := models.RuleFieldGeneral
		if hasField {
			field = models.NormalizeRuleField(cell(row, fieldCol))
		}

		caseSensitive := true
		if hasCase {
			caseSensitive = parseBool(cell(row, caseCol), true)
		}

		matchType := models.MatchExact
		if hasMatch {
			if raw := strings.ToLower(strings.TrimSpace(cell(row, matchCol))); raw != "" {
				matchType = models.MatchType(raw)
				if !matchType.Valid() {
					log.Warn().Int("row", rowNum+2).Str("match_type", raw).Msg("unknown match type, skipping row")
					continue
				}
			}
		}

		enabled := true
		if hasEnabled {
			enabled = parseBool(cell(row, enabledCol), true)
		}

		rules = append(rules, models.CorrectionRule{
			ID:            utils.RuleContentID(string(field), fromText, toText),
			Field:         field,
			FromText:      fromText,
			ToText:        toText,
			CaseSensitive: caseSensitive,
			MatchType:     matchType,
			Enabled:       enabled,
			CreatedAt:     now,
			ModifiedAt:    now,
		})
	}

	log.Info().Int("rules", len(rules)).Msg("rules file parsed")
	return rules, nil
}

// detectDelimiter picks the delimiter that yields the most columns on the
// header line. Falls back to comma.
func detectDelimiter(content string) rune {
	header, _, _ := strings.Cut(content, "\n")

	best, columns := ',', 1
	for _, candidate := range []rune{';', ',', '\t'} {
		if n := strings.Count(header, string(candidate)) + 1; n > columns {
			best, columns = candidate, n
		}
	}
	return best
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

func emptyRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func parseBool(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "on":
		return true
	case "false", "0", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
