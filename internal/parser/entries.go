package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/chest-tracker/internal/utils"
	"github.com/MKhiriev/chest-tracker/models"
)

// ParseEntriesFile parses a chest report text file. Records are three lines
// each: the chest type, a "From: <player>" line, and a "Source: <source>"
// line, separated by blank lines. Malformed records are skipped with a
// warning. The entry date comes from a YYYY-MM-DD prefix in the file name
// when one is present.
func (l *Loader) ParseEntriesFile(path string) ([]models.Entry, error) {
	log := l.logger.With().Str("func", "Loader.ParseEntriesFile").Str("path", path).Logger()

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".txt" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entries file: %w", err)
	}

	date := dateFromFilename(filepath.Base(path))
	lines := strings.Split(string(raw), "\n")
	now := time.Now()

	var entries []models.Entry
	for i := 0; i < len(lines); {
		chestType := strings.TrimSpace(lines[i])
		if chestType == "" {
			i++
			continue
		}

		// A record starts with a bare chest type line. Stray prefixed lines
		// are leftovers from a malformed record.
		lower := strings.ToLower(chestType)
		if strings.HasPrefix(lower, "from:") || strings.HasPrefix(lower, "source:") {
			log.Warn().Int("line", i+1).Msg("stray line outside a record, skipping")
			i++
			continue
		}

		if i+2 >= len(lines) {
			log.Warn().Int("line", i+1).Msg("truncated record at end of file")
			break
		}

		playerLine := strings.TrimSpace(lines[i+1])
		sourceLine := strings.TrimSpace(lines[i+2])

		player, ok := stripPrefixFold(playerLine, "from:")
		if !ok {
			log.Warn().Int("line", i+1).Msg("record without a From line, skipping")
			i++
			continue
		}
		if player == "" {
			log.Warn().Int("line", i+1).Msg("record with an empty player, skipping")
			i += 3
			continue
		}

		// A fully blank third line means the record was cut short. An
		// explicit "Source:" with nothing after it still counts as a
		// deliberately empty source.
		if sourceLine == "" {
			log.Warn().Int("line", i+1).Msg("record without a source line, skipping")
			i += 3
			continue
		}

		// The Source prefix is tolerated missing; the bare value is used.
		source, ok := stripPrefixFold(sourceLine, "source:")
		if !ok {
			source = sourceLine
		}

		entries = append(entries, models.Entry{
			ID:               utils.EntryContentID(chestType, player, source, date),
			ChestType:        chestType,
			Player:           player,
			Source:           source,
			Date:             date,
			Status:           models.StatusPending,
			ValidationErrors: []string{},
			OriginalValues:   map[string]string{},
			ModifiedAt:       now,
		})
		i += 3
	}

	log.Info().Int("entries", len(entries)).Msg("entries file parsed")
	return entries, nil
}

// SaveEntriesFile writes entries back to the chest report text format,
// one blank line between records.
func (l *Loader) SaveEntriesFile(path string, entries []models.Entry) error {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entry.ChestType)
		b.WriteString("\nFrom: ")
		b.WriteString(entry.Player)
		b.WriteString("\nSource: ")
		b.WriteString(entry.Source)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write entries file: %w", err)
	}

	l.logger.Info().
		Str("func", "Loader.SaveEntriesFile").
		Str("path", path).
		Int("entries", len(entries)).
		Msg("entries file saved")
	return nil
}

// stripPrefixFold removes a case-insensitive prefix and trims the rest.
func stripPrefixFold(line, prefix string) (string, bool) {
	if len(line) < len(prefix) || !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}
