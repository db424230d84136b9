package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/models"
)

const correctionSource = "correction_service"

type correctionService struct {
	store  store.DataStore
	logger *logger.Logger
}

func NewCorrectionService(dataStore store.DataStore, log *logger.Logger) CorrectionService {
	return &correctionService{store: dataStore, logger: log}
}

// ApplyCorrections runs every enabled rule, in stored order, over the given
// entries (all entries when no IDs are passed). The whole pass is one store
// transaction: either every rewrite lands or none do. The first rule to
// touch a field records the field's pre-correction value; later rules never
// overwrite that record.
func (s *correctionService) ApplyCorrections(entryIDs ...int64) (models.CorrectionStats, error) {
	log := s.logger.With().Str("func", "correctionService.ApplyCorrections").Logger()

	rules := s.store.GetEnabledCorrectionRules()
	entries := s.store.GetEntries()
	targets := targetIndexes(entries, entryIDs)
	if len(rules) == 0 || len(targets) == 0 {
		return models.CorrectionStats{Total: len(targets)}, nil
	}

	if !s.store.BeginTransaction() {
		return models.CorrectionStats{}, ErrTransactionBusy
	}

	applied := 0
	affected := make(map[int64]struct{})
	now := time.Now()

	for _, rule := range rules {
		fromText := strings.TrimSpace(rule.FromText)
		toText := strings.TrimSpace(rule.ToText)
		if fromText == "" || toText == "" {
			log.Debug().Int64("rule_id", rule.ID).Msg("skipping rule with blank text")
			continue
		}

		match, err := compileRulePredicate(rule, fromText)
		if err != nil {
			s.store.RollbackTransaction()
			s.store.Emit(models.EventErrorOccurred, models.ErrorPayload{Kind: "correction", Err: err.Error()})
			return models.CorrectionStats{}, fmt.Errorf("compile rule %d: %w", rule.ID, err)
		}

		for _, idx := range targets {
			entry := &entries[idx]
			for _, field := range rule.TargetFields() {
				value, _ := entry.FieldValue(field)
				if !match(value) {
					continue
				}

				if _, recorded := entry.OriginalValues[field]; !recorded {
					entry.OriginalValues[field] = value
				}
				entry.SetFieldValue(field, toText)
				entry.Status = models.StatusCorrected
				entry.ModifiedAt = now

				applied++
				affected[entry.ID] = struct{}{}
			}
		}
	}

	if applied == 0 {
		s.store.RollbackTransaction()
		return models.CorrectionStats{Total: len(targets)}, nil
	}

	if err := s.store.SetEntries(entries, correctionSource); err != nil {
		s.store.RollbackTransaction()
		s.store.Emit(models.EventErrorOccurred, models.ErrorPayload{Kind: "correction", Err: err.Error()})
		return models.CorrectionStats{}, fmt.Errorf("store corrected entries: %w", err)
	}
	s.store.CommitTransaction()

	s.store.Emit(models.EventCorrectionApplied, models.CorrectionAppliedPayload{
		Count:           applied,
		EntriesAffected: len(affected),
	})
	log.Info().Int("applied", applied).Int("entries", len(affected)).Msg("corrections applied")

	return models.CorrectionStats{Applied: applied, Total: len(targets)}, nil
}

// ApplySpecificCorrection rewrites one field of one entry, but only while
// the field still holds fromText. A stale intent, captured before the entry
// changed underneath it, is dropped with a false return instead of clobbering
// the newer value.
func (s *correctionService) ApplySpecificCorrection(entryID int64, field, fromText, toText string) (bool, error) {
	log := s.logger.With().Str("func", "correctionService.ApplySpecificCorrection").Logger()

	if !isCorrectableField(field) {
		return false, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	entry, found := s.store.GetEntry(entryID)
	if !found {
		log.Warn().Int64("entry_id", entryID).Msg("entry not found")
		return false, nil
	}

	current, _ := entry.FieldValue(field)
	if current != fromText {
		log.Debug().
			Int64("entry_id", entryID).
			Str("field", field).
			Msg("field changed since correction was prepared, skipping")
		return false, nil
	}

	if !s.store.BeginTransaction() {
		return false, ErrTransactionBusy
	}

	if _, recorded := entry.OriginalValues[field]; !recorded {
		entry.OriginalValues[field] = current
	}
	entry.SetFieldValue(field, toText)
	entry.Status = models.StatusCorrected
	entry.ModifiedAt = time.Now()

	entries := s.store.GetEntries()
	for i := range entries {
		if entries[i].ID == entryID {
			entries[i] = entry
			break
		}
	}

	if err := s.store.SetEntries(entries, correctionSource); err != nil {
		s.store.RollbackTransaction()
		s.store.Emit(models.EventErrorOccurred, models.ErrorPayload{Kind: "correction", Err: err.Error()})
		return false, fmt.Errorf("store corrected entry: %w", err)
	}
	s.store.CommitTransaction()

	s.store.Emit(models.EventCorrectionApplied, models.CorrectionAppliedPayload{Count: 1, EntriesAffected: 1})
	return true, nil
}

// ResetCorrections restores the recorded pre-correction values on the given
// entries (all entries when no IDs are passed) and clears their correction
// records. Entries without recorded originals are left untouched.
func (s *correctionService) ResetCorrections(entryIDs ...int64) (models.ResetStats, error) {
	log := s.logger.With().Str("func", "correctionService.ResetCorrections").Logger()

	entries := s.store.GetEntries()
	targets := targetIndexes(entries, entryIDs)
	if len(targets) == 0 {
		return models.ResetStats{}, nil
	}

	if !s.store.BeginTransaction() {
		return models.ResetStats{}, ErrTransactionBusy
	}

	reset := 0
	now := time.Now()
	for _, idx := range targets {
		entry := &entries[idx]
		if len(entry.OriginalValues) == 0 {
			continue
		}

		for field, original := range entry.OriginalValues {
			entry.SetFieldValue(field, original)
		}
		entry.OriginalValues = make(map[string]string)
		if len(entry.ValidationErrors) > 0 {
			entry.Status = models.StatusInvalid
		} else {
			entry.Status = models.StatusPending
		}
		entry.ModifiedAt = now
		reset++
	}

	if reset == 0 {
		s.store.RollbackTransaction()
		return models.ResetStats{Total: len(targets)}, nil
	}

	if err := s.store.SetEntries(entries, correctionSource); err != nil {
		s.store.RollbackTransaction()
		s.store.Emit(models.EventErrorOccurred, models.ErrorPayload{Kind: "correction", Err: err.Error()})
		return models.ResetStats{}, fmt.Errorf("store reset entries: %w", err)
	}
	s.store.CommitTransaction()

	s.store.Emit(models.EventCorrectionsReset, models.CorrectionsResetPayload{Count: reset})
	log.Info().Int("reset", reset).Msg("corrections reset")

	return models.ResetStats{Reset: reset, Total: len(targets)}, nil
}

// AddCorrectionRule validates and stores a new rule. The field must be one
// of the three entry fields or the catch-all "general"/"all" scope.
func (s *correctionService) AddCorrectionRule(field, fromText, toText string, caseSensitive bool, matchType string, enabled bool) error {
	if !isRuleField(field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	kind := models.MatchType(strings.ToLower(strings.TrimSpace(matchType)))
	if kind == "" {
		kind = models.MatchExact
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMatchType, matchType)
	}

	fromText = strings.TrimSpace(fromText)
	toText = strings.TrimSpace(toText)
	if fromText == "" || toText == "" {
		return ErrEmptyRuleText
	}

	now := time.Now()
	rule := models.CorrectionRule{
		Field:         models.NormalizeRuleField(field),
		FromText:      fromText,
		ToText:        toText,
		CaseSensitive: caseSensitive,
		MatchType:     kind,
		Enabled:       enabled,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	if _, err := s.store.AddCorrectionRule(rule); err != nil {
		return fmt.Errorf("add correction rule: %w", err)
	}
	return nil
}

// ─── helpers ────────────────────────────────────────────────────────────────

// targetIndexes returns the positions of the requested entries, preserving
// collection order. An empty ID list targets every entry; unknown IDs are
// ignored.
func targetIndexes(entries []models.Entry, entryIDs []int64) []int {
	if len(entryIDs) == 0 {
		indexes := make([]int, len(entries))
		for i := range entries {
			indexes[i] = i
		}
		return indexes
	}

	wanted := make(map[int64]struct{}, len(entryIDs))
	for _, id := range entryIDs {
		wanted[id] = struct{}{}
	}

	var indexes []int
	for i := range entries {
		if _, ok := wanted[entries[i].ID]; ok {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func isCorrectableField(field string) bool {
	for _, known := range models.EntryFields {
		if field == known {
			return true
		}
	}
	return false
}

func isRuleField(field string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case models.FieldChestType, models.FieldPlayer, models.FieldSource, "general", "all":
		return true
	default:
		return false
	}
}

// compileRulePredicate builds the match function for one rule. Regex rules
// compile once per pass; the other kinds compare trimmed text with optional
// case folding.
func compileRulePredicate(rule models.CorrectionRule, fromText string) (func(string) bool, error) {
	if rule.MatchType == models.MatchRegex {
		expr := fromText
		if !rule.CaseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", fromText, err)
		}
		return re.MatchString, nil
	}

	return func(value string) bool {
		candidate, pattern := value, fromText
		if !rule.CaseSensitive {
			candidate = strings.ToLower(candidate)
			pattern = strings.ToLower(pattern)
		}

		switch rule.MatchType {
		case models.MatchContains:
			return strings.Contains(candidate, pattern)
		case models.MatchStartsWith:
			return strings.HasPrefix(candidate, pattern)
		case models.MatchEndsWith:
			return strings.HasSuffix(candidate, pattern)
		default:
			return candidate == pattern
		}
	}, nil
}
