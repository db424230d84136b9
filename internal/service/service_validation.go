package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/chest-tracker/internal/config"
	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/models"
)

const validationSource = "validation_service"

type validationService struct {
	store   store.DataStore
	matcher *FuzzyMatcher
	config  config.Validation
	logger  *logger.Logger
}

func NewValidationService(dataStore store.DataStore, cfg config.Validation, log *logger.Logger) ValidationService {
	return &validationService{
		store:   dataStore,
		matcher: NewFuzzyMatcher(cfg.FuzzyThreshold),
		config:  cfg,
		logger:  log,
	}
}

// ValidateEntries checks the given entries (all entries when no IDs are
// passed) against the three validation lists. Checks run in a fixed order
// per entry: chest type, then player, then source. A blank source is not an
// error, and an empty list places no constraint on its field. Validation is
// idempotent: errors are rebuilt from scratch on every pass.
func (s *validationService) ValidateEntries(entryIDs ...int64) (models.ValidationStats, error) {
	log := s.logger.With().Str("func", "validationService.ValidateEntries").Logger()

	entries := s.store.GetEntries()
	targets := targetIndexes(entries, entryIDs)
	if len(targets) == 0 {
		return models.ValidationStats{}, nil
	}

	chestTypes := s.allowedValues(models.CategoryChestType)
	players := s.allowedValues(models.CategoryPlayer)
	sources := s.allowedValues(models.CategorySource)

	if !s.store.BeginTransaction() {
		return models.ValidationStats{}, ErrTransactionBusy
	}

	invalid := 0
	for _, idx := range targets {
		entry := &entries[idx]

		var errs []string
		if !s.valueAllowed(entry.ChestType, chestTypes) {
			errs = append(errs, fmt.Sprintf("Invalid chest type: '%s'", entry.ChestType))
		}
		if !s.valueAllowed(entry.Player, players) {
			errs = append(errs, fmt.Sprintf("Invalid player name: '%s'", entry.Player))
		}
		if entry.Source != "" && !s.valueAllowed(entry.Source, sources) {
			errs = append(errs, fmt.Sprintf("Invalid source: '%s'", entry.Source))
		}

		entry.ValidationErrors = errs
		switch {
		case len(errs) > 0:
			entry.Status = models.StatusInvalid
			invalid++
		case len(entry.OriginalValues) > 0:
			entry.Status = models.StatusCorrected
		default:
			entry.Status = models.StatusPending
		}
	}

	if err := s.store.SetEntries(entries, validationSource); err != nil {
		s.store.RollbackTransaction()
		s.store.Emit(models.EventErrorOccurred, models.ErrorPayload{Kind: "validation", Err: err.Error()})
		return models.ValidationStats{}, fmt.Errorf("store validated entries: %w", err)
	}
	s.store.CommitTransaction()

	stats := models.ValidationStats{
		Valid:   len(targets) - invalid,
		Invalid: invalid,
		Total:   len(targets),
	}
	s.store.Emit(models.EventValidationCompleted, models.ValidationCompletedPayload{
		Valid:   stats.Valid,
		Invalid: stats.Invalid,
		Total:   stats.Total,
	})
	log.Info().Int("valid", stats.Valid).Int("invalid", stats.Invalid).Msg("validation completed")

	return stats, nil
}

// GetInvalidEntries returns the IDs of all entries currently marked invalid,
// in collection order.
func (s *validationService) GetInvalidEntries() []int64 {
	var ids []int64
	for _, entry := range s.store.GetEntries() {
		if entry.Status == models.StatusInvalid {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

// GetValidationErrors returns the validation errors recorded for one entry.
// Unknown IDs yield an empty result.
func (s *validationService) GetValidationErrors(entryID int64) []string {
	entry, found := s.store.GetEntry(entryID)
	if !found {
		return nil
	}
	return entry.ValidationErrors
}

func (s *validationService) allowedValues(category models.ListCategory) []string {
	list, err := s.store.GetValidationList(category)
	if err != nil {
		s.logger.Warn().
			Str("func", "validationService.allowedValues").
			Str("category", string(category)).
			Err(err).
			Msg("validation list unavailable, treating as unconstrained")
		return nil
	}
	return list.EnabledValues()
}

// valueAllowed checks membership first by exact comparison, then by fuzzy
// matching when enabled. An empty allowed set accepts everything.
func (s *validationService) valueAllowed(value string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	for _, candidate := range allowed {
		if s.equalExact(value, candidate) {
			return true
		}
	}

	if s.config.FuzzyEnabled() {
		_, matched := s.matcher.FindBestMatch(value, allowed)
		return matched
	}
	return false
}

func (s *validationService) equalExact(value, candidate string) bool {
	if s.config.CaseSensitive() {
		return value == candidate
	}
	return strings.EqualFold(value, candidate)
}
