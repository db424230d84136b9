package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/models"
)

type workspaceRepository struct {
	*DB
	logger *logger.Logger
}

func NewWorkspaceRepository(db *DB, logger *logger.Logger) WorkspaceRepository {
	return &workspaceRepository{
		DB:     db,
		logger: logger,
	}
}

func (w *workspaceRepository) SaveEntries(ctx context.Context, entries []models.Entry) error {
	log := logger.FromContext(ctx)

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "workspaceRepository.SaveEntries").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllEntries); err != nil {
		log.Err(err).Str("func", "workspaceRepository.SaveEntries").Msg("failed to clear entries table")
		return fmt.Errorf("failed to clear entries table: %w", err)
	}

	for position, entry := range entries {
		validationErrors, marshalErr := json.Marshal(entry.ValidationErrors)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode validation errors (entry_id=%d): %w", entry.ID, marshalErr)
		}
		originalValues, marshalErr := json.Marshal(entry.OriginalValues)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode original values (entry_id=%d): %w", entry.ID, marshalErr)
		}

		query, args, buildErr := buildInsertEntry(entry, position, string(validationErrors), string(originalValues))
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "workspaceRepository.SaveEntries").
				Int64("entry_id", entry.ID).
				Msg("failed to insert entry row")
			return fmt.Errorf("failed to save entry (id=%d): %w", entry.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *workspaceRepository) LoadEntries(ctx context.Context) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := w.DB.QueryContext(ctx, getAllEntries)
	if err != nil {
		log.Err(err).Str("func", "workspaceRepository.LoadEntries").Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.Entry

	for rows.Next() {
		var entry models.Entry
		var validationErrors, originalValues string

		scanErr := rows.Scan(
			&entry.ID,
			&entry.ChestType,
			&entry.Player,
			&entry.Source,
			&entry.Date,
			&entry.Status,
			&validationErrors,
			&originalValues,
			&entry.ModifiedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "workspaceRepository.LoadEntries").Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		if err = json.Unmarshal([]byte(validationErrors), &entry.ValidationErrors); err != nil {
			return nil, fmt.Errorf("failed to decode validation errors (entry_id=%d): %w", entry.ID, err)
		}
		if err = json.Unmarshal([]byte(originalValues), &entry.OriginalValues); err != nil {
			return nil, fmt.Errorf("failed to decode original values (entry_id=%d): %w", entry.ID, err)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "workspaceRepository.LoadEntries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (w *workspaceRepository) SaveCorrectionRules(ctx context.Context, rules []models.CorrectionRule) error {
	log := logger.FromContext(ctx)

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "workspaceRepository.SaveCorrectionRules").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCorrectionRules); err != nil {
		log.Err(err).Str("func", "workspaceRepository.SaveCorrectionRules").Msg("failed to clear correction rules table")
		return fmt.Errorf("failed to clear correction rules table: %w", err)
	}

	for position, rule := range rules {
		query, args, buildErr := buildInsertCorrectionRule(rule, position)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "workspaceRepository.SaveCorrectionRules").
				Int64("rule_id", rule.ID).
				Msg("failed to insert correction rule row")
			return fmt.Errorf("failed to save correction rule (id=%d): %w", rule.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *workspaceRepository) LoadCorrectionRules(ctx context.Context) ([]models.CorrectionRule, error) {
	log := logger.FromContext(ctx)

	rows, err := w.DB.QueryContext(ctx, getAllCorrectionRules)
	if err != nil {
		log.Err(err).Str("func", "workspaceRepository.LoadCorrectionRules").Msg("failed to query correction rules")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var rules []models.CorrectionRule

	for rows.Next() {
		var rule models.CorrectionRule

		scanErr := rows.Scan(
			&rule.ID,
			&rule.Field,
			&rule.FromText,
			&rule.ToText,
			&rule.CaseSensitive,
			&rule.MatchType,
			&rule.Enabled,
			&rule.CreatedAt,
			&rule.ModifiedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "workspaceRepository.LoadCorrectionRules").Msg("failed to scan correction rule row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		rules = append(rules, rule)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "workspaceRepository.LoadCorrectionRules").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating correction rule rows: %w", rowsErr)
	}

	return rules, nil
}

func (w *workspaceRepository) SaveValidationLists(ctx context.Context, lists []models.ValidationList) error {
	log := logger.FromContext(ctx)

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "workspaceRepository.SaveValidationLists").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllValidationLists); err != nil {
		log.Err(err).Str("func", "workspaceRepository.SaveValidationLists").Msg("failed to clear validation entries table")
		return fmt.Errorf("failed to clear validation entries table: %w", err)
	}

	for _, list := range lists {
		for position, entry := range list.Entries {
			query, args, buildErr := buildInsertValidationEntry(list.Category, entry, position)
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "workspaceRepository.SaveValidationLists").
					Str("category", string(list.Category)).
					Str("value", entry.Value).
					Msg("failed to insert validation entry row")
				return fmt.Errorf("failed to save validation entry (category=%s): %w", list.Category, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *workspaceRepository) LoadValidationLists(ctx context.Context) ([]models.ValidationList, error) {
	log := logger.FromContext(ctx)

	rows, err := w.DB.QueryContext(ctx, getAllValidationLists)
	if err != nil {
		log.Err(err).Str("func", "workspaceRepository.LoadValidationLists").Msg("failed to query validation entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	byCategory := make(map[models.ListCategory][]models.ListEntry, len(models.ListCategories()))

	for rows.Next() {
		var category models.ListCategory
		var entry models.ListEntry

		scanErr := rows.Scan(
			&category,
			&entry.Value,
			&entry.Enabled,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "workspaceRepository.LoadValidationLists").Msg("failed to scan validation entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		byCategory[category] = append(byCategory[category], entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "workspaceRepository.LoadValidationLists").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating validation entry rows: %w", rowsErr)
	}

	lists := make([]models.ValidationList, 0, len(models.ListCategories()))
	for _, category := range models.ListCategories() {
		lists = append(lists, models.ValidationList{
			Category: category,
			Entries:  byCategory[category],
		})
	}

	return lists, nil
}
