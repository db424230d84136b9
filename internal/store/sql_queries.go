// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/chest-tracker/models"
)

const (
	deleteAllEntries         = `DELETE FROM entries;`
	deleteAllCorrectionRules = `DELETE FROM correction_rules;`
	deleteAllValidationLists = `DELETE FROM validation_entries;`

	getAllEntries = `
		SELECT
			id,
			chest_type,
			player,
			source,
			entry_date,
			status,
			validation_errors,
			original_values,
			modified_at
		FROM entries
		ORDER BY position;`

	getAllCorrectionRules = `
		SELECT
			id,
			field,
			from_text,
			to_text,
			case_sensitive,
			match_type,
			enabled,
			created_at,
			modified_at
		FROM correction_rules
		ORDER BY position;`

	getAllValidationLists = `
		SELECT
			category,
			value,
			enabled,
			created_at
		FROM validation_entries
		ORDER BY category, position;`
)

// queryBuilder builds the parameterised INSERT statements. SQLite accepts
// the default question-mark placeholders.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildInsertEntry builds the INSERT for one chest entry row. The
// validation_errors and original_values columns carry JSON-encoded text.
func buildInsertEntry(entry models.Entry, position int, validationErrors, originalValues string) (string, []any, error) {
	return queryBuilder.
		Insert("entries").
		Columns(
			"id",
			"position",
			"chest_type",
			"player",
			"source",
			"entry_date",
			"status",
			"validation_errors",
			"original_values",
			"modified_at",
		).
		Values(
			entry.ID,
			position,
			entry.ChestType,
			entry.Player,
			entry.Source,
			entry.Date,
			string(entry.Status),
			validationErrors,
			originalValues,
			entry.ModifiedAt,
		).
		ToSql()
}

// buildInsertCorrectionRule builds the INSERT for one correction rule row.
func buildInsertCorrectionRule(rule models.CorrectionRule, position int) (string, []any, error) {
	return queryBuilder.
		Insert("correction_rules").
		Columns(
			"id",
			"position",
			"field",
			"from_text",
			"to_text",
			"case_sensitive",
			"match_type",
			"enabled",
			"created_at",
			"modified_at",
		).
		Values(
			rule.ID,
			position,
			string(rule.Field),
			rule.FromText,
			rule.ToText,
			rule.CaseSensitive,
			string(rule.MatchType),
			rule.Enabled,
			rule.CreatedAt,
			rule.ModifiedAt,
		).
		ToSql()
}

// buildInsertValidationEntry builds the INSERT for one validation list row.
func buildInsertValidationEntry(category models.ListCategory, entry models.ListEntry, position int) (string, []any, error) {
	return queryBuilder.
		Insert("validation_entries").
		Columns(
			"category",
			"position",
			"value",
			"enabled",
			"created_at",
		).
		Values(
			string(category),
			position,
			entry.Value,
			entry.Enabled,
			entry.CreatedAt,
		).
		ToSql()
}
