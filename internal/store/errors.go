package store

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidCategory is returned when an operation names a validation
	// list category outside the fixed player/chest_type/source set.
	ErrInvalidCategory = errors.New("invalid validation list category")

	// ErrEntryNotFound is returned when an update or delete targets a chest
	// entry id that is not present in the collection.
	ErrEntryNotFound = errors.New("chest entry was not found")

	// ErrRuleNotFound is returned when an update or delete targets a
	// correction rule id that is not present in the collection.
	ErrRuleNotFound = errors.New("correction rule was not found")

	// ErrListEntryNotFound is returned when a delete targets a validation
	// list value that is not present in the list.
	ErrListEntryNotFound = errors.New("validation list entry was not found")

	// ErrDuplicateListEntry is returned when an add or wholesale set would
	// introduce a duplicate value into a validation list. Comparison is
	// exact and case-sensitive.
	ErrDuplicateListEntry = errors.New("duplicate validation list entry")

	// ErrEmptyListValue is returned when an add targets a validation list
	// with a blank value.
	ErrEmptyListValue = errors.New("empty validation list value")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the workspace repository when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan workspace rows")
)

// SchemaError reports that a collection write was rejected before mutation
// because the supplied data is missing required fields or violates the
// collection's shape. The stored collection is left unchanged.
type SchemaError struct {
	// Collection names the rejected collection ("entries",
	// "correction_rules", "validation_lists").
	Collection string

	// Missing lists the required fields that were absent or blank.
	Missing []string

	// Reason carries an optional shape violation outside the missing-field
	// case, e.g. a duplicate id.
	Reason string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema error in %s", e.Collection)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": missing required fields %s", strings.Join(e.Missing, ", "))
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	return b.String()
}
