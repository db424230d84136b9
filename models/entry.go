package models

import "time"

// EntryStatus is the validation/correction lifecycle state of an [Entry].
type EntryStatus string

const (
	// StatusPending marks an entry that has not failed validation and has
	// no applied corrections. Freshly imported entries start here.
	StatusPending EntryStatus = "Pending"

	// StatusValid is a legacy terminal state. The validation pass never
	// produces it; the constant exists so externally supplied files that
	// carry the value still round-trip through the store unchanged.
	StatusValid EntryStatus = "Valid"

	// StatusInvalid marks an entry with at least one validation error.
	StatusInvalid EntryStatus = "Invalid"

	// StatusCorrected marks an entry whose fields were rewritten by the
	// correction engine and which currently has no validation errors.
	StatusCorrected EntryStatus = "Corrected"
)

// Field name constants for the three correctable/validatable entry fields.
// They double as map keys in [Entry.OriginalValues] and as the canonical
// names used by correction rules and validation lists.
const (
	FieldChestType = "chest_type"
	FieldPlayer    = "player"
	FieldSource    = "source"
)

// EntryFields lists the correctable fields in their canonical order:
// chest_type, then player, then source. Validation errors are reported in
// this order.
var EntryFields = []string{FieldChestType, FieldPlayer, FieldSource}

// Entry is one chest-drop record imported from a game log.
//
// ID is stable for the record's lifetime and derived from the content hash
// when not supplied externally. OriginalValues holds pre-correction field
// values keyed by field name; a key is written at most once (first
// correction wins) and the map is only ever emptied wholesale by a
// corrections reset.
type Entry struct {
	ID        int64
	ChestType string
	Player    string
	Source    string
	Date      string

	Status           EntryStatus
	ValidationErrors []string
	OriginalValues   map[string]string
	ModifiedAt       time.Time
}

// Clone returns a deep copy of the entry. The store hands out clones on
// every read so callers can never mutate stored state in place.
func (e Entry) Clone() Entry {
	clone := e

	if e.ValidationErrors != nil {
		clone.ValidationErrors = make([]string, len(e.ValidationErrors))
		copy(clone.ValidationErrors, e.ValidationErrors)
	}

	if e.OriginalValues != nil {
		clone.OriginalValues = make(map[string]string, len(e.OriginalValues))
		for k, v := range e.OriginalValues {
			clone.OriginalValues[k] = v
		}
	}

	return clone
}

// CloneEntries deep-copies a whole entry slice.
func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}

	clones := make([]Entry, len(entries))
	for i, e := range entries {
		clones[i] = e.Clone()
	}

	return clones
}

// FieldValue returns the value of one of the three correctable fields.
// The second return value is false for unknown field names.
func (e *Entry) FieldValue(field string) (string, bool) {
	switch field {
	case FieldChestType:
		return e.ChestType, true
	case FieldPlayer:
		return e.Player, true
	case FieldSource:
		return e.Source, true
	default:
		return "", false
	}
}

// SetFieldValue sets one of the three correctable fields and reports
// whether the field name was recognized.
func (e *Entry) SetFieldValue(field, value string) bool {
	switch field {
	case FieldChestType:
		e.ChestType = value
	case FieldPlayer:
		e.Player = value
	case FieldSource:
		e.Source = value
	default:
		return false
	}

	return true
}

// HasCorrections reports whether any field currently carries a recorded
// pre-correction value.
func (e *Entry) HasCorrections() bool {
	return len(e.OriginalValues) > 0
}

// EntryPatch describes a partial update to an entry. Nil fields are left
// untouched; non-nil fields replace the stored value.
type EntryPatch struct {
	ChestType        *string
	Player           *string
	Source           *string
	Date             *string
	Status           *EntryStatus
	ValidationErrors *[]string
	OriginalValues   *map[string]string
}

// Apply merges the patch into the entry. ModifiedAt bookkeeping is the
// store's responsibility, not the patch's.
func (p EntryPatch) Apply(e *Entry) {
	if p.ChestType != nil {
		e.ChestType = *p.ChestType
	}
	if p.Player != nil {
		e.Player = *p.Player
	}
	if p.Source != nil {
		e.Source = *p.Source
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ValidationErrors != nil {
		errs := make([]string, len(*p.ValidationErrors))
		copy(errs, *p.ValidationErrors)
		e.ValidationErrors = errs
	}
	if p.OriginalValues != nil {
		originals := make(map[string]string, len(*p.OriginalValues))
		for k, v := range *p.OriginalValues {
			originals[k] = v
		}
		e.OriginalValues = originals
	}
}
