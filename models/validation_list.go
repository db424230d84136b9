package models

import "time"

// ListCategory names one of the three fixed validation lists.
type ListCategory string

const (
	CategoryPlayer    ListCategory = FieldPlayer
	CategoryChestType ListCategory = FieldChestType
	CategorySource    ListCategory = FieldSource
)

// ListCategories returns the fixed validation-list categories. All three
// lists exist for the whole process lifetime, though any may be empty.
func ListCategories() []ListCategory {
	return []ListCategory{CategoryPlayer, CategoryChestType, CategorySource}
}

// Valid reports whether c names one of the three fixed categories.
func (c ListCategory) Valid() bool {
	switch c {
	case CategoryPlayer, CategoryChestType, CategorySource:
		return true
	default:
		return false
	}
}

// ListEntry is one allow-list value with its enabled flag.
type ListEntry struct {
	Value     string
	Enabled   bool
	CreatedAt time.Time
}

// ValidationList is a named allow-list used to classify entry field values.
// Values are unique within a list (exact, case-sensitive comparison) and
// iteration order is the insertion order, which fuzzy matching relies on
// for deterministic tie-breaking.
type ValidationList struct {
	Category ListCategory
	Entries  []ListEntry
}

// NewValidationList builds an empty list for the given category.
func NewValidationList(category ListCategory) ValidationList {
	return ValidationList{Category: category}
}

// Clone returns a deep copy of the list.
func (l ValidationList) Clone() ValidationList {
	clone := l

	if l.Entries != nil {
		clone.Entries = make([]ListEntry, len(l.Entries))
		copy(clone.Entries, l.Entries)
	}

	return clone
}

// Contains reports whether value is present in the list, regardless of the
// entry's enabled flag. Comparison is exact and case-sensitive.
func (l ValidationList) Contains(value string) bool {
	for _, e := range l.Entries {
		if e.Value == value {
			return true
		}
	}
	return false
}

// EnabledValues returns the values of all enabled entries in list order.
func (l ValidationList) EnabledValues() []string {
	values := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		if e.Enabled {
			values = append(values, e.Value)
		}
	}
	return values
}

// Len returns the number of entries in the list.
func (l ValidationList) Len() int {
	return len(l.Entries)
}
