package models

// EntryStatistics summarizes the chest entry collection.
type EntryStatistics struct {
	Total     int
	Pending   int
	Valid     int
	Invalid   int
	Corrected int
}

// RuleStatistics summarizes the correction rule collection.
type RuleStatistics struct {
	Total    int
	Enabled  int
	Disabled int
	ByField  map[RuleField]int
}

// ListStatistics summarizes one validation list.
type ListStatistics struct {
	Category ListCategory
	Total    int
	Enabled  int
	Disabled int
}

// CorrectionStats reports the outcome of a correction pass. Applied is
// the number of field-level changes, Total the number of entries the pass
// targeted. A no-op pass reports {0, 0}.
type CorrectionStats struct {
	Applied int
	Total   int
}

// ResetStats reports the outcome of a correction reset. Reset counts
// entries that had original values restored.
type ResetStats struct {
	Reset int
	Total int
}

// ValidationStats reports the outcome of a validation pass. Valid counts
// entries that are not Invalid.
type ValidationStats struct {
	Valid   int
	Invalid int
	Total   int
}
