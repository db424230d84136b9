package models

// EventType identifies a store notification. The set is closed: every
// event the store can emit has a variant here, and the event bus keeps one
// handler set per variant.
type EventType int

const (
	EventEntriesUpdated EventType = iota
	EventCorrectionRulesUpdated
	EventValidationListsUpdated
	EventCorrectionApplied
	EventValidationCompleted
	EventCorrectionsReset
	EventErrorOccurred
)

// EventTypes lists every event variant, for iteration in tests and when
// sizing the handler table.
var EventTypes = []EventType{
	EventEntriesUpdated,
	EventCorrectionRulesUpdated,
	EventValidationListsUpdated,
	EventCorrectionApplied,
	EventValidationCompleted,
	EventCorrectionsReset,
	EventErrorOccurred,
}

func (t EventType) String() string {
	switch t {
	case EventEntriesUpdated:
		return "entries-updated"
	case EventCorrectionRulesUpdated:
		return "correction-rules-updated"
	case EventValidationListsUpdated:
		return "validation-lists-updated"
	case EventCorrectionApplied:
		return "correction-applied"
	case EventValidationCompleted:
		return "validation-completed"
	case EventCorrectionsReset:
		return "corrections-reset"
	case EventErrorOccurred:
		return "error-occurred"
	default:
		return "unknown-event"
	}
}

// Event is a typed notification delivered synchronously to subscribers.
// Payload holds the variant's payload struct below; handlers type-assert.
type Event struct {
	Type    EventType
	Payload any
}

// EntriesUpdatedPayload accompanies EventEntriesUpdated. Source names the
// origin of the write (e.g. "correction_service", "validation_service",
// "file_loader") so subscribers can ignore their own writes.
type EntriesUpdatedPayload struct {
	Source string
	Count  int
}

// RulesUpdatedPayload accompanies EventCorrectionRulesUpdated.
type RulesUpdatedPayload struct {
	Source string
	Count  int
}

// ListsUpdatedPayload accompanies EventValidationListsUpdated.
type ListsUpdatedPayload struct {
	Category ListCategory
	Source   string
	Count    int
}

// CorrectionAppliedPayload accompanies EventCorrectionApplied. Count is
// the number of field-level corrections; EntriesAffected counts distinct
// entries.
type CorrectionAppliedPayload struct {
	Count           int
	EntriesAffected int
}

// ValidationCompletedPayload accompanies EventValidationCompleted. Valid
// counts entries that are not Invalid (Pending or Corrected).
type ValidationCompletedPayload struct {
	Valid   int
	Invalid int
	Total   int
}

// CorrectionsResetPayload accompanies EventCorrectionsReset.
type CorrectionsResetPayload struct {
	Count int
}

// ErrorPayload accompanies EventErrorOccurred. Kind names the failing
// operation class ("correction", "correction_reset", "validation").
type ErrorPayload struct {
	Kind string
	Err  string
}
