package store

import (
	"context"

	"github.com/MKhiriev/chest-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DataStore is the single source of truth for chest entries, correction
// rules, and the three validation lists. Every read returns a defensive
// copy; mutations go through the methods below, which invalidate the
// internal cache and emit the corresponding event on success.
type DataStore interface {
	// Chest entries.
	GetEntries() []models.Entry
	GetEntry(id int64) (models.Entry, bool)
	SetEntries(entries []models.Entry, source string) error
	AddEntry(entry models.Entry) (int64, error)
	UpdateEntry(id int64, patch models.EntryPatch) error
	DeleteEntry(id int64) error

	// Correction rules.
	GetCorrectionRules() []models.CorrectionRule
	GetCorrectionRule(id int64) (models.CorrectionRule, bool)
	GetEnabledCorrectionRules() []models.CorrectionRule
	SetCorrectionRules(rules []models.CorrectionRule, source string) error
	AddCorrectionRule(rule models.CorrectionRule) (int64, error)
	UpdateCorrectionRule(id int64, patch models.RulePatch) error
	DeleteCorrectionRule(id int64) error

	// Validation lists. The three fixed categories always exist.
	GetValidationList(category models.ListCategory) (models.ValidationList, error)
	SetValidationList(list models.ValidationList, source string) error
	AddValidationEntry(category models.ListCategory, value string) error
	DeleteValidationEntry(category models.ListCategory, value string) error

	// Transactions: snapshot-based, non-nesting. State violations return
	// false and log a warning instead of failing hard.
	BeginTransaction() bool
	CommitTransaction() bool
	RollbackTransaction() bool
	TransactionActive() bool

	// Events.
	Subscribe(eventType models.EventType, handler EventHandler) SubscriptionID
	Unsubscribe(eventType models.EventType, id SubscriptionID) bool
	Emit(eventType models.EventType, payload any)

	// Cached aggregates.
	GetEntryStatistics() models.EntryStatistics
	GetCorrectionRuleStatistics() models.RuleStatistics
	GetValidationListStatistics() []models.ListStatistics
}

// WorkspaceRepository persists the in-memory collections into the local
// SQLite workspace database and restores them on startup.
type WorkspaceRepository interface {
	SaveEntries(ctx context.Context, entries []models.Entry) error
	LoadEntries(ctx context.Context) ([]models.Entry, error)
	SaveCorrectionRules(ctx context.Context, rules []models.CorrectionRule) error
	LoadCorrectionRules(ctx context.Context) ([]models.CorrectionRule, error)
	SaveValidationLists(ctx context.Context, lists []models.ValidationList) error
	LoadValidationLists(ctx context.Context) ([]models.ValidationList, error)
}
