package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/utils"
	"github.com/MKhiriev/chest-tracker/models"
)

// dataStore is the in-memory implementation of [DataStore]. All reads hand
// out deep copies; the live collections never leave the struct. Mutations
// drop the derivation cache and emit their event after the lock is
// released, so event handlers may re-enter the store.
type dataStore struct {
	mu sync.RWMutex

	entries []models.Entry
	rules   []models.CorrectionRule
	lists   map[models.ListCategory]models.ValidationList

	// Transactions do not nest: a single flag, not a counter, so a nested
	// begin fails loudly instead of silently corrupting the snapshot.
	txActive   bool
	txSnapshot *txSnapshot

	bus    *eventBus
	cache  *opCache
	logger *logger.Logger
}

// txSnapshot holds the deep copy of all three collections taken by
// BeginTransaction.
type txSnapshot struct {
	entries []models.Entry
	rules   []models.CorrectionRule
	lists   map[models.ListCategory]models.ValidationList
}

// NewDataStore constructs an empty store. The three validation lists exist
// from the start, each with no entries.
func NewDataStore(log *logger.Logger) DataStore {
	lists := make(map[models.ListCategory]models.ValidationList, len(models.ListCategories()))
	for _, category := range models.ListCategories() {
		lists[category] = models.NewValidationList(category)
	}

	return &dataStore{
		entries: make([]models.Entry, 0),
		rules:   make([]models.CorrectionRule, 0),
		lists:   lists,
		bus:     newEventBus(log),
		cache:   newOpCache(),
		logger:  log,
	}
}

// ─── chest entries ────────────────────────────────────────────────────────────

func (s *dataStore) GetEntries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CloneEntries(s.entries)
}

func (s *dataStore) GetEntry(id int64) (models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			return s.entries[i].Clone(), true
		}
	}

	return models.Entry{}, false
}

func (s *dataStore) SetEntries(entries []models.Entry, source string) error {
	if err := validateEntriesSchema(entries); err != nil {
		s.logger.Warn().
			Str("func", "dataStore.SetEntries").
			Str("source", source).
			Err(err).
			Msg("rejected entries collection")
		return err
	}

	normalized := models.CloneEntries(entries)
	seen := make(map[int64]struct{}, len(normalized))
	for i := range normalized {
		normalizeEntry(&normalized[i])
		if _, dup := seen[normalized[i].ID]; dup {
			return &SchemaError{
				Collection: "entries",
				Reason:     fmt.Sprintf("duplicate entry id %d", normalized[i].ID),
			}
		}
		seen[normalized[i].ID] = struct{}{}
	}

	s.mu.Lock()
	s.entries = normalized
	count := len(normalized)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventEntriesUpdated, models.EntriesUpdatedPayload{Source: source, Count: count})

	return nil
}

func (s *dataStore) AddEntry(entry models.Entry) (int64, error) {
	if err := validateEntrySchema(entry); err != nil {
		s.logger.Warn().Str("func", "dataStore.AddEntry").Err(err).Msg("rejected entry")
		return 0, err
	}

	added := entry.Clone()
	if added.ID == 0 {
		added.ID = utils.EntryContentID(added.ChestType, added.Player, added.Source, added.Date)
	}
	normalizeEntry(&added)
	added.ModifiedAt = time.Now()

	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == added.ID {
			s.mu.Unlock()
			return 0, &SchemaError{
				Collection: "entries",
				Reason:     fmt.Sprintf("duplicate entry id %d", added.ID),
			}
		}
	}
	s.entries = append(s.entries, added)
	count := len(s.entries)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventEntriesUpdated, models.EntriesUpdatedPayload{Source: "store", Count: count})

	return added.ID, nil
}

func (s *dataStore) UpdateEntry(id int64, patch models.EntryPatch) error {
	s.mu.Lock()
	index := -1
	for i := range s.entries {
		if s.entries[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "dataStore.UpdateEntry").
			Int64("entry_id", id).
			Msg("entry not found")
		return fmt.Errorf("update entry %d: %w", id, ErrEntryNotFound)
	}

	patch.Apply(&s.entries[index])
	s.entries[index].ModifiedAt = time.Now()
	count := len(s.entries)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventEntriesUpdated, models.EntriesUpdatedPayload{Source: "store", Count: count})

	return nil
}

func (s *dataStore) DeleteEntry(id int64) error {
	s.mu.Lock()
	index := -1
	for i := range s.entries {
		if s.entries[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "dataStore.DeleteEntry").
			Int64("entry_id", id).
			Msg("entry not found")
		return fmt.Errorf("delete entry %d: %w", id, ErrEntryNotFound)
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	count := len(s.entries)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventEntriesUpdated, models.EntriesUpdatedPayload{Source: "store", Count: count})

	return nil
}

// ─── correction rules ─────────────────────────────────────────────────────────

func (s *dataStore) GetCorrectionRules() []models.CorrectionRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CloneRules(s.rules)
}

func (s *dataStore) GetCorrectionRule(id int64) (models.CorrectionRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			return s.rules[i].Clone(), true
		}
	}

	return models.CorrectionRule{}, false
}

// GetEnabledCorrectionRules returns the enabled rules in stored order.
// The view is memoized until the next write.
func (s *dataStore) GetEnabledCorrectionRules() []models.CorrectionRule {
	key := s.cache.key("enabled_correction_rules")
	if cached, ok := s.cache.get(key); ok {
		if rules, ok := cached.([]models.CorrectionRule); ok {
			return models.CloneRules(rules)
		}
	}

	s.mu.RLock()
	enabled := make([]models.CorrectionRule, 0, len(s.rules))
	for i := range s.rules {
		if s.rules[i].Enabled {
			enabled = append(enabled, s.rules[i].Clone())
		}
	}
	s.mu.RUnlock()

	s.cache.put(key, enabled)
	return models.CloneRules(enabled)
}

func (s *dataStore) SetCorrectionRules(rules []models.CorrectionRule, source string) error {
	normalized := models.CloneRules(rules)
	seen := make(map[int64]struct{}, len(normalized))
	for i := range normalized {
		if err := normalizeRule(&normalized[i]); err != nil {
			s.logger.Warn().
				Str("func", "dataStore.SetCorrectionRules").
				Str("source", source).
				Err(err).
				Msg("rejected correction rules collection")
			return err
		}
		if _, dup := seen[normalized[i].ID]; dup {
			return &SchemaError{
				Collection: "correction_rules",
				Reason:     fmt.Sprintf("duplicate rule id %d", normalized[i].ID),
			}
		}
		seen[normalized[i].ID] = struct{}{}
	}

	s.mu.Lock()
	s.rules = normalized
	count := len(normalized)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventCorrectionRulesUpdated, models.RulesUpdatedPayload{Source: source, Count: count})

	return nil
}

func (s *dataStore) AddCorrectionRule(rule models.CorrectionRule) (int64, error) {
	added := rule.Clone()
	if err := normalizeRule(&added); err != nil {
		s.logger.Warn().Str("func", "dataStore.AddCorrectionRule").Err(err).Msg("rejected rule")
		return 0, err
	}

	now := time.Now()
	if added.CreatedAt.IsZero() {
		added.CreatedAt = now
	}
	added.ModifiedAt = now

	s.mu.Lock()
	for i := range s.rules {
		if s.rules[i].ID == added.ID {
			s.mu.Unlock()
			return 0, &SchemaError{
				Collection: "correction_rules",
				Reason:     fmt.Sprintf("duplicate rule id %d", added.ID),
			}
		}
	}
	s.rules = append(s.rules, added)
	count := len(s.rules)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventCorrectionRulesUpdated, models.RulesUpdatedPayload{Source: "store", Count: count})

	return added.ID, nil
}

func (s *dataStore) UpdateCorrectionRule(id int64, patch models.RulePatch) error {
	s.mu.Lock()
	index := -1
	for i := range s.rules {
		if s.rules[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "dataStore.UpdateCorrectionRule").
			Int64("rule_id", id).
			Msg("rule not found")
		return fmt.Errorf("update correction rule %d: %w", id, ErrRuleNotFound)
	}

	patch.Apply(&s.rules[index])
	s.rules[index].ModifiedAt = time.Now()
	count := len(s.rules)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventCorrectionRulesUpdated, models.RulesUpdatedPayload{Source: "store", Count: count})

	return nil
}

func (s *dataStore) DeleteCorrectionRule(id int64) error {
	s.mu.Lock()
	index := -1
	for i := range s.rules {
		if s.rules[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "dataStore.DeleteCorrectionRule").
			Int64("rule_id", id).
			Msg("rule not found")
		return fmt.Errorf("delete correction rule %d: %w", id, ErrRuleNotFound)
	}

	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	count := len(s.rules)
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventCorrectionRulesUpdated, models.RulesUpdatedPayload{Source: "store", Count: count})

	return nil
}

// ─── validation lists ─────────────────────────────────────────────────────────

func (s *dataStore) GetValidationList(category models.ListCategory) (models.ValidationList, error) {
	if !category.Valid() {
		return models.ValidationList{}, fmt.Errorf("get validation list %q: %w", category, ErrInvalidCategory)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lists[category].Clone(), nil
}

func (s *dataStore) SetValidationList(list models.ValidationList, source string) error {
	if !list.Category.Valid() {
		s.logger.Warn().
			Str("func", "dataStore.SetValidationList").
			Str("category", string(list.Category)).
			Msg("unknown validation list category")
		return fmt.Errorf("set validation list %q: %w", list.Category, ErrInvalidCategory)
	}

	seen := make(map[string]struct{}, len(list.Entries))
	for _, entry := range list.Entries {
		if _, dup := seen[entry.Value]; dup {
			return fmt.Errorf("set validation list %q: value %q: %w", list.Category, entry.Value, ErrDuplicateListEntry)
		}
		seen[entry.Value] = struct{}{}
	}

	stored := list.Clone()
	now := time.Now()
	for i := range stored.Entries {
		if stored.Entries[i].CreatedAt.IsZero() {
			stored.Entries[i].CreatedAt = now
		}
	}

	s.mu.Lock()
	s.lists[stored.Category] = stored
	count := stored.Len()
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventValidationListsUpdated, models.ListsUpdatedPayload{
		Category: stored.Category,
		Source:   source,
		Count:    count,
	})

	return nil
}

func (s *dataStore) AddValidationEntry(category models.ListCategory, value string) error {
	if !category.Valid() {
		return fmt.Errorf("add to validation list %q: %w", category, ErrInvalidCategory)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("add to validation list %q: %w", category, ErrEmptyListValue)
	}

	s.mu.Lock()
	list := s.lists[category]
	if list.Contains(value) {
		s.mu.Unlock()
		return fmt.Errorf("add to validation list %q: value %q: %w", category, value, ErrDuplicateListEntry)
	}
	list.Entries = append(list.Entries, models.ListEntry{
		Value:     value,
		Enabled:   true,
		CreatedAt: time.Now(),
	})
	s.lists[category] = list
	count := list.Len()
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventValidationListsUpdated, models.ListsUpdatedPayload{
		Category: category,
		Source:   "store",
		Count:    count,
	})

	return nil
}

func (s *dataStore) DeleteValidationEntry(category models.ListCategory, value string) error {
	if !category.Valid() {
		return fmt.Errorf("delete from validation list %q: %w", category, ErrInvalidCategory)
	}

	s.mu.Lock()
	list := s.lists[category]
	index := -1
	for i := range list.Entries {
		if list.Entries[i].Value == value {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "dataStore.DeleteValidationEntry").
			Str("category", string(category)).
			Str("value", value).
			Msg("list entry not found")
		return fmt.Errorf("delete from validation list %q: value %q: %w", category, value, ErrListEntryNotFound)
	}

	list.Entries = append(list.Entries[:index], list.Entries[index+1:]...)
	s.lists[category] = list
	count := list.Len()
	s.mu.Unlock()

	s.cache.clear()
	s.Emit(models.EventValidationListsUpdated, models.ListsUpdatedPayload{
		Category: category,
		Source:   "store",
		Count:    count,
	})

	return nil
}

// ─── transactions ─────────────────────────────────────────────────────────────

func (s *dataStore) BeginTransaction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.txActive {
		s.logger.Warn().
			Str("func", "dataStore.BeginTransaction").
			Msg("transaction already active")
		return false
	}

	s.txSnapshot = &txSnapshot{
		entries: models.CloneEntries(s.entries),
		rules:   models.CloneRules(s.rules),
		lists:   cloneLists(s.lists),
	}
	s.txActive = true

	return true
}

func (s *dataStore) CommitTransaction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.txActive {
		s.logger.Warn().
			Str("func", "dataStore.CommitTransaction").
			Msg("no active transaction")
		return false
	}

	s.txSnapshot = nil
	s.txActive = false

	return true
}

func (s *dataStore) RollbackTransaction() bool {
	s.mu.Lock()

	if !s.txActive {
		s.mu.Unlock()
		s.logger.Warn().
			Str("func", "dataStore.RollbackTransaction").
			Msg("no active transaction")
		return false
	}

	s.entries = s.txSnapshot.entries
	s.rules = s.txSnapshot.rules
	s.lists = s.txSnapshot.lists
	s.txSnapshot = nil
	s.txActive = false
	s.mu.Unlock()

	// Writes made inside the transaction may have populated the cache;
	// drop it so reads reflect the restored state.
	s.cache.clear()

	return true
}

func (s *dataStore) TransactionActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.txActive
}

// ─── events ───────────────────────────────────────────────────────────────────

func (s *dataStore) Subscribe(eventType models.EventType, handler EventHandler) SubscriptionID {
	return s.bus.subscribe(eventType, handler)
}

func (s *dataStore) Unsubscribe(eventType models.EventType, id SubscriptionID) bool {
	return s.bus.unsubscribe(eventType, id)
}

func (s *dataStore) Emit(eventType models.EventType, payload any) {
	s.bus.emit(models.Event{Type: eventType, Payload: payload})
}

// ─── helpers ──────────────────────────────────────────────────────────────────

func validateEntriesSchema(entries []models.Entry) error {
	missing := make(map[string]struct{}, 2)
	for i := range entries {
		if strings.TrimSpace(entries[i].ChestType) == "" {
			missing[models.FieldChestType] = struct{}{}
		}
		if strings.TrimSpace(entries[i].Player) == "" {
			missing[models.FieldPlayer] = struct{}{}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	fields := make([]string, 0, len(missing))
	for _, name := range models.EntryFields {
		if _, ok := missing[name]; ok {
			fields = append(fields, name)
		}
	}

	return &SchemaError{Collection: "entries", Missing: fields}
}

func validateEntrySchema(entry models.Entry) error {
	return validateEntriesSchema([]models.Entry{entry})
}

// normalizeEntry fills conventional defaults so no two entries ever share
// a container.
func normalizeEntry(e *models.Entry) {
	if e.Status == "" {
		e.Status = models.StatusPending
	}
	if e.ValidationErrors == nil {
		e.ValidationErrors = make([]string, 0)
	}
	if e.OriginalValues == nil {
		e.OriginalValues = make(map[string]string)
	}
}

// normalizeRule canonicalizes the field name, defaults the match type to
// exact, and derives a content-hash id when none is set.
func normalizeRule(r *models.CorrectionRule) error {
	r.Field = models.NormalizeRuleField(string(r.Field))

	if r.MatchType == "" {
		r.MatchType = models.MatchExact
	}
	if !r.MatchType.Valid() {
		return &SchemaError{
			Collection: "correction_rules",
			Reason:     fmt.Sprintf("unknown match type %q", r.MatchType),
		}
	}

	if r.ID == 0 {
		r.ID = utils.RuleContentID(string(r.Field), r.FromText, r.ToText)
	}

	return nil
}

func cloneLists(lists map[models.ListCategory]models.ValidationList) map[models.ListCategory]models.ValidationList {
	cloned := make(map[models.ListCategory]models.ValidationList, len(lists))
	for category, list := range lists {
		cloned[category] = list.Clone()
	}
	return cloned
}
