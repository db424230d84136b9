package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/models"
)

func newTestStore(t *testing.T) DataStore {
	t.Helper()
	return NewDataStore(logger.Nop())
}

func testEntry(id int64, chestType, player string) models.Entry {
	return models.Entry{ID: id, ChestType: chestType, Player: player}
}

func testRule(id int64, from, to string) models.CorrectionRule {
	return models.CorrectionRule{
		ID:        id,
		Field:     models.RuleFieldChestType,
		FromText:  from,
		ToText:    to,
		MatchType: models.MatchExact,
		Enabled:   true,
	}
}

// ─── entries ──────────────────────────────────────────────────────────────────

func TestSetEntries_ReplacesCollectionAndEmits(t *testing.T) {
	s := newTestStore(t)

	var payloads []models.EntriesUpdatedPayload
	s.Subscribe(models.EventEntriesUpdated, func(event models.Event) {
		payloads = append(payloads, event.Payload.(models.EntriesUpdatedPayload))
	})

	err := s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "file_loader")

	require.NoError(t, err)
	assert.Len(t, s.GetEntries(), 1)
	require.Len(t, payloads, 1)
	assert.Equal(t, models.EntriesUpdatedPayload{Source: "file_loader", Count: 1}, payloads[0])
}

func TestSetEntries_RejectsMissingRequiredFields(t *testing.T) {
	s := newTestStore(t)

	err := s.SetEntries([]models.Entry{{ID: 1, ChestType: "  ", Player: ""}}, "store")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "entries", schemaErr.Collection)
	assert.Equal(t, []string{models.FieldChestType, models.FieldPlayer}, schemaErr.Missing)
	assert.Empty(t, s.GetEntries())
}

func TestSetEntries_RejectsDuplicateIDs(t *testing.T) {
	s := newTestStore(t)

	err := s.SetEntries([]models.Entry{
		testEntry(1, "Gold Chest", "John"),
		testEntry(1, "Silver Chest", "Mary"),
	}, "store")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Error(), "duplicate entry id")
}

func TestSetEntries_NormalizesBlankStatusAndContainers(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	entry, found := s.GetEntry(1)
	require.True(t, found)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.NotNil(t, entry.ValidationErrors)
	assert.NotNil(t, entry.OriginalValues)
}

func TestGetEntries_ReturnsDefensiveCopies(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	snapshot := s.GetEntries()
	snapshot[0].ChestType = "tampered"
	snapshot[0].OriginalValues["chest_type"] = "tampered"

	entry, _ := s.GetEntry(1)
	assert.Equal(t, "Gold Chest", entry.ChestType)
	assert.Empty(t, entry.OriginalValues)
}

func TestAddEntry_DerivesContentHashID(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddEntry(models.Entry{ChestType: "Gold Chest", Player: "John", Source: "Crypt", Date: "2026-08-29"})

	require.NoError(t, err)
	assert.NotZero(t, id)

	entry, found := s.GetEntry(id)
	require.True(t, found)
	assert.False(t, entry.ModifiedAt.IsZero())

	// Same content hashes to the same id, so re-adding collides.
	_, err = s.AddEntry(models.Entry{ChestType: "Gold Chest", Player: "John", Source: "Crypt", Date: "2026-08-29"})
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestUpdateEntry(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	require.NoError(t, s.UpdateEntry(1, models.EntryPatch{Player: ptr("Mary")}))

	entry, _ := s.GetEntry(1)
	assert.Equal(t, "Mary", entry.Player)

	err := s.UpdateEntry(99, models.EntryPatch{Player: ptr("Nobody")})
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{
		testEntry(1, "Gold Chest", "John"),
		testEntry(2, "Silver Chest", "Mary"),
	}, "store"))

	require.NoError(t, s.DeleteEntry(1))
	assert.Len(t, s.GetEntries(), 1)

	require.ErrorIs(t, s.DeleteEntry(1), ErrEntryNotFound)
}

// ─── correction rules ─────────────────────────────────────────────────────────

func TestSetCorrectionRules_PreservesOrder(t *testing.T) {
	s := newTestStore(t)

	rules := []models.CorrectionRule{testRule(3, "a", "b"), testRule(1, "c", "d"), testRule(2, "e", "f")}
	require.NoError(t, s.SetCorrectionRules(rules, "store"))

	stored := s.GetCorrectionRules()
	require.Len(t, stored, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{stored[0].ID, stored[1].ID, stored[2].ID})
}

func TestSetCorrectionRules_RejectsUnknownMatchType(t *testing.T) {
	s := newTestStore(t)

	rule := testRule(1, "a", "b")
	rule.MatchType = "soundex"

	err := s.SetCorrectionRules([]models.CorrectionRule{rule}, "store")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "correction_rules", schemaErr.Collection)
}

func TestAddCorrectionRule_NormalizesFieldAndID(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddCorrectionRule(models.CorrectionRule{
		Field:    "ALL",
		FromText: "Gold",
		ToText:   "Gold Chest",
		Enabled:  true,
	})

	require.NoError(t, err)
	assert.NotZero(t, id)

	rule, found := s.GetCorrectionRule(id)
	require.True(t, found)
	assert.Equal(t, models.RuleFieldGeneral, rule.Field)
	assert.Equal(t, models.MatchExact, rule.MatchType)
}

func TestGetEnabledCorrectionRules(t *testing.T) {
	s := newTestStore(t)

	enabled := testRule(1, "a", "b")
	disabled := testRule(2, "c", "d")
	disabled.Enabled = false
	require.NoError(t, s.SetCorrectionRules([]models.CorrectionRule{enabled, disabled}, "store"))

	rules := s.GetEnabledCorrectionRules()
	require.Len(t, rules, 1)
	assert.Equal(t, int64(1), rules[0].ID)
}

func TestUpdateCorrectionRule(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetCorrectionRules([]models.CorrectionRule{testRule(1, "a", "b")}, "store"))

	enabled := false
	require.NoError(t, s.UpdateCorrectionRule(1, models.RulePatch{Enabled: &enabled}))

	rule, _ := s.GetCorrectionRule(1)
	assert.False(t, rule.Enabled)

	require.ErrorIs(t, s.UpdateCorrectionRule(99, models.RulePatch{}), ErrRuleNotFound)
}

func TestDeleteCorrectionRule(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetCorrectionRules([]models.CorrectionRule{testRule(1, "a", "b")}, "store"))

	require.NoError(t, s.DeleteCorrectionRule(1))
	assert.Empty(t, s.GetCorrectionRules())
	require.ErrorIs(t, s.DeleteCorrectionRule(1), ErrRuleNotFound)
}

// ─── validation lists ─────────────────────────────────────────────────────────

func TestValidationLists_AllCategoriesExistFromTheStart(t *testing.T) {
	s := newTestStore(t)

	for _, category := range models.ListCategories() {
		list, err := s.GetValidationList(category)
		require.NoError(t, err)
		assert.Equal(t, category, list.Category)
		assert.Zero(t, list.Len())
	}
}

func TestGetValidationList_UnknownCategory(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetValidationList("guild")

	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSetValidationList(t *testing.T) {
	s := newTestStore(t)

	list := models.ValidationList{
		Category: models.CategoryPlayer,
		Entries:  []models.ListEntry{{Value: "John", Enabled: true}},
	}
	require.NoError(t, s.SetValidationList(list, "file_loader"))

	stored, err := s.GetValidationList(models.CategoryPlayer)
	require.NoError(t, err)
	assert.Equal(t, []string{"John"}, stored.EnabledValues())
	assert.False(t, stored.Entries[0].CreatedAt.IsZero())
}

func TestSetValidationList_RejectsDuplicateValues(t *testing.T) {
	s := newTestStore(t)

	list := models.ValidationList{
		Category: models.CategoryPlayer,
		Entries:  []models.ListEntry{{Value: "John"}, {Value: "John"}},
	}

	require.ErrorIs(t, s.SetValidationList(list, "store"), ErrDuplicateListEntry)
}

func TestAddValidationEntry(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddValidationEntry(models.CategoryPlayer, "  John  "))

	list, _ := s.GetValidationList(models.CategoryPlayer)
	assert.Equal(t, []string{"John"}, list.EnabledValues())

	require.ErrorIs(t, s.AddValidationEntry(models.CategoryPlayer, "John"), ErrDuplicateListEntry)
	require.ErrorIs(t, s.AddValidationEntry(models.CategoryPlayer, "   "), ErrEmptyListValue)
	require.ErrorIs(t, s.AddValidationEntry("guild", "John"), ErrInvalidCategory)
}

func TestDeleteValidationEntry(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddValidationEntry(models.CategoryPlayer, "John"))

	require.NoError(t, s.DeleteValidationEntry(models.CategoryPlayer, "John"))

	list, _ := s.GetValidationList(models.CategoryPlayer)
	assert.Zero(t, list.Len())

	require.ErrorIs(t, s.DeleteValidationEntry(models.CategoryPlayer, "John"), ErrListEntryNotFound)
}

// ─── transactions ─────────────────────────────────────────────────────────────

func TestTransaction_RollbackRestoresAllCollections(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))
	require.NoError(t, s.SetCorrectionRules([]models.CorrectionRule{testRule(1, "a", "b")}, "store"))
	require.NoError(t, s.AddValidationEntry(models.CategoryPlayer, "John"))

	require.True(t, s.BeginTransaction())
	require.True(t, s.TransactionActive())

	require.NoError(t, s.SetEntries([]models.Entry{testEntry(2, "Silver Chest", "Mary")}, "store"))
	require.NoError(t, s.SetCorrectionRules(nil, "store"))
	require.NoError(t, s.AddValidationEntry(models.CategoryPlayer, "Mary"))

	require.True(t, s.RollbackTransaction())
	assert.False(t, s.TransactionActive())

	entry, found := s.GetEntry(1)
	require.True(t, found)
	assert.Equal(t, "Gold Chest", entry.ChestType)
	assert.Len(t, s.GetCorrectionRules(), 1)

	list, _ := s.GetValidationList(models.CategoryPlayer)
	assert.Equal(t, []string{"John"}, list.EnabledValues())
}

func TestTransaction_CommitKeepsChanges(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	require.True(t, s.BeginTransaction())
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(2, "Silver Chest", "Mary")}, "store"))
	require.True(t, s.CommitTransaction())

	_, found := s.GetEntry(1)
	assert.False(t, found)
	_, found = s.GetEntry(2)
	assert.True(t, found)
}

func TestTransaction_StateViolationsReturnFalse(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.CommitTransaction())
	assert.False(t, s.RollbackTransaction())

	require.True(t, s.BeginTransaction())
	assert.False(t, s.BeginTransaction()) // no nesting
	require.True(t, s.CommitTransaction())
}

func TestTransaction_RollbackRestoresStatisticsView(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	// Warm the memoized aggregate.
	assert.Equal(t, 1, s.GetEntryStatistics().Total)

	require.True(t, s.BeginTransaction())
	require.NoError(t, s.SetEntries([]models.Entry{
		testEntry(1, "Gold Chest", "John"),
		testEntry(2, "Silver Chest", "Mary"),
	}, "store"))
	assert.Equal(t, 2, s.GetEntryStatistics().Total)

	require.True(t, s.RollbackTransaction())

	assert.Equal(t, 1, s.GetEntryStatistics().Total)
}

// ─── events ───────────────────────────────────────────────────────────────────

func TestStore_HandlerMayReenterStore(t *testing.T) {
	s := newTestStore(t)

	// An entries-updated handler that reads the store again must not
	// deadlock; this is what the auto-validation subscription does.
	var observed int
	s.Subscribe(models.EventEntriesUpdated, func(models.Event) {
		observed = len(s.GetEntries())
	})

	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	assert.Equal(t, 1, observed)
}

func ptr[T any](v T) *T { return &v }
