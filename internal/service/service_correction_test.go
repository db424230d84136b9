package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/mock"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/models"
)

func newCorrectionFixture(t *testing.T, entries []models.Entry, rules []models.CorrectionRule) (store.DataStore, CorrectionService) {
	t.Helper()

	dataStore := store.NewDataStore(logger.Nop())
	if len(entries) > 0 {
		require.NoError(t, dataStore.SetEntries(entries, "store"))
	}
	if len(rules) > 0 {
		require.NoError(t, dataStore.SetCorrectionRules(rules, "store"))
	}

	return dataStore, NewCorrectionService(dataStore, logger.Nop())
}

func chestEntry(id int64, chestType, player, source string) models.Entry {
	return models.Entry{ID: id, ChestType: chestType, Player: player, Source: source}
}

func TestApplyCorrections_RewritesMatchingField(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "Level 25 Crypt")}
	rules := []models.CorrectionRule{{
		Field:         models.RuleFieldChestType,
		FromText:      "Gold",
		ToText:        "Gold Chest",
		CaseSensitive: true,
		MatchType:     models.MatchExact,
		Enabled:       true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	var events []models.CorrectionAppliedPayload
	dataStore.Subscribe(models.EventCorrectionApplied, func(event models.Event) {
		events = append(events, event.Payload.(models.CorrectionAppliedPayload))
	})

	stats, err := svc.ApplyCorrections()

	require.NoError(t, err)
	assert.Equal(t, models.CorrectionStats{Applied: 1, Total: 1}, stats)

	entry, found := dataStore.GetEntry(1)
	require.True(t, found)
	assert.Equal(t, "Gold Chest", entry.ChestType)
	assert.Equal(t, "Gold", entry.OriginalValues[models.FieldChestType])
	assert.Equal(t, models.StatusCorrected, entry.Status)

	require.Len(t, events, 1)
	assert.Equal(t, models.CorrectionAppliedPayload{Count: 1, EntriesAffected: 1}, events[0])
	assert.False(t, dataStore.TransactionActive())
}

func TestApplyCorrections_FirstCorrectionRecordsOriginalOnce(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	rules := []models.CorrectionRule{
		{ID: 10, Field: models.RuleFieldChestType, FromText: "Gold", ToText: "Silver", CaseSensitive: true, MatchType: models.MatchExact, Enabled: true},
		{ID: 11, Field: models.RuleFieldChestType, FromText: "Silver", ToText: "Bronze", CaseSensitive: true, MatchType: models.MatchExact, Enabled: true},
	}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	stats, err := svc.ApplyCorrections()

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Applied)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Bronze", entry.ChestType)
	// Only the value before the first rewrite is remembered.
	assert.Equal(t, "Gold", entry.OriginalValues[models.FieldChestType])
}

func TestApplyCorrections_NoMatchLeavesEntriesUntouched(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	rules := []models.CorrectionRule{{
		Field:     models.RuleFieldChestType,
		FromText:  "Platinum",
		ToText:    "Platinum Chest",
		MatchType: models.MatchExact,
		Enabled:   true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	before, _ := dataStore.GetEntry(1)

	var appliedEvents int
	dataStore.Subscribe(models.EventCorrectionApplied, func(models.Event) { appliedEvents++ })

	stats, err := svc.ApplyCorrections()

	require.NoError(t, err)
	assert.Equal(t, models.CorrectionStats{Applied: 0, Total: 1}, stats)
	assert.Zero(t, appliedEvents)
	assert.False(t, dataStore.TransactionActive())

	after, _ := dataStore.GetEntry(1)
	assert.Equal(t, before, after)
}

func TestApplyCorrections_DisabledRulesAreIgnored(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	rules := []models.CorrectionRule{{
		Field:     models.RuleFieldChestType,
		FromText:  "Gold",
		ToText:    "Gold Chest",
		MatchType: models.MatchExact,
		Enabled:   false,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	stats, err := svc.ApplyCorrections()

	require.NoError(t, err)
	assert.Zero(t, stats.Applied)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Gold", entry.ChestType)
}

func TestApplyCorrections_TargetsOnlyRequestedEntries(t *testing.T) {
	entries := []models.Entry{
		chestEntry(1, "Gold", "John", ""),
		chestEntry(2, "Gold", "Mary", ""),
	}
	rules := []models.CorrectionRule{{
		Field:     models.RuleFieldChestType,
		FromText:  "Gold",
		ToText:    "Gold Chest",
		MatchType: models.MatchExact,
		Enabled:   true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	stats, err := svc.ApplyCorrections(2)

	require.NoError(t, err)
	assert.Equal(t, models.CorrectionStats{Applied: 1, Total: 1}, stats)

	untouched, _ := dataStore.GetEntry(1)
	corrected, _ := dataStore.GetEntry(2)
	assert.Equal(t, "Gold", untouched.ChestType)
	assert.Equal(t, "Gold Chest", corrected.ChestType)
}

func TestApplyCorrections_GeneralRuleTouchesAllFields(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "mystery", "mystery", "mystery")}
	rules := []models.CorrectionRule{{
		Field:     models.RuleFieldGeneral,
		FromText:  "mystery",
		ToText:    "Mystery",
		MatchType: models.MatchExact,
		Enabled:   true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	stats, err := svc.ApplyCorrections()

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Applied)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Mystery", entry.ChestType)
	assert.Equal(t, "Mystery", entry.Player)
	assert.Equal(t, "Mystery", entry.Source)
}

func TestApplyCorrections_CaseInsensitiveContains(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "golden chest", "John", "")}
	rules := []models.CorrectionRule{{
		Field:         models.RuleFieldChestType,
		FromText:      "GOLDEN",
		ToText:        "Gold Chest",
		CaseSensitive: false,
		MatchType:     models.MatchContains,
		Enabled:       true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	_, err := svc.ApplyCorrections()

	require.NoError(t, err)
	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Gold Chest", entry.ChestType)
}

func TestApplyCorrections_InvalidRegexRollsBack(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	rules := []models.CorrectionRule{{
		Field:     models.RuleFieldChestType,
		FromText:  "(unclosed",
		ToText:    "broken",
		MatchType: models.MatchRegex,
		Enabled:   true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	var errorEvents []models.ErrorPayload
	dataStore.Subscribe(models.EventErrorOccurred, func(event models.Event) {
		errorEvents = append(errorEvents, event.Payload.(models.ErrorPayload))
	})

	_, err := svc.ApplyCorrections()

	require.Error(t, err)
	assert.False(t, dataStore.TransactionActive())
	require.Len(t, errorEvents, 1)
	assert.Equal(t, "correction", errorEvents[0].Kind)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Gold", entry.ChestType)
}

func TestApplyCorrections_StoreFailureRollsBackAndEmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockDataStore(ctrl)
	svc := NewCorrectionService(mockStore, logger.Nop())

	entries := []models.Entry{{
		ID: 1, ChestType: "Gold", Player: "John",
		ValidationErrors: []string{}, OriginalValues: map[string]string{},
	}}
	rules := []models.CorrectionRule{{
		ID: 7, Field: models.RuleFieldChestType, FromText: "Gold", ToText: "Gold Chest",
		MatchType: models.MatchExact, Enabled: true,
	}}
	storeErr := errors.New("store unavailable")

	gomock.InOrder(
		mockStore.EXPECT().GetEnabledCorrectionRules().Return(rules),
		mockStore.EXPECT().GetEntries().Return(entries),
		mockStore.EXPECT().BeginTransaction().Return(true),
		mockStore.EXPECT().SetEntries(gomock.Any(), "correction_service").Return(storeErr),
		mockStore.EXPECT().RollbackTransaction().Return(true),
		mockStore.EXPECT().Emit(models.EventErrorOccurred, gomock.Any()),
	)

	_, err := svc.ApplyCorrections()

	require.ErrorIs(t, err, storeErr)
}

func TestApplySpecificCorrection_AppliesWhenValueStillMatches(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	dataStore, svc := newCorrectionFixture(t, entries, nil)

	applied, err := svc.ApplySpecificCorrection(1, models.FieldChestType, "Gold", "Gold Chest")

	require.NoError(t, err)
	assert.True(t, applied)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Gold Chest", entry.ChestType)
	assert.Equal(t, "Gold", entry.OriginalValues[models.FieldChestType])
	assert.Equal(t, models.StatusCorrected, entry.Status)
}

func TestApplySpecificCorrection_StaleIntentIsDropped(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Silver", "John", "")}
	dataStore, svc := newCorrectionFixture(t, entries, nil)

	applied, err := svc.ApplySpecificCorrection(1, models.FieldChestType, "Gold", "Gold Chest")

	require.NoError(t, err)
	assert.False(t, applied)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Silver", entry.ChestType)
}

func TestApplySpecificCorrection_UnknownEntry(t *testing.T) {
	_, svc := newCorrectionFixture(t, []models.Entry{chestEntry(1, "Gold", "John", "")}, nil)

	applied, err := svc.ApplySpecificCorrection(99, models.FieldChestType, "Gold", "Gold Chest")

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestApplySpecificCorrection_InvalidField(t *testing.T) {
	_, svc := newCorrectionFixture(t, []models.Entry{chestEntry(1, "Gold", "John", "")}, nil)

	_, err := svc.ApplySpecificCorrection(1, "score", "Gold", "Gold Chest")

	require.ErrorIs(t, err, ErrInvalidField)
}

func TestResetCorrections_RestoresOriginals(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	rules := []models.CorrectionRule{{
		Field:     models.RuleFieldChestType,
		FromText:  "Gold",
		ToText:    "Gold Chest",
		MatchType: models.MatchExact,
		Enabled:   true,
	}}
	dataStore, svc := newCorrectionFixture(t, entries, rules)

	_, err := svc.ApplyCorrections()
	require.NoError(t, err)

	var resetEvents []models.CorrectionsResetPayload
	dataStore.Subscribe(models.EventCorrectionsReset, func(event models.Event) {
		resetEvents = append(resetEvents, event.Payload.(models.CorrectionsResetPayload))
	})

	stats, err := svc.ResetCorrections()

	require.NoError(t, err)
	assert.Equal(t, models.ResetStats{Reset: 1, Total: 1}, stats)

	entry, _ := dataStore.GetEntry(1)
	assert.Equal(t, "Gold", entry.ChestType)
	assert.Empty(t, entry.OriginalValues)
	assert.Equal(t, models.StatusPending, entry.Status)

	require.Len(t, resetEvents, 1)
	assert.Equal(t, 1, resetEvents[0].Count)
}

func TestResetCorrections_NothingToReset(t *testing.T) {
	entries := []models.Entry{chestEntry(1, "Gold", "John", "")}
	dataStore, svc := newCorrectionFixture(t, entries, nil)

	stats, err := svc.ResetCorrections()

	require.NoError(t, err)
	assert.Equal(t, models.ResetStats{Reset: 0, Total: 1}, stats)
	assert.False(t, dataStore.TransactionActive())
}

func TestAddCorrectionRule(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		from      string
		to        string
		matchType string
		wantErr   error
	}{
		{name: "valid chest_type rule", field: "chest_type", from: "Gold", to: "Gold Chest", matchType: "exact"},
		{name: "valid general rule", field: "all", from: "x", to: "y", matchType: "contains"},
		{name: "blank match type defaults to exact", field: "player", from: "jon", to: "John", matchType: ""},
		{name: "unknown field", field: "score", from: "a", to: "b", matchType: "exact", wantErr: ErrInvalidField},
		{name: "unknown match type", field: "player", from: "a", to: "b", matchType: "levenshtein", wantErr: ErrInvalidMatchType},
		{name: "blank from text", field: "player", from: "   ", to: "b", matchType: "exact", wantErr: ErrEmptyRuleText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataStore, svc := newCorrectionFixture(t, nil, nil)

			err := svc.AddCorrectionRule(tt.field, tt.from, tt.to, true, tt.matchType, true)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, dataStore.GetCorrectionRules())
				return
			}
			require.NoError(t, err)
			assert.Len(t, dataStore.GetCorrectionRules(), 1)
		})
	}
}
