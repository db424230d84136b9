package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chest-tracker/models"
)

func TestGetEntryStatistics(t *testing.T) {
	s := newTestStore(t)

	pending := testEntry(1, "Gold Chest", "John")
	invalid := testEntry(2, "Wooden", "Ghost")
	invalid.Status = models.StatusInvalid
	corrected := testEntry(3, "Gold Chest", "Mary")
	corrected.Status = models.StatusCorrected
	require.NoError(t, s.SetEntries([]models.Entry{pending, invalid, corrected}, "store"))

	stats := s.GetEntryStatistics()

	assert.Equal(t, models.EntryStatistics{Total: 3, Pending: 1, Invalid: 1, Corrected: 1}, stats)
}

func TestGetEntryStatistics_RecomputedAfterWrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetEntries([]models.Entry{testEntry(1, "Gold Chest", "John")}, "store"))

	assert.Equal(t, 1, s.GetEntryStatistics().Total)

	_, err := s.AddEntry(models.Entry{ChestType: "Silver Chest", Player: "Mary"})
	require.NoError(t, err)

	assert.Equal(t, 2, s.GetEntryStatistics().Total)
}

func TestGetCorrectionRuleStatistics(t *testing.T) {
	s := newTestStore(t)

	chestRule := testRule(1, "a", "b")
	playerRule := testRule(2, "c", "d")
	playerRule.Field = models.RuleFieldPlayer
	playerRule.Enabled = false
	require.NoError(t, s.SetCorrectionRules([]models.CorrectionRule{chestRule, playerRule}, "store"))

	stats := s.GetCorrectionRuleStatistics()

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Enabled)
	assert.Equal(t, 1, stats.Disabled)
	assert.Equal(t, 1, stats.ByField[models.RuleFieldChestType])
	assert.Equal(t, 1, stats.ByField[models.RuleFieldPlayer])
}

func TestGetCorrectionRuleStatistics_CachedMapIsIsolated(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetCorrectionRules([]models.CorrectionRule{testRule(1, "a", "b")}, "store"))

	first := s.GetCorrectionRuleStatistics()
	first.ByField[models.RuleFieldChestType] = 99

	second := s.GetCorrectionRuleStatistics()
	assert.Equal(t, 1, second.ByField[models.RuleFieldChestType])
}

func TestGetValidationListStatistics(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetValidationList(models.ValidationList{
		Category: models.CategoryPlayer,
		Entries: []models.ListEntry{
			{Value: "John", Enabled: true},
			{Value: "Mary", Enabled: false},
		},
	}, "store"))

	stats := s.GetValidationListStatistics()

	require.Len(t, stats, len(models.ListCategories()))
	byCategory := make(map[models.ListCategory]models.ListStatistics, len(stats))
	for _, item := range stats {
		byCategory[item.Category] = item
	}

	assert.Equal(t, models.ListStatistics{Category: models.CategoryPlayer, Total: 2, Enabled: 1, Disabled: 1}, byCategory[models.CategoryPlayer])
	assert.Zero(t, byCategory[models.CategorySource].Total)
}
