package store

import (
	"github.com/MKhiriev/chest-tracker/models"
)

// GetEntryStatistics returns per-status counts over the entry collection.
// The result is memoized until the next write.
func (s *dataStore) GetEntryStatistics() models.EntryStatistics {
	key := s.cache.key("entry_statistics")
	if cached, ok := s.cache.get(key); ok {
		if stats, ok := cached.(models.EntryStatistics); ok {
			return stats
		}
	}

	s.mu.RLock()
	stats := models.EntryStatistics{Total: len(s.entries)}
	for i := range s.entries {
		switch s.entries[i].Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusValid:
			stats.Valid++
		case models.StatusInvalid:
			stats.Invalid++
		case models.StatusCorrected:
			stats.Corrected++
		}
	}
	s.mu.RUnlock()

	s.cache.put(key, stats)
	return stats
}

// GetCorrectionRuleStatistics returns totals and a per-field breakdown over
// the rule collection. The result is memoized until the next write.
func (s *dataStore) GetCorrectionRuleStatistics() models.RuleStatistics {
	key := s.cache.key("correction_rule_statistics")
	if cached, ok := s.cache.get(key); ok {
		if stats, ok := cached.(models.RuleStatistics); ok {
			return cloneRuleStatistics(stats)
		}
	}

	s.mu.RLock()
	stats := models.RuleStatistics{
		Total:   len(s.rules),
		ByField: make(map[models.RuleField]int),
	}
	for i := range s.rules {
		if s.rules[i].Enabled {
			stats.Enabled++
		} else {
			stats.Disabled++
		}
		stats.ByField[s.rules[i].Field]++
	}
	s.mu.RUnlock()

	s.cache.put(key, stats)
	return cloneRuleStatistics(stats)
}

// GetValidationListStatistics returns per-list totals in the fixed category
// order. The result is memoized until the next write.
func (s *dataStore) GetValidationListStatistics() []models.ListStatistics {
	key := s.cache.key("validation_list_statistics")
	if cached, ok := s.cache.get(key); ok {
		if stats, ok := cached.([]models.ListStatistics); ok {
			return append([]models.ListStatistics(nil), stats...)
		}
	}

	s.mu.RLock()
	stats := make([]models.ListStatistics, 0, len(models.ListCategories()))
	for _, category := range models.ListCategories() {
		list := s.lists[category]
		item := models.ListStatistics{Category: category, Total: list.Len()}
		for i := range list.Entries {
			if list.Entries[i].Enabled {
				item.Enabled++
			} else {
				item.Disabled++
			}
		}
		stats = append(stats, item)
	}
	s.mu.RUnlock()

	s.cache.put(key, stats)
	return append([]models.ListStatistics(nil), stats...)
}

func cloneRuleStatistics(stats models.RuleStatistics) models.RuleStatistics {
	byField := make(map[models.RuleField]int, len(stats.ByField))
	for field, count := range stats.ByField {
		byField[field] = count
	}
	stats.ByField = byField
	return stats
}
