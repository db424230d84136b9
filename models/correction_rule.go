package models

import (
	"strings"
	"time"
)

// RuleField names the entry field a correction rule targets.
// RuleFieldGeneral applies the rule to all three correctable fields.
type RuleField string

const (
	RuleFieldChestType RuleField = FieldChestType
	RuleFieldPlayer    RuleField = FieldPlayer
	RuleFieldSource    RuleField = FieldSource
	RuleFieldGeneral   RuleField = "general"
)

// NormalizeRuleField maps the legacy spellings of the catch-all field
// ("all", "general", empty, and the old "category" values) onto the
// canonical [RuleField] set. Unknown names normalize to RuleFieldGeneral.
func NormalizeRuleField(raw string) RuleField {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case FieldChestType:
		return RuleFieldChestType
	case FieldPlayer:
		return RuleFieldPlayer
	case FieldSource:
		return RuleFieldSource
	default:
		return RuleFieldGeneral
	}
}

// MatchType selects the predicate a rule uses to match field values.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startswith"
	MatchEndsWith   MatchType = "endswith"
	MatchRegex      MatchType = "regex"
)

// MatchTypes lists all recognized match kinds.
var MatchTypes = []MatchType{MatchExact, MatchContains, MatchStartsWith, MatchEndsWith, MatchRegex}

// Valid reports whether m is one of the five recognized match kinds.
func (m MatchType) Valid() bool {
	for _, known := range MatchTypes {
		if m == known {
			return true
		}
	}
	return false
}

// CorrectionRule is one normalization instruction: rewrite matching values
// of the targeted field(s) to ToText. Rules are applied in stored order;
// the order is significant and never re-sorted by the engine.
type CorrectionRule struct {
	ID            int64
	Field         RuleField
	FromText      string
	ToText        string
	CaseSensitive bool
	MatchType     MatchType
	Enabled       bool

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Clone returns a copy of the rule. Rules contain no reference types, so
// this is a plain value copy kept for symmetry with [Entry.Clone].
func (r CorrectionRule) Clone() CorrectionRule {
	return r
}

// CloneRules copies a whole rule slice.
func CloneRules(rules []CorrectionRule) []CorrectionRule {
	if rules == nil {
		return nil
	}

	clones := make([]CorrectionRule, len(rules))
	copy(clones, rules)
	return clones
}

// TargetFields resolves the entry fields the rule applies to: the named
// field when it is one of the three categories, otherwise all three.
func (r CorrectionRule) TargetFields() []string {
	switch r.Field {
	case RuleFieldChestType, RuleFieldPlayer, RuleFieldSource:
		return []string{string(r.Field)}
	default:
		return EntryFields
	}
}

// RulePatch describes a partial update to a correction rule.
type RulePatch struct {
	Field         *RuleField
	FromText      *string
	ToText        *string
	CaseSensitive *bool
	MatchType     *MatchType
	Enabled       *bool
}

// Apply merges the patch into the rule.
func (p RulePatch) Apply(r *CorrectionRule) {
	if p.Field != nil {
		r.Field = *p.Field
	}
	if p.FromText != nil {
		r.FromText = *p.FromText
	}
	if p.ToText != nil {
		r.ToText = *p.ToText
	}
	if p.CaseSensitive != nil {
		r.CaseSensitive = *p.CaseSensitive
	}
	if p.MatchType != nil {
		r.MatchType = *p.MatchType
	}
	if p.Enabled != nil {
		r.Enabled = *p.Enabled
	}
}
