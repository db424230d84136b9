package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FuzzyMatcher scores position-aligned similarity between a candidate value
// and the allowed values of a validation list. Similarity is the share of
// runes that match at the same index, relative to the longer string, so
// "Gold" vs "Golden" scores 4/6.
type FuzzyMatcher struct {
	threshold float64
	fold      transform.Transformer
}

// NewFuzzyMatcher builds a matcher for the given minimum score (0-100).
func NewFuzzyMatcher(threshold int) *FuzzyMatcher {
	return &FuzzyMatcher{
		threshold: float64(threshold) / 100,
		fold:      transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Similarity returns a score in [0, 1]. Comparison ignores case and
// diacritics; exact-match case sensitivity is handled by the caller.
func (m *FuzzyMatcher) Similarity(first, second string) float64 {
	a := []rune(m.normalize(first))
	b := []rune(m.normalize(second))
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	shortest := len(a)
	if len(b) < shortest {
		shortest = len(b)
	}

	matches := 0
	for i := 0; i < shortest; i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(longest)
}

// IsMatch reports whether the two values score at or above the threshold.
func (m *FuzzyMatcher) IsMatch(first, second string) bool {
	return m.Similarity(first, second) >= m.threshold
}

// FindBestMatch returns the allowed value with the highest score at or above
// the threshold. On ties the earliest allowed value wins.
func (m *FuzzyMatcher) FindBestMatch(candidate string, allowed []string) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, value := range allowed {
		if score := m.Similarity(candidate, value); score > bestScore {
			best, bestScore = value, score
		}
	}

	if bestScore < m.threshold {
		return "", false
	}
	return best, true
}

func (m *FuzzyMatcher) normalize(value string) string {
	folded, _, err := transform.String(m.fold, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(folded)
}
