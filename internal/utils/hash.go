package utils

import (
	"crypto/sha256"
	"strings"
)

// contentIDSpace bounds generated identifiers to eight decimal digits so
// they stay readable in the TUI and in log output.
const contentIDSpace = 100_000_000

// EntryContentID derives a stable numeric identifier for a chest entry from
// its identifying content.
//
// Behavior:
//   - Joins chest type, player, source and date with a separator
//   - Hashes the result with SHA-256
//   - Folds the first eight digest bytes into a non-negative int64
//
// The same content always yields the same identifier, which lets repeated
// file imports of the same entry collapse to one record.
//
// Example usage:
//
//	id := utils.EntryContentID("Elegant Chest", "Engineer", "Level 25 Crypt", "2024-05-01")
func EntryContentID(chestType, player, source, date string) int64 {
	return contentID(chestType, player, source, date)
}

// RuleContentID derives a stable numeric identifier for a correction rule
// from its field, source text and replacement text. See EntryContentID for
// the derivation scheme.
func RuleContentID(field, fromText, toText string) int64 {
	return contentID(field, fromText, toText)
}

// contentID hashes the joined parts and folds the first eight digest bytes
// into a non-negative int64 below contentIDSpace.
func contentID(parts ...string) int64 {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))

	var n int64
	for _, b := range sum[:8] {
		n = n<<8 | int64(b)
	}
	if n < 0 {
		n = -n
	}

	return n % contentIDSpace
}
