package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/models"
)

func TestParseValidationListFile(t *testing.T) {
	content := "Type,player\nName,Guild Members\nEntry\nJohn\nMary\nJohn\n"
	path := writeTestFile(t, "players.csv", content)

	list, err := NewLoader(logger.Nop()).ParseValidationListFile(path)

	require.NoError(t, err)
	assert.Equal(t, models.CategoryPlayer, list.Category)
	// Duplicates collapse, first occurrence wins.
	assert.Equal(t, []string{"John", "Mary"}, list.EnabledValues())
}

func TestParseValidationListFile_ChestTypeCategory(t *testing.T) {
	content := "Type,chest_type\nName,Chests\nEntry\nGold Chest\n"
	path := writeTestFile(t, "chests.csv", content)

	list, err := NewLoader(logger.Nop()).ParseValidationListFile(path)

	require.NoError(t, err)
	assert.Equal(t, models.CategoryChestType, list.Category)
	assert.Equal(t, 1, list.Len())
}

func TestParseValidationListFile_InvalidPreamble(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "missing type row", content: "Name,Guild\nEntry\nJohn\n"},
		{name: "unknown list type", content: "Type,guild\nName,Guild\nEntry\nJohn\n"},
		{name: "missing name row", content: "Type,player\nEntry\nJohn\nMary\n"},
		{name: "missing entry header", content: "Type,player\nName,Guild\nJohn,extra\nMary,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, "list.csv", tt.content)

			_, err := NewLoader(logger.Nop()).ParseValidationListFile(path)

			require.ErrorIs(t, err, ErrInvalidListFile)
		})
	}
}

func TestParseValidationListFile_SkipsBlankValues(t *testing.T) {
	content := "Type,source\nName,Sources\nEntry\nLevel 25 Crypt\n   \nLevel 10 Cave\n"
	path := writeTestFile(t, "sources.csv", content)

	list, err := NewLoader(logger.Nop()).ParseValidationListFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Level 25 Crypt", "Level 10 Cave"}, list.EnabledValues())
}

func TestParseValidationListFile_UnsupportedExtension(t *testing.T) {
	path := writeTestFile(t, "players.txt", "Type,player\n")

	_, err := NewLoader(logger.Nop()).ParseValidationListFile(path)

	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
