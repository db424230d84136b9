package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/chest-tracker/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	pendingStyle   = lipgloss.NewStyle().Faint(true)
	invalidStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	correctedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	validStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// renderStatus colours a fixed-width status cell by lifecycle state.
func renderStatus(status models.EntryStatus, cell string) string {
	switch status {
	case models.StatusInvalid:
		return invalidStyle.Render(cell)
	case models.StatusCorrected:
		return correctedStyle.Render(cell)
	case models.StatusValid:
		return validStyle.Render(cell)
	default:
		return pendingStyle.Render(cell)
	}
}
