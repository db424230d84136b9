package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/chest-tracker/internal/service"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/models"
)

type importKind int

const (
	importEntries importKind = iota
	importRules
	importList
)

func (k importKind) label() string {
	switch k {
	case importEntries:
		return "Chest entries (.txt)"
	case importRules:
		return "Correction rules (.csv / .tsv)"
	case importList:
		return "Validation list (.csv)"
	default:
		return "Unknown"
	}
}

type importStage int

const (
	importStageNone importStage = iota
	importStageKind
	importStagePath
)

// tableColumns are the copyable cells of one table row, in display order.
var tableColumns = []string{"chest type", "player", "source", "date", "status"}

type appModel struct {
	ctx      context.Context
	services *service.Services
	store    store.DataStore

	buildInfo models.AppBuildInfo

	entries   []models.Entry
	idx       int
	colIdx    int
	stats     models.EntryStatistics
	ruleStats models.RuleStatistics

	status string
	errMsg string
	busy   bool

	detail   bool
	infoView bool

	importStage importStage
	importKinds []importKind
	importIdx   int
	pathInput   textinput.Model

	exporting   bool
	exportInput textinput.Model
}

func newAppModel(ctx context.Context, services *service.Services, dataStore store.DataStore, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:         ctx,
		services:    services,
		store:       dataStore,
		buildInfo:   buildInfo,
		importKinds: []importKind{importEntries, importRules, importList},
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdReload()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesReloadedMsg:
		m.entries = msg.entries
		m.stats = msg.stats
		m.ruleStats = msg.rules
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case validationDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Validation failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Validated %d entries: %d valid, %d invalid", msg.stats.Total, msg.stats.Valid, msg.stats.Invalid)
		return m, m.cmdReload()

	case correctionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Correction failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.stats.Applied == 0 {
			m.status = "No corrections applied"
		} else {
			m.status = fmt.Sprintf("Applied %d corrections to %d entries", msg.stats.Applied, msg.stats.Total)
		}
		return m, m.cmdReload()

	case resetDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Reset failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.stats.Reset == 0 {
			m.status = "Nothing to reset"
		} else {
			m.status = fmt.Sprintf("Reset corrections on %d entries", msg.stats.Reset)
		}
		return m, m.cmdReload()

	case importDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Import failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Imported %d new values (%s)", msg.added, msg.kind.label())
		return m, m.cmdReload()

	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Entries exported"
		return m, nil

	case saveDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Workspace saved"
		return m, nil

	case deleteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Entry deleted"
		return m, m.cmdReload()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.importStage == importStagePath {
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(msg)
			return m, cmd
		}
		if m.exporting {
			var cmd tea.Cmd
			m.exportInput, cmd = m.exportInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.importStage != importStageNone {
		return m.updateImport(keyMsg)
	}
	if m.exporting {
		return m.updateExport(keyMsg)
	}
	if m.infoView {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.info) {
			m.infoView = false
		}
		return m, nil
	}
	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateTable(keyMsg)
}

func (m appModel) updateTable(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.colIdx > 0 {
			m.colIdx--
		}
	case key.Matches(keyMsg, keys.right):
		if m.colIdx < len(tableColumns)-1 {
			m.colIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No entries"
			return m, nil
		}
		m.detail = true
	case key.Matches(keyMsg, keys.validate):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Validating..."
		m.errMsg = ""
		return m, m.cmdValidate()
	case key.Matches(keyMsg, keys.apply):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Applying corrections..."
		m.errMsg = ""
		return m, m.cmdApply()
	case key.Matches(keyMsg, keys.reset):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Resetting corrections..."
		m.errMsg = ""
		return m, m.cmdReset()
	case key.Matches(keyMsg, keys.imports):
		m.importStage = importStageKind
		m.importIdx = 0
		return m, nil
	case key.Matches(keyMsg, keys.export):
		m.exporting = true
		m.exportInput = newPathInput("chests.txt")
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Saving workspace..."
		m.errMsg = ""
		return m, m.cmdSave()
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		text := m.cellValue(entry)
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %s", tableColumns[m.colIdx])
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.current()
		if !ok {
			m.status = "No entries"
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdDelete(entry.ID)
	case key.Matches(keyMsg, keys.info):
		m.infoView = true
	}

	return m, nil
}

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.detail = false
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		errs := m.services.ValidationService.GetValidationErrors(entry.ID)
		text := strings.Join(errs, "\n")
		if text == "" {
			text = m.cellValue(entry)
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
	case key.Matches(keyMsg, keys.delete):
		if m.busy {
			return m, nil
		}
		m.detail = false
		m.busy = true
		m.errMsg = ""
		return m, m.cmdDelete(entry.ID)
	}

	return m, nil
}

func (m appModel) updateImport(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.importStage == importStageKind {
		switch keyMsg.String() {
		case "1", "2", "3":
			m.importIdx = int(keyMsg.String()[0] - '1')
			m.importStage = importStagePath
			m.pathInput = newPathInput("/path/to/file")
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
			m.importStage = importStageNone
		case key.Matches(keyMsg, keys.up):
			if m.importIdx > 0 {
				m.importIdx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.importIdx < len(m.importKinds)-1 {
				m.importIdx++
			}
		case key.Matches(keyMsg, keys.enter):
			m.importStage = importStagePath
			m.pathInput = newPathInput("/path/to/file")
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.importStage = importStageNone
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			m.errMsg = "A file path is required"
			return m, nil
		}
		kind := m.importKinds[m.importIdx]
		m.importStage = importStageNone
		m.busy = true
		m.errMsg = ""
		m.status = "Importing..."
		return m, m.cmdImport(kind, path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateExport(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.exporting = false
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.exportInput.Value())
		if path == "" {
			m.errMsg = "A file path is required"
			return m, nil
		}
		m.exporting = false
		m.busy = true
		m.errMsg = ""
		m.status = "Exporting..."
		return m, m.cmdExport(path)
	}

	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(keyMsg)
	return m, cmd
}

// ─── commands ───

func (m appModel) cmdReload() tea.Cmd {
	dataStore := m.store

	return func() tea.Msg {
		return entriesReloadedMsg{
			entries: dataStore.GetEntries(),
			stats:   dataStore.GetEntryStatistics(),
			rules:   dataStore.GetCorrectionRuleStatistics(),
		}
	}
}

func (m appModel) cmdValidate() tea.Cmd {
	svc := m.services.ValidationService

	return func() tea.Msg {
		stats, err := svc.ValidateEntries()
		return validationDoneMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdApply() tea.Cmd {
	svc := m.services.CorrectionService

	return func() tea.Msg {
		stats, err := svc.ApplyCorrections()
		return correctionDoneMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdReset() tea.Cmd {
	svc := m.services.CorrectionService

	return func() tea.Msg {
		stats, err := svc.ResetCorrections()
		return resetDoneMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdImport(kind importKind, path string) tea.Cmd {
	svc := m.services.WorkspaceService

	return func() tea.Msg {
		var added int
		var err error

		switch kind {
		case importEntries:
			added, err = svc.ImportEntries(path)
		case importRules:
			added, err = svc.ImportCorrectionRules(path)
		case importList:
			added, err = svc.ImportValidationList(path)
		}

		return importDoneMsg{kind: kind, added: added, err: err}
	}
}

func (m appModel) cmdExport(path string) tea.Cmd {
	svc := m.services.WorkspaceService

	return func() tea.Msg {
		return exportDoneMsg{err: svc.ExportEntries(path)}
	}
}

func (m appModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	svc := m.services.WorkspaceService

	return func() tea.Msg {
		return saveDoneMsg{err: svc.SaveWorkspace(ctx)}
	}
}

func (m appModel) cmdDelete(id int64) tea.Cmd {
	dataStore := m.store

	return func() tea.Msg {
		return deleteDoneMsg{err: dataStore.DeleteEntry(id)}
	}
}

// ─── views ───

func (m appModel) View() string {
	switch {
	case m.importStage == importStageKind:
		return m.viewImportKind()
	case m.importStage == importStagePath:
		return m.viewImportPath()
	case m.exporting:
		return m.viewExport()
	case m.infoView:
		return renderBuildInfoWindow(m.buildInfo)
	case m.detail:
		return m.viewDetail()
	default:
		return m.viewTable()
	}
}

func (m appModel) viewTable() string {
	out := ""

	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	if len(m.entries) == 0 {
		out += "No entries loaded. Press i to import a chest log.\n"
	} else {
		out += "     │ Chest type           │ Player           │ Source           │ Date       │ Status\n"
		out += "─────┼──────────────────────┼──────────────────┼──────────────────┼────────────┼──────────\n"
		for i, entry := range m.entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			statusCell := renderStatus(entry.Status, fmt.Sprintf("%-9s", entry.Status))
			out += fmt.Sprintf(
				"%s %-3d│ %-20s │ %-16s │ %-16s │ %-10s │ %s\n",
				cursor,
				i+1,
				fitText(entry.ChestType, 20),
				fitText(entry.Player, 16),
				fitText(entry.Source, 16),
				valueOrDash(entry.Date),
				statusCell,
			)
		}
	}

	out += "\n" + m.viewFooter()

	hotKeys := fmt.Sprintf(
		"v: validate │ a: apply │ r: reset │ i: import │ x: export │ s: save │ c: copy %s │ enter: detail",
		tableColumns[m.colIdx],
	)
	return renderPage("CHEST ENTRIES", strings.TrimRight(out, "\n"), hotKeys)
}

func (m appModel) viewFooter() string {
	return fmt.Sprintf(
		"Entries: %d total │ %d pending │ %d invalid │ %d corrected │ Rules: %d (%d enabled)",
		m.stats.Total, m.stats.Pending, m.stats.Invalid, m.stats.Corrected,
		m.ruleStats.Total, m.ruleStats.Enabled,
	)
}

func (m appModel) viewDetail() string {
	entry, ok := m.current()
	if !ok {
		return renderPage("ENTRY", "Entry not found", "esc: back")
	}

	var b strings.Builder

	b.WriteString("[ ENTRY ]\n")
	b.WriteString("Chest type : " + entry.ChestType + "\n")
	b.WriteString("Player     : " + entry.Player + "\n")
	b.WriteString("Source     : " + valueOrDash(entry.Source) + "\n")
	b.WriteString("Date       : " + valueOrDash(entry.Date) + "\n")
	b.WriteString("Status     : " + renderStatus(entry.Status, string(entry.Status)) + "\n")

	if len(entry.ValidationErrors) > 0 {
		b.WriteString("\n[ VALIDATION ERRORS ]\n")
		for _, msg := range entry.ValidationErrors {
			b.WriteString(invalidStyle.Render("• "+msg) + "\n")
		}
	}

	if len(entry.OriginalValues) > 0 {
		b.WriteString("\n[ ORIGINAL VALUES ]\n")
		for _, field := range models.EntryFields {
			if original, ok := entry.OriginalValues[field]; ok {
				b.WriteString(fmt.Sprintf("%-10s : %s\n", field, original))
			}
		}
	}

	title := fmt.Sprintf("ENTRY %d/%d", m.idx+1, len(m.entries))
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "c: copy errors │ ctrl+d: delete │ ↑/↓: prev/next │ esc: back")
}

func (m appModel) viewImportKind() string {
	out := ""
	for i, kind := range m.importKinds {
		cursor := " "
		if i == m.importIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, kind.label())
	}

	return renderPage("IMPORT: SELECT FILE KIND", strings.TrimRight(out, "\n"), "1-3/enter: select │ ↑/↓: move │ esc: cancel")
}

func (m appModel) viewImportPath() string {
	out := "Kind : " + m.importKinds[m.importIdx].label() + "\n"
	out += "Path : [ " + m.pathInput.View() + " ]\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("IMPORT: FILE PATH", strings.TrimRight(out, "\n"), "enter: import │ esc: cancel")
}

func (m appModel) viewExport() string {
	out := "Path : [ " + m.exportInput.View() + " ]\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("EXPORT ENTRIES", strings.TrimRight(out, "\n"), "enter: export │ esc: cancel")
}

func (m appModel) current() (models.Entry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.Entry{}, false
	}
	return m.entries[m.idx], true
}

func (m appModel) cellValue(entry models.Entry) string {
	switch m.colIdx {
	case 0:
		return entry.ChestType
	case 1:
		return entry.Player
	case 2:
		return entry.Source
	case 3:
		return entry.Date
	default:
		return string(entry.Status)
	}
}

func newPathInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 54
	in.Focus()
	return in
}
