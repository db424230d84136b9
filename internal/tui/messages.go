package tui

import "github.com/MKhiriev/chest-tracker/models"

type entriesReloadedMsg struct {
	entries []models.Entry
	stats   models.EntryStatistics
	rules   models.RuleStatistics
}

type validationDoneMsg struct {
	stats models.ValidationStats
	err   error
}

type correctionDoneMsg struct {
	stats models.CorrectionStats
	err   error
}

type resetDoneMsg struct {
	stats models.ResetStats
	err   error
}

type importDoneMsg struct {
	kind  importKind
	added int
	err   error
}

type exportDoneMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}
