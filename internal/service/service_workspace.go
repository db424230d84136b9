package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chest-tracker/internal/logger"
	"github.com/MKhiriev/chest-tracker/internal/store"
	"github.com/MKhiriev/chest-tracker/models"
)

const (
	workspaceSource  = "workspace"
	fileLoaderSource = "file_loader"
)

type workspaceService struct {
	store  store.DataStore
	repo   store.WorkspaceRepository
	loader FileLoader
	logger *logger.Logger
}

// NewWorkspaceService wires persistence and file interchange. repo may be
// nil when workspace persistence is disabled; Load/Save then become no-ops.
func NewWorkspaceService(dataStore store.DataStore, repo store.WorkspaceRepository, loader FileLoader, log *logger.Logger) WorkspaceService {
	return &workspaceService{store: dataStore, repo: repo, loader: loader, logger: log}
}

// LoadWorkspace restores all three collections from the workspace database.
func (s *workspaceService) LoadWorkspace(ctx context.Context) error {
	log := s.logger.With().Str("func", "workspaceService.LoadWorkspace").Logger()
	if s.repo == nil {
		log.Debug().Msg("workspace persistence disabled, nothing to load")
		return nil
	}

	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	rules, err := s.repo.LoadCorrectionRules(ctx)
	if err != nil {
		return fmt.Errorf("load correction rules: %w", err)
	}
	lists, err := s.repo.LoadValidationLists(ctx)
	if err != nil {
		return fmt.Errorf("load validation lists: %w", err)
	}

	if err = s.store.SetEntries(entries, workspaceSource); err != nil {
		return fmt.Errorf("restore entries: %w", err)
	}
	if err = s.store.SetCorrectionRules(rules, workspaceSource); err != nil {
		return fmt.Errorf("restore correction rules: %w", err)
	}
	for _, list := range lists {
		if err = s.store.SetValidationList(list, workspaceSource); err != nil {
			return fmt.Errorf("restore %s list: %w", list.Category, err)
		}
	}

	log.Info().
		Int("entries", len(entries)).
		Int("rules", len(rules)).
		Msg("workspace loaded")
	return nil
}

// SaveWorkspace writes all three collections to the workspace database.
func (s *workspaceService) SaveWorkspace(ctx context.Context) error {
	log := s.logger.With().Str("func", "workspaceService.SaveWorkspace").Logger()
	if s.repo == nil {
		log.Debug().Msg("workspace persistence disabled, nothing to save")
		return nil
	}

	if err := s.repo.SaveEntries(ctx, s.store.GetEntries()); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	if err := s.repo.SaveCorrectionRules(ctx, s.store.GetCorrectionRules()); err != nil {
		return fmt.Errorf("save correction rules: %w", err)
	}

	lists := make([]models.ValidationList, 0, len(models.ListCategories()))
	for _, category := range models.ListCategories() {
		list, err := s.store.GetValidationList(category)
		if err != nil {
			return fmt.Errorf("read %s list: %w", category, err)
		}
		lists = append(lists, list)
	}
	if err := s.repo.SaveValidationLists(ctx, lists); err != nil {
		return fmt.Errorf("save validation lists: %w", err)
	}

	log.Debug().Msg("workspace saved")
	return nil
}

// ImportEntries merges entries parsed from a chest report file into the
// collection, skipping entries already present. Returns the number added.
func (s *workspaceService) ImportEntries(path string) (int, error) {
	parsed, err := s.loader.ParseEntriesFile(path)
	if err != nil {
		return 0, fmt.Errorf("parse entries file: %w", err)
	}

	entries := s.store.GetEntries()
	known := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		known[entry.ID] = struct{}{}
	}

	added := 0
	for _, entry := range parsed {
		if _, dup := known[entry.ID]; dup {
			continue
		}
		known[entry.ID] = struct{}{}
		entries = append(entries, entry)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err = s.store.SetEntries(entries, fileLoaderSource); err != nil {
		return 0, fmt.Errorf("store imported entries: %w", err)
	}
	return added, nil
}

// ImportCorrectionRules merges rules parsed from a CSV file, skipping rules
// already present. Returns the number added.
func (s *workspaceService) ImportCorrectionRules(path string) (int, error) {
	parsed, err := s.loader.ParseCorrectionRulesFile(path)
	if err != nil {
		return 0, fmt.Errorf("parse rules file: %w", err)
	}

	rules := s.store.GetCorrectionRules()
	known := make(map[int64]struct{}, len(rules))
	for _, rule := range rules {
		known[rule.ID] = struct{}{}
	}

	added := 0
	for _, rule := range parsed {
		if _, dup := known[rule.ID]; dup {
			continue
		}
		known[rule.ID] = struct{}{}
		rules = append(rules, rule)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err = s.store.SetCorrectionRules(rules, fileLoaderSource); err != nil {
		return 0, fmt.Errorf("store imported rules: %w", err)
	}
	return added, nil
}

// ImportValidationList merges values parsed from a list CSV file into the
// matching category list. Returns the number of new values.
func (s *workspaceService) ImportValidationList(path string) (int, error) {
	parsed, err := s.loader.ParseValidationListFile(path)
	if err != nil {
		return 0, fmt.Errorf("parse list file: %w", err)
	}

	current, err := s.store.GetValidationList(parsed.Category)
	if err != nil {
		return 0, fmt.Errorf("read %s list: %w", parsed.Category, err)
	}

	added := 0
	for _, entry := range parsed.Entries {
		if current.Contains(entry.Value) {
			continue
		}
		current.Entries = append(current.Entries, entry)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err = s.store.SetValidationList(current, fileLoaderSource); err != nil {
		return 0, fmt.Errorf("store imported list: %w", err)
	}
	return added, nil
}

// ExportEntries writes the whole entry collection to a chest report file.
func (s *workspaceService) ExportEntries(path string) error {
	if err := s.loader.SaveEntriesFile(path, s.store.GetEntries()); err != nil {
		return fmt.Errorf("export entries: %w", err)
	}
	return nil
}
