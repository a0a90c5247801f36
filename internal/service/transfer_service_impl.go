package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/db"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/importer"
	"github.com/hypatia-cli/hypatia/internal/repository"
)

type transferService struct {
	answers     repository.AnswerRepo
	tracker     repository.TrackerRepo
	settings    repository.SettingsRepo
	uow         db.UnitOfWork
	settingsSvc SettingsService
}

// NewTransferService builds the export/import layer. It reads the active
// language from settings at call time, so a bundle always matches the store
// it was cut from.
func NewTransferService(
	answers repository.AnswerRepo,
	tracker repository.TrackerRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	settingsSvc SettingsService,
) TransferService {
	return &transferService{
		answers:     answers,
		tracker:     tracker,
		settings:    settings,
		uow:         uow,
		settingsSvc: settingsSvc,
	}
}

func (s *transferService) Export(ctx context.Context, mode ExportMode, dir string) (string, error) {
	data, err := s.ExportBytes(ctx, mode)
	if err != nil {
		return "", err
	}
	userID, err := s.settingsSvc.UserID(ctx)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("hypatia_protocol_%s_%s_%s.json",
		userID, mode, time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func (s *transferService) ExportBytes(ctx context.Context, mode ExportMode) ([]byte, error) {
	b := s.activeBank(ctx)
	ledger, err := s.answers.List(ctx)
	if err != nil {
		return nil, err
	}
	usage, err := s.tracker.GetUsage(ctx)
	if err != nil {
		return nil, err
	}
	priorities, err := s.tracker.GetPriorities(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := s.settingsSvc.UserID(ctx)
	if err != nil {
		return nil, err
	}

	bundle := importer.Bundle{
		Answers:      make(map[string]*string, len(ledger)),
		Usage:        make(map[string]importer.UsageEntry, len(usage)),
		Priorities:   priorities,
		Language:     string(b.Language()),
		TotalAnswers: s.totalAnswers(ctx, ledger),
		UserID:       userID,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if mode == ExportManual {
		bundle.Version = Version
	}
	marker := b.SkipMarker()
	for q, a := range ledger {
		v := a.WireValue(marker)
		bundle.Answers[q] = &v
	}
	for key, u := range usage {
		bundle.Usage[key] = importer.UsageEntry{
			Count:                  u.Count,
			LastUsedAtTotalAnswers: u.LastUsedAtTotalAnswers,
		}
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bundle: %w", err)
	}
	return data, nil
}

func (s *transferService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	doc, err := importer.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, doc)
}

func (s *transferService) ImportBytes(ctx context.Context, data []byte) (*ImportResult, error) {
	doc, err := importer.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, doc)
}

// apply merges a parsed document into the store in one transaction. Full
// bundles merge with imported values winning collisions; legacy documents
// replace the ledger and reset the tracker outright.
func (s *transferService) apply(ctx context.Context, doc *importer.Document) (*ImportResult, error) {
	b := s.activeBank(ctx)
	if lang, err := domain.ParseLanguage(doc.Bundle.Language); err == nil && !doc.Legacy {
		b = bank.ForLanguage(lang)
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		answers := repository.NewSQLiteAnswerRepo(tx)
		tracker := repository.NewSQLiteTrackerRepo(tx)
		settings := repository.NewSQLiteSettingsRepo(tx)

		if doc.Legacy {
			if err := answers.Clear(ctx); err != nil {
				return err
			}
			if err := tracker.Clear(ctx); err != nil {
				return err
			}
		}

		for q, v := range doc.Bundle.Answers {
			a := domain.Skip()
			if v != nil {
				a = domain.ParseWireValue(*v)
			}
			key, ok := b.CategoryOf(q)
			if !ok {
				key = domain.GeneratedCategoryKey
			}
			if err := answers.Put(ctx, q, key, a); err != nil {
				return err
			}
		}

		if doc.Legacy {
			total := 0
			for _, v := range doc.Bundle.Answers {
				if v != nil && domain.ParseWireValue(*v).IsSubstantive() {
					total++
				}
			}
			if err := settings.Set(ctx, repository.SettingTotalAnswers, strconv.Itoa(total)); err != nil {
				return err
			}
		} else {
			for key, u := range doc.Bundle.Usage {
				cu := domain.CategoryUsage{
					Count:                  u.Count,
					LastUsedAtTotalAnswers: u.LastUsedAtTotalAnswers,
				}
				if err := tracker.PutUsage(ctx, key, cu); err != nil {
					return err
				}
			}
			for key, p := range doc.Bundle.Priorities {
				if err := tracker.PutPriority(ctx, key, p); err != nil {
					return err
				}
			}
			if doc.Bundle.Language != "" {
				if err := settings.Set(ctx, repository.SettingLanguage, string(b.Language())); err != nil {
					return err
				}
			}
			total := doc.Bundle.TotalAnswers
			if total <= 0 {
				var err error
				if total, err = answers.CountSubstantive(ctx); err != nil {
					return err
				}
			}
			if err := settings.Set(ctx, repository.SettingTotalAnswers, strconv.Itoa(total)); err != nil {
				return err
			}
			if doc.Bundle.UserID != "" {
				if err := settings.Set(ctx, repository.SettingUserID, doc.Bundle.UserID); err != nil {
					return err
				}
			}
		}

		// Categories missing from the document fall back to zero usage and
		// default priority.
		keys := make([]string, 0, len(b.Categories()))
		for _, c := range b.Categories() {
			keys = append(keys, c.Key)
		}
		return tracker.EnsureDefaults(ctx, keys)
	})
	if err != nil {
		return nil, fmt.Errorf("applying import: %w", err)
	}

	return &ImportResult{
		Entries:  len(doc.Bundle.Answers),
		Dropped:  len(doc.Warnings),
		Warnings: doc.Warnings,
		Legacy:   doc.Legacy,
		Language: b.Language(),
	}, nil
}

// activeBank resolves the bank for the persisted language setting.
func (s *transferService) activeBank(ctx context.Context) *bank.Bank {
	return bank.ForLanguage(s.settingsSvc.Language(ctx))
}

// totalAnswers prefers the persisted counter, falling back to a ledger count
// when the setting has never been written.
func (s *transferService) totalAnswers(ctx context.Context, ledger domain.Ledger) int {
	if raw, err := s.settings.Get(ctx, repository.SettingTotalAnswers); err == nil {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return ledger.SubstantiveCount()
}
