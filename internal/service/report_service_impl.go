package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/db"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/repository"
)

type reportService struct {
	qbank   *bank.Bank
	answers repository.AnswerRepo
	uow     db.UnitOfWork
}

// NewReportService builds the read-mostly reporting layer.
func NewReportService(b *bank.Bank, answers repository.AnswerRepo, uow db.UnitOfWork) ReportService {
	return &reportService{qbank: b, answers: answers, uow: uow}
}

func (s *reportService) Report(ctx context.Context) ([]ReportSection, error) {
	ledger, err := s.answers.List(ctx)
	if err != nil {
		return nil, err
	}
	if ledger.SubstantiveCount() == 0 {
		return nil, ErrNoAnswers
	}

	var sections []ReportSection
	seen := make(map[string]struct{}, len(ledger))
	for _, c := range s.qbank.Categories() {
		var entries []ReportEntry
		for _, q := range c.Questions {
			a, ok := ledger[q]
			seen[q] = struct{}{}
			if !ok || !a.IsSubstantive() {
				continue
			}
			entries = append(entries, ReportEntry{Question: q, Answer: a.Value})
		}
		if len(entries) > 0 {
			sections = append(sections, ReportSection{Title: c.CleanTitle(), Entries: entries})
		}
	}

	var extra []ReportEntry
	for q, a := range ledger {
		if _, ok := seen[q]; ok || !a.IsSubstantive() {
			continue
		}
		extra = append(extra, ReportEntry{Question: q, Answer: a.Value})
	}
	if len(extra) > 0 {
		sort.Slice(extra, func(i, j int) bool { return extra[i].Question < extra[j].Question })
		sections = append(sections, ReportSection{Title: s.qbank.UI().OtherAnswers, Entries: extra})
	}
	return sections, nil
}

func (s *reportService) Skipped(ctx context.Context) ([]string, error) {
	ledger, err := s.answers.List(ctx)
	if err != nil {
		return nil, err
	}
	var skipped []string
	for q, a := range ledger {
		if a.Skipped {
			skipped = append(skipped, q)
		}
	}
	// Bank declaration order first, then anything synthetic.
	sort.Slice(skipped, func(i, j int) bool {
		oi, oj := s.bankOrder(skipped[i]), s.bankOrder(skipped[j])
		if oi != oj {
			return oi < oj
		}
		return skipped[i] < skipped[j]
	})
	return skipped, nil
}

func (s *reportService) Answered(ctx context.Context) ([]ReportEntry, error) {
	sections, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	var entries []ReportEntry
	for _, sec := range sections {
		entries = append(entries, sec.Entries...)
	}
	return entries, nil
}

func (s *reportService) EditAnswer(ctx context.Context, question, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ErrEmptyAnswer
	}
	a, err := s.answers.Get(ctx, question)
	if err != nil {
		return err
	}
	if a.Skipped {
		return fmt.Errorf("question %q is skipped, not answered: %w", question, repository.ErrNotFound)
	}
	key, ok := s.qbank.CategoryOf(question)
	if !ok {
		key = domain.GeneratedCategoryKey
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteAnswerRepo(tx).Put(ctx, question, key, domain.Answered(trimmed))
	})
	if err != nil {
		return fmt.Errorf("editing answer: %w", err)
	}
	return nil
}

// bankOrder returns the global declaration index of a question, or a large
// sentinel for prompts outside the bank.
func (s *reportService) bankOrder(question string) int {
	i := 0
	for _, c := range s.qbank.Categories() {
		for _, q := range c.Questions {
			if q == question {
				return i
			}
			i++
		}
	}
	return 1 << 30
}
