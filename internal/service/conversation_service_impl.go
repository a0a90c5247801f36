package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/db"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/generation"
	"github.com/hypatia-cli/hypatia/internal/repository"
	"github.com/hypatia-cli/hypatia/internal/scheduler"
)

// summaryInterval is how many substantive answers pass between recaps.
const summaryInterval = 7

// recentWindow bounds how many recently-asked categories are remembered for
// generation's exclusion list.
const recentWindow = 4

// minSummaryAnswerRunes filters summary candidates down to answers long
// enough to recap meaningfully.
const minSummaryAnswerRunes = 10

type conversationService struct {
	qbank    *bank.Bank
	answers  repository.AnswerRepo
	tracker  repository.TrackerRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork

	current      *Prompt
	followUpKey  string // real category behind an active follow-up prompt
	totalAnswers int
	recent       []string
	autoExported bool
}

// NewConversationService builds the turn-taking engine over the given bank
// and persistence layer.
func NewConversationService(
	b *bank.Bank,
	answers repository.AnswerRepo,
	tracker repository.TrackerRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
) ConversationService {
	return &conversationService{
		qbank:    b,
		answers:  answers,
		tracker:  tracker,
		settings: settings,
		uow:      uow,
	}
}

func (s *conversationService) Bank() *bank.Bank { return s.qbank }

func (s *conversationService) Current() *Prompt { return s.current }

func (s *conversationService) TotalAnswers() int { return s.totalAnswers }

func (s *conversationService) Start(ctx context.Context) (*Turn, error) {
	if err := s.tracker.EnsureDefaults(ctx, s.categoryKeys()); err != nil {
		return nil, fmt.Errorf("seeding tracker: %w", err)
	}
	ledger, err := s.answers.List(ctx)
	if err != nil {
		return nil, err
	}
	s.totalAnswers = ledger.SubstantiveCount()
	if err := s.persistTotal(ctx); err != nil {
		return nil, err
	}
	s.recent = nil
	s.followUpKey = ""
	return s.nextMain(ctx, nil)
}

func (s *conversationService) Submit(ctx context.Context, answer string) (*Turn, error) {
	if s.current == nil {
		return nil, ErrNoPendingQuestion
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil, ErrEmptyAnswer
	}

	p := *s.current
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		answers := repository.NewSQLiteAnswerRepo(tx)
		tracker := repository.NewSQLiteTrackerRepo(tx)
		settings := repository.NewSQLiteSettingsRepo(tx)

		if err := answers.Put(ctx, p.Question, p.CategoryKey, domain.Answered(trimmed)); err != nil {
			return err
		}
		priorities, err := tracker.GetPriorities(ctx)
		if err != nil {
			return err
		}
		for _, key := range domain.ApplyBoostRules(s.qbank.Rules(), trimmed, p.CategoryKey, priorities) {
			if err := tracker.PutPriority(ctx, key, priorities[key]); err != nil {
				return err
			}
		}
		return settings.Set(ctx, repository.SettingTotalAnswers, strconv.Itoa(s.totalAnswers+1))
	})
	if err != nil {
		return nil, fmt.Errorf("recording answer: %w", err)
	}
	s.totalAnswers++

	switch p.Stage {
	case StageFollowUp:
		base := s.followUpKey
		s.followUpKey = ""
		if base != "" && s.qbank.IsPositive(trimmed) {
			return s.elaborate(base)
		}
		return s.nextMain(ctx, nil)
	case StageSummary:
		return s.nextMain(ctx, nil)
	case StageElaboration:
		if s.totalAnswers%summaryInterval == 0 {
			return s.summarize(ctx, nil)
		}
		return s.nextMain(ctx, nil)
	case StageMain, StageGenerated:
		s.remember(p.CategoryKey)
		ledger, err := s.answers.List(ctx)
		if err != nil {
			return nil, err
		}
		c, known := s.qbank.Category(p.CategoryKey)
		if known && scheduler.CategoryComplete(c, ledger) {
			return s.summarize(ctx, nil)
		}
		if s.totalAnswers%summaryInterval == 0 {
			return s.summarize(ctx, nil)
		}
		if known {
			return s.followUp(c)
		}
		return s.nextMain(ctx, nil)
	default:
		return s.nextMain(ctx, nil)
	}
}

func (s *conversationService) Skip(ctx context.Context) (*Turn, error) {
	if s.current == nil {
		return &Turn{}, nil
	}
	p := *s.current
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		answers := repository.NewSQLiteAnswerRepo(tx)
		tracker := repository.NewSQLiteTrackerRepo(tx)

		if err := answers.Put(ctx, p.Question, p.CategoryKey, domain.Skip()); err != nil {
			return err
		}
		priorities, err := tracker.GetPriorities(ctx)
		if err != nil {
			return err
		}
		// Synthetic categories carry no tracker row and decay nothing.
		if prio, ok := priorities[p.CategoryKey]; ok {
			return tracker.PutPriority(ctx, p.CategoryKey, domain.DecayPriority(prio))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording skip: %w", err)
	}
	s.followUpKey = ""
	return s.nextMain(ctx, nil)
}

func (s *conversationService) Retry(ctx context.Context, question string) (*Turn, error) {
	if err := s.answers.Delete(ctx, question); err != nil {
		return nil, err
	}
	key, known := s.qbank.CategoryOf(question)
	if !known {
		key = domain.GeneratedCategoryKey
	}
	prompt := &Prompt{
		Question:    question,
		CategoryKey: key,
		Kind:        domain.InputText,
		Stage:       StageMain,
	}
	if c, ok := s.qbank.Category(key); ok {
		prompt.CategoryTitle = c.CleanTitle()
		prompt.Kind = c.Kind
		prompt.Options = c.Options
	} else {
		prompt.Stage = StageGenerated
	}
	s.current = prompt
	s.followUpKey = ""
	return &Turn{Prompt: prompt}, nil
}

func (s *conversationService) SetLanguage(ctx context.Context, lang domain.Language) (*Turn, error) {
	if err := s.settings.Set(ctx, repository.SettingLanguage, string(lang)); err != nil {
		return nil, err
	}
	s.qbank = bank.ForLanguage(lang)
	if err := s.tracker.EnsureDefaults(ctx, s.categoryKeys()); err != nil {
		return nil, err
	}
	s.recent = nil
	s.followUpKey = ""
	return s.nextMain(ctx, nil)
}

func (s *conversationService) Reset(ctx context.Context) (*Turn, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		answers := repository.NewSQLiteAnswerRepo(tx)
		tracker := repository.NewSQLiteTrackerRepo(tx)
		settings := repository.NewSQLiteSettingsRepo(tx)

		if err := answers.Clear(ctx); err != nil {
			return err
		}
		if err := tracker.Clear(ctx); err != nil {
			return err
		}
		if err := settings.Delete(ctx, repository.SettingTotalAnswers); err != nil {
			return err
		}
		// The language setting survives a reset; the user id does not, so
		// the next export belongs to a fresh identity.
		if err := settings.Delete(ctx, repository.SettingUserID); err != nil {
			return err
		}
		return tracker.EnsureDefaults(ctx, s.categoryKeys())
	})
	if err != nil {
		return nil, fmt.Errorf("resetting state: %w", err)
	}
	s.totalAnswers = 0
	s.recent = nil
	s.followUpKey = ""
	s.autoExported = false
	return s.nextMain(ctx, []string{s.qbank.UI().ResetDone})
}

func (s *conversationService) Transcript(ctx context.Context) ([]TranscriptEntry, error) {
	ledger, err := s.answers.List(ctx)
	if err != nil {
		return nil, err
	}
	var entries []TranscriptEntry
	seen := make(map[string]struct{}, len(ledger))
	for _, c := range s.qbank.Categories() {
		for _, q := range c.Questions {
			a, ok := ledger[q]
			if !ok {
				continue
			}
			entries = append(entries, TranscriptEntry{
				Question:      q,
				CategoryTitle: c.CleanTitle(),
				Answer:        a,
			})
			seen[q] = struct{}{}
		}
	}
	// Follow-ups, summaries, and generated prompts fall outside the bank;
	// append them in stable order after the bank questions.
	var extra []string
	for q := range ledger {
		if _, ok := seen[q]; !ok {
			extra = append(extra, q)
		}
	}
	sort.Strings(extra)
	for _, q := range extra {
		entries = append(entries, TranscriptEntry{Question: q, Answer: ledger[q]})
	}
	return entries, nil
}

// nextMain runs one scheduler pass, records the selection in the usage
// tracker, and falls through to generation once the bank is exhausted.
func (s *conversationService) nextMain(ctx context.Context, notices []string) (*Turn, error) {
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

	sel, ok := scheduler.SelectNext(s.qbank.Categories(), ledger, usage, priorities, s.totalAnswers)
	if !ok {
		return s.exhausted(ctx, ledger, priorities, notices)
	}
	if err := s.recordUsage(ctx, sel.CategoryKey, usage[sel.CategoryKey]); err != nil {
		return nil, err
	}

	c, _ := s.qbank.Category(sel.CategoryKey)
	s.current = &Prompt{
		Question:      sel.Question,
		CategoryKey:   c.Key,
		CategoryTitle: c.CleanTitle(),
		Kind:          c.Kind,
		Options:       c.Options,
		Stage:         StageMain,
	}
	return &Turn{Notices: notices, Prompt: s.current}, nil
}

// exhausted handles the post-bank flow: announce the milestone, trigger the
// once-per-session auto-export, and synthesize a question from answer
// content where enough of it exists.
func (s *conversationService) exhausted(ctx context.Context, ledger domain.Ledger, priorities map[string]float64, notices []string) (*Turn, error) {
	ui := s.qbank.UI()
	notices = append(notices, ui.EndOfQuestions)

	turn := &Turn{}
	if !s.autoExported {
		s.autoExported = true
		turn.AutoExport = true
	}

	if ledger.SubstantiveCount() < generation.MinSubstantiveAnswers {
		notices = append(notices, ui.NotEnoughData, ui.AllExplored)
		s.fallbackPrompt(ui.GenericNewQuestion)
		turn.Notices = notices
		turn.Prompt = s.current
		return turn, nil
	}

	token, ok := generation.TopToken(ledger, s.qbank.StopWords())
	if !ok {
		s.fallbackPrompt(ui.GenericNewQuestion)
		turn.Notices = notices
		turn.Prompt = s.current
		return turn, nil
	}

	if key, matched := generation.MatchCategory(token, s.qbank.Categories(), s.recent, priorities); matched {
		c, _ := s.qbank.Category(key)
		if qi := pendingIndex(c, ledger); qi >= 0 {
			usage, err := s.tracker.GetUsage(ctx)
			if err != nil {
				return nil, err
			}
			if err := s.recordUsage(ctx, key, usage[key]); err != nil {
				return nil, err
			}
			s.current = &Prompt{
				Question:      c.Questions[qi],
				CategoryKey:   c.Key,
				CategoryTitle: c.CleanTitle(),
				Kind:          c.Kind,
				Options:       c.Options,
				Stage:         StageGenerated,
			}
			turn.Notices = notices
			turn.Prompt = s.current
			return turn, nil
		}
	}

	s.fallbackPrompt(s.qbank.GeneratedPrompt(token))
	turn.Notices = notices
	turn.Prompt = s.current
	return turn, nil
}

// summarize recaps the most recent sufficiently long answer and hands the
// turn back as a confirmation prompt.
func (s *conversationService) summarize(ctx context.Context, notices []string) (*Turn, error) {
	recent, err := s.answers.RecentSubstantive(ctx, 10)
	if err != nil {
		return nil, err
	}
	text := s.qbank.GenericSummary()
	for _, e := range recent {
		if len([]rune(e.Answer.Value)) <= minSummaryAnswerRunes {
			continue
		}
		key := e.Category
		if k, ok := s.qbank.CategoryOf(e.Question); ok {
			key = k
		}
		if t, ok := s.qbank.Summary(key, e.Answer.Value); ok {
			text = t
		}
		break
	}
	s.current = &Prompt{
		Question:    text,
		CategoryKey: domain.SummaryCategoryKey,
		Kind:        domain.InputText,
		Stage:       StageSummary,
	}
	s.followUpKey = ""
	return &Turn{Notices: notices, Prompt: s.current}, nil
}

func (s *conversationService) followUp(c domain.Category) (*Turn, error) {
	s.current = &Prompt{
		Question:    s.qbank.FollowUpPrompt(c),
		CategoryKey: c.Key + domain.FollowUpSuffix,
		Kind:        domain.InputText,
		Stage:       StageFollowUp,
	}
	s.followUpKey = c.Key
	return &Turn{Prompt: s.current}, nil
}

func (s *conversationService) elaborate(baseKey string) (*Turn, error) {
	s.current = &Prompt{
		Question:    s.qbank.UI().ElaborationPrompt,
		CategoryKey: baseKey + domain.ElaborationSuffix,
		Kind:        domain.InputText,
		Stage:       StageElaboration,
	}
	return &Turn{Prompt: s.current}, nil
}

func (s *conversationService) fallbackPrompt(question string) {
	s.current = &Prompt{
		Question:    question,
		CategoryKey: domain.GeneratedCategoryKey,
		Kind:        domain.InputText,
		Stage:       StageFallback,
	}
}

// recordUsage bumps the category's presentation count and stamps the current
// answer total, inside its own transaction.
func (s *conversationService) recordUsage(ctx context.Context, key string, u domain.CategoryUsage) error {
	u.Count++
	u.LastUsedAtTotalAnswers = s.totalAnswers
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTrackerRepo(tx).PutUsage(ctx, key, u)
	})
	if err != nil {
		return fmt.Errorf("recording usage: %w", err)
	}
	return nil
}

func (s *conversationService) persistTotal(ctx context.Context) error {
	return s.settings.Set(ctx, repository.SettingTotalAnswers, strconv.Itoa(s.totalAnswers))
}

func (s *conversationService) remember(key string) {
	if _, ok := s.qbank.Category(key); !ok {
		return
	}
	s.recent = append(s.recent, key)
	if len(s.recent) > recentWindow {
		s.recent = s.recent[len(s.recent)-recentWindow:]
	}
}

func (s *conversationService) categoryKeys() []string {
	cats := s.qbank.Categories()
	keys := make([]string, 0, len(cats))
	for _, c := range cats {
		keys = append(keys, c.Key)
	}
	return keys
}

func pendingIndex(c domain.Category, ledger domain.Ledger) int {
	for i, q := range c.Questions {
		if ledger.Pending(q) {
			return i
		}
	}
	return -1
}
