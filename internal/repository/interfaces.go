package repository

import (
	"context"
	"errors"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// LedgerEntry pairs a question with its recorded answer and the category it
// was attributed to when answered.
type LedgerEntry struct {
	Question string
	Category string
	Answer   domain.Answer
}

// AnswerRepo persists the answer ledger: one row per question prompt.
type AnswerRepo interface {
	Get(ctx context.Context, question string) (domain.Answer, error)
	List(ctx context.Context) (domain.Ledger, error)
	// ListByCategory returns the ledger restricted to one attributed category.
	ListByCategory(ctx context.Context, category string) (domain.Ledger, error)
	// RecentSubstantive returns up to limit substantive entries, newest
	// first by write time.
	RecentSubstantive(ctx context.Context, limit int) ([]LedgerEntry, error)
	Put(ctx context.Context, question, category string, a domain.Answer) error
	Delete(ctx context.Context, question string) error
	CountSubstantive(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// TrackerRepo persists per-category usage counters and priority weights.
type TrackerRepo interface {
	GetUsage(ctx context.Context) (map[string]domain.CategoryUsage, error)
	PutUsage(ctx context.Context, category string, u domain.CategoryUsage) error
	GetPriorities(ctx context.Context) (map[string]float64, error)
	PutPriority(ctx context.Context, category string, priority float64) error
	// EnsureDefaults inserts zero usage and default priority for any of the
	// given categories not yet tracked. Existing rows are left untouched.
	EnsureDefaults(ctx context.Context, categories []string) error
	Clear(ctx context.Context) error
}

// Setting keys used by the engine.
const (
	SettingLanguage     = "language"
	SettingUserID       = "user_id"
	SettingDarkMode     = "dark_mode"
	SettingTotalAnswers = "total_answers"
)

// SettingsRepo is a small key-value store for engine settings.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
