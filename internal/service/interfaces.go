package service

import (
	"context"
	"errors"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/domain"
)

// Version is the wire version tag stamped on manual exports.
const Version = "1.0.0"

var (
	// ErrEmptyAnswer rejects an empty submission; nothing is mutated and the
	// same prompt stays pending.
	ErrEmptyAnswer = errors.New("empty answer")
	// ErrNoPendingQuestion is returned when an answer arrives with no active
	// prompt. Skips in the same situation are silently ignored.
	ErrNoPendingQuestion = errors.New("no pending question")
	// ErrNoAnswers signals an edit or report request against an empty ledger.
	ErrNoAnswers = errors.New("no answers recorded")
)

// Stage identifies what kind of prompt the conversation is waiting on.
type Stage int

const (
	// StageMain is a regular bank question chosen by the scheduler.
	StageMain Stage = iota
	// StageFollowUp is the generic "anything more on this topic?" prompt.
	StageFollowUp
	// StageElaboration asks for detail after an affirmative follow-up.
	StageElaboration
	// StageSummary is a recap expecting a short confirmation; it carries
	// follow-up semantics.
	StageSummary
	// StageGenerated is a post-exhaustion question synthesized from answer
	// content, attributed to a real category.
	StageGenerated
	// StageFallback is the templated or static prompt used when generation
	// has nothing better to offer.
	StageFallback
)

// Prompt is what the engine hands the rendering layer: the question text,
// the owning category, and how to collect the answer.
type Prompt struct {
	Question      string
	CategoryKey   string
	CategoryTitle string // empty for synthetic prompts
	Kind          domain.InputKind
	Options       []string
	Stage         Stage
}

// Turn is the result of one conversation event: optional engine notices to
// render before the next prompt, the prompt itself, and whether the
// once-per-session auto-export should fire now.
type Turn struct {
	Notices    []string
	Prompt     *Prompt
	AutoExport bool
}

// TranscriptEntry is one question/answer pair in replay order.
type TranscriptEntry struct {
	Question      string
	CategoryTitle string
	Answer        domain.Answer
}

// ConversationService is the turn-taking engine: it asks the scheduler for
// questions, records answers and skips, and interleaves follow-ups,
// elaborations, summaries, and generated questions.
type ConversationService interface {
	// Start loads persisted state, recomputes totalAnswersGiven from the
	// ledger, seeds tracker defaults, and returns the first prompt.
	Start(ctx context.Context) (*Turn, error)
	// Current returns the active prompt, or nil before Start.
	Current() *Prompt
	Submit(ctx context.Context, answer string) (*Turn, error)
	Skip(ctx context.Context) (*Turn, error)
	// Retry clears a skipped question's ledger entry and re-asks it
	// immediately.
	Retry(ctx context.Context, question string) (*Turn, error)
	SetLanguage(ctx context.Context, lang domain.Language) (*Turn, error)
	Reset(ctx context.Context) (*Turn, error)
	// Transcript reconstructs the chat history from the ledger in bank
	// declaration order (an approximation; exact turn order is not stored).
	Transcript(ctx context.Context) ([]TranscriptEntry, error)
	Bank() *bank.Bank
	TotalAnswers() int
}

// ExportMode distinguishes the automatic exhaustion export from a
// user-requested one; manual exports additionally carry the version tag.
type ExportMode string

const (
	ExportAuto   ExportMode = "auto"
	ExportManual ExportMode = "manual"
)

// ImportResult summarizes a completed import.
type ImportResult struct {
	Entries  int
	Dropped  int
	Warnings []string
	Legacy   bool
	Language domain.Language
}

// TransferService serializes the full persisted bundle to portable JSON and
// merges bundles back in.
type TransferService interface {
	// Export writes the bundle document into dir and returns the file path.
	Export(ctx context.Context, mode ExportMode, dir string) (string, error)
	// ExportBytes renders the bundle document without touching the
	// filesystem.
	ExportBytes(ctx context.Context, mode ExportMode) ([]byte, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportBytes(ctx context.Context, data []byte) (*ImportResult, error)
}

// ReportEntry is one answered question in the final report.
type ReportEntry struct {
	Question string
	Answer   string
}

// ReportSection groups report entries under a category title.
type ReportSection struct {
	Title   string
	Entries []ReportEntry
}

// ReportService renders the final report: answered, non-skipped entries
// grouped by category, with a trailing bucket for prompts outside the
// current bank.
type ReportService interface {
	Report(ctx context.Context) ([]ReportSection, error)
	// Skipped lists questions currently marked as skipped.
	Skipped(ctx context.Context) ([]string, error)
	// Answered lists questions with substantive answers, in bank order
	// followed by out-of-bank prompts.
	Answered(ctx context.Context) ([]ReportEntry, error)
	// EditAnswer replaces the recorded answer for an answered question.
	EditAnswer(ctx context.Context, question, value string) error
}

// SettingsService exposes persisted device settings.
type SettingsService interface {
	Language(ctx context.Context) domain.Language
	SetLanguage(ctx context.Context, lang domain.Language) error
	// UserID returns the persisted user id, generating and storing one on
	// first call.
	UserID(ctx context.Context) (string, error)
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, on bool) error
}
