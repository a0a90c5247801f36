package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/repository"
	"github.com/hypatia-cli/hypatia/internal/testutil"
)

type engineFixture struct {
	db       *sql.DB
	bank     *bank.Bank
	answers  *repository.SQLiteAnswerRepo
	tracker  *repository.SQLiteTrackerRepo
	settings *repository.SQLiteSettingsRepo
	conv     ConversationService
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	b := bank.ForLanguage(domain.LangEnglish)
	f := &engineFixture{
		db:       database,
		bank:     b,
		answers:  repository.NewSQLiteAnswerRepo(database),
		tracker:  repository.NewSQLiteTrackerRepo(database),
		settings: repository.NewSQLiteSettingsRepo(database),
	}
	f.conv = NewConversationService(b, f.answers, f.tracker, f.settings, testutil.NewTestUoW(database))
	return f
}

func TestConversation_StartAsksFirstDeclaredCategory(t *testing.T) {
	f := newEngineFixture(t)
	turn, err := f.conv.Start(context.Background())
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)

	assert.Equal(t, "personal_data", turn.Prompt.CategoryKey)
	assert.Equal(t, "What is your name?", turn.Prompt.Question)
	assert.Equal(t, StageMain, turn.Prompt.Stage)
	assert.Equal(t, "Personal Data", turn.Prompt.CategoryTitle)
}

func TestConversation_StartRecordsUsage(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)

	usage, err := f.tracker.GetUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, usage["personal_data"].Count)
}

func TestConversation_SubmitLeadsToFollowUp(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)

	turn, err := f.conv.Submit(ctx, "Hypatia of Alexandria")
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)

	assert.Equal(t, StageFollowUp, turn.Prompt.Stage)
	assert.Contains(t, turn.Prompt.Question, "Personal Data")
	assert.Equal(t, "personal_data"+domain.FollowUpSuffix, turn.Prompt.CategoryKey)
	assert.Equal(t, 1, f.conv.TotalAnswers())

	a, err := f.answers.Get(ctx, "What is your name?")
	require.NoError(t, err)
	assert.Equal(t, "Hypatia of Alexandria", a.Value)
}

func TestConversation_NegativeFollowUpMovesOn(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)
	_, err = f.conv.Submit(ctx, "my name")
	require.NoError(t, err)

	turn, err := f.conv.Submit(ctx, "no, nothing else")
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, StageMain, turn.Prompt.Stage)
}

func TestConversation_AffirmativeFollowUpElaborates(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)
	_, err = f.conv.Submit(ctx, "my name")
	require.NoError(t, err)

	turn, err := f.conv.Submit(ctx, "yes, there is more")
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, StageElaboration, turn.Prompt.Stage)
	assert.Equal(t, "personal_data"+domain.ElaborationSuffix, turn.Prompt.CategoryKey)

	// The elaboration answer lands in the ledger under the synthetic key.
	next, err := f.conv.Submit(ctx, "a long elaboration about my background")
	require.NoError(t, err)
	require.NotNil(t, next.Prompt)
	assert.Equal(t, StageMain, next.Prompt.Stage)
}

func TestConversation_EmptyAnswerRejected(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)

	before := f.conv.Current()
	_, err = f.conv.Submit(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Equal(t, before, f.conv.Current(), "the prompt stays pending")
	assert.Equal(t, 0, f.conv.TotalAnswers())
}

func TestConversation_SubmitWithoutPrompt(t *testing.T) {
	f := newEngineFixture(t)
	_, err := f.conv.Submit(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoPendingQuestion)
}

func TestConversation_SkipDecaysPriorityAndMovesOn(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	start, err := f.conv.Start(ctx)
	require.NoError(t, err)
	skippedQuestion := start.Prompt.Question

	turn, err := f.conv.Skip(ctx)
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.NotEqual(t, skippedQuestion, turn.Prompt.Question)
	assert.Equal(t, 0, f.conv.TotalAnswers(), "skips never count as answers")

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, priorities["personal_data"], 1e-9)

	a, err := f.answers.Get(ctx, skippedQuestion)
	require.NoError(t, err)
	assert.True(t, a.Skipped)
}

func TestConversation_SkipWithoutPromptIsNoOp(t *testing.T) {
	f := newEngineFixture(t)
	turn, err := f.conv.Skip(context.Background())
	require.NoError(t, err)
	assert.Nil(t, turn.Prompt)
}

func TestConversation_SkipOnFollowUpDoesNotDecay(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)
	_, err = f.conv.Submit(ctx, "an answer")
	require.NoError(t, err)

	// Active prompt is the follow-up; its synthetic category has no tracker
	// row, so nothing decays.
	_, err = f.conv.Skip(ctx)
	require.NoError(t, err)

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultPriority, priorities["personal_data"], 1e-9)
}

func TestConversation_BoostRuleFires(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	require.NoError(t, f.tracker.EnsureDefaults(ctx, bankKeys(f.bank)))
	require.NoError(t, f.tracker.PutPriority(ctx, "cognitive_passion", 10))

	start, err := f.conv.Start(ctx)
	require.NoError(t, err)
	require.Equal(t, "cognitive_passion", start.Prompt.CategoryKey)

	_, err = f.conv.Submit(ctx, "Philosophy above all, ancient and modern")
	require.NoError(t, err)

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, priorities["thinking_reference"], 1e-9)
	assert.InDelta(t, 1.5, priorities["core_concepts_perspective"], 1e-9)
	assert.InDelta(t, domain.DefaultPriority, priorities["inspiring_figures"], 1e-9)
}

func TestConversation_SummaryEverySeventhAnswer(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	turn, err := f.conv.Start(ctx)
	require.NoError(t, err)

	sawSummary := false
	for i := 0; i < 12 && !sawSummary; i++ {
		require.NotNil(t, turn.Prompt)
		answer := fmt.Sprintf("a reasonably detailed response number %d", i)
		turn, err = f.conv.Submit(ctx, answer)
		require.NoError(t, err)
		if turn.Prompt != nil && turn.Prompt.Stage == StageSummary {
			sawSummary = true
			assert.Equal(t, domain.SummaryCategoryKey, turn.Prompt.CategoryKey)
			assert.Zero(t, f.conv.TotalAnswers()%7, "summaries land on multiples of seven")
		}
	}
	require.True(t, sawSummary, "a summary appears within the first rounds")

	// Answering the summary resumes the main flow without elaborating.
	turn, err = f.conv.Submit(ctx, "yes that is accurate")
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.NotEqual(t, StageElaboration, turn.Prompt.Stage)
}

func TestConversation_CategoryCompletionTriggersSummary(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Pre-answer all but the last social_status question and pin its
	// priority so the scheduler picks it first.
	c, ok := f.bank.Category("social_status")
	require.True(t, ok)
	for _, q := range c.Questions[:len(c.Questions)-1] {
		testutil.SeedAnswer(t, f.db, f.bank, q, "a sufficiently long recorded answer")
	}
	require.NoError(t, f.tracker.EnsureDefaults(ctx, bankKeys(f.bank)))
	require.NoError(t, f.tracker.PutPriority(ctx, "social_status", 50))

	start, err := f.conv.Start(ctx)
	require.NoError(t, err)
	require.Equal(t, "social_status", start.Prompt.CategoryKey)
	require.Equal(t, c.Questions[len(c.Questions)-1], start.Prompt.Question)

	turn, err := f.conv.Submit(ctx, "a closing answer for this topic")
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, StageSummary, turn.Prompt.Stage)
}

func TestConversation_ExhaustionGeneratesAndAutoExportsOnce(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	testutil.AnswerEverything(t, f.db, f.bank)

	turn, err := f.conv.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)

	assert.True(t, turn.AutoExport, "first exhausted turn requests the automatic export")
	assert.Contains(t, turn.Notices, f.bank.UI().EndOfQuestions)
	assert.Equal(t, domain.GeneratedCategoryKey, turn.Prompt.CategoryKey)
	assert.Equal(t, StageFallback, turn.Prompt.Stage)
	assert.Contains(t, turn.Prompt.Question, "answer", "the templated question embeds the most frequent token")

	// Answering the generated question re-enters the exhausted path, but the
	// export must not fire again.
	next, err := f.conv.Submit(ctx, "an answer to the generated question")
	require.NoError(t, err)
	require.NotNil(t, next.Prompt)
	assert.False(t, next.AutoExport)
}

func TestConversation_ExhaustionWithFewAnswersFallsBack(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Empty-string answers close their questions without counting as
	// substantive (this is what a degenerate import produces), so the bank
	// exhausts with zero usable content for generation.
	for _, c := range f.bank.Categories() {
		for _, q := range c.Questions {
			testutil.SeedAnswer(t, f.db, f.bank, q, "")
		}
	}

	turn, err := f.conv.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)

	ui := f.bank.UI()
	assert.Contains(t, turn.Notices, ui.NotEnoughData)
	assert.Contains(t, turn.Notices, ui.AllExplored)
	assert.Equal(t, StageFallback, turn.Prompt.Stage)
	assert.Equal(t, ui.GenericNewQuestion, turn.Prompt.Question)
}

func TestConversation_ResetClearsEverything(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)
	_, err = f.conv.Submit(ctx, "something worth recording")
	require.NoError(t, err)
	require.NoError(t, f.settings.Set(ctx, repository.SettingUserID, "user-before-reset"))

	turn, err := f.conv.Reset(ctx)
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.Contains(t, turn.Notices, f.bank.UI().ResetDone)
	assert.Equal(t, 0, f.conv.TotalAnswers())

	ledger, err := f.answers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger)

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultPriority, priorities["personal_data"], 1e-9)

	_, err = f.settings.Get(ctx, repository.SettingUserID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "reset discards the user id")
}

func TestConversation_AnswerWithoutTriggerLeavesPrioritiesAlone(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)

	_, err = f.conv.Submit(ctx, "Build a startup")
	require.NoError(t, err)

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	for key, p := range priorities {
		assert.InDelta(t, domain.DefaultPriority, p, 1e-9, "category %s", key)
	}
}

func TestConversation_RetryReopensSkippedQuestion(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	start, err := f.conv.Start(ctx)
	require.NoError(t, err)
	question := start.Prompt.Question
	_, err = f.conv.Skip(ctx)
	require.NoError(t, err)

	turn, err := f.conv.Retry(ctx, question)
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, question, turn.Prompt.Question)

	_, err = f.answers.Get(ctx, question)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Answering the retried question records it normally.
	_, err = f.conv.Submit(ctx, "a proper answer this time")
	require.NoError(t, err)
	a, err := f.answers.Get(ctx, question)
	require.NoError(t, err)
	assert.Equal(t, "a proper answer this time", a.Value)
}

func TestConversation_SetLanguageSwitchesBank(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)

	turn, err := f.conv.SetLanguage(ctx, domain.LangArabic)
	require.NoError(t, err)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, domain.LangArabic, f.conv.Bank().Language())

	v, err := f.settings.Get(ctx, repository.SettingLanguage)
	require.NoError(t, err)
	assert.Equal(t, "ar", v)
}

func TestConversation_TranscriptFollowsBankOrder(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	_, err := f.conv.Start(ctx)
	require.NoError(t, err)
	_, err = f.conv.Submit(ctx, "first recorded answer")
	require.NoError(t, err)
	_, err = f.conv.Submit(ctx, "no nothing more")
	require.NoError(t, err)

	entries, err := f.conv.Transcript(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "What is your name?", entries[0].Question)
	assert.Equal(t, "first recorded answer", entries[0].Answer.Value)
}

func TestConversation_RollbackLeavesStateUntouched(t *testing.T) {
	database := testutil.NewTestDB(t)
	b := bank.ForLanguage(domain.LangEnglish)
	answers := repository.NewSQLiteAnswerRepo(database)
	tracker := repository.NewSQLiteTrackerRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)

	goodUoW := testutil.NewTestUoW(database)
	conv := NewConversationService(b, answers, tracker, settings, goodUoW)
	ctx := context.Background()
	_, err := conv.Start(ctx)
	require.NoError(t, err)

	// Swap in a UoW that fails on the second write of the submit
	// transaction so the answer insert gets rolled back too.
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: assert.AnError}
	convFailing := NewConversationService(b, answers, tracker, settings, failing)
	_, err = convFailing.Start(ctx)
	require.NoError(t, err)

	_, err = convFailing.Submit(ctx, "this write must not survive")
	require.Error(t, err)

	ledger, err := answers.List(ctx)
	require.NoError(t, err)
	for q, a := range ledger {
		assert.NotEqual(t, "this write must not survive", a.Value, "question %q", q)
	}
}

func bankKeys(b *bank.Bank) []string {
	keys := make([]string, 0, len(b.Categories()))
	for _, c := range b.Categories() {
		keys = append(keys, c.Key)
	}
	return keys
}
