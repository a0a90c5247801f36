package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/repository"
	"github.com/hypatia-cli/hypatia/internal/service"
	"github.com/hypatia-cli/hypatia/internal/teatest"
	"github.com/hypatia-cli/hypatia/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	b := bank.ForLanguage(domain.LangEnglish)
	answers := repository.NewSQLiteAnswerRepo(database)
	tracker := repository.NewSQLiteTrackerRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	uow := testutil.NewTestUoW(database)

	settingsSvc := service.NewSettingsService(settings)
	require.NoError(t, settingsSvc.SetLanguage(context.Background(), domain.LangEnglish))

	return &App{
		Conversation: service.NewConversationService(b, answers, tracker, settings, uow),
		Transfer:     service.NewTransferService(answers, tracker, settings, uow, settingsSvc),
		Reports:      service.NewReportService(b, answers, uow),
		Settings:     settingsSvc,
		ExportDir:    t.TempDir(),
	}
}

func newChatDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newChatModel(newTestApp(t)))
	d.DrainInit()
	return d
}

func TestChat_ShowsFirstQuestion(t *testing.T) {
	d := newChatDriver(t)
	view := d.View()
	assert.Contains(t, view, "Personal Data")
	assert.Contains(t, view, "What is your name?")
	assert.Contains(t, view, "Hypatia")
}

func TestChat_AnswerAdvancesToFollowUp(t *testing.T) {
	d := newChatDriver(t)
	d.Submit("my name is Theon")

	view := d.View()
	assert.Contains(t, view, "my name is Theon", "the answer is echoed in the history")
	assert.Contains(t, view, "anything more", "a follow-up prompt appears")
}

func TestChat_SkipCommandMovesOn(t *testing.T) {
	d := newChatDriver(t)
	d.Submit("/skip")

	view := d.View()
	assert.Contains(t, view, "What is your social status?")
	assert.Contains(t, view, "1. Single", "select options are numbered")
}

func TestChat_UnknownCommand(t *testing.T) {
	d := newChatDriver(t)
	d.Submit("/frobnicate")
	assert.Contains(t, d.View(), "unknown command /frobnicate")
}

func TestChat_GuideCommand(t *testing.T) {
	d := newChatDriver(t)
	d.Submit("/guide")
	assert.Contains(t, d.View(), "skip", "the guide mentions skipping")
}

func TestChat_DarkCommandPersistsSetting(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newChatModel(app))
	d.DrainInit()

	require.False(t, app.Settings.DarkMode(context.Background()))
	d.Submit("/dark")
	assert.True(t, app.Settings.DarkMode(context.Background()))
}

func TestChat_QuitCommand(t *testing.T) {
	d := newChatDriver(t)
	d.Submit("/quit")
	assert.True(t, d.Quitting)
}

func TestChat_CtrlCQuits(t *testing.T) {
	d := newChatDriver(t)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestChat_LangCommandSwitchesBank(t *testing.T) {
	d := newChatDriver(t)
	// The opening question already charged personal_data with a usage, so
	// the Arabic bank resumes at the next fresh category.
	d.Submit("/lang ar")
	assert.Contains(t, d.View(), "ما هي حالتك الاجتماعية؟")
}

func TestResolveAnswer_Select(t *testing.T) {
	p := &service.Prompt{
		Kind:    domain.InputSelect,
		Options: []string{"Single", "Married", "Divorced", "Widowed"},
	}

	v, err := resolveAnswer(p, "2")
	require.NoError(t, err)
	assert.Equal(t, "Married", v)

	v, err = resolveAnswer(p, "single")
	require.NoError(t, err)
	assert.Equal(t, "Single", v)

	_, err = resolveAnswer(p, "9")
	assert.Error(t, err)
	_, err = resolveAnswer(p, "unlisted")
	assert.Error(t, err)
}

func TestResolveAnswer_Checkbox(t *testing.T) {
	p := &service.Prompt{
		Kind:    domain.InputCheckbox,
		Options: []string{"Justice", "Honesty", "Compassion"},
	}

	v, err := resolveAnswer(p, "1, 3")
	require.NoError(t, err)
	assert.Equal(t, "Justice, Compassion", v)

	v, err = resolveAnswer(p, "honesty")
	require.NoError(t, err)
	assert.Equal(t, "Honesty", v)

	_, err = resolveAnswer(p, "1, nope")
	assert.Error(t, err)
}

func TestResolveAnswer_TextPassesThrough(t *testing.T) {
	p := &service.Prompt{Kind: domain.InputText}
	v, err := resolveAnswer(p, "anything at all")
	require.NoError(t, err)
	assert.Equal(t, "anything at all", v)
}
