package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/importer"
	"github.com/hypatia-cli/hypatia/internal/repository"
	"github.com/hypatia-cli/hypatia/internal/testutil"
)

type transferFixture struct {
	db       *sql.DB
	bank     *bank.Bank
	answers  *repository.SQLiteAnswerRepo
	tracker  *repository.SQLiteTrackerRepo
	settings *repository.SQLiteSettingsRepo
	svc      TransferService
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &transferFixture{
		db:       database,
		bank:     bank.ForLanguage(domain.LangEnglish),
		answers:  repository.NewSQLiteAnswerRepo(database),
		tracker:  repository.NewSQLiteTrackerRepo(database),
		settings: repository.NewSQLiteSettingsRepo(database),
	}
	settingsSvc := NewSettingsService(f.settings)
	require.NoError(t, settingsSvc.SetLanguage(context.Background(), domain.LangEnglish))
	f.svc = NewTransferService(f.answers, f.tracker, f.settings, testutil.NewTestUoW(database), settingsSvc)
	return f
}

func TestExportBytes_BundleShape(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()
	testutil.SeedAnswer(t, f.db, f.bank, "What is your name?", "Hypatia")
	testutil.SeedSkip(t, f.db, f.bank, "What is your date of birth?")
	require.NoError(t, f.tracker.PutUsage(ctx, "personal_data", domain.CategoryUsage{Count: 2, LastUsedAtTotalAnswers: 1}))
	require.NoError(t, f.tracker.PutPriority(ctx, "personal_data", 1.5))

	data, err := f.svc.ExportBytes(ctx, ExportManual)
	require.NoError(t, err)

	var bundle importer.Bundle
	require.NoError(t, json.Unmarshal(data, &bundle))

	require.NotNil(t, bundle.Answers["What is your name?"])
	assert.Equal(t, "Hypatia", *bundle.Answers["What is your name?"])
	require.NotNil(t, bundle.Answers["What is your date of birth?"])
	assert.Equal(t, "[Skipped]", *bundle.Answers["What is your date of birth?"],
		"skips travel as the language's bracket marker")

	assert.Equal(t, 2, bundle.Usage["personal_data"].Count)
	assert.Equal(t, 1.5, bundle.Priorities["personal_data"])
	assert.Equal(t, "en", bundle.Language)
	assert.Equal(t, 1, bundle.TotalAnswers, "skip markers never count")
	assert.Equal(t, Version, bundle.Version)
	assert.NotEmpty(t, bundle.UserID)
	_, err = time.Parse(time.RFC3339, bundle.Timestamp)
	assert.NoError(t, err)
}

func TestExportBytes_AutoOmitsVersion(t *testing.T) {
	f := newTransferFixture(t)
	data, err := f.svc.ExportBytes(context.Background(), ExportAuto)
	require.NoError(t, err)

	var bundle importer.Bundle
	require.NoError(t, json.Unmarshal(data, &bundle))
	assert.Empty(t, bundle.Version)
}

func TestExport_FileName(t *testing.T) {
	f := newTransferFixture(t)
	dir := t.TempDir()

	path, err := f.svc.Export(context.Background(), ExportManual, dir)
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "hypatia_protocol_"), name)
	assert.Contains(t, name, "_manual_")
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}

func TestImport_RoundTrip(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()
	testutil.SeedAnswer(t, f.db, f.bank, "What is your name?", "Hypatia")
	testutil.SeedSkip(t, f.db, f.bank, "What is your date of birth?")
	require.NoError(t, f.tracker.PutPriority(ctx, "personal_data", 1.8))
	require.NoError(t, f.settings.Set(ctx, repository.SettingTotalAnswers, "1"))

	data, err := f.svc.ExportBytes(ctx, ExportManual)
	require.NoError(t, err)

	// Wipe the store, then restore from the bundle.
	require.NoError(t, f.answers.Clear(ctx))
	require.NoError(t, f.tracker.Clear(ctx))

	result, err := f.svc.ImportBytes(ctx, data)
	require.NoError(t, err)
	assert.False(t, result.Legacy)
	assert.Equal(t, 2, result.Entries)
	assert.Zero(t, result.Dropped)

	a, err := f.answers.Get(ctx, "What is your name?")
	require.NoError(t, err)
	assert.Equal(t, "Hypatia", a.Value)

	skipped, err := f.answers.Get(ctx, "What is your date of birth?")
	require.NoError(t, err)
	assert.True(t, skipped.Skipped, "bracket markers come back as skips")

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, priorities["personal_data"], 1e-9)
	assert.InDelta(t, domain.DefaultPriority, priorities["ethical_values"], 1e-9,
		"categories missing from the bundle get defaults back")
}

func TestImport_FullBundleTakesPrecedence(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()
	require.NoError(t, f.tracker.PutPriority(ctx, "personal_data", 1.1))
	testutil.SeedAnswer(t, f.db, f.bank, "What is your name?", "old value")

	doc := `{
		"answers": {"What is your name?": "imported value"},
		"priorities": {"personal_data": 2.5},
		"usage": {"personal_data": {"count": 9, "lastUsedAtTotalAnswers": 4}},
		"totalAnswers": 12
	}`
	result, err := f.svc.ImportBytes(ctx, []byte(doc))
	require.NoError(t, err)
	assert.False(t, result.Legacy)

	a, err := f.answers.Get(ctx, "What is your name?")
	require.NoError(t, err)
	assert.Equal(t, "imported value", a.Value)

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, priorities["personal_data"], 1e-9)

	usage, err := f.tracker.GetUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, usage["personal_data"].Count)

	total, err := f.settings.Get(ctx, repository.SettingTotalAnswers)
	require.NoError(t, err)
	assert.Equal(t, "12", total)
}

func TestImport_LegacyResetsTracker(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()
	require.NoError(t, f.tracker.PutUsage(ctx, "personal_data", domain.CategoryUsage{Count: 7, LastUsedAtTotalAnswers: 3}))
	require.NoError(t, f.tracker.PutPriority(ctx, "personal_data", 3.0))
	testutil.SeedAnswer(t, f.db, f.bank, "What is your nationality?", "stale answer to be replaced")

	doc := `{
		"What is your name?": "Hypatia",
		"What is your date of birth?": "[Skipped]",
		"What languages do you speak?": "Greek"
	}`
	result, err := f.svc.ImportBytes(ctx, []byte(doc))
	require.NoError(t, err)
	assert.True(t, result.Legacy)
	assert.Equal(t, 3, result.Entries)

	// The bare-map shape replaces the ledger outright.
	_, err = f.answers.Get(ctx, "What is your nationality?")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	usage, err := f.tracker.GetUsage(ctx)
	require.NoError(t, err)
	assert.Zero(t, usage["personal_data"].Count, "legacy import discards usage")

	priorities, err := f.tracker.GetPriorities(ctx)
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultPriority, priorities["personal_data"], 1e-9)

	total, err := f.settings.Get(ctx, repository.SettingTotalAnswers)
	require.NoError(t, err)
	assert.Equal(t, "2", total, "recomputed from the imported non-skip entries")
}

func TestImport_InvalidFormat(t *testing.T) {
	f := newTransferFixture(t)
	_, err := f.svc.ImportBytes(context.Background(), []byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, importer.ErrInvalidFormat)
}

func TestImport_DropsBadEntriesButKeepsRest(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	doc := `{"answers": {"good question": "good value", "bad": 42}}`
	result, err := f.svc.ImportBytes(ctx, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, 1, result.Dropped)
	require.Len(t, result.Warnings, 1)

	a, err := f.answers.Get(ctx, "good question")
	require.NoError(t, err)
	assert.Equal(t, "good value", a.Value)
}
