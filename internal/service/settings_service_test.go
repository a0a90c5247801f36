package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/repository"
	"github.com/hypatia-cli/hypatia/internal/testutil"
)

func newSettingsFixture(t *testing.T) SettingsService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSettingsService(repository.NewSQLiteSettingsRepo(database))
}

func TestSettings_LanguageDefaultsToArabic(t *testing.T) {
	svc := newSettingsFixture(t)
	ctx := context.Background()
	assert.Equal(t, domain.DefaultLanguage, svc.Language(ctx))

	require.NoError(t, svc.SetLanguage(ctx, domain.LangEnglish))
	assert.Equal(t, domain.LangEnglish, svc.Language(ctx))
}

func TestSettings_UserIDStableAcrossCalls(t *testing.T) {
	svc := newSettingsFixture(t)
	ctx := context.Background()

	first, err := svc.UserID(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	require.NoError(t, err, "user ids are uuids")

	second, err := svc.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSettings_DarkModeToggle(t *testing.T) {
	svc := newSettingsFixture(t)
	ctx := context.Background()
	assert.False(t, svc.DarkMode(ctx))

	require.NoError(t, svc.SetDarkMode(ctx, true))
	assert.True(t, svc.DarkMode(ctx))

	require.NoError(t, svc.SetDarkMode(ctx, false))
	assert.False(t, svc.DarkMode(ctx))
}
