package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

// NewSettingsService exposes persisted device settings over the key-value
// store.
func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Language(ctx context.Context) domain.Language {
	raw, err := s.settings.Get(ctx, repository.SettingLanguage)
	if err != nil {
		return domain.DefaultLanguage
	}
	lang, err := domain.ParseLanguage(raw)
	if err != nil {
		return domain.DefaultLanguage
	}
	return lang
}

func (s *settingsService) SetLanguage(ctx context.Context, lang domain.Language) error {
	return s.settings.Set(ctx, repository.SettingLanguage, string(lang))
}

func (s *settingsService) UserID(ctx context.Context) (string, error) {
	id, err := s.settings.Get(ctx, repository.SettingUserID)
	if err == nil {
		return id, nil
	}
	id = uuid.NewString()
	if err := s.settings.Set(ctx, repository.SettingUserID, id); err != nil {
		return "", fmt.Errorf("storing user id: %w", err)
	}
	return id, nil
}

func (s *settingsService) DarkMode(ctx context.Context) bool {
	raw, err := s.settings.Get(ctx, repository.SettingDarkMode)
	if err != nil {
		return false
	}
	on, err := strconv.ParseBool(raw)
	return err == nil && on
}

func (s *settingsService) SetDarkMode(ctx context.Context, on bool) error {
	return s.settings.Set(ctx, repository.SettingDarkMode, strconv.FormatBool(on))
}
