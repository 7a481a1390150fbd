package services

import (
	"context"
	"fmt"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/rs/zerolog"
)

type userSettingsService struct {
	settingsRepo    repositories.UserSettingsRepositoryInterface
	defaultCurrency string
	logger          zerolog.Logger
}

func NewUserSettingsService(settingsRepo repositories.UserSettingsRepositoryInterface, defaultCurrency string, logger zerolog.Logger) UserSettingsServiceInterface {
	if !models.IsSupportedCurrency(defaultCurrency) {
		defaultCurrency = models.DefaultCurrency
	}
	return &userSettingsService{
		settingsRepo:    settingsRepo,
		defaultCurrency: defaultCurrency,
		logger:          logger.With().Str("component", componentSettings).Logger(),
	}
}

func (s *userSettingsService) GetUserSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx, userID, s.defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings, nil
}

// UpdateUserCurrency creates the settings row if the user has none yet
func (s *userSettingsService) UpdateUserCurrency(ctx context.Context, userID, currency string) (*models.UserSettings, error) {
	c, ok := models.LookupCurrency(currency)
	if !ok {
		return nil, ErrUnsupportedCurrency
	}

	settings, err := s.settingsRepo.UpsertCurrency(ctx, userID, c.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to update user currency: %w", err)
	}

	s.log(ctx).Info().Str("user_id", userID).Str("currency", c.Code).Msg("user currency updated")
	return settings, nil
}

func (s *userSettingsService) log(ctx context.Context) *zerolog.Logger {
	return requestLogger(ctx, s.logger, componentSettings)
}
