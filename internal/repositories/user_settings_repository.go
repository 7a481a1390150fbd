package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userSettingsRepository struct {
	db *gorm.DB
}

func NewUserSettingsRepository(db *gorm.DB) UserSettingsRepositoryInterface {
	return &userSettingsRepository{db: db}
}

// GetOrCreate returns the user's settings, inserting defaults on first access.
func (r *userSettingsRepository) GetOrCreate(ctx context.Context, userID, defaultCurrency string) (*models.UserSettings, error) {
	db := r.db.WithContext(ctx)

	now := time.Now().UTC()
	defaults := &models.UserSettings{
		UserID:    userID,
		Currency:  defaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, fmt.Errorf("failed to create user settings: %w", err)
	}

	var settings models.UserSettings
	if err := db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &settings, nil
}

func (r *userSettingsRepository) UpsertCurrency(ctx context.Context, userID, currency string) (*models.UserSettings, error) {
	db := r.db.WithContext(ctx)

	now := time.Now().UTC()
	row := &models.UserSettings{
		UserID:    userID,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"currency", "updated_at"}),
	}).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to update user currency: %w", err)
	}

	var settings models.UserSettings
	if err := db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &settings, nil
}
