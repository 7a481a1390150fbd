package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create inserts the category. Names are unique per user regardless of type.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("user_id = ? AND name = ?", category.UserID, category.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if count > 0 {
			return ErrCategoryAlreadyExists
		}

		if err := tx.Create(category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCategoryAlreadyExists
			}
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	})
}

func (r *categoryRepository) GetByNameAndType(ctx context.Context, userID, name string, txType models.TransactionType) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND type = ?", userID, name, txType).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, userID string, txType models.TransactionType) ([]models.Category, error) {
	categories := []models.Category{}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}

	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Delete removes the category. Transactions keep their category snapshot.
func (r *categoryRepository) Delete(ctx context.Context, userID, name string, txType models.TransactionType) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND type = ?", userID, name, txType).
		Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
