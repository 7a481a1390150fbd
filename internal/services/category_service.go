package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/rs/zerolog"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       zerolog.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger zerolog.Logger) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("component", componentCategories).Logger(),
	}
}

// ListCategories returns all of the user's categories when txType is empty
func (s *categoryService) ListCategories(ctx context.Context, userID string, txType models.TransactionType) ([]models.Category, error) {
	if txType != "" && !txType.IsValid() {
		return nil, ErrInvalidCategory
	}

	categories, err := s.categoryRepo.List(ctx, userID, txType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, userID, name, icon string, txType models.TransactionType) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Icon:   strings.TrimSpace(icon),
		Type:   txType,
	}
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, ErrCategoryAlreadyExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.log(ctx).Info().
		Str("user_id", userID).
		Str("category", category.Name).
		Str("type", string(category.Type)).
		Msg("category created")

	return category, nil
}

// DeleteCategory leaves transactions recorded under the category untouched
func (s *categoryService) DeleteCategory(ctx context.Context, userID, name string, txType models.TransactionType) error {
	if err := s.categoryRepo.Delete(ctx, userID, strings.TrimSpace(name), txType); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.log(ctx).Info().
		Str("user_id", userID).
		Str("category", name).
		Str("type", string(txType)).
		Msg("category deleted")

	return nil
}

func (s *categoryService) log(ctx context.Context) *zerolog.Logger {
	return requestLogger(ctx, s.logger, componentCategories)
}
