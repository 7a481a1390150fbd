package repositories

import (
	"context"
	"fmt"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepositoryInterface {
	return &historyRepository{db: db}
}

// SumByMonth sums the daily rollup of a year per month, ascending
func (r *historyRepository) SumByMonth(ctx context.Context, userID string, year int) ([]models.HistoryBucketTotal, error) {
	totals := []models.HistoryBucketTotal{}
	if err := r.db.WithContext(ctx).Model(&models.MonthHistory{}).
		Select("month AS bucket, COALESCE(SUM(expense), 0) AS expense, COALESCE(SUM(income), 0) AS income").
		Where("user_id = ? AND year = ?", userID, year).
		Group("month").
		Order("month ASC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum month history by month: %w", err)
	}
	return totals, nil
}

// SumByDay sums the daily rollup of one month per day, ascending
func (r *historyRepository) SumByDay(ctx context.Context, userID string, year, month int) ([]models.HistoryBucketTotal, error) {
	totals := []models.HistoryBucketTotal{}
	if err := r.db.WithContext(ctx).Model(&models.MonthHistory{}).
		Select("day AS bucket, COALESCE(SUM(expense), 0) AS expense, COALESCE(SUM(income), 0) AS income").
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		Group("day").
		Order("day ASC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum month history by day: %w", err)
	}
	return totals, nil
}

func (r *historyRepository) DistinctYears(ctx context.Context, userID string) ([]int, error) {
	years := []int{}
	if err := r.db.WithContext(ctx).Model(&models.MonthHistory{}).
		Where("user_id = ?", userID).
		Distinct("year").
		Order("year ASC").
		Pluck("year", &years).Error; err != nil {
		return nil, fmt.Errorf("failed to list history years: %w", err)
	}
	return years, nil
}
