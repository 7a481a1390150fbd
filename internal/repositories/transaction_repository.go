package repositories

import (
	"context"
	"fmt"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

var (
	monthHistoryUpsert = clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"expense": gorm.Expr("month_histories.expense + excluded.expense"),
			"income":  gorm.Expr("month_histories.income + excluded.income"),
		}),
	}

	yearHistoryUpsert = clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"expense": gorm.Expr("year_histories.expense + excluded.expense"),
			"income":  gorm.Expr("year_histories.income + excluded.income"),
		}),
	}
)

// CreateWithRollups inserts the transaction, then upserts both rollup
// buckets. The increments are resolved by the database, so concurrent
// writers to the same bucket never lose an update.
func (r *transactionRepository) CreateWithRollups(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if err := tx.Clauses(monthHistoryUpsert).Create(models.NewMonthHistoryDelta(transaction)).Error; err != nil {
			return fmt.Errorf("failed to update month history: %w", err)
		}

		if err := tx.Clauses(yearHistoryUpsert).Create(models.NewYearHistoryDelta(transaction)).Error; err != nil {
			return fmt.Errorf("failed to update year history: %w", err)
		}

		return nil
	})
}

// ListByDateRange returns the user's transactions in the inclusive range, newest first
func (r *transactionRepository) ListByDateRange(ctx context.Context, userID string, dateRange models.DateRange) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dateRange.From, dateRange.To).
		Order("date DESC").Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

type typeTotal struct {
	Type  models.TransactionType
	Total decimal.Decimal
}

func (r *transactionRepository) GetBalanceStats(ctx context.Context, userID string, dateRange models.DateRange) (*models.BalanceStats, error) {
	var totals []typeTotal
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dateRange.From, dateRange.To).
		Group("type").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get balance stats: %w", err)
	}

	stats := &models.BalanceStats{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			stats.Income = t.Total
		case models.TransactionTypeExpense:
			stats.Expenses = t.Total
		}
	}

	return stats, nil
}

// GetCategoryStats totals the range per (type, category), largest first
func (r *transactionRepository) GetCategoryStats(ctx context.Context, userID string, dateRange models.DateRange) ([]models.CategoryStat, error) {
	stats := []models.CategoryStat{}
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("type, category, COALESCE(SUM(amount), 0) AS amount").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dateRange.From, dateRange.To).
		Group("type, category").
		Order("SUM(amount) DESC").Order("category ASC").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	return stats, nil
}
