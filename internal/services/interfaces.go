package services

import (
	"context"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// RecordTransactionParams is the validated input of RecordTransaction
type RecordTransactionParams struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Type        models.TransactionType
	Category    string
}

// FormattedTransaction is a transaction with its amount rendered in the
// owner's display currency.
type FormattedTransaction struct {
	models.Transaction
	FormattedAmount string
}

// TransactionServiceInterface records transactions and lists them back
type TransactionServiceInterface interface {
	RecordTransaction(ctx context.Context, userID string, params RecordTransactionParams) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string, dateRange models.DateRange) ([]FormattedTransaction, error)
}

// HistoryServiceInterface builds zero-filled chart series from the rollup tables
type HistoryServiceInterface interface {
	GetHistory(ctx context.Context, userID string, timeframe models.Timeframe, period models.Period) ([]models.HistoryData, error)
	GetAvailableYears(ctx context.Context, userID string) ([]int, error)
}

// StatsServiceInterface aggregates raw transactions over a date range
type StatsServiceInterface interface {
	GetBalanceStats(ctx context.Context, userID string, dateRange models.DateRange) (*models.BalanceStats, error)
	GetCategoryStats(ctx context.Context, userID string, dateRange models.DateRange) ([]models.CategoryStat, error)
	GetOverview(ctx context.Context, userID string, dateRange models.DateRange) (*models.Overview, error)
}

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, userID string, txType models.TransactionType) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID, name, icon string, txType models.TransactionType) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, name string, txType models.TransactionType) error
}

type UserSettingsServiceInterface interface {
	GetUserSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateUserCurrency(ctx context.Context, userID, currency string) (*models.UserSettings, error)
}

// MetricsRecorderInterface for recording business metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
