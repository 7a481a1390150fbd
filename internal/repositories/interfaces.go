package repositories

import (
	"context"

	"finance-dashboard/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// CreateWithRollups inserts the transaction and increments its daily and
	// monthly rollup buckets in a single database transaction.
	CreateWithRollups(ctx context.Context, transaction *models.Transaction) error
	ListByDateRange(ctx context.Context, userID string, dateRange models.DateRange) ([]models.Transaction, error)
	GetBalanceStats(ctx context.Context, userID string, dateRange models.DateRange) (*models.BalanceStats, error)
	GetCategoryStats(ctx context.Context, userID string, dateRange models.DateRange) ([]models.CategoryStat, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByNameAndType(ctx context.Context, userID, name string, txType models.TransactionType) (*models.Category, error)
	// List returns every category of the user; an empty txType means all types.
	List(ctx context.Context, userID string, txType models.TransactionType) ([]models.Category, error)
	Delete(ctx context.Context, userID, name string, txType models.TransactionType) error
}

// HistoryRepositoryInterface reads the rollup tables
type HistoryRepositoryInterface interface {
	SumByMonth(ctx context.Context, userID string, year int) ([]models.HistoryBucketTotal, error)
	SumByDay(ctx context.Context, userID string, year, month int) ([]models.HistoryBucketTotal, error)
	DistinctYears(ctx context.Context, userID string) ([]int, error)
}

// UserSettingsRepositoryInterface defines the contract for user settings operations
type UserSettingsRepositoryInterface interface {
	GetOrCreate(ctx context.Context, userID, defaultCurrency string) (*models.UserSettings, error)
	UpsertCurrency(ctx context.Context, userID, currency string) (*models.UserSettings, error)
}
