package services

import (
	"context"
	"fmt"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          zerolog.Logger
}

// NewStatsService creates a stats service. Range length limits are enforced
// by request validation before these methods are reached.
func NewStatsService(transactionRepo repositories.TransactionRepositoryInterface, metrics MetricsRecorderInterface, logger zerolog.Logger) StatsServiceInterface {
	return &statsService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger.With().Str("component", componentStats).Logger(),
	}
}

func (s *statsService) GetBalanceStats(ctx context.Context, userID string, dateRange models.DateRange) (*models.BalanceStats, error) {
	if dateRange.Days() < 0 {
		return nil, ErrInvalidDateRange
	}
	s.count("balance")

	stats, err := s.transactionRepo.GetBalanceStats(ctx, userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) GetCategoryStats(ctx context.Context, userID string, dateRange models.DateRange) ([]models.CategoryStat, error) {
	if dateRange.Days() < 0 {
		return nil, ErrInvalidDateRange
	}
	s.count("categories")

	stats, err := s.transactionRepo.GetCategoryStats(ctx, userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	if stats == nil {
		stats = []models.CategoryStat{}
	}
	return stats, nil
}

// GetOverview runs the balance and category queries concurrently.
func (s *statsService) GetOverview(ctx context.Context, userID string, dateRange models.DateRange) (*models.Overview, error) {
	if dateRange.Days() < 0 {
		return nil, ErrInvalidDateRange
	}
	s.count("overview")

	var (
		balance    *models.BalanceStats
		categories []models.CategoryStat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = s.transactionRepo.GetBalanceStats(gctx, userID, dateRange)
		if err != nil {
			return fmt.Errorf("failed to get balance stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.transactionRepo.GetCategoryStats(gctx, userID, dateRange)
		if err != nil {
			return fmt.Errorf("failed to get category stats: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", userID).Msg("overview query failed")
		return nil, err
	}

	if categories == nil {
		categories = []models.CategoryStat{}
	}
	return &models.Overview{Balance: *balance, Categories: categories}, nil
}

func (s *statsService) count(kind string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricStatsRequest, map[string]string{"kind": kind})
	}
}

func (s *statsService) log(ctx context.Context) *zerolog.Logger {
	return requestLogger(ctx, s.logger, componentStats)
}
