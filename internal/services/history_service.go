package services

import (
	"context"
	"fmt"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type historyService struct {
	historyRepo repositories.HistoryRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      zerolog.Logger
	now         func() time.Time
}

func NewHistoryService(historyRepo repositories.HistoryRepositoryInterface, metrics MetricsRecorderInterface, logger zerolog.Logger) HistoryServiceInterface {
	return &historyService{
		historyRepo: historyRepo,
		metrics:     metrics,
		logger:      logger.With().Str("component", componentHistory).Logger(),
		now:         time.Now,
	}
}

// GetHistory returns an empty series when the period has no rollup rows.
// Otherwise it returns one zero-filled bucket per month (year timeframe) or
// per day of the month (month timeframe).
func (s *historyService) GetHistory(ctx context.Context, userID string, timeframe models.Timeframe, period models.Period) ([]models.HistoryData, error) {
	if !timeframe.IsValid() {
		return nil, ErrInvalidTimeframe
	}
	if err := period.Validate(); err != nil {
		return nil, ErrInvalidPeriod
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricHistoryRequest, map[string]string{"timeframe": string(timeframe)})
	}

	switch timeframe {
	case models.TimeframeYear:
		return s.yearHistory(ctx, userID, period.Year)
	default:
		return s.monthHistory(ctx, userID, period.Year, period.Month)
	}
}

func (s *historyService) yearHistory(ctx context.Context, userID string, year int) ([]models.HistoryData, error) {
	totals, err := s.historyRepo.SumByMonth(ctx, userID, year)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", userID).Int("year", year).Msg("year history query failed")
		return nil, fmt.Errorf("failed to get year history: %w", err)
	}

	history := []models.HistoryData{}
	if len(totals) == 0 {
		return history, nil
	}

	byMonth := indexBuckets(totals)
	for month := 0; month < models.MonthsInYear; month++ {
		expense, income := byMonth.get(month)
		history = append(history, models.HistoryData{
			Year:    year,
			Month:   month,
			Expense: expense,
			Income:  income,
		})
	}
	return history, nil
}

func (s *historyService) monthHistory(ctx context.Context, userID string, year, month int) ([]models.HistoryData, error) {
	totals, err := s.historyRepo.SumByDay(ctx, userID, year, month)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", userID).Int("year", year).Int("month", month).Msg("month history query failed")
		return nil, fmt.Errorf("failed to get month history: %w", err)
	}

	history := []models.HistoryData{}
	if len(totals) == 0 {
		return history, nil
	}

	byDay := indexBuckets(totals)
	days := models.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		expense, income := byDay.get(day)
		d := day
		history = append(history, models.HistoryData{
			Year:    year,
			Month:   month,
			Day:     &d,
			Expense: expense,
			Income:  income,
		})
	}
	return history, nil
}

// GetAvailableYears falls back to the current year so the UI always has a
// period to select.
func (s *historyService) GetAvailableYears(ctx context.Context, userID string) ([]int, error) {
	years, err := s.historyRepo.DistinctYears(ctx, userID)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", userID).Msg("history periods query failed")
		return nil, fmt.Errorf("failed to get history periods: %w", err)
	}

	if len(years) == 0 {
		return []int{s.now().UTC().Year()}, nil
	}
	return years, nil
}

type bucketIndex map[int]models.HistoryBucketTotal

func indexBuckets(totals []models.HistoryBucketTotal) bucketIndex {
	idx := make(bucketIndex, len(totals))
	for _, t := range totals {
		idx[t.Bucket] = t
	}
	return idx
}

func (b bucketIndex) get(bucket int) (expense, income decimal.Decimal) {
	if t, ok := b[bucket]; ok {
		return t.Expense, t.Income
	}
	return decimal.Zero, decimal.Zero
}

func (s *historyService) log(ctx context.Context) *zerolog.Logger {
	return requestLogger(ctx, s.logger, componentHistory)
}
