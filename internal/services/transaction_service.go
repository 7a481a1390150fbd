package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/events"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/rs/zerolog"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	settingsRepo    repositories.UserSettingsRepositoryInterface
	publisher       events.Publisher
	metrics         MetricsRecorderInterface
	logger          zerolog.Logger
	defaultCurrency string
	now             func() time.Time
}

// NewTransactionService creates a transaction service. Events are published
// after the rollups are committed.
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	settingsRepo repositories.UserSettingsRepositoryInterface,
	publisher events.Publisher,
	metrics MetricsRecorderInterface,
	logger zerolog.Logger,
	defaultCurrency string,
) TransactionServiceInterface {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		settingsRepo:    settingsRepo,
		publisher:       publisher,
		metrics:         metrics,
		logger:          logger.With().Str("component", componentTransactions).Logger(),
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// RecordTransaction stores a transaction together with its daily and monthly
// rollup increments. The category must exist for the user with the same type.
func (s *transactionService) RecordTransaction(ctx context.Context, userID string, params RecordTransactionParams) (*models.Transaction, error) {
	start := s.now()
	tags := map[string]string{"type": string(params.Type)}

	category, err := s.categoryRepo.GetByNameAndType(ctx, userID, strings.TrimSpace(params.Category), params.Type)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			s.recordFailure(params.Type, "category_not_found")
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Amount:       params.Amount,
		Date:         models.NormalizeDate(params.Date),
		Description:  strings.TrimSpace(params.Description),
		Type:         params.Type,
		Category:     category.Name,
		CategoryIcon: category.Icon,
	}
	if err := transaction.Validate(); err != nil {
		s.recordFailure(params.Type, "invalid")
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	if err := s.transactionRepo.CreateWithRollups(ctx, transaction); err != nil {
		s.recordFailure(params.Type, "store")
		s.log(ctx).Error().Err(err).
			Str("user_id", userID).
			Str("category", category.Name).
			Msg("failed to record transaction")
		return nil, fmt.Errorf("%w: %w", ErrTransactionNotRecorded, err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricTransactionRecorded, tags)
		s.metrics.RecordGauge(MetricTransactionAmount, transaction.Amount.InexactFloat64(), tags)
		s.metrics.RecordProcessingTime(MetricTransactionRecordTime, s.now().Sub(start))
	}

	s.log(ctx).Info().
		Str("user_id", userID).
		Str("transaction_id", transaction.ID.String()).
		Str("type", string(transaction.Type)).
		Str("date", transaction.Date.Format("2006-01-02")).
		Msg("transaction recorded")

	// The rollups are committed; a broker outage must not fail the request.
	if err := s.publisher.PublishTransactionRecorded(context.WithoutCancel(ctx), transaction); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementCounter(MetricEventPublishFailed, tags)
		}
		s.log(ctx).Warn().Err(err).
			Str("transaction_id", transaction.ID.String()).
			Msg("failed to publish transaction event")
	}

	return transaction, nil
}

// ListTransactions returns the user's transactions in the range, newest first,
// with amounts formatted in the user's display currency.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, dateRange models.DateRange) ([]FormattedTransaction, error) {
	if dateRange.Days() < 0 {
		return nil, ErrInvalidDateRange
	}

	settings, err := s.settingsRepo.GetOrCreate(ctx, userID, s.defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}

	transactions, err := s.transactionRepo.ListByDateRange(ctx, userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	formatter := FormatterForCurrency(settings.Currency)
	result := make([]FormattedTransaction, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, FormattedTransaction{
			Transaction:     t,
			FormattedAmount: formatter.Format(t.Amount),
		})
	}
	return result, nil
}

func (s *transactionService) recordFailure(txType models.TransactionType, reason string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricTransactionRecordFailed, map[string]string{
		"type":   string(txType),
		"reason": reason,
	})
}

func (s *transactionService) log(ctx context.Context) *zerolog.Logger {
	return requestLogger(ctx, s.logger, componentTransactions)
}
