package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatsServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         *statsService
	ctx             context.Context
	userID          string
	dateRange       models.DateRange
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewStatsService(s.transactionRepo, newRecordingMetrics(), zerolog.Nop()).(*statsService)
	s.ctx = context.Background()
	s.userID = "user_2abcDEF"
	s.dateRange = models.NewDateRange(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	)
}

func (s *StatsServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatsServiceSuite) TestGetBalanceStats() {
	s.transactionRepo.EXPECT().GetBalanceStats(s.ctx, s.userID, s.dateRange).Return(&models.BalanceStats{
		Income:   decimal.NewFromInt(3000),
		Expenses: decimal.NewFromInt(1200),
	}, nil)

	stats, err := s.service.GetBalanceStats(s.ctx, s.userID, s.dateRange)
	s.Require().NoError(err)
	s.Equal("1800", stats.Balance().String())
}

func (s *StatsServiceSuite) TestGetBalanceStats_ReversedRange() {
	reversed := models.DateRange{From: s.dateRange.To, To: s.dateRange.From}

	_, err := s.service.GetBalanceStats(s.ctx, s.userID, reversed)
	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *StatsServiceSuite) TestGetCategoryStats_NilBecomesEmpty() {
	s.transactionRepo.EXPECT().GetCategoryStats(s.ctx, s.userID, s.dateRange).Return(nil, nil)

	stats, err := s.service.GetCategoryStats(s.ctx, s.userID, s.dateRange)
	s.NoError(err)
	s.NotNil(stats)
	s.Empty(stats)
}

func (s *StatsServiceSuite) TestGetOverview() {
	s.transactionRepo.EXPECT().GetBalanceStats(gomock.Any(), s.userID, s.dateRange).Return(&models.BalanceStats{
		Income:   decimal.NewFromInt(100),
		Expenses: decimal.NewFromInt(40),
	}, nil)
	s.transactionRepo.EXPECT().GetCategoryStats(gomock.Any(), s.userID, s.dateRange).Return([]models.CategoryStat{
		{Type: models.TransactionTypeExpense, Category: "Groceries", Amount: decimal.NewFromInt(40)},
	}, nil)

	overview, err := s.service.GetOverview(s.ctx, s.userID, s.dateRange)
	s.Require().NoError(err)
	s.Equal("100", overview.Balance.Income.String())
	s.Len(overview.Categories, 1)
	s.Equal("Groceries", overview.Categories[0].Category)
}

func (s *StatsServiceSuite) TestGetOverview_PropagatesError() {
	s.transactionRepo.EXPECT().GetBalanceStats(gomock.Any(), s.userID, s.dateRange).Return(nil, errors.New("db down"))
	s.transactionRepo.EXPECT().GetCategoryStats(gomock.Any(), s.userID, s.dateRange).Return([]models.CategoryStat{}, nil).AnyTimes()

	overview, err := s.service.GetOverview(s.ctx, s.userID, s.dateRange)
	s.Error(err)
	s.Nil(overview)
}
