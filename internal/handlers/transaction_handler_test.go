package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = newTestEcho()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService, zerolog.Nop())
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction() {
	description := gofakeit.Sentence(4)
	body := map[string]interface{}{
		"amount":      50,
		"date":        "Fri Mar 15 2024 10:00:00 GMT+0000 (Coordinated Universal Time)",
		"description": description,
		"category":    "Groceries",
		"type":        "expense",
	}

	s.mockService.EXPECT().RecordTransaction(gomock.Any(), testUserID, gomock.Any()).DoAndReturn(
		func(_ interface{}, userID string, params services.RecordTransactionParams) (*models.Transaction, error) {
			s.True(decimal.NewFromInt(50).Equal(params.Amount))
			s.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), params.Date)
			s.Equal(models.TransactionTypeExpense, params.Type)
			return &models.Transaction{
				ID:           uuid.New(),
				UserID:       userID,
				Amount:       params.Amount,
				Date:         params.Date,
				Description:  params.Description,
				Type:         params.Type,
				Category:     params.Category,
				CategoryIcon: "🛒",
			}, nil
		})

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2024-03-15", resp.Data["date"])
	s.Equal(float64(50), resp.Data["amount"])
	s.Equal("🛒", resp.Data["categoryIcon"])
	s.Equal(description, resp.Data["description"])
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrors() {
	testCases := []struct {
		name string
		body string
	}{
		{"zero amount", `{"amount":0,"date":"2024-03-15","category":"Groceries","type":"expense"}`},
		{"too many decimals", `{"amount":"1.999","date":"2024-03-15","category":"Groceries","type":"expense"}`},
		{"beyond column range", `{"amount":99999999999999999,"date":"2024-03-15","category":"Groceries","type":"expense"}`},
		{"just over largest amount", `{"amount":10000000000000,"date":"2024-03-15","category":"Groceries","type":"expense"}`},
		{"unknown type", `{"amount":5,"date":"2024-03-15","category":"Groceries","type":"transfer"}`},
		{"missing category", `{"amount":5,"date":"2024-03-15","type":"income"}`},
		{"missing date", `{"amount":5,"category":"Groceries","type":"income"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/transactions", tc.body)
			s.NoError(s.handler.CreateTransaction(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/transactions", `{"amount":`)
	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_CategoryNotFound() {
	s.mockService.EXPECT().RecordTransaction(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, services.ErrCategoryNotFound)

	body := `{"amount":5,"date":"2024-03-15","category":"Unknown","type":"expense"}`
	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ServiceErrorCodes() {
	tests := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"invalid amount", fmt.Errorf("%w: %w", services.ErrInvalidTransaction, models.ErrInvalidAmount), http.StatusBadRequest, "TRANSACTION_001"},
		{"invalid type", fmt.Errorf("%w: %w", services.ErrInvalidTransaction, models.ErrInvalidTransactionType), http.StatusBadRequest, "TRANSACTION_002"},
		{"store failure", fmt.Errorf("%w: %w", services.ErrTransactionNotRecorded, stderrors.New("deadlock detected")), http.StatusInternalServerError, "TRANSACTION_003"},
		{"unexpected", stderrors.New("boom"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockService.EXPECT().RecordTransaction(gomock.Any(), testUserID, gomock.Any()).Return(nil, tt.err)

			body := `{"amount":5,"date":"2024-03-15","category":"Groceries","type":"expense"}`
			c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/transactions", body)
			s.NoError(s.handler.CreateTransaction(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(tt.wantCode, decodeError(rec).Error.Code)
			s.NotContains(rec.Body.String(), "deadlock")
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	dateRange := models.NewDateRange(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	s.mockService.EXPECT().ListTransactions(gomock.Any(), testUserID, dateRange).Return([]services.FormattedTransaction{
		{
			Transaction: models.Transaction{
				ID:     uuid.New(),
				Amount: decimal.NewFromInt(20),
				Date:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				Type:   models.TransactionTypeExpense,
			},
			FormattedAmount: "$20.00",
		},
	}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/transactions-history?from=2024-03-01&to=2024-03-31", nil)
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp []map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp, 1)
	s.Equal("$20.00", resp[0]["formattedAmount"])
	s.Equal(float64(20), resp[0]["amount"])
}
