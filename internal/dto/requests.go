package dto

import (
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /api/transactions
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"transaction_amount"`
	Description string          `json:"description" validate:"max=255"`
	Date        Date            `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"required,max=50"`
	Type        string          `json:"type" validate:"required,transaction_type"`
}

// HistoryDataQuery is the query of GET /api/history-data. Month is 0-indexed.
type HistoryDataQuery struct {
	Timeframe string `query:"timeframe" validate:"required,timeframe"`
	Month     int    `query:"month" validate:"min=0,max=11"`
	Year      int    `query:"year" validate:"min=2000,max=3000"`
}

func (q HistoryDataQuery) Period() models.Period {
	return models.Period{Year: q.Year, Month: q.Month}
}

// DateRangeQuery is the inclusive from/to range of the stats and history
// endpoints. The allowed span is checked by struct-level validation.
type DateRangeQuery struct {
	From Date `query:"from" validate:"required"`
	To   Date `query:"to" validate:"required"`
}

func (q DateRangeQuery) DateRange() models.DateRange {
	return models.NewDateRange(q.From.Time, q.To.Time)
}

type ListCategoriesQuery struct {
	Type string `query:"type" validate:"omitempty,transaction_type"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=20"`
	Icon string `json:"icon" validate:"max=20"`
	Type string `json:"type" validate:"required,transaction_type"`
}

type DeleteCategoryQuery struct {
	Name string `query:"name" validate:"required"`
	Type string `query:"type" validate:"required,transaction_type"`
}

type UpdateCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,currency_code"`
}
