package dto

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// HistoryPoint is one chart bucket. Day is set only for month timeframes.
type HistoryPoint struct {
	Expense float64 `json:"expense"`
	Income  float64 `json:"income"`
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Day     *int    `json:"day,omitempty"`
}

func NewHistoryPoints(data []models.HistoryData) []HistoryPoint {
	points := make([]HistoryPoint, 0, len(data))
	for _, d := range data {
		points = append(points, HistoryPoint{
			Expense: d.Expense.InexactFloat64(),
			Income:  d.Income.InexactFloat64(),
			Year:    d.Year,
			Month:   d.Month,
			Day:     d.Day,
		})
	}
	return points
}

type BalanceResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

func NewBalanceResponse(stats *models.BalanceStats) BalanceResponse {
	return BalanceResponse{
		Income:   stats.Income.InexactFloat64(),
		Expenses: stats.Expenses.InexactFloat64(),
	}
}

type CategoryStatResponse struct {
	Type     models.TransactionType `json:"type"`
	Category string                 `json:"category"`
	Amount   float64                `json:"amount"`
}

func NewCategoryStatResponses(stats []models.CategoryStat) []CategoryStatResponse {
	resp := make([]CategoryStatResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, CategoryStatResponse{
			Type:     s.Type,
			Category: s.Category,
			Amount:   s.Amount.InexactFloat64(),
		})
	}
	return resp
}

type OverviewResponse struct {
	Balance    BalanceResponse        `json:"balance"`
	Categories []CategoryStatResponse `json:"categories"`
}

func NewOverviewResponse(o *models.Overview) OverviewResponse {
	return OverviewResponse{
		Balance:    NewBalanceResponse(&o.Balance),
		Categories: NewCategoryStatResponses(o.Categories),
	}
}

// TransactionResponse is a transaction as shown in the history table
type TransactionResponse struct {
	ID              uuid.UUID              `json:"id"`
	Amount          float64                `json:"amount"`
	FormattedAmount string                 `json:"formattedAmount,omitempty"`
	Date            Date                   `json:"date"`
	Description     string                 `json:"description"`
	Type            models.TransactionType `json:"type"`
	Category        string                 `json:"category"`
	CategoryIcon    string                 `json:"categoryIcon"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Amount:       t.Amount.InexactFloat64(),
		Date:         NewDate(t.Date),
		Description:  t.Description,
		Type:         t.Type,
		Category:     t.Category,
		CategoryIcon: t.CategoryIcon,
		CreatedAt:    t.CreatedAt,
	}
}

type CategoryResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Icon      string                 `json:"icon"`
	Type      models.TransactionType `json:"type"`
	CreatedAt time.Time              `json:"createdAt"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
	}
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, NewCategoryResponse(&categories[i]))
	}
	return resp
}

type UserSettingsResponse struct {
	UserID    string    `json:"userId"`
	Currency  string    `json:"currency"`
	Locale    string    `json:"locale"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserSettingsResponse(s *models.UserSettings) UserSettingsResponse {
	resp := UserSettingsResponse{
		UserID:    s.UserID,
		Currency:  s.Currency,
		UpdatedAt: s.UpdatedAt,
	}
	if c, ok := models.LookupCurrency(s.Currency); ok {
		resp.Locale = c.Locale
	}
	return resp
}
