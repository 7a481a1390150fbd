package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive range of UTC calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalizes both ends to UTC midnight.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: NormalizeDate(from), To: NormalizeDate(to)}
}

// Days returns the number of whole days between From and To. It is negative
// when To precedes From.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours() / 24)
}

// BalanceStats sums a user's transactions over a date range.
type BalanceStats struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Balance returns income minus expenses
func (b BalanceStats) Balance() decimal.Decimal {
	return b.Income.Sub(b.Expenses)
}

// CategoryStat is the total of one category over a date range.
type CategoryStat struct {
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Overview combines balance and per-category totals for one date range.
type Overview struct {
	Balance    BalanceStats   `json:"balance"`
	Categories []CategoryStat `json:"categories"`
}
