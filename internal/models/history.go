package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Timeframe selects the bucket size of a history series.
type Timeframe string

const (
	// TimeframeMonth yields one bucket per day of a month.
	TimeframeMonth Timeframe = "month"
	// TimeframeYear yields one bucket per month of a year.
	TimeframeYear Timeframe = "year"
)

const (
	MinHistoryYear = 2000
	MaxHistoryYear = 3000
	MonthsInYear   = 12
)

var (
	ErrInvalidTimeframe = errors.New("timeframe must be month or year")
	ErrInvalidPeriod    = errors.New("invalid history period")
)

// IsValid reports whether tf is a known timeframe
func (tf Timeframe) IsValid() bool {
	return tf == TimeframeMonth || tf == TimeframeYear
}

// Period identifies the range a history series covers. Month is 0-indexed
// and only meaningful for TimeframeMonth.
type Period struct {
	Year  int
	Month int
}

// Validate checks the period bounds
func (p Period) Validate() error {
	if p.Year < MinHistoryYear || p.Year > MaxHistoryYear {
		return ErrInvalidPeriod
	}
	if p.Month < 0 || p.Month >= MonthsInYear {
		return ErrInvalidPeriod
	}
	return nil
}

// DaysInMonth returns the number of days of a 0-indexed month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthHistory is the per-day rollup of a user's transactions.
type MonthHistory struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key" json:"-"`
	UserID  string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_month_histories_bucket,priority:1" json:"userId"`
	Day     int             `gorm:"not null;uniqueIndex:idx_month_histories_bucket,priority:2" json:"day"`
	Month   int             `gorm:"not null;uniqueIndex:idx_month_histories_bucket,priority:3" json:"month"`
	Year    int             `gorm:"not null;uniqueIndex:idx_month_histories_bucket,priority:4" json:"year"`
	Expense decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"expense"`
	Income  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
}

func (MonthHistory) TableName() string {
	return "month_histories"
}

// BeforeCreate hook for MonthHistory
func (h *MonthHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// YearHistory is the per-month rollup of a user's transactions.
type YearHistory struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key" json:"-"`
	UserID  string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_year_histories_bucket,priority:1" json:"userId"`
	Month   int             `gorm:"not null;uniqueIndex:idx_year_histories_bucket,priority:2" json:"month"`
	Year    int             `gorm:"not null;uniqueIndex:idx_year_histories_bucket,priority:3" json:"year"`
	Expense decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"expense"`
	Income  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
}

func (YearHistory) TableName() string {
	return "year_histories"
}

// BeforeCreate hook for YearHistory
func (h *YearHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// NewMonthHistoryDelta builds the daily rollup row a transaction contributes,
// keyed by the UTC calendar date of the transaction.
func NewMonthHistoryDelta(t *Transaction) *MonthHistory {
	date := t.Date.UTC()
	expense, income := t.Split()
	return &MonthHistory{
		UserID:  t.UserID,
		Day:     date.Day(),
		Month:   int(date.Month()) - 1,
		Year:    date.Year(),
		Expense: expense,
		Income:  income,
	}
}

// NewYearHistoryDelta builds the monthly rollup row a transaction contributes.
func NewYearHistoryDelta(t *Transaction) *YearHistory {
	date := t.Date.UTC()
	expense, income := t.Split()
	return &YearHistory{
		UserID:  t.UserID,
		Month:   int(date.Month()) - 1,
		Year:    date.Year(),
		Expense: expense,
		Income:  income,
	}
}

// HistoryBucketTotal is one grouped row read back from a rollup table.
// Bucket is the month (year timeframe) or the day (month timeframe).
type HistoryBucketTotal struct {
	Bucket  int
	Expense decimal.Decimal
	Income  decimal.Decimal
}

// HistoryData is one point of a history chart series.
type HistoryData struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Day     *int            `json:"day,omitempty"`
	Expense decimal.Decimal `json:"expense"`
	Income  decimal.Decimal `json:"income"`
}
