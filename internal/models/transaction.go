package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive and fit decimal(15,2)")
	ErrMissingUserID          = errors.New("user ID is required")
	ErrMissingCategory        = errors.New("category is required")
	ErrMissingDate            = errors.New("transaction date is required")
)

// MaxTransactionAmount is the largest value a decimal(15,2) amount column holds.
var MaxTransactionAmount = decimal.New(1, 13).Sub(decimal.New(1, -2))

// ValidAmount reports whether amount is positive, has at most two decimal
// places and fits the amount columns.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.LessThanOrEqual(MaxTransactionAmount) &&
		amount.Equal(amount.Round(2))
}

// IsValid reports whether t is income or expense
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ParseTransactionType converts a raw string into a TransactionType
func ParseTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(raw)
	if !t.IsValid() {
		return "", ErrInvalidTransactionType
	}
	return t, nil
}

// Transaction is a single income or expense entry recorded by a user.
// Category and CategoryIcon are copies taken when the transaction was
// recorded; later changes to the category never reach them.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       string          `gorm:"type:varchar(255);not null;index:idx_transactions_user_date,priority:1" json:"userId"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date         time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2" json:"date"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Type         TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Category     string          `gorm:"type:varchar(50);not null" json:"category"`
	CategoryIcon string          `gorm:"type:varchar(50);not null" json:"categoryIcon"`
	CreatedAt    time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.Date = NormalizeDate(t.Date)

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return ErrMissingUserID
	}

	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	if !t.Amount.IsPositive() || t.Amount.GreaterThan(MaxTransactionAmount) {
		return ErrInvalidAmount
	}

	if t.Category == "" {
		return ErrMissingCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Split returns the amount as (expense, income); the side not matching the
// transaction type is zero.
func (t *Transaction) Split() (expense, income decimal.Decimal) {
	if t.IsExpense() {
		return t.Amount, decimal.Zero
	}
	return decimal.Zero, t.Amount
}

// NormalizeDate truncates a timestamp to midnight of its UTC calendar date.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
