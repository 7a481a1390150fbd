package services

import "errors"

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidTransaction    = errors.New("invalid transaction")
	ErrUnsupportedCurrency   = errors.New("unsupported currency")
	ErrInvalidTimeframe      = errors.New("invalid timeframe")
	ErrInvalidPeriod         = errors.New("invalid period")
	ErrInvalidDateRange      = errors.New("invalid date range")

	// ErrTransactionNotRecorded wraps store failures of RecordTransaction.
	// Nothing was written when it is returned.
	ErrTransactionNotRecorded = errors.New("transaction not recorded")
)
