package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagDateRange is reported when a from/to range is reversed or too long.
const TagDateRange = "date_range"

// DefaultMaxDateRangeDays bounds stats and history ranges unless configured otherwise.
const DefaultMaxDateRangeDays = 90

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate         *validator.Validate
	maxDateRangeDays int
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

type Option func(*Validator)

// WithMaxDateRangeDays sets the longest from/to span accepted, in days.
func WithMaxDateRangeDays(days int) Option {
	return func(v *Validator) {
		v.maxDateRangeDays = days
	}
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		validate:         validator.New(),
		maxDateRangeDays: DefaultMaxDateRangeDays,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(dto.Date); ok {
			return d.Time
		}
		return nil
	}, dto.Date{})

	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.validate.RegisterValidation("transaction_amount", validateTransactionAmount)
	_ = v.validate.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.validate.RegisterValidation("timeframe", validateTimeframe)
	_ = v.validate.RegisterValidation("currency_code", validateCurrencyCode)

	v.validate.RegisterStructValidation(v.validateDateRange, dto.DateRangeQuery{})

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func (v *Validator) MaxDateRangeDays() int {
	return v.maxDateRangeDays
}

func (v *Validator) validateDateRange(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(dto.DateRangeQuery)
	if !ok || q.From.IsZero() || q.To.IsZero() {
		return
	}

	days := q.DateRange().Days()
	if days < 0 || days > v.maxDateRangeDays {
		sl.ReportError(q.To, "to", "To", TagDateRange, strconv.Itoa(v.maxDateRangeDays))
	}
}

// validateTransactionAmount accepts amounts models.ValidAmount allows
func validateTransactionAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		amount, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return models.ValidAmount(amount)
	case reflect.Float32, reflect.Float64:
		return models.ValidAmount(decimal.NewFromFloat(fl.Field().Float()))
	default:
		return false
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

func validateTimeframe(fl validator.FieldLevel) bool {
	return models.Timeframe(fl.Field().String()).IsValid()
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsSupportedCurrency(fl.Field().String())
}

// IsDateRangeError reports whether err contains a date range violation
func IsDateRangeError(err error) bool {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return false
	}
	for _, fe := range validationErrs {
		if fe.Tag() == TagDateRange {
			return true
		}
	}
	return false
}

// FieldErrors maps each failing field to a readable message. It returns nil
// when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = FormatFieldError(fe)
	}
	return fieldErrors
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "transaction_amount":
		return "must be a positive amount below 10000000000000 with at most 2 decimal places"
	case "transaction_type":
		return "must be income or expense"
	case "timeframe":
		return "must be month or year"
	case "currency_code":
		return "must be a supported currency"
	case TagDateRange:
		return fmt.Sprintf("must be on or after from and at most %s days later", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
