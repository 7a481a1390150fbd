package handlers

import (
	stderrors "errors"
	"fmt"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// UserIDContextKey holds the identity provider subject set by the auth middleware
const UserIDContextKey = "user_id"

// getUserIDFromContext returns ErrUnauthorized if the user ID is missing
func getUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get(UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

// sendValidationError renders validator failures. Date range violations get
// their own code so clients can tell them apart from malformed input.
func sendValidationError(c echo.Context, err error) error {
	fieldErrors := validation.FieldErrors(err)
	if fieldErrors == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	code := errors.ValidationGeneral
	if validation.IsDateRangeError(err) {
		code = errors.ValidationDateRange
	}
	errorResponse := errors.NewFieldValidationError(code, fieldErrors, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// handleServiceError maps service sentinel errors to API error codes
func handleServiceError(c echo.Context, logger zerolog.Logger, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryAlreadyExists):
		return SendError(c, errors.CategoryAlreadyExists)
	case stderrors.Is(err, services.ErrUnsupportedCurrency):
		return SendError(c, errors.SettingsUnsupportedCurrency)
	case stderrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.ValidationDateRange)
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, services.ErrTransactionNotRecorded):
		logger.Error().Err(err).
			Str("trace_id", getTraceID(c)).
			Msg("transaction not recorded")
		return SendError(c, errors.TransactionRecordFailed)
	case stderrors.Is(err, services.ErrInvalidTransaction),
		stderrors.Is(err, services.ErrInvalidCategory),
		stderrors.Is(err, services.ErrInvalidTimeframe),
		stderrors.Is(err, services.ErrInvalidPeriod):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		logger.Error().Err(err).
			Str("trace_id", getTraceID(c)).
			Str("path", c.Path()).
			Msg("request failed")
		return SendSystemError(c, err)
	}
}
