package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Error responses written by the HTTP error handler",
	},
	[]string{"code", "route", "status"},
)

// statusCodes maps the statuses echo raises itself (routing, binding, body
// limits) to API error codes.
var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthInvalidToken,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationInvalidFormat,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

func codeForStatus(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}

// resolveError turns err into the response body and status. echo errors keep
// their status and message, validator errors become per-field details and
// anything else is reported as a system error without its cause.
func resolveError(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		resp := errors.NewErrorResponse(
			codeForStatus(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)),
		)
		return resp, httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		code := errors.ValidationGeneral
		if validation.IsDateRangeError(fieldErrs) {
			code = errors.ValidationDateRange
		}
		return errors.NewFieldValidationError(code, validation.FieldErrors(fieldErrs), traceID), http.StatusBadRequest
	}

	resp := errors.NewSystemError(err, traceID)
	return resp, resp.GetHTTPStatus()
}

// CustomHTTPErrorHandler writes every error that reaches echo in the standard
// error envelope, logs it and counts it by code and route.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	resp, status := resolveError(err, traceID)

	logger := zerolog.Ctx(c.Request().Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("trace_id", traceID).
		Str("error_code", resp.Error.Code).
		Int("status", status).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("request failed")

	apiErrorsTotal.WithLabelValues(resp.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, resp)
	}
	if writeErr != nil {
		logger.Error().Err(writeErr).Str("trace_id", traceID).Msg("failed to write error response")
	}
}
