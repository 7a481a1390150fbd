package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var panicsRecovered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_panics_recovered_total",
		Help: "Handler panics turned into 500 responses, by route",
	},
	[]string{"route"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic
// value and stack go to the log only. http.ErrAbortHandler is re-raised so
// net/http can drop the connection.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				panicsRecovered.WithLabelValues(c.Path()).Inc()

				logger := zerolog.Ctx(c.Request().Context())
				logger.Error().
					Str("trace_id", traceID).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", debug.Stack()).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("panic recovered")

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
