package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	// TraceIDHeader carries the trace ID in both directions.
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	maxInboundTraceIDLength = 128
)

// RequestID assigns a trace ID to each request, echoes it in the response
// header and attaches a logger carrying it to the request context. Services
// log through that logger so their entries share the ID. Inbound IDs are kept
// only when they are short and made of safe characters.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !validInboundTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			ctx := log.Logger.With().Str("trace_id", traceID).Logger().WithContext(req.Context())
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

func validInboundTraceID(id string) bool {
	if id == "" || len(id) > maxInboundTraceIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}

// GetTraceID returns the request's trace ID, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
