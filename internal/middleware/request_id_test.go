package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(req *http.Request, h echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(RequestID()(h)(c))
	return rec
}

func (s *RequestIDTestSuite) TestGeneratesUUID() {
	var traceID string
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		traceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, traceID)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestKeepsInboundTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "upstream-trace-42")

	var traceID string
	rec := s.serve(req, func(c echo.Context) error {
		traceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Equal("upstream-trace-42", traceID)
	s.Equal("upstream-trace-42", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesUnsafeTraceID() {
	tests := map[string]string{
		"oversized":     strings.Repeat("x", maxInboundTraceIDLength+1),
		"whitespace":    "trace id",
		"json breakout": `abc","level":"debug`,
		"non ascii":     "trace-ü",
	}

	for name, inbound := range tests {
		s.Run(name, func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(TraceIDHeader, inbound)

			rec := s.serve(req, func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			s.NotEqual(inbound, rec.Header().Get(TraceIDHeader))
			s.Len(rec.Header().Get(TraceIDHeader), 36)
		})
	}
}

func (s *RequestIDTestSuite) TestValidInboundTraceID() {
	s.True(validInboundTraceID("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"))
	s.True(validInboundTraceID("svc.gateway:1234_abc"))
	s.False(validInboundTraceID(""))
	s.False(validInboundTraceID("a\nb"))
}

func (s *RequestIDTestSuite) TestAttachesContextLogger() {
	s.serve(httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		logger := zerolog.Ctx(c.Request().Context())
		s.NotEqual(zerolog.Disabled, logger.GetLevel())
		return c.NoContent(http.StatusOK)
	})
}

func (s *RequestIDTestSuite) TestGetTraceIDEmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
