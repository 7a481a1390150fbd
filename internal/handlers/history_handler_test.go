package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HistoryHandlerSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockHistoryServiceInterface
	handler     *HistoryHandler
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerSuite))
}

func (s *HistoryHandlerSuite) SetupTest() {
	s.echo = newTestEcho()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockHistoryServiceInterface(s.ctrl)
	s.handler = NewHistoryHandler(s.mockService, zerolog.Nop())
}

func (s *HistoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HistoryHandlerSuite) TestGetHistoryPeriods() {
	s.mockService.EXPECT().GetAvailableYears(gomock.Any(), testUserID).Return([]int{2021, 2023}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/history-periods", nil)
	s.NoError(s.handler.GetHistoryPeriods(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[2021,2023]`, rec.Body.String())
}

func (s *HistoryHandlerSuite) TestGetHistoryPeriods_Unauthenticated() {
	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/history-periods", nil)
	c.Set(UserIDContextKey, nil)

	s.NoError(s.handler.GetHistoryPeriods(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", decodeError(rec).Error.Code)
}

func (s *HistoryHandlerSuite) TestGetHistoryData_Month() {
	day := 1
	s.mockService.EXPECT().
		GetHistory(gomock.Any(), testUserID, models.TimeframeMonth, models.Period{Year: 2024, Month: 1}).
		Return([]models.HistoryData{
			{Year: 2024, Month: 1, Day: &day, Expense: decimal.RequireFromString("12.5"), Income: decimal.Zero},
		}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/history-data?timeframe=month&month=1&year=2024", nil)
	s.NoError(s.handler.GetHistoryData(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"expense":12.5,"income":0,"year":2024,"month":1,"day":1}]`, rec.Body.String())
}

func (s *HistoryHandlerSuite) TestGetHistoryData_EmptyIsArray() {
	s.mockService.EXPECT().
		GetHistory(gomock.Any(), testUserID, models.TimeframeYear, models.Period{Year: 2024, Month: 0}).
		Return([]models.HistoryData{}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/history-data?timeframe=year&month=0&year=2024", nil)
	s.NoError(s.handler.GetHistoryData(c))
	s.Equal(http.StatusOK, rec.Code)

	var body []interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.NotNil(body)
	s.Empty(body)
}

func (s *HistoryHandlerSuite) TestGetHistoryData_InvalidQuery() {
	testCases := []struct {
		name  string
		query string
	}{
		{"unknown timeframe", "timeframe=week&month=0&year=2024"},
		{"month out of range", "timeframe=month&month=12&year=2024"},
		{"year too small", "timeframe=year&month=0&year=1999"},
		{"missing timeframe", "month=0&year=2024"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/history-data?"+tc.query, nil)
			s.NoError(s.handler.GetHistoryData(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
		})
	}
}

func (s *HistoryHandlerSuite) TestGetHistoryData_NonNumericMonth() {
	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/history-data?timeframe=month&month=feb&year=2024", nil)
	s.NoError(s.handler.GetHistoryData(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeError(rec).Error.Code)
}
