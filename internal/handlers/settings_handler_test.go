package handlers

import (
	"net/http"
	"testing"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type SettingsHandlerSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockUserSettingsServiceInterface
	handler     *SettingsHandler
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerSuite))
}

func (s *SettingsHandlerSuite) SetupTest() {
	s.echo = newTestEcho()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockUserSettingsServiceInterface(s.ctrl)
	s.handler = NewSettingsHandler(s.mockService, zerolog.Nop())
}

func (s *SettingsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SettingsHandlerSuite) TestGetUserSettings() {
	s.mockService.EXPECT().GetUserSettings(gomock.Any(), testUserID).
		Return(&models.UserSettings{UserID: testUserID, Currency: "USD"}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/user-settings", nil)
	s.NoError(s.handler.GetUserSettings(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"currency":"USD"`)
	s.Contains(rec.Body.String(), `"locale":"en-US"`)
}

func (s *SettingsHandlerSuite) TestUpdateCurrency() {
	s.mockService.EXPECT().UpdateUserCurrency(gomock.Any(), testUserID, "EUR").
		Return(&models.UserSettings{UserID: testUserID, Currency: "EUR"}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/api/user-settings/currency", `{"currency":"EUR"}`)
	s.NoError(s.handler.UpdateCurrency(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"locale":"de-DE"`)
}

func (s *SettingsHandlerSuite) TestUpdateCurrency_Unsupported() {
	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/api/user-settings/currency", `{"currency":"BTC"}`)
	s.NoError(s.handler.UpdateCurrency(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("SETTINGS_001", decodeError(rec).Error.Code)
}

func (s *SettingsHandlerSuite) TestUpdateCurrency_Missing() {
	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/api/user-settings/currency", `{}`)
	s.NoError(s.handler.UpdateCurrency(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
}
