package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type SettingsHandler struct {
	settingsService services.UserSettingsServiceInterface
	logger          zerolog.Logger
}

func NewSettingsHandler(settingsService services.UserSettingsServiceInterface, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

// GetUserSettings creates default settings on first access
func (h *SettingsHandler) GetUserSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	settings, err := h.settingsService.GetUserSettings(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserSettingsResponse(settings))
}

func (h *SettingsHandler) UpdateCurrency(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		if _, bad := validation.FieldErrors(err)["currency"]; bad && req.Currency != "" {
			return SendError(c, errors.SettingsUnsupportedCurrency, errors.WithDetails(req.Currency))
		}
		return sendValidationError(c, err)
	}

	settings, err := h.settingsService.UpdateUserCurrency(c.Request().Context(), userID, req.Currency)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewUserSettingsResponse(settings)})
}
