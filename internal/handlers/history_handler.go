package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HistoryHandler serves the chart endpoints backed by the rollup tables
type HistoryHandler struct {
	historyService services.HistoryServiceInterface
	logger         zerolog.Logger
}

func NewHistoryHandler(historyService services.HistoryServiceInterface, logger zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, logger: logger}
}

// GetHistoryPeriods returns the years that have data, ascending
func (h *HistoryHandler) GetHistoryPeriods(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	years, err := h.historyService.GetAvailableYears(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, years)
}

// GetHistoryData returns a zero-filled series, or [] when the period is empty
func (h *HistoryHandler) GetHistoryData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.HistoryDataQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationQueryParams, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	history, err := h.historyService.GetHistory(
		c.Request().Context(),
		userID,
		models.Timeframe(query.Timeframe),
		query.Period(),
	)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewHistoryPoints(history))
}
