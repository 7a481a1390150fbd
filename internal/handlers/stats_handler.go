package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type StatsHandler struct {
	statsService services.StatsServiceInterface
	logger       zerolog.Logger
}

func NewStatsHandler(statsService services.StatsServiceInterface, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// bindDateRange reports false when a response has already been written
func bindDateRange(c echo.Context) (dto.DateRangeQuery, bool, error) {
	var query dto.DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return query, false, SendError(c, errors.ValidationInvalidDate, errors.WithDetails("from and to must be valid dates"))
	}
	if err := c.Validate(query); err != nil {
		return query, false, sendValidationError(c, err)
	}
	return query, true, nil
}

func (h *StatsHandler) GetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query, ok, err := bindDateRange(c)
	if !ok {
		return err
	}

	stats, err := h.statsService.GetBalanceStats(c.Request().Context(), userID, query.DateRange())
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewBalanceResponse(stats))
}

func (h *StatsHandler) GetCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query, ok, err := bindDateRange(c)
	if !ok {
		return err
	}

	stats, err := h.statsService.GetCategoryStats(c.Request().Context(), userID, query.DateRange())
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryStatResponses(stats))
}

func (h *StatsHandler) GetOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query, ok, err := bindDateRange(c)
	if !ok {
		return err
	}

	overview, err := h.statsService.GetOverview(c.Request().Context(), userID, query.DateRange())
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewOverviewResponse(overview))
}
