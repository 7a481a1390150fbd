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

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
	logger          zerolog.Logger
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, logger: logger}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListCategoriesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationQueryParams)
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	categories, err := h.categoryService.ListCategories(c.Request().Context(), userID, models.TransactionType(query.Type))
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponses(categories))
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	category, err := h.categoryService.CreateCategory(
		c.Request().Context(),
		userID,
		req.Name,
		req.Icon,
		models.TransactionType(req.Type),
	)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: dto.NewCategoryResponse(category)})
}

// DeleteCategory keeps the category name and icon on recorded transactions
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.DeleteCategoryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationQueryParams)
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), userID, query.Name, models.TransactionType(query.Type)); err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted"})
}
