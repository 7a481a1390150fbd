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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	logger             zerolog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// CreateTransaction records an income or expense and updates the rollups
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	transaction, err := h.transactionService.RecordTransaction(c.Request().Context(), userID, services.RecordTransactionParams{
		Amount:      req.Amount,
		Date:        req.Date.Time,
		Description: req.Description,
		Type:        models.TransactionType(req.Type),
		Category:    req.Category,
	})
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.NewTransactionResponse(transaction),
	})
}

// ListTransactions returns the transactions of a date range, newest first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query, ok, err := bindDateRange(c)
	if !ok {
		return err
	}

	transactions, err := h.transactionService.ListTransactions(c.Request().Context(), userID, query.DateRange())
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		item := dto.NewTransactionResponse(&transactions[i].Transaction)
		item.FormattedAmount = transactions[i].FormattedAmount
		resp = append(resp, item)
	}

	return c.JSON(http.StatusOK, resp)
}
