package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the route handlers registered by RegisterRoutes
type Handlers struct {
	Health       *HealthCheckHandler
	History      *HistoryHandler
	Stats        *StatsHandler
	Transactions *TransactionHandler
	Categories   *CategoryHandler
	Settings     *SettingsHandler
}

// RegisterRoutes sets up all API routes. Every /api route runs behind auth.
func RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api", auth)

	api.GET("/history-periods", h.History.GetHistoryPeriods)
	api.GET("/history-data", h.History.GetHistoryData)

	stats := api.Group("/stats")
	stats.GET("/balance", h.Stats.GetBalance)
	stats.GET("/categories", h.Stats.GetCategories)
	stats.GET("/overview", h.Stats.GetOverview)

	api.GET("/transactions-history", h.Transactions.ListTransactions)
	api.POST("/transactions", h.Transactions.CreateTransaction)

	api.GET("/categories", h.Categories.ListCategories)
	api.POST("/categories", h.Categories.CreateCategory)
	api.DELETE("/categories", h.Categories.DeleteCategory)

	api.GET("/user-settings", h.Settings.GetUserSettings)
	api.PATCH("/user-settings/currency", h.Settings.UpdateCurrency)
}
