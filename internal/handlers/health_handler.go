package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether the database is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// DependencyCheck checks a dependency the API can run without.
type DependencyCheck func(ctx context.Context) error

type HealthCheckHandler struct {
	db           HealthChecker
	dependencies map[string]DependencyCheck
}

type HealthOption func(*HealthCheckHandler)

// WithDependency adds a non-critical dependency. A failing check marks the
// service degraded but keeps it in rotation.
func WithDependency(name string, check DependencyCheck) HealthOption {
	return func(h *HealthCheckHandler) {
		h.dependencies[name] = check
	}
}

func NewHealthCheckHandler(db HealthChecker, opts ...HealthOption) *HealthCheckHandler {
	h := &HealthCheckHandler{db: db, dependencies: map[string]DependencyCheck{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type healthResponse struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck returns 503 SYSTEM_003 when the database is unreachable and
// otherwise reports each dependency as "up" or "down".
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("database: unreachable"),
		))
	}

	resp := healthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
		Checks: map[string]string{"database": "up"},
	}

	names := make([]string, 0, len(h.dependencies))
	for name := range h.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.dependencies[name](ctx); err != nil {
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "up"
	}

	return c.JSON(http.StatusOK, resp)
}
