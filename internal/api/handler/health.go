package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Check tests one dependency.
type Check func(ctx context.Context) error

// HealthHandler handles GET /health, the liveness check.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness returns 200 as long as the process serves requests.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles the readiness check and the database
// connectivity check.
type HealthDependenciesHandler struct {
	database Check
	checks   map[string]Check
	log      zerolog.Logger
}

// NewHealthDependenciesHandler takes the database check used by /test-db and
// any further checks reported by /health/ready.
func NewHealthDependenciesHandler(database Check, others map[string]Check, log zerolog.Logger) *HealthDependenciesHandler {
	checks := map[string]Check{"mongodb": database}
	for name, c := range others {
		checks[name] = c
	}
	return &HealthDependenciesHandler{database: database, checks: checks, log: log}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

type testDBResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Readiness reports each dependency and answers 503 if any is down.
//
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

// TestDB connects to the database (if not yet connected) and pings it.
//
// @Summary      Database connectivity check
// @Tags         health
// @Produce      json
// @Success      200  {object}  testDBResponse
// @Failure      500  {object}  testDBResponse
// @Router       /test-db [get]
func (h *HealthDependenciesHandler) TestDB(c echo.Context) error {
	if err := h.database(c.Request().Context()); err != nil {
		h.log.Error().Err(err).Msg("database connection check failed")
		return c.JSON(http.StatusInternalServerError, testDBResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, testDBResponse{Success: true, Message: "Database connected successfully!"})
}
