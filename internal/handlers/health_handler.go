package handlers

import (
	"net/http"
	"time"

	"cardledger/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c)
	}

	if err := sqlDB.Ping(); err != nil {
		return h.unavailable(c)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		getTraceID(c),
		errors.WithDetails("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}
