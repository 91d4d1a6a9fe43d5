package middleware

import (
	"strconv"

	"cardledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RequestMetrics counts every request on the shared metrics recorder,
// labeled by method and response status
func RequestMetrics(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			if metrics != nil {
				metrics.IncrementCounter("http_request", map[string]string{
					"method": c.Request().Method,
					"status": strconv.Itoa(c.Response().Status),
				})
			}

			return err
		}
	}
}
