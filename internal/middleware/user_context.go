package middleware

import (
	"log/slog"

	"cardledger/internal/errors"
	"cardledger/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDHeader carries the caller's identity. The dashboard is a
	// single-user tool fronted by a reverse proxy, so the header stands in
	// for a full authentication layer.
	UserIDHeader = "X-User-ID"
	// UserIDContextKey is the context key handlers read the identity from
	UserIDContextKey = "user_id"
)

// UserContextConfig controls how the identity middleware resolves a user
type UserContextConfig struct {
	// DevUserID is used when the header is absent. A nil UUID disables the
	// fallback, which is how production runs.
	DevUserID uuid.UUID
}

// UserContext resolves the caller's identity from the X-User-ID header and
// places it on the request context as a uuid.UUID. Requests without a header
// fall back to the configured development identity; if none is configured
// the request is rejected.
func UserContext(cfg UserContextConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(UserIDHeader)

			if raw == "" {
				if cfg.DevUserID == uuid.Nil {
					return handlers.SendError(c, errors.UserMissingIdentity)
				}
				c.Set(UserIDContextKey, cfg.DevUserID)
				return next(c)
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				slog.Warn("Rejected request with malformed user id header",
					"trace_id", GetTraceID(c),
					"path", c.Request().URL.Path,
				)
				return handlers.SendError(c, errors.UserInvalidIdentity)
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}
