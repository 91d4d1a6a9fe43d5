package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrMissingIdentity is returned when the user context is invalid
var ErrMissingIdentity = fmt.Errorf("missing user identity")

// getUserIDFromContext extracts the user ID placed on the context by the
// UserContext middleware
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrMissingIdentity
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrMissingIdentity
	}

	return userID, nil
}

// parseAccountID parses the accountId path parameter
func parseAccountID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("accountId"))
}
