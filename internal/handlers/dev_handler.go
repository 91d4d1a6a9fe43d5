package handlers

import (
	"fmt"
	"net/http"

	"cardledger/internal/models"
	"cardledger/internal/repositories"
	"cardledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	accountRepo repositories.AccountRepositoryInterface
	seeder      services.AccountSeederInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(accountRepo repositories.AccountRepositoryInterface) *DevHandler {
	return &DevHandler{
		accountRepo: accountRepo,
		seeder:      services.NewAccountSeeder(),
	}
}

// SeedAccounts generates a realistic card portfolio for the current user
//
// Method: POST /api/v1/dev/seed-accounts
// Environment: Development only
//
// Query parameters:
//   - count: Number of accounts to generate (default: 5, max: 15)
//
// Success Response: 200 OK
//   - message: Success message
//   - accounts_created: Number of accounts created
func (h *DevHandler) SeedAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}

	count := getIntQueryParam(c, "count", 5)
	if count < 1 {
		count = 1
	}
	if count > 15 {
		count = 15
	}

	startPosition, err := h.accountRepo.NextPosition(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to determine next position")
	}

	accounts := h.seeder.GenerateAccounts(userID, count, startPosition)

	created := 0
	for _, account := range accounts {
		if err := h.accountRepo.Create(account); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "seed accounts created successfully",
		"accounts_created": created,
	})
}

// ClearAccounts removes every account the current user has
//
// Method: DELETE /api/v1/dev/accounts
// Environment: Development only
//
// Success Response: 200 OK
//   - message: Success message
//   - accounts_deleted: Number of accounts deleted
func (h *DevHandler) ClearAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}

	accounts, err := h.accountRepo.GetByUserID(userID, models.SortByPosition)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list accounts")
	}

	deleted := 0
	for _, account := range accounts {
		if err := h.accountRepo.Delete(userID, account.ID); err != nil {
			continue
		}
		deleted++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "accounts cleared successfully",
		"accounts_deleted": deleted,
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
