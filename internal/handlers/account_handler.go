package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cardledger/internal/dto"
	"cardledger/internal/errors"
	"cardledger/internal/services"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount creates a new credit account for the requesting user
// @Summary Create a new account
// @Description Create a new credit card account at the end of the dashboard list
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.CreateAccountResponse "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Account: dto.NewAccountResponse(account, time.Now()),
		Message: "Account created successfully",
	})
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Description Retrieve one account with its derived metrics
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account details"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	account, err := h.accountService.GetAccount(userID, accountID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, time.Now()))
}

// ListAccounts retrieves all accounts for the requesting user
// @Summary List accounts
// @Description Retrieve all accounts in dashboard order, or sorted by the sort query parameter
// @Tags Accounts
// @Produce json
// @Param sort query string false "Sort field (position, name, credit_limit, amount_owed, interest_rate, minimum_payment)"
// @Success 200 {object} dto.AccountListResponse "List of accounts"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Unknown sort field"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accounts, err := h.accountService.ListAccounts(userID, c.QueryParam("sort"))
	if err != nil {
		if err == services.ErrInvalidSortField {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Unknown sort field"))
		}
		return SendSystemError(c, err)
	}

	today := time.Now()
	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, dto.NewAccountResponse(&accounts[i], today))
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: responses,
		Total:    len(responses),
	})
}

// UpdateAccount replaces the stored details of an account
// @Summary Update account
// @Description Replace the editable fields of an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "New account details"
// @Success 200 {object} dto.AccountResponse "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.UpdateAccount(userID, accountID, &req)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, time.Now()))
}

// DeleteAccount removes an account
// @Summary Delete account
// @Description Soft-delete an account from the dashboard
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account deleted"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	if err := h.accountService.DeleteAccount(userID, accountID); err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

// RecordPayment applies a payment against an account's balance
// @Summary Record a payment
// @Description Reduce the amount owed by the payment amount, settling at zero on overpayment
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.RecordPaymentRequest true "Payment amount"
// @Success 200 {object} dto.AccountResponse "Account after the payment"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid payment amount"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/payment [post]
func (h *AccountHandler) RecordPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid payment amount"))
	}

	account, err := h.accountService.ApplyPayment(userID, accountID, amount)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		if err == services.ErrInvalidPaymentAmount {
			return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, time.Now()))
}

// ReorderAccounts persists a new dashboard ordering
// @Summary Reorder accounts
// @Description Persist new dashboard positions for the user's accounts
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.ReorderAccountsRequest true "Account order"
// @Success 200 {object} dto.MessageResponse "Order saved"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_005 - Positions do not match stored accounts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/reorder [patch]
func (h *AccountHandler) ReorderAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	var req dto.ReorderAccountsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	positions, err := req.Positions()
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	if err := h.accountService.ReorderAccounts(userID, positions); err != nil {
		if err == services.ErrPositionConflict {
			return SendError(c, errors.AccountPositionConflict)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account order saved"})
}
