package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cardledger/internal/bankfeed"
	"cardledger/internal/dto"
	"cardledger/internal/errors"
	"cardledger/internal/services"
)

// BankFeedHandler handles bank feed linking and refresh requests
type BankFeedHandler struct {
	bankFeedService services.BankFeedServiceInterface
}

// NewBankFeedHandler creates a new bank feed handler
func NewBankFeedHandler(bankFeedService services.BankFeedServiceInterface) *BankFeedHandler {
	return &BankFeedHandler{bankFeedService: bankFeedService}
}

// CreateLinkToken starts a link session for the user
// @Summary Create link token
// @Description Start a new bank feed link session
// @Tags BankFeed
// @Produce json
// @Success 200 {object} dto.LinkTokenResponse "Link session token"
// @Failure 502 {object} errors.ErrorResponse "BANKLINK_003 - Provider error"
// @Router /bankfeed/link-token [post]
func (h *BankFeedHandler) CreateLinkToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	token, err := h.bankFeedService.CreateLinkToken(c.Request().Context(), userID)
	if err != nil {
		return sendBankFeedError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LinkTokenResponse{LinkToken: token})
}

// ExchangeToken trades a public token for permanent credentials
// @Summary Exchange public token
// @Description Trade the public token from a completed link session for an access token
// @Tags BankFeed
// @Accept json
// @Produce json
// @Param request body dto.ExchangeTokenRequest true "Public token"
// @Success 200 {object} dto.ExchangeTokenResponse "Permanent credentials"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 502 {object} errors.ErrorResponse "BANKLINK_004 - Token exchange failed"
// @Router /bankfeed/exchange [post]
func (h *BankFeedHandler) ExchangeToken(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	var req dto.ExchangeTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	exchange, err := h.bankFeedService.ExchangePublicToken(c.Request().Context(), req.PublicToken)
	if err != nil {
		return SendError(c, errors.BankLinkTokenExchange)
	}

	return c.JSON(http.StatusOK, dto.ExchangeTokenResponse{
		AccessToken: exchange.AccessToken,
		ItemID:      exchange.ItemID,
	})
}

// LinkAccount attaches bank feed credentials to an account
// @Summary Link an account
// @Description Match the account against the institution's credit cards and store feed credentials
// @Tags BankFeed
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.LinkAccountRequest true "Feed credentials"
// @Success 200 {object} dto.AccountResponse "Linked account"
// @Failure 404 {object} errors.ErrorResponse "BANKLINK_002 - No matching account at the institution"
// @Failure 502 {object} errors.ErrorResponse "BANKLINK_003 - Provider error"
// @Router /accounts/{accountId}/link [post]
func (h *BankFeedHandler) LinkAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.LinkAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.bankFeedService.LinkAccount(c.Request().Context(), userID, accountID, req.AccessToken, req.ItemID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		if err == services.ErrNoMatchingAccount {
			return SendError(c, errors.BankLinkNoMatch)
		}
		return sendBankFeedError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, time.Now()))
}

// RefreshAccount refreshes one account from its bank feed
// @Summary Refresh an account
// @Description Overwrite the stored balance, limit, minimum payment and due date with live data
// @Tags BankFeed
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Refreshed account"
// @Failure 404 {object} errors.ErrorResponse "BANKLINK_005 - Linked account gone at the institution"
// @Failure 422 {object} errors.ErrorResponse "BANKLINK_001 - Account is not linked"
// @Failure 502 {object} errors.ErrorResponse "BANKLINK_003 - Provider error"
// @Router /accounts/{accountId}/refresh [post]
func (h *BankFeedHandler) RefreshAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	account, err := h.bankFeedService.RefreshAccount(c.Request().Context(), userID, accountID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		if err == services.ErrAccountNotLinked {
			return SendError(c, errors.BankLinkNotLinked)
		}
		if err == services.ErrRemoteAccountGone {
			return SendError(c, errors.BankLinkRemoteNotFound)
		}
		return sendBankFeedError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, time.Now()))
}

// RefreshAll refreshes every linked account the user has
// @Summary Refresh all linked accounts
// @Description Refresh every linked account, one institution fetch per shared access token
// @Tags BankFeed
// @Produce json
// @Success 200 {object} dto.RefreshAllResponse "Refresh summary"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /bankfeed/refresh-all [post]
func (h *BankFeedHandler) RefreshAll(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	result, err := h.bankFeedService.RefreshAll(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// sendBankFeedError maps upstream provider failures to a 502 and everything
// else to a generic system error
func sendBankFeedError(c echo.Context, err error) error {
	if stderrors.Is(err, bankfeed.ErrUpstream) || stderrors.Is(err, bankfeed.ErrNotConfigured) {
		return SendError(c, errors.BankLinkUpstreamError)
	}
	return SendSystemError(c, err)
}
