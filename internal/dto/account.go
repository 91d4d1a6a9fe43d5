package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardledger/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a credit account
type CreateAccountRequest struct {
	AccountName           string          `json:"account_name" validate:"required,min=1,max=100"`
	AccountNumber         string          `json:"account_number" validate:"omitempty,max=20"`
	CreditLimit           decimal.Decimal `json:"credit_limit" validate:"money_amount"`
	AmountOwed            decimal.Decimal `json:"amount_owed" validate:"money_amount"`
	MinimumMonthlyPayment decimal.Decimal `json:"minimum_monthly_payment" validate:"money_amount"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	RateExpiration        *time.Time      `json:"rate_expiration"`
	PaymentDueDay         *int            `json:"payment_due_day" validate:"omitempty,day_of_month"`
	StatementCycleDay     *int            `json:"statement_cycle_day" validate:"omitempty,day_of_month"`
	NextPaymentDueDate    *time.Time      `json:"next_payment_due_date"`
	Rewards               decimal.Decimal `json:"rewards" validate:"money_amount"`
	LastUsedMonth         *int            `json:"last_used_month" validate:"omitempty,month_of_year"`
	PaymentPreference     string          `json:"payment_preference" validate:"omitempty,payment_preference"`
}

// UpdateAccountRequest represents the request payload for replacing an account's details
type UpdateAccountRequest struct {
	AccountName           string           `json:"account_name" validate:"required,min=1,max=100"`
	AccountNumber         string           `json:"account_number" validate:"omitempty,max=20"`
	CreditLimit           decimal.Decimal  `json:"credit_limit" validate:"money_amount"`
	AmountOwed            decimal.Decimal  `json:"amount_owed" validate:"money_amount"`
	MinimumMonthlyPayment decimal.Decimal  `json:"minimum_monthly_payment" validate:"money_amount"`
	InterestRate          decimal.Decimal  `json:"interest_rate"`
	RateExpiration        *time.Time       `json:"rate_expiration"`
	PaymentDueDay         *int             `json:"payment_due_day" validate:"omitempty,day_of_month"`
	StatementCycleDay     *int             `json:"statement_cycle_day" validate:"omitempty,day_of_month"`
	NextPaymentDueDate    *time.Time       `json:"next_payment_due_date"`
	Rewards               decimal.Decimal  `json:"rewards" validate:"money_amount"`
	LastUsedMonth         *int             `json:"last_used_month" validate:"omitempty,month_of_year"`
	PaymentPreference     string           `json:"payment_preference" validate:"omitempty,payment_preference"`
}

// RecordPaymentRequest represents the request payload for recording a payment
type RecordPaymentRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// ReorderAccountsRequest represents the request payload for persisting a new card order
type ReorderAccountsRequest struct {
	Order []ReorderEntry `json:"order" validate:"required,min=1,dive"`
}

// ReorderEntry pins one account to a position in the dashboard ordering
type ReorderEntry struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	Position  int    `json:"position" validate:"min=0"`
}

// Positions converts the request order into the map the service layer consumes.
func (r *ReorderAccountsRequest) Positions() (map[uuid.UUID]int, error) {
	positions := make(map[uuid.UUID]int, len(r.Order))
	for _, entry := range r.Order {
		id, err := uuid.Parse(entry.AccountID)
		if err != nil {
			return nil, err
		}
		positions[id] = entry.Position
	}
	return positions, nil
}

// Account Response DTOs

// AccountResponse represents a single account plus its derived metrics
type AccountResponse struct {
	*models.Account
	Utilization         int64           `json:"utilization"`
	UtilizationCategory string          `json:"utilization_category"`
	AvailableCredit     decimal.Decimal `json:"available_credit"`
	RateExpiringSoon    bool            `json:"rate_expiring_soon"`
	Linked              bool            `json:"linked"`
}

// NewAccountResponse builds an AccountResponse with metrics derived as of today.
func NewAccountResponse(account *models.Account, today time.Time) AccountResponse {
	utilization := account.Utilization()
	return AccountResponse{
		Account:             account,
		Utilization:         utilization,
		UtilizationCategory: models.UtilizationCategory(utilization),
		AvailableCredit:     account.AvailableCredit(),
		RateExpiringSoon:    account.IsRateExpiringSoon(today),
		Linked:              account.IsLinked(),
	}
}

// AccountListResponse represents the user's accounts in dashboard order
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// CreateAccountResponse represents the response after creating an account
type CreateAccountResponse struct {
	Account AccountResponse `json:"account"`
	Message string          `json:"message"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
