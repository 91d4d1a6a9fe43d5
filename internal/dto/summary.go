package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"cardledger/internal/models"
)

// SummaryResponse represents the aggregated dashboard totals for a user
type SummaryResponse struct {
	TotalCreditLimit     decimal.Decimal `json:"total_credit_limit"`
	TotalAmountOwed      decimal.Decimal `json:"total_amount_owed"`
	TotalMinimumPayment  decimal.Decimal `json:"total_minimum_payment"`
	TotalRewards         decimal.Decimal `json:"total_rewards"`
	TotalAvailableCredit decimal.Decimal `json:"total_available_credit"`
	OverallUtilization   int64           `json:"overall_utilization"`
	UtilizationCategory  string          `json:"utilization_category"`
	AccountCount         int             `json:"account_count"`
	LinkedAccountCount   int             `json:"linked_account_count"`
}

// NewSummaryResponse builds the dashboard summary payload from computed totals.
func NewSummaryResponse(totals models.AccountTotals) SummaryResponse {
	return SummaryResponse{
		TotalCreditLimit:     totals.TotalCreditLimit,
		TotalAmountOwed:      totals.TotalOwed,
		TotalMinimumPayment:  totals.TotalMinimumPayment,
		TotalRewards:         totals.TotalRewards,
		TotalAvailableCredit: totals.TotalAvailable,
		OverallUtilization:   totals.TotalUtilization,
		UtilizationCategory:  models.UtilizationCategory(totals.TotalUtilization),
		AccountCount:         totals.AccountCount,
		LinkedAccountCount:   totals.LinkedAccountCount,
	}
}

// UpcomingPaymentResponse represents a single entry in the upcoming payments list
type UpcomingPaymentResponse struct {
	AccountID     string          `json:"account_id"`
	AccountName   string          `json:"account_name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	DayOfWeek     string          `json:"day_of_week"`
	FormattedDate string          `json:"formatted_date"`
}

// UpcomingPaymentsResponse wraps the 30-day payment schedule
type UpcomingPaymentsResponse struct {
	Payments []UpcomingPaymentResponse `json:"payments"`
	Total    int                       `json:"total"`
}

// NewUpcomingPaymentsResponse converts schedule entries into the API payload.
func NewUpcomingPaymentsResponse(payments []models.UpcomingPayment) UpcomingPaymentsResponse {
	out := make([]UpcomingPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, UpcomingPaymentResponse{
			AccountID:     p.AccountID.String(),
			AccountName:   p.AccountName,
			Amount:        p.Amount,
			DueDate:       p.DueDate,
			DayOfWeek:     p.DayOfWeek,
			FormattedDate: p.FormattedDate,
		})
	}
	return UpcomingPaymentsResponse{Payments: out, Total: len(out)}
}
