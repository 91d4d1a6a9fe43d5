package models

import (
	"github.com/shopspring/decimal"
)

// AccountTotals represents aggregate figures across a user's accounts,
// rendered on the dashboard summary cards.
type AccountTotals struct {
	TotalCreditLimit    decimal.Decimal `json:"total_credit_limit"`
	TotalOwed           decimal.Decimal `json:"total_owed"`
	TotalAvailable      decimal.Decimal `json:"total_available"`
	TotalMinimumPayment decimal.Decimal `json:"total_minimum_payment"`
	TotalRewards        decimal.Decimal `json:"total_rewards"`
	TotalUtilization    int64           `json:"total_utilization"`
	AccountCount        int             `json:"account_count"`
	LinkedAccountCount  int             `json:"linked_account_count"`
}

// ComputeAccountTotals sums limits, balances, minimum payments and rewards
// across the list. Total utilization follows the same zero-limit convention
// as the per-account figure: an empty portfolio reports 0%, never an error.
func ComputeAccountTotals(accounts []Account) AccountTotals {
	totals := AccountTotals{
		TotalCreditLimit:    decimal.Zero,
		TotalOwed:           decimal.Zero,
		TotalAvailable:      decimal.Zero,
		TotalMinimumPayment: decimal.Zero,
		TotalRewards:        decimal.Zero,
		AccountCount:        len(accounts),
	}

	for _, account := range accounts {
		totals.TotalCreditLimit = totals.TotalCreditLimit.Add(account.CreditLimit)
		totals.TotalOwed = totals.TotalOwed.Add(account.AmountOwed)
		totals.TotalMinimumPayment = totals.TotalMinimumPayment.Add(account.MinimumMonthlyPayment)
		totals.TotalRewards = totals.TotalRewards.Add(account.Rewards)
		if account.IsLinked() {
			totals.LinkedAccountCount++
		}
	}

	totals.TotalAvailable = totals.TotalCreditLimit.Sub(totals.TotalOwed)

	if totals.TotalCreditLimit.GreaterThan(decimal.Zero) {
		totals.TotalUtilization = totals.TotalOwed.
			Div(totals.TotalCreditLimit).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}

	return totals
}
