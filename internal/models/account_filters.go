package models

import (
	"github.com/shopspring/decimal"
)

// Sort fields accepted by the account list endpoint. Position ascending is
// the default, matching the user's manual ordering.
const (
	SortByPosition       = "position"
	SortByName           = "name"
	SortByCreditLimit    = "credit_limit"
	SortByAmountOwed     = "amount_owed"
	SortByInterestRate   = "interest_rate"
	SortByMinimumPayment = "minimum_payment"
)

// sortColumns maps API sort fields to whitelisted SQL columns. Requests for
// anything outside this map fall back to position ordering.
var sortColumns = map[string]string{
	SortByPosition:       "position ASC",
	SortByName:           "account_name ASC",
	SortByCreditLimit:    "credit_limit DESC",
	SortByAmountOwed:     "amount_owed DESC",
	SortByInterestRate:   "interest_rate DESC",
	SortByMinimumPayment: "minimum_monthly_payment DESC",
}

// SortOrderClause resolves a sort field to a SQL order clause
func SortOrderClause(sortBy string) string {
	if clause, ok := sortColumns[sortBy]; ok {
		return clause
	}
	return sortColumns[SortByPosition]
}

// IsValidSortField checks if the sort field is recognized
func IsValidSortField(sortBy string) bool {
	_, ok := sortColumns[sortBy]
	return ok
}

// AccountFilters contains filter criteria for account queries
type AccountFilters struct {
	LinkedOnly bool
	MinOwed    *decimal.Decimal
	MaxOwed    *decimal.Decimal
}
