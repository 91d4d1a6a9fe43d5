package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpcomingPayment is one entry in the 30-day payment outlook. Amount is the
// account's minimum monthly payment; DueDate comes from the bank feed when
// available, otherwise from the statement-cycle projection.
type UpcomingPayment struct {
	AccountID     uuid.UUID       `json:"account_id"`
	AccountName   string          `json:"account_name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	DayOfWeek     string          `json:"day_of_week"`
	FormattedDate string          `json:"formatted_date"`
}
