package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentPreferenceFull    = "full"
	PaymentPreferenceMinimum = "minimum"

	// Utilization buckets used by the dashboard for styling and alerts
	UtilizationLow    = "low"
	UtilizationMedium = "medium"
	UtilizationHigh   = "high"

	// Rate expirations within this many days count as "expiring soon"
	RateExpiryWarningDays = 60
)

var (
	ErrAccountNameRequired      = errors.New("account name is required")
	ErrCreditLimitRequired      = errors.New("credit limit must be greater than zero")
	ErrNegativeAmount           = errors.New("amount cannot be negative")
	ErrInvalidInterestRate      = errors.New("interest rate must be between 0 and 100")
	ErrInvalidCycleDay          = errors.New("statement cycle day must be between 1 and 31")
	ErrInvalidDueDay            = errors.New("payment due day must be between 1 and 31")
	ErrInvalidLastUsedMonth     = errors.New("last used month must be between 1 and 12")
	ErrInvalidPaymentPreference = errors.New("invalid payment preference")
)

// Account represents one credit account tracked on the dashboard.
// Monetary fields use decimal columns; bank-link fields are populated
// by the bankfeed integration and stay empty for manual accounts.
type Account struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountName           string          `gorm:"type:varchar(100);not null" json:"account_name"`
	AccountNumber         string          `gorm:"type:varchar(20)" json:"account_number,omitempty"`
	CreditLimit           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"credit_limit"`
	AmountOwed            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount_owed"`
	MinimumMonthlyPayment decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"minimum_monthly_payment"`
	InterestRate          decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"interest_rate"`
	RateExpiration        *time.Time      `gorm:"type:date" json:"rate_expiration,omitempty"`
	PaymentDueDay         *int            `json:"payment_due_day,omitempty"` // legacy, superseded by NextPaymentDueDate/StatementCycleDay
	StatementCycleDay     *int            `json:"statement_cycle_day,omitempty"`
	NextPaymentDueDate    *time.Time      `gorm:"type:date" json:"next_payment_due_date,omitempty"`
	Rewards               decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"rewards"`
	LastUsedMonth         *int            `json:"last_used_month,omitempty"`
	PaymentPreference     string          `gorm:"type:varchar(10)" json:"payment_preference,omitempty"`
	Position              int             `gorm:"not null;index" json:"position"`

	// Bank-link credentials; presence means the account is linked to a
	// live connection owned by the bankfeed integration.
	FeedAccessToken string `gorm:"type:varchar(255)" json:"-"`
	FeedAccountID   string `gorm:"type:varchar(255)" json:"feed_account_id,omitempty"`
	FeedItemID      string `gorm:"type:varchar(255)" json:"feed_item_id,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.AccountName == "" {
		return ErrAccountNameRequired
	}

	if a.CreditLimit.LessThanOrEqual(decimal.Zero) {
		return ErrCreditLimitRequired
	}

	if a.AmountOwed.LessThan(decimal.Zero) ||
		a.MinimumMonthlyPayment.LessThan(decimal.Zero) ||
		a.Rewards.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}

	if a.InterestRate.LessThan(decimal.Zero) || a.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidInterestRate
	}

	if a.StatementCycleDay != nil && !IsValidDayOfMonth(*a.StatementCycleDay) {
		return ErrInvalidCycleDay
	}

	if a.PaymentDueDay != nil && !IsValidDayOfMonth(*a.PaymentDueDay) {
		return ErrInvalidDueDay
	}

	if a.LastUsedMonth != nil && (*a.LastUsedMonth < 1 || *a.LastUsedMonth > 12) {
		return ErrInvalidLastUsedMonth
	}

	if a.PaymentPreference != "" && !IsValidPaymentPreference(a.PaymentPreference) {
		return ErrInvalidPaymentPreference
	}

	return nil
}

// Utilization returns the amount owed as a rounded percentage of the credit
// limit. A zero or missing limit yields 0 rather than a division error so the
// dashboard always has something to render.
func (a *Account) Utilization() int64 {
	if a.CreditLimit.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return a.AmountOwed.Div(a.CreditLimit).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// AvailableCredit returns the remaining credit. Negative when overlimit;
// deliberately not clamped.
func (a *Account) AvailableCredit() decimal.Decimal {
	return a.CreditLimit.Sub(a.AmountOwed)
}

// IsRateExpiringSoon reports whether the promotional rate expires within the
// warning window. Already-expired rates are not "soon".
func (a *Account) IsRateExpiringSoon(today time.Time) bool {
	if a.RateExpiration == nil {
		return false
	}
	days := DaysBetween(today, *a.RateExpiration)
	return days >= 0 && days <= RateExpiryWarningDays
}

// IsLinked returns true if the account has live bank-link credentials
func (a *Account) IsLinked() bool {
	return a.FeedAccessToken != ""
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// UtilizationCategory buckets a utilization percentage for display.
// Boundaries: below 30 is low, 30 up to 70 is medium, 70 and above is high.
func UtilizationCategory(pct int64) string {
	switch {
	case pct < 30:
		return UtilizationLow
	case pct < 70:
		return UtilizationMedium
	default:
		return UtilizationHigh
	}
}

// IsValidDayOfMonth checks a statement-cycle or due day
func IsValidDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}

// IsValidPaymentPreference checks if the payment preference is valid
func IsValidPaymentPreference(pref string) bool {
	switch pref {
	case PaymentPreferenceFull, PaymentPreferenceMinimum:
		return true
	default:
		return false
	}
}

// DaysBetween returns whole days from a to b, comparing calendar dates only.
// Both instants are normalized to midnight UTC so DST shifts cannot skew the count.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
