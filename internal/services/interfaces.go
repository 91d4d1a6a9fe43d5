package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardledger/internal/bankfeed"
	"cardledger/internal/dto"
	"cardledger/internal/models"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error)
	GetAccount(userID, accountID uuid.UUID) (*models.Account, error)
	ListAccounts(userID uuid.UUID, sortBy string) ([]models.Account, error)
	UpdateAccount(userID, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(userID, accountID uuid.UUID) error
	ApplyPayment(userID, accountID uuid.UUID, amount decimal.Decimal) (*models.Account, error)
	ReorderAccounts(userID uuid.UUID, positions map[uuid.UUID]int) error
}

// PaymentScheduleServiceInterface builds the 30-day payment schedule for a user
type PaymentScheduleServiceInterface interface {
	UpcomingPayments(userID uuid.UUID) ([]models.UpcomingPayment, error)
}

// SummaryServiceInterface aggregates dashboard totals across a user's accounts
type SummaryServiceInterface interface {
	GetTotals(userID uuid.UUID) (models.AccountTotals, error)
}

// BankFeedServiceInterface defines the provider-backed account linking and
// refresh operations
type BankFeedServiceInterface interface {
	CreateLinkToken(ctx context.Context, userID uuid.UUID) (string, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (bankfeed.TokenExchange, error)
	LinkAccount(ctx context.Context, userID, accountID uuid.UUID, accessToken, itemID string) (*models.Account, error)
	RefreshAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.Account, error)
	RefreshAll(ctx context.Context, userID uuid.UUID) (*dto.RefreshAllResponse, error)
}

// AccountSeederInterface generates realistic card portfolios for
// development seeding
type AccountSeederInterface interface {
	GenerateAccounts(userID uuid.UUID, count, startPosition int) []*models.Account
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
