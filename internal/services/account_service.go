package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardledger/internal/dto"
	"cardledger/internal/models"
	"cardledger/internal/repositories"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrPositionConflict     = errors.New("reorder positions do not match the account list")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAccountService creates an account service over the account repository
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateAccount creates a new credit account at the end of the user's list
func (s *accountService) CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	position, err := s.accountRepo.NextPosition(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine position: %w", err)
	}

	account := &models.Account{
		UserID:                userID,
		AccountName:           req.AccountName,
		AccountNumber:         req.AccountNumber,
		CreditLimit:           req.CreditLimit,
		AmountOwed:            req.AmountOwed,
		MinimumMonthlyPayment: req.MinimumMonthlyPayment,
		InterestRate:          req.InterestRate,
		RateExpiration:        req.RateExpiration,
		PaymentDueDay:         req.PaymentDueDay,
		StatementCycleDay:     req.StatementCycleDay,
		NextPaymentDueDate:    req.NextPaymentDueDate,
		Rewards:               req.Rewards,
		LastUsedMonth:         req.LastUsedMonth,
		PaymentPreference:     req.PaymentPreference,
		Position:              position,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.metrics.IncrementCounter("account_created", nil)
	s.logger.Info("account created", "user_id", userID, "account_id", account.ID, "position", position)

	return account, nil
}

// GetAccount retrieves one of the user's accounts
func (s *accountService) GetAccount(userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(userID, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListAccounts retrieves the user's accounts in the requested order
func (s *accountService) ListAccounts(userID uuid.UUID, sortBy string) ([]models.Account, error) {
	if sortBy != "" && !models.IsValidSortField(sortBy) {
		return nil, ErrInvalidSortField
	}

	accounts, err := s.accountRepo.GetByUserID(userID, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount replaces the stored details of an account
func (s *accountService) UpdateAccount(userID, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.GetAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	account.AccountName = req.AccountName
	account.AccountNumber = req.AccountNumber
	account.CreditLimit = req.CreditLimit
	account.AmountOwed = req.AmountOwed
	account.MinimumMonthlyPayment = req.MinimumMonthlyPayment
	account.InterestRate = req.InterestRate
	account.RateExpiration = req.RateExpiration
	account.PaymentDueDay = req.PaymentDueDay
	account.StatementCycleDay = req.StatementCycleDay
	account.NextPaymentDueDate = req.NextPaymentDueDate
	account.Rewards = req.Rewards
	account.LastUsedMonth = req.LastUsedMonth
	account.PaymentPreference = req.PaymentPreference

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.metrics.IncrementCounter("account_updated", nil)

	return account, nil
}

// DeleteAccount soft-deletes one of the user's accounts
func (s *accountService) DeleteAccount(userID, accountID uuid.UUID) error {
	if err := s.accountRepo.Delete(userID, accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.metrics.IncrementCounter("account_deleted", nil)
	s.logger.Info("account deleted", "user_id", userID, "account_id", accountID)

	return nil
}

// ApplyPayment reduces the amount owed by a payment. Paying more than the
// balance settles the account at zero instead of going negative.
func (s *accountService) ApplyPayment(userID, accountID uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPaymentAmount
	}

	account, err := s.GetAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	remaining := account.AmountOwed.Sub(amount)
	if remaining.LessThan(decimal.Zero) {
		remaining = decimal.Zero
	}
	account.AmountOwed = remaining

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.metrics.IncrementCounter("payment_recorded", nil)
	s.logger.Info("payment recorded", "user_id", userID, "account_id", accountID, "amount", amount.String())

	return account, nil
}

// ReorderAccounts persists a new dashboard ordering for the user's accounts
func (s *accountService) ReorderAccounts(userID uuid.UUID, positions map[uuid.UUID]int) error {
	if len(positions) == 0 {
		return ErrPositionConflict
	}

	if err := s.accountRepo.UpdatePositions(userID, positions); err != nil {
		if errors.Is(err, repositories.ErrPositionMismatch) {
			return ErrPositionConflict
		}
		return fmt.Errorf("failed to reorder accounts: %w", err)
	}

	s.metrics.IncrementCounter("accounts_reordered", nil)

	return nil
}
