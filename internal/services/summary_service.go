package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"cardledger/internal/models"
	"cardledger/internal/repositories"
)

// summaryService implements SummaryServiceInterface
type summaryService struct {
	accountRepo repositories.AccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewSummaryService creates the dashboard totals service
func NewSummaryService(
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	return &summaryService{
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetTotals aggregates limits, balances, minimum payments and rewards
// across all of the user's accounts.
func (s *summaryService) GetTotals(userID uuid.UUID) (models.AccountTotals, error) {
	accounts, err := s.accountRepo.GetByUserID(userID, models.SortByPosition)
	if err != nil {
		return models.AccountTotals{}, fmt.Errorf("failed to load accounts for summary: %w", err)
	}

	totals := models.ComputeAccountTotals(accounts)

	s.metrics.RecordGauge("total_amount_owed", totals.TotalOwed.InexactFloat64(), nil)
	s.logger.Debug("computed account totals", "user_id", userID, "accounts", totals.AccountCount)

	return totals, nil
}
