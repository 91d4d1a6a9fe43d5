package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardledger/internal/bankfeed"
	"cardledger/internal/dto"
	"cardledger/internal/models"
	"cardledger/internal/repositories"
)

var (
	ErrAccountNotLinked  = errors.New("account is not linked to a bank feed")
	ErrNoMatchingAccount = errors.New("no matching credit card account at the institution")
	ErrRemoteAccountGone = errors.New("linked account no longer exists at the institution")
)

// bankFeedService implements BankFeedServiceInterface
type bankFeedService struct {
	client      bankfeed.Client
	accountRepo repositories.AccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewBankFeedService creates the provider-backed linking and refresh service
func NewBankFeedService(
	client bankfeed.Client,
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BankFeedServiceInterface {
	return &bankFeedService{
		client:      client,
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateLinkToken starts a link session for the user
func (s *bankFeedService) CreateLinkToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.client.CreateLinkToken(ctx, userID.String())
	if err != nil {
		return "", fmt.Errorf("failed to create link token: %w", err)
	}
	return token, nil
}

// ExchangePublicToken trades a public token for permanent credentials
func (s *bankFeedService) ExchangePublicToken(ctx context.Context, publicToken string) (bankfeed.TokenExchange, error) {
	exchange, err := s.client.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return bankfeed.TokenExchange{}, fmt.Errorf("failed to exchange public token: %w", err)
	}
	return exchange, nil
}

// LinkAccount matches one of the user's accounts against the institution's
// credit card accounts and stores the feed credentials on it. Matching
// prefers an exact mask match against the stored account number, falling
// back to case-insensitive name containment.
func (s *bankFeedService) LinkAccount(ctx context.Context, userID, accountID uuid.UUID, accessToken, itemID string) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(userID, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	remotes, err := s.client.FetchCreditAccounts(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch institution accounts: %w", err)
	}

	remote, ok := matchRemoteAccount(account, remotes)
	if !ok {
		return nil, ErrNoMatchingAccount
	}

	account.FeedAccessToken = accessToken
	account.FeedAccountID = remote.RemoteID
	account.FeedItemID = itemID
	// Institutions report credit balances as negative when the card is
	// overpaid; owed is stored as a magnitude.
	account.AmountOwed = remote.CurrentBalance.Abs()
	if remote.CreditLimit != nil {
		account.CreditLimit = *remote.CreditLimit
	}

	// Liability details are best effort; a link without them is still a link.
	if liabilities, liabErr := s.client.FetchLiabilities(ctx, accessToken); liabErr == nil {
		if liability, found := liabilities[remote.RemoteID]; found {
			applyLiability(account, liability)
		}
	} else {
		s.logger.Warn("liabilities unavailable during link", "account_id", accountID, "error", liabErr)
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to store feed credentials: %w", err)
	}

	s.metrics.IncrementCounter("bankfeed_linked", nil)
	s.logger.Info("account linked to bank feed", "user_id", userID, "account_id", accountID, "remote_id", remote.RemoteID)

	return account, nil
}

// RefreshAccount overwrites the account's balance, limit, minimum payment,
// rate and next due date with live institution data.
func (s *bankFeedService) RefreshAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.Account, error) {
	start := time.Now()

	account, err := s.accountRepo.GetByID(userID, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !account.IsLinked() {
		return nil, ErrAccountNotLinked
	}

	remotes, err := s.client.FetchCreditAccounts(ctx, account.FeedAccessToken)
	if err != nil {
		s.metrics.IncrementCounter("bankfeed_refresh", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to fetch institution accounts: %w", err)
	}

	// Not every institution supports the liabilities product; balances
	// still refresh without it.
	liabilities, err := s.client.FetchLiabilities(ctx, account.FeedAccessToken)
	if err != nil {
		s.logger.Warn("liabilities unavailable during refresh", "account_id", accountID, "error", err)
		liabilities = map[string]bankfeed.CreditLiability{}
	}

	if err := applyFeedData(account, indexRemoteAccounts(remotes), liabilities); err != nil {
		s.metrics.IncrementCounter("bankfeed_refresh", map[string]string{"status": "failed"})
		return nil, err
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to store refreshed data: %w", err)
	}

	s.metrics.IncrementCounter("bankfeed_refresh", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("bankfeed_refresh", time.Since(start))

	return account, nil
}

// RefreshAll refreshes every linked account the user has. Accounts at the
// same institution share an access token, so balances and liabilities are
// fetched once per token; the liability cache enforces that. A failing
// token marks only its own accounts as failed.
func (s *bankFeedService) RefreshAll(ctx context.Context, userID uuid.UUID) (*dto.RefreshAllResponse, error) {
	start := time.Now()

	accounts, err := s.accountRepo.GetLinkedByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked accounts: %w", err)
	}

	cache := bankfeed.NewLiabilityCache(0)
	remotesByToken := make(map[string]map[string]bankfeed.RemoteAccount)
	failedTokens := make(map[string]bool)
	result := &dto.RefreshAllResponse{}

	for i := range accounts {
		account := &accounts[i]
		token := account.FeedAccessToken

		if failedTokens[token] {
			result.Failed++
			continue
		}

		remotes, ok := remotesByToken[token]
		if !ok {
			fetched, fetchErr := s.client.FetchCreditAccounts(ctx, token)
			if fetchErr != nil {
				s.markTokenFailed(failedTokens, token, fetchErr, account, result)
				continue
			}
			remotes = indexRemoteAccounts(fetched)
			remotesByToken[token] = remotes
		}

		liabilities, ok := cache.Get(token)
		if !ok {
			fetched, fetchErr := s.client.FetchLiabilities(ctx, token)
			if fetchErr != nil {
				// Caching the empty result keeps one failing token from
				// being retried for every account that shares it.
				s.logger.Warn("liabilities unavailable during refresh", "account_id", account.ID, "error", fetchErr)
				fetched = map[string]bankfeed.CreditLiability{}
			}
			cache.Put(token, fetched)
			liabilities = fetched
		}

		if applyErr := applyFeedData(account, remotes, liabilities); applyErr != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", account.AccountName, applyErr))
			continue
		}

		if updateErr := s.accountRepo.Update(account); updateErr != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: failed to store refreshed data", account.AccountName))
			s.logger.Error("failed to store refreshed account", "account_id", account.ID, "error", updateErr)
			continue
		}

		result.Refreshed++
	}

	s.metrics.IncrementCounter("bankfeed_refresh_all", nil)
	s.metrics.RecordProcessingTime("bankfeed_refresh", time.Since(start))
	s.logger.Info("refreshed linked accounts", "user_id", userID, "refreshed", result.Refreshed, "failed", result.Failed)

	return result, nil
}

func (s *bankFeedService) markTokenFailed(failedTokens map[string]bool, token string, err error, account *models.Account, result *dto.RefreshAllResponse) {
	failedTokens[token] = true
	result.Failed++
	result.Errors = append(result.Errors, fmt.Sprintf("%s: institution fetch failed", account.AccountName))
	s.logger.Warn("bank feed fetch failed", "account_id", account.ID, "error", err)
}

// matchRemoteAccount pairs a stored account with one of the institution's
// credit card accounts. Mask equality against the stored account number is
// checked across all candidates before name matching runs.
func matchRemoteAccount(account *models.Account, remotes []bankfeed.RemoteAccount) (bankfeed.RemoteAccount, bool) {
	if account.AccountNumber != "" {
		for _, remote := range remotes {
			if remote.Mask != "" && remote.Mask == account.AccountNumber {
				return remote, true
			}
		}
	}

	name := strings.ToLower(account.AccountName)
	for _, remote := range remotes {
		remoteName := strings.ToLower(remote.DisplayName())
		if remoteName == "" {
			continue
		}
		if strings.Contains(remoteName, name) || strings.Contains(name, remoteName) {
			return remote, true
		}
	}

	return bankfeed.RemoteAccount{}, false
}

func indexRemoteAccounts(remotes []bankfeed.RemoteAccount) map[string]bankfeed.RemoteAccount {
	indexed := make(map[string]bankfeed.RemoteAccount, len(remotes))
	for _, remote := range remotes {
		indexed[remote.RemoteID] = remote
	}
	return indexed
}

// applyFeedData overwrites the account's stored figures with live data.
// Locally entered values are not preserved; the feed is the source of
// truth for a linked account.
func applyFeedData(account *models.Account, remotes map[string]bankfeed.RemoteAccount, liabilities map[string]bankfeed.CreditLiability) error {
	remote, ok := remotes[account.FeedAccountID]
	if !ok {
		return ErrRemoteAccountGone
	}

	account.AmountOwed = remote.CurrentBalance.Abs()
	if remote.CreditLimit != nil {
		account.CreditLimit = *remote.CreditLimit
	}

	if liability, found := liabilities[account.FeedAccountID]; found {
		applyLiability(account, liability)
	}

	return nil
}

func applyLiability(account *models.Account, liability bankfeed.CreditLiability) {
	if liability.CreditLimit != nil {
		account.CreditLimit = *liability.CreditLimit
	}
	if liability.MinimumPayment != nil {
		account.MinimumMonthlyPayment = *liability.MinimumPayment
	}
	if liability.NextPaymentDueDate != nil {
		dueDate := *liability.NextPaymentDueDate
		account.NextPaymentDueDate = &dueDate
	}
	if liability.PurchaseAPR != nil {
		account.InterestRate = *liability.PurchaseAPR
	}
}
