package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"cardledger/internal/bankfeed"
	"cardledger/internal/bankfeed/bankfeed_mocks"
	"cardledger/internal/models"
	"cardledger/internal/repositories"
	"cardledger/internal/repositories/repository_mocks"
)

// BankFeedServiceSuite defines the test suite for BankFeedServiceInterface
type BankFeedServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	client      *bankfeed_mocks.MockClient
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	service     BankFeedServiceInterface
	ctx         context.Context
	testUserID  uuid.UUID
}

func (s *BankFeedServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = bankfeed_mocks.NewMockClient(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.service = NewBankFeedService(s.client, s.accountRepo, noopMetrics{}, testLogger())
	s.ctx = context.Background()
	s.testUserID = uuid.New()
}

func (s *BankFeedServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBankFeedServiceSuite(t *testing.T) {
	suite.Run(t, new(BankFeedServiceSuite))
}

func (s *BankFeedServiceSuite) TestCreateLinkToken_Success() {
	s.client.EXPECT().CreateLinkToken(s.ctx, s.testUserID.String()).Return("link-token", nil)

	token, err := s.service.CreateLinkToken(s.ctx, s.testUserID)
	s.NoError(err)
	s.Equal("link-token", token)
}

func (s *BankFeedServiceSuite) TestCreateLinkToken_UpstreamError() {
	s.client.EXPECT().CreateLinkToken(s.ctx, s.testUserID.String()).Return("", bankfeed.ErrUpstream)

	_, err := s.service.CreateLinkToken(s.ctx, s.testUserID)
	s.ErrorIs(err, bankfeed.ErrUpstream)
}

func (s *BankFeedServiceSuite) TestExchangePublicToken_Success() {
	exchange := bankfeed.TokenExchange{AccessToken: "access-token", ItemID: "item-1"}
	s.client.EXPECT().ExchangePublicToken(s.ctx, "public-token").Return(exchange, nil)

	got, err := s.service.ExchangePublicToken(s.ctx, "public-token")
	s.NoError(err)
	s.Equal(exchange, got)
}

func (s *BankFeedServiceSuite) TestLinkAccount_MatchesByMask() {
	accountID := uuid.New()
	account := &models.Account{
		ID:            accountID,
		UserID:        s.testUserID,
		AccountName:   "My Card",
		AccountNumber: "4321",
	}
	limit := decimal.NewFromInt(7500)
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-other", Name: "Unrelated", Mask: "1111"},
		{RemoteID: "remote-1", Name: "Platinum Card", Mask: "4321", CurrentBalance: decimal.NewFromInt(2100), CreditLimit: &limit},
	}
	minPayment := decimal.NewFromInt(40)
	apr := decimal.NewFromFloat(21.99)
	dueDate := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
	liabilities := map[string]bankfeed.CreditLiability{
		"remote-1": {RemoteID: "remote-1", MinimumPayment: &minPayment, PurchaseAPR: &apr, NextPaymentDueDate: &dueDate},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(liabilities, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	linked, err := s.service.LinkAccount(s.ctx, s.testUserID, accountID, "access-token", "item-1")
	s.NoError(err)
	s.Equal("access-token", linked.FeedAccessToken)
	s.Equal("remote-1", linked.FeedAccountID)
	s.Equal("item-1", linked.FeedItemID)
	s.True(linked.AmountOwed.Equal(decimal.NewFromInt(2100)))
	s.True(linked.CreditLimit.Equal(limit))
	s.True(linked.MinimumMonthlyPayment.Equal(minPayment))
	s.True(linked.InterestRate.Equal(apr))
	s.Equal(dueDate, *linked.NextPaymentDueDate)
}

func (s *BankFeedServiceSuite) TestLinkAccount_MatchesByNameContainment() {
	accountID := uuid.New()
	account := &models.Account{
		ID:          accountID,
		UserID:      s.testUserID,
		AccountName: "Sapphire",
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-2", Name: "Sapphire Preferred", Mask: "9999", CurrentBalance: decimal.NewFromInt(300)},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(map[string]bankfeed.CreditLiability{}, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	linked, err := s.service.LinkAccount(s.ctx, s.testUserID, accountID, "access-token", "item-2")
	s.NoError(err)
	s.Equal("remote-2", linked.FeedAccountID)
}

func (s *BankFeedServiceSuite) TestLinkAccount_NegativeBalanceStoredAsMagnitude() {
	accountID := uuid.New()
	account := &models.Account{
		ID:            accountID,
		UserID:        s.testUserID,
		AccountName:   "Overpaid Card",
		AccountNumber: "4321",
		CreditLimit:   decimal.NewFromInt(5000),
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-1", Name: "Overpaid Card", Mask: "4321", CurrentBalance: decimal.NewFromFloat(-13.37)},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(map[string]bankfeed.CreditLiability{}, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	linked, err := s.service.LinkAccount(s.ctx, s.testUserID, accountID, "access-token", "item-1")
	s.NoError(err)
	s.True(linked.AmountOwed.Equal(decimal.NewFromFloat(13.37)))
	s.NoError(linked.Validate())
}

func (s *BankFeedServiceSuite) TestLinkAccount_NoMatch() {
	accountID := uuid.New()
	account := &models.Account{
		ID:          accountID,
		UserID:      s.testUserID,
		AccountName: "Gold Card",
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-3", Name: "Checking", Mask: "0000"},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)

	_, err := s.service.LinkAccount(s.ctx, s.testUserID, accountID, "access-token", "item-3")
	s.ErrorIs(err, ErrNoMatchingAccount)
}

func (s *BankFeedServiceSuite) TestLinkAccount_AccountNotFound() {
	accountID := uuid.New()
	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.LinkAccount(s.ctx, s.testUserID, accountID, "access-token", "item-4")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *BankFeedServiceSuite) TestRefreshAccount_NotLinked() {
	accountID := uuid.New()
	account := &models.Account{ID: accountID, UserID: s.testUserID, AccountName: "Manual Card"}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)

	_, err := s.service.RefreshAccount(s.ctx, s.testUserID, accountID)
	s.ErrorIs(err, ErrAccountNotLinked)
}

func (s *BankFeedServiceSuite) TestRefreshAccount_OverwritesStoredFigures() {
	accountID := uuid.New()
	account := &models.Account{
		ID:              accountID,
		UserID:          s.testUserID,
		AccountName:     "Linked Card",
		AmountOwed:      decimal.NewFromInt(999),
		CreditLimit:     decimal.NewFromInt(1000),
		FeedAccessToken: "access-token",
		FeedAccountID:   "remote-1",
	}
	limit := decimal.NewFromInt(6000)
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-1", CurrentBalance: decimal.NewFromInt(1750), CreditLimit: &limit},
	}
	minPayment := decimal.NewFromInt(55)
	liabilities := map[string]bankfeed.CreditLiability{
		"remote-1": {RemoteID: "remote-1", MinimumPayment: &minPayment},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(liabilities, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	refreshed, err := s.service.RefreshAccount(s.ctx, s.testUserID, accountID)
	s.NoError(err)
	s.True(refreshed.AmountOwed.Equal(decimal.NewFromInt(1750)))
	s.True(refreshed.CreditLimit.Equal(limit))
	s.True(refreshed.MinimumMonthlyPayment.Equal(minPayment))
}

func (s *BankFeedServiceSuite) TestRefreshAccount_LiabilitiesUnavailable_BalancesStillRefresh() {
	accountID := uuid.New()
	account := &models.Account{
		ID:              accountID,
		UserID:          s.testUserID,
		AccountName:     "Linked Card",
		AmountOwed:      decimal.NewFromInt(999),
		FeedAccessToken: "access-token",
		FeedAccountID:   "remote-1",
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-1", CurrentBalance: decimal.NewFromInt(1200)},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(nil, bankfeed.ErrUpstream)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	refreshed, err := s.service.RefreshAccount(s.ctx, s.testUserID, accountID)
	s.NoError(err)
	s.True(refreshed.AmountOwed.Equal(decimal.NewFromInt(1200)))
}

func (s *BankFeedServiceSuite) TestRefreshAccount_NegativeBalanceStoredAsMagnitude() {
	accountID := uuid.New()
	account := &models.Account{
		ID:              accountID,
		UserID:          s.testUserID,
		AccountName:     "Overpaid Card",
		CreditLimit:     decimal.NewFromInt(5000),
		FeedAccessToken: "access-token",
		FeedAccountID:   "remote-1",
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-1", CurrentBalance: decimal.NewFromInt(-42)},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(map[string]bankfeed.CreditLiability{}, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	refreshed, err := s.service.RefreshAccount(s.ctx, s.testUserID, accountID)
	s.NoError(err)
	s.True(refreshed.AmountOwed.Equal(decimal.NewFromInt(42)))
	s.NoError(refreshed.Validate())
}

func (s *BankFeedServiceSuite) TestRefreshAccount_LiabilityCreditLimitOutranksBalanceLimit() {
	accountID := uuid.New()
	account := &models.Account{
		ID:              accountID,
		UserID:          s.testUserID,
		AccountName:     "Linked Card",
		FeedAccessToken: "access-token",
		FeedAccountID:   "remote-1",
	}
	balanceLimit := decimal.NewFromInt(6000)
	liabilityLimit := decimal.NewFromInt(9000)
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-1", CurrentBalance: decimal.NewFromInt(500), CreditLimit: &balanceLimit},
	}
	liabilities := map[string]bankfeed.CreditLiability{
		"remote-1": {RemoteID: "remote-1", CreditLimit: &liabilityLimit},
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return(remotes, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(liabilities, nil)
	s.accountRepo.EXPECT().Update(account).Return(nil)

	refreshed, err := s.service.RefreshAccount(s.ctx, s.testUserID, accountID)
	s.NoError(err)
	s.True(refreshed.CreditLimit.Equal(liabilityLimit))
}

func (s *BankFeedServiceSuite) TestRefreshAccount_RemoteAccountGone() {
	accountID := uuid.New()
	account := &models.Account{
		ID:              accountID,
		UserID:          s.testUserID,
		FeedAccessToken: "access-token",
		FeedAccountID:   "remote-gone",
	}

	s.accountRepo.EXPECT().GetByID(s.testUserID, accountID).Return(account, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "access-token").Return([]bankfeed.RemoteAccount{}, nil)
	s.client.EXPECT().FetchLiabilities(s.ctx, "access-token").Return(map[string]bankfeed.CreditLiability{}, nil)

	_, err := s.service.RefreshAccount(s.ctx, s.testUserID, accountID)
	s.ErrorIs(err, ErrRemoteAccountGone)
}

func (s *BankFeedServiceSuite) TestRefreshAll_FetchesOncePerToken() {
	accounts := []models.Account{
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Card A", FeedAccessToken: "shared-token", FeedAccountID: "remote-a"},
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Card B", FeedAccessToken: "shared-token", FeedAccountID: "remote-b"},
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-a", CurrentBalance: decimal.NewFromInt(100)},
		{RemoteID: "remote-b", CurrentBalance: decimal.NewFromInt(200)},
	}

	s.accountRepo.EXPECT().GetLinkedByUserID(s.testUserID).Return(accounts, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "shared-token").Return(remotes, nil).Times(1)
	s.client.EXPECT().FetchLiabilities(s.ctx, "shared-token").Return(map[string]bankfeed.CreditLiability{}, nil).Times(1)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(2)

	result, err := s.service.RefreshAll(s.ctx, s.testUserID)
	s.NoError(err)
	s.Equal(2, result.Refreshed)
	s.Equal(0, result.Failed)
	s.Empty(result.Errors)
}

func (s *BankFeedServiceSuite) TestRefreshAll_FailingTokenIsIsolated() {
	accounts := []models.Account{
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Broken A", FeedAccessToken: "bad-token", FeedAccountID: "remote-a"},
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Broken B", FeedAccessToken: "bad-token", FeedAccountID: "remote-b"},
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Healthy", FeedAccessToken: "good-token", FeedAccountID: "remote-c"},
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-c", CurrentBalance: decimal.NewFromInt(50)},
	}

	s.accountRepo.EXPECT().GetLinkedByUserID(s.testUserID).Return(accounts, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "bad-token").Return(nil, bankfeed.ErrUpstream).Times(1)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "good-token").Return(remotes, nil).Times(1)
	s.client.EXPECT().FetchLiabilities(s.ctx, "good-token").Return(map[string]bankfeed.CreditLiability{}, nil).Times(1)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	result, err := s.service.RefreshAll(s.ctx, s.testUserID)
	s.NoError(err)
	s.Equal(1, result.Refreshed)
	s.Equal(2, result.Failed)
	s.Len(result.Errors, 1)
}

func (s *BankFeedServiceSuite) TestRefreshAll_LiabilitiesUnavailable_BalancesStillRefresh() {
	accounts := []models.Account{
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Card A", FeedAccessToken: "shared-token", FeedAccountID: "remote-a"},
		{ID: uuid.New(), UserID: s.testUserID, AccountName: "Card B", FeedAccessToken: "shared-token", FeedAccountID: "remote-b"},
	}
	remotes := []bankfeed.RemoteAccount{
		{RemoteID: "remote-a", CurrentBalance: decimal.NewFromInt(100)},
		{RemoteID: "remote-b", CurrentBalance: decimal.NewFromInt(200)},
	}

	s.accountRepo.EXPECT().GetLinkedByUserID(s.testUserID).Return(accounts, nil)
	s.client.EXPECT().FetchCreditAccounts(s.ctx, "shared-token").Return(remotes, nil).Times(1)
	s.client.EXPECT().FetchLiabilities(s.ctx, "shared-token").Return(nil, bankfeed.ErrUpstream).Times(1)
	s.accountRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(2)

	result, err := s.service.RefreshAll(s.ctx, s.testUserID)
	s.NoError(err)
	s.Equal(2, result.Refreshed)
	s.Equal(0, result.Failed)
	s.Empty(result.Errors)
}

func (s *BankFeedServiceSuite) TestRefreshAll_NoLinkedAccounts() {
	s.accountRepo.EXPECT().GetLinkedByUserID(s.testUserID).Return([]models.Account{}, nil)

	result, err := s.service.RefreshAll(s.ctx, s.testUserID)
	s.NoError(err)
	s.Equal(0, result.Refreshed)
	s.Equal(0, result.Failed)
}
