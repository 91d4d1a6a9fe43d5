package bankfeed

import (
	"context"
	"fmt"
	"time"

	"github.com/plaid/plaid-go/v31/plaid"
	"github.com/shopspring/decimal"

	"cardledger/internal/config"
)

const liabilityDateLayout = "2006-01-02"

// plaidClient implements Client against the Plaid API.
type plaidClient struct {
	api        *plaid.APIClient
	clientName string
}

// NewPlaidClient builds a Client from the bank feed configuration. It
// returns ErrNotConfigured when the credentials are missing so callers can
// run without a provider in development.
func NewPlaidClient(cfg config.BankFeedConfig) (Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)
	configuration.UseEnvironment(plaidEnvironment(cfg.Environment))

	return &plaidClient{
		api:        plaid.NewAPIClient(configuration),
		clientName: cfg.ClientName,
	}, nil
}

func plaidEnvironment(name string) plaid.Environment {
	if name == "production" {
		return plaid.Production
	}
	return plaid.Sandbox
}

func (p *plaidClient) CreateLinkToken(ctx context.Context, userID string) (string, error) {
	user := plaid.LinkTokenCreateRequestUser{ClientUserId: userID}
	request := plaid.NewLinkTokenCreateRequest(p.clientName, "en", []plaid.CountryCode{plaid.COUNTRYCODE_US}, user)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_LIABILITIES})

	resp, _, err := p.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", fmt.Errorf("%w: create link token: %v", ErrUpstream, err)
	}

	return resp.GetLinkToken(), nil
}

func (p *plaidClient) ExchangePublicToken(ctx context.Context, publicToken string) (TokenExchange, error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)

	resp, _, err := p.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return TokenExchange{}, fmt.Errorf("%w: exchange public token: %v", ErrUpstream, err)
	}

	return TokenExchange{
		AccessToken: resp.GetAccessToken(),
		ItemID:      resp.GetItemId(),
	}, nil
}

func (p *plaidClient) FetchCreditAccounts(ctx context.Context, accessToken string) ([]RemoteAccount, error) {
	request := plaid.NewAccountsGetRequest(accessToken)

	resp, _, err := p.api.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*request).Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch accounts: %v", ErrUpstream, err)
	}

	var accounts []RemoteAccount
	for _, account := range resp.GetAccounts() {
		if account.GetType() != plaid.ACCOUNTTYPE_CREDIT {
			continue
		}
		if account.GetSubtype() != plaid.ACCOUNTSUBTYPE_CREDIT_CARD {
			continue
		}

		balances := account.GetBalances()
		remote := RemoteAccount{
			RemoteID:       account.GetAccountId(),
			Name:           account.GetName(),
			OfficialName:   account.GetOfficialName(),
			Mask:           account.GetMask(),
			CurrentBalance: decimal.NewFromFloat(balances.GetCurrent()),
		}
		if limit, ok := balances.GetLimitOk(); ok && limit != nil {
			d := decimal.NewFromFloat(*limit)
			remote.CreditLimit = &d
		}
		accounts = append(accounts, remote)
	}

	return accounts, nil
}

func (p *plaidClient) FetchLiabilities(ctx context.Context, accessToken string) (map[string]CreditLiability, error) {
	request := plaid.NewLiabilitiesGetRequest(accessToken)

	resp, _, err := p.api.PlaidApi.LiabilitiesGet(ctx).LiabilitiesGetRequest(*request).Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch liabilities: %v", ErrUpstream, err)
	}

	reported := resp.GetLiabilities()

	liabilities := make(map[string]CreditLiability)
	for _, credit := range reported.GetCredit() {
		liability := CreditLiability{RemoteID: credit.GetAccountId()}

		if amount, ok := credit.GetMinimumPaymentAmountOk(); ok && amount != nil {
			d := decimal.NewFromFloat(*amount)
			liability.MinimumPayment = &d
		}
		if dueDate, ok := credit.GetNextPaymentDueDateOk(); ok && dueDate != nil {
			if parsed, parseErr := time.Parse(liabilityDateLayout, *dueDate); parseErr == nil {
				liability.NextPaymentDueDate = &parsed
			}
		}
		if apr := purchaseAPR(credit.GetAprs()); apr != nil {
			liability.PurchaseAPR = apr
		}

		liabilities[liability.RemoteID] = liability
	}

	return liabilities, nil
}

// purchaseAPR picks the purchase APR when reported, otherwise the first
// APR the institution exposes.
func purchaseAPR(aprs []plaid.APR) *decimal.Decimal {
	for _, apr := range aprs {
		if apr.GetAprType() == "purchase_apr" {
			d := decimal.NewFromFloat(apr.GetAprPercentage())
			return &d
		}
	}
	if len(aprs) > 0 {
		d := decimal.NewFromFloat(aprs[0].GetAprPercentage())
		return &d
	}
	return nil
}
