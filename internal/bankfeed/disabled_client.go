package bankfeed

import "context"

// disabledClient stands in when no provider credentials are configured.
// Every call fails with ErrNotConfigured so the rest of the application can
// run without a bank feed.
type disabledClient struct{}

// NewDisabledClient returns a Client whose operations all report
// ErrNotConfigured
func NewDisabledClient() Client {
	return disabledClient{}
}

func (disabledClient) CreateLinkToken(ctx context.Context, userID string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledClient) ExchangePublicToken(ctx context.Context, publicToken string) (TokenExchange, error) {
	return TokenExchange{}, ErrNotConfigured
}

func (disabledClient) FetchCreditAccounts(ctx context.Context, accessToken string) ([]RemoteAccount, error) {
	return nil, ErrNotConfigured
}

func (disabledClient) FetchLiabilities(ctx context.Context, accessToken string) (map[string]CreditLiability, error) {
	return nil, ErrNotConfigured
}
