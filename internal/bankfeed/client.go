package bankfeed

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by Client implementations.
var (
	ErrNotConfigured = errors.New("bank feed provider is not configured")
	ErrUpstream      = errors.New("bank feed provider request failed")
)

// TokenExchange is the result of trading a public token for a permanent
// access token.
type TokenExchange struct {
	AccessToken string
	ItemID      string
}

// RemoteAccount is a credit card account as reported by the provider.
type RemoteAccount struct {
	RemoteID       string
	Name           string
	OfficialName   string
	Mask           string
	CurrentBalance decimal.Decimal
	CreditLimit    *decimal.Decimal
}

// DisplayName prefers the institution's official name over the short one.
func (r RemoteAccount) DisplayName() string {
	if r.OfficialName != "" {
		return r.OfficialName
	}
	return r.Name
}

// CreditLiability carries the liability details the provider exposes for a
// single credit account. Fields are nil when the institution does not
// report them.
type CreditLiability struct {
	RemoteID           string
	MinimumPayment     *decimal.Decimal
	NextPaymentDueDate *time.Time
	PurchaseAPR        *decimal.Decimal

	// CreditLimit is the liability-reported limit. When set it outranks
	// the balance-level limit on the matching RemoteAccount.
	CreditLimit *decimal.Decimal
}

// Client abstracts the upstream bank data provider.
type Client interface {
	// CreateLinkToken starts a new link session for the given user.
	CreateLinkToken(ctx context.Context, userID string) (string, error)

	// ExchangePublicToken trades the short-lived public token produced by
	// a completed link session for a permanent access token.
	ExchangePublicToken(ctx context.Context, publicToken string) (TokenExchange, error)

	// FetchCreditAccounts returns the credit card accounts reachable with
	// the given access token. Non-credit accounts are filtered out.
	FetchCreditAccounts(ctx context.Context, accessToken string) ([]RemoteAccount, error)

	// FetchLiabilities returns liability details keyed by remote account ID.
	FetchLiabilities(ctx context.Context, accessToken string) (map[string]CreditLiability, error)
}
