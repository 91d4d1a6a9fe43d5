package dto

// Bank feed Request DTOs

// ExchangeTokenRequest carries the short-lived public token produced by a
// completed link session
type ExchangeTokenRequest struct {
	PublicToken string `json:"public_token" validate:"required"`
}

// LinkAccountRequest carries the provider credentials to attach to an account
type LinkAccountRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
	ItemID      string `json:"item_id" validate:"required"`
}

// Bank feed Response DTOs

// LinkTokenResponse represents a freshly created link session token
type LinkTokenResponse struct {
	LinkToken string `json:"link_token"`
}

// ExchangeTokenResponse represents the permanent credentials for a linked item
type ExchangeTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// RefreshAllResponse summarizes a portfolio-wide refresh
type RefreshAllResponse struct {
	Refreshed int      `json:"refreshed"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}
