package bankfeed

// LiabilityCache memoizes liability lookups by access token for the
// duration of a single refresh pass. Several accounts usually share one
// access token, so a full-portfolio refresh hits the provider once per
// institution instead of once per card.
//
// The cache is request scoped. Callers build a fresh one per refresh and
// discard it afterwards, so it holds no locks. maxEntries caps memory in
// case a user links an unreasonable number of institutions.
type LiabilityCache struct {
	maxEntries int
	entries    map[string]map[string]CreditLiability
}

const defaultLiabilityCacheSize = 32

// NewLiabilityCache builds a cache holding at most maxEntries tokens.
// A non-positive maxEntries falls back to a sensible default.
func NewLiabilityCache(maxEntries int) *LiabilityCache {
	if maxEntries <= 0 {
		maxEntries = defaultLiabilityCacheSize
	}
	return &LiabilityCache{
		maxEntries: maxEntries,
		entries:    make(map[string]map[string]CreditLiability),
	}
}

// Get returns the cached liabilities for an access token.
func (c *LiabilityCache) Get(accessToken string) (map[string]CreditLiability, bool) {
	liabilities, ok := c.entries[accessToken]
	return liabilities, ok
}

// Put stores liabilities for an access token. When the cache is full the
// new entry is dropped rather than evicting an older one; within a single
// refresh pass every retained entry is still useful.
func (c *LiabilityCache) Put(accessToken string, liabilities map[string]CreditLiability) {
	if _, ok := c.entries[accessToken]; !ok && len(c.entries) >= c.maxEntries {
		return
	}
	c.entries[accessToken] = liabilities
}

// Len reports how many tokens currently have cached liabilities.
func (c *LiabilityCache) Len() int {
	return len(c.entries)
}
