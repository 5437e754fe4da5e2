// Package rates fetches and caches currency exchange rates used to display
// course fees in a common currency.
package rates

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

// Table is one snapshot of exchange rates against the base currency.
type Table struct {
	Base      string
	Rates     map[string]float64
	FetchedAt time.Time
	// Stale marks a cached table served because a refresh failed.
	Stale bool
}

// apiResponse matches the open.er-api.com payload
type apiResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// Client fetches rate tables and caches them for a TTL. A failed refresh
// falls back to the last good table marked stale, so fee display keeps
// working through upstream outages.
type Client struct {
	http    *resty.Client
	baseURL string
	base    string
	ttl     time.Duration
	logger  zerolog.Logger

	mu        sync.Mutex
	cached    *Table
	fetchedAt time.Time
}

// NewClient creates a rates client. baseURL is the provider endpoint without
// the trailing currency code; base is the currency the table is quoted in.
func NewClient(baseURL, base string, ttl time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		http:    resty.New().SetTimeout(10 * time.Second),
		baseURL: baseURL,
		base:    base,
		ttl:     ttl,
		logger:  logger,
	}
}

// Get returns the current rate table, refreshing the cache when the TTL has
// passed. With no cache and a failing upstream it returns ErrRatesUnavailable.
func (c *Client) Get(ctx context.Context) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	table, err := c.fetch(ctx)
	if err != nil {
		if c.cached != nil {
			c.logger.Warn().Err(err).Msg("Rate refresh failed, serving stale table")
			stale := *c.cached
			stale.Stale = true
			c.cached = &stale
			return c.cached, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRatesUnavailable, err)
	}

	c.cached = table
	c.fetchedAt = time.Now()
	return c.cached, nil
}

func (c *Client) fetch(ctx context.Context) (*Table, error) {
	var payload apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("%s/%s", c.baseURL, c.base))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode())
	}
	if payload.Result != "success" || len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rate provider returned result %q", payload.Result)
	}

	return &Table{
		Base:      payload.BaseCode,
		Rates:     payload.Rates,
		FetchedAt: time.Now(),
	}, nil
}
