// Package norgesbank fetches NOK reference rates from the Norges Bank
// statistical data API (EXR dataset, SDMX-JSON).
//
// The API publishes bilateral quotes against NOK only; cross rates between
// other currencies are derived downstream from a single batched fetch.
package norgesbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

// ReferenceCurrency is the currency all Norges Bank quotes are published against
const ReferenceCurrency = types.Currency("NOK")

const (
	defaultAPIURL  = "https://data.norges-bank.no/api/data/EXR"
	defaultTimeout = time.Second * 30
)

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedResponse   = errors.New("malformed upstream response")
	ErrInvalidRateValue    = errors.New("invalid rate value")
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Client is the Norges Bank EXR dataset client
type Client struct {
	client        *http.Client
	logger        *slog.Logger
	apiURL        string
	denominations DenominationTable
}

// NewClient creates a new Norges Bank client instance
func NewClient(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:        noopLogger,
		apiURL:        defaultAPIURL,
		denominations: DefaultDenominations(),
	}

	// Apply the options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ReferenceRates fetches the latest NOK quote for each given currency, in a
// single batched call, and returns them normalized to NOK per 1 unit.
// The reference currency is always present at exactly 1, and is never
// part of the outbound query
func (c *Client) ReferenceRates(
	ctx context.Context,
	currencies []types.Currency,
) (types.Rates, error) {
	rates := types.Rates{
		ReferenceCurrency: 1,
	}

	query := buildCurrencyQuery(currencies)
	if query == "" {
		// Only the reference currency was requested
		return rates, nil
	}

	url := fmt.Sprintf(
		"%s/B.%s.%s.SP?format=sdmx-json&lastNObservations=1",
		c.apiURL,
		query,
		ReferenceCurrency,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create new GET request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status code %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var data sdmxResponse

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	raw, err := parseReferenceRates(&data)
	if err != nil {
		return nil, err
	}

	for currency, rate := range normalizeRates(raw, c.denominations) {
		rates[currency] = rate
	}

	c.logger.Debug(
		"fetched reference rates",
		"currencies", query,
		"count", len(rates),
	)

	return rates, nil
}

// buildCurrencyQuery builds the combined currency selector for the outbound
// query. The reference currency is excluded (it is implicitly 1), duplicates
// are dropped, and first-seen order is preserved
func buildCurrencyQuery(currencies []types.Currency) string {
	var (
		query string
		seen  = make(map[types.Currency]struct{}, len(currencies))
	)

	for _, currency := range currencies {
		if currency == ReferenceCurrency {
			continue
		}

		if _, ok := seen[currency]; ok {
			continue
		}

		seen[currency] = struct{}{}

		if query != "" {
			query += "+"
		}

		query += currency.String()
	}

	return query
}
