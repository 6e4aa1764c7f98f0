// Package exchange derives cross rates between arbitrary currencies from
// NOK reference quotes.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

// ErrCurrencyUnavailable indicates the upstream service has no quote
// for a requested currency
var ErrCurrencyUnavailable = errors.New("currency unavailable")

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// RateSource resolves NOK reference rates for a set of currencies
type RateSource interface {
	// ReferenceRates returns the NOK-per-1-unit rate for each given currency,
	// always including the reference currency itself at exactly 1
	ReferenceRates(ctx context.Context, currencies []types.Currency) (types.Rates, error)
}

// Resolver resolves exchange rates between currency pairs
type Resolver struct {
	source RateSource
	logger *slog.Logger
}

// NewResolver creates a new rate resolver instance
func NewResolver(source RateSource, opts ...Option) *Resolver {
	r := &Resolver{
		source: source,
		logger: noopLogger,
	}

	// Apply the options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve fetches the reference rates for the base / target pair in a single
// batched call, and derives the base -> target cross rate.
// The date is echoed verbatim when given, otherwise it defaults to today's
// date; it does not select a historical observation
func (r *Resolver) Resolve(
	ctx context.Context,
	base types.Currency,
	target types.Currency,
	date string,
) (*types.ExchangeRate, error) {
	id := xid.New()

	r.logger.Info(
		"resolving exchange rate",
		"id", id.String(),
		"base", base,
		"target", target,
	)

	rates, err := r.source.ReferenceRates(ctx, []types.Currency{base, target})
	if err != nil {
		return nil, fmt.Errorf("unable to fetch reference rates: %w", err)
	}

	rate, err := CrossRate(rates, base, target)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().UTC().Format(time.DateOnly)
	}

	result := &types.ExchangeRate{
		Base:   base,
		Target: target,
		Date:   date,
		Rate:   rate,
	}

	r.logger.Info(
		"resolved exchange rate",
		"id", id.String(),
		"base", base,
		"target", target,
		"rate", rate,
		"date", date,
	)

	return result, nil
}

// CrossRate derives the base -> target rate from NOK reference quotes.
// Exact when either side is the reference currency, a true cross
// rate otherwise
func CrossRate(rates types.Rates, base, target types.Currency) (float64, error) {
	baseRate, ok := rates[base]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCurrencyUnavailable, base)
	}

	targetRate, ok := rates[target]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCurrencyUnavailable, target)
	}

	return baseRate / targetRate, nil
}
