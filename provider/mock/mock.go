package mock

import (
	"context"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

type ReferenceRatesDelegate func(context.Context, []types.Currency) (types.Rates, error)

type Source struct {
	ReferenceRatesFn ReferenceRatesDelegate
}

func (m *Source) ReferenceRates(
	ctx context.Context,
	currencies []types.Currency,
) (types.Rates, error) {
	if m.ReferenceRatesFn != nil {
		return m.ReferenceRatesFn(ctx, currencies)
	}

	return nil, nil
}
