package exchange

import (
	"context"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

type referenceRatesDelegate func(context.Context, []types.Currency) (types.Rates, error)

type mockSource struct {
	referenceRatesFn referenceRatesDelegate
}

func (m *mockSource) ReferenceRates(
	ctx context.Context,
	currencies []types.Currency,
) (types.Rates, error) {
	if m.referenceRatesFn != nil {
		return m.referenceRatesFn(ctx, currencies)
	}

	return nil, nil
}
