package mcptool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karashiiro/exchange-rate-mcp/exchange"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

type resolveDelegate func(
	context.Context,
	types.Currency,
	types.Currency,
	string,
) (*types.ExchangeRate, error)

type mockResolver struct {
	resolveFn resolveDelegate
}

func (m *mockResolver) Resolve(
	ctx context.Context,
	base types.Currency,
	target types.Currency,
	date string,
) (*types.ExchangeRate, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, base, target, date)
	}

	return nil, nil
}

func TestTool_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("result serialized as JSON text", func(t *testing.T) {
		t.Parallel()

		resolver := &mockResolver{
			resolveFn: func(
				_ context.Context,
				base types.Currency,
				target types.Currency,
				date string,
			) (*types.ExchangeRate, error) {
				return &types.ExchangeRate{
					Base:   base,
					Target: target,
					Date:   date,
					Rate:   0.8333,
				}, nil
			},
		}

		tl := &tool{
			resolver: resolver,
			logger:   noopLogger,
		}

		text, err := tl.resolve(context.Background(), "usd", "eur", "2024-06-01")
		require.NoError(t, err)

		assert.JSONEq(
			t,
			`{
				"baseCurrency": "USD",
				"targetCurrency": "EUR",
				"date": "2024-06-01",
				"rate": 0.8333
			}`,
			text,
		)
	})

	t.Run("currency codes are normalized before resolving", func(t *testing.T) {
		t.Parallel()

		var capturedBase, capturedTarget types.Currency

		resolver := &mockResolver{
			resolveFn: func(
				_ context.Context,
				base types.Currency,
				target types.Currency,
				_ string,
			) (*types.ExchangeRate, error) {
				capturedBase = base
				capturedTarget = target

				return &types.ExchangeRate{}, nil
			},
		}

		tl := &tool{
			resolver: resolver,
			logger:   noopLogger,
		}

		_, err := tl.resolve(context.Background(), " jpy ", "nok", "")
		require.NoError(t, err)

		assert.Equal(t, types.Currency("JPY"), capturedBase)
		assert.Equal(t, types.Currency("NOK"), capturedTarget)
	})

	t.Run("resolution failure is surfaced", func(t *testing.T) {
		t.Parallel()

		resolveErr := errors.New("upstream down")

		resolver := &mockResolver{
			resolveFn: func(
				_ context.Context,
				_ types.Currency,
				_ types.Currency,
				_ string,
			) (*types.ExchangeRate, error) {
				return nil, resolveErr
			},
		}

		tl := &tool{
			resolver: resolver,
			logger:   noopLogger,
		}

		text, err := tl.resolve(context.Background(), "USD", "EUR", "")

		assert.Empty(t, text)
		assert.ErrorIs(t, err, resolveErr)
	})
}

func TestTool_NewServer(t *testing.T) {
	t.Parallel()

	// The concrete resolver satisfies the tool's interface
	var _ Resolver = (*exchange.Resolver)(nil)

	s := NewServer(&mockResolver{})

	require.NotNil(t, s)
}
