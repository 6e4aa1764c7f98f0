package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karashiiro/exchange-rate-mcp/exchange"
	"github.com/karashiiro/exchange-rate-mcp/provider/mock"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

func TestHandlers_ExchangeRate(t *testing.T) {
	t.Parallel()

	t.Run("invalid base", func(t *testing.T) {
		t.Parallel()

		var called bool

		source := &mock.Source{
			ReferenceRatesFn: func(
				_ context.Context,
				_ []types.Currency,
			) (types.Rates, error) {
				called = true

				return nil, nil
			},
		}

		s := &Server{
			resolver: exchange.NewResolver(source),
			logger:   noopLogger,
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/rates/US/EUR", http.NoBody)
		req = withRouteParams(t, req, map[string]string{
			"base":   "US",
			"target": "EUR",
		})

		w := httptest.NewRecorder()
		s.ExchangeRate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("upstream failure", func(t *testing.T) {
		t.Parallel()

		source := &mock.Source{
			ReferenceRatesFn: func(
				_ context.Context,
				_ []types.Currency,
			) (types.Rates, error) {
				return nil, errors.New("boom")
			},
		}

		s := &Server{
			resolver: exchange.NewResolver(source),
			logger:   noopLogger,
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/rates/USD/EUR", http.NoBody)
		req = withRouteParams(t, req, map[string]string{
			"base":   "USD",
			"target": "EUR",
		})

		w := httptest.NewRecorder()
		s.ExchangeRate(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("unknown currency", func(t *testing.T) {
		t.Parallel()

		source := &mock.Source{
			ReferenceRatesFn: func(
				_ context.Context,
				_ []types.Currency,
			) (types.Rates, error) {
				return types.Rates{"NOK": 1}, nil
			},
		}

		s := &Server{
			resolver: exchange.NewResolver(source),
			logger:   noopLogger,
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/rates/ZZZ/NOK", http.NoBody)
		req = withRouteParams(t, req, map[string]string{
			"base":   "ZZZ",
			"target": "NOK",
		})

		w := httptest.NewRecorder()
		s.ExchangeRate(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		source := &mock.Source{
			ReferenceRatesFn: func(
				_ context.Context,
				_ []types.Currency,
			) (types.Rates, error) {
				return types.Rates{
					"NOK": 1,
					"USD": 8.5,
					"EUR": 10.2,
				}, nil
			},
		}

		s := &Server{
			resolver: exchange.NewResolver(source),
			logger:   noopLogger,
		}

		req := httptest.NewRequest(
			http.MethodGet,
			"/v1/rates/usd/eur?date=2024-06-01",
			http.NoBody,
		)
		req = withRouteParams(t, req, map[string]string{
			"base":   "usd",
			"target": "eur",
		})

		w := httptest.NewRecorder()
		s.ExchangeRate(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result types.ExchangeRate

		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))

		assert.Equal(t, types.Currency("USD"), result.Base)
		assert.Equal(t, types.Currency("EUR"), result.Target)
		assert.Equal(t, "2024-06-01", result.Date)
		assert.InDelta(t, 0.8333, result.Rate, 0.0001)
	})
}

func withRouteParams(
	t *testing.T,
	req *http.Request,
	params map[string]string,
) *http.Request {
	t.Helper()

	rctx := chi.NewRouteContext()

	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}

	return req.WithContext(
		context.WithValue(req.Context(), chi.RouteCtxKey, rctx),
	)
}
