package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/karashiiro/exchange-rate-mcp/exchange"
	"github.com/karashiiro/exchange-rate-mcp/types"
)

var (
	errUnableToResolveRate = errors.New("unable to resolve exchange rate")
	errUnknownCurrency     = errors.New("unknown currency")
)

func (s *Server) ExchangeRate(w http.ResponseWriter, r *http.Request) {
	var (
		baseParam   = chi.URLParam(r, "base")
		targetParam = chi.URLParam(r, "target")

		dateParam = r.URL.Query().Get("date")
	)

	// Parse the base currency
	base, err := parseCurrencySymbol(baseParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	// Parse the target currency
	target, err := parseCurrencySymbol(targetParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	result, err := s.resolver.Resolve(r.Context(), base, target, dateParam)
	if err != nil {
		s.logger.Debug(
			"unable to resolve exchange rate",
			"err", err,
		)

		if errors.Is(err, exchange.ErrCurrencyUnavailable) {
			writeError(w, http.StatusNotFound, errUnknownCurrency)

			return
		}

		writeError(
			w,
			http.StatusBadGateway,
			errUnableToResolveRate,
		)

		return
	}

	writeJSON(w, http.StatusOK, result)
}

func parseCurrencySymbol(v string) (types.Currency, error) {
	s := strings.ToUpper(strings.TrimSpace(v))
	if len(s) != 3 {
		return "", errors.New("invalid currency (must be 3 letters)")
	}

	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", errors.New("invalid currency (must be A-Z)")
		}
	}

	return types.Currency(s), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}

	writeJSON(w, status, resp)
}
