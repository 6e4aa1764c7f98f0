package norgesbank

import "github.com/karashiiro/exchange-rate-mcp/types"

// DenominationTable maps a currency to the unit size its NOK quote is
// published per. Norges Bank quotes thinly-valued currencies per 100 units
// instead of per 1; currencies absent from the table are quoted per 1.
type DenominationTable map[types.Currency]int

// Divisor returns the quote unit size for the given currency.
func (t DenominationTable) Divisor(currency types.Currency) int {
	if d, ok := t[currency]; ok {
		return d
	}

	return 1
}

// DefaultDenominations returns the quote conventions used by Norges Bank
func DefaultDenominations() DenominationTable {
	return DenominationTable{
		"DKK": 100,
		"IDR": 100,
		"ISK": 100,
		"JPY": 100,
		"KRW": 100,
		"SEK": 100,
		"THB": 100,
	}
}

// normalizeRates converts raw published quotes into NOK-per-1-unit rates,
// dividing out the per-N quote convention
func normalizeRates(raw types.Rates, table DenominationTable) types.Rates {
	normalized := make(types.Rates, len(raw))

	for currency, rate := range raw {
		normalized[currency] = rate / float64(table.Divisor(currency))
	}

	return normalized
}
