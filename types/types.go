package types

// Currency is a short uppercase currency code, e.g. "USD".
// Codes are not validated against a registry; an unknown code
// simply yields no quote from the upstream service.
type Currency string

func (c Currency) String() string {
	return string(c)
}

// Rates maps a currency to how many NOK one unit of it is worth.
// The reference currency itself always maps to exactly 1.
type Rates map[Currency]float64

// ExchangeRate is a resolved base -> target conversion rate.
// Date is documentary only and does not select a historical observation.
type ExchangeRate struct {
	Base   Currency `json:"baseCurrency"`
	Target Currency `json:"targetCurrency"`
	Date   string   `json:"date"`
	Rate   float64  `json:"rate"`
}
