package domain

import "time"

// CurrencyCode is one of the currencies the toolkit knows about.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	ILS CurrencyCode = "ILS"
)

// SupportedCurrencies lists every recognised code in seeding order.
var SupportedCurrencies = []CurrencyCode{USD, EUR, GBP, ILS}

// IsSupported reports whether c is one of SupportedCurrencies.
func (c CurrencyCode) IsSupported() bool {
	for _, supported := range SupportedCurrencies {
		if c == supported {
			return true
		}
	}
	return false
}

func (c CurrencyCode) String() string {
	return string(c)
}

// CurrencyRate is one row of the currency_rates table.
type CurrencyRate struct {
	FromCurrency CurrencyCode `json:"fromCurrency"`
	ToCurrency   CurrencyCode `json:"toCurrency"`
	Rate         Rate         `json:"rate"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}
