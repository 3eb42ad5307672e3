package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate mirrors a row of the currency_rates table.
type CurrencyRate struct {
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	Rate         decimal.Decimal `db:"rate"`
	LastUpdated  time.Time       `db:"last_updated"`
}
