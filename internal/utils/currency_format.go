package utils

import (
	"github.com/shopspring/decimal"
)

// RatePrecision is the number of decimal places stored for a conversion rate.
const RatePrecision = 6

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatRate formats a conversion rate at RatePrecision.
func FormatRate(rate decimal.Decimal) string {
	return FormatWithPrecision(rate, RatePrecision)
}
