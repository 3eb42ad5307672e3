package dto

import (
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/SscSPs/currency_toolkit/internal/utils"
)

// SeedCurrencyResponse is the envelope returned by both /api/seed-currency methods.
type SeedCurrencyResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	TestResult *TestResult `json:"testResult,omitempty"`
}

// TestResult carries the rate read back by GET /api/seed-currency.
type TestResult struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// TestRateQuery selects the pair to read back. Both default to the USD to ILS pair.
type TestRateQuery struct {
	From string `form:"from" binding:"omitempty,currencycode"`
	To   string `form:"to" binding:"omitempty,currencycode"`
}

// CurrencyRateResponse defines the data returned for one stored rate.
type CurrencyRateResponse struct {
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	Rate         string `json:"rate"`
	LastUpdated  string `json:"lastUpdated"`
}

// NewSeedFailure builds the {success:false, error} envelope.
func NewSeedFailure(message string) SeedCurrencyResponse {
	return SeedCurrencyResponse{Success: false, Error: message}
}

// ToTestResult converts a stored rate into the page's test payload.
func ToTestResult(rate *domain.CurrencyRate) *TestResult {
	return &TestResult{
		From: rate.FromCurrency.String(),
		To:   rate.ToCurrency.String(),
		Rate: rate.Rate.InexactFloat64(),
	}
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to CurrencyRateResponse DTO
func ToCurrencyRateResponse(rate domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		FromCurrency: rate.FromCurrency.String(),
		ToCurrency:   rate.ToCurrency.String(),
		Rate:         utils.FormatRate(rate.Rate),
		LastUpdated:  rate.LastUpdated.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToListCurrencyRateResponse converts a slice of rates to response DTOs
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i, rate := range rates {
		res[i] = ToCurrencyRateResponse(rate)
	}
	return res
}
