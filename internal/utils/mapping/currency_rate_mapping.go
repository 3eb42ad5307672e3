package mapping

import (
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/SscSPs/currency_toolkit/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		FromCurrency: string(d.FromCurrency),
		ToCurrency:   string(d.ToCurrency),
		Rate:         d.Rate,
		LastUpdated:  d.LastUpdated,
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		FromCurrency: domain.CurrencyCode(m.FromCurrency),
		ToCurrency:   domain.CurrencyCode(m.ToCurrency),
		Rate:         m.Rate,
		LastUpdated:  m.LastUpdated,
	}
}

// ToModelCurrencyRates converts a slice of domain rates.
func ToModelCurrencyRates(ds []domain.CurrencyRate) []models.CurrencyRate {
	out := make([]models.CurrencyRate, len(ds))
	for i, d := range ds {
		out[i] = ToModelCurrencyRate(d)
	}
	return out
}
