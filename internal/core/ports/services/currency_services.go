package services

import (
	"context"

	"github.com/SscSPs/currency_toolkit/internal/core/domain"
)

// CurrencySeederSvc defines the seeding operations behind /api/seed-currency.
type CurrencySeederSvc interface {
	// SeedCurrencyRates upserts the built-in rate table and returns the number of rows written.
	SeedCurrencyRates(ctx context.Context) (int, error)

	// TestCurrencyRate reads back the stored rate for a pair.
	TestCurrencyRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.CurrencyRate, error)
}

// CurrencyRateReaderSvc defines read operations for stored rates.
type CurrencyRateReaderSvc interface {
	// ListCurrencyRates retrieves every stored rate.
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)
}

// CurrencySeederSvcFacade combines all seeding related service interfaces
type CurrencySeederSvcFacade interface {
	CurrencySeederSvc
	CurrencyRateReaderSvc
}
