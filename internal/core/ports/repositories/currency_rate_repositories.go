package repositories

import (
	"context"

	"github.com/SscSPs/currency_toolkit/internal/core/domain"
)

// CurrencyRateReader defines read operations for currency rate data
type CurrencyRateReader interface {
	// FindCurrencyRate retrieves the stored rate for a currency pair.
	FindCurrencyRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.CurrencyRate, error)

	// ListCurrencyRates retrieves every stored rate ordered by pair.
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for currency rate data
type CurrencyRateWriter interface {
	// UpsertCurrencyRates inserts the rates, replacing the rate of any existing pair.
	// It returns the number of rows written.
	UpsertCurrencyRates(ctx context.Context, rates []domain.CurrencyRate) (int, error)
}

// CurrencyRateRepositoryFacade combines all currency rate repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}

// CurrencyRateRepositoryWithTx extends CurrencyRateRepositoryFacade with transaction capabilities
type CurrencyRateRepositoryWithTx interface {
	CurrencyRateRepositoryFacade
	TransactionManager
}
