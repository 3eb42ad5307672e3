package pgsql

import (
	portsrepo "github.com/SscSPs/currency_toolkit/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRateRepo := newPgxCurrencyRateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRateRepo: currencyRateRepo,
	}
}
