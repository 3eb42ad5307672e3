package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_toolkit/internal/core/ports/repositories"
	"github.com/SscSPs/currency_toolkit/internal/models"
	"github.com/SscSPs/currency_toolkit/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const upsertCurrencyRateSQL = `
	INSERT INTO currency_rates (from_currency, to_currency, rate, last_updated)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (from_currency, to_currency)
	DO UPDATE SET rate = EXCLUDED.rate, last_updated = EXCLUDED.last_updated`

// PgxCurrencyRateRepository implements portsrepo.CurrencyRateRepositoryWithTx using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

var _ portsrepo.CurrencyRateRepositoryWithTx = (*PgxCurrencyRateRepository)(nil)

// newPgxCurrencyRateRepository creates a new PgxCurrencyRateRepository.
func newPgxCurrencyRateRepository(db *pgxpool.Pool) *PgxCurrencyRateRepository {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// UpsertCurrencyRates writes every rate in one transaction, updating pairs that already exist.
func (r *PgxCurrencyRateRepository) UpsertCurrencyRates(ctx context.Context, rates []domain.CurrencyRate) (int, error) {
	if len(rates) == 0 {
		return 0, nil
	}
	modelRates := mapping.ToModelCurrencyRates(rates)

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, m := range modelRates {
		batch.Queue(upsertCurrencyRateSQL, m.FromCurrency, m.ToCurrency, m.Rate, m.LastUpdated)
	}

	results := tx.SendBatch(ctx, batch)
	written := 0
	for _, m := range modelRates {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, apperrors.NewAppError(500, "failed to upsert currency rate "+m.FromCurrency+"->"+m.ToCurrency, err)
		}
		written += int(tag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to close upsert batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return written, nil
}

// FindCurrencyRate retrieves the stored rate for a currency pair.
func (r *PgxCurrencyRateRepository) FindCurrencyRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.CurrencyRate, error) {
	query := `
		SELECT from_currency, to_currency, rate, last_updated
		FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2;
	`

	var m models.CurrencyRate
	err := r.Pool.QueryRow(ctx, query, string(from), string(to)).Scan(
		&m.FromCurrency, &m.ToCurrency, &m.Rate, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no currency rate stored for " + string(from) + " to " + string(to))
		}
		return nil, apperrors.NewAppError(500, "failed to find currency rate", err)
	}

	rate := mapping.ToDomainCurrencyRate(m)
	return &rate, nil
}

// ListCurrencyRates retrieves every stored rate ordered by pair.
func (r *PgxCurrencyRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT from_currency, to_currency, rate, last_updated
		FROM currency_rates
		ORDER BY from_currency, to_currency;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currency rates", err)
	}
	defer rows.Close()

	rates := []domain.CurrencyRate{}
	for rows.Next() {
		var m models.CurrencyRate
		if err := rows.Scan(&m.FromCurrency, &m.ToCurrency, &m.Rate, &m.LastUpdated); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency rate", err)
		}
		rates = append(rates, mapping.ToDomainCurrencyRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rates", err)
	}
	return rates, nil
}
