package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_toolkit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/shopspring/decimal"
)

// DefaultUnitsPerUSD is how many units of each currency one US dollar buys.
// Every seeded pair is derived from this table.
var DefaultUnitsPerUSD = map[domain.CurrencyCode]decimal.Decimal{
	domain.USD: decimal.NewFromInt(1),
	domain.EUR: decimal.RequireFromString("0.92"),
	domain.GBP: decimal.RequireFromString("0.79"),
	domain.ILS: decimal.RequireFromString("3.70"),
}

// currencySeederService implements portssvc.CurrencySeederSvcFacade
type currencySeederService struct {
	BaseService
	rateRepo    portsrepo.CurrencyRateRepositoryFacade
	unitsPerUSD map[domain.CurrencyCode]decimal.Decimal
	now         func() time.Time
}

// SeederOption is a functional option for configuring the seeder service
type SeederOption func(*currencySeederService)

// WithUnitsPerUSD replaces the base rate table.
func WithUnitsPerUSD(units map[domain.CurrencyCode]decimal.Decimal) SeederOption {
	return func(s *currencySeederService) {
		s.unitsPerUSD = units
	}
}

// WithClock sets the time source used for last_updated.
func WithClock(now func() time.Time) SeederOption {
	return func(s *currencySeederService) {
		s.now = now
	}
}

// NewCurrencySeederService creates a new seeder service with the provided options
func NewCurrencySeederService(rateRepo portsrepo.CurrencyRateRepositoryFacade, options ...SeederOption) portssvc.CurrencySeederSvcFacade {
	svc := &currencySeederService{
		rateRepo:    rateRepo,
		unitsPerUSD: DefaultUnitsPerUSD,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// BuildSeedRates derives a rate for every ordered pair of distinct supported currencies.
func BuildSeedRates(unitsPerUSD map[domain.CurrencyCode]decimal.Decimal, at time.Time) ([]domain.CurrencyRate, error) {
	rates := make([]domain.CurrencyRate, 0, len(domain.SupportedCurrencies)*(len(domain.SupportedCurrencies)-1))
	for _, from := range domain.SupportedCurrencies {
		fromUnits, ok := unitsPerUSD[from]
		if !ok || !fromUnits.IsPositive() {
			return nil, fmt.Errorf("%w: no positive base rate for %s", apperrors.ErrValidation, from)
		}
		for _, to := range domain.SupportedCurrencies {
			if from == to {
				continue
			}
			toUnits, ok := unitsPerUSD[to]
			if !ok || !toUnits.IsPositive() {
				return nil, fmt.Errorf("%w: no positive base rate for %s", apperrors.ErrValidation, to)
			}
			rates = append(rates, domain.CurrencyRate{
				FromCurrency: from,
				ToCurrency:   to,
				Rate:         toUnits.Div(fromUnits).Round(utils.RatePrecision),
				LastUpdated:  at,
			})
		}
	}
	return rates, nil
}

// SeedCurrencyRates upserts the rate table; running it twice leaves the same rows.
func (s *currencySeederService) SeedCurrencyRates(ctx context.Context) (int, error) {
	rates, err := BuildSeedRates(s.unitsPerUSD, s.now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Invalid seed rate table")
		return 0, err
	}

	written, err := s.rateRepo.UpsertCurrencyRates(ctx, rates)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert currency rates", slog.Int("rates", len(rates)))
		return 0, fmt.Errorf("failed to seed currency rates: %w", err)
	}

	s.LogInfo(ctx, "Currency rates seeded", slog.Int("rates", len(rates)), slog.Int("rows_written", written))
	return len(rates), nil
}

// TestCurrencyRate reads back the stored rate for a pair.
func (s *currencySeederService) TestCurrencyRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.CurrencyRate, error) {
	if !from.IsSupported() || !to.IsSupported() {
		return nil, fmt.Errorf("%w: unsupported currency pair %s->%s", apperrors.ErrValidation, from, to)
	}
	if from == to {
		return &domain.CurrencyRate{
			FromCurrency: from,
			ToCurrency:   to,
			Rate:         decimal.NewFromInt(1),
			LastUpdated:  s.now().UTC(),
		}, nil
	}

	rate, err := s.rateRepo.FindCurrencyRate(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to read currency rate", slog.String("from", string(from)), slog.String("to", string(to)))
		return nil, fmt.Errorf("failed to test currency rate: %w", err)
	}
	return rate, nil
}

// ListCurrencyRates retrieves every stored rate.
func (s *currencySeederService) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency rates")
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}
