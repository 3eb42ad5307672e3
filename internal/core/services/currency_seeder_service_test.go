package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) UpsertCurrencyRates(ctx context.Context, rates []domain.CurrencyRate) (int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindCurrencyRate(ctx context.Context, from, to domain.CurrencyCode) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

// --- Test Suite ---
type CurrencySeederServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRateRepository
	service  portssvc.CurrencySeederSvcFacade
	now      time.Time
}

func (suite *CurrencySeederServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRateRepository)
	suite.now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewCurrencySeederService(suite.mockRepo, services.WithClock(func() time.Time { return suite.now }))
}

// --- Test Cases ---

func (suite *CurrencySeederServiceTestSuite) TestSeedCurrencyRates_Success() {
	ctx := context.Background()

	suite.mockRepo.On("UpsertCurrencyRates", ctx, mock.MatchedBy(func(rates []domain.CurrencyRate) bool {
		if len(rates) != 12 {
			return false
		}
		for _, r := range rates {
			if r.FromCurrency == r.ToCurrency || !r.LastUpdated.Equal(suite.now) || !r.Rate.IsPositive() {
				return false
			}
		}
		return true
	})).Return(12, nil).Once()

	count, err := suite.service.SeedCurrencyRates(ctx)

	suite.Require().NoError(err)
	suite.Equal(12, count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencySeederServiceTestSuite) TestSeedCurrencyRates_RepositoryError() {
	ctx := context.Background()
	dbErr := apperrors.NewAppError(500, "failed to upsert", errors.New("connection reset"))
	suite.mockRepo.On("UpsertCurrencyRates", ctx, mock.Anything).Return(0, dbErr).Once()

	count, err := suite.service.SeedCurrencyRates(ctx)

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, dbErr)
	suite.Contains(err.Error(), "failed to seed currency rates")
}

func (suite *CurrencySeederServiceTestSuite) TestSeedCurrencyRates_InvalidBaseTable() {
	ctx := context.Background()
	svc := services.NewCurrencySeederService(suite.mockRepo, services.WithUnitsPerUSD(map[domain.CurrencyCode]decimal.Decimal{
		domain.USD: decimal.NewFromInt(1),
		domain.EUR: decimal.Zero,
	}))

	_, err := svc.SeedCurrencyRates(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCurrencyRates", mock.Anything, mock.Anything)
}

func (suite *CurrencySeederServiceTestSuite) TestTestCurrencyRate_Found() {
	ctx := context.Background()
	stored := &domain.CurrencyRate{
		FromCurrency: domain.USD,
		ToCurrency:   domain.ILS,
		Rate:         decimal.RequireFromString("3.7"),
		LastUpdated:  suite.now,
	}
	suite.mockRepo.On("FindCurrencyRate", ctx, domain.USD, domain.ILS).Return(stored, nil).Once()

	rate, err := suite.service.TestCurrencyRate(ctx, domain.USD, domain.ILS)

	suite.Require().NoError(err)
	suite.Equal(stored, rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencySeederServiceTestSuite) TestTestCurrencyRate_NotSeeded() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyRate", ctx, domain.USD, domain.ILS).
		Return(nil, apperrors.NewNotFoundError("no currency rate stored for USD to ILS")).Once()

	rate, err := suite.service.TestCurrencyRate(ctx, domain.USD, domain.ILS)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencySeederServiceTestSuite) TestTestCurrencyRate_SameCurrency() {
	rate, err := suite.service.TestCurrencyRate(context.Background(), domain.EUR, domain.EUR)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1).Equal(rate.Rate))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencySeederServiceTestSuite) TestTestCurrencyRate_Unsupported() {
	rate, err := suite.service.TestCurrencyRate(context.Background(), "JPY", domain.USD)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencySeederServiceTestSuite) TestListCurrencyRates_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencyRates", ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListCurrencyRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

// --- Run Test Suite ---
func TestCurrencySeederService(t *testing.T) {
	suite.Run(t, new(CurrencySeederServiceTestSuite))
}

func TestBuildSeedRates(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	rates, err := services.BuildSeedRates(services.DefaultUnitsPerUSD, at)
	require.NoError(t, err)
	require.Len(t, rates, 12)

	byPair := make(map[[2]domain.CurrencyCode]decimal.Decimal, len(rates))
	for _, r := range rates {
		byPair[[2]domain.CurrencyCode{r.FromCurrency, r.ToCurrency}] = r.Rate
	}

	assert.Equal(t, "3.7", byPair[[2]domain.CurrencyCode{domain.USD, domain.ILS}].String())
	assert.Equal(t, "0.27027", byPair[[2]domain.CurrencyCode{domain.ILS, domain.USD}].String())
	assert.Equal(t, "0.92", byPair[[2]domain.CurrencyCode{domain.USD, domain.EUR}].String())

	// Reciprocal pairs multiply back to roughly one.
	for pair, rate := range byPair {
		inverse := byPair[[2]domain.CurrencyCode{pair[1], pair[0]}]
		product := rate.Mul(inverse)
		assert.True(t, product.Sub(decimal.NewFromInt(1)).Abs().LessThan(decimal.RequireFromString("0.00001")),
			"%s->%s times inverse = %s", pair[0], pair[1], product)
	}
}
