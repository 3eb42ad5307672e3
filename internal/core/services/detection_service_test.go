package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/detection"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/SscSPs/currency_toolkit/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectionService_DetectCSV(t *testing.T) {
	tests := []struct {
		name              string
		csv               string
		amountField       string
		currencyField     string
		maxRows           int
		wantCurrency      domain.CurrencyCode
		wantFound         bool
		wantMethod        detection.Method
		wantCurrencyField string
		wantRows          int
	}{
		{
			name:              "suggested label column wins over symbols",
			csv:               "id,Amount,Currency Code\n1,$10,eur\n2,$20,EUR\n",
			amountField:       "Amount",
			wantCurrency:      domain.EUR,
			wantFound:         true,
			wantMethod:        detection.MethodLabelColumn,
			wantCurrencyField: "Currency Code",
			wantRows:          2,
		},
		{
			name:         "symbol scan without label column",
			csv:          "id,amt\n1,\"$1,000\"\n2,£5\n3,$7\n",
			amountField:  "amt",
			wantCurrency: domain.USD,
			wantFound:    true,
			wantMethod:   detection.MethodSymbolScan,
			wantRows:     3,
		},
		{
			name:              "explicit currency field",
			csv:               "amt,ccy,note\n₪1,USD,x\n₪2,usd,y\n",
			amountField:       "amt",
			currencyField:     "ccy",
			wantCurrency:      domain.USD,
			wantFound:         true,
			wantMethod:        detection.MethodLabelColumn,
			wantCurrencyField: "ccy",
			wantRows:          2,
		},
		{
			name:        "header only",
			csv:         "amt\n",
			amountField: "amt",
			wantMethod:  detection.MethodNone,
		},
		{
			name:         "row cap",
			csv:          "amt\n£1\n£2\n$3\n$4\n$5\n",
			amountField:  "amt",
			maxRows:      2,
			wantCurrency: domain.GBP,
			wantFound:    true,
			wantMethod:   detection.MethodSymbolScan,
			wantRows:     2,
		},
		{
			name:         "short rows and byte order mark",
			csv:          "\ufeffamt,extra\n€5\n€6,z\n",
			amountField:  "amt",
			wantCurrency: domain.EUR,
			wantFound:    true,
			wantMethod:   detection.MethodSymbolScan,
			wantRows:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewDetectionService(tt.maxRows)

			got, err := svc.DetectCSV(context.Background(), strings.NewReader(tt.csv), tt.amountField, tt.currencyField)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFound, got.Found)
			assert.Equal(t, tt.wantCurrency, got.Currency)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.wantCurrencyField, got.CurrencyField)
			assert.Equal(t, tt.wantRows, got.RowsScanned)
		})
	}
}

func TestDetectionService_DetectCSV_Errors(t *testing.T) {
	svc := services.NewDetectionService(10)
	ctx := context.Background()

	_, err := svc.DetectCSV(ctx, strings.NewReader(""), "amt", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.DetectCSV(ctx, strings.NewReader("id,value\n1,$2\n"), "amt", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "amount column")

	_, err = svc.DetectCSV(ctx, strings.NewReader("amt\n$2\n"), "amt", "currency")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "currency column")

	_, err = svc.DetectCSV(ctx, strings.NewReader("amt\n\"$2\n"), "amt", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDetectionService_DetectCSV_LargeRowCap(t *testing.T) {
	svc := services.NewDetectionService(1 << 40)

	got, err := svc.DetectCSV(context.Background(), strings.NewReader("amt\n£1\n£2\n"), "amt", "")
	require.NoError(t, err)
	assert.Equal(t, domain.GBP, got.Currency)
	assert.Equal(t, 2, got.RowsScanned)
}

func TestDetectionService_InspectAmounts(t *testing.T) {
	svc := services.NewDetectionService(10)

	insights := svc.InspectAmounts(context.Background(), []string{"₪1,500.25", "", "¥300", "abc"})
	require.Len(t, insights, 4)

	assert.Equal(t, "1500.25", insights[0].Cleaned)
	require.NotNil(t, insights[0].Amount)
	assert.True(t, decimal.RequireFromString("1500.25").Equal(*insights[0].Amount))
	require.NotNil(t, insights[0].Currency)
	assert.Equal(t, domain.ILS, *insights[0].Currency)

	assert.Equal(t, "0", insights[1].Cleaned)
	require.NotNil(t, insights[1].Amount)
	assert.True(t, insights[1].Amount.IsZero())
	assert.Nil(t, insights[1].Currency)

	assert.Equal(t, "300", insights[2].Cleaned)
	assert.Nil(t, insights[2].Currency, "yen is cleaned but not detected")

	assert.Nil(t, insights[3].Amount)
	assert.Nil(t, insights[3].Currency)
}

func TestDetectionService_SuggestCurrencyColumn(t *testing.T) {
	svc := services.NewDetectionService(10)

	column, ok := svc.SuggestCurrencyColumn(context.Background(), []string{"id", "Currency Code", "amount"})
	assert.True(t, ok)
	assert.Equal(t, "Currency Code", column)

	_, ok = svc.SuggestCurrencyColumn(context.Background(), []string{"id", "amt"})
	assert.False(t, ok)
}
