package services

import (
	"context"
	"io"

	"github.com/SscSPs/currency_toolkit/internal/core/detection"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountInsight describes one parsed amount string.
type AmountInsight struct {
	Input    string
	Cleaned  string
	Amount   *decimal.Decimal
	Currency *domain.CurrencyCode
}

// TableDetection is the verdict for an uploaded table.
type TableDetection struct {
	detection.Detection
	Headers       []string
	CurrencyField string
	RowsScanned   int
}

// DetectionSvc defines the currency inference operations exposed over HTTP and the CLI.
type DetectionSvc interface {
	// DetectDataset infers one currency for in-memory rows.
	DetectDataset(ctx context.Context, rows []domain.DatasetRow, amountField, currencyField string) detection.Detection

	// DetectCSV reads a CSV table with a header line and infers one currency for it.
	// When currencyField is empty the column is suggested from the headers.
	DetectCSV(ctx context.Context, r io.Reader, amountField, currencyField string) (*TableDetection, error)

	// SuggestCurrencyColumn picks the header most likely to hold currency labels.
	SuggestCurrencyColumn(ctx context.Context, headers []string) (string, bool)

	// InspectAmounts cleans, parses and detects the currency of each amount string.
	InspectAmounts(ctx context.Context, amounts []string) []AmountInsight
}
