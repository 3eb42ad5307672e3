package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/detection"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
)

const (
	utf8BOM = "\ufeff"
	// initialRowCapacity keeps a large row cap from allocating up front.
	initialRowCapacity = 256
)

// detectionService implements portssvc.DetectionSvc on top of the detection package.
type detectionService struct {
	BaseService
	maxRows int
}

// NewDetectionService creates a detection service that reads at most maxRows data rows per table.
func NewDetectionService(maxRows int) portssvc.DetectionSvc {
	if maxRows <= 0 {
		maxRows = 1000
	}
	return &detectionService{maxRows: maxRows}
}

func (s *detectionService) DetectDataset(ctx context.Context, rows []domain.DatasetRow, amountField, currencyField string) detection.Detection {
	d := detection.DetectDataset(rows, amountField, currencyField)
	s.LogDebug(ctx, "Dataset currency detected",
		slog.Int("rows", len(rows)),
		slog.String("currency", string(d.Currency)),
		slog.String("method", string(d.Method)))
	return d
}

func (s *detectionService) DetectCSV(ctx context.Context, r io.Reader, amountField, currencyField string) (*portssvc.TableDetection, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewValidationError("csv has no header line")
		}
		return nil, apperrors.NewValidationError(fmt.Sprintf("cannot read csv header: %v", err))
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
	}

	if !slices.Contains(headers, amountField) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("amount column %q not found in csv header", amountField))
	}
	if currencyField != "" && !slices.Contains(headers, currencyField) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("currency column %q not found in csv header", currencyField))
	}
	if currencyField == "" {
		if suggested, ok := detection.SuggestCurrencyMapping(headers); ok && suggested != amountField {
			currencyField = suggested
			s.LogDebug(ctx, "Using suggested currency column", slog.String("column", suggested))
		}
	}

	rows := make([]domain.DatasetRow, 0, min(s.maxRows, initialRowCapacity))
	for len(rows) < s.maxRows {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("malformed csv at data row %d: %v", len(rows)+1, err))
		}
		row := make(domain.DatasetRow, len(headers))
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			row[headers[i]] = value
		}
		rows = append(rows, row)
	}

	d := s.DetectDataset(ctx, rows, amountField, currencyField)
	s.LogInfo(ctx, "CSV currency detection finished",
		slog.Int("rows_scanned", len(rows)),
		slog.String("currency_field", currencyField),
		slog.Bool("found", d.Found))

	return &portssvc.TableDetection{
		Detection:     d,
		Headers:       headers,
		CurrencyField: currencyField,
		RowsScanned:   len(rows),
	}, nil
}

func (s *detectionService) SuggestCurrencyColumn(ctx context.Context, headers []string) (string, bool) {
	return detection.SuggestCurrencyMapping(headers)
}

func (s *detectionService) InspectAmounts(ctx context.Context, amounts []string) []portssvc.AmountInsight {
	insights := make([]portssvc.AmountInsight, len(amounts))
	for i, raw := range amounts {
		insight := portssvc.AmountInsight{
			Input:   raw,
			Cleaned: detection.CleanAmountString(raw),
		}
		if amount, err := detection.ParseAmount(raw); err == nil {
			insight.Amount = &amount
		}
		if code, ok := detection.DetectCurrencyFromAmount(raw); ok {
			insight.Currency = &code
		}
		insights[i] = insight
	}
	return insights
}
