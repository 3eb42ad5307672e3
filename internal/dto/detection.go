package dto

import (
	"github.com/SscSPs/currency_toolkit/internal/core/detection"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DetectCurrencyRequest carries an already parsed table.
type DetectCurrencyRequest struct {
	Rows          []map[string]string `json:"rows"`
	AmountField   string              `json:"amountField" binding:"required"`
	CurrencyField string              `json:"currencyField"`
}

// DetectCSVForm holds the non-file fields of the multipart CSV upload.
type DetectCSVForm struct {
	AmountField   string `form:"amountField" binding:"required"`
	CurrencyField string `form:"currencyField"`
}

// DetectCurrencyResponse reports a dataset verdict. Currency is null when nothing was found.
type DetectCurrencyResponse struct {
	Currency *string `json:"currency"`
	Found    bool    `json:"found"`
	Method   string  `json:"method"`
}

// DetectCSVResponse adds the parsed table shape to the verdict.
type DetectCSVResponse struct {
	DetectCurrencyResponse
	CurrencyField string   `json:"currencyField"`
	Headers       []string `json:"headers"`
	RowsScanned   int      `json:"rowsScanned"`
}

// SuggestMappingRequest lists the column headers of a table.
type SuggestMappingRequest struct {
	Headers []string `json:"headers" binding:"required"`
}

// SuggestMappingResponse names the header most likely to hold currency labels.
type SuggestMappingResponse struct {
	Column *string `json:"column"`
	Found  bool    `json:"found"`
}

// InspectAmountsRequest lists raw amount strings.
type InspectAmountsRequest struct {
	Amounts []string `json:"amounts" binding:"required,max=1000"`
}

// AmountInsightResponse describes one inspected amount.
type AmountInsightResponse struct {
	Input    string           `json:"input"`
	Cleaned  string           `json:"cleaned"`
	Amount   *decimal.Decimal `json:"amount"`
	Currency *string          `json:"currency"`
}

// ToDatasetRows converts request rows to domain rows.
func ToDatasetRows(rows []map[string]string) []domain.DatasetRow {
	out := make([]domain.DatasetRow, len(rows))
	for i, r := range rows {
		out[i] = domain.DatasetRow(r)
	}
	return out
}

// ToDetectCurrencyResponse converts a detection.Detection to its response DTO
func ToDetectCurrencyResponse(d detection.Detection) DetectCurrencyResponse {
	resp := DetectCurrencyResponse{Found: d.Found, Method: string(d.Method)}
	if d.Found {
		code := d.Currency.String()
		resp.Currency = &code
	}
	return resp
}

// ToDetectCSVResponse converts a table detection to its response DTO
func ToDetectCSVResponse(t *portssvc.TableDetection) DetectCSVResponse {
	return DetectCSVResponse{
		DetectCurrencyResponse: ToDetectCurrencyResponse(t.Detection),
		CurrencyField:          t.CurrencyField,
		Headers:                t.Headers,
		RowsScanned:            t.RowsScanned,
	}
}

// ToSuggestMappingResponse wraps a SuggestCurrencyMapping result.
func ToSuggestMappingResponse(column string, found bool) SuggestMappingResponse {
	if !found {
		return SuggestMappingResponse{}
	}
	return SuggestMappingResponse{Column: &column, Found: true}
}

// ToAmountInsightResponses converts service insights to response DTOs
func ToAmountInsightResponses(insights []portssvc.AmountInsight) []AmountInsightResponse {
	res := make([]AmountInsightResponse, len(insights))
	for i, in := range insights {
		res[i] = AmountInsightResponse{
			Input:   in.Input,
			Cleaned: in.Cleaned,
			Amount:  in.Amount,
		}
		if in.Currency != nil {
			code := in.Currency.String()
			res[i].Currency = &code
		}
	}
	return res
}
