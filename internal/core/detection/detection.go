// Package detection infers a currency code from loosely formatted financial text:
// single amount strings, rows of a user-supplied table, and column headers.
//
// Every function here is pure. Nothing is cached or mutated, so callers may use the
// package from any number of goroutines.
package detection

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Method names the heuristic that produced a dataset verdict.
type Method string

const (
	MethodLabelColumn Method = "label_column"
	MethodSymbolScan  Method = "symbol_scan"
	MethodNone        Method = "none"
)

// Detection is the outcome of DetectDataset. Currency is only meaningful when Found is true.
type Detection struct {
	Currency domain.CurrencyCode
	Found    bool
	Method   Method
}

type symbolMapping struct {
	symbol string
	code   domain.CurrencyCode
}

// symbolOrder is the scan order for DetectCurrencyFromAmount. An input carrying two
// symbols resolves to whichever comes first here.
var symbolOrder = []symbolMapping{
	{symbol: "$", code: domain.USD},
	{symbol: "£", code: domain.GBP},
	{symbol: "€", code: domain.EUR},
	{symbol: "₪", code: domain.ILS},
}

// strippedSymbols is wider than symbolOrder: ¥ and ₹ are cleaned away but never detected.
var strippedSymbols = map[rune]bool{
	'$': true,
	'£': true,
	'€': true,
	'¥': true,
	'₹': true,
	'₪': true,
	',': true,
}

var codeAliases = map[string]domain.CurrencyCode{
	"USD": domain.USD,
	"EUR": domain.EUR,
	"GBP": domain.GBP,
	"ILS": domain.ILS,
	"NIS": domain.ILS,
}

// mappingCandidates is checked in order; earlier entries win.
var mappingCandidates = []string{
	"currency",
	"curr",
	"ccy",
	"currency_code",
	"cur",
	"money_type",
	"denomination",
}

// isBlank reports whether r is whitespace. A byte order mark counts as whitespace.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func trimBlank(s string) string {
	return strings.TrimFunc(s, isBlank)
}

// CleanAmountString strips currency symbols, thousands separators and whitespace.
// Blank input yields "0" so numeric parsing downstream always gets a value.
func CleanAmountString(value string) string {
	if trimBlank(value) == "" {
		return "0"
	}
	return strings.Map(func(r rune) rune {
		if strippedSymbols[r] || isBlank(r) {
			return -1
		}
		return r
	}, value)
}

// ParseAmount cleans value and parses it as a decimal.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := CleanAmountString(value)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot parse amount %q", apperrors.ErrValidation, value)
	}
	return amount, nil
}

// NormalizeCurrencyCode maps a code or a lone symbol to a canonical code.
// Matching is exact after trimming and upper-casing; "usd " matches, "usd1" does not.
func NormalizeCurrencyCode(value string) (domain.CurrencyCode, bool) {
	normalized := strings.ToUpper(trimBlank(value))
	if code, ok := codeAliases[normalized]; ok {
		return code, true
	}
	for _, m := range symbolOrder {
		if normalized == m.symbol {
			return m.code, true
		}
	}
	return "", false
}

// DetectCurrencyFromAmount returns the code of the first known symbol found in amount.
func DetectCurrencyFromAmount(amount string) (domain.CurrencyCode, bool) {
	for _, m := range symbolOrder {
		if strings.Contains(amount, m.symbol) {
			return m.code, true
		}
	}
	return "", false
}

// DetectCurrencyFromDataset infers one currency for a whole table. See DetectDataset.
func DetectCurrencyFromDataset(rows []domain.DatasetRow, amountField, currencyField string) (domain.CurrencyCode, bool) {
	d := DetectDataset(rows, amountField, currencyField)
	return d.Currency, d.Found
}

// DetectDataset infers one currency for rows.
//
// When currencyField is set and its values normalize to exactly one code, that code is
// returned without looking at amounts. Otherwise the amount column is scanned for
// symbols and the most frequent code wins; ties go to the code seen first.
func DetectDataset(rows []domain.DatasetRow, amountField, currencyField string) Detection {
	if len(rows) == 0 {
		return Detection{Method: MethodNone}
	}

	if currencyField != "" {
		if code, ok := singleLabel(rows, currencyField); ok {
			return Detection{Currency: code, Found: true, Method: MethodLabelColumn}
		}
	}

	if code, ok := mostFrequentSymbol(rows, amountField); ok {
		return Detection{Currency: code, Found: true, Method: MethodSymbolScan}
	}
	return Detection{Method: MethodNone}
}

func singleLabel(rows []domain.DatasetRow, currencyField string) (domain.CurrencyCode, bool) {
	seen := make(map[domain.CurrencyCode]struct{})
	var last domain.CurrencyCode
	for _, row := range rows {
		raw, ok := row.Get(currencyField)
		if !ok {
			continue
		}
		code, ok := NormalizeCurrencyCode(raw)
		if !ok {
			continue
		}
		seen[code] = struct{}{}
		last = code
	}
	if len(seen) != 1 {
		return "", false
	}
	return last, true
}

func mostFrequentSymbol(rows []domain.DatasetRow, amountField string) (domain.CurrencyCode, bool) {
	counts := make(map[domain.CurrencyCode]int)
	var order []domain.CurrencyCode
	for _, row := range rows {
		raw, ok := row.Get(amountField)
		if !ok {
			continue
		}
		code, ok := DetectCurrencyFromAmount(raw)
		if !ok {
			continue
		}
		if _, seen := counts[code]; !seen {
			order = append(order, code)
		}
		counts[code]++
	}
	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, code := range order[1:] {
		if counts[code] > counts[best] {
			best = code
		}
	}
	return best, true
}

// SuggestCurrencyMapping picks the header most likely to hold currency labels.
// A header matches a candidate when either string contains the other, case-insensitively,
// so "cur" and "currency_code_v2" both qualify. Blank headers never match, even though
// every candidate contains the empty string; an unnamed column is never a suggestion.
func SuggestCurrencyMapping(headers []string) (string, bool) {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}
	for _, candidate := range mappingCandidates {
		for i, h := range lowered {
			if trimBlank(h) == "" {
				continue
			}
			if strings.Contains(h, candidate) || strings.Contains(candidate, h) {
				return headers[i], true
			}
		}
	}
	return "", false
}
