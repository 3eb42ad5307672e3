package domain

import "github.com/shopspring/decimal"

// Rate is a conversion multiplier; amount(to) = amount(from) * Rate.
type Rate = decimal.Decimal

// DatasetRow is one record of a user-supplied table, keyed by column name.
type DatasetRow map[string]string

// Get returns the value stored under column and whether the column is present.
func (r DatasetRow) Get(column string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r[column]
	return v, ok
}
