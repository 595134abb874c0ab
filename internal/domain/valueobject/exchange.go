// Package valueobject defines immutable domain value types.
package valueobject

import "github.com/shopspring/decimal"

// RateTable holds exchange rates against a single pivot currency. Each rate
// means "1 unit of the pivot currency buys this many units of the keyed
// currency", so the pivot's own rate is always 1.
type RateTable struct {
	pivot string
	rates map[string]decimal.Decimal
}

// NewRateTable builds a RateTable for the given pivot currency. The pivot's
// rate is forced to 1 regardless of the supplied map.
func NewRateTable(pivot string, rates map[string]decimal.Decimal) *RateTable {
	table := make(map[string]decimal.Decimal, len(rates)+1)
	for code, rate := range rates {
		table[code] = rate
	}
	table[pivot] = decimal.NewFromInt(1)

	return &RateTable{
		pivot: pivot,
		rates: table,
	}
}

// Pivot returns the pivot currency code.
func (t *RateTable) Pivot() string {
	return t.pivot
}

// Rate returns the rate for the given currency and whether it is known.
func (t *RateTable) Rate(currency string) (decimal.Decimal, bool) {
	rate, ok := t.rates[currency]
	return rate, ok
}

// Convert converts an amount between two currencies through the pivot:
// pivotAmount = amount / rate[from], result = pivotAmount * rate[to].
// This single direction is canonical for every call site. When either
// currency is missing from the table, or a rate is zero, the amount is
// returned unchanged.
func (t *RateTable) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}

	fromRate, okFrom := t.Rate(from)
	toRate, okTo := t.Rate(to)
	if !okFrom || !okTo || fromRate.IsZero() {
		return amount
	}

	inPivot := amount.Div(fromRate)
	return inPivot.Mul(toRate)
}
