// Package valueobject defines immutable domain value types.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRateTable_Convert(t *testing.T) {
	table := NewRateTable("TWD", map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("0.032"),
		"JPY": decimal.RequireFromString("4.8"),
	})

	tests := []struct {
		name   string
		amount string
		from   string
		to     string
		want   string
	}{
		{
			name:   "same currency is identity",
			amount: "100",
			from:   "USD",
			to:     "USD",
			want:   "100",
		},
		{
			name:   "foreign to pivot divides by the rate",
			amount: "32",
			from:   "USD",
			to:     "TWD",
			want:   "1000",
		},
		{
			name:   "pivot to foreign multiplies by the rate",
			amount: "1000",
			from:   "TWD",
			to:     "USD",
			want:   "32",
		},
		{
			name:   "foreign to foreign goes through the pivot",
			amount: "32",
			from:   "USD",
			to:     "JPY",
			want:   "4800",
		},
		{
			name:   "unknown source currency returns the amount unchanged",
			amount: "50",
			from:   "EUR",
			to:     "TWD",
			want:   "50",
		},
		{
			name:   "unknown target currency returns the amount unchanged",
			amount: "50",
			from:   "TWD",
			to:     "EUR",
			want:   "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Convert(decimal.RequireFromString(tt.amount), tt.from, tt.to)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Convert(%s, %s, %s) = %s, want %s", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRateTable_PivotRateIsAlwaysOne(t *testing.T) {
	// A supplied pivot rate must be ignored.
	table := NewRateTable("TWD", map[string]decimal.Decimal{
		"TWD": decimal.RequireFromString("2"),
	})

	rate, ok := table.Rate("TWD")
	if !ok {
		t.Fatal("expected pivot rate to be present")
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected pivot rate 1, got %s", rate)
	}
}

func TestRateTable_ZeroRateReturnsAmountUnchanged(t *testing.T) {
	table := NewRateTable("TWD", map[string]decimal.Decimal{
		"XXX": decimal.Zero,
	})

	amount := decimal.RequireFromString("25")
	got := table.Convert(amount, "XXX", "TWD")
	if !got.Equal(amount) {
		t.Errorf("expected amount unchanged on zero rate, got %s", got)
	}
}
