// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestInvestment_PurchaseCost(t *testing.T) {
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		investment  func() *Investment
		want        string
	}{
		{
			name: "stock uses total cost price plus fee",
			investment: func() *Investment {
				inv := NewInvestment("2330", InvestmentTypeStock, decimal.NewFromInt(100), "TWD", date)
				inv.CostPrice = decimal.RequireFromString("5000")
				inv.HandlingFee = decimal.RequireFromString("20")
				return inv
			},
			want: "5020",
		},
		{
			name: "fixed deposit uses principal plus fee",
			investment: func() *Investment {
				inv := NewInvestment("1yr CD", InvestmentTypeFixedDeposit, decimal.RequireFromString("10000"), "TWD", date)
				inv.HandlingFee = decimal.RequireFromString("0")
				return inv
			},
			want: "10000",
		},
		{
			name: "savings uses principal plus fee",
			investment: func() *Investment {
				inv := NewInvestment("flex", InvestmentTypeSavings, decimal.RequireFromString("2500"), "TWD", date)
				inv.HandlingFee = decimal.RequireFromString("5")
				return inv
			},
			want: "2505",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.investment().PurchaseCost()
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("PurchaseCost() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInvestment_Settled(t *testing.T) {
	inv := NewInvestment("2330", InvestmentTypeStock, decimal.NewFromInt(10), "TWD", time.Now().UTC())

	if inv.Settled() {
		t.Error("expected new investment to be active")
	}

	inv.Status = InvestmentStatusSold
	if !inv.Settled() {
		t.Error("expected sold investment to be settled")
	}

	inv.Status = InvestmentStatusClosed
	if !inv.Settled() {
		t.Error("expected closed investment to be settled")
	}
}
