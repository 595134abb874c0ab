// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGoal_Achieved(t *testing.T) {
	goal := NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")

	if goal.Achieved() {
		t.Error("expected goal with zero progress to be unachieved")
	}

	goal.CurrentAmount = decimal.NewFromInt(999)
	if goal.Achieved() {
		t.Error("expected goal below target to be unachieved")
	}

	goal.CurrentAmount = decimal.NewFromInt(1000)
	if !goal.Achieved() {
		t.Error("expected goal at target to be achieved")
	}

	// Progress may exceed the target.
	goal.CurrentAmount = decimal.NewFromInt(1500)
	if !goal.Achieved() {
		t.Error("expected goal above target to be achieved")
	}
}
