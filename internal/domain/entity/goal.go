// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal. CurrentAmount never goes below zero but may
// exceed TargetAmount, meaning the goal is achieved.
type Goal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity with zero progress.
func NewGoal(name string, targetAmount decimal.Decimal, deadline *time.Time, currency string) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Achieved reports whether the goal's progress has reached its target.
func (g *Goal) Achieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
