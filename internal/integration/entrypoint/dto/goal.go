// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     *string         `json:"deadline,omitempty"`
	Currency     string          `json:"currency" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     *string         `json:"deadline,omitempty"`
	Currency     string          `json:"currency" binding:"required"`
}

// AdjustGoalRequest represents the request body for a progress adjustment,
// optionally synchronized with a ledger movement.
type AdjustGoalRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction" binding:"required,oneof=add subtract"`
	Date          string          `json:"date" binding:"required"`
	Sync          bool            `json:"sync"`
	FromAccountID *string         `json:"from_account_id,omitempty" binding:"omitempty,uuid"`
	ToAccountID   *string         `json:"to_account_id,omitempty" binding:"omitempty,uuid"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *string         `json:"deadline,omitempty"`
	Currency      string          `json:"currency"`
	Achieved      bool            `json:"achieved"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Currency:      g.Currency,
		Achieved:      g.Achieved(),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.Deadline != nil {
		deadline := g.Deadline.Format(DateLayout)
		response.Deadline = &deadline
	}
	return response
}

// ToGoalListResponse converts a list of goals to a GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}
