// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// SnapshotDTO is the wire form of a full ledger dump. Import consumes the
// exact same shape export produces, IDs and balances included.
type SnapshotDTO struct {
	Accounts     []AccountRecord     `json:"accounts"`
	Transactions []TransactionRecord `json:"transactions"`
	Budgets      []BudgetRecord      `json:"budgets"`
	Goals        []GoalRecord        `json:"goals"`
	Investments  []InvestmentRecord  `json:"investments"`
	Categories   []string            `json:"categories"`
}

// AccountRecord is the wire form of an account inside a snapshot.
type AccountRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	SortIndex      int             `json:"sort_index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionRecord is the wire form of a transaction inside a snapshot.
type TransactionRecord struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Kind            string          `json:"kind"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	AccountID       string          `json:"account_id"`
	TargetAccountID *string         `json:"target_account_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BudgetRecord is the wire form of a budget inside a snapshot.
type BudgetRecord struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GoalRecord is the wire form of a goal inside a snapshot.
type GoalRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvestmentRecord is the wire form of an investment inside a snapshot.
type InvestmentRecord struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Type                string          `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	CostPrice           decimal.Decimal `json:"cost_price"`
	CurrentPrice        decimal.Decimal `json:"current_price"`
	Currency            string          `json:"currency"`
	Date                time.Time       `json:"date"`
	MaturityDate        *time.Time      `json:"maturity_date,omitempty"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	InterestFrequency   string          `json:"interest_frequency,omitempty"`
	HandlingFee         decimal.Decimal `json:"handling_fee"`
	Notes               string          `json:"notes,omitempty"`
	SourceAccountID     *string         `json:"source_account_id,omitempty"`
	LinkedTransactionID *string         `json:"linked_transaction_id,omitempty"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToSnapshotDTO converts a domain Snapshot to its wire form.
func ToSnapshotDTO(s *entity.Snapshot) SnapshotDTO {
	snapshot := SnapshotDTO{
		Accounts:     make([]AccountRecord, len(s.Accounts)),
		Transactions: make([]TransactionRecord, len(s.Transactions)),
		Budgets:      make([]BudgetRecord, len(s.Budgets)),
		Goals:        make([]GoalRecord, len(s.Goals)),
		Investments:  make([]InvestmentRecord, len(s.Investments)),
		Categories:   s.Categories,
	}

	for i, a := range s.Accounts {
		snapshot.Accounts[i] = AccountRecord{
			ID:             a.ID.String(),
			Name:           a.Name,
			InitialBalance: a.InitialBalance,
			CurrentBalance: a.CurrentBalance,
			Currency:       a.Currency,
			SortIndex:      a.SortIndex,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		}
	}

	for i, t := range s.Transactions {
		record := TransactionRecord{
			ID:          t.ID.String(),
			Amount:      t.Amount,
			Kind:        string(t.Kind),
			Date:        t.Date,
			Description: t.Description,
			AccountID:   t.AccountID.String(),
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
		if t.TargetAccountID != nil {
			target := t.TargetAccountID.String()
			record.TargetAccountID = &target
		}
		snapshot.Transactions[i] = record
	}

	for i, b := range s.Budgets {
		snapshot.Budgets[i] = BudgetRecord{
			ID:        b.ID.String(),
			Category:  b.Category,
			Amount:    b.Amount,
			Period:    string(b.Period),
			Currency:  b.Currency,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		}
	}

	for i, g := range s.Goals {
		snapshot.Goals[i] = GoalRecord{
			ID:            g.ID.String(),
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline,
			Currency:      g.Currency,
			CreatedAt:     g.CreatedAt,
			UpdatedAt:     g.UpdatedAt,
		}
	}

	for i, inv := range s.Investments {
		record := InvestmentRecord{
			ID:                inv.ID.String(),
			Name:              inv.Name,
			Type:              string(inv.Type),
			Amount:            inv.Amount,
			CostPrice:         inv.CostPrice,
			CurrentPrice:      inv.CurrentPrice,
			Currency:          inv.Currency,
			Date:              inv.Date,
			MaturityDate:      inv.MaturityDate,
			InterestRate:      inv.InterestRate,
			InterestFrequency: inv.InterestFrequency,
			HandlingFee:       inv.HandlingFee,
			Notes:             inv.Notes,
			Status:            string(inv.Status),
			CreatedAt:         inv.CreatedAt,
			UpdatedAt:         inv.UpdatedAt,
		}
		if inv.SourceAccountID != nil {
			source := inv.SourceAccountID.String()
			record.SourceAccountID = &source
		}
		if inv.LinkedTransactionID != nil {
			linked := inv.LinkedTransactionID.String()
			record.LinkedTransactionID = &linked
		}
		snapshot.Investments[i] = record
	}

	return snapshot
}

// ToSnapshot converts the wire form back to a domain Snapshot.
func (d *SnapshotDTO) ToSnapshot() (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{
		Accounts:     make([]*entity.Account, len(d.Accounts)),
		Transactions: make([]*entity.Transaction, len(d.Transactions)),
		Budgets:      make([]*entity.Budget, len(d.Budgets)),
		Goals:        make([]*entity.Goal, len(d.Goals)),
		Investments:  make([]*entity.Investment, len(d.Investments)),
		Categories:   d.Categories,
	}

	for i, a := range d.Accounts {
		id, err := uuid.Parse(a.ID)
		if err != nil {
			return nil, err
		}
		snapshot.Accounts[i] = &entity.Account{
			ID:             id,
			Name:           a.Name,
			InitialBalance: a.InitialBalance,
			CurrentBalance: a.CurrentBalance,
			Currency:       a.Currency,
			SortIndex:      a.SortIndex,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		}
	}

	for i, t := range d.Transactions {
		id, err := uuid.Parse(t.ID)
		if err != nil {
			return nil, err
		}
		accountID, err := uuid.Parse(t.AccountID)
		if err != nil {
			return nil, err
		}
		transaction := &entity.Transaction{
			ID:          id,
			Amount:      t.Amount,
			Kind:        entity.TransactionKind(t.Kind),
			Date:        t.Date,
			Description: t.Description,
			AccountID:   accountID,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
		if t.TargetAccountID != nil {
			target, err := uuid.Parse(*t.TargetAccountID)
			if err != nil {
				return nil, err
			}
			transaction.TargetAccountID = &target
		}
		snapshot.Transactions[i] = transaction
	}

	for i, b := range d.Budgets {
		id, err := uuid.Parse(b.ID)
		if err != nil {
			return nil, err
		}
		snapshot.Budgets[i] = &entity.Budget{
			ID:        id,
			Category:  b.Category,
			Amount:    b.Amount,
			Period:    entity.BudgetPeriod(b.Period),
			Currency:  b.Currency,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		}
	}

	for i, g := range d.Goals {
		id, err := uuid.Parse(g.ID)
		if err != nil {
			return nil, err
		}
		snapshot.Goals[i] = &entity.Goal{
			ID:            id,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline,
			Currency:      g.Currency,
			CreatedAt:     g.CreatedAt,
			UpdatedAt:     g.UpdatedAt,
		}
	}

	for i, inv := range d.Investments {
		id, err := uuid.Parse(inv.ID)
		if err != nil {
			return nil, err
		}
		investment := &entity.Investment{
			ID:                id,
			Name:              inv.Name,
			Type:              entity.InvestmentType(inv.Type),
			Amount:            inv.Amount,
			CostPrice:         inv.CostPrice,
			CurrentPrice:      inv.CurrentPrice,
			Currency:          inv.Currency,
			Date:              inv.Date,
			MaturityDate:      inv.MaturityDate,
			InterestRate:      inv.InterestRate,
			InterestFrequency: inv.InterestFrequency,
			HandlingFee:       inv.HandlingFee,
			Notes:             inv.Notes,
			Status:            entity.InvestmentStatus(inv.Status),
			CreatedAt:         inv.CreatedAt,
			UpdatedAt:         inv.UpdatedAt,
		}
		if inv.SourceAccountID != nil {
			source, err := uuid.Parse(*inv.SourceAccountID)
			if err != nil {
				return nil, err
			}
			investment.SourceAccountID = &source
		}
		if inv.LinkedTransactionID != nil {
			linked, err := uuid.Parse(*inv.LinkedTransactionID)
			if err != nil {
				return nil, err
			}
			investment.LinkedTransactionID = &linked
		}
		snapshot.Investments[i] = investment
	}

	return snapshot, nil
}
