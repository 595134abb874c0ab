// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind            string          `gorm:"type:varchar(10);not null;index"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Description     string          `gorm:"type:varchar(255);not null"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TargetAccountID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Account       *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
	TargetAccount *AccountModel `gorm:"foreignKey:TargetAccountID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		Amount:          m.Amount,
		Kind:            entity.TransactionKind(m.Kind),
		Date:            m.Date,
		Description:     m.Description,
		AccountID:       m.AccountID,
		TargetAccountID: m.TargetAccountID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		Amount:          transaction.Amount,
		Kind:            string(transaction.Kind),
		Date:            transaction.Date,
		Description:     transaction.Description,
		AccountID:       transaction.AccountID,
		TargetAccountID: transaction.TargetAccountID,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
