// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database. Settled
// rows are retained, never deleted.
type InvestmentModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                string          `gorm:"type:varchar(255);not null;index"`
	Type                string          `gorm:"type:varchar(16);not null;index"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	CostPrice           decimal.Decimal `gorm:"type:decimal(15,2)"`
	CurrentPrice        decimal.Decimal `gorm:"type:decimal(15,4)"`
	Currency            string          `gorm:"type:varchar(8);not null"`
	Date                time.Time       `gorm:"type:date;not null"`
	MaturityDate        *time.Time      `gorm:"type:date"`
	InterestRate        decimal.Decimal `gorm:"type:decimal(8,4)"`
	InterestFrequency   string          `gorm:"type:varchar(16)"`
	HandlingFee         decimal.Decimal `gorm:"type:decimal(15,2)"`
	Notes               string          `gorm:"type:text"`
	SourceAccountID     *uuid.UUID      `gorm:"type:uuid"`
	LinkedTransactionID *uuid.UUID      `gorm:"type:uuid"`
	Status              string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:                  m.ID,
		Name:                m.Name,
		Type:                entity.InvestmentType(m.Type),
		Amount:              m.Amount,
		CostPrice:           m.CostPrice,
		CurrentPrice:        m.CurrentPrice,
		Currency:            m.Currency,
		Date:                m.Date,
		MaturityDate:        m.MaturityDate,
		InterestRate:        m.InterestRate,
		InterestFrequency:   m.InterestFrequency,
		HandlingFee:         m.HandlingFee,
		Notes:               m.Notes,
		SourceAccountID:     m.SourceAccountID,
		LinkedTransactionID: m.LinkedTransactionID,
		Status:              entity.InvestmentStatus(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:                  investment.ID,
		Name:                investment.Name,
		Type:                string(investment.Type),
		Amount:              investment.Amount,
		CostPrice:           investment.CostPrice,
		CurrentPrice:        investment.CurrentPrice,
		Currency:            investment.Currency,
		Date:                investment.Date,
		MaturityDate:        investment.MaturityDate,
		InterestRate:        investment.InterestRate,
		InterestFrequency:   investment.InterestFrequency,
		HandlingFee:         investment.HandlingFee,
		Notes:               investment.Notes,
		SourceAccountID:     investment.SourceAccountID,
		LinkedTransactionID: investment.LinkedTransactionID,
		Status:              string(investment.Status),
		CreatedAt:           investment.CreatedAt,
		UpdatedAt:           investment.UpdatedAt,
	}
}
