// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreditModel represents the credits table in the database. MonthlyPayment
// is the amortization figure frozen at creation time.
type CreditModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Amount         int64     `gorm:"type:bigint;not null"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'CLP'"`
	InterestRate   float64   `gorm:"type:numeric(6,3);not null"`
	TermMonths     int       `gorm:"not null"`
	MonthlyPayment int64     `gorm:"type:bigint;not null"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active';index"`
	Description    string    `gorm:"type:varchar(500)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the CreditModel.
func (CreditModel) TableName() string {
	return "credits"
}

// ToEntity converts a CreditModel to a domain Credit entity.
func (m *CreditModel) ToEntity() *entity.Credit {
	return &entity.Credit{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		UserID:         m.UserID,
		Name:           m.Name,
		Amount:         m.Amount,
		Currency:       money.Code(m.Currency),
		InterestRate:   m.InterestRate,
		TermMonths:     m.TermMonths,
		MonthlyPayment: m.MonthlyPayment,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         entity.CreditStatus(m.Status),
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CreditFromEntity creates a CreditModel from a domain Credit entity.
func CreditFromEntity(credit *entity.Credit) *CreditModel {
	return &CreditModel{
		ID:             credit.ID,
		CompanyID:      credit.CompanyID,
		UserID:         credit.UserID,
		Name:           credit.Name,
		Amount:         credit.Amount,
		Currency:       string(credit.Currency),
		InterestRate:   credit.InterestRate,
		TermMonths:     credit.TermMonths,
		MonthlyPayment: credit.MonthlyPayment,
		StartDate:      credit.StartDate,
		EndDate:        credit.EndDate,
		Status:         string(credit.Status),
		Description:    credit.Description,
		CreatedAt:      credit.CreatedAt,
		UpdatedAt:      credit.UpdatedAt,
	}
}
