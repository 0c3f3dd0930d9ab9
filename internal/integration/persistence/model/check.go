// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CheckModel represents the checks table in the database.
type CheckModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Number      string    `gorm:"type:varchar(50);not null"`
	Bank        string    `gorm:"type:varchar(100);not null"`
	Amount      int64     `gorm:"type:bigint;not null"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'CLP'"`
	IssueDate   time.Time `gorm:"type:date;not null"`
	DueDate     time.Time `gorm:"type:date;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Description string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CheckModel.
func (CheckModel) TableName() string {
	return "checks"
}

// ToEntity converts a CheckModel to a domain Check entity.
func (m *CheckModel) ToEntity() *entity.Check {
	return &entity.Check{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		Number:      m.Number,
		Bank:        m.Bank,
		Amount:      m.Amount,
		Currency:    money.Code(m.Currency),
		IssueDate:   m.IssueDate,
		DueDate:     m.DueDate,
		Status:      entity.CheckStatus(m.Status),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CheckFromEntity creates a CheckModel from a domain Check entity.
func CheckFromEntity(check *entity.Check) *CheckModel {
	return &CheckModel{
		ID:          check.ID,
		CompanyID:   check.CompanyID,
		UserID:      check.UserID,
		Number:      check.Number,
		Bank:        check.Bank,
		Amount:      check.Amount,
		Currency:    string(check.Currency),
		IssueDate:   check.IssueDate,
		DueDate:     check.DueDate,
		Status:      string(check.Status),
		Description: check.Description,
		CreatedAt:   check.CreatedAt,
		UpdatedAt:   check.UpdatedAt,
	}
}
