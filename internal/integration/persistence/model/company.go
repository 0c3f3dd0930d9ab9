// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CompanyModel represents the companies table in the database.
type CompanyModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null"`
	Logo               string         `gorm:"type:text"`
	Currency           string         `gorm:"type:varchar(3);not null;default:'CLP'"`
	Timezone           string         `gorm:"type:varchar(64);not null;default:'America/Santiago'"`
	ReminderRecipients pq.StringArray `gorm:"type:text[]"`
	CreatedAt          time.Time      `gorm:"not null"`
	UpdatedAt          time.Time      `gorm:"not null"`
}

// TableName returns the table name for the CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts a CompanyModel to a domain Company entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	return &entity.Company{
		ID:                 m.ID,
		Name:               m.Name,
		Logo:               m.Logo,
		Currency:           money.Code(m.Currency),
		Timezone:           m.Timezone,
		ReminderRecipients: []string(m.ReminderRecipients),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// CompanyFromEntity creates a CompanyModel from a domain Company entity.
func CompanyFromEntity(company *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:                 company.ID,
		Name:               company.Name,
		Logo:               company.Logo,
		Currency:           string(company.Currency),
		Timezone:           company.Timezone,
		ReminderRecipients: pq.StringArray(company.ReminderRecipients),
		CreatedAt:          company.CreatedAt,
		UpdatedAt:          company.UpdatedAt,
	}
}
