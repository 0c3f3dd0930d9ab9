// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// SupplierModel represents the suppliers table in the database.
type SupplierModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Address     string    `gorm:"type:varchar(500)"`
	RUT         string    `gorm:"column:rut;type:varchar(20)"`
	ContactName string    `gorm:"type:varchar(255)"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the SupplierModel.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToEntity converts a SupplierModel to a domain Supplier entity.
func (m *SupplierModel) ToEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		RUT:         m.RUT,
		ContactName: m.ContactName,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SupplierFromEntity creates a SupplierModel from a domain Supplier entity.
func SupplierFromEntity(supplier *entity.Supplier) *SupplierModel {
	return &SupplierModel{
		ID:          supplier.ID,
		CompanyID:   supplier.CompanyID,
		UserID:      supplier.UserID,
		Name:        supplier.Name,
		Email:       supplier.Email,
		Phone:       supplier.Phone,
		Address:     supplier.Address,
		RUT:         supplier.RUT,
		ContactName: supplier.ContactName,
		Notes:       supplier.Notes,
		CreatedAt:   supplier.CreatedAt,
		UpdatedAt:   supplier.UpdatedAt,
	}
}
