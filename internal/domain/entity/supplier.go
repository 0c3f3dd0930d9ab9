// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a vendor of a company.
type Supplier struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Name        string
	Email       string
	Phone       string
	Address     string
	RUT         string // Chilean tax ID
	ContactName string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSupplier creates a new Supplier entity.
func NewSupplier(
	companyID uuid.UUID,
	userID uuid.UUID,
	name, email, phone, address, rut, contactName, notes string,
) *Supplier {
	now := time.Now().UTC()

	return &Supplier{
		ID:          uuid.New(),
		CompanyID:   companyID,
		UserID:      userID,
		Name:        name,
		Email:       email,
		Phone:       phone,
		Address:     address,
		RUT:         rut,
		ContactName: contactName,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
