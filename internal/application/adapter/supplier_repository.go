// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// SupplierFilter defines filter options for listing suppliers.
type SupplierFilter struct {
	CompanyID uuid.UUID
	Search    string // case-insensitive match on name or contact name
	Limit     int
	Offset    int
}

// SupplierUpdate defines the mutable fields of a supplier. Nil fields are
// left untouched.
type SupplierUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	RUT         *string
	ContactName *string
	Notes       *string
}

// SupplierRepository defines the interface for supplier persistence operations.
type SupplierRepository interface {
	// Create creates a new supplier in the database.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByFilter retrieves suppliers matching the filter, ordered by name ascending.
	FindByFilter(ctx context.Context, filter SupplierFilter) ([]*entity.Supplier, error)

	// Update applies the non-nil fields of the update to a supplier.
	Update(ctx context.Context, id uuid.UUID, update SupplierUpdate) (*entity.Supplier, error)

	// Delete removes a supplier.
	Delete(ctx context.Context, id uuid.UUID) error
}
