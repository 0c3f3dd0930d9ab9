// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// CompanyUpdate defines the mutable fields of a company. Nil fields are
// left untouched.
type CompanyUpdate struct {
	Name               *string
	Logo               *string
	Currency           *string
	Timezone           *string
	ReminderRecipients *[]string
}

// CompanyRepository defines the interface for company persistence operations.
type CompanyRepository interface {
	// Create creates a new company in the database.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindAll retrieves all companies, ordered by name.
	FindAll(ctx context.Context) ([]*entity.Company, error)

	// FindWithReminderRecipients retrieves companies that have at least one
	// reminder recipient configured.
	FindWithReminderRecipients(ctx context.Context) ([]*entity.Company, error)

	// Update applies the non-nil fields of the update to a company.
	Update(ctx context.Context, id uuid.UUID, update CompanyUpdate) (*entity.Company, error)

	// Delete removes a company.
	Delete(ctx context.Context, id uuid.UUID) error
}
