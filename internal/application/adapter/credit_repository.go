// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// CreditFilter defines filter options for listing credits.
type CreditFilter struct {
	CompanyID uuid.UUID
	Status    *entity.CreditStatus
	Limit     int
	Offset    int
}

// CreditRepository defines the interface for credit persistence operations.
type CreditRepository interface {
	// Create creates a new credit in the database.
	Create(ctx context.Context, credit *entity.Credit) error

	// FindByID retrieves a credit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Credit, error)

	// FindByFilter retrieves credits matching the filter, ordered by start
	// date descending.
	FindByFilter(ctx context.Context, filter CreditFilter) ([]*entity.Credit, error)

	// FindActiveEndingBy retrieves active credits with endDate <= until,
	// ordered by end date ascending. Used for upcoming payment alerts.
	FindActiveEndingBy(ctx context.Context, companyID uuid.UUID, until time.Time) ([]*entity.Credit, error)

	// FindActiveByCompany retrieves all active credits of a company.
	FindActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Credit, error)

	// UpdateStatus persists a credit status change.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CreditStatus) error
}
