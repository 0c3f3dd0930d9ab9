// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// CheckFilter defines filter options for listing checks.
type CheckFilter struct {
	CompanyID uuid.UUID
	Status    *entity.CheckStatus
	StartDate *time.Time // due date lower bound (inclusive)
	EndDate   *time.Time // due date upper bound (inclusive)
}

// CheckRepository defines the interface for check persistence operations.
type CheckRepository interface {
	// Create creates a new check in the database.
	Create(ctx context.Context, check *entity.Check) error

	// FindByID retrieves a check by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Check, error)

	// FindByFilter retrieves checks matching the filter, ordered by due date ascending.
	FindByFilter(ctx context.Context, filter CheckFilter) ([]*entity.Check, error)

	// FindOverdue retrieves pending checks with a due date strictly before
	// asOf, ordered by due date ascending.
	FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*entity.Check, error)

	// FindUpcoming retrieves pending checks with asOf <= dueDate <= until,
	// ordered by due date ascending.
	FindUpcoming(ctx context.Context, companyID uuid.UUID, asOf, until time.Time) ([]*entity.Check, error)

	// UpdateStatus persists a check status change.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CheckStatus) error
}
