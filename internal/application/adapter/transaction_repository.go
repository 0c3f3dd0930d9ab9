// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	CompanyID uuid.UUID
	Type      *entity.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive description match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first,
	// with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByCompanyAndDateRange retrieves all transactions of a company whose
	// date lies in [start, end), ordered by date ascending. Used by the
	// dashboard aggregations.
	FindByCompanyAndDateRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// FindRecent retrieves the most recent transactions of a company.
	FindRecent(ctx context.Context, companyID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// Delete soft-deletes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
