package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
)

// DefaultRecentLimit is how many recent transactions the dashboard shows.
const DefaultRecentLimit = 5

// GetRecentTransactionsInput represents the input for the recent transactions query.
type GetRecentTransactionsInput struct {
	CompanyID uuid.UUID
	Limit     int // 0 means DefaultRecentLimit
}

// GetRecentTransactionsOutput represents the output of the recent transactions query.
type GetRecentTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// GetRecentTransactionsUseCase returns the latest transactions of a company.
type GetRecentTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetRecentTransactionsUseCase creates a new GetRecentTransactionsUseCase instance.
func NewGetRecentTransactionsUseCase(transactionRepo adapter.TransactionRepository) *GetRecentTransactionsUseCase {
	return &GetRecentTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the most recent transactions, newest first.
func (uc *GetRecentTransactionsUseCase) Execute(ctx context.Context, input GetRecentTransactionsInput) (*GetRecentTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	transactions, err := uc.transactionRepo.FindRecent(ctx, input.CompanyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return &GetRecentTransactionsOutput{Transactions: toTransactionOutputs(transactions)}, nil
}
