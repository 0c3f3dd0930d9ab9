package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	CompanyID uuid.UUID
	Type      *entity.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      int
	Limit     int
}

// ListTransactionsOutput represents the output of listing transactions.
// Totals aggregate over the returned page.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Totals       entity.TransactionTotals
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions newest first with pagination.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		CompanyID: input.CompanyID,
		Type:      input.Type,
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Search:    input.Search,
	}, adapter.TransactionPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var totals entity.TransactionTotals
	for _, tx := range result.Transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal += tx.Amount
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal += tx.Amount
		}
	}
	totals.NetTotal = totals.IncomeTotal - totals.ExpenseTotal

	return &ListTransactionsOutput{
		Transactions: toTransactionOutputs(result.Transactions),
		Totals:       totals,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}, nil
}
