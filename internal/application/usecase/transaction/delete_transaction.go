package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	CompanyID     uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute soft-deletes a transaction. Deleted transactions stop appearing
// in listings and aggregations but keep their row for audit purposes.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction: %w", err)
	}
	if tx == nil || tx.CompanyID != input.CompanyID || tx.DeletedAt != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, tx.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.Debug("Transaction deleted", "transactionID", tx.ID, "companyID", tx.CompanyID)
	return nil
}
