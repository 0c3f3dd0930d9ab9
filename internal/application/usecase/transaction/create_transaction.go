// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// maxDescriptionLength bounds free-text descriptions.
const maxDescriptionLength = 500

// CreateTransactionInput represents the input for transaction creation.
// Amount is the raw user text ("100,50" or "100.50"); parsing to minor
// units happens here so the rest of the system only sees integers.
type CreateTransactionInput struct {
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      string
	Currency    money.Code
	Description string
	Category    string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type %q", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	amount, ok := money.ParseInput(input.Amount)
	if !ok || amount < 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount %q is not a valid non-negative number", input.Amount),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !money.IsSupportedCurrency(input.Currency) {
		return nil, domainerror.NewMoneyError(
			domainerror.ErrCodeUnsupportedCurrency,
			fmt.Sprintf("currency %q is not supported", input.Currency),
			domainerror.ErrUnsupportedCurrency,
		)
	}

	if utf8.RuneCountInString(input.Description) > maxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description exceeds %d characters", maxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	tx := entity.NewTransaction(
		input.CompanyID,
		input.UserID,
		input.Type,
		amount,
		input.Currency,
		input.Description,
		input.Category,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Debug("Transaction created",
		"transactionID", tx.ID,
		"companyID", tx.CompanyID,
		"type", tx.Type,
		"amount", tx.Amount,
	)

	return &CreateTransactionOutput{Transaction: toTransactionOutput(tx)}, nil
}
