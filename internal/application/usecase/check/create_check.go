// Package check contains check-related use cases, including the overdue
// and upcoming due-date queries the dashboard alerts rely on.
package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreateCheckInput represents the input for check creation.
type CreateCheckInput struct {
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Number      string
	Bank        string
	Amount      int64 // minor units
	Currency    money.Code
	IssueDate   time.Time
	DueDate     time.Time
	Description string
}

// CreateCheckOutput represents the output of check creation.
type CreateCheckOutput struct {
	Check *CheckOutput
}

// CreateCheckUseCase handles check creation logic.
type CreateCheckUseCase struct {
	checkRepo adapter.CheckRepository
}

// NewCreateCheckUseCase creates a new CreateCheckUseCase instance.
func NewCreateCheckUseCase(checkRepo adapter.CheckRepository) *CreateCheckUseCase {
	return &CreateCheckUseCase{
		checkRepo: checkRepo,
	}
}

// Execute performs the check creation. New checks always start pending.
func (uc *CreateCheckUseCase) Execute(ctx context.Context, input CreateCheckInput) (*CreateCheckOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewMoneyError(
			domainerror.ErrCodeInvalidAmount,
			"check amount must be a positive amount",
			domainerror.ErrInvalidAmount,
		)
	}

	if !money.IsSupportedCurrency(input.Currency) {
		return nil, domainerror.NewMoneyError(
			domainerror.ErrCodeUnsupportedCurrency,
			fmt.Sprintf("currency %q is not supported", input.Currency),
			domainerror.ErrUnsupportedCurrency,
		)
	}

	if input.DueDate.Before(input.IssueDate) {
		return nil, domainerror.NewCheckError(
			domainerror.ErrCodeInvalidCheckDates,
			"due date must not be before issue date",
			domainerror.ErrInvalidCheckDates,
		)
	}

	check := entity.NewCheck(
		input.CompanyID,
		input.UserID,
		input.Number,
		input.Bank,
		input.Amount,
		input.Currency,
		input.IssueDate,
		input.DueDate,
		input.Description,
	)

	if err := uc.checkRepo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to create check: %w", err)
	}

	slog.Debug("Check created",
		"checkID", check.ID,
		"companyID", check.CompanyID,
		"dueDate", check.DueDate.Format("2006-01-02"),
	)

	return &CreateCheckOutput{Check: toCheckOutput(check)}, nil
}
