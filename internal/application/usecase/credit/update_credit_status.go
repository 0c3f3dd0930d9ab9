package credit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// UpdateCreditStatusInput represents the input for a status change.
type UpdateCreditStatusInput struct {
	CompanyID uuid.UUID
	CreditID  uuid.UUID
	Status    entity.CreditStatus
}

// UpdateCreditStatusOutput represents the output of a status change.
type UpdateCreditStatusOutput struct {
	Credit *CreditOutput
}

// UpdateCreditStatusUseCase handles credit status transitions.
type UpdateCreditStatusUseCase struct {
	creditRepo adapter.CreditRepository
}

// NewUpdateCreditStatusUseCase creates a new UpdateCreditStatusUseCase instance.
func NewUpdateCreditStatusUseCase(creditRepo adapter.CreditRepository) *UpdateCreditStatusUseCase {
	return &UpdateCreditStatusUseCase{
		creditRepo: creditRepo,
	}
}

// Execute moves a credit to the target status. Paid and defaulted are
// terminal: once a credit leaves the active state no further change is
// accepted.
func (uc *UpdateCreditStatusUseCase) Execute(ctx context.Context, input UpdateCreditStatusInput) (*UpdateCreditStatusOutput, error) {
	if !entity.IsValidCreditStatus(input.Status) {
		return nil, domainerror.NewCreditError(
			domainerror.ErrCodeInvalidCreditStatus,
			fmt.Sprintf("invalid credit status %q", input.Status),
			domainerror.ErrInvalidCreditStatus,
		)
	}

	credit, err := uc.creditRepo.FindByID(ctx, input.CreditID)
	if err != nil {
		return nil, fmt.Errorf("failed to find credit: %w", err)
	}
	if credit == nil || credit.CompanyID != input.CompanyID {
		return nil, domainerror.NewCreditError(
			domainerror.ErrCodeCreditNotFound,
			"credit not found",
			domainerror.ErrCreditNotFound,
		)
	}

	if !credit.CanTransitionTo(input.Status) {
		return nil, domainerror.NewCreditError(
			domainerror.ErrCodeCreditStatusFinal,
			fmt.Sprintf("credit in status %q cannot move to %q", credit.Status, input.Status),
			domainerror.ErrCreditStatusFinal,
		)
	}

	if err := uc.creditRepo.UpdateStatus(ctx, credit.ID, input.Status); err != nil {
		return nil, fmt.Errorf("failed to update credit status: %w", err)
	}
	credit.Status = input.Status

	slog.Debug("Credit status updated", "creditID", credit.ID, "status", credit.Status)

	return &UpdateCreditStatusOutput{Credit: toCreditOutput(credit)}, nil
}
