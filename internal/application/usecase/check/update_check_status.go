package check

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// UpdateCheckStatusInput represents the input for a check status change.
type UpdateCheckStatusInput struct {
	CompanyID uuid.UUID
	CheckID   uuid.UUID
	Status    entity.CheckStatus
}

// UpdateCheckStatusOutput represents the output of a check status change.
type UpdateCheckStatusOutput struct {
	Check *CheckOutput
}

// UpdateCheckStatusUseCase handles check status transitions.
type UpdateCheckStatusUseCase struct {
	checkRepo adapter.CheckRepository
}

// NewUpdateCheckStatusUseCase creates a new UpdateCheckStatusUseCase instance.
func NewUpdateCheckStatusUseCase(checkRepo adapter.CheckRepository) *UpdateCheckStatusUseCase {
	return &UpdateCheckStatusUseCase{
		checkRepo: checkRepo,
	}
}

// Execute moves a check to the target status. Paid, rejected, and cancelled
// are terminal states.
func (uc *UpdateCheckStatusUseCase) Execute(ctx context.Context, input UpdateCheckStatusInput) (*UpdateCheckStatusOutput, error) {
	if !entity.IsValidCheckStatus(input.Status) {
		return nil, domainerror.NewCheckError(
			domainerror.ErrCodeInvalidCheckStatus,
			fmt.Sprintf("invalid check status %q", input.Status),
			domainerror.ErrInvalidCheckStatus,
		)
	}

	check, err := uc.checkRepo.FindByID(ctx, input.CheckID)
	if err != nil {
		return nil, fmt.Errorf("failed to find check: %w", err)
	}
	if check == nil || check.CompanyID != input.CompanyID {
		return nil, domainerror.NewCheckError(
			domainerror.ErrCodeCheckNotFound,
			"check not found",
			domainerror.ErrCheckNotFound,
		)
	}

	if !check.CanTransitionTo(input.Status) {
		return nil, domainerror.NewCheckError(
			domainerror.ErrCodeCheckStatusFinal,
			fmt.Sprintf("check in status %q cannot move to %q", check.Status, input.Status),
			domainerror.ErrCheckStatusFinal,
		)
	}

	if err := uc.checkRepo.UpdateStatus(ctx, check.ID, input.Status); err != nil {
		return nil, fmt.Errorf("failed to update check status: %w", err)
	}
	check.Status = input.Status

	slog.Debug("Check status updated", "checkID", check.ID, "status", check.Status)

	return &UpdateCheckStatusOutput{Check: toCheckOutput(check)}, nil
}
