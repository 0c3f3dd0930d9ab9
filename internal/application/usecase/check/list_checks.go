package check

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
)

// ListChecksInput represents the input for listing checks.
type ListChecksInput struct {
	CompanyID uuid.UUID
	Status    *entity.CheckStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// ListChecksOutput represents the output of listing checks.
type ListChecksOutput struct {
	Checks []*CheckOutput
}

// ListChecksUseCase handles check listing logic.
type ListChecksUseCase struct {
	checkRepo adapter.CheckRepository
}

// NewListChecksUseCase creates a new ListChecksUseCase instance.
func NewListChecksUseCase(checkRepo adapter.CheckRepository) *ListChecksUseCase {
	return &ListChecksUseCase{
		checkRepo: checkRepo,
	}
}

// Execute lists the company's checks ordered by due date ascending.
func (uc *ListChecksUseCase) Execute(ctx context.Context, input ListChecksInput) (*ListChecksOutput, error) {
	checks, err := uc.checkRepo.FindByFilter(ctx, adapter.CheckFilter{
		CompanyID: input.CompanyID,
		Status:    input.Status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}

	return &ListChecksOutput{Checks: toCheckOutputs(checks)}, nil
}
