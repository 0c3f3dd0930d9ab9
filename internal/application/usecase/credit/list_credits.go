package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
)

// ListCreditsInput represents the input for listing credits.
type ListCreditsInput struct {
	CompanyID uuid.UUID
	Status    *entity.CreditStatus
	Limit     int
	Offset    int
}

// ListCreditsOutput represents the output of listing credits.
type ListCreditsOutput struct {
	Credits []*CreditOutput
}

// ListCreditsUseCase handles credit listing logic.
type ListCreditsUseCase struct {
	creditRepo adapter.CreditRepository
}

// NewListCreditsUseCase creates a new ListCreditsUseCase instance.
func NewListCreditsUseCase(creditRepo adapter.CreditRepository) *ListCreditsUseCase {
	return &ListCreditsUseCase{
		creditRepo: creditRepo,
	}
}

// Execute lists the company's credits ordered by start date descending.
func (uc *ListCreditsUseCase) Execute(ctx context.Context, input ListCreditsInput) (*ListCreditsOutput, error) {
	credits, err := uc.creditRepo.FindByFilter(ctx, adapter.CreditFilter{
		CompanyID: input.CompanyID,
		Status:    input.Status,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}

	outputs := make([]*CreditOutput, 0, len(credits))
	for _, c := range credits {
		outputs = append(outputs, toCreditOutput(c))
	}

	return &ListCreditsOutput{Credits: outputs}, nil
}
