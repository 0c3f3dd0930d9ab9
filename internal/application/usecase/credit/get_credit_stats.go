package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
)

// GetCreditStatsInput represents the input for the credit stats query.
type GetCreditStatsInput struct {
	CompanyID uuid.UUID
	Now       time.Time
}

// GetCreditStatsOutput represents the output of the credit stats query.
type GetCreditStatsOutput struct {
	Stats           entity.CreditStats
	UpcomingInMonth int // active credits ending within thirty days of Now
}

// GetCreditStatsUseCase aggregates a company's active credits.
type GetCreditStatsUseCase struct {
	creditRepo adapter.CreditRepository
}

// NewGetCreditStatsUseCase creates a new GetCreditStatsUseCase instance.
func NewGetCreditStatsUseCase(creditRepo adapter.CreditRepository) *GetCreditStatsUseCase {
	return &GetCreditStatsUseCase{
		creditRepo: creditRepo,
	}
}

// Execute sums principal and monthly payments over active credits only;
// paid and defaulted credits never count.
func (uc *GetCreditStatsUseCase) Execute(ctx context.Context, input GetCreditStatsInput) (*GetCreditStatsOutput, error) {
	credits, err := uc.creditRepo.FindActiveByCompany(ctx, input.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active credits: %w", err)
	}

	until := input.Now.AddDate(0, 0, upcomingPaymentWindowDays)

	output := &GetCreditStatsOutput{}
	for _, c := range credits {
		output.Stats.TotalDebt += c.Amount
		output.Stats.MonthlyPayments += c.MonthlyPayment
		output.Stats.ActiveCredits++
		if !c.EndDate.After(until) && !c.EndDate.Before(input.Now) {
			output.UpcomingInMonth++
		}
	}

	return output, nil
}
