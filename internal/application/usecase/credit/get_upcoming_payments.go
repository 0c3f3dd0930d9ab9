package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
)

// upcomingPaymentWindowDays is how far ahead a credit's end date may lie
// for it to count as an upcoming payment.
const upcomingPaymentWindowDays = 30

// GetUpcomingPaymentsInput represents the input for the upcoming payments query.
type GetUpcomingPaymentsInput struct {
	CompanyID uuid.UUID
	Now       time.Time
}

// UpcomingPayment is a credit whose end date falls within the alert window,
// together with the approximate number of payments still owed.
type UpcomingPayment struct {
	Credit            *CreditOutput
	RemainingPayments int
}

// GetUpcomingPaymentsOutput represents the output of the upcoming payments query.
type GetUpcomingPaymentsOutput struct {
	Payments []*UpcomingPayment
}

// GetUpcomingPaymentsUseCase finds active credits ending within the next
// thirty days.
type GetUpcomingPaymentsUseCase struct {
	creditRepo adapter.CreditRepository
}

// NewGetUpcomingPaymentsUseCase creates a new GetUpcomingPaymentsUseCase instance.
func NewGetUpcomingPaymentsUseCase(creditRepo adapter.CreditRepository) *GetUpcomingPaymentsUseCase {
	return &GetUpcomingPaymentsUseCase{
		creditRepo: creditRepo,
	}
}

// Execute returns active credits whose end date is within thirty days of
// input.Now, ordered by end date ascending. Credits that already ended are
// reported with zero remaining payments.
func (uc *GetUpcomingPaymentsUseCase) Execute(ctx context.Context, input GetUpcomingPaymentsInput) (*GetUpcomingPaymentsOutput, error) {
	until := input.Now.AddDate(0, 0, upcomingPaymentWindowDays)

	credits, err := uc.creditRepo.FindActiveEndingBy(ctx, input.CompanyID, until)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming payments: %w", err)
	}

	payments := make([]*UpcomingPayment, 0, len(credits))
	for _, c := range credits {
		payments = append(payments, &UpcomingPayment{
			Credit:            toCreditOutput(c),
			RemainingPayments: RemainingPayments(input.Now, c.EndDate),
		})
	}

	return &GetUpcomingPaymentsOutput{Payments: payments}, nil
}
