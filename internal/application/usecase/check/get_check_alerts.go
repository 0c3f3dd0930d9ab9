package check

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
)

// DefaultUpcomingWindowDays is how far ahead a pending check's due date may
// lie for it to count as upcoming, when the caller does not override it.
const DefaultUpcomingWindowDays = 7

// GetCheckAlertsInput represents the input for the check alert queries.
type GetCheckAlertsInput struct {
	CompanyID  uuid.UUID
	Now        time.Time
	WindowDays int // 0 means DefaultUpcomingWindowDays
}

// GetCheckAlertsOutput represents the output of the check alert queries.
// Overdue holds pending checks whose due date already passed; Upcoming
// holds pending checks due within the next seven days. A check appears in
// at most one of the two lists.
type GetCheckAlertsOutput struct {
	Overdue  []*CheckOutput
	Upcoming []*CheckOutput
}

// GetCheckAlertsUseCase finds pending checks that need attention.
type GetCheckAlertsUseCase struct {
	checkRepo adapter.CheckRepository
}

// NewGetCheckAlertsUseCase creates a new GetCheckAlertsUseCase instance.
func NewGetCheckAlertsUseCase(checkRepo adapter.CheckRepository) *GetCheckAlertsUseCase {
	return &GetCheckAlertsUseCase{
		checkRepo: checkRepo,
	}
}

// Execute returns overdue and upcoming pending checks relative to
// input.Now, each list ordered by due date ascending. A check due exactly
// at input.Now is upcoming, not overdue.
func (uc *GetCheckAlertsUseCase) Execute(ctx context.Context, input GetCheckAlertsInput) (*GetCheckAlertsOutput, error) {
	overdue, err := uc.checkRepo.FindOverdue(ctx, input.CompanyID, input.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue checks: %w", err)
	}

	windowDays := input.WindowDays
	if windowDays == 0 {
		windowDays = DefaultUpcomingWindowDays
	}
	until := input.Now.AddDate(0, 0, windowDays)
	upcoming, err := uc.checkRepo.FindUpcoming(ctx, input.CompanyID, input.Now, until)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming checks: %w", err)
	}

	return &GetCheckAlertsOutput{
		Overdue:  toCheckOutputs(overdue),
		Upcoming: toCheckOutputs(upcoming),
	}, nil
}
