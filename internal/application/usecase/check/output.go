package check

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CheckOutput is the use-case level view of a check.
type CheckOutput struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Number      string
	Bank        string
	Amount      int64
	Currency    money.Code
	IssueDate   time.Time
	DueDate     time.Time
	Status      entity.CheckStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toCheckOutput(check *entity.Check) *CheckOutput {
	return &CheckOutput{
		ID:          check.ID,
		CompanyID:   check.CompanyID,
		Number:      check.Number,
		Bank:        check.Bank,
		Amount:      check.Amount,
		Currency:    check.Currency,
		IssueDate:   check.IssueDate,
		DueDate:     check.DueDate,
		Status:      check.Status,
		Description: check.Description,
		CreatedAt:   check.CreatedAt,
		UpdatedAt:   check.UpdatedAt,
	}
}

func toCheckOutputs(checks []*entity.Check) []*CheckOutput {
	outputs := make([]*CheckOutput, 0, len(checks))
	for _, c := range checks {
		outputs = append(outputs, toCheckOutput(c))
	}
	return outputs
}
