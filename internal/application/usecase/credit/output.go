package credit

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreditOutput is the use-case level view of a credit.
type CreditOutput struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	Name           string
	Amount         int64
	Currency       money.Code
	InterestRate   float64
	TermMonths     int
	MonthlyPayment int64
	StartDate      time.Time
	EndDate        time.Time
	Status         entity.CreditStatus
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toCreditOutput(credit *entity.Credit) *CreditOutput {
	return &CreditOutput{
		ID:             credit.ID,
		CompanyID:      credit.CompanyID,
		Name:           credit.Name,
		Amount:         credit.Amount,
		Currency:       credit.Currency,
		InterestRate:   credit.InterestRate,
		TermMonths:     credit.TermMonths,
		MonthlyPayment: credit.MonthlyPayment,
		StartDate:      credit.StartDate,
		EndDate:        credit.EndDate,
		Status:         credit.Status,
		Description:    credit.Description,
		CreatedAt:      credit.CreatedAt,
		UpdatedAt:      credit.UpdatedAt,
	}
}
