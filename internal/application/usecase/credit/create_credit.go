// Package credit contains credit-related use cases and the loan
// amortization engine.
package credit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreateCreditInput represents the input for credit creation.
type CreateCreditInput struct {
	CompanyID    uuid.UUID
	UserID       uuid.UUID
	Name         string
	Amount       int64 // principal, minor units
	Currency     money.Code
	InterestRate float64 // annual rate in percent
	TermMonths   int
	StartDate    time.Time
	Description  string
}

// CreateCreditOutput represents the output of credit creation.
type CreateCreditOutput struct {
	Credit *CreditOutput
}

// CreateCreditUseCase handles credit creation logic.
type CreateCreditUseCase struct {
	creditRepo adapter.CreditRepository
}

// NewCreateCreditUseCase creates a new CreateCreditUseCase instance.
func NewCreateCreditUseCase(creditRepo adapter.CreditRepository) *CreateCreditUseCase {
	return &CreateCreditUseCase{
		creditRepo: creditRepo,
	}
}

// Execute performs the credit creation. The monthly payment and end date
// are computed here, once, and persisted with the credit; later rate
// changes never alter them.
func (uc *CreateCreditUseCase) Execute(ctx context.Context, input CreateCreditInput) (*CreateCreditOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewCreditError(
			domainerror.ErrCodeInvalidPrincipal,
			"principal must be a positive amount",
			domainerror.ErrInvalidPrincipal,
		)
	}

	if input.InterestRate < 0 || math.IsNaN(input.InterestRate) || math.IsInf(input.InterestRate, 0) {
		return nil, domainerror.NewCreditError(
			domainerror.ErrCodeInvalidInterestRate,
			"interest rate must be a non-negative number",
			domainerror.ErrInvalidInterestRate,
		)
	}

	if !money.IsSupportedCurrency(input.Currency) {
		return nil, domainerror.NewMoneyError(
			domainerror.ErrCodeUnsupportedCurrency,
			fmt.Sprintf("currency %q is not supported", input.Currency),
			domainerror.ErrUnsupportedCurrency,
		)
	}

	monthlyPayment, err := MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	if err != nil {
		return nil, err
	}

	endDate := AddMonths(input.StartDate, input.TermMonths)

	credit := entity.NewCredit(
		input.CompanyID,
		input.UserID,
		input.Name,
		input.Amount,
		input.Currency,
		input.InterestRate,
		input.TermMonths,
		monthlyPayment,
		input.StartDate,
		endDate,
		input.Description,
	)

	if err := uc.creditRepo.Create(ctx, credit); err != nil {
		return nil, fmt.Errorf("failed to create credit: %w", err)
	}

	slog.Debug("Credit created",
		"creditID", credit.ID,
		"companyID", credit.CompanyID,
		"monthlyPayment", credit.MonthlyPayment,
		"endDate", credit.EndDate.Format("2006-01-02"),
	)

	return &CreateCreditOutput{Credit: toCreditOutput(credit)}, nil
}
