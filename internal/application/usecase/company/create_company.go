// Package company contains company (tenant) management use cases.
package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// defaultTimezone is used when a company does not specify one. The product
// targets Chilean small businesses.
const defaultTimezone = "America/Santiago"

// CreateCompanyInput represents the input for company creation.
type CreateCompanyInput struct {
	Name               string
	Logo               string
	Currency           money.Code
	Timezone           string
	ReminderRecipients []string
}

// CreateCompanyOutput represents the output of company creation.
type CreateCompanyOutput struct {
	Company *entity.Company
}

// CreateCompanyUseCase handles company creation logic.
type CreateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewCreateCompanyUseCase creates a new CreateCompanyUseCase instance.
func NewCreateCompanyUseCase(companyRepo adapter.CompanyRepository) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute performs the company creation. An unset currency defaults to CLP.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, input CreateCompanyInput) (*CreateCompanyOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNameRequired,
			"company name is required",
			domainerror.ErrCompanyNameRequired,
		)
	}

	currency := input.Currency
	if currency == "" {
		currency = money.CLP
	}
	if !money.IsSupportedCurrency(currency) {
		return nil, domainerror.NewMoneyError(
			domainerror.ErrCodeUnsupportedCurrency,
			fmt.Sprintf("currency %q is not supported", currency),
			domainerror.ErrUnsupportedCurrency,
		)
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	company := entity.NewCompany(name, input.Logo, currency, timezone, input.ReminderRecipients)

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	slog.Info("Company created", "companyID", company.ID, "name", company.Name)

	return &CreateCompanyOutput{Company: company}, nil
}
