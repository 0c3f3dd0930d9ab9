package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// UpdateCompanyInput represents the input for a company update. Nil fields
// keep their current value.
type UpdateCompanyInput struct {
	CompanyID          uuid.UUID
	Name               *string
	Logo               *string
	Currency           *money.Code
	Timezone           *string
	ReminderRecipients *[]string
}

// UpdateCompanyOutput represents the output of a company update.
type UpdateCompanyOutput struct {
	Company *entity.Company
}

// UpdateCompanyUseCase handles company update logic.
type UpdateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewUpdateCompanyUseCase creates a new UpdateCompanyUseCase instance.
func NewUpdateCompanyUseCase(companyRepo adapter.CompanyRepository) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute applies the provided fields to a company. Changing the currency
// only affects display; stored amounts are never converted.
func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, input UpdateCompanyInput) (*UpdateCompanyOutput, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNameRequired,
			"company name is required",
			domainerror.ErrCompanyNameRequired,
		)
	}

	update := adapter.CompanyUpdate{
		Name:               input.Name,
		Logo:               input.Logo,
		Timezone:           input.Timezone,
		ReminderRecipients: input.ReminderRecipients,
	}

	if input.Currency != nil {
		if !money.IsSupportedCurrency(*input.Currency) {
			return nil, domainerror.NewMoneyError(
				domainerror.ErrCodeUnsupportedCurrency,
				fmt.Sprintf("currency %q is not supported", *input.Currency),
				domainerror.ErrUnsupportedCurrency,
			)
		}
		currency := string(*input.Currency)
		update.Currency = &currency
	}

	company, err := uc.companyRepo.Update(ctx, input.CompanyID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	if company == nil {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNotFound,
			"company not found",
			domainerror.ErrCompanyNotFound,
		)
	}

	slog.Info("Company updated", "companyID", company.ID)

	return &UpdateCompanyOutput{Company: company}, nil
}
