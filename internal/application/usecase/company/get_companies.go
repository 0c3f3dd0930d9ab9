package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// GetCompaniesOutput represents the output of the company listing.
type GetCompaniesOutput struct {
	Companies []*entity.Company
}

// GetCompaniesUseCase lists all companies.
type GetCompaniesUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewGetCompaniesUseCase creates a new GetCompaniesUseCase instance.
func NewGetCompaniesUseCase(companyRepo adapter.CompanyRepository) *GetCompaniesUseCase {
	return &GetCompaniesUseCase{
		companyRepo: companyRepo,
	}
}

// Execute lists all companies ordered by name.
func (uc *GetCompaniesUseCase) Execute(ctx context.Context) (*GetCompaniesOutput, error) {
	companies, err := uc.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return &GetCompaniesOutput{Companies: companies}, nil
}

// GetCompanyUseCase retrieves a single company.
type GetCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewGetCompanyUseCase creates a new GetCompanyUseCase instance.
func NewGetCompanyUseCase(companyRepo adapter.CompanyRepository) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute retrieves a company by ID.
func (uc *GetCompanyUseCase) Execute(ctx context.Context, companyID uuid.UUID) (*entity.Company, error) {
	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	if company == nil {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNotFound,
			"company not found",
			domainerror.ErrCompanyNotFound,
		)
	}
	return company, nil
}
