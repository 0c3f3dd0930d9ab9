package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// DeleteCompanyInput represents the input for a company deletion.
type DeleteCompanyInput struct {
	CompanyID uuid.UUID
}

// DeleteCompanyUseCase handles company deletion logic.
type DeleteCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewDeleteCompanyUseCase creates a new DeleteCompanyUseCase instance.
func NewDeleteCompanyUseCase(companyRepo adapter.CompanyRepository) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute removes a company. Rows scoped to the company (transactions,
// checks, credits, suppliers) are left for database-level cleanup; the
// API stops serving them once the tenant is gone.
func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, input DeleteCompanyInput) error {
	company, err := uc.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to find company: %w", err)
	}
	if company == nil {
		return domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyNotFound,
			"company not found",
			domainerror.ErrCompanyNotFound,
		)
	}

	if err := uc.companyRepo.Delete(ctx, input.CompanyID); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	slog.Info("Company deleted", "companyID", input.CompanyID, "name", company.Name)
	return nil
}
