// Package supplier contains supplier management use cases.
package supplier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// CreateSupplierInput represents the input for supplier creation.
type CreateSupplierInput struct {
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Name        string
	Email       string
	Phone       string
	Address     string
	RUT         string
	ContactName string
	Notes       string
}

// CreateSupplierUseCase handles supplier creation logic.
type CreateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewCreateSupplierUseCase creates a new CreateSupplierUseCase instance.
func NewCreateSupplierUseCase(supplierRepo adapter.SupplierRepository) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the supplier creation.
func (uc *CreateSupplierUseCase) Execute(ctx context.Context, input CreateSupplierInput) (*entity.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSupplierError(
			domainerror.ErrCodeSupplierNameRequired,
			"supplier name is required",
			domainerror.ErrSupplierNameRequired,
		)
	}

	supplier := entity.NewSupplier(
		input.CompanyID,
		input.UserID,
		name,
		input.Email,
		input.Phone,
		input.Address,
		input.RUT,
		input.ContactName,
		input.Notes,
	)

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	slog.Debug("Supplier created", "supplierID", supplier.ID, "companyID", supplier.CompanyID)

	return supplier, nil
}

// ListSuppliersInput represents the input for listing suppliers.
type ListSuppliersInput struct {
	CompanyID uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

// ListSuppliersUseCase handles supplier listing logic.
type ListSuppliersUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewListSuppliersUseCase creates a new ListSuppliersUseCase instance.
func NewListSuppliersUseCase(supplierRepo adapter.SupplierRepository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute lists suppliers ordered by name, optionally filtered by a
// case-insensitive search over name and contact name.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context, input ListSuppliersInput) ([]*entity.Supplier, error) {
	suppliers, err := uc.supplierRepo.FindByFilter(ctx, adapter.SupplierFilter{
		CompanyID: input.CompanyID,
		Search:    input.Search,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplierInput represents the input for a supplier update. Nil
// fields keep their current value.
type UpdateSupplierInput struct {
	CompanyID  uuid.UUID
	SupplierID uuid.UUID
	Update     adapter.SupplierUpdate
}

// UpdateSupplierUseCase handles supplier update logic.
type UpdateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewUpdateSupplierUseCase creates a new UpdateSupplierUseCase instance.
func NewUpdateSupplierUseCase(supplierRepo adapter.SupplierRepository) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute applies the provided fields to a supplier.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, input UpdateSupplierInput) (*entity.Supplier, error) {
	if input.Update.Name != nil && strings.TrimSpace(*input.Update.Name) == "" {
		return nil, domainerror.NewSupplierError(
			domainerror.ErrCodeSupplierNameRequired,
			"supplier name is required",
			domainerror.ErrSupplierNameRequired,
		)
	}

	existing, err := uc.supplierRepo.FindByID(ctx, input.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	if existing == nil || existing.CompanyID != input.CompanyID {
		return nil, supplierNotFound()
	}

	supplier, err := uc.supplierRepo.Update(ctx, input.SupplierID, input.Update)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return supplier, nil
}

// DeleteSupplierInput represents the input for supplier deletion.
type DeleteSupplierInput struct {
	CompanyID  uuid.UUID
	SupplierID uuid.UUID
}

// DeleteSupplierUseCase handles supplier deletion logic.
type DeleteSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewDeleteSupplierUseCase creates a new DeleteSupplierUseCase instance.
func NewDeleteSupplierUseCase(supplierRepo adapter.SupplierRepository) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute removes a supplier.
func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, input DeleteSupplierInput) error {
	existing, err := uc.supplierRepo.FindByID(ctx, input.SupplierID)
	if err != nil {
		return fmt.Errorf("failed to find supplier: %w", err)
	}
	if existing == nil || existing.CompanyID != input.CompanyID {
		return supplierNotFound()
	}

	if err := uc.supplierRepo.Delete(ctx, input.SupplierID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	slog.Debug("Supplier deleted", "supplierID", input.SupplierID, "companyID", input.CompanyID)
	return nil
}

func supplierNotFound() error {
	return domainerror.NewSupplierError(
		domainerror.ErrCodeSupplierNotFound,
		"supplier not found",
		domainerror.ErrSupplierNotFound,
	)
}
