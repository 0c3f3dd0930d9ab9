// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
)

// supplierRepository implements the adapter.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository instance.
func NewSupplierRepository(db *gorm.DB) adapter.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier in the database.
func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierModel := model.SupplierFromEntity(supplier)
	result := r.db.WithContext(ctx).Create(supplierModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a supplier by its ID. A missing row yields (nil, nil).
func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return supplierModel.ToEntity(), nil
}

// FindByFilter retrieves suppliers matching the filter, ordered by name ascending.
func (r *supplierRepository) FindByFilter(ctx context.Context, filter adapter.SupplierFilter) ([]*entity.Supplier, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", filter.CompanyID)

	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(contact_name) LIKE ?", searchPattern, searchPattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var supplierModels []model.SupplierModel
	result := query.Order("name ASC").Find(&supplierModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suppliers := make([]*entity.Supplier, len(supplierModels))
	for i, sm := range supplierModels {
		suppliers[i] = sm.ToEntity()
	}
	return suppliers, nil
}

// Update applies the non-nil fields of the update to a supplier and returns
// the fresh row.
func (r *supplierRepository) Update(ctx context.Context, id uuid.UUID, update adapter.SupplierUpdate) (*entity.Supplier, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.RUT != nil {
		updates["rut"] = *update.RUT
	}
	if update.ContactName != nil {
		updates["contact_name"] = *update.ContactName
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	result := r.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete removes a supplier.
func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
