// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
)

// checkRepository implements the adapter.CheckRepository interface.
type checkRepository struct {
	db *gorm.DB
}

// NewCheckRepository creates a new check repository instance.
func NewCheckRepository(db *gorm.DB) adapter.CheckRepository {
	return &checkRepository{
		db: db,
	}
}

// Create creates a new check in the database.
func (r *checkRepository) Create(ctx context.Context, check *entity.Check) error {
	checkModel := model.CheckFromEntity(check)
	result := r.db.WithContext(ctx).Create(checkModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a check by its ID. A missing row yields (nil, nil).
func (r *checkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Check, error) {
	var checkModel model.CheckModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&checkModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return checkModel.ToEntity(), nil
}

// FindByFilter retrieves checks matching the filter, ordered by due date ascending.
func (r *checkRepository) FindByFilter(ctx context.Context, filter adapter.CheckFilter) ([]*entity.Check, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", filter.CompanyID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("due_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("due_date <= ?", filter.EndDate)
	}

	var checkModels []model.CheckModel
	result := query.Order("due_date ASC").Find(&checkModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(checkModels), nil
}

// FindOverdue retrieves pending checks with a due date strictly before asOf.
func (r *checkRepository) FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*entity.Check, error) {
	var checkModels []model.CheckModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("status = ?", string(entity.CheckStatusPending)).
		Where("due_date < ?", asOf).
		Order("due_date ASC").
		Find(&checkModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(checkModels), nil
}

// FindUpcoming retrieves pending checks with asOf <= dueDate <= until.
func (r *checkRepository) FindUpcoming(ctx context.Context, companyID uuid.UUID, asOf, until time.Time) ([]*entity.Check, error) {
	var checkModels []model.CheckModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("status = ?", string(entity.CheckStatusPending)).
		Where("due_date >= ? AND due_date <= ?", asOf, until).
		Order("due_date ASC").
		Find(&checkModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCheckEntities(checkModels), nil
}

// UpdateStatus persists a check status change.
func (r *checkRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CheckStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.CheckModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toCheckEntities(checkModels []model.CheckModel) []*entity.Check {
	checks := make([]*entity.Check, len(checkModels))
	for i, cm := range checkModels {
		checks[i] = cm.ToEntity()
	}
	return checks
}
