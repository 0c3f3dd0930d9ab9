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

// creditRepository implements the adapter.CreditRepository interface.
type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit repository instance.
func NewCreditRepository(db *gorm.DB) adapter.CreditRepository {
	return &creditRepository{
		db: db,
	}
}

// Create creates a new credit in the database.
func (r *creditRepository) Create(ctx context.Context, credit *entity.Credit) error {
	creditModel := model.CreditFromEntity(credit)
	result := r.db.WithContext(ctx).Create(creditModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a credit by its ID. A missing row yields (nil, nil).
func (r *creditRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Credit, error) {
	var creditModel model.CreditModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&creditModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return creditModel.ToEntity(), nil
}

// FindByFilter retrieves credits matching the filter, ordered by start date descending.
func (r *creditRepository) FindByFilter(ctx context.Context, filter adapter.CreditFilter) ([]*entity.Credit, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", filter.CompanyID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var creditModels []model.CreditModel
	result := query.Order("start_date DESC").Find(&creditModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCreditEntities(creditModels), nil
}

// FindActiveEndingBy retrieves active credits with endDate <= until,
// ordered by end date ascending.
func (r *creditRepository) FindActiveEndingBy(ctx context.Context, companyID uuid.UUID, until time.Time) ([]*entity.Credit, error) {
	var creditModels []model.CreditModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("status = ?", string(entity.CreditStatusActive)).
		Where("end_date <= ?", until).
		Order("end_date ASC").
		Find(&creditModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCreditEntities(creditModels), nil
}

// FindActiveByCompany retrieves all active credits of a company.
func (r *creditRepository) FindActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Credit, error) {
	var creditModels []model.CreditModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("status = ?", string(entity.CreditStatusActive)).
		Order("end_date ASC").
		Find(&creditModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCreditEntities(creditModels), nil
}

// UpdateStatus persists a credit status change.
func (r *creditRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CreditStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.CreditModel{}).
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

func toCreditEntities(creditModels []model.CreditModel) []*entity.Credit {
	credits := make([]*entity.Credit, len(creditModels))
	for i, cm := range creditModels {
		credits[i] = cm.ToEntity()
	}
	return credits
}
