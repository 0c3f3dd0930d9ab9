// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
)

// companyRepository implements the adapter.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance.
func NewCompanyRepository(db *gorm.DB) adapter.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// Create creates a new company in the database.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyFromEntity(company)
	result := r.db.WithContext(ctx).Create(companyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a company by its ID. A missing row yields (nil, nil).
func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// FindAll retrieves all companies, ordered by name.
func (r *companyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []model.CompanyModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&companyModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCompanyEntities(companyModels), nil
}

// FindWithReminderRecipients retrieves companies with at least one reminder
// recipient configured.
func (r *companyRepository) FindWithReminderRecipients(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []model.CompanyModel
	result := r.db.WithContext(ctx).
		Where("reminder_recipients IS NOT NULL AND array_length(reminder_recipients, 1) > 0").
		Order("name ASC").
		Find(&companyModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCompanyEntities(companyModels), nil
}

// Update applies the non-nil fields of the update to a company and returns
// the fresh row. Updating an unknown company yields (nil, nil).
func (r *companyRepository) Update(ctx context.Context, id uuid.UUID, update adapter.CompanyUpdate) (*entity.Company, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Logo != nil {
		updates["logo"] = *update.Logo
	}
	if update.Currency != nil {
		updates["currency"] = *update.Currency
	}
	if update.Timezone != nil {
		updates["timezone"] = *update.Timezone
	}
	if update.ReminderRecipients != nil {
		updates["reminder_recipients"] = pq.StringArray(*update.ReminderRecipients)
	}

	result := r.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
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

// Delete removes a company.
func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toCompanyEntities(companyModels []model.CompanyModel) []*entity.Company {
	companies := make([]*entity.Company, len(companyModels))
	for i, cm := range companyModels {
		companies[i] = cm.ToEntity()
	}
	return companies
}
