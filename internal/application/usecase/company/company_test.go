package company

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

type fakeCompanyRepository struct {
	companies map[uuid.UUID]*entity.Company
}

func newFakeCompanyRepository() *fakeCompanyRepository {
	return &fakeCompanyRepository{companies: make(map[uuid.UUID]*entity.Company)}
}

func (r *fakeCompanyRepository) Create(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepository) FindAll(_ context.Context) ([]*entity.Company, error) {
	var result []*entity.Company
	for _, c := range r.companies {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeCompanyRepository) FindWithReminderRecipients(_ context.Context) ([]*entity.Company, error) {
	var result []*entity.Company
	for _, c := range r.companies {
		if len(c.ReminderRecipients) > 0 {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCompanyRepository) Update(_ context.Context, id uuid.UUID, update adapter.CompanyUpdate) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Logo != nil {
		c.Logo = *update.Logo
	}
	if update.Currency != nil {
		c.Currency = money.Code(*update.Currency)
	}
	if update.Timezone != nil {
		c.Timezone = *update.Timezone
	}
	if update.ReminderRecipients != nil {
		c.ReminderRecipients = *update.ReminderRecipients
	}
	return c, nil
}

func (r *fakeCompanyRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.companies, id)
	return nil
}

func TestCreateCompany(t *testing.T) {
	t.Run("defaults currency and timezone", func(t *testing.T) {
		repo := newFakeCompanyRepository()
		uc := NewCreateCompanyUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCompanyInput{Name: "Panadería San José"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Company.Currency != money.CLP {
			t.Errorf("Currency = %q, want CLP", output.Company.Currency)
		}
		if output.Company.Timezone != defaultTimezone {
			t.Errorf("Timezone = %q, want %q", output.Company.Timezone, defaultTimezone)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateCompanyUseCase(newFakeCompanyRepository())

		_, err := uc.Execute(context.Background(), CreateCompanyInput{Name: "   "})
		if !errors.Is(err, domainerror.ErrCompanyNameRequired) {
			t.Errorf("Execute() error = %v, want ErrCompanyNameRequired", err)
		}
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		uc := NewCreateCompanyUseCase(newFakeCompanyRepository())

		_, err := uc.Execute(context.Background(), CreateCompanyInput{Name: "Test", Currency: money.Code("BRL")})
		if !errors.Is(err, domainerror.ErrUnsupportedCurrency) {
			t.Errorf("Execute() error = %v, want ErrUnsupportedCurrency", err)
		}
	})
}

func TestUpdateCompany(t *testing.T) {
	repo := newFakeCompanyRepository()
	company := entity.NewCompany("Ferretería El Clavo", "", money.CLP, "America/Santiago", nil)
	repo.companies[company.ID] = company

	t.Run("updates only provided fields", func(t *testing.T) {
		uc := NewUpdateCompanyUseCase(repo)

		currency := money.USD
		output, err := uc.Execute(context.Background(), UpdateCompanyInput{
			CompanyID: company.ID,
			Currency:  &currency,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Company.Currency != money.USD {
			t.Errorf("Currency = %q, want USD", output.Company.Currency)
		}
		if output.Company.Name != "Ferretería El Clavo" {
			t.Errorf("Name = %q changed unexpectedly", output.Company.Name)
		}
	})

	t.Run("unknown company reports not found", func(t *testing.T) {
		uc := NewUpdateCompanyUseCase(repo)

		name := "Nuevo nombre"
		_, err := uc.Execute(context.Background(), UpdateCompanyInput{
			CompanyID: uuid.New(),
			Name:      &name,
		})
		if !errors.Is(err, domainerror.ErrCompanyNotFound) {
			t.Errorf("Execute() error = %v, want ErrCompanyNotFound", err)
		}
	})
}

func TestGetCompany(t *testing.T) {
	repo := newFakeCompanyRepository()
	company := entity.NewCompany("Almacén Central", "", money.CLP, "America/Santiago", []string{"dueña@almacen.cl"})
	repo.companies[company.ID] = company

	uc := NewGetCompanyUseCase(repo)

	got, err := uc.Execute(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.ID != company.ID {
		t.Errorf("ID = %v, want %v", got.ID, company.ID)
	}

	if _, err := uc.Execute(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrCompanyNotFound) {
		t.Errorf("Execute(unknown) error = %v, want ErrCompanyNotFound", err)
	}
}

func TestDeleteCompany(t *testing.T) {
	repo := newFakeCompanyRepository()
	company := entity.NewCompany("Panadería San José", "", money.CLP, "America/Santiago", nil)
	repo.companies[company.ID] = company

	uc := NewDeleteCompanyUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteCompanyInput{CompanyID: company.ID}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, ok := repo.companies[company.ID]; ok {
		t.Error("company still present after delete")
	}

	err := uc.Execute(context.Background(), DeleteCompanyInput{CompanyID: uuid.New()})
	if !errors.Is(err, domainerror.ErrCompanyNotFound) {
		t.Errorf("Execute(unknown) error = %v, want ErrCompanyNotFound", err)
	}
}
