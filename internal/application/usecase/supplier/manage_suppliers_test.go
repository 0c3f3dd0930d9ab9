package supplier

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

type fakeSupplierRepository struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepository() *fakeSupplierRepository {
	return &fakeSupplierRepository{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (r *fakeSupplierRepository) Create(_ context.Context, supplier *entity.Supplier) error {
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepository) FindByFilter(_ context.Context, filter adapter.SupplierFilter) ([]*entity.Supplier, error) {
	var result []*entity.Supplier
	search := strings.ToLower(filter.Search)
	for _, s := range r.suppliers {
		if s.CompanyID != filter.CompanyID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.ContactName), search) {
			continue
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeSupplierRepository) Update(_ context.Context, id uuid.UUID, update adapter.SupplierUpdate) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Email != nil {
		s.Email = *update.Email
	}
	if update.Phone != nil {
		s.Phone = *update.Phone
	}
	return s, nil
}

func (r *fakeSupplierRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func TestCreateSupplier(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates supplier", func(t *testing.T) {
		repo := newFakeSupplierRepository()
		uc := NewCreateSupplierUseCase(repo)

		supplier, err := uc.Execute(context.Background(), CreateSupplierInput{
			CompanyID: companyID,
			UserID:    uuid.New(),
			Name:      "Distribuidora Los Andes",
			RUT:       "76.123.456-7",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if supplier.RUT != "76.123.456-7" {
			t.Errorf("RUT = %q, want 76.123.456-7", supplier.RUT)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateSupplierUseCase(newFakeSupplierRepository())

		_, err := uc.Execute(context.Background(), CreateSupplierInput{CompanyID: companyID, Name: "  "})
		if !errors.Is(err, domainerror.ErrSupplierNameRequired) {
			t.Errorf("Execute() error = %v, want ErrSupplierNameRequired", err)
		}
	})
}

func TestListSuppliers(t *testing.T) {
	companyID := uuid.New()
	repo := newFakeSupplierRepository()
	s1 := entity.NewSupplier(companyID, uuid.New(), "Distribuidora Los Andes", "", "", "", "", "María Pérez", "")
	s2 := entity.NewSupplier(companyID, uuid.New(), "Lácteos del Sur", "", "", "", "", "Juan Soto", "")
	repo.suppliers[s1.ID] = s1
	repo.suppliers[s2.ID] = s2

	uc := NewListSuppliersUseCase(repo)

	t.Run("search matches contact name case-insensitively", func(t *testing.T) {
		suppliers, err := uc.Execute(context.Background(), ListSuppliersInput{CompanyID: companyID, Search: "maría"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(suppliers) != 1 || suppliers[0].ID != s1.ID {
			t.Errorf("suppliers = %d results, want just Los Andes", len(suppliers))
		}
	})

	t.Run("empty search returns all ordered by name", func(t *testing.T) {
		suppliers, err := uc.Execute(context.Background(), ListSuppliersInput{CompanyID: companyID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(suppliers) != 2 || suppliers[0].Name != "Distribuidora Los Andes" {
			t.Errorf("unexpected listing: %d results", len(suppliers))
		}
	})
}

func TestUpdateAndDeleteSupplier(t *testing.T) {
	companyID := uuid.New()

	t.Run("update is company scoped", func(t *testing.T) {
		repo := newFakeSupplierRepository()
		s := entity.NewSupplier(companyID, uuid.New(), "Proveedor", "", "", "", "", "", "")
		repo.suppliers[s.ID] = s

		uc := NewUpdateSupplierUseCase(repo)
		name := "Otro nombre"
		_, err := uc.Execute(context.Background(), UpdateSupplierInput{
			CompanyID:  uuid.New(),
			SupplierID: s.ID,
			Update:     adapter.SupplierUpdate{Name: &name},
		})
		if !errors.Is(err, domainerror.ErrSupplierNotFound) {
			t.Errorf("Execute() error = %v, want ErrSupplierNotFound", err)
		}
	})

	t.Run("delete removes supplier", func(t *testing.T) {
		repo := newFakeSupplierRepository()
		s := entity.NewSupplier(companyID, uuid.New(), "Proveedor", "", "", "", "", "", "")
		repo.suppliers[s.ID] = s

		uc := NewDeleteSupplierUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteSupplierInput{CompanyID: companyID, SupplierID: s.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(repo.suppliers) != 0 {
			t.Errorf("suppliers = %d, want 0", len(repo.suppliers))
		}
	})
}
