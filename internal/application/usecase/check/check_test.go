package check

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

type fakeCheckRepository struct {
	checks map[uuid.UUID]*entity.Check
}

func newFakeCheckRepository() *fakeCheckRepository {
	return &fakeCheckRepository{checks: make(map[uuid.UUID]*entity.Check)}
}

func (r *fakeCheckRepository) Create(_ context.Context, check *entity.Check) error {
	r.checks[check.ID] = check
	return nil
}

func (r *fakeCheckRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Check, error) {
	return r.checks[id], nil
}

func (r *fakeCheckRepository) FindByFilter(_ context.Context, filter adapter.CheckFilter) ([]*entity.Check, error) {
	var result []*entity.Check
	for _, c := range r.checks {
		if c.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && c.DueDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && c.DueDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, c)
	}
	sortByDueDate(result)
	return result, nil
}

func (r *fakeCheckRepository) FindOverdue(_ context.Context, companyID uuid.UUID, asOf time.Time) ([]*entity.Check, error) {
	var result []*entity.Check
	for _, c := range r.checks {
		if c.CompanyID == companyID && c.IsOverdue(asOf) {
			result = append(result, c)
		}
	}
	sortByDueDate(result)
	return result, nil
}

func (r *fakeCheckRepository) FindUpcoming(_ context.Context, companyID uuid.UUID, asOf, until time.Time) ([]*entity.Check, error) {
	var result []*entity.Check
	for _, c := range r.checks {
		if c.CompanyID != companyID || c.Status != entity.CheckStatusPending {
			continue
		}
		if c.DueDate.Before(asOf) || c.DueDate.After(until) {
			continue
		}
		result = append(result, c)
	}
	sortByDueDate(result)
	return result, nil
}

func (r *fakeCheckRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.CheckStatus) error {
	if c, ok := r.checks[id]; ok {
		c.Status = status
	}
	return nil
}

func sortByDueDate(checks []*entity.Check) {
	sort.Slice(checks, func(i, j int) bool {
		return checks[i].DueDate.Before(checks[j].DueDate)
	})
}

func seedCheck(repo *fakeCheckRepository, companyID uuid.UUID, number string, dueDate time.Time, status entity.CheckStatus) *entity.Check {
	c := entity.NewCheck(companyID, uuid.New(), number, "Banco Estado", 50_000, money.CLP, dueDate.AddDate(0, -1, 0), dueDate, "")
	c.Status = status
	repo.checks[c.ID] = c
	return c
}

func TestCreateCheck(t *testing.T) {
	companyID := uuid.New()
	issue := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates pending check", func(t *testing.T) {
		repo := newFakeCheckRepository()
		uc := NewCreateCheckUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCheckInput{
			CompanyID: companyID,
			UserID:    uuid.New(),
			Number:    "001234",
			Bank:      "Banco de Chile",
			Amount:    125_000,
			Currency:  money.CLP,
			IssueDate: issue,
			DueDate:   issue.AddDate(0, 1, 0),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Check.Status != entity.CheckStatusPending {
			t.Errorf("Status = %q, want pending", output.Check.Status)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateCheckUseCase(newFakeCheckRepository())

		_, err := uc.Execute(context.Background(), CreateCheckInput{
			CompanyID: companyID,
			UserID:    uuid.New(),
			Number:    "001234",
			Bank:      "Banco de Chile",
			Amount:    0,
			Currency:  money.CLP,
			IssueDate: issue,
			DueDate:   issue,
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("Execute() error = %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("rejects due date before issue date", func(t *testing.T) {
		uc := NewCreateCheckUseCase(newFakeCheckRepository())

		_, err := uc.Execute(context.Background(), CreateCheckInput{
			CompanyID: companyID,
			UserID:    uuid.New(),
			Number:    "001234",
			Bank:      "Banco de Chile",
			Amount:    125_000,
			Currency:  money.CLP,
			IssueDate: issue,
			DueDate:   issue.AddDate(0, 0, -1),
		})
		if !errors.Is(err, domainerror.ErrInvalidCheckDates) {
			t.Errorf("Execute() error = %v, want ErrInvalidCheckDates", err)
		}
	})
}

func TestUpdateCheckStatus(t *testing.T) {
	companyID := uuid.New()
	due := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)

	t.Run("pending check can be paid", func(t *testing.T) {
		repo := newFakeCheckRepository()
		c := seedCheck(repo, companyID, "100", due, entity.CheckStatusPending)
		uc := NewUpdateCheckStatusUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateCheckStatusInput{
			CompanyID: companyID,
			CheckID:   c.ID,
			Status:    entity.CheckStatusPaid,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Check.Status != entity.CheckStatusPaid {
			t.Errorf("Status = %q, want paid", output.Check.Status)
		}
	})

	t.Run("cancelled check is terminal", func(t *testing.T) {
		repo := newFakeCheckRepository()
		c := seedCheck(repo, companyID, "100", due, entity.CheckStatusCancelled)
		uc := NewUpdateCheckStatusUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateCheckStatusInput{
			CompanyID: companyID,
			CheckID:   c.ID,
			Status:    entity.CheckStatusPending,
		})
		var checkErr *domainerror.CheckError
		if !errors.As(err, &checkErr) || checkErr.Code != domainerror.ErrCodeCheckStatusFinal {
			t.Errorf("Execute() error = %v, want CHK-020001", err)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := newFakeCheckRepository()
		c := seedCheck(repo, companyID, "100", due, entity.CheckStatusPending)
		uc := NewUpdateCheckStatusUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateCheckStatusInput{
			CompanyID: companyID,
			CheckID:   c.ID,
			Status:    entity.CheckStatus("bounced"),
		})
		if !errors.Is(err, domainerror.ErrInvalidCheckStatus) {
			t.Errorf("Execute() error = %v, want ErrInvalidCheckStatus", err)
		}
	})
}

func TestGetCheckAlerts(t *testing.T) {
	companyID := uuid.New()
	now := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

	repo := newFakeCheckRepository()
	overdue := seedCheck(repo, companyID, "overdue", now.AddDate(0, 0, -3), entity.CheckStatusPending)
	dueToday := seedCheck(repo, companyID, "due-today", now, entity.CheckStatusPending)
	upcoming := seedCheck(repo, companyID, "upcoming", now.AddDate(0, 0, 5), entity.CheckStatusPending)
	seedCheck(repo, companyID, "far-away", now.AddDate(0, 0, 20), entity.CheckStatusPending)
	seedCheck(repo, companyID, "paid-late", now.AddDate(0, 0, -10), entity.CheckStatusPaid)

	uc := NewGetCheckAlertsUseCase(repo)
	output, err := uc.Execute(context.Background(), GetCheckAlertsInput{CompanyID: companyID, Now: now})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Overdue) != 1 || output.Overdue[0].ID != overdue.ID {
		t.Errorf("Overdue = %d checks, want exactly the overdue pending one", len(output.Overdue))
	}
	if len(output.Upcoming) != 2 {
		t.Fatalf("Upcoming = %d checks, want 2", len(output.Upcoming))
	}
	// Due-exactly-now sorts first, then the one due in five days.
	if output.Upcoming[0].ID != dueToday.ID || output.Upcoming[1].ID != upcoming.ID {
		t.Errorf("Upcoming order = [%s, %s], want [due-today, upcoming]", output.Upcoming[0].Number, output.Upcoming[1].Number)
	}
}
