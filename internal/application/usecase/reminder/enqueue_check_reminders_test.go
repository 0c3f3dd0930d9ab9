package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies = append(r.companies, c)
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) FindAll(_ context.Context) ([]*entity.Company, error) {
	return r.companies, nil
}

func (r *fakeCompanyRepo) FindWithReminderRecipients(_ context.Context) ([]*entity.Company, error) {
	var result []*entity.Company
	for _, c := range r.companies {
		if len(c.ReminderRecipients) > 0 {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, _ uuid.UUID, _ adapter.CompanyUpdate) (*entity.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeCheckRepo struct {
	checks []*entity.Check
}

func (r *fakeCheckRepo) Create(_ context.Context, c *entity.Check) error {
	r.checks = append(r.checks, c)
	return nil
}

func (r *fakeCheckRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Check, error) {
	for _, c := range r.checks {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckRepo) FindByFilter(_ context.Context, _ adapter.CheckFilter) ([]*entity.Check, error) {
	return r.checks, nil
}

func (r *fakeCheckRepo) FindOverdue(_ context.Context, companyID uuid.UUID, asOf time.Time) ([]*entity.Check, error) {
	var result []*entity.Check
	for _, c := range r.checks {
		if c.CompanyID == companyID && c.IsOverdue(asOf) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCheckRepo) FindUpcoming(_ context.Context, companyID uuid.UUID, asOf, until time.Time) ([]*entity.Check, error) {
	var result []*entity.Check
	for _, c := range r.checks {
		if c.CompanyID == companyID && c.Status == entity.CheckStatusPending &&
			!c.DueDate.Before(asOf) && !c.DueDate.After(until) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCheckRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ entity.CheckStatus) error {
	return nil
}

type fakeEmailService struct {
	queued []adapter.QueueCheckReminderInput
	err    error
}

func (s *fakeEmailService) QueueCheckReminderEmail(_ context.Context, input adapter.QueueCheckReminderInput) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, input)
	return nil
}

func TestEnqueueCheckReminders(t *testing.T) {
	now := time.Date(2025, time.May, 15, 9, 0, 0, 0, time.UTC)

	newCompany := func(recipients ...string) *entity.Company {
		return entity.NewCompany("Panadería San José", "", money.CLP, "America/Santiago", recipients)
	}

	addCheck := func(repo *fakeCheckRepo, companyID uuid.UUID, number string, due time.Time) {
		repo.checks = append(repo.checks, entity.NewCheck(
			companyID, uuid.New(), number, "Banco Estado", 250_000, money.CLP,
			due.AddDate(0, -1, 0), due, "",
		))
	}

	t.Run("queues one email per recipient with formatted amounts", func(t *testing.T) {
		company := newCompany("dueña@pyme.cl", "contador@pyme.cl")
		companyRepo := &fakeCompanyRepo{companies: []*entity.Company{company}}
		checkRepo := &fakeCheckRepo{}
		addCheck(checkRepo, company.ID, "overdue-1", now.AddDate(0, 0, -2))
		addCheck(checkRepo, company.ID, "upcoming-1", now.AddDate(0, 0, 3))
		emailService := &fakeEmailService{}

		uc := NewEnqueueCheckRemindersUseCase(companyRepo, checkRepo, emailService)
		output, err := uc.Execute(context.Background(), EnqueueCheckRemindersInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if output.EmailsQueued != 2 || output.CompaniesNotified != 1 {
			t.Errorf("output = %+v, want 2 emails for 1 company", output)
		}
		if len(emailService.queued) != 2 {
			t.Fatalf("queued = %d, want 2", len(emailService.queued))
		}

		email := emailService.queued[0]
		if email.OverdueCount != 1 || email.UpcomingCount != 1 {
			t.Errorf("counts = %d overdue %d upcoming, want 1 and 1", email.OverdueCount, email.UpcomingCount)
		}
		if len(email.Checks) != 2 {
			t.Fatalf("checks = %d, want 2", len(email.Checks))
		}
		if email.Checks[0].Amount != "$250.000" {
			t.Errorf("Amount = %q, want $250.000", email.Checks[0].Amount)
		}
		if !email.Checks[0].Overdue || email.Checks[1].Overdue {
			t.Errorf("overdue flags = [%v, %v], want [true, false]", email.Checks[0].Overdue, email.Checks[1].Overdue)
		}
	})

	t.Run("skips companies with nothing due", func(t *testing.T) {
		company := newCompany("dueña@pyme.cl")
		companyRepo := &fakeCompanyRepo{companies: []*entity.Company{company}}
		checkRepo := &fakeCheckRepo{}
		addCheck(checkRepo, company.ID, "far-away", now.AddDate(0, 0, 60))
		emailService := &fakeEmailService{}

		uc := NewEnqueueCheckRemindersUseCase(companyRepo, checkRepo, emailService)
		output, err := uc.Execute(context.Background(), EnqueueCheckRemindersInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.EmailsQueued != 0 || len(emailService.queued) != 0 {
			t.Errorf("output = %+v, want nothing queued", output)
		}
	})

	t.Run("companies without recipients are never scanned", func(t *testing.T) {
		company := newCompany() // no recipients
		companyRepo := &fakeCompanyRepo{companies: []*entity.Company{company}}
		checkRepo := &fakeCheckRepo{}
		addCheck(checkRepo, company.ID, "overdue-1", now.AddDate(0, 0, -2))
		emailService := &fakeEmailService{}

		uc := NewEnqueueCheckRemindersUseCase(companyRepo, checkRepo, emailService)
		output, err := uc.Execute(context.Background(), EnqueueCheckRemindersInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.CompaniesNotified != 0 {
			t.Errorf("CompaniesNotified = %d, want 0", output.CompaniesNotified)
		}
	})

	t.Run("queue failure for one company does not abort the sweep", func(t *testing.T) {
		company := newCompany("dueña@pyme.cl")
		companyRepo := &fakeCompanyRepo{companies: []*entity.Company{company}}
		checkRepo := &fakeCheckRepo{}
		addCheck(checkRepo, company.ID, "overdue-1", now.AddDate(0, 0, -2))
		emailService := &fakeEmailService{err: errors.New("queue full")}

		uc := NewEnqueueCheckRemindersUseCase(companyRepo, checkRepo, emailService)
		output, err := uc.Execute(context.Background(), EnqueueCheckRemindersInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.EmailsQueued != 0 {
			t.Errorf("EmailsQueued = %d, want 0", output.EmailsQueued)
		}
	})
}
