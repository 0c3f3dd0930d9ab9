package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.TransactionModel{},
		&model.CheckModel{},
		&model.CreditModel{},
		&model.SupplierModel{},
		&model.EmailQueueModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	userID := uuid.New()

	newTx := func(txType entity.TransactionType, amount int64, day time.Time) *entity.Transaction {
		return entity.NewTransaction(companyID, userID, txType, amount, money.CLP, "venta del día", "ventas", day)
	}

	t.Run("round trips a transaction", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		tx := newTx(entity.TransactionTypeIncome, 10050, date(2025, time.March, 5))

		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		got, err := repo.FindByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got == nil || got.Amount != 10050 || got.Type != entity.TransactionTypeIncome {
			t.Errorf("FindByID() = %+v, want amount 10050 income", got)
		}
	})

	t.Run("date range is inclusive start exclusive end", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		inside := newTx(entity.TransactionTypeIncome, 100, date(2025, time.March, 1))
		atEnd := newTx(entity.TransactionTypeIncome, 200, date(2025, time.April, 1))
		for _, tx := range []*entity.Transaction{inside, atEnd} {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
		}

		got, err := repo.FindByCompanyAndDateRange(ctx, companyID, date(2025, time.March, 1), date(2025, time.April, 1))
		if err != nil {
			t.Fatalf("FindByCompanyAndDateRange() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != inside.ID {
			t.Errorf("range returned %d transactions, want only the March one", len(got))
		}
	})

	t.Run("soft deleted transactions disappear from queries", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		tx := newTx(entity.TransactionTypeExpense, 500, date(2025, time.March, 10))
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if err := repo.Delete(ctx, tx.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		got, err := repo.FindByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got != nil {
			t.Errorf("FindByID() = %+v after delete, want nil", got)
		}

		ranged, err := repo.FindByCompanyAndDateRange(ctx, companyID, date(2025, time.March, 1), date(2025, time.April, 1))
		if err != nil {
			t.Fatalf("FindByCompanyAndDateRange() error = %v", err)
		}
		if len(ranged) != 0 {
			t.Errorf("range returned %d transactions after delete, want 0", len(ranged))
		}
	})

	t.Run("filter paginates newest first", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		for day := 1; day <= 5; day++ {
			tx := newTx(entity.TransactionTypeIncome, int64(day*100), date(2025, time.March, day))
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
		}

		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{CompanyID: companyID},
			adapter.TransactionPagination{Page: 1, Limit: 2},
		)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 5 || result.TotalPages != 3 {
			t.Errorf("Total = %d TotalPages = %d, want 5 and 3", result.Total, result.TotalPages)
		}
		if len(result.Transactions) != 2 || !result.Transactions[0].Date.After(result.Transactions[1].Date) {
			t.Errorf("page 1 = %d transactions, want 2 newest first", len(result.Transactions))
		}
	})

	t.Run("filter scopes by company", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		mine := newTx(entity.TransactionTypeIncome, 100, date(2025, time.March, 1))
		other := entity.NewTransaction(uuid.New(), userID, entity.TransactionTypeIncome, 999, money.CLP, "", "", date(2025, time.March, 1))
		for _, tx := range []*entity.Transaction{mine, other} {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
		}

		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{CompanyID: companyID},
			adapter.TransactionPagination{Page: 1, Limit: 10},
		)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 1 {
			t.Errorf("Total = %d, want 1", result.Total)
		}
	})
}

func TestCheckRepository(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	userID := uuid.New()
	now := date(2025, time.May, 15)

	seed := func(t *testing.T, repo adapter.CheckRepository, due time.Time, status entity.CheckStatus) *entity.Check {
		t.Helper()
		c := entity.NewCheck(companyID, userID, "0001", "Banco Estado", 250_000, money.CLP, due.AddDate(0, -1, 0), due, "")
		c.Status = status
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return c
	}

	t.Run("overdue and upcoming windows", func(t *testing.T) {
		repo := NewCheckRepository(newTestDB(t))
		overdue := seed(t, repo, now.AddDate(0, 0, -1), entity.CheckStatusPending)
		dueToday := seed(t, repo, now, entity.CheckStatusPending)
		seed(t, repo, now.AddDate(0, 0, 30), entity.CheckStatusPending)
		seed(t, repo, now.AddDate(0, 0, -5), entity.CheckStatusPaid)

		gotOverdue, err := repo.FindOverdue(ctx, companyID, now)
		if err != nil {
			t.Fatalf("FindOverdue() error = %v", err)
		}
		if len(gotOverdue) != 1 || gotOverdue[0].ID != overdue.ID {
			t.Errorf("FindOverdue() = %d checks, want only the pending overdue one", len(gotOverdue))
		}

		gotUpcoming, err := repo.FindUpcoming(ctx, companyID, now, now.AddDate(0, 0, 7))
		if err != nil {
			t.Fatalf("FindUpcoming() error = %v", err)
		}
		if len(gotUpcoming) != 1 || gotUpcoming[0].ID != dueToday.ID {
			t.Errorf("FindUpcoming() = %d checks, want only the one due today", len(gotUpcoming))
		}
	})

	t.Run("status update persists", func(t *testing.T) {
		repo := NewCheckRepository(newTestDB(t))
		c := seed(t, repo, now, entity.CheckStatusPending)

		if err := repo.UpdateStatus(ctx, c.ID, entity.CheckStatusPaid); err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		got, err := repo.FindByID(ctx, c.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got.Status != entity.CheckStatusPaid {
			t.Errorf("Status = %q, want paid", got.Status)
		}
	})
}

func TestCreditRepository(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	userID := uuid.New()

	seed := func(t *testing.T, repo adapter.CreditRepository, end time.Time, status entity.CreditStatus) *entity.Credit {
		t.Helper()
		c := entity.NewCredit(companyID, userID, "Crédito", 1_000_000, money.CLP, 12, 12, 88_849, end.AddDate(-1, 0, 0), end, "")
		c.Status = status
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return c
	}

	t.Run("active credits ending by date", func(t *testing.T) {
		repo := NewCreditRepository(newTestDB(t))
		soon := seed(t, repo, date(2025, time.June, 1), entity.CreditStatusActive)
		seed(t, repo, date(2026, time.June, 1), entity.CreditStatusActive)
		seed(t, repo, date(2025, time.May, 20), entity.CreditStatusPaid)

		got, err := repo.FindActiveEndingBy(ctx, companyID, date(2025, time.July, 1))
		if err != nil {
			t.Fatalf("FindActiveEndingBy() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != soon.ID {
			t.Errorf("FindActiveEndingBy() = %d credits, want only the active June one", len(got))
		}
	})

	t.Run("monthly payment survives the round trip", func(t *testing.T) {
		repo := NewCreditRepository(newTestDB(t))
		c := seed(t, repo, date(2025, time.December, 1), entity.CreditStatusActive)

		got, err := repo.FindByID(ctx, c.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got.MonthlyPayment != 88_849 {
			t.Errorf("MonthlyPayment = %d, want 88849", got.MonthlyPayment)
		}
	})
}
