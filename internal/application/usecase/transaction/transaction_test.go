package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
)

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepository) Create(_ context.Context, tx *entity.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	var matched []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.CompanyID != filter.CompanyID || tx.DeletedAt != nil {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		matched = append(matched, tx)
	}
	total := int64(len(matched))
	totalPages := (len(matched) + pagination.Limit - 1) / pagination.Limit
	return &entity.TransactionListResult{
		Transactions: matched,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *fakeTransactionRepository) FindByCompanyAndDateRange(_ context.Context, companyID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.CompanyID == companyID && tx.DeletedAt == nil && !tx.Date.Before(start) && tx.Date.Before(end) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) FindRecent(_ context.Context, companyID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for i := len(r.transactions) - 1; i >= 0 && len(result) < limit; i-- {
		tx := r.transactions[i]
		if tx.CompanyID == companyID && tx.DeletedAt == nil {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	for _, tx := range r.transactions {
		if tx.ID == id {
			now := time.Now().UTC()
			tx.DeletedAt = &now
		}
	}
	return nil
}

func TestCreateTransaction(t *testing.T) {
	companyID := uuid.New()
	date := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	base := CreateTransactionInput{
		CompanyID: companyID,
		UserID:    uuid.New(),
		Type:      entity.TransactionTypeIncome,
		Currency:  money.CLP,
		Category:  "ventas",
		Date:      date,
	}

	t.Run("parses comma decimal amount into minor units", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		input := base
		input.Amount = "100,50"
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Transaction.Amount != 10050 {
			t.Errorf("Amount = %d, want 10050", output.Transaction.Amount)
		}
	})

	t.Run("rejects unparseable amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepository{})

		for _, raw := range []string{"abc", "100abc", "", "10,5,0"} {
			input := base
			input.Amount = raw
			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
				t.Errorf("Execute(%q) error = %v, want ErrInvalidTransactionAmount", raw, err)
			}
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepository{})

		input := base
		input.Amount = "-10"
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("Execute() error = %v, want ErrInvalidTransactionAmount", err)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepository{})

		input := base
		input.Type = entity.TransactionType("transfer")
		input.Amount = "10"
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("Execute() error = %v, want ErrInvalidTransactionType", err)
		}
	})

	t.Run("rejects oversized description", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(&fakeTransactionRepository{})

		input := base
		input.Amount = "10"
		input.Description = strings.Repeat("x", maxDescriptionLength+1)
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrDescriptionTooLong) {
			t.Errorf("Execute() error = %v, want ErrDescriptionTooLong", err)
		}
	})
}

func TestListTransactions(t *testing.T) {
	companyID := uuid.New()
	repo := &fakeTransactionRepository{}
	date := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo.transactions = append(repo.transactions,
		entity.NewTransaction(companyID, uuid.New(), entity.TransactionTypeIncome, 200_000, money.CLP, "", "", date),
		entity.NewTransaction(companyID, uuid.New(), entity.TransactionTypeExpense, 75_000, money.CLP, "", "", date),
	)

	uc := NewListTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), ListTransactionsInput{CompanyID: companyID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(output.Transactions))
	}
	if output.Totals.IncomeTotal != 200_000 || output.Totals.ExpenseTotal != 75_000 || output.Totals.NetTotal != 125_000 {
		t.Errorf("Totals = %+v, want income 200000 expense 75000 net 125000", output.Totals)
	}
	if output.Page != DefaultPage || output.Limit != DefaultLimit {
		t.Errorf("pagination = page %d limit %d, want defaults", output.Page, output.Limit)
	}
}

func TestDeleteTransaction(t *testing.T) {
	companyID := uuid.New()
	date := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	t.Run("soft deletes and hides from ranges", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		tx := entity.NewTransaction(companyID, uuid.New(), entity.TransactionTypeIncome, 200_000, money.CLP, "", "", date)
		repo.transactions = append(repo.transactions, tx)

		uc := NewDeleteTransactionUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteTransactionInput{CompanyID: companyID, TransactionID: tx.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if tx.DeletedAt == nil {
			t.Fatal("DeletedAt = nil, want set")
		}

		remaining, _ := repo.FindByCompanyAndDateRange(context.Background(), companyID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
		if len(remaining) != 0 {
			t.Errorf("range query returned %d transactions after delete, want 0", len(remaining))
		}
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		tx := entity.NewTransaction(companyID, uuid.New(), entity.TransactionTypeIncome, 200_000, money.CLP, "", "", date)
		repo.transactions = append(repo.transactions, tx)

		uc := NewDeleteTransactionUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteTransactionInput{CompanyID: companyID, TransactionID: tx.ID}); err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}
		err := uc.Execute(context.Background(), DeleteTransactionInput{CompanyID: companyID, TransactionID: tx.ID})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("second Execute() error = %v, want ErrTransactionNotFound", err)
		}
	})

	t.Run("other company cannot delete", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		tx := entity.NewTransaction(companyID, uuid.New(), entity.TransactionTypeIncome, 200_000, money.CLP, "", "", date)
		repo.transactions = append(repo.transactions, tx)

		uc := NewDeleteTransactionUseCase(repo)
		err := uc.Execute(context.Background(), DeleteTransactionInput{CompanyID: uuid.New(), TransactionID: tx.ID})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("Execute() error = %v, want ErrTransactionNotFound", err)
		}
	})
}
