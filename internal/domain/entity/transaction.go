// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/money"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a dated income or expense record of a company.
// Amount is a non-negative magnitude in minor units; the sign of the
// movement is carried by Type.
type Transaction struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Amount      int64 // minor units
	Currency    money.Code
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	companyID uuid.UUID,
	userID uuid.UUID,
	transactionType TransactionType,
	amount int64,
	currency money.Code,
	description string,
	category string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		CompanyID:   companyID,
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionTotals represents aggregated minor-unit totals for transactions.
type TransactionTotals struct {
	IncomeTotal  int64
	ExpenseTotal int64
	NetTotal     int64
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
