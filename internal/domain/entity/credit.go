// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreditStatus represents the lifecycle state of a credit.
type CreditStatus string

const (
	CreditStatusActive    CreditStatus = "active"
	CreditStatusPaid      CreditStatus = "paid"
	CreditStatusDefaulted CreditStatus = "defaulted"
)

// IsValidCreditStatus reports whether the value is a recognized credit status.
func IsValidCreditStatus(status CreditStatus) bool {
	switch status {
	case CreditStatusActive, CreditStatusPaid, CreditStatusDefaulted:
		return true
	}
	return false
}

// Credit represents a loan taken by a company. MonthlyPayment and EndDate
// are derived once at creation and never recomputed: changing the rate
// afterwards must not retroactively alter the stored payment.
type Credit struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	UserID         uuid.UUID
	Name           string
	Amount         int64 // principal, minor units
	Currency       money.Code
	InterestRate   float64 // annual rate in percent, 0 means interest-free
	TermMonths     int
	MonthlyPayment int64 // minor units, frozen at creation
	StartDate      time.Time
	EndDate        time.Time
	Status         CreditStatus
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCredit creates a new Credit entity in the active state. monthlyPayment
// and endDate are supplied by the amortization engine at creation time.
func NewCredit(
	companyID uuid.UUID,
	userID uuid.UUID,
	name string,
	amount int64,
	currency money.Code,
	interestRate float64,
	termMonths int,
	monthlyPayment int64,
	startDate time.Time,
	endDate time.Time,
	description string,
) *Credit {
	now := time.Now().UTC()

	return &Credit{
		ID:             uuid.New(),
		CompanyID:      companyID,
		UserID:         userID,
		Name:           name,
		Amount:         amount,
		Currency:       currency,
		InterestRate:   interestRate,
		TermMonths:     termMonths,
		MonthlyPayment: monthlyPayment,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         CreditStatusActive,
		Description:    description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CanTransitionTo reports whether the credit may move to the target status.
// active -> paid and active -> defaulted are the only transitions; both
// targets are terminal.
func (c *Credit) CanTransitionTo(target CreditStatus) bool {
	if c.Status != CreditStatusActive {
		return false
	}
	return target == CreditStatusPaid || target == CreditStatusDefaulted
}

// CreditStats represents aggregate figures over a company's active credits.
type CreditStats struct {
	TotalDebt       int64 // minor units
	MonthlyPayments int64 // minor units
	ActiveCredits   int
}
