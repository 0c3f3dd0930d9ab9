// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/money"
)

// CheckStatus represents the lifecycle state of a check.
type CheckStatus string

const (
	CheckStatusPending   CheckStatus = "pending"
	CheckStatusPaid      CheckStatus = "paid"
	CheckStatusRejected  CheckStatus = "rejected"
	CheckStatusCancelled CheckStatus = "cancelled"
)

// IsValidCheckStatus reports whether the value is a recognized check status.
func IsValidCheckStatus(status CheckStatus) bool {
	switch status {
	case CheckStatusPending, CheckStatusPaid, CheckStatusRejected, CheckStatusCancelled:
		return true
	}
	return false
}

// Check represents a bank check issued or received by a company. Pending
// is the only state that allows transitions; paid, rejected, and cancelled
// are terminal.
type Check struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Number      string
	Bank        string
	Amount      int64 // minor units
	Currency    money.Code
	IssueDate   time.Time
	DueDate     time.Time
	Status      CheckStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCheck creates a new Check entity in the pending state.
func NewCheck(
	companyID uuid.UUID,
	userID uuid.UUID,
	number string,
	bank string,
	amount int64,
	currency money.Code,
	issueDate time.Time,
	dueDate time.Time,
	description string,
) *Check {
	now := time.Now().UTC()

	return &Check{
		ID:          uuid.New(),
		CompanyID:   companyID,
		UserID:      userID,
		Number:      number,
		Bank:        bank,
		Amount:      amount,
		Currency:    currency,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Status:      CheckStatusPending,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CanTransitionTo reports whether the check may move to the target status.
// Only pending checks may transition, and only to a terminal state.
func (c *Check) CanTransitionTo(target CheckStatus) bool {
	if c.Status != CheckStatusPending {
		return false
	}
	return target == CheckStatusPaid || target == CheckStatusRejected || target == CheckStatusCancelled
}

// IsOverdue reports whether the check is pending with a due date strictly
// before asOf.
func (c *Check) IsOverdue(asOf time.Time) bool {
	return c.Status == CheckStatusPending && c.DueDate.Before(asOf)
}
