// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/domain/money"
)

// Company represents a tenant in the PyME Finance system. Every ledger
// record belongs to exactly one company, and the company currency drives
// how its dashboard amounts are displayed.
type Company struct {
	ID                 uuid.UUID
	Name               string
	Logo               string
	Currency           money.Code
	Timezone           string
	ReminderRecipients []string // emails that receive due-check reminders
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewCompany creates a new Company entity.
func NewCompany(name, logo string, currency money.Code, timezone string, reminderRecipients []string) *Company {
	now := time.Now().UTC()

	return &Company{
		ID:                 uuid.New(),
		Name:               name,
		Logo:               logo,
		Currency:           currency,
		Timezone:           timezone,
		ReminderRecipients: reminderRecipients,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
