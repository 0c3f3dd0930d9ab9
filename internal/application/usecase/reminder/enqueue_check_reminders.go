// Package reminder contains the use case that turns due checks into
// queued reminder emails.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// DefaultWindowDays is how far ahead the reminder looks for checks about
// to become due.
const DefaultWindowDays = 7

// EnqueueCheckRemindersInput represents the input for the reminder sweep.
type EnqueueCheckRemindersInput struct {
	Now        time.Time
	WindowDays int // 0 means DefaultWindowDays
}

// EnqueueCheckRemindersOutput represents the output of the reminder sweep.
type EnqueueCheckRemindersOutput struct {
	CompaniesNotified int
	EmailsQueued      int
}

// EnqueueCheckRemindersUseCase scans every company with reminder
// recipients and queues one email per recipient summarizing overdue and
// soon-to-be-due pending checks.
type EnqueueCheckRemindersUseCase struct {
	companyRepo  adapter.CompanyRepository
	checkRepo    adapter.CheckRepository
	emailService adapter.EmailService
}

// NewEnqueueCheckRemindersUseCase creates a new EnqueueCheckRemindersUseCase instance.
func NewEnqueueCheckRemindersUseCase(
	companyRepo adapter.CompanyRepository,
	checkRepo adapter.CheckRepository,
	emailService adapter.EmailService,
) *EnqueueCheckRemindersUseCase {
	return &EnqueueCheckRemindersUseCase{
		companyRepo:  companyRepo,
		checkRepo:    checkRepo,
		emailService: emailService,
	}
}

// Execute runs the reminder sweep. Companies with no qualifying checks
// are skipped; a failure queueing one company's email is logged and does
// not block the others.
func (uc *EnqueueCheckRemindersUseCase) Execute(ctx context.Context, input EnqueueCheckRemindersInput) (*EnqueueCheckRemindersOutput, error) {
	windowDays := input.WindowDays
	if windowDays == 0 {
		windowDays = DefaultWindowDays
	}

	companies, err := uc.companyRepo.FindWithReminderRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies for reminders: %w", err)
	}

	output := &EnqueueCheckRemindersOutput{}
	for _, company := range companies {
		queued, err := uc.remindCompany(ctx, company, input.Now, windowDays)
		if err != nil {
			slog.Error("Failed to queue check reminders for company",
				"companyID", company.ID,
				"error", err,
			)
			continue
		}
		if queued > 0 {
			output.CompaniesNotified++
			output.EmailsQueued += queued
		}
	}

	slog.Info("Check reminder sweep finished",
		"companies", output.CompaniesNotified,
		"emails", output.EmailsQueued,
	)

	return output, nil
}

func (uc *EnqueueCheckRemindersUseCase) remindCompany(ctx context.Context, company *entity.Company, now time.Time, windowDays int) (int, error) {
	overdue, err := uc.checkRepo.FindOverdue(ctx, company.ID, now)
	if err != nil {
		return 0, fmt.Errorf("find overdue checks: %w", err)
	}

	until := now.AddDate(0, 0, windowDays)
	upcoming, err := uc.checkRepo.FindUpcoming(ctx, company.ID, now, until)
	if err != nil {
		return 0, fmt.Errorf("find upcoming checks: %w", err)
	}

	if len(overdue) == 0 && len(upcoming) == 0 {
		return 0, nil
	}

	checks := make([]adapter.ReminderCheck, 0, len(overdue)+len(upcoming))
	for _, c := range overdue {
		checks = append(checks, toReminderCheck(c, company.Currency, true))
	}
	for _, c := range upcoming {
		checks = append(checks, toReminderCheck(c, company.Currency, false))
	}

	queued := 0
	for _, recipient := range company.ReminderRecipients {
		err := uc.emailService.QueueCheckReminderEmail(ctx, adapter.QueueCheckReminderInput{
			CompanyName:    company.Name,
			RecipientEmail: recipient,
			OverdueCount:   len(overdue),
			UpcomingCount:  len(upcoming),
			Checks:         checks,
		})
		if err != nil {
			return queued, fmt.Errorf("queue reminder for %s: %w", recipient, err)
		}
		queued++
	}

	return queued, nil
}

func toReminderCheck(check *entity.Check, currency money.Code, overdue bool) adapter.ReminderCheck {
	return adapter.ReminderCheck{
		Number:  check.Number,
		Bank:    check.Bank,
		Amount:  money.Format(check.Amount, currency),
		DueDate: check.DueDate.Format("02-01-2006"),
		Overdue: overdue,
	}
}
