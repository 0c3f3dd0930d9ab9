// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueCheckReminderEmail queues a due-check reminder email. The template
// data carries preformatted amounts so the worker never touches money math.
func (s *Service) QueueCheckReminderEmail(ctx context.Context, input adapter.QueueCheckReminderInput) error {
	subject := fmt.Sprintf("Cheques por vencer - %s", input.CompanyName)
	if input.OverdueCount > 0 {
		subject = fmt.Sprintf("Cheques vencidos - %s", input.CompanyName)
	}

	checks := make([]map[string]interface{}, len(input.Checks))
	for i, c := range input.Checks {
		checks[i] = map[string]interface{}{
			"number":   c.Number,
			"bank":     c.Bank,
			"amount":   c.Amount,
			"due_date": c.DueDate,
			"overdue":  c.Overdue,
		}
	}

	templateData := map[string]interface{}{
		"company_name":   input.CompanyName,
		"overdue_count":  input.OverdueCount,
		"upcoming_count": input.UpcomingCount,
		"checks":         checks,
	}

	job := entity.NewEmailJob(
		entity.TemplateCheckReminder,
		input.RecipientEmail,
		"", // Recipient name unknown; companies store bare addresses
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue check reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
