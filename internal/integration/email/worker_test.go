package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	"github.com/pyme-finance/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return q.jobs[id], nil
}

func (q *fakeQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	var jobs []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func queueReminder(t *testing.T, queue *fakeQueue) *entity.EmailJob {
	t.Helper()
	service := NewService(queue)
	err := service.QueueCheckReminderEmail(context.Background(), adapter.QueueCheckReminderInput{
		CompanyName:    "Panadería San José",
		RecipientEmail: "dueña@pyme.cl",
		OverdueCount:   1,
		UpcomingCount:  1,
		Checks: []adapter.ReminderCheck{
			{Number: "0001", Bank: "Banco Estado", Amount: "$250.000", DueDate: "10-05-2025", Overdue: true},
			{Number: "0002", Bank: "Banco de Chile", Amount: "$100.000", DueDate: "20-05-2025", Overdue: false},
		},
	})
	if err != nil {
		t.Fatalf("QueueCheckReminderEmail() error = %v", err)
	}
	for _, job := range queue.jobs {
		return job
	}
	t.Fatal("no job queued")
	return nil
}

func TestWorkerSendsCheckReminder(t *testing.T) {
	queue := newFakeQueue()
	job := queueReminder(t, queue)
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("sent = %d emails, want 1", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != "dueña@pyme.cl" {
		t.Errorf("To = %q, want dueña@pyme.cl", sent.To)
	}
	if !strings.Contains(sent.Subject, "vencidos") {
		t.Errorf("Subject = %q, want overdue wording", sent.Subject)
	}
	if !strings.Contains(sent.HTML, "$250.000") || !strings.Contains(sent.HTML, "Banco Estado") {
		t.Errorf("HTML body missing check details")
	}
	if !strings.Contains(sent.Text, "VENCIDO") {
		t.Errorf("Text body missing overdue marker")
	}

	if queue.jobs[job.ID].Status != entity.EmailStatusSent {
		t.Errorf("job status = %q, want sent", queue.jobs[job.ID].Status)
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	queue := newFakeQueue()
	job := queueReminder(t, queue)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 service unavailable"), false)
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	got := queue.jobs[job.ID]
	if got.Status != entity.EmailStatusPending {
		t.Errorf("status = %q, want pending for retry", got.Status)
	}
	if got.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", got.Attempts)
	}
}

func TestWorkerFailsPermanentlyOnBadRecipient(t *testing.T) {
	queue := newFakeQueue()
	job := queueReminder(t, queue)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation error"), true)
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	got := queue.jobs[job.ID]
	if got.Status != entity.EmailStatusFailed {
		t.Errorf("status = %q, want failed", got.Status)
	}
}

func TestWorkerRejectsUnknownTemplate(t *testing.T) {
	queue := newFakeQueue()
	job := entity.NewEmailJob("newsletter", "dueña@pyme.cl", "", "Hola", nil)
	queue.jobs[job.ID] = job
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	if queue.jobs[job.ID].Status != entity.EmailStatusFailed {
		t.Errorf("status = %q, want failed for unknown template", queue.jobs[job.ID].Status)
	}
	if len(sender.SentEmails) != 0 {
		t.Errorf("sent = %d emails, want 0", len(sender.SentEmails))
	}
}
