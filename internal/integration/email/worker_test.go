package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/domain/entity"
	"github.com/finova/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	jobs map[uuid.UUID]*entity.ReportJob
}

func newMemoryQueue(jobs ...*entity.ReportJob) *memoryQueue {
	q := &memoryQueue{jobs: make(map[uuid.UUID]*entity.ReportJob)}
	for _, job := range jobs {
		q.jobs[job.ID] = job
	}
	return q
}

func (q *memoryQueue) Enqueue(_ context.Context, job *entity.ReportJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.ReportJob, error) {
	var pending []*entity.ReportJob
	for _, job := range q.jobs {
		if job.Status == entity.ReportJobPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.ReportJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) FindByID(_ context.Context, id uuid.UUID) (*entity.ReportJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return job, nil
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, WorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
	})
}

func TestWorkerDeliversPendingJob(t *testing.T) {
	job := entity.NewReportJob("abcd1234****", "alex@example.com", "Your Financial Report - August 2026", "# Financial Report\n\nScore: 75/100")
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.ReportJobSent {
		t.Fatalf("Status = %v, want sent", job.Status)
	}
	if job.SentAt == nil {
		t.Error("SentAt should be stamped")
	}
	if len(sender.SentEmails) != 1 {
		t.Fatalf("sent = %d, want 1", len(sender.SentEmails))
	}

	sent := sender.SentEmails[0]
	if sent.To != "alex@example.com" {
		t.Errorf("To = %q", sent.To)
	}
	if !strings.Contains(sent.HTML, "Score: 75/100") {
		t.Error("HTML body should carry the report content")
	}
	if !strings.Contains(sent.Text, "Score: 75/100") {
		t.Error("text body should carry the report content")
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	job := entity.NewReportJob("abcd1234****", "alex@example.com", "Report", "# Report")
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 upstream"), false)
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	if job.Status != entity.ReportJobPending {
		t.Fatalf("Status = %v, want pending after one temporary failure", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", job.Attempts)
	}

	// The next pass after the provider recovers delivers the job.
	sender.ClearFailure()
	worker.ProcessNow(context.Background())
	if job.Status != entity.ReportJobSent {
		t.Errorf("Status = %v, want sent after retry", job.Status)
	}
}

func TestWorkerExhaustsTemporaryFailures(t *testing.T) {
	job := entity.NewReportJob("abcd1234****", "alex@example.com", "Report", "# Report")
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 upstream"), false)
	worker := newTestWorker(t, queue, sender)

	for i := 0; i < 3; i++ {
		worker.ProcessNow(context.Background())
	}

	if job.Status != entity.ReportJobFailed {
		t.Errorf("Status = %v, want failed after three attempts", job.Status)
	}
	if job.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", job.Attempts)
	}
}

func TestWorkerFailsPermanentErrorImmediately(t *testing.T) {
	job := entity.NewReportJob("abcd1234****", "alex@example.com", "Report", "# Report")
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation"), true)

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.ReportJobFailed {
		t.Errorf("Status = %v, want failed on a permanent error", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", job.Attempts)
	}
	if job.LastError == "" {
		t.Error("LastError should record the failure")
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("401 unauthorized"), true},
		{errors.New("403 Forbidden"), true},
		{errors.New("422 validation failed"), true},
		{errors.New("429 rate limited"), false},
		{errors.New("500 internal server error"), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.want {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
