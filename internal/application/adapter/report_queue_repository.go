package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/domain/entity"
)

// ReportQueueRepository persists queued report emails for the worker.
type ReportQueueRepository interface {
	// Enqueue stores a new pending job.
	Enqueue(ctx context.Context, job *entity.ReportJob) error

	// GetPendingJobs returns up to limit pending jobs, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReportJob, error)

	// Update persists job state changes (status, attempts, timestamps).
	Update(ctx context.Context, job *entity.ReportJob) error

	// FindByID retrieves a job by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReportJob, error)
}
