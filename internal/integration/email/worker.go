package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/email/templates"
)

// Worker polls the report queue and delivers queued report emails.
type Worker struct {
	queue        adapter.ReportQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
	maxAttempts  int
}

// WorkerConfig holds configuration for the report email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
	}
}

// NewWorker creates a new report email worker.
func NewWorker(queue adapter.ReportQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		maxAttempts:  config.MaxAttempts,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Report email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Report email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending jobs.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending report jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing report email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob renders and delivers a single report email.
func (w *Worker) processJob(ctx context.Context, job *entity.ReportJob) {
	logger := slog.With(
		"job_id", job.ID,
		"session", job.SessionID,
	)

	html, text, err := w.renderer.Render("monthly_report", templates.MonthlyReportData{
		Subject:        job.Subject,
		ReportMarkdown: job.ReportMarkdown,
	})
	if err != nil {
		logger.Error("Failed to render report email", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.To,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send report email", "error", err)

		var reportErr *domainerror.ReportError
		isPermanent := errors.As(err, &reportErr) && reportErr.Code == domainerror.ErrCodePermanentEmailFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Report email sent", "provider_id", result.ProviderID)
}

// handleFailure records the failed attempt. Permanent failures exhaust the
// job immediately; temporary ones stay pending until maxAttempts.
func (w *Worker) handleFailure(ctx context.Context, job *entity.ReportJob, err error, permanent bool) {
	attempts := w.maxAttempts
	if permanent {
		attempts = job.Attempts + 1
	}
	job.MarkFailed(err.Error(), attempts)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.ReportJobFailed {
		slog.Warn("Report email permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Report email scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
		)
	}
}

// ProcessNow processes all pending jobs immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
