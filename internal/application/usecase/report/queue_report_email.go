package report

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// QueueReportEmailInput represents the input for queueing a report email.
type QueueReportEmailInput struct {
	SessionID uuid.UUID
	To        string
}

// QueueReportEmailOutput represents the output of queueing a report email.
type QueueReportEmailOutput struct {
	JobID uuid.UUID
}

// QueueReportEmailUseCase renders the report and enqueues it for the email
// worker. The endpoint returns as soon as the job is stored; delivery is
// asynchronous.
type QueueReportEmailUseCase struct {
	generateReport *GenerateReportUseCase
	sessionRepo    adapter.SessionRepository
	queue          adapter.ReportQueueRepository
}

// NewQueueReportEmailUseCase creates a new QueueReportEmailUseCase instance.
func NewQueueReportEmailUseCase(
	generateReport *GenerateReportUseCase,
	sessionRepo adapter.SessionRepository,
	queue adapter.ReportQueueRepository,
) *QueueReportEmailUseCase {
	return &QueueReportEmailUseCase{
		generateReport: generateReport,
		sessionRepo:    sessionRepo,
		queue:          queue,
	}
}

// Execute validates the recipient, renders the report and stores the job.
func (uc *QueueReportEmailUseCase) Execute(ctx context.Context, input QueueReportEmailInput) (*QueueReportEmailOutput, error) {
	if _, err := mail.ParseAddress(input.To); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidRecipient,
			fmt.Sprintf("%q is not a valid email address", input.To),
			domainerror.ErrInvalidRecipient,
		)
	}

	generated, err := uc.generateReport.Execute(ctx, GenerateReportInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Your Financial Report - %s", time.Now().UTC().Format("January 2006"))
	job := entity.NewReportJob(sess.MaskedID(), input.To, subject, generated.Markdown)

	if err := uc.queue.Enqueue(ctx, job); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeQueueFailure,
			"failed to enqueue report email",
			err,
		)
	}

	return &QueueReportEmailOutput{
		JobID: job.ID,
	}, nil
}
