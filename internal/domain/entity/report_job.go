package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportJobStatus represents the lifecycle state of a queued report email.
type ReportJobStatus string

const (
	ReportJobPending ReportJobStatus = "pending"
	ReportJobSent    ReportJobStatus = "sent"
	ReportJobFailed  ReportJobStatus = "failed"
)

// ReportJob is a queued monthly-report email. The report body is rendered
// at queue time because the session that produced it may be gone by the
// time the worker picks the job up.
type ReportJob struct {
	ID             uuid.UUID
	SessionID      string // masked session id, for the log trail only
	To             string
	Subject        string
	ReportMarkdown string
	Status         ReportJobStatus
	Attempts       int
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	SentAt         *time.Time
}

// NewReportJob creates a pending report email job.
func NewReportJob(maskedSessionID, to, subject, reportMarkdown string) *ReportJob {
	now := time.Now().UTC()

	return &ReportJob{
		ID:             uuid.New(),
		SessionID:      maskedSessionID,
		To:             to,
		Subject:        subject,
		ReportMarkdown: reportMarkdown,
		Status:         ReportJobPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MarkSent transitions the job to sent.
func (j *ReportJob) MarkSent() {
	now := time.Now().UTC()
	j.Status = ReportJobSent
	j.SentAt = &now
	j.UpdatedAt = now
}

// MarkFailed records a failed attempt. The job stays pending until
// maxAttempts is reached, after which it is failed permanently.
func (j *ReportJob) MarkFailed(errMsg string, maxAttempts int) {
	j.Attempts++
	j.LastError = errMsg
	j.UpdatedAt = time.Now().UTC()
	if j.Attempts >= maxAttempts {
		j.Status = ReportJobFailed
	}
}
