package dto

import (
	"time"

	"github.com/finova/backend/internal/application/usecase/report"
)

// ReportResponse represents the generated monthly report.
type ReportResponse struct {
	Markdown    string              `json:"markdown"`
	Score       HealthScoreResponse `json:"score"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// EmailReportRequest represents the request body for queueing a report email.
type EmailReportRequest struct {
	To string `json:"to" binding:"required,email"`
}

// EmailReportResponse represents the response for queueing a report email.
type EmailReportResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// ToReportResponse converts a GenerateReportOutput to a ReportResponse DTO.
func ToReportResponse(output *report.GenerateReportOutput) ReportResponse {
	return ReportResponse{
		Markdown:    output.Markdown,
		Score:       ToHealthScoreResponse(output.Score),
		GeneratedAt: output.GeneratedAt,
	}
}
