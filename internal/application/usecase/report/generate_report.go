// Package report builds the monthly financial report and queues its delivery.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/application/usecase/dashboard"
	"github.com/finova/backend/internal/application/usecase/health"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// GenerateReportInput represents the input for generating the monthly report.
type GenerateReportInput struct {
	SessionID uuid.UUID
}

// GenerateReportOutput represents the output of generating the monthly report.
type GenerateReportOutput struct {
	Markdown    string
	Score       *entity.HealthScore
	GeneratedAt time.Time
}

// GenerateReportUseCase renders the session's finances as a markdown
// report: profile summary, health score, spending breakdown and feedback.
type GenerateReportUseCase struct {
	sessionRepo adapter.SessionRepository
	calculator  *health.Calculator
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(sessionRepo adapter.SessionRepository, calculator *health.Calculator) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		sessionRepo: sessionRepo,
		calculator:  calculator,
	}
}

// Execute renders the report. A profile must have been saved first.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Profile == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportNeedsProfile,
			"save a profile before requesting a report",
			domainerror.ErrReportNeedsProfile,
		)
	}

	now := time.Now().UTC()
	score := uc.calculator.Compute(sess.Profile, sess.Expenses)

	return &GenerateReportOutput{
		Markdown:    renderMarkdown(sess, score, now),
		Score:       score,
		GeneratedAt: now,
	}, nil
}

func renderMarkdown(sess *entity.Session, score *entity.HealthScore, now time.Time) string {
	p := sess.Profile

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Financial Report - %s\n\n", now.Format("January 2006"))

	fmt.Fprintf(&sb, "## Profile\n\n")
	if p.Name != "" {
		fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	}
	fmt.Fprintf(&sb, "- Annual income: %s\n", p.AnnualIncome.StringFixed(2))
	fmt.Fprintf(&sb, "- Savings balance: %s\n", p.SavingsBalance.StringFixed(2))
	fmt.Fprintf(&sb, "- Total debt: %s\n", p.DebtBalance.StringFixed(2))
	if len(p.Goals) > 0 {
		fmt.Fprintf(&sb, "- Goals: %s\n", strings.Join(p.Goals, ", "))
	}

	fmt.Fprintf(&sb, "\n## Financial Health Score: %d/100 (%s)\n\n", score.Total, score.Grade)
	fmt.Fprintf(&sb, "| Component | Points |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Emergency fund | %.1f/25 |\n", score.EmergencyFund)
	fmt.Fprintf(&sb, "| Savings rate | %.1f/25 |\n", score.SavingsRate)
	fmt.Fprintf(&sb, "| Budget discipline | %.1f/25 |\n", score.Budget)
	fmt.Fprintf(&sb, "| Goal diversity | %.1f/25 |\n", score.GoalDiversity)

	if slices := dashboard.BuildBreakdown(sess.Expenses); len(slices) > 0 {
		fmt.Fprintf(&sb, "\n## Monthly Spending\n\n")
		for _, s := range slices {
			fmt.Fprintf(&sb, "- %s: %.2f (%.1f%%)\n", s.Label, s.Amount, s.Percentage)
		}
	}

	if len(score.Feedback) > 0 {
		fmt.Fprintf(&sb, "\n## Recommendations\n\n")
		for _, line := range score.Feedback {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
	}

	return sb.String()
}
