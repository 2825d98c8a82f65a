package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

// AnswerQuestionInput represents the input for extractive question answering.
type AnswerQuestionInput struct {
	SessionID uuid.UUID
	Question  string
}

// AnswerQuestionOutput represents the output of extractive question answering.
type AnswerQuestionOutput struct {
	Answer     string
	Confidence float64
}

// AnswerQuestionUseCase answers a question against the session's own
// financial figures using the hosted extractive QA model. Unlike the chat
// pipeline this operation has no fallback: without a configured model the
// caller gets a not-configured error.
type AnswerQuestionUseCase struct {
	sessionRepo adapter.SessionRepository
	inference   adapter.InferenceService
}

// NewAnswerQuestionUseCase creates a new AnswerQuestionUseCase instance.
func NewAnswerQuestionUseCase(sessionRepo adapter.SessionRepository, inference adapter.InferenceService) *AnswerQuestionUseCase {
	return &AnswerQuestionUseCase{
		sessionRepo: sessionRepo,
		inference:   inference,
	}
}

// Execute extracts an answer span from the profile context passage.
func (uc *AnswerQuestionUseCase) Execute(ctx context.Context, input AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	question := valueobject.SanitizeText(input.Question)
	if question == "" {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyMessage,
			"question is empty after sanitization",
			domainerror.ErrEmptyMessage,
		)
	}

	if uc.inference == nil || !uc.inference.IsAvailable() {
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceNotConfigured,
			"question answering requires a configured inference credential",
			false,
			domainerror.ErrInferenceNotConfigured,
		)
	}

	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := uc.inference.AnswerQuestion(ctx, question, profilePassage(sess))
	if err != nil {
		return nil, err
	}
	if result.Answer == "" {
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeEmptyResponse,
			"the model returned no answer span",
			true,
			domainerror.ErrEmptyInferenceResponse,
		)
	}

	return &AnswerQuestionOutput{
		Answer:     result.Answer,
		Confidence: result.Score,
	}, nil
}

// profilePassage renders the session's figures as the context passage for
// extractive QA. Questions about data the user never entered naturally get
// low-confidence answers.
func profilePassage(sess *entity.Session) string {
	var sb strings.Builder
	sb.WriteString("This is a personal finance profile. ")

	if p := sess.Profile; p != nil {
		if p.Name != "" {
			fmt.Fprintf(&sb, "The user's name is %s. ", p.Name)
		}
		if p.Age > 0 {
			fmt.Fprintf(&sb, "They are %d years old. ", p.Age)
		}
		fmt.Fprintf(&sb, "Annual income is %s. ", p.AnnualIncome.StringFixed(2))
		fmt.Fprintf(&sb, "Savings balance is %s. ", p.SavingsBalance.StringFixed(2))
		fmt.Fprintf(&sb, "Total debt is %s. ", p.DebtBalance.StringFixed(2))
		fmt.Fprintf(&sb, "Declared monthly expenses are %s. ", p.MonthlyExpenses.StringFixed(2))
		if len(p.Goals) > 0 {
			fmt.Fprintf(&sb, "Financial goals: %s. ", strings.Join(p.Goals, ", "))
		}
	}

	if len(sess.Expenses) > 0 {
		fmt.Fprintf(&sb, "Recorded monthly spending totals %s. ", entity.TotalExpenses(sess.Expenses).StringFixed(2))
		for category, amount := range entity.ExpensesByCategory(sess.Expenses) {
			fmt.Fprintf(&sb, "%s spending is %s. ", category, amount.StringFixed(2))
		}
	}

	return sb.String()
}
