package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

func sessionWithTranscript(turns ...entity.ChatTurn) *entity.Session {
	sess := entity.NewSession()
	sess.Transcript = turns
	return sess
}

func userTurn(text string, intent entity.Intent) entity.ChatTurn {
	turn := entity.NewChatTurn(entity.RoleUser, text)
	turn.Intent = intent
	return turn
}

func TestSummarizeConversationUsesModel(t *testing.T) {
	sess := sessionWithTranscript(
		userTurn("How do I budget?", entity.IntentBudgeting),
		entity.NewChatTurn(entity.RoleAssistant, "Try the 50/30/20 rule."),
	)
	inference := &fakeInference{available: true, summary: "The user asked about budgeting basics."}
	uc := NewSummarizeConversationUseCase(newFakeSessionRepo(sess), inference, testLogger())

	out, err := uc.Execute(context.Background(), SummarizeConversationInput{SessionID: sess.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.ModelBacked {
		t.Error("expected a model-backed summary")
	}
	if out.Summary != "The user asked about budgeting basics." {
		t.Errorf("Summary = %q", out.Summary)
	}
	if out.TurnCount != 2 {
		t.Errorf("TurnCount = %d, want 2", out.TurnCount)
	}
}

func TestSummarizeConversationFallsBackToTopics(t *testing.T) {
	sess := sessionWithTranscript(
		userTurn("How do I budget?", entity.IntentBudgeting),
		entity.NewChatTurn(entity.RoleAssistant, "Try the 50/30/20 rule."),
		userTurn("And my 401k?", entity.IntentRetirement),
		entity.NewChatTurn(entity.RoleAssistant, "Contribute to the match."),
	)
	inference := &fakeInference{available: true, summaryErr: errors.New("503 model loading")}
	uc := NewSummarizeConversationUseCase(newFakeSessionRepo(sess), inference, testLogger())

	out, err := uc.Execute(context.Background(), SummarizeConversationInput{SessionID: sess.ID})
	if err != nil {
		t.Fatalf("model failure should fall back, not error: %v", err)
	}
	if out.ModelBacked {
		t.Error("expected the topic fallback, not a model summary")
	}
	for _, topic := range []string{"budgeting", "retirement"} {
		if !strings.Contains(out.Summary, topic) {
			t.Errorf("Summary %q should mention %q", out.Summary, topic)
		}
	}
}

func TestSummarizeConversationEmptyTranscript(t *testing.T) {
	sess := entity.NewSession()
	uc := NewSummarizeConversationUseCase(newFakeSessionRepo(sess), &fakeInference{}, testLogger())

	_, err := uc.Execute(context.Background(), SummarizeConversationInput{SessionID: sess.ID})
	if !errors.Is(err, domainerror.ErrEmptyTranscript) {
		t.Errorf("error = %v, want ErrEmptyTranscript", err)
	}
}

func TestAnswerQuestionReturnsSpan(t *testing.T) {
	sess := entity.NewSession()
	sess.Profile = &entity.Profile{Name: "Alex"}
	inference := &fakeInference{available: true, answer: &adapter.QAResult{Answer: "Alex", Score: 0.92}}
	uc := NewAnswerQuestionUseCase(newFakeSessionRepo(sess), inference)

	out, err := uc.Execute(context.Background(), AnswerQuestionInput{SessionID: sess.ID, Question: "What is my name?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Answer != "Alex" || out.Confidence != 0.92 {
		t.Errorf("out = %+v", out)
	}
}

func TestAnswerQuestionRequiresConfiguredInference(t *testing.T) {
	sess := entity.NewSession()
	uc := NewAnswerQuestionUseCase(newFakeSessionRepo(sess), &fakeInference{available: false})

	_, err := uc.Execute(context.Background(), AnswerQuestionInput{SessionID: sess.ID, Question: "What is my name?"})
	if !errors.Is(err, domainerror.ErrInferenceNotConfigured) {
		t.Errorf("error = %v, want ErrInferenceNotConfigured", err)
	}
}

func TestAnswerQuestionEmptyAnswerIsAnError(t *testing.T) {
	sess := entity.NewSession()
	inference := &fakeInference{available: true, answer: &adapter.QAResult{}}
	uc := NewAnswerQuestionUseCase(newFakeSessionRepo(sess), inference)

	_, err := uc.Execute(context.Background(), AnswerQuestionInput{SessionID: sess.ID, Question: "What is my name?"})
	if !errors.Is(err, domainerror.ErrEmptyInferenceResponse) {
		t.Errorf("error = %v, want ErrEmptyInferenceResponse", err)
	}
}

func TestAnswerQuestionRejectsEmptyQuestion(t *testing.T) {
	sess := entity.NewSession()
	uc := NewAnswerQuestionUseCase(newFakeSessionRepo(sess), &fakeInference{available: true})

	_, err := uc.Execute(context.Background(), AnswerQuestionInput{SessionID: sess.ID, Question: "  "})
	if !errors.Is(err, domainerror.ErrEmptyMessage) {
		t.Errorf("error = %v, want ErrEmptyMessage", err)
	}
}
