package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/application/usecase/advice"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
	saveErr  error
}

func newFakeSessionRepo(sessions ...*entity.Session) *fakeSessionRepo {
	repo := &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
	for _, s := range sessions {
		repo.sessions[s.ID] = s
	}
	return repo
}

func (r *fakeSessionRepo) Save(_ context.Context, session *entity.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	sess, ok := r.sessions[id]
	if !ok {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionNotFound,
			"session not found",
			domainerror.ErrSessionNotFound,
		)
	}
	return sess, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

type fakeInference struct {
	available    bool
	sentiment    entity.Sentiment
	sentimentErr error
	generated    string
	generatedErr error
	summary      string
	summaryErr   error
	answer       *adapter.QAResult
	answerErr    error
}

func (f *fakeInference) AnalyzeSentiment(context.Context, string) (*adapter.SentimentResult, error) {
	if f.sentimentErr != nil {
		return nil, f.sentimentErr
	}
	return &adapter.SentimentResult{Sentiment: f.sentiment, Score: 0.9}, nil
}

func (f *fakeInference) GenerateText(context.Context, string) (string, error) {
	if f.generatedErr != nil {
		return "", f.generatedErr
	}
	return f.generated, nil
}

func (f *fakeInference) Summarize(context.Context, string) (string, error) {
	if f.summaryErr != nil {
		return "", f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeInference) AnswerQuestion(context.Context, string, string) (*adapter.QAResult, error) {
	if f.answerErr != nil {
		return nil, f.answerErr
	}
	return f.answer, nil
}

func (f *fakeInference) IsAvailable() bool { return f.available }

// fakeInteractionLog collects records under a mutex; the interaction write
// runs on its own goroutine. recorded signals each write so tests can wait
// for it; blockUntil, when set, stalls writes until closed.
type fakeInteractionLog struct {
	mu         sync.Mutex
	records    []*entity.Interaction
	recorded   chan struct{}
	blockUntil chan struct{}
	err        error
}

func newFakeInteractionLog() *fakeInteractionLog {
	return &fakeInteractionLog{recorded: make(chan struct{}, 16)}
}

func (l *fakeInteractionLog) Record(_ context.Context, interaction *entity.Interaction) error {
	if l.blockUntil != nil {
		<-l.blockUntil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.records = append(l.records, interaction)

	select {
	case l.recorded <- struct{}{}:
	default:
	}
	return nil
}

func (l *fakeInteractionLog) CountByIntent(context.Context) (map[entity.Intent]int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := make(map[entity.Intent]int64)
	for _, rec := range l.records {
		counts[rec.Intent]++
	}
	return counts, nil
}

func (l *fakeInteractionLog) waitForRecord(t *testing.T) *entity.Interaction {
	t.Helper()
	select {
	case <-l.recorded:
	case <-time.After(2 * time.Second):
		t.Fatal("no interaction was recorded")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[len(l.records)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGenerator() *advice.Generator {
	return advice.NewGenerator(valueobject.AdvisorRules{
		EmergencyFundMonths:    6,
		TargetSavingsRate:      0.20,
		MaxDebtToIncomeRatio:   0.36,
		HighExpenseThreshold:   0.15,
		GoalCountForFullMarks:  5,
		DefaultBudgetThreshold: 0.10,
	})
}

func newSendMessageUseCase(repo *fakeSessionRepo, inference adapter.InferenceService, log *fakeInteractionLog) *SendMessageUseCase {
	return NewSendMessageUseCase(repo, inference, log, testGenerator(), 50, testLogger())
}

func TestSendMessageClassifiesAndReplies(t *testing.T) {
	sess := entity.NewSession()
	repo := newFakeSessionRepo(sess)
	log := &fakeInteractionLog{}
	uc := newSendMessageUseCase(repo, &fakeInference{available: true, sentiment: entity.SentimentNegative}, log)

	out, err := uc.Execute(context.Background(), SendMessageInput{
		SessionID: sess.ID,
		Message:   "I'm worried about my credit card debt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent != entity.IntentDebt {
		t.Errorf("Intent = %v, want %v", out.Intent, entity.IntentDebt)
	}
	if out.Sentiment != entity.SentimentNegative {
		t.Errorf("Sentiment = %v, want %v", out.Sentiment, entity.SentimentNegative)
	}
	if out.Reply == "" {
		t.Error("expected a non-empty reply")
	}
}

func TestSendMessageAppendsBothTurnsToTranscript(t *testing.T) {
	sess := entity.NewSession()
	repo := newFakeSessionRepo(sess)
	uc := newSendMessageUseCase(repo, &fakeInference{}, &fakeInteractionLog{})

	if _, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "How do I budget?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := repo.sessions[sess.ID]
	if len(saved.Transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(saved.Transcript))
	}
	if saved.Transcript[0].Role != entity.RoleUser || saved.Transcript[1].Role != entity.RoleAssistant {
		t.Errorf("transcript roles = %v, %v", saved.Transcript[0].Role, saved.Transcript[1].Role)
	}
	if saved.Transcript[0].Intent != entity.IntentBudgeting {
		t.Errorf("user turn intent = %v, want %v", saved.Transcript[0].Intent, entity.IntentBudgeting)
	}
}

func TestSendMessageFallsBackWhenSentimentModelFails(t *testing.T) {
	sess := entity.NewSession()
	repo := newFakeSessionRepo(sess)
	inference := &fakeInference{available: true, sentimentErr: errors.New("503 model loading")}
	uc := newSendMessageUseCase(repo, inference, &fakeInteractionLog{})

	out, err := uc.Execute(context.Background(), SendMessageInput{
		SessionID: sess.ID,
		Message:   "I'm stressed and worried about money",
	})
	if err != nil {
		t.Fatalf("model failure should not fail the pipeline: %v", err)
	}
	if out.Sentiment != entity.SentimentNegative {
		t.Errorf("fallback Sentiment = %v, want %v", out.Sentiment, entity.SentimentNegative)
	}
}

func TestSendMessageRejectsEmptyMessage(t *testing.T) {
	sess := entity.NewSession()
	uc := newSendMessageUseCase(newFakeSessionRepo(sess), &fakeInference{}, &fakeInteractionLog{})

	for _, message := range []string{"", "   ", "<>\"'&"} {
		_, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: message})
		if !errors.Is(err, domainerror.ErrEmptyMessage) {
			t.Errorf("message %q: error = %v, want ErrEmptyMessage", message, err)
		}
	}
}

func TestSendMessageSanitizesBeforeStoring(t *testing.T) {
	sess := entity.NewSession()
	repo := newFakeSessionRepo(sess)
	uc := newSendMessageUseCase(repo, &fakeInference{}, &fakeInteractionLog{})

	if _, err := uc.Execute(context.Background(), SendMessageInput{
		SessionID: sess.ID,
		Message:   `<script>how do I budget?</script>`,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.sessions[sess.ID].Transcript[0].Text
	if strings.ContainsAny(stored, `<>"'&`) {
		t.Errorf("stored message still contains stripped characters: %q", stored)
	}
}

func TestSendMessageRecordsMaskedInteraction(t *testing.T) {
	sess := entity.NewSession()
	sess.Profile = &entity.Profile{UserType: entity.UserTypeStudent, Goals: []string{"retirement"}}
	log := newFakeInteractionLog()
	uc := newSendMessageUseCase(newFakeSessionRepo(sess), &fakeInference{}, log)

	if _, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "tax question"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := log.waitForRecord(t)
	if rec.MaskedSessionID != sess.MaskedID() {
		t.Errorf("MaskedSessionID = %q, want %q", rec.MaskedSessionID, sess.MaskedID())
	}
	if strings.Contains(rec.MaskedSessionID, sess.ID.String()) {
		t.Error("interaction record leaks the full session ID")
	}
	if rec.UserType != entity.UserTypeStudent {
		t.Errorf("UserType = %v, want student", rec.UserType)
	}
}

func TestSendMessageToleratesInteractionLogFailure(t *testing.T) {
	sess := entity.NewSession()
	log := &fakeInteractionLog{err: errors.New("db down")}
	uc := newSendMessageUseCase(newFakeSessionRepo(sess), &fakeInference{}, log)

	if _, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "budget help"}); err != nil {
		t.Fatalf("interaction log failure should not fail the pipeline: %v", err)
	}
}

func TestSendMessageAugmentsAdviceWithGenerationModel(t *testing.T) {
	sess := entity.NewSession()
	repo := newFakeSessionRepo(sess)
	inference := &fakeInference{
		available: true,
		sentiment: entity.SentimentNeutral,
		generated: "Review your subscriptions once a quarter.",
	}
	uc := newSendMessageUseCase(repo, inference, &fakeInteractionLog{})

	out, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "How do I budget?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.Reply, "50/30/20") {
		t.Errorf("reply lost the rule-based advice: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "Review your subscriptions once a quarter.") {
		t.Errorf("reply missing the generated addition: %q", out.Reply)
	}
}

func TestSendMessageKeepsRuleAdviceWhenGenerationFails(t *testing.T) {
	sess := entity.NewSession()
	inference := &fakeInference{
		available:    true,
		sentiment:    entity.SentimentNeutral,
		generatedErr: errors.New("503 model loading"),
	}
	uc := newSendMessageUseCase(newFakeSessionRepo(sess), inference, &fakeInteractionLog{})

	out, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "How do I budget?"})
	if err != nil {
		t.Fatalf("generation failure should not fail the pipeline: %v", err)
	}
	if !strings.Contains(out.Reply, "50/30/20") {
		t.Errorf("reply lost the rule-based advice: %q", out.Reply)
	}
}

func TestSendMessageDoesNotWaitForInteractionLog(t *testing.T) {
	sess := entity.NewSession()
	release := make(chan struct{})
	log := newFakeInteractionLog()
	log.blockUntil = release
	uc := newSendMessageUseCase(newFakeSessionRepo(sess), &fakeInference{}, log)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "budget help"})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reply blocked on the interaction log write")
	}

	close(release)
	log.waitForRecord(t)
}

func TestSendMessageTruncatesTranscript(t *testing.T) {
	sess := entity.NewSession()
	repo := newFakeSessionRepo(sess)
	uc := NewSendMessageUseCase(repo, &fakeInference{}, &fakeInteractionLog{}, testGenerator(), 6, testLogger())

	for i := 0; i < 10; i++ {
		if _, err := uc.Execute(context.Background(), SendMessageInput{SessionID: sess.ID, Message: "budget help"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := len(repo.sessions[sess.ID].Transcript); got != 6 {
		t.Errorf("transcript length = %d, want 6", got)
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	uc := newSendMessageUseCase(newFakeSessionRepo(), &fakeInference{}, &fakeInteractionLog{})

	_, err := uc.Execute(context.Background(), SendMessageInput{SessionID: uuid.New(), Message: "hello budget"})
	if !errors.Is(err, domainerror.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}
