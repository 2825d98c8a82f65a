// Package chat contains the conversational pipeline use cases.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/application/usecase/advice"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

// interactionLogTimeout bounds the detached analytics write.
const interactionLogTimeout = 5 * time.Second

// SendMessageInput represents the input for sending a chat message.
type SendMessageInput struct {
	SessionID uuid.UUID
	Message   string
}

// SendMessageOutput represents the output of sending a chat message.
type SendMessageOutput struct {
	Reply     string
	Intent    entity.Intent
	Sentiment entity.Sentiment
	Tips      []string
}

// SendMessageUseCase runs the chat pipeline: sanitize, classify sentiment
// and intent, generate advice, update the transcript and record the
// interaction. Hosted inference failures degrade to keyword fallbacks; the
// pipeline never fails because a model was unreachable.
type SendMessageUseCase struct {
	sessionRepo    adapter.SessionRepository
	inference      adapter.InferenceService
	interactionLog adapter.InteractionLogRepository
	generator      *advice.Generator
	maxTurns       int
	logger         *slog.Logger
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(
	sessionRepo adapter.SessionRepository,
	inference adapter.InferenceService,
	interactionLog adapter.InteractionLogRepository,
	generator *advice.Generator,
	maxTurns int,
	logger *slog.Logger,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		sessionRepo:    sessionRepo,
		inference:      inference,
		interactionLog: interactionLog,
		generator:      generator,
		maxTurns:       maxTurns,
		logger:         logger,
	}
}

// Execute processes one user message and returns the advisor's reply.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	message := valueobject.SanitizeText(input.Message)
	if message == "" {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyMessage,
			"message is empty after sanitization",
			domainerror.ErrEmptyMessage,
		)
	}

	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	sentiment := uc.classifySentiment(ctx, message)
	intent := advice.ClassifyIntent(message)
	generated := uc.generator.Generate(intent, sentiment, sess.Profile, sess.Expenses)
	generated.Text = uc.augmentAdvice(ctx, generated.Text, message, intent)
	reply := composeReply(generated)

	userTurn := entity.NewChatTurn(entity.RoleUser, message)
	userTurn.Intent = intent
	userTurn.Sentiment = sentiment
	sess.Transcript = entity.AppendTurn(sess.Transcript, userTurn, uc.maxTurns)
	sess.Transcript = entity.AppendTurn(sess.Transcript, entity.NewChatTurn(entity.RoleAssistant, reply), uc.maxTurns)
	sess.Touch()

	if err := uc.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	uc.recordInteraction(sess, intent, sentiment)

	return &SendMessageOutput{
		Reply:     reply,
		Intent:    intent,
		Sentiment: sentiment,
		Tips:      generated.Tips,
	}, nil
}

// classifySentiment prefers the hosted model and falls back to keyword
// classification on any failure.
func (uc *SendMessageUseCase) classifySentiment(ctx context.Context, message string) entity.Sentiment {
	if uc.inference == nil || !uc.inference.IsAvailable() {
		return advice.FallbackSentiment(message)
	}

	result, err := uc.inference.AnalyzeSentiment(ctx, message)
	if err != nil {
		uc.logger.WarnContext(ctx, "sentiment model unavailable, using keyword fallback",
			slog.String("error", err.Error()))
		return advice.FallbackSentiment(message)
	}
	return result.Sentiment
}

// augmentAdvice runs a single generation-model pass over the rule-based
// advice when a provider is configured. Any failure or empty answer keeps
// the rule-based text.
func (uc *SendMessageUseCase) augmentAdvice(ctx context.Context, text, message string, intent entity.Intent) string {
	if uc.inference == nil || !uc.inference.IsAvailable() {
		return text
	}

	prompt := fmt.Sprintf(
		"You are a personal finance advisor. The user asked about %s: %q\nBase advice: %s\nAdd one short paragraph building on the base advice without contradicting it.",
		intent, message, text)

	addition, err := uc.inference.GenerateText(ctx, prompt)
	if err != nil {
		uc.logger.WarnContext(ctx, "generation model unavailable, keeping rule-based advice",
			slog.String("error", err.Error()))
		return text
	}

	addition = strings.TrimSpace(addition)
	if addition == "" {
		return text
	}
	return text + "\n\n" + addition
}

// recordInteraction dispatches the masked analytics record off the request
// path. Failures are logged and swallowed; a slow log store never delays
// or fails a reply.
func (uc *SendMessageUseCase) recordInteraction(sess *entity.Session, intent entity.Intent, sentiment entity.Sentiment) {
	if uc.interactionLog == nil {
		return
	}

	var userType entity.UserType
	var goals []string
	if sess.Profile != nil {
		userType = sess.Profile.UserType
		goals = append(goals, sess.Profile.Goals...)
	}

	interaction := entity.NewInteraction(sess.MaskedID(), intent, sentiment, userType, goals)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), interactionLogTimeout)
		defer cancel()

		if err := uc.interactionLog.Record(ctx, interaction); err != nil {
			uc.logger.Warn("failed to record interaction",
				slog.String("error", err.Error()))
		}
	}()
}

// composeReply renders the advice text with its tips as a bulleted block.
func composeReply(generated advice.Advice) string {
	if len(generated.Tips) == 0 {
		return generated.Text
	}

	var sb strings.Builder
	sb.WriteString(generated.Text)
	sb.WriteString("\n")
	for _, tip := range generated.Tips {
		sb.WriteString("\n- ")
		sb.WriteString(tip)
	}
	return sb.String()
}
