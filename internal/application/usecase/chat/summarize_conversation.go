package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// SummarizeConversationInput represents the input for summarizing the conversation.
type SummarizeConversationInput struct {
	SessionID uuid.UUID
}

// SummarizeConversationOutput represents the output of summarizing the conversation.
type SummarizeConversationOutput struct {
	Summary   string
	TurnCount int
	// ModelBacked reports whether the summary came from the hosted model
	// rather than the topic fallback.
	ModelBacked bool
}

// SummarizeConversationUseCase condenses the session transcript. The hosted
// summarization model is preferred; without it the summary lists the topics
// discussed.
type SummarizeConversationUseCase struct {
	sessionRepo adapter.SessionRepository
	inference   adapter.InferenceService
	logger      *slog.Logger
}

// NewSummarizeConversationUseCase creates a new SummarizeConversationUseCase instance.
func NewSummarizeConversationUseCase(sessionRepo adapter.SessionRepository, inference adapter.InferenceService, logger *slog.Logger) *SummarizeConversationUseCase {
	return &SummarizeConversationUseCase{
		sessionRepo: sessionRepo,
		inference:   inference,
		logger:      logger,
	}
}

// Execute summarizes the transcript. At least one turn must exist.
func (uc *SummarizeConversationUseCase) Execute(ctx context.Context, input SummarizeConversationInput) (*SummarizeConversationOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if len(sess.Transcript) == 0 {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyTranscript,
			"nothing to summarize yet",
			domainerror.ErrEmptyTranscript,
		)
	}

	if uc.inference != nil && uc.inference.IsAvailable() {
		summary, err := uc.inference.Summarize(ctx, renderTranscript(sess.Transcript))
		if err == nil && summary != "" {
			return &SummarizeConversationOutput{
				Summary:     summary,
				TurnCount:   len(sess.Transcript),
				ModelBacked: true,
			}, nil
		}
		if err != nil {
			uc.logger.WarnContext(ctx, "summarization model unavailable, using topic fallback",
				slog.String("error", err.Error()))
		}
	}

	return &SummarizeConversationOutput{
		Summary:   topicSummary(sess.Transcript),
		TurnCount: len(sess.Transcript),
	}, nil
}

// renderTranscript flattens the transcript into the plain-text form the
// summarization model expects.
func renderTranscript(transcript []entity.ChatTurn) string {
	var sb strings.Builder
	for _, turn := range transcript {
		sb.WriteString(string(turn.Role))
		sb.WriteString(": ")
		sb.WriteString(turn.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// topicSummary lists the distinct intents seen on user turns, in first-seen
// order.
func topicSummary(transcript []entity.ChatTurn) string {
	seen := make(map[entity.Intent]struct{})
	var topics []string
	for _, turn := range transcript {
		if turn.Role != entity.RoleUser || turn.Intent == "" {
			continue
		}
		if _, ok := seen[turn.Intent]; ok {
			continue
		}
		seen[turn.Intent] = struct{}{}
		topics = append(topics, string(turn.Intent))
	}

	if len(topics) == 0 {
		return "We haven't discussed any specific financial topics yet."
	}
	return fmt.Sprintf("So far we've discussed: %s.", strings.Join(topics, ", "))
}
