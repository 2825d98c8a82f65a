package adapter

import (
	"context"

	"github.com/finova/backend/internal/domain/entity"
)

// SentimentResult is the outcome of a sentiment analysis call.
type SentimentResult struct {
	Sentiment entity.Sentiment
	Score     float64
}

// QAResult is the outcome of an extractive question answering call.
type QAResult struct {
	Answer string
	Score  float64
}

// InferenceService is the port to hosted inference endpoints. The advisor
// treats these as opaque request/response services; implementations carry
// the credential and model selection. A substitutable fake implementation
// backs the tests.
type InferenceService interface {
	// AnalyzeSentiment classifies the emotional polarity of the text.
	AnalyzeSentiment(ctx context.Context, text string) (*SentimentResult, error)

	// GenerateText produces a continuation for the prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Summarize condenses the text.
	Summarize(ctx context.Context, text string) (string, error)

	// AnswerQuestion extracts an answer span for the question from the context passage.
	AnswerQuestion(ctx context.Context, question, contextPassage string) (*QAResult, error)

	// IsAvailable reports whether the service is configured with a credential.
	IsAvailable() bool
}
