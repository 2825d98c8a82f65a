package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// GeminiService implements the InferenceService using Google Gemini. It is
// the alternative provider for deployments without a Hugging Face
// credential; every task is expressed as a prompt against one chat model.
type GeminiService struct {
	apiKey    string
	modelName string
}

const defaultGeminiModel = "gemini-2.5-flash-lite"

// NewGeminiService creates a new Gemini service instance. An empty model
// name selects the default model.
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: model,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// AnalyzeSentiment classifies the emotional polarity of the text.
func (s *GeminiService) AnalyzeSentiment(ctx context.Context, text string) (*adapter.SentimentResult, error) {
	prompt := fmt.Sprintf(
		"Classify the sentiment of the following message as exactly one word: POSITIVE, NEUTRAL or NEGATIVE.\n\nMessage: %s",
		text)

	answer, err := s.generate(ctx, prompt, 0)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.Contains(answer, "NEGATIVE"):
		return &adapter.SentimentResult{Sentiment: entity.SentimentNegative, Score: 1}, nil
	case strings.Contains(answer, "POSITIVE"):
		return &adapter.SentimentResult{Sentiment: entity.SentimentPositive, Score: 1}, nil
	default:
		return &adapter.SentimentResult{Sentiment: entity.SentimentNeutral, Score: 1}, nil
	}
}

// GenerateText produces a continuation for the prompt.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, 0.7)
}

// Summarize condenses the text.
func (s *GeminiService) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following conversation between a user and a financial advisor in at most three sentences.\n\n%s",
		text)
	return s.generate(ctx, prompt, 0.3)
}

// AnswerQuestion extracts an answer span for the question from the context passage.
func (s *GeminiService) AnswerQuestion(ctx context.Context, question, contextPassage string) (*adapter.QAResult, error) {
	prompt := fmt.Sprintf(
		"Answer the question using only the context below. Answer with the shortest exact phrase from the context; if the context does not contain the answer, answer UNKNOWN.\n\nContext: %s\n\nQuestion: %s",
		contextPassage, question)

	answer, err := s.generate(ctx, prompt, 0)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(answer, "UNKNOWN") {
		return &adapter.QAResult{}, nil
	}
	return &adapter.QAResult{Answer: answer, Score: 1}, nil
}

// generate runs one prompt through the model.
func (s *GeminiService) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceNotConfigured,
			"no inference credential configured",
			false,
			domainerror.ErrInferenceNotConfigured,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceFailed,
			"gemini request failed",
			true,
			err,
		)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerror.NewInferenceError(
			domainerror.ErrCodeEmptyResponse,
			"gemini answered with no candidates",
			true,
			domainerror.ErrEmptyInferenceResponse,
		)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", domainerror.NewInferenceError(
			domainerror.ErrCodeEmptyResponse,
			"gemini answered with no text content",
			true,
			domainerror.ErrEmptyInferenceResponse,
		)
	}
	return answer, nil
}
