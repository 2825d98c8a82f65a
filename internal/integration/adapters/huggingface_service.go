// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// HuggingFaceModels selects the hosted model per inference task.
type HuggingFaceModels struct {
	Sentiment     string
	Generation    string
	Summarization string
	QA            string
}

// HuggingFaceService implements the InferenceService against the Hugging
// Face hosted inference API. Every call is one HTTP POST; the service holds
// no per-session state.
type HuggingFaceService struct {
	apiKey  string
	baseURL string
	models  HuggingFaceModels
	client  *http.Client
}

// NewHuggingFaceService creates a new Hugging Face service instance. The
// base URL is the bare API host; a trailing "/models" segment is stripped
// because post appends it per request.
func NewHuggingFaceService(apiKey, baseURL string, models HuggingFaceModels, timeout time.Duration) *HuggingFaceService {
	baseURL = strings.TrimSuffix(baseURL, "/")
	baseURL = strings.TrimSuffix(baseURL, "/models")
	return &HuggingFaceService{
		apiKey:  apiKey,
		baseURL: baseURL,
		models:  models,
		client:  &http.Client{Timeout: timeout},
	}
}

// IsAvailable checks if the service is configured with a credential.
func (s *HuggingFaceService) IsAvailable() bool {
	return s.apiKey != ""
}

// AnalyzeSentiment classifies the emotional polarity of the text.
func (s *HuggingFaceService) AnalyzeSentiment(ctx context.Context, text string) (*adapter.SentimentResult, error) {
	body, err := s.post(ctx, s.models.Sentiment, map[string]any{"inputs": text})
	if err != nil {
		return nil, err
	}
	return parseSentimentResponse(body)
}

// GenerateText produces a continuation for the prompt.
func (s *HuggingFaceService) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := s.post(ctx, s.models.Generation, map[string]any{
		"inputs":     prompt,
		"parameters": map[string]any{"max_new_tokens": 120, "return_full_text": false},
	})
	if err != nil {
		return "", err
	}
	return parseGenerationResponse(body)
}

// Summarize condenses the text.
func (s *HuggingFaceService) Summarize(ctx context.Context, text string) (string, error) {
	body, err := s.post(ctx, s.models.Summarization, map[string]any{"inputs": text})
	if err != nil {
		return "", err
	}
	return parseSummarizationResponse(body)
}

// AnswerQuestion extracts an answer span for the question from the context passage.
func (s *HuggingFaceService) AnswerQuestion(ctx context.Context, question, contextPassage string) (*adapter.QAResult, error) {
	body, err := s.post(ctx, s.models.QA, map[string]any{
		"inputs": map[string]string{
			"question": question,
			"context":  contextPassage,
		},
	})
	if err != nil {
		return nil, err
	}
	return parseQAResponse(body)
}

// post sends one inference request and maps HTTP failures to domain errors.
func (s *HuggingFaceService) post(ctx context.Context, model string, payload any) ([]byte, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceNotConfigured,
			"no inference credential configured",
			false,
			domainerror.ErrInferenceNotConfigured,
		)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	url := s.baseURL + "/models/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, domainerror.NewInferenceError(
				domainerror.ErrCodeInferenceTimeout,
				fmt.Sprintf("model %s did not answer in time", model),
				true,
				domainerror.ErrInferenceTimeout,
			)
		}
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceFailed,
			fmt.Sprintf("request to model %s failed", model),
			true,
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		// The hosted API answers 503 while a cold model warms up.
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeModelLoading,
			fmt.Sprintf("model %s is loading, try again shortly", model),
			true,
			domainerror.ErrModelLoading,
		)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceRateLimited,
			"inference rate limit reached",
			true,
			domainerror.ErrInferenceFailed,
		)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceAuth,
			"inference credential was rejected",
			false,
			domainerror.ErrInferenceFailed,
		)
	default:
		return nil, domainerror.NewInferenceError(
			domainerror.ErrCodeInferenceFailed,
			fmt.Sprintf("model %s answered status %d", model, resp.StatusCode),
			true,
			domainerror.ErrInferenceFailed,
		)
	}
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

type sentimentLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// parseSentimentResponse picks the highest-scoring label. The cardiffnlp
// models answer LABEL_0/1/2; other checkpoints answer NEGATIVE/NEUTRAL/
// POSITIVE directly.
func parseSentimentResponse(body []byte) (*adapter.SentimentResult, error) {
	var nested [][]sentimentLabel
	if err := json.Unmarshal(body, &nested); err != nil {
		// Some checkpoints answer a flat array.
		var flat []sentimentLabel
		if err := json.Unmarshal(body, &flat); err != nil {
			return nil, invalidResponse(err)
		}
		nested = [][]sentimentLabel{flat}
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return nil, emptyResponse()
	}

	best := nested[0][0]
	for _, candidate := range nested[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	sentiment, err := mapSentimentLabel(best.Label)
	if err != nil {
		return nil, err
	}
	return &adapter.SentimentResult{Sentiment: sentiment, Score: best.Score}, nil
}

func mapSentimentLabel(label string) (entity.Sentiment, error) {
	switch strings.ToUpper(label) {
	case "LABEL_0", "NEGATIVE":
		return entity.SentimentNegative, nil
	case "LABEL_1", "NEUTRAL":
		return entity.SentimentNeutral, nil
	case "LABEL_2", "POSITIVE":
		return entity.SentimentPositive, nil
	default:
		return "", invalidResponse(fmt.Errorf("unknown sentiment label %q", label))
	}
}

func parseGenerationResponse(body []byte) (string, error) {
	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", invalidResponse(err)
	}
	if len(out) == 0 || strings.TrimSpace(out[0].GeneratedText) == "" {
		return "", emptyResponse()
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}

func parseSummarizationResponse(body []byte) (string, error) {
	var out []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", invalidResponse(err)
	}
	if len(out) == 0 || strings.TrimSpace(out[0].SummaryText) == "" {
		return "", emptyResponse()
	}
	return strings.TrimSpace(out[0].SummaryText), nil
}

func parseQAResponse(body []byte) (*adapter.QAResult, error) {
	var out struct {
		Answer string  `json:"answer"`
		Score  float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, invalidResponse(err)
	}
	return &adapter.QAResult{Answer: strings.TrimSpace(out.Answer), Score: out.Score}, nil
}

func invalidResponse(err error) error {
	return domainerror.NewInferenceError(
		domainerror.ErrCodeInferenceFailed,
		"could not parse inference response",
		false,
		err,
	)
}

func emptyResponse() error {
	return domainerror.NewInferenceError(
		domainerror.ErrCodeEmptyResponse,
		"inference response carried no content",
		true,
		domainerror.ErrEmptyInferenceResponse,
	)
}
