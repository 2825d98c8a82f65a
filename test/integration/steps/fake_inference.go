// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"

	"github.com/finova/backend/internal/application/adapter"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// fakeInferenceService is an unconfigured inference port. The chat
// pipeline degrades to its keyword fallbacks, which keeps scenario
// outcomes deterministic; extractive QA reports not-configured.
type fakeInferenceService struct{}

func newFakeInference() adapter.InferenceService {
	return &fakeInferenceService{}
}

func (f *fakeInferenceService) IsAvailable() bool {
	return false
}

func (f *fakeInferenceService) AnalyzeSentiment(_ context.Context, _ string) (*adapter.SentimentResult, error) {
	return nil, f.notConfigured()
}

func (f *fakeInferenceService) GenerateText(_ context.Context, _ string) (string, error) {
	return "", f.notConfigured()
}

func (f *fakeInferenceService) Summarize(_ context.Context, _ string) (string, error) {
	return "", f.notConfigured()
}

func (f *fakeInferenceService) AnswerQuestion(_ context.Context, _, _ string) (*adapter.QAResult, error) {
	return nil, f.notConfigured()
}

func (f *fakeInferenceService) notConfigured() error {
	return domainerror.NewInferenceError(
		domainerror.ErrCodeInferenceNotConfigured,
		"no inference credential configured",
		false,
		nil,
	)
}
