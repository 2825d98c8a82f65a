// Package analytics contains use cases over the masked interaction log.
package analytics

import (
	"context"
	"fmt"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
)

// IntentStatsOutput represents the aggregated interaction counts.
type IntentStatsOutput struct {
	Counts map[entity.Intent]int64
	Total  int64
}

// IntentStatsUseCase aggregates the interaction log by intent. Records
// carry only masked session IDs, so the aggregate exposes no user data.
type IntentStatsUseCase struct {
	interactionLog adapter.InteractionLogRepository
}

// NewIntentStatsUseCase creates a new IntentStatsUseCase instance.
func NewIntentStatsUseCase(interactionLog adapter.InteractionLogRepository) *IntentStatsUseCase {
	return &IntentStatsUseCase{
		interactionLog: interactionLog,
	}
}

// Execute returns per-intent interaction counts and their total.
func (uc *IntentStatsUseCase) Execute(ctx context.Context) (*IntentStatsOutput, error) {
	counts, err := uc.interactionLog.CountByIntent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate interactions: %w", err)
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	return &IntentStatsOutput{
		Counts: counts,
		Total:  total,
	}, nil
}
