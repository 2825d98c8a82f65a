package dto

import (
	"github.com/finova/backend/internal/application/usecase/analytics"
)

// IntentStatsResponse represents the aggregated interaction counts.
type IntentStatsResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// ToIntentStatsResponse converts the use case output to the API shape.
func ToIntentStatsResponse(output *analytics.IntentStatsOutput) IntentStatsResponse {
	counts := make(map[string]int64, len(output.Counts))
	for intent, count := range output.Counts {
		counts[string(intent)] = count
	}
	return IntentStatsResponse{
		Counts: counts,
		Total:  output.Total,
	}
}
