package dto

import (
	"github.com/finova/backend/internal/domain/entity"
)

// HealthScoreResponse represents the financial health score in API responses.
type HealthScoreResponse struct {
	Total         int      `json:"total"`
	Grade         string   `json:"grade"`
	EmergencyFund float64  `json:"emergency_fund"`
	SavingsRate   float64  `json:"savings_rate"`
	Budget        float64  `json:"budget"`
	GoalDiversity float64  `json:"goal_diversity"`
	Feedback      []string `json:"feedback"`
}

// ToHealthScoreResponse converts a domain HealthScore entity to a HealthScoreResponse DTO.
func ToHealthScoreResponse(score *entity.HealthScore) HealthScoreResponse {
	return HealthScoreResponse{
		Total:         score.Total,
		Grade:         score.Grade,
		EmergencyFund: score.EmergencyFund,
		SavingsRate:   score.SavingsRate,
		Budget:        score.Budget,
		GoalDiversity: score.GoalDiversity,
		Feedback:      score.Feedback,
	}
}
