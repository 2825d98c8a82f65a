package dto

import (
	"time"

	"github.com/finova/backend/internal/application/usecase/dashboard"
)

// BreakdownSliceResponse represents one slice of the expense breakdown.
type BreakdownSliceResponse struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ProjectionPointResponse represents one point of the savings projection.
type ProjectionPointResponse struct {
	Date    time.Time `json:"date"`
	Balance float64   `json:"balance"`
}

// DashboardResponse represents the response for the dashboard endpoint.
type DashboardResponse struct {
	Score      HealthScoreResponse       `json:"score"`
	Breakdown  []BreakdownSliceResponse  `json:"breakdown"`
	Projection []ProjectionPointResponse `json:"projection"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	breakdown := make([]BreakdownSliceResponse, len(output.Breakdown))
	for i, slice := range output.Breakdown {
		breakdown[i] = BreakdownSliceResponse{
			Label:      slice.Label,
			Amount:     slice.Amount,
			Percentage: slice.Percentage,
		}
	}

	projection := make([]ProjectionPointResponse, len(output.Projection))
	for i, point := range output.Projection {
		projection[i] = ProjectionPointResponse{
			Date:    point.Date,
			Balance: point.Balance,
		}
	}

	return DashboardResponse{
		Score:      ToHealthScoreResponse(output.Score),
		Breakdown:  breakdown,
		Projection: projection,
	}
}
