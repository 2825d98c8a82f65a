package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/usecase/analytics"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the masked interaction analytics endpoint.
type AnalyticsController struct {
	intentStatsUseCase *analytics.IntentStatsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(intentStatsUseCase *analytics.IntentStatsUseCase) *AnalyticsController {
	return &AnalyticsController{
		intentStatsUseCase: intentStatsUseCase,
	}
}

// IntentStats handles GET /analytics/intents requests.
func (c *AnalyticsController) IntentStats(ctx *gin.Context) {
	output, err := c.intentStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIntentStatsResponse(output))
}
