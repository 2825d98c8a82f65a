package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/usecase/health"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// ScoreController handles the financial health score endpoint.
type ScoreController struct {
	computeUseCase *health.ComputeScoreUseCase
}

// NewScoreController creates a new score controller instance.
func NewScoreController(computeUseCase *health.ComputeScoreUseCase) *ScoreController {
	return &ScoreController{
		computeUseCase: computeUseCase,
	}
}

// Get handles GET /score requests.
func (c *ScoreController) Get(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), health.ComputeScoreInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(output.Score))
}
