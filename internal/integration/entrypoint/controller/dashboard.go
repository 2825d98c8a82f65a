package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/application/usecase/dashboard"
	"github.com/finova/backend/internal/integration/charts"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard and chart endpoints.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
	renderer   adapter.ChartRenderer
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase, renderer adapter.ChartRenderer) *DashboardController {
	return &DashboardController{
		getUseCase: getUseCase,
		renderer:   renderer,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	output, ok := c.assemble(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// BreakdownChart handles GET /dashboard/charts/breakdown requests. The
// response body is the rendered PNG.
func (c *DashboardController) BreakdownChart(ctx *gin.Context) {
	output, ok := c.assemble(ctx)
	if !ok {
		return
	}

	png, err := c.renderer.RenderBreakdown(output.Breakdown)
	if err != nil {
		c.respondChartError(ctx, err, "No expenses recorded to chart")
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// ProjectionChart handles GET /dashboard/charts/projection requests. The
// response body is the rendered PNG.
func (c *DashboardController) ProjectionChart(ctx *gin.Context) {
	output, ok := c.assemble(ctx)
	if !ok {
		return
	}

	png, err := c.renderer.RenderProjection(output.Projection)
	if err != nil {
		c.respondChartError(ctx, err, "Not enough data to chart a projection")
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// assemble resolves the session and runs the dashboard use case, writing
// the error response itself when the request cannot proceed.
func (c *DashboardController) assemble(ctx *gin.Context) (*dashboard.GetDashboardOutput, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return nil, false
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return nil, false
	}

	return output, true
}

func (c *DashboardController) respondChartError(ctx *gin.Context, err error, emptyMessage string) {
	if errors.Is(err, charts.ErrNoChartData) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: emptyMessage,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to render chart",
	})
}
