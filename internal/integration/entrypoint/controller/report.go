package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/usecase/report"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
	emailUseCase    *report.QueueReportEmailUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	emailUseCase *report.QueueReportEmailUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		emailUseCase:    emailUseCase,
	}
}

// Generate handles GET /report requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// Email handles POST /report/email requests. The report job is queued and
// delivered asynchronously by the email worker.
func (c *ReportController) Email(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.EmailReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRecipient),
		})
		return
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), report.QueueReportEmailInput{
		SessionID: sessionID,
		To:        req.To,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.EmailReportResponse{
		JobID:  output.JobID.String(),
		Status: "queued",
	})
}
