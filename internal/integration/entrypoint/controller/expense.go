package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/usecase/expense"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase     *expense.AddExpenseUseCase
	listUseCase    *expense.ListExpensesUseCase
	clearUseCase   *expense.ClearExpensesUseCase
	analyzeUseCase *expense.AnalyzeSpendingUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	clearUseCase *expense.ClearExpensesUseCase,
	analyzeUseCase *expense.AnalyzeSpendingUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:     addUseCase,
		listUseCase:    listUseCase,
		clearUseCase:   clearUseCase,
		analyzeUseCase: analyzeUseCase,
	}
}

// Add handles POST /expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		SessionID:   sessionID,
		Category:    req.Category,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Clear handles DELETE /expenses requests.
func (c *ExpenseController) Clear(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), expense.ClearExpensesInput{
		SessionID: sessionID,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Analyze handles GET /expenses/analysis requests.
func (c *ExpenseController) Analyze(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.analyzeUseCase.Execute(ctx.Request.Context(), expense.AnalyzeSpendingInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingAnalysisResponse(output))
}
