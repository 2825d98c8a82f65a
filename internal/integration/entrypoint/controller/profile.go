package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/usecase/profile"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	saveUseCase *profile.SaveProfileUseCase
	getUseCase  *profile.GetProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	saveUseCase *profile.SaveProfileUseCase,
	getUseCase *profile.GetProfileUseCase,
) *ProfileController {
	return &ProfileController{
		saveUseCase: saveUseCase,
		getUseCase:  getUseCase,
	}
}

// Save handles PUT /profile requests.
func (c *ProfileController) Save(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingName),
		})
		return
	}

	input := profile.SaveProfileInput{
		SessionID:       sessionID,
		Name:            req.Name,
		Age:             req.Age,
		AnnualIncome:    decimal.NewFromFloat(req.AnnualIncome),
		Occupation:      req.Occupation,
		SavingsBalance:  decimal.NewFromFloat(req.SavingsBalance),
		DebtBalance:     decimal.NewFromFloat(req.DebtBalance),
		MonthlyExpenses: decimal.NewFromFloat(req.MonthlyExpenses),
		RiskTolerance:   entity.RiskTolerance(req.RiskTolerance),
		UserType:        entity.UserType(req.UserType),
		Goals:           req.Goals,
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}
