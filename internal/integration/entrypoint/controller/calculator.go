package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/usecase/calculator"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
)

// CalculatorController handles the stateless financial calculator
// endpoints. These operate on the request body alone and need no session.
type CalculatorController struct{}

// NewCalculatorController creates a new calculator controller instance.
func NewCalculatorController() *CalculatorController {
	return &CalculatorController{}
}

// CompoundInterest handles POST /calculators/compound-interest requests.
func (c *CalculatorController) CompoundInterest(ctx *gin.Context) {
	var req dto.CompoundInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := calculator.CompoundInterest(calculator.CompoundInterestInput{
		Principal:           req.Principal,
		AnnualRate:          req.AnnualRate,
		Years:               req.Years,
		MonthlyContribution: req.MonthlyContribution,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompoundInterestResponse(result))
}

// LoanPayment handles POST /calculators/loan-payment requests.
func (c *CalculatorController) LoanPayment(ctx *gin.Context) {
	var req dto.LoanPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := calculator.LoanPayment(calculator.LoanPaymentInput{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		Years:      req.Years,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanPaymentResponse(result))
}

// RetirementNeeds handles POST /calculators/retirement-needs requests.
func (c *CalculatorController) RetirementNeeds(ctx *gin.Context) {
	var req dto.RetirementNeedsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := calculator.RetirementNeeds(calculator.RetirementNeedsInput{
		CurrentAge:           req.CurrentAge,
		RetirementAge:        req.RetirementAge,
		DesiredAnnualIncome:  req.DesiredAnnualIncome,
		CurrentSavings:       req.CurrentSavings,
		ExpectedAnnualReturn: req.ExpectedAnnualReturn,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRetirementNeedsResponse(result))
}
