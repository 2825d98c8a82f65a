package dto

import (
	"github.com/finova/backend/internal/application/usecase/calculator"
)

// CompoundInterestRequest represents the request body for the compound
// interest calculator.
type CompoundInterestRequest struct {
	Principal           float64 `json:"principal" binding:"min=0"`
	AnnualRate          float64 `json:"annual_rate" binding:"min=0"`
	Years               int     `json:"years" binding:"required,gt=0"`
	MonthlyContribution float64 `json:"monthly_contribution" binding:"min=0"`
}

// CompoundInterestResponse represents the compound interest result.
type CompoundInterestResponse struct {
	FutureValue      float64 `json:"future_value"`
	TotalContributed float64 `json:"total_contributed"`
	InterestEarned   float64 `json:"interest_earned"`
}

// LoanPaymentRequest represents the request body for the loan payment
// calculator.
type LoanPaymentRequest struct {
	Principal  float64 `json:"principal" binding:"required,gt=0"`
	AnnualRate float64 `json:"annual_rate" binding:"min=0"`
	Years      int     `json:"years" binding:"required,gt=0"`
}

// LoanPaymentResponse represents the loan payment result.
type LoanPaymentResponse struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// RetirementNeedsRequest represents the request body for the retirement
// needs calculator.
type RetirementNeedsRequest struct {
	CurrentAge           int     `json:"current_age" binding:"required,gt=0"`
	RetirementAge        int     `json:"retirement_age" binding:"required,gt=0"`
	DesiredAnnualIncome  float64 `json:"desired_annual_income" binding:"min=0"`
	CurrentSavings       float64 `json:"current_savings" binding:"min=0"`
	ExpectedAnnualReturn float64 `json:"expected_annual_return" binding:"min=0"`
}

// RetirementNeedsResponse represents the retirement needs result.
type RetirementNeedsResponse struct {
	TargetCorpus          float64 `json:"target_corpus"`
	YearsToRetirement     int     `json:"years_to_retirement"`
	RequiredMonthlySaving float64 `json:"required_monthly_saving"`
}

// ToCompoundInterestResponse converts a CompoundInterestResult to its DTO.
func ToCompoundInterestResponse(result *calculator.CompoundInterestResult) CompoundInterestResponse {
	return CompoundInterestResponse{
		FutureValue:      result.FutureValue,
		TotalContributed: result.TotalContributed,
		InterestEarned:   result.InterestEarned,
	}
}

// ToLoanPaymentResponse converts a LoanPaymentResult to its DTO.
func ToLoanPaymentResponse(result *calculator.LoanPaymentResult) LoanPaymentResponse {
	return LoanPaymentResponse{
		MonthlyPayment: result.MonthlyPayment,
		TotalPaid:      result.TotalPaid,
		TotalInterest:  result.TotalInterest,
	}
}

// ToRetirementNeedsResponse converts a RetirementNeedsResult to its DTO.
func ToRetirementNeedsResponse(result *calculator.RetirementNeedsResult) RetirementNeedsResponse {
	return RetirementNeedsResponse{
		TargetCorpus:          result.TargetCorpus,
		YearsToRetirement:     result.YearsToRetirement,
		RequiredMonthlySaving: result.RequiredMonthlySaving,
	}
}
