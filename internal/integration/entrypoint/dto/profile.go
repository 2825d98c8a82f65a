package dto

import (
	"time"

	"github.com/finova/backend/internal/domain/entity"
)

// SaveProfileRequest represents the request body for saving a profile.
type SaveProfileRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=100"`
	Age             int      `json:"age" binding:"required"`
	AnnualIncome    float64  `json:"annual_income" binding:"min=0"`
	Occupation      string   `json:"occupation" binding:"max=100"`
	SavingsBalance  float64  `json:"savings_balance" binding:"min=0"`
	DebtBalance     float64  `json:"debt_balance" binding:"min=0"`
	MonthlyExpenses float64  `json:"monthly_expenses" binding:"min=0"`
	RiskTolerance   string   `json:"risk_tolerance"`
	UserType        string   `json:"user_type"`
	Goals           []string `json:"goals"`
}

// ProfileResponse represents the profile data in API responses.
type ProfileResponse struct {
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	AnnualIncome    float64   `json:"annual_income"`
	Occupation      string    `json:"occupation"`
	SavingsBalance  float64   `json:"savings_balance"`
	DebtBalance     float64   `json:"debt_balance"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	RiskTolerance   string    `json:"risk_tolerance"`
	UserType        string    `json:"user_type"`
	Goals           []string  `json:"goals"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToProfileResponse converts a domain Profile entity to a ProfileResponse DTO.
func ToProfileResponse(prof *entity.Profile) ProfileResponse {
	annualIncome, _ := prof.AnnualIncome.Float64()
	savingsBalance, _ := prof.SavingsBalance.Float64()
	debtBalance, _ := prof.DebtBalance.Float64()
	monthlyExpenses, _ := prof.MonthlyExpenses.Float64()

	return ProfileResponse{
		Name:            prof.Name,
		Age:             prof.Age,
		AnnualIncome:    annualIncome,
		Occupation:      prof.Occupation,
		SavingsBalance:  savingsBalance,
		DebtBalance:     debtBalance,
		MonthlyExpenses: monthlyExpenses,
		RiskTolerance:   string(prof.RiskTolerance),
		UserType:        string(prof.UserType),
		Goals:           prof.Goals,
		UpdatedAt:       prof.UpdatedAt,
	}
}
