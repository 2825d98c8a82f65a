package dto

import (
	"time"

	"github.com/finova/backend/internal/application/usecase/expense"
	"github.com/finova/backend/internal/domain/entity"
)

// AddExpenseRequest represents the request body for adding an expense.
type AddExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=200"`
}

// ExpenseResponse represents an expense record in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	ByCategory map[string]float64 `json:"by_category"`
	Total      float64            `json:"total"`
}

// CategoryShareResponse represents one category's slice of the analysis.
type CategoryShareResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SpendingAnalysisResponse represents the response for spending analysis.
type SpendingAnalysisResponse struct {
	Total           float64                 `json:"total"`
	Shares          []CategoryShareResponse `json:"shares"`
	HighestCategory string                  `json:"highest_category"`
	LowestCategory  string                  `json:"lowest_category"`
	Recommendations []string                `json:"recommendations"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(exp *entity.Expense) ExpenseResponse {
	amount, _ := exp.Amount.Float64()
	return ExpenseResponse{
		ID:          exp.ID.String(),
		Category:    exp.Category,
		Amount:      amount,
		Description: exp.Description,
		CreatedAt:   exp.CreatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, exp := range output.Expenses {
		expenses[i] = ToExpenseResponse(exp)
	}

	byCategory := make(map[string]float64, len(output.ByCategory))
	for category, amount := range output.ByCategory {
		byCategory[category], _ = amount.Float64()
	}

	total, _ := output.Total.Float64()

	return ExpenseListResponse{
		Expenses:   expenses,
		ByCategory: byCategory,
		Total:      total,
	}
}

// ToSpendingAnalysisResponse converts an AnalyzeSpendingOutput to a SpendingAnalysisResponse DTO.
func ToSpendingAnalysisResponse(output *expense.AnalyzeSpendingOutput) SpendingAnalysisResponse {
	shares := make([]CategoryShareResponse, len(output.Shares))
	for i, share := range output.Shares {
		amount, _ := share.Amount.Float64()
		shares[i] = CategoryShareResponse{
			Category:   share.Category,
			Amount:     amount,
			Percentage: share.Percentage,
		}
	}

	total, _ := output.Total.Float64()

	return SpendingAnalysisResponse{
		Total:           total,
		Shares:          shares,
		HighestCategory: output.HighestCategory,
		LowestCategory:  output.LowestCategory,
		Recommendations: output.Recommendations,
	}
}
