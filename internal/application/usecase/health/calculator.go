// Package health contains the financial health score calculator.
package health

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/domain/entity"
	"github.com/finova/backend/internal/domain/valueobject"
)

// Calculator computes the rule-based financial health score. Pure and
// deterministic: identical inputs always yield identical scores, and no
// input combination can produce a division error.
type Calculator struct {
	rules valueobject.AdvisorRules
}

// NewCalculator creates a calculator bound to the configured rules.
func NewCalculator(rules valueobject.AdvisorRules) *Calculator {
	return &Calculator{rules: rules}
}

// Compute derives the health score from a profile and its expense records.
// When expense records exist, their sum replaces the profile's declared
// monthly expenses. Zero income or zero expenses floor the affected
// sub-scores at 0 instead of propagating a division error.
func (c *Calculator) Compute(profile *entity.Profile, expenses []*entity.Expense) *entity.HealthScore {
	monthlyIncome, _ := profile.MonthlyIncome().Float64()
	savings, _ := profile.SavingsBalance.Float64()

	monthlyExpense, _ := profile.MonthlyExpenses.Float64()
	if len(expenses) > 0 {
		monthlyExpense, _ = entity.TotalExpenses(expenses).Float64()
	}

	score := &entity.HealthScore{}
	var feedback []string

	score.EmergencyFund, feedback = c.emergencyFundScore(savings, monthlyExpense, feedback)
	score.SavingsRate, feedback = c.savingsRateScore(monthlyIncome, monthlyExpense, feedback)
	score.Budget = c.budgetScore(monthlyIncome, expenses)
	score.GoalDiversity, feedback = c.goalScore(profile.Goals, feedback)

	total := score.EmergencyFund + score.SavingsRate + score.Budget + score.GoalDiversity
	score.Total = clampTotal(int(math.Round(total)))
	score.Grade = entity.GradeForScore(score.Total)
	score.Feedback = feedback

	return score
}

// ComputeFromDecimals is a convenience wrapper for callers holding raw
// decimal figures rather than a profile.
func (c *Calculator) ComputeFromDecimals(annualIncome, savings, monthlyExpense decimal.Decimal, goals []string) *entity.HealthScore {
	profile := &entity.Profile{
		AnnualIncome:    annualIncome,
		SavingsBalance:  savings,
		MonthlyExpenses: monthlyExpense,
		Goals:           goals,
	}
	return c.Compute(profile, nil)
}

// emergencyFundScore is proportional to months of expenses covered by the
// savings balance, reaching full marks at the configured target months.
// With no recorded expenses the coverage is undefined and scores 0.
func (c *Calculator) emergencyFundScore(savings, monthlyExpense float64, feedback []string) (float64, []string) {
	if monthlyExpense <= 0 {
		return 0, append(feedback, "Record your monthly expenses to assess emergency fund coverage")
	}

	months := savings / monthlyExpense
	target := float64(c.rules.EmergencyFundMonths)
	score := math.Min(months/target*entity.SubScoreMax, entity.SubScoreMax)

	switch {
	case months >= target:
		feedback = append(feedback, "Excellent emergency fund coverage")
	case months >= target/2:
		feedback = append(feedback, fmt.Sprintf("Good emergency fund, consider building to %d months", c.rules.EmergencyFundMonths))
	default:
		feedback = append(feedback, fmt.Sprintf("Build your emergency fund (aim for %d months of expenses)", c.rules.EmergencyFundMonths))
	}
	return score, feedback
}

// savingsRateScore is proportional to the surplus share of income, reaching
// full marks at the configured target rate. Zero income scores 0.
func (c *Calculator) savingsRateScore(monthlyIncome, monthlyExpense float64, feedback []string) (float64, []string) {
	if monthlyIncome <= 0 {
		return 0, append(feedback, "Add your income to assess your savings rate")
	}

	rate := (monthlyIncome - monthlyExpense) / monthlyIncome
	score := math.Min(rate, c.rules.TargetSavingsRate) / c.rules.TargetSavingsRate * entity.SubScoreMax
	score = math.Max(score, 0)

	switch {
	case rate >= c.rules.TargetSavingsRate:
		feedback = append(feedback, "Great savings rate!")
	case rate >= c.rules.TargetSavingsRate/2:
		feedback = append(feedback, "Good savings rate, try to increase if possible")
	default:
		feedback = append(feedback, "Focus on increasing your savings rate")
	}
	return score, feedback
}

// budgetScore compares each spending category against its recommended
// percent-of-income ceiling. Full marks when no category exceeds its
// threshold; each exceeding category costs an equal share of the 25
// points. Zero income scores 0 because the ratios are undefined.
func (c *Calculator) budgetScore(monthlyIncome float64, expenses []*entity.Expense) float64 {
	if monthlyIncome <= 0 {
		return 0
	}

	byCategory := entity.ExpensesByCategory(expenses)
	if len(byCategory) == 0 {
		return entity.SubScoreMax
	}

	exceeded := 0
	for category, amount := range byCategory {
		limit := c.rules.BudgetThresholdFor(category) * monthlyIncome
		amt, _ := amount.Float64()
		if amt > limit {
			exceeded++
		}
	}

	score := entity.SubScoreMax * (1 - float64(exceeded)/float64(len(byCategory)))
	return math.Max(score, 0)
}

// goalScore is proportional to the number of distinct goal tags, reaching
// full marks at the configured count.
func (c *Calculator) goalScore(goals []string, feedback []string) (float64, []string) {
	distinct := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		if g != "" {
			distinct[g] = struct{}{}
		}
	}

	if len(distinct) == 0 {
		return 0, append(feedback, "Consider setting specific financial goals")
	}

	cap := float64(c.rules.GoalCountForFullMarks)
	score := math.Min(float64(len(distinct))/cap*entity.SubScoreMax, entity.SubScoreMax)
	feedback = append(feedback, fmt.Sprintf("You have %d financial goals defined", len(distinct)))
	return score, feedback
}

func clampTotal(total int) int {
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}
