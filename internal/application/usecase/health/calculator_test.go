package health

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/domain/entity"
	"github.com/finova/backend/internal/domain/valueobject"
)

func testRules() valueobject.AdvisorRules {
	return valueobject.AdvisorRules{
		EmergencyFundMonths:   6,
		TargetSavingsRate:     0.20,
		MaxDebtToIncomeRatio:  0.36,
		HighExpenseThreshold:  0.15,
		GoalCountForFullMarks: 5,
		ExpenseCategories: []string{
			"Housing", "Food", "Transportation", "Healthcare",
			"Insurance", "Entertainment", "Shopping", "Education",
			"Debt Payments", "Savings", "Other",
		},
		BudgetThresholds: map[string]float64{
			"Housing":        0.30,
			"Food":           0.15,
			"Transportation": 0.15,
			"Debt Payments":  0.20,
		},
		DefaultBudgetThreshold: 0.10,
	}
}

func profileWith(annualIncome, savings, monthlyExpenses int64, goals ...string) *entity.Profile {
	return &entity.Profile{
		AnnualIncome:    decimal.NewFromInt(annualIncome),
		SavingsBalance:  decimal.NewFromInt(savings),
		MonthlyExpenses: decimal.NewFromInt(monthlyExpenses),
		Goals:           goals,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculatorEmergencyFund(t *testing.T) {
	calc := NewCalculator(testRules())

	tests := []struct {
		name     string
		savings  int64
		expenses int64
		want     float64
	}{
		{"six months of coverage scores full marks", 18000, 3000, 25},
		{"more than six months is capped", 60000, 3000, 25},
		{"three months scores half", 9000, 3000, 12.5},
		{"no savings scores zero", 0, 3000, 0},
		{"zero expenses scores zero, not an error", 18000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calc.Compute(profileWith(60000, tt.savings, tt.expenses), nil)
			if !almostEqual(score.EmergencyFund, tt.want) {
				t.Errorf("EmergencyFund = %v, want %v", score.EmergencyFund, tt.want)
			}
		})
	}
}

func TestCalculatorSavingsRate(t *testing.T) {
	calc := NewCalculator(testRules())

	tests := []struct {
		name     string
		annual   int64
		expenses int64
		want     float64
	}{
		{"rate at target scores full marks", 60000, 4000, 25},
		{"rate above target is capped", 60000, 1000, 25},
		{"half the target rate scores half", 60000, 4500, 12.5},
		{"spending exceeds income floors at zero", 60000, 6000, 0},
		{"zero income scores zero, not an error", 0, 3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calc.Compute(profileWith(tt.annual, 0, tt.expenses), nil)
			if !almostEqual(score.SavingsRate, tt.want) {
				t.Errorf("SavingsRate = %v, want %v", score.SavingsRate, tt.want)
			}
		})
	}
}

func TestCalculatorBudget(t *testing.T) {
	calc := NewCalculator(testRules())

	expense := func(category string, amount int64) *entity.Expense {
		return entity.NewExpense(category, decimal.NewFromInt(amount), "")
	}

	tests := []struct {
		name     string
		annual   int64
		expenses []*entity.Expense
		want     float64
	}{
		{
			name:   "no categories exceed their thresholds",
			annual: 60000, // 5000/month
			expenses: []*entity.Expense{
				expense("Housing", 1400), // limit 1500
				expense("Food", 700),     // limit 750
			},
			want: 25,
		},
		{
			name:   "one of two categories over threshold loses half",
			annual: 60000,
			expenses: []*entity.Expense{
				expense("Housing", 2000), // over 1500
				expense("Food", 500),
			},
			want: 12.5,
		},
		{
			name:   "all categories over threshold scores zero",
			annual: 60000,
			expenses: []*entity.Expense{
				expense("Housing", 2000),
				expense("Entertainment", 600), // default threshold, limit 500
			},
			want: 0,
		},
		{
			name:   "repeated category entries are summed before comparison",
			annual: 60000,
			expenses: []*entity.Expense{
				expense("Housing", 800),
				expense("Housing", 800), // 1600 total, over 1500
			},
			want: 0,
		},
		{
			name:     "no expense records scores full marks",
			annual:   60000,
			expenses: nil,
			want:     25,
		},
		{
			name:   "zero income scores zero",
			annual: 0,
			expenses: []*entity.Expense{
				expense("Food", 100),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calc.Compute(profileWith(tt.annual, 0, 0), tt.expenses)
			if !almostEqual(score.Budget, tt.want) {
				t.Errorf("Budget = %v, want %v", score.Budget, tt.want)
			}
		})
	}
}

func TestCalculatorGoalDiversity(t *testing.T) {
	calc := NewCalculator(testRules())

	tests := []struct {
		name  string
		goals []string
		want  float64
	}{
		{"no goals scores zero", nil, 0},
		{"one goal", []string{"retirement"}, 5},
		{"three goals", []string{"retirement", "house", "travel"}, 15},
		{"five goals reaches full marks", []string{"a", "b", "c", "d", "e"}, 25},
		{"more than five is capped", []string{"a", "b", "c", "d", "e", "f", "g"}, 25},
		{"duplicate goals count once", []string{"retirement", "retirement"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calc.Compute(profileWith(60000, 0, 3000, tt.goals...), nil)
			if !almostEqual(score.GoalDiversity, tt.want) {
				t.Errorf("GoalDiversity = %v, want %v", score.GoalDiversity, tt.want)
			}
		})
	}
}

func TestCalculatorTotalAndGrade(t *testing.T) {
	calc := NewCalculator(testRules())

	t.Run("healthy profile", func(t *testing.T) {
		// 5000/month income, 3000 expenses, 18000 saved, no goals.
		// Emergency 25, savings rate 25 (rate 0.40 capped), budget 25, goals 0.
		score := calc.Compute(profileWith(60000, 18000, 3000), nil)
		if score.Total != 75 {
			t.Errorf("Total = %d, want 75", score.Total)
		}
		if score.Grade != "C" {
			t.Errorf("Grade = %q, want C", score.Grade)
		}
	})

	t.Run("perfect profile", func(t *testing.T) {
		score := calc.Compute(profileWith(60000, 18000, 3000, "a", "b", "c", "d", "e"), nil)
		if score.Total != 100 {
			t.Errorf("Total = %d, want 100", score.Total)
		}
		if score.Grade != "A" {
			t.Errorf("Grade = %q, want A", score.Grade)
		}
	})

	t.Run("empty profile scores zero without error", func(t *testing.T) {
		score := calc.Compute(profileWith(0, 0, 0), nil)
		if score.Total != 0 {
			t.Errorf("Total = %d, want 0", score.Total)
		}
		if score.Grade != "F" {
			t.Errorf("Grade = %q, want F", score.Grade)
		}
	})

	t.Run("total stays within bounds for extreme inputs", func(t *testing.T) {
		score := calc.Compute(profileWith(1, 1000000000, 1), nil)
		if score.Total < 0 || score.Total > 100 {
			t.Errorf("Total = %d, want within [0, 100]", score.Total)
		}
	})

	t.Run("feedback is always populated", func(t *testing.T) {
		for _, p := range []*entity.Profile{
			profileWith(0, 0, 0),
			profileWith(60000, 18000, 3000, "retirement"),
		} {
			score := calc.Compute(p, nil)
			if len(score.Feedback) == 0 {
				t.Error("expected feedback lines, got none")
			}
		}
	})
}

func TestCalculatorIsDeterministic(t *testing.T) {
	calc := NewCalculator(testRules())
	profile := profileWith(60000, 9000, 3000, "retirement", "travel")
	expenses := []*entity.Expense{
		entity.NewExpense("Housing", decimal.NewFromInt(1600), ""),
		entity.NewExpense("Food", decimal.NewFromInt(600), ""),
	}

	first := calc.Compute(profile, expenses)
	for i := 0; i < 10; i++ {
		next := calc.Compute(profile, expenses)
		if next.Total != first.Total || next.Grade != first.Grade {
			t.Fatalf("run %d: Total/Grade = %d/%s, want %d/%s",
				i, next.Total, next.Grade, first.Total, first.Grade)
		}
	}
}

func TestCalculatorMonotonicity(t *testing.T) {
	calc := NewCalculator(testRules())

	t.Run("more savings never lowers the total", func(t *testing.T) {
		for _, savings := range []int64{0, 2000, 9000, 18000} {
			base := calc.Compute(profileWith(60000, savings, 3000), nil)
			richer := calc.Compute(profileWith(60000, savings+1000, 3000), nil)
			if richer.Total < base.Total {
				t.Errorf("savings %d -> %d: Total fell from %d to %d",
					savings, savings+1000, base.Total, richer.Total)
			}
		}
	})

	t.Run("higher expenses never raise the total", func(t *testing.T) {
		for _, expenses := range []int64{500, 3000, 4500, 6000} {
			base := calc.Compute(profileWith(60000, 18000, expenses), nil)
			costlier := calc.Compute(profileWith(60000, 18000, expenses+500), nil)
			if costlier.Total > base.Total {
				t.Errorf("expenses %d -> %d: Total rose from %d to %d",
					expenses, expenses+500, base.Total, costlier.Total)
			}
		}
	})
}

func TestCalculatorExpenseRecordsOverrideProfileFigure(t *testing.T) {
	calc := NewCalculator(testRules())
	profile := profileWith(60000, 18000, 1000)
	expenses := []*entity.Expense{
		entity.NewExpense("Housing", decimal.NewFromInt(3000), ""),
	}

	// 18000 savings over 3000/month of recorded spending is six months.
	score := calc.Compute(profile, expenses)
	if !almostEqual(score.EmergencyFund, 25) {
		t.Errorf("EmergencyFund = %v, want 25", score.EmergencyFund)
	}

	// The declared 1000/month figure applies when no records exist.
	score = calc.Compute(profile, nil)
	if !almostEqual(score.EmergencyFund, 25) {
		t.Errorf("EmergencyFund without records = %v, want 25", score.EmergencyFund)
	}
}
