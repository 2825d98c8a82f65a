// Package valueobject defines immutable domain value objects.
package valueobject

// AdvisorRules carries the configured financial rule constants into the
// scoring calculator and advice generators. Built once from configuration
// at wiring time.
type AdvisorRules struct {
	EmergencyFundMonths   int
	TargetSavingsRate     float64
	MaxDebtToIncomeRatio  float64
	HighExpenseThreshold  float64
	GoalCountForFullMarks int
	ExpenseCategories     []string
	// BudgetThresholds maps a category to its recommended maximum share of
	// monthly income; categories not listed use DefaultBudgetThreshold.
	BudgetThresholds       map[string]float64
	DefaultBudgetThreshold float64
}

// BudgetThresholdFor returns the recommended percent-of-income ceiling for
// a category.
func (r AdvisorRules) BudgetThresholdFor(category string) float64 {
	if t, ok := r.BudgetThresholds[category]; ok {
		return t
	}
	return r.DefaultBudgetThreshold
}

// KnowsCategory reports whether the category is in the configured set.
func (r AdvisorRules) KnowsCategory(category string) bool {
	for _, c := range r.ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
