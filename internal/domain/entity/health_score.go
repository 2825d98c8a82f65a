package entity

// SubScoreMax is the maximum value of each health score component.
const SubScoreMax = 25.0

// HealthScore is the rule-based financial health assessment. Four
// independent sub-scores, each capped at 25 points, sum to a 0-100 total.
// Derived purely from the profile and expense records, recomputed on every
// relevant input change and never persisted.
type HealthScore struct {
	Total         int
	EmergencyFund float64
	SavingsRate   float64
	Budget        float64
	GoalDiversity float64
	Grade         string
	Feedback      []string
}

// GradeForScore converts a total score to a letter grade.
func GradeForScore(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
