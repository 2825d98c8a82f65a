// Package expense contains expense tracking use cases.
package expense

import "strings"

// FallbackCategory is used when no keyword matches the description.
const FallbackCategory = "Other"

// categoryKeywords maps an expense category to description keywords that
// select it. Matching is case-insensitive substring containment; the first
// category whose keyword matches wins, in declaration order.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Housing", []string{"rent", "mortgage", "utilities", "internet", "phone"}},
	{"Food", []string{"grocery", "restaurant", "food", "dining", "lunch", "dinner"}},
	{"Transportation", []string{"gas", "uber", "taxi", "bus", "train", "car payment"}},
	{"Entertainment", []string{"movie", "netflix", "spotify", "game", "concert"}},
	{"Healthcare", []string{"doctor", "medicine", "hospital", "insurance", "dental"}},
	{"Shopping", []string{"amazon", "clothes", "shopping", "store"}},
}

// CategorizeDescription infers an expense category from its free-text
// description.
func CategorizeDescription(description string) string {
	description = strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(description, keyword) {
				return entry.category
			}
		}
	}
	return FallbackCategory
}
