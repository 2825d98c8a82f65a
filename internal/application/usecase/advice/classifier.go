// Package advice turns a classified user message into financial guidance.
package advice

import (
	"strings"
	"unicode"

	"github.com/finova/backend/internal/domain/entity"
)

// intentKeywords is checked in order; the first intent with a matching
// keyword wins, so more specific topics come before broader ones. No match
// falls through to the general intent.
var intentKeywords = []struct {
	intent   entity.Intent
	keywords []string
}{
	{entity.IntentRetirement, []string{"retirement", "retire", "401k", "401(k)", "ira", "pension"}},
	{entity.IntentDebt, []string{"debt", "loan", "credit card", "mortgage", "owe", "payoff"}},
	{entity.IntentInvestment, []string{"invest", "stock", "bond", "portfolio", "mutual fund", "etf", "market"}},
	{entity.IntentTax, []string{"tax", "deduction", "irs", "refund"}},
	{entity.IntentInsurance, []string{"insurance", "coverage", "premium", "policy"}},
	{entity.IntentSavings, []string{"save", "saving", "savings", "emergency fund"}},
	{entity.IntentBudgeting, []string{"budget", "spend", "spending", "expense", "track"}},
}

// ClassifyIntent maps a message to an advice topic by keyword matching.
func ClassifyIntent(message string) entity.Intent {
	lower := strings.ToLower(message)
	tokens := tokenize(lower)
	for _, group := range intentKeywords {
		for _, kw := range group.keywords {
			if matchKeyword(lower, tokens, kw) {
				return group.intent
			}
		}
	}
	return entity.IntentGeneral
}

func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matchKeyword matches multi-word phrases by substring and single words by
// token prefix, so "owe" matches "owes" but not "lower".
func matchKeyword(lower string, tokens []string, kw string) bool {
	if strings.ContainsAny(kw, " ()'") {
		return strings.Contains(lower, kw)
	}
	for _, tok := range tokens {
		if strings.HasPrefix(tok, kw) {
			return true
		}
	}
	return false
}
