package entity

// Intent is the enumerated advice topic extracted from a user message.
// Dispatch from intent to advice generator is an explicit mapping,
// decoupled from any particular text-matching implementation.
type Intent string

const (
	IntentBudgeting  Intent = "budgeting"
	IntentInvestment Intent = "investment"
	IntentSavings    Intent = "savings"
	IntentDebt       Intent = "debt"
	IntentTax        Intent = "tax"
	IntentInsurance  Intent = "insurance"
	IntentRetirement Intent = "retirement"
	IntentGeneral    Intent = "general"
)

// AllIntents lists every known intent.
func AllIntents() []Intent {
	return []Intent{
		IntentBudgeting,
		IntentInvestment,
		IntentSavings,
		IntentDebt,
		IntentTax,
		IntentInsurance,
		IntentRetirement,
		IntentGeneral,
	}
}

// Sentiment is the emotional polarity of a user message.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)
