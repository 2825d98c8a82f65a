package advice

import (
	"testing"

	"github.com/finova/backend/internal/domain/entity"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    entity.Intent
	}{
		{"budget keyword", "How do I make a budget?", entity.IntentBudgeting},
		{"spending keyword", "I think my spending is out of control", entity.IntentBudgeting},
		{"investment keyword", "Should I invest in index funds?", entity.IntentInvestment},
		{"stock keyword", "What stocks are good right now?", entity.IntentInvestment},
		{"savings keyword", "How much should I be saving each month?", entity.IntentSavings},
		{"emergency fund phrase", "How big should my emergency fund be?", entity.IntentSavings},
		{"debt keyword", "I have a lot of credit card debt", entity.IntentDebt},
		{"mortgage keyword", "Should I pay off my mortgage early?", entity.IntentDebt},
		{"tax keyword", "How can I lower my taxes?", entity.IntentTax},
		{"insurance keyword", "Do I need life insurance?", entity.IntentInsurance},
		{"retirement keyword", "Am I on track for retirement?", entity.IntentRetirement},
		{"401k keyword", "How much should go into my 401k?", entity.IntentRetirement},
		{"case insensitive", "TELL ME ABOUT MY BUDGET", entity.IntentBudgeting},
		{"no match falls back to general", "Hello there!", entity.IntentGeneral},
		{"empty message is general", "", entity.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyIntentPrefersSpecificTopics(t *testing.T) {
	// "retirement savings" mentions both topics; retirement is the more
	// specific one and is checked first.
	if got := ClassifyIntent("How should I grow my retirement savings?"); got != entity.IntentRetirement {
		t.Errorf("got %v, want %v", got, entity.IntentRetirement)
	}
}

func TestFallbackSentiment(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    entity.Sentiment
	}{
		{"positive words", "Thanks, that's great advice!", entity.SentimentPositive},
		{"negative words", "I'm so worried and stressed about money", entity.SentimentNegative},
		{"no polarity words", "What is a 401k?", entity.SentimentNeutral},
		{"mixed polarity is neutral", "Good news but I'm still worried", entity.SentimentNeutral},
		{"empty message", "", entity.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackSentiment(tt.message); got != tt.want {
				t.Errorf("FallbackSentiment(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}
