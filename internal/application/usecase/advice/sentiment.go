package advice

import (
	"strings"

	"github.com/finova/backend/internal/domain/entity"
)

var positiveWords = []string{
	"great", "good", "happy", "excited", "thanks", "thank you",
	"awesome", "excellent", "glad", "love",
}

var negativeWords = []string{
	"worried", "worry", "stressed", "stress", "anxious", "afraid",
	"scared", "struggling", "overwhelmed", "broke", "terrible", "bad",
	"can't afford", "cannot afford",
}

// FallbackSentiment classifies polarity by keyword counting. Used when the
// hosted sentiment model is unreachable so the chat pipeline never fails on
// classification alone.
func FallbackSentiment(message string) entity.Sentiment {
	lower := strings.ToLower(message)
	tokens := tokenize(lower)

	positive, negative := 0, 0
	for _, w := range positiveWords {
		if matchKeyword(lower, tokens, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if matchKeyword(lower, tokens, w) {
			negative++
		}
	}

	switch {
	case negative > positive:
		return entity.SentimentNegative
	case positive > negative:
		return entity.SentimentPositive
	default:
		return entity.SentimentNeutral
	}
}
