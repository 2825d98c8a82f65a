package dto

import (
	"github.com/finova/backend/internal/application/usecase/chat"
)

// SendMessageRequest represents the request body for sending a chat message.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// ChatReplyResponse represents the assistant reply and its analysis.
type ChatReplyResponse struct {
	Reply     string   `json:"reply"`
	Intent    string   `json:"intent"`
	Sentiment string   `json:"sentiment"`
	Tips      []string `json:"tips,omitempty"`
}

// SummaryResponse represents the conversation summary response.
type SummaryResponse struct {
	Summary     string `json:"summary"`
	TurnCount   int    `json:"turn_count"`
	ModelBacked bool   `json:"model_backed"`
}

// AnswerQuestionRequest represents the request body for extractive QA.
type AnswerQuestionRequest struct {
	Question string `json:"question" binding:"required,max=1000"`
}

// AnswerResponse represents the extractive QA answer response.
type AnswerResponse struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// ToChatReplyResponse converts a SendMessageOutput to a ChatReplyResponse DTO.
func ToChatReplyResponse(output *chat.SendMessageOutput) ChatReplyResponse {
	return ChatReplyResponse{
		Reply:     output.Reply,
		Intent:    string(output.Intent),
		Sentiment: string(output.Sentiment),
		Tips:      output.Tips,
	}
}

// ToSummaryResponse converts a SummarizeConversationOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *chat.SummarizeConversationOutput) SummaryResponse {
	return SummaryResponse{
		Summary:     output.Summary,
		TurnCount:   output.TurnCount,
		ModelBacked: output.ModelBacked,
	}
}

// ToAnswerResponse converts an AnswerQuestionOutput to an AnswerResponse DTO.
func ToAnswerResponse(output *chat.AnswerQuestionOutput) AnswerResponse {
	return AnswerResponse{
		Answer:     output.Answer,
		Confidence: output.Confidence,
	}
}
