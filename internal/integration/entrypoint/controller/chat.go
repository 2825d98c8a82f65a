package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/usecase/chat"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// ChatController handles chat endpoints.
type ChatController struct {
	sendUseCase      *chat.SendMessageUseCase
	summarizeUseCase *chat.SummarizeConversationUseCase
	answerUseCase    *chat.AnswerQuestionUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(
	sendUseCase *chat.SendMessageUseCase,
	summarizeUseCase *chat.SummarizeConversationUseCase,
	answerUseCase *chat.AnswerQuestionUseCase,
) *ChatController {
	return &ChatController{
		sendUseCase:      sendUseCase,
		summarizeUseCase: summarizeUseCase,
		answerUseCase:    answerUseCase,
	}
}

// SendMessage handles POST /chat/messages requests.
func (c *ChatController) SendMessage(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyMessage),
		})
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), chat.SendMessageInput{
		SessionID: sessionID,
		Message:   req.Message,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatReplyResponse(output))
}

// Summarize handles GET /chat/summary requests.
func (c *ChatController) Summarize(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.summarizeUseCase.Execute(ctx.Request.Context(), chat.SummarizeConversationInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// AnswerQuestion handles POST /chat/answers requests.
func (c *ChatController) AnswerQuestion(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.AnswerQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyMessage),
		})
		return
	}

	output, err := c.answerUseCase.Execute(ctx.Request.Context(), chat.AnswerQuestionInput{
		SessionID: sessionID,
		Question:  req.Question,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnswerResponse(output))
}
