package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finova/backend/internal/application/usecase/session"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
	"github.com/finova/backend/internal/integration/entrypoint/middleware"
)

// SessionController handles session lifecycle endpoints.
type SessionController struct {
	startUseCase *session.StartSessionUseCase
	getUseCase   *session.GetSessionUseCase
	endUseCase   *session.EndSessionUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	startUseCase *session.StartSessionUseCase,
	getUseCase *session.GetSessionUseCase,
	endUseCase *session.EndSessionUseCase,
) *SessionController {
	return &SessionController{
		startUseCase: startUseCase,
		getUseCase:   getUseCase,
		endUseCase:   endUseCase,
	}
}

// Start handles POST /sessions requests.
func (c *SessionController) Start(ctx *gin.Context) {
	output, err := c.startUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StartSessionResponse{
		SessionID: output.Session.ID.String(),
		Token:     output.Token,
		CreatedAt: output.Session.CreatedAt,
	})
}

// Get handles GET /sessions/me requests.
func (c *SessionController) Get(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), session.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// End handles DELETE /sessions/me requests.
func (c *SessionController) End(ctx *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	if err := c.endUseCase.Execute(ctx.Request.Context(), session.EndSessionInput{
		SessionID: sessionID,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
