// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// SessionIDKey is the context key for the authenticated session's ID.
const SessionIDKey ContextKey = "session_id"

// SessionAuthMiddleware validates the signed session token on each request.
type SessionAuthMiddleware struct {
	tokenService adapter.SessionTokenService
}

// NewSessionAuthMiddleware creates a new session auth middleware instance.
func NewSessionAuthMiddleware(tokenService adapter.SessionTokenService) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces session
// token authentication.
func (m *SessionAuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingSessionToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidSessionToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Session token is required",
				Code:  string(domainerror.ErrCodeMissingSessionToken),
			})
			c.Abort()
			return
		}

		sessionID, err := m.tokenService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired session token",
				Code:  string(domainerror.ErrCodeInvalidSessionToken),
			})
			c.Abort()
			return
		}

		c.Set(string(SessionIDKey), sessionID)

		c.Next()
	}
}

// GetSessionIDFromContext extracts the session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(string(SessionIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := sessionID.(uuid.UUID)
	return id, ok
}
