package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps a domain error to an HTTP response. Session
// errors can surface from any controller because every use case resolves
// the session first.
func respondDomainError(ctx *gin.Context, err error) {
	var sessionErr *domainerror.SessionError
	if errors.As(err, &sessionErr) {
		ctx.JSON(statusForSessionError(sessionErr.Code), dto.ErrorResponse{
			Error: sessionErr.Message,
			Code:  string(sessionErr.Code),
		})
		return
	}

	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		ctx.JSON(statusForProfileError(profileErr.Code), dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(statusForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	var inferenceErr *domainerror.InferenceError
	if errors.As(err, &inferenceErr) {
		ctx.JSON(statusForInferenceError(inferenceErr.Code), dto.ErrorResponse{
			Error: inferenceErr.Message,
			Code:  string(inferenceErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(statusForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForSessionError maps session error codes to HTTP status codes.
func statusForSessionError(code domainerror.SessionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingSessionToken, domainerror.ErrCodeInvalidSessionToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// statusForProfileError maps profile error codes to HTTP status codes.
func statusForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAge,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidRiskTolerance,
		domainerror.ErrCodeInvalidUserType,
		domainerror.ErrCodeMissingName,
		domainerror.ErrCodeImplausibleExpenses:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForExpenseError maps expense error codes to HTTP status codes.
func statusForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoExpenses:
		return http.StatusNotFound
	case domainerror.ErrCodeUnknownCategory, domainerror.ErrCodeInvalidExpenseAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForInferenceError maps inference error codes to HTTP status codes.
// Hosted endpoint failures surface to the client as coded errors; the API
// never retries on the caller's behalf.
func statusForInferenceError(code domainerror.InferenceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInferenceNotConfigured, domainerror.ErrCodeModelLoading:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInferenceTimeout:
		return http.StatusGatewayTimeout
	case domainerror.ErrCodeInferenceRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

// statusForReportError maps report error codes to HTTP status codes.
func statusForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeReportNeedsProfile:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecipient:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// unauthenticated writes the response for a request that reached a handler
// without a session ID in context.
func unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Session not authenticated",
		Code:  string(domainerror.ErrCodeMissingSessionToken),
	})
}
