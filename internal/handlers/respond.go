package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/middleware"
)

// requireUserID pulls the authenticated user from the request context.
// The auth middleware guarantees it for /api/v1 routes, so a miss is a
// server-side wiring problem, not a client error.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("User ID not found in request context")
		c.JSON(http.StatusUnauthorized, dto.NewError("Unauthorized"))
		return "", false
	}
	return userID, true
}

// respondBindingError answers a failed request binding with a 400 envelope.
func respondBindingError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.NewError("Invalid request format: "+err.Error()))
}

// respondServiceError maps service-layer sentinel errors onto HTTP statuses
// and answers with an error envelope. fallback is the message for unexpected
// errors, whose details stay in the log.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.NewError(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.NewError(err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.NewError(err.Error()))
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		logger.Warn("Refresh token expired")
		c.JSON(http.StatusUnauthorized, dto.NewError("Refresh token expired"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.NewError(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.NewError("Forbidden"))
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewError(fallback))
	}
}
