package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/middleware"
)

// GoogleOAuthHandler handles the Google sign-in code exchange.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		oauthService: os,
		userService:  us,
		tokenService: ts,
	}
}

// registerGoogleOAuthRoutes mounts the Google exchange endpoint on the auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	auth.POST("/google/exchange-code", h.ExchangeCodeGoogle)
}

// ExchangeCodeGoogle godoc
// @Summary Sign in with Google
// @Description Exchanges a Google OAuth authorization code for a token pair, creating the user on first sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Invalid request"
// @Failure 401 {object} dto.Response "Code or ID token rejected"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	ctx := c.Request.Context()

	oauthToken, err := h.oauthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, dto.NewError("Failed to exchange authorization code"))
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Warn("Google token response missing id_token")
		c.JSON(http.StatusUnauthorized, dto.NewError("Google response missing ID token"))
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", "error", err)
		c.JSON(http.StatusUnauthorized, dto.NewError("Invalid Google ID token"))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, dto.NewError("Google ID token has no email claim"))
		return
	}
	if name == "" {
		name = email
	}

	user, err := h.resolveUser(c, name, email)
	if err != nil {
		respondServiceError(c, err, "Failed to sign in with Google")
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(&dto.AuthResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}))
}

// resolveUser finds the user by email or provisions one on first sign-in.
func (h *GoogleOAuthHandler) resolveUser(c *gin.Context, name, email string) (*domain.User, error) {
	ctx := c.Request.Context()

	user, err := h.userService.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Provisioning user from Google sign-in", "email", email)
	return h.userService.CreateOAuthUser(ctx, name, email)
}
