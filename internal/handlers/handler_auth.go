package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/middleware"
	"github.com/contafacil/contafacil-backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token)

	// 5 attempts per minute per IP on the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.Logout)
	}

	registerGoogleOAuthRoutes(auth, services)
}

// buildAuthResponse issues a fresh token pair for the user.
func (h *AuthHandler) buildAuthResponse(c *gin.Context, user *domain.User) (*dto.AuthResponse, error) {
	ctx := c.Request.Context()

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User registration info"
// @Success 201 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 409 {object} dto.Response "Email already registered"
// @Failure 429 {object} dto.Response "Too many attempts"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	authResp, err := h.buildAuthResponse(c, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(authResp))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Failure 429 {object} dto.Response "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	authResp, err := h.buildAuthResponse(c, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(authResp))
}

// Refresh godoc
// @Summary Refresh the token pair
// @Description Exchanges a valid refresh token for a new token pair; the old refresh token is rotated out
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "User ID and refresh token"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 401 {object} dto.Response "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh token")
		return
	}

	// Issuing a new pair stores a new hash, invalidating the presented token
	authResp, err := h.buildAuthResponse(c, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(authResp))
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the current user's refresh token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "Failed to log out")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessMessage("Logged out"))
}
