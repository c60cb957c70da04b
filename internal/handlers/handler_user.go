package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// userHandler handles HTTP requests for the current user's profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers routes related to the current user.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
		users.PUT("/me/preferences", h.updateMyPreferences)
	}
}

// getMe godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce  json
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToUserResponse(user)))
}

// updateMe godoc
// @Summary Update the current user's profile
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 409 {object} dto.Response "Email already registered"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToUserResponse(user)))
}

// updateMyPreferences godoc
// @Summary Update the current user's preferences
// @Tags users
// @Accept  json
// @Produce  json
// @Param   preferences body dto.UpdateUserPreferencesRequest true "Preference fields to update"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Security BearerAuth
// @Router /users/me/preferences [put]
func (h *userHandler) updateMyPreferences(c *gin.Context) {
	var req dto.UpdateUserPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUserPreferences(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToUserResponse(user)))
}
