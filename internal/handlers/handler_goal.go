package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// goalHandler handles HTTP requests related to financial goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{
		goalService: gs,
	}
}

// registerGoalRoutes registers routes related to financial goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.PATCH("/:id/progress", h.updateGoalProgress)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// createGoal godoc
// @Summary Create a new financial goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.Response{data=dto.GoalResponse}
// @Failure 400 {object} dto.Response "Validation error (non-positive target, negative current)"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToGoalResponse(goal)))
}

// getGoal godoc
// @Summary Get a goal by ID
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 200 {object} dto.Response{data=dto.GoalResponse}
// @Failure 404 {object} dto.Response "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve goal")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToGoalResponse(goal)))
}

// listGoals godoc
// @Summary List goals
// @Tags goals
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.GoalResponse}
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToGoalResponses(goals)))
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   id path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.GoalResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update goal")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToGoalResponse(goal)))
}

// updateGoalProgress godoc
// @Summary Update a goal's progress
// @Description Sets the goal's current amount; progress may exceed 100%
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   id path string true "Goal ID"
// @Param   progress body dto.UpdateGoalProgressRequest true "New current amount"
// @Success 200 {object} dto.Response{data=dto.GoalResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Goal not found"
// @Security BearerAuth
// @Router /goals/{id}/progress [patch]
func (h *goalHandler) updateGoalProgress(c *gin.Context) {
	var req dto.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goal, err := h.goalService.UpdateGoalProgress(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update goal progress")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToGoalResponse(goal)))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete goal")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessMessage("Goal deleted"))
}
