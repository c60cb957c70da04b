package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// budgetHandler handles HTTP requests related to budgets and their categories.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:id", h.getBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)

		budgets.GET("/:id/categories", h.listCategories)
		budgets.POST("/:id/categories", h.addCategory)
		budgets.PUT("/:id/categories/:categoryId", h.updateCategory)
		budgets.DELETE("/:id/categories/:categoryId", h.removeCategory)
	}
}

// createBudget godoc
// @Summary Create a new budget
// @Description Creates a budget, optionally with initial categories
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.Response{data=dto.BudgetResponse}
// @Failure 400 {object} dto.Response "Validation error (including endDate before startDate)"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create budget")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToBudgetResponse(budget)))
}

// getBudget godoc
// @Summary Get a budget by ID
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.Response{data=dto.BudgetResponse}
// @Failure 404 {object} dto.Response "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve budget")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToBudgetResponse(budget)))
}

// listBudgets godoc
// @Summary List budgets
// @Description Lists every budget owned by the logged-in user, categories included
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.BudgetResponse}
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToBudgetResponses(budgets)))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Updates a budget's name or period; categories are managed through their own endpoints
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   budget body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.BudgetResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update budget")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToBudgetResponse(budget)))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Deletes a budget together with its categories
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete budget")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessMessage("Budget deleted"))
}

// listCategories godoc
// @Summary List the categories of a budget
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.Response{data=[]dto.BudgetCategoryResponse}
// @Failure 404 {object} dto.Response "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id}/categories [get]
func (h *budgetHandler) listCategories(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	categories, err := h.budgetService.ListCategories(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list budget categories")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToBudgetCategoryResponses(categories)))
}

// addCategory godoc
// @Summary Add a category to a budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   category body dto.CreateBudgetCategoryRequest true "Category details"
// @Success 201 {object} dto.Response{data=dto.BudgetCategoryResponse}
// @Failure 400 {object} dto.Response "Validation error (negative amounts)"
// @Failure 404 {object} dto.Response "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id}/categories [post]
func (h *budgetHandler) addCategory(c *gin.Context) {
	var req dto.CreateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category, err := h.budgetService.AddCategory(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to add budget category")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToBudgetCategoryResponse(category)))
}

// updateCategory godoc
// @Summary Update a budget category
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   categoryId path string true "Category ID"
// @Param   category body dto.UpdateBudgetCategoryRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.BudgetCategoryResponse}
// @Failure 404 {object} dto.Response "Budget or category not found"
// @Security BearerAuth
// @Router /budgets/{id}/categories/{categoryId} [put]
func (h *budgetHandler) updateCategory(c *gin.Context) {
	var req dto.UpdateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category, err := h.budgetService.UpdateCategory(c.Request.Context(), userID, c.Param("id"), c.Param("categoryId"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update budget category")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToBudgetCategoryResponse(category)))
}

// removeCategory godoc
// @Summary Remove a category from a budget
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   categoryId path string true "Category ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Budget or category not found"
// @Security BearerAuth
// @Router /budgets/{id}/categories/{categoryId} [delete]
func (h *budgetHandler) removeCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.budgetService.RemoveCategory(c.Request.Context(), userID, c.Param("id"), c.Param("categoryId")); err != nil {
		respondServiceError(c, err, "Failed to remove budget category")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessMessage("Budget category removed"))
}
