package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/tree", h.getAccountTree)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new account for the logged-in user
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.Response{data=dto.AccountResponse}
// @Failure 400 {object} dto.Response "Invalid input format or validation error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToAccountResponse(account)))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account owned by the logged-in user
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 404 {object} dto.Response "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToAccountResponse(account)))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account owned by the logged-in user
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.AccountResponse}
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToAccountResponses(accounts)))
}

// getAccountTree godoc
// @Summary Get the flattened account tree
// @Description Returns the user's accounts in hierarchy order with full "Parent > Child" paths
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.FlattenedAccountResponse}
// @Security BearerAuth
// @Router /accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tree, err := h.accountService.GetAccountTree(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to build account tree")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToFlattenedAccountResponses(tree)))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates an account's name, type or parent
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 400 {object} dto.Response "Validation error (including cycle-forming parents)"
// @Failure 404 {object} dto.Response "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToAccountResponse(account)))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account; fails with 409 while child accounts exist
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Account not found"
// @Failure 409 {object} dto.Response "Account still has children"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accountID := c.Param("id")
	if err := h.accountService.DeleteAccount(c.Request.Context(), userID, accountID); err != nil {
		respondServiceError(c, err, "Failed to delete account")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, dto.NewSuccessMessage("Account deleted"))
}
