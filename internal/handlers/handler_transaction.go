package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		txnService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/summary", h.getTransactionSummary)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// toFilter converts validated query params to the repository filter.
func toFilter(params dto.ListTransactionsParams) portsrepo.TransactionFilter {
	filter := portsrepo.TransactionFilter{
		Type:      domain.TransactionType(params.Type),
		AccountID: params.AccountID,
		Category:  params.Category,
		Status:    domain.TransactionStatus(params.Status),
		Limit:     params.Limit,
		Offset:    params.Offset,
	}
	if params.StartDate != "" {
		start, _ := time.Parse(domain.DateFormat, params.StartDate)
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, _ := time.Parse(domain.DateFormat, params.EndDate)
		filter.EndDate = &end
	}
	return filter
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Records an income, expense or transfer against the user's accounts
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Validation error, including unknown account references"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToTransactionResponse(txn)))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToTransactionResponse(txn)))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the user's transactions, filtered and paginated. Filters combine as a conjunction.
// @Tags transactions
// @Produce  json
// @Param   startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param   type query string false "INCOME, EXPENSE or TRANSFER"
// @Param   accountId query string false "Source account the transaction was recorded against"
// @Param   category query string false "Exact category match"
// @Param   status query string false "PENDING, COMPLETED or CANCELED"
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   offset query int false "Rows to skip (default 0)"
// @Success 200 {object} dto.ListResponse{data=[]dto.TransactionResponse}
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txns, total, err := h.txnService.ListTransactions(c.Request.Context(), userID, toFilter(params))
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.NewList(dto.ToTransactionResponses(txns), total, params.Limit, params.Offset))
}

// getTransactionSummary godoc
// @Summary Summarize transactions
// @Description Aggregates completed transactions into income/expense totals and per-category breakdowns; accepts the same filters as the list endpoint
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.Response{data=dto.TransactionSummaryResponse}
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getTransactionSummary(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.txnService.GetTransactionSummary(c.Request.Context(), userID, toFilter(params))
	if err != nil {
		respondServiceError(c, err, "Failed to summarize transactions")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(summary))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates a transaction; the merged result is validated like a fresh create
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToTransactionResponse(txn)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessMessage("Transaction deleted"))
}
