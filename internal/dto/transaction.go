package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Dates travel as calendar-date strings; amount positivity is checked in the
// service together with the referential rules.
type CreateTransactionRequest struct {
	Date                 string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Description          string                   `json:"description" binding:"required"`
	Amount               decimal.Decimal          `json:"amount" binding:"required"`
	TransactionType      domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	AccountID            string                   `json:"accountId" binding:"required"`
	DestinationAccountID string                   `json:"destinationAccountId" binding:"required_if=TransactionType TRANSFER"`
	Category             string                   `json:"category" binding:"required"`
	Tags                 []string                 `json:"tags"`
	PaymentMethod        string                   `json:"paymentMethod"`
	Status               domain.TransactionStatus `json:"status" binding:"required,oneof=PENDING COMPLETED CANCELED"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	Date                 *string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description          *string                   `json:"description"`
	Amount               *decimal.Decimal          `json:"amount"`
	TransactionType      *domain.TransactionType   `json:"type" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	AccountID            *string                   `json:"accountId"`
	DestinationAccountID *string                   `json:"destinationAccountId"`
	Category             *string                   `json:"category"`
	Tags                 []string                  `json:"tags"`
	PaymentMethod        *string                   `json:"paymentMethod"`
	Status               *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELED"`
}

// ListTransactionsParams defines the optional filters and pagination window
// for transaction listings. Filters combine as a conjunction.
type ListTransactionsParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	AccountID string `form:"accountId"`
	Category  string `form:"category"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELED"`
	Limit     int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset    int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string                   `json:"id"`
	Date                 string                   `json:"date"`
	Description          string                   `json:"description"`
	Amount               decimal.Decimal          `json:"amount"`
	TransactionType      domain.TransactionType   `json:"type"`
	AccountID            string                   `json:"accountId"`
	DestinationAccountID string                   `json:"destinationAccountId,omitempty"`
	Category             string                   `json:"category"`
	Tags                 []string                 `json:"tags,omitempty"`
	PaymentMethod        string                   `json:"paymentMethod,omitempty"`
	Status               domain.TransactionStatus `json:"status"`
	OwnerID              string                   `json:"ownerId"`
	CreatedAt            time.Time                `json:"createdAt"`
	UpdatedAt            time.Time                `json:"updatedAt"`
}

// TransactionSummaryResponse carries the dashboard aggregates for the
// current filter window.
type TransactionSummaryResponse struct {
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpenses     decimal.Decimal            `json:"totalExpenses"`
	Balance           decimal.Decimal            `json:"balance"`
	IncomeByCategory  map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		Date:                 txn.Date.Format(domain.DateFormat),
		Description:          txn.Description,
		Amount:               txn.Amount,
		TransactionType:      txn.TransactionType,
		AccountID:            txn.AccountID,
		DestinationAccountID: txn.DestinationAccountID,
		Category:             txn.Category,
		Tags:                 txn.Tags,
		PaymentMethod:        txn.PaymentMethod,
		Status:               txn.Status,
		OwnerID:              txn.OwnerID,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
