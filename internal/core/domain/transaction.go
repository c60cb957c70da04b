package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in, money out, or a
// movement between two of the owner's accounts.
type TransactionType string

const (
	TransactionIncome   TransactionType = "INCOME"
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionTransfer TransactionType = "TRANSFER"
)

// TransactionStatus is the settlement state of a transaction. Only COMPLETED
// transactions participate in report and dashboard aggregation.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusCanceled  TransactionStatus = "CANCELED"
)

// Transaction is a single-sided, category-tagged money movement.
// Amount is always positive; TransactionType carries the direction.
// DestinationAccountID is only meaningful for transfers.
type Transaction struct {
	TransactionID        string            `json:"id"`
	Date                 time.Time         `json:"date"`
	Description          string            `json:"description"`
	Amount               decimal.Decimal   `json:"amount"`
	TransactionType      TransactionType   `json:"type"`
	AccountID            string            `json:"accountId"`
	DestinationAccountID string            `json:"destinationAccountId,omitempty"`
	Category             string            `json:"category"`
	Tags                 []string          `json:"tags,omitempty"`
	PaymentMethod        string            `json:"paymentMethod,omitempty"`
	Status               TransactionStatus `json:"status"`
	OwnerID              string            `json:"ownerId"`
	AuditFields
}

// IsTransfer reports whether the transaction moves money between two owned accounts.
func (t Transaction) IsTransfer() bool {
	return t.TransactionType == TransactionTransfer
}

// CountsTowardTotals reports whether the transaction participates in
// income/expense aggregation: completed and not a transfer.
func (t Transaction) CountsTowardTotals() bool {
	return t.Status == StatusCompleted && !t.IsTransfer()
}
