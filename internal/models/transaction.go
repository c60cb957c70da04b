package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionIncome   TransactionType = "INCOME"
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionTransfer TransactionType = "TRANSFER"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusCanceled  TransactionStatus = "CANCELED"
)

// Transaction is the database representation of a transaction row.
// Tags persist as a text array; DestinationAccountID is nullable and only
// populated for transfers.
type Transaction struct {
	TransactionID        string            `db:"transaction_id"`
	Date                 time.Time         `db:"date"`
	Description          string            `db:"description"`
	Amount               decimal.Decimal   `db:"amount"`
	TransactionType      TransactionType   `db:"transaction_type"`
	AccountID            string            `db:"account_id"`
	DestinationAccountID string            `db:"destination_account_id"`
	Category             string            `db:"category"`
	Tags                 []string          `db:"tags"`
	PaymentMethod        string            `db:"payment_method"`
	Status               TransactionStatus `db:"status"`
	OwnerID              string            `db:"owner_id"`
	AuditFields
}
