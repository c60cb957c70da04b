package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account is the database representation of a financial account.
// ParentID uses string for the nullable self-referencing foreign key.
type Account struct {
	AccountID   string      `db:"account_id"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	ParentID    string      `db:"parent_id"`
	OwnerID     string      `db:"owner_id"`
	AuditFields
}
