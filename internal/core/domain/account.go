package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account represents a financial account within the core domain.
// Accounts form a forest via ParentID; an account with subaccounts cannot be
// deleted, and an account can never be its own ancestor.
type Account struct {
	AccountID   string      `json:"id"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"type"`
	ParentID    string      `json:"parentId,omitempty"` // Empty when the account is a root
	OwnerID     string      `json:"ownerId"`
	AuditFields
}

// FlattenedAccount is one row of the depth-first account tree flattening,
// used to populate selection lists ("Parent > Child > Grandchild").
type FlattenedAccount struct {
	AccountID   string      `json:"id"`
	Path        string      `json:"path"`
	AccountType AccountType `json:"type"`
	Depth       int         `json:"depth"`
}
