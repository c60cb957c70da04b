package finance

import (
	"github.com/shopspring/decimal"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// TotalIncome sums the amounts of completed INCOME transactions.
func TotalIncome(txns []domain.Transaction) decimal.Decimal {
	return sumByType(txns, domain.TransactionIncome)
}

// TotalExpenses sums the amounts of completed EXPENSE transactions.
func TotalExpenses(txns []domain.Transaction) decimal.Decimal {
	return sumByType(txns, domain.TransactionExpense)
}

// Balance is total income minus total expenses over completed transactions.
func Balance(txns []domain.Transaction) decimal.Decimal {
	return TotalIncome(txns).Sub(TotalExpenses(txns))
}

func sumByType(txns []domain.Transaction, txnType domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Status == domain.StatusCompleted && txn.TransactionType == txnType {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// CategoryBreakdown groups completed transactions of the given type by
// category, summing amounts per group.
func CategoryBreakdown(txns []domain.Transaction, txnType domain.TransactionType) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Status != domain.StatusCompleted || txn.TransactionType != txnType {
			continue
		}
		breakdown[txn.Category] = breakdown[txn.Category].Add(txn.Amount)
	}
	return breakdown
}

// BuildIncomeStatement aggregates completed transactions into an income
// statement payload. netIncome = income.total - expenses.total.
func BuildIncomeStatement(txns []domain.Transaction) domain.IncomeStatementData {
	income := domain.CategoryTotals{
		Total:      TotalIncome(txns),
		Categories: CategoryBreakdown(txns, domain.TransactionIncome),
	}
	expenses := domain.CategoryTotals{
		Total:      TotalExpenses(txns),
		Categories: CategoryBreakdown(txns, domain.TransactionExpense),
	}
	return domain.IncomeStatementData{
		Income:    income,
		Expenses:  expenses,
		NetIncome: income.Total.Sub(expenses.Total),
	}
}

// BuildCashFlow aggregates completed transactions into a cash flow payload.
// Transfers do not move cash in or out of the user's holdings and are excluded.
func BuildCashFlow(txns []domain.Transaction) domain.CashFlowData {
	inflows := domain.CategoryTotals{
		Total:      TotalIncome(txns),
		Categories: CategoryBreakdown(txns, domain.TransactionIncome),
	}
	outflows := domain.CategoryTotals{
		Total:      TotalExpenses(txns),
		Categories: CategoryBreakdown(txns, domain.TransactionExpense),
	}
	return domain.CashFlowData{
		Inflows:     inflows,
		Outflows:    outflows,
		NetCashFlow: inflows.Total.Sub(outflows.Total),
	}
}

// AccountBalances computes the net balance of every account from completed
// transactions: income credits its account, expense debits it, a transfer
// debits the source and credits the destination.
func AccountBalances(txns []domain.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Status != domain.StatusCompleted {
			continue
		}
		switch txn.TransactionType {
		case domain.TransactionIncome:
			balances[txn.AccountID] = balances[txn.AccountID].Add(txn.Amount)
		case domain.TransactionExpense:
			balances[txn.AccountID] = balances[txn.AccountID].Sub(txn.Amount)
		case domain.TransactionTransfer:
			balances[txn.AccountID] = balances[txn.AccountID].Sub(txn.Amount)
			balances[txn.DestinationAccountID] = balances[txn.DestinationAccountID].Add(txn.Amount)
		}
	}
	return balances
}

// BuildBalanceSheet groups per-account balances under assets and liabilities
// by account name. Equity is derived, never stored: it always equals
// assets.total - liabilities.total.
func BuildBalanceSheet(accounts []domain.Account, txns []domain.Transaction) domain.BalanceSheetData {
	balances := AccountBalances(txns)

	assets := domain.CategoryTotals{Total: decimal.Zero, Categories: make(map[string]decimal.Decimal)}
	liabilities := domain.CategoryTotals{Total: decimal.Zero, Categories: make(map[string]decimal.Decimal)}

	for _, acc := range accounts {
		balance, ok := balances[acc.AccountID]
		if !ok {
			continue
		}
		switch acc.AccountType {
		case domain.Asset:
			assets.Categories[acc.Name] = assets.Categories[acc.Name].Add(balance)
			assets.Total = assets.Total.Add(balance)
		case domain.Liability:
			// A liability account accumulates what is owed; flip the sign so a
			// debt shows as a positive liability.
			owed := balance.Neg()
			liabilities.Categories[acc.Name] = liabilities.Categories[acc.Name].Add(owed)
			liabilities.Total = liabilities.Total.Add(owed)
		}
	}

	return domain.BalanceSheetData{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      assets.Total.Sub(liabilities.Total),
	}
}

// CategoryUtilization is actual/planned as a percentage, unclamped.
// It is zero when nothing is planned.
func CategoryUtilization(cat domain.BudgetCategory) decimal.Decimal {
	if !cat.Planned.IsPositive() {
		return decimal.Zero
	}
	return cat.Actual.Div(cat.Planned).Mul(hundred)
}

// OverallUtilization is sum(actual)/sum(planned) across categories as a
// percentage, unclamped.
func OverallUtilization(cats []domain.BudgetCategory) decimal.Decimal {
	planned := decimal.Zero
	actual := decimal.Zero
	for _, cat := range cats {
		planned = planned.Add(cat.Planned)
		actual = actual.Add(cat.Actual)
	}
	if !planned.IsPositive() {
		return decimal.Zero
	}
	return actual.Div(planned).Mul(hundred)
}

// ClampPercent caps a percentage at 100 for progress-bar style rendering.
// Stored and reported utilization stays unclamped.
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
