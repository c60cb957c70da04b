package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

func TestDecodeReportData_SelectsBranchByType(t *testing.T) {
	raw := []byte(`{"income":{"total":"1000","categories":{"Salary":"1000"}},"expenses":{"total":"400","categories":{"Rent":"400"}},"netIncome":"600"}`)

	data, err := domain.DecodeReportData(domain.ReportIncomeStatement, raw)

	require.NoError(t, err)
	require.NotNil(t, data.IncomeStatement)
	assert.Nil(t, data.BalanceSheet)
	assert.Nil(t, data.CashFlow)
	assert.True(t, data.IncomeStatement.NetIncome.Equal(decimal.NewFromInt(600)))
	assert.True(t, data.IncomeStatement.Income.Categories["Salary"].Equal(decimal.NewFromInt(1000)))
}

func TestDecodeReportData_RejectsMismatchedShape(t *testing.T) {
	// A balance sheet payload under a cash flow type must not decode
	raw := []byte(`{"assets":{"total":"100","categories":{}},"liabilities":{"total":"0","categories":{}},"equity":"100"}`)

	_, err := domain.DecodeReportData(domain.ReportCashFlow, raw)

	assert.Error(t, err)
}

func TestDecodeReportData_UnknownType(t *testing.T) {
	_, err := domain.DecodeReportData(domain.ReportType("PIE_CHART"), []byte(`{}`))

	assert.Error(t, err)
}

func TestDecodeReportData_EmptyPayload(t *testing.T) {
	data, err := domain.DecodeReportData(domain.ReportBalanceSheet, nil)

	require.NoError(t, err)
	assert.Nil(t, data.BalanceSheet)
}

func TestReportData_MarshalEmitsActiveBranch(t *testing.T) {
	data := domain.ReportData{
		CashFlow: &domain.CashFlowData{
			Inflows:     domain.CategoryTotals{Total: decimal.NewFromInt(500), Categories: map[string]decimal.Decimal{"Salary": decimal.NewFromInt(500)}},
			Outflows:    domain.CategoryTotals{Total: decimal.NewFromInt(200), Categories: map[string]decimal.Decimal{"Food": decimal.NewFromInt(200)}},
			NetCashFlow: decimal.NewFromInt(300),
		},
	}

	raw, err := json.Marshal(data)

	require.NoError(t, err)
	assert.JSONEq(t, `{"inflows":{"total":"500","categories":{"Salary":"500"}},"outflows":{"total":"200","categories":{"Food":"200"}},"netCashFlow":"300"}`, string(raw))
}

func TestReportData_MarshalNilBranches(t *testing.T) {
	raw, err := json.Marshal(domain.ReportData{})

	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
