package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/core/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// MockReportRepository is a mock type for the ReportRepository interface
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.FinancialReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, ownerID string, reportID string) (*domain.FinancialReport, error) {
	args := m.Called(ctx, ownerID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context, ownerID string) ([]domain.FinancialReport, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialReport), args.Error(1)
}

func (m *MockReportRepository) UpdateReport(ctx context.Context, report domain.FinancialReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) DeleteReport(ctx context.Context, ownerID string, reportID string) error {
	args := m.Called(ctx, ownerID, reportID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ReportServiceTestSuite struct {
	suite.Suite
	mockReportRepo  *MockReportRepository
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.ReportSvcFacade
	ownerID         string
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockReportRepo = new(MockReportRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportService(suite.mockReportRepo, suite.mockTxnRepo, suite.mockAccountRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestGenerateIncomeStatement() {
	ctx := context.Background()
	accountID := uuid.NewString()
	txns := []domain.Transaction{
		makeTransaction(suite.ownerID, uuid.NewString(), accountID, domain.TransactionIncome, 3000, "Salary"),
		makeTransaction(suite.ownerID, uuid.NewString(), accountID, domain.TransactionExpense, 1200, "Rent"),
	}
	req := dto.GenerateReportRequest{StartDate: "2026-08-01", EndDate: "2026-08-31"}

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.ownerID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(txns, nil).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.MatchedBy(func(r domain.FinancialReport) bool {
		return r.ReportType == domain.ReportIncomeStatement &&
			r.Data.IncomeStatement != nil &&
			r.Data.IncomeStatement.NetIncome.Equal(decimal.NewFromInt(1800))
	})).Return(nil).Once()

	report, err := suite.service.GenerateIncomeStatement(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal("Income Statement 2026-08-01 - 2026-08-31", report.Name)
	suite.Require().NotNil(report.Data.IncomeStatement)
	suite.True(report.Data.IncomeStatement.Income.Total.Equal(decimal.NewFromInt(3000)))
	suite.mockReportRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateBalanceSheet_LoadsAccounts() {
	ctx := context.Background()
	checking := makeAccount(suite.ownerID, uuid.NewString(), "")
	checking.Name = "Checking"
	txns := []domain.Transaction{
		makeTransaction(suite.ownerID, uuid.NewString(), checking.AccountID, domain.TransactionIncome, 500, "Salary"),
	}
	req := dto.GenerateReportRequest{Name: "My Sheet", StartDate: "2026-01-01", EndDate: "2026-12-31"}

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.ownerID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(txns, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.ownerID).Return([]domain.Account{checking}, nil).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.FinancialReport")).Return(nil).Once()

	report, err := suite.service.GenerateBalanceSheet(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal("My Sheet", report.Name)
	suite.Require().NotNil(report.Data.BalanceSheet)
	suite.True(report.Data.BalanceSheet.Assets.Total.Equal(decimal.NewFromInt(500)))
	suite.True(report.Data.BalanceSheet.Equity.Equal(decimal.NewFromInt(500)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateCashFlow_InvalidPeriod() {
	ctx := context.Background()
	req := dto.GenerateReportRequest{StartDate: "2026-08-31", EndDate: "2026-08-01"}

	report, err := suite.service.GenerateCashFlow(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestCreateReport_PayloadMustMatchType() {
	ctx := context.Background()
	req := dto.CreateReportRequest{
		Name:       "Hand-built",
		ReportType: domain.ReportIncomeStatement,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-31",
		Data: map[string]any{
			// balance sheet keys under an income statement type
			"assets": map[string]any{"total": "100"},
		},
	}

	report, err := suite.service.CreateReport(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "SaveReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestUpdateReport_MergedDatesValidated() {
	ctx := context.Background()
	reportID := uuid.NewString()
	now := time.Now()
	report := domain.FinancialReport{
		ReportID:    reportID,
		Name:        "August",
		ReportType:  domain.ReportCashFlow,
		StartDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		OwnerID:     suite.ownerID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	badEnd := "2026-07-01"
	req := dto.UpdateReportRequest{EndDate: &badEnd}

	suite.mockReportRepo.On("FindReportByID", ctx, suite.ownerID, reportID).Return(&report, nil).Once()

	updatedReport, err := suite.service.UpdateReport(ctx, suite.ownerID, reportID, req)

	suite.Require().Error(err)
	suite.Nil(updatedReport)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "UpdateReport", mock.Anything, mock.Anything)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
