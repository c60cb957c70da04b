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
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/core/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsInRange(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransactionSvcFacade
	ownerID         string
	accountID       string
	account         domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo)
	suite.ownerID = uuid.NewString()
	suite.accountID = uuid.NewString()
	suite.account = makeAccount(suite.ownerID, suite.accountID, "")
}

func (suite *TransactionServiceTestSuite) expenseRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:            "2026-08-15",
		Description:     "Groceries",
		Amount:          decimal.NewFromFloat(125.50),
		TransactionType: domain.TransactionExpense,
		AccountID:       suite.accountID,
		Category:        "Food",
		Status:          domain.StatusCompleted,
	}
}

func makeTransaction(ownerID, transactionID, accountID string, txnType domain.TransactionType, amount float64, category string) domain.Transaction {
	now := time.Now()
	return domain.Transaction{
		TransactionID:   transactionID,
		Date:            now,
		Description:     "txn " + transactionID,
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: txnType,
		AccountID:       accountID,
		Category:        category,
		Status:          domain.StatusCompleted,
		OwnerID:         ownerID,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := suite.expenseRequest()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, suite.accountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("2026-08-15", txn.Date.Format(domain.DateFormat))
	suite.True(txn.Amount.Equal(req.Amount))
	suite.Equal(suite.ownerID, txn.OwnerID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.expenseRequest()
	req.Amount = decimal.Zero

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountNotOwned() {
	ctx := context.Background()
	req := suite.expenseRequest()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, suite.accountID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferNeedsDistinctDestination() {
	ctx := context.Background()
	req := suite.expenseRequest()
	req.TransactionType = domain.TransactionTransfer
	req.DestinationAccountID = suite.accountID

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, suite.accountID).Return(&suite.account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Transfer() {
	ctx := context.Background()
	destID := uuid.NewString()
	dest := makeAccount(suite.ownerID, destID, "")
	req := suite.expenseRequest()
	req.TransactionType = domain.TransactionTransfer
	req.DestinationAccountID = destID

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, suite.accountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, destID).Return(&dest, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(destID, txn.DestinationAccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DestinationOnNonTransfer() {
	ctx := context.Background()
	req := suite.expenseRequest()
	req.DestinationAccountID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, suite.accountID).Return(&suite.account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RevalidatesMergedState() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := makeTransaction(suite.ownerID, transactionID, suite.accountID, domain.TransactionExpense, 40, "Food")

	// Merged amount is negative, so the update must be rejected
	bad := decimal.NewFromFloat(-5)
	req := dto.UpdateTransactionRequest{Amount: &bad}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(&existing, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.ownerID, transactionID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_LeavingTransferDropsDestination() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	destID := uuid.NewString()
	existing := makeTransaction(suite.ownerID, transactionID, suite.accountID, domain.TransactionTransfer, 100, "Moves")
	existing.DestinationAccountID = destID

	newType := domain.TransactionExpense
	req := dto.UpdateTransactionRequest{TransactionType: &newType}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(&existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.ownerID, suite.accountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionType == domain.TransactionExpense && t.DestinationAccountID == ""
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.ownerID, transactionID, req)

	suite.Require().NoError(err)
	suite.Empty(txn.DestinationAccountID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionSummary_DisablesPagination() {
	ctx := context.Background()
	txns := []domain.Transaction{
		makeTransaction(suite.ownerID, uuid.NewString(), suite.accountID, domain.TransactionIncome, 1000, "Salary"),
		makeTransaction(suite.ownerID, uuid.NewString(), suite.accountID, domain.TransactionExpense, 300, "Rent"),
		makeTransaction(suite.ownerID, uuid.NewString(), suite.accountID, domain.TransactionExpense, 100, "Food"),
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.ownerID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Limit == 0 && f.Offset == 0
	})).Return(txns, len(txns), nil).Once()

	summary, err := suite.service.GetTransactionSummary(ctx, suite.ownerID, portsrepo.TransactionFilter{Limit: 10, Offset: 20})

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(400)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(600)))
	suite.True(summary.ExpenseByCategory["Rent"].Equal(decimal.NewFromInt(300)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.ownerID, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.ownerID, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
