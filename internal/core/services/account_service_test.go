package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/core/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasChildAccounts(ctx context.Context, ownerID string, accountID string) (bool, error) {
	args := m.Called(ctx, ownerID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	args := m.Called(ctx, ownerID, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ownerID  string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func strPtr(s string) *string { return &s }

func makeAccount(ownerID, accountID, parentID string) domain.Account {
	now := time.Now()
	return domain.Account{
		AccountID:   accountID,
		Name:        "Account " + accountID,
		AccountType: domain.Asset,
		ParentID:    parentID,
		OwnerID:     ownerID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Checking",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(req.AccountType, created.AccountType)
	suite.Empty(created.ParentID)
	suite.Equal(suite.ownerID, created.OwnerID)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:        "Sub account",
		AccountType: domain.Expense,
		ParentID:    strPtr(parentID),
	}

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, parentID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateAccount(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_WithParent() {
	ctx := context.Background()
	parentID := uuid.NewString()
	parent := makeAccount(suite.ownerID, parentID, "")
	req := dto.CreateAccountRequest{
		Name:        "Savings",
		AccountType: domain.Asset,
		ParentID:    strPtr(parentID),
	}

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, parentID).Return(&parent, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(parentID, created.ParentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.ownerID, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RejectsCycle() {
	ctx := context.Background()
	rootID := uuid.NewString()
	childID := uuid.NewString()

	root := makeAccount(suite.ownerID, rootID, "")
	child := makeAccount(suite.ownerID, childID, rootID)
	all := []domain.Account{root, child}

	req := dto.UpdateAccountRequest{ParentID: strPtr(childID)}

	// Reparenting root under its own child must fail
	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, rootID).Return(&root, nil).Once()
	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, childID).Return(&child, nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, suite.ownerID).Return(all, nil).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, rootID, req)

	suite.Require().Error(err)
	suite.Nil(updatedAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RejectsSelfParent() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := makeAccount(suite.ownerID, accountID, "")

	req := dto.UpdateAccountRequest{ParentID: strPtr(accountID)}

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(&account, nil).Twice()
	suite.mockRepo.On("ListAccounts", ctx, suite.ownerID).Return([]domain.Account{account}, nil).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, accountID, req)

	suite.Require().Error(err)
	suite.Nil(updatedAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DetachParent() {
	ctx := context.Background()
	parentID := uuid.NewString()
	accountID := uuid.NewString()
	account := makeAccount(suite.ownerID, accountID, parentID)

	req := dto.UpdateAccountRequest{ParentID: strPtr("")}

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(&account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == accountID && a.ParentID == ""
	})).Return(nil).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, accountID, req)

	suite.Require().NoError(err)
	suite.Empty(updatedAccount.ParentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFields() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := makeAccount(suite.ownerID, accountID, "")

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(&account, nil).Once()

	updatedAccount, err := suite.service.UpdateAccount(ctx, suite.ownerID, accountID, dto.UpdateAccountRequest{})

	suite.Require().NoError(err)
	suite.Equal(account.Name, updatedAccount.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_WithChildren() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := makeAccount(suite.ownerID, accountID, "")

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(&account, nil).Once()
	suite.mockRepo.On("HasChildAccounts", ctx, suite.ownerID, accountID).Return(true, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.ownerID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := makeAccount(suite.ownerID, accountID, "")

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(&account, nil).Once()
	suite.mockRepo.On("HasChildAccounts", ctx, suite.ownerID, accountID).Return(false, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, suite.ownerID, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.ownerID, accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RepoError() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := makeAccount(suite.ownerID, accountID, "")
	repoErr := fmt.Errorf("connection reset")

	suite.mockRepo.On("FindAccountByID", ctx, suite.ownerID, accountID).Return(&account, nil).Once()
	suite.mockRepo.On("HasChildAccounts", ctx, suite.ownerID, accountID).Return(false, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, suite.ownerID, accountID).Return(repoErr).Once()

	err := suite.service.DeleteAccount(ctx, suite.ownerID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountTree_Ordering() {
	ctx := context.Background()
	rootID := uuid.NewString()
	childID := uuid.NewString()

	root := makeAccount(suite.ownerID, rootID, "")
	child := makeAccount(suite.ownerID, childID, rootID)

	suite.mockRepo.On("ListAccounts", ctx, suite.ownerID).Return([]domain.Account{child, root}, nil).Once()

	tree, err := suite.service.GetAccountTree(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().Len(tree, 2)
	suite.Equal(rootID, tree[0].AccountID)
	suite.Equal(0, tree[0].Depth)
	suite.Equal(childID, tree[1].AccountID)
	suite.Equal(1, tree[1].Depth)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
