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

// MockBudgetRepository is a mock type for the BudgetRepository interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, ownerID string) ([]domain.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	args := m.Called(ctx, ownerID, budgetID)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveBudgetCategory(ctx context.Context, category domain.BudgetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetCategoryByID(ctx context.Context, budgetID string, categoryID string) (*domain.BudgetCategory, error) {
	args := m.Called(ctx, budgetID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetCategory), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetCategories(ctx context.Context, budgetID string) ([]domain.BudgetCategory, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetCategory), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetCategory(ctx context.Context, category domain.BudgetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudgetCategory(ctx context.Context, budgetID string, categoryID string) error {
	args := m.Called(ctx, budgetID, categoryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBudgetRepository
	service  portssvc.BudgetSvcFacade
	ownerID  string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func makeBudget(ownerID, budgetID string) domain.Budget {
	now := time.Now()
	return domain.Budget{
		BudgetID:    budgetID,
		Name:        "Monthly",
		StartDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		OwnerID:     ownerID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_WithCategories() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:      "August",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		Categories: []dto.CreateBudgetCategoryRequest{
			{Name: "Food", Planned: decimal.NewFromInt(600)},
			{Name: "Transport", Planned: decimal.NewFromInt(200)},
		},
	}

	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return len(b.Categories) == 2 && b.Categories[0].BudgetID == b.BudgetID
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Len(budget.Categories, 2)
	suite.Equal(suite.ownerID, budget.OwnerID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:      "Backwards",
		StartDate: "2026-08-31",
		EndDate:   "2026-08-01",
	}

	budget, err := suite.service.CreateBudget(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NegativePlanned() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:      "August",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		Categories: []dto.CreateBudgetCategoryRequest{
			{Name: "Food", Planned: decimal.NewFromInt(-10)},
		},
	}

	budget, err := suite.service.CreateBudget(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_MergedDatesValidated() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	budget := makeBudget(suite.ownerID, budgetID)

	// Moving endDate before the existing startDate must fail
	badEnd := "2026-07-15"
	req := dto.UpdateBudgetRequest{EndDate: &badEnd}

	suite.mockRepo.On("FindBudgetByID", ctx, suite.ownerID, budgetID).Return(&budget, nil).Once()

	updatedBudget, err := suite.service.UpdateBudget(ctx, suite.ownerID, budgetID, req)

	suite.Require().Error(err)
	suite.Nil(updatedBudget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestAddCategory_BudgetNotOwned() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	req := dto.CreateBudgetCategoryRequest{Name: "Food", Planned: decimal.NewFromInt(100)}

	suite.mockRepo.On("FindBudgetByID", ctx, suite.ownerID, budgetID).Return(nil, apperrors.ErrNotFound).Once()

	category, err := suite.service.AddCategory(ctx, suite.ownerID, budgetID, req)

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudgetCategory", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpdateCategory_NegativeActualRejected() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	categoryID := uuid.NewString()
	budget := makeBudget(suite.ownerID, budgetID)
	category := domain.BudgetCategory{
		CategoryID: categoryID,
		BudgetID:   budgetID,
		Name:       "Food",
		Planned:    decimal.NewFromInt(100),
		Actual:     decimal.NewFromInt(20),
	}

	bad := decimal.NewFromInt(-1)
	req := dto.UpdateBudgetCategoryRequest{Actual: &bad}

	suite.mockRepo.On("FindBudgetByID", ctx, suite.ownerID, budgetID).Return(&budget, nil).Once()
	suite.mockRepo.On("FindBudgetCategoryByID", ctx, budgetID, categoryID).Return(&category, nil).Once()

	updatedCategory, err := suite.service.UpdateCategory(ctx, suite.ownerID, budgetID, categoryID, req)

	suite.Require().Error(err)
	suite.Nil(updatedCategory)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateBudgetCategory", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestRemoveCategory_Success() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	categoryID := uuid.NewString()
	budget := makeBudget(suite.ownerID, budgetID)
	category := domain.BudgetCategory{CategoryID: categoryID, BudgetID: budgetID, Name: "Food"}

	suite.mockRepo.On("FindBudgetByID", ctx, suite.ownerID, budgetID).Return(&budget, nil).Once()
	suite.mockRepo.On("FindBudgetCategoryByID", ctx, budgetID, categoryID).Return(&category, nil).Once()
	suite.mockRepo.On("DeleteBudgetCategory", ctx, budgetID, categoryID).Return(nil).Once()

	err := suite.service.RemoveCategory(ctx, suite.ownerID, budgetID, categoryID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListCategories_OwnershipChecked() {
	ctx := context.Background()
	budgetID := uuid.NewString()

	suite.mockRepo.On("FindBudgetByID", ctx, suite.ownerID, budgetID).Return(nil, apperrors.ErrNotFound).Once()

	categories, err := suite.service.ListCategories(ctx, suite.ownerID, budgetID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(categories)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListBudgetCategories", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListCategories_EmptyBudget() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	budget := makeBudget(suite.ownerID, budgetID)

	suite.mockRepo.On("FindBudgetByID", ctx, suite.ownerID, budgetID).Return(&budget, nil).Once()
	suite.mockRepo.On("ListBudgetCategories", ctx, budgetID).Return(nil, nil).Once()

	categories, err := suite.service.ListCategories(ctx, suite.ownerID, budgetID)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
