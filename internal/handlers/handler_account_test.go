package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/handlers"
	"github.com/contafacil/contafacil-backend/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountTree(ctx context.Context, ownerID string) ([]domain.FlattenedAccount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlattenedAccount), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	args := m.Called(ctx, ownerID, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "contafacil-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAccountService = new(MockAccountService)

	// IsProduction skips the swagger routes in tests
	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	userID := uuid.NewString()
	now := time.Now()
	accounts := []domain.Account{
		{
			AccountID:   uuid.NewString(),
			Name:        "Checking",
			AccountType: domain.Asset,
			OwnerID:     userID,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		},
	}

	suite.mockAccountService.On("ListAccounts", mock.Anything, userID).Return(accounts, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Status string                `json:"status"`
		Data   []dto.AccountResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("success", resp.Status)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("Checking", resp.Data[0].Name)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	now := time.Now()
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Savings",
		AccountType: domain.Asset,
		OwnerID:     userID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, userID, mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
		return r.Name == "Savings" && r.AccountType == domain.Asset
	})).Return(created, nil).Once()

	body, _ := json.Marshal(map[string]any{"name": "Savings", "type": "ASSET"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidType() {
	userID := uuid.NewString()

	body, _ := json.Marshal(map[string]any{"name": "Bad", "type": "SOMETHING"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_WithChildrenConflict() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeleteAccount", mock.Anything, userID, accountID).
		Return(fmt.Errorf("account still has child accounts: %w", apperrors.ErrConflict)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)

	var resp dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("error", resp.Status)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountTree_Success() {
	userID := uuid.NewString()
	tree := []domain.FlattenedAccount{
		{AccountID: uuid.NewString(), Path: "Assets", AccountType: domain.Asset, Depth: 0},
		{AccountID: uuid.NewString(), Path: "Assets > Bank", AccountType: domain.Asset, Depth: 1},
	}

	suite.mockAccountService.On("GetAccountTree", mock.Anything, userID).Return(tree, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/tree", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Status string                         `json:"status"`
		Data   []dto.FlattenedAccountResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Data, 2)
	suite.Equal("Assets > Bank", resp.Data[1].Path)
	suite.Equal(1, resp.Data[1].Depth)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
