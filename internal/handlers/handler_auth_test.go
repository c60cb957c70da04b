package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/handlers"
	"github.com/contafacil/contafacil-backend/internal/platform/config"
)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// postCredential fires a malformed body at a credential endpoint; binding
// rejects it before any service is touched, leaving throttling observable.
func (suite *AuthHandlerTestSuite) postCredential(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_RateLimited() {
	for i := 0; i < 5; i++ {
		w := suite.postCredential("/api/v1/auth/register")
		suite.Equal(http.StatusBadRequest, w.Code, "attempt %d should pass the limiter", i+1)
	}

	w := suite.postCredential("/api/v1/auth/register")
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	for i := 0; i < 5; i++ {
		w := suite.postCredential("/api/v1/auth/login")
		suite.Equal(http.StatusBadRequest, w.Code, "attempt %d should pass the limiter", i+1)
	}

	w := suite.postCredential("/api/v1/auth/login")
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
