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

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
	"github.com/ledgerhouse/general_ledger_app/internal/handlers"
	"github.com/ledgerhouse/general_ledger_app/internal/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, organizationID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	args := m.Called(ctx, organizationID, accountID, userID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	args := m.Called(ctx, organizationID, accountID, userID)
	return args.Error(0)
}

// --- Test Suite ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gla-test",
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

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	container := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *AccountHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	reqBody := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	created := &domain.Account{
		AccountID:      accountID,
		OrganizationID: orgID,
		Code:           "1000",
		Name:           "Cash",
		AccountType:    domain.Asset,
		CurrencyCode:   "USD",
		IsActive:       true,
		Balance:        decimal.Zero,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		orgID,
		mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
			return r.Code == "1000" && r.Name == "Cash" && r.AccountType == domain.Asset
		}),
		userID, // Taken from the token subject
	).Return(created, nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID)
	w := suite.doRequest(http.MethodPost, url, userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.Equal("1000", resp.Code)
	suite.True(resp.IsActive)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	reqBody := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash Again",
		AccountType: domain.Asset,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, orgID, mock.AnythingOfType("dto.CreateAccountRequest"), userID).
		Return(nil, fmt.Errorf("%w: account code %q already exists", apperrors.ErrDuplicate, "1000")).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID)
	w := suite.doRequest(http.MethodPost, url, userID, reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_WithCurrencyCode() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	eur := "EUR"

	reqBody := dto.CreateAccountRequest{
		Code:         "1100",
		Name:         "EUR Cash",
		AccountType:  domain.Asset,
		CurrencyCode: &eur,
	}
	created := &domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: orgID,
		Code:           "1100",
		Name:           "EUR Cash",
		AccountType:    domain.Asset,
		CurrencyCode:   "EUR",
		IsActive:       true,
		Balance:        decimal.Zero,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		orgID,
		mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
			return r.CurrencyCode != nil && *r.CurrencyCode == "EUR"
		}),
		userID,
	).Return(created, nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID)
	w := suite.doRequest(http.MethodPost, url, userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MalformedCurrencyCode() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	// Lowercase code fails the uppercase,len=3 binding before the service
	body := map[string]any{
		"code":         "1100",
		"name":         "EUR Cash",
		"accountType":  "ASSET",
		"currencyCode": "eur",
	}

	url := fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID)
	w := suite.doRequest(http.MethodPost, url, userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingRequiredFields() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	// Missing code and account type fails binding before the service is reached
	url := fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID)
	w := suite.doRequest(http.MethodPost, url, userID, map[string]string{"name": "No Code"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, orgID, accountID).
		Return(nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotFound, accountID)).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/accounts/%s", orgID, accountID)
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_BusinessRuleViolation() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeleteAccount", mock.Anything, orgID, accountID, userID).
		Return(fmt.Errorf("%w: account %s has journal activity and cannot be deleted", apperrors.ErrBusinessRule, accountID)).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/accounts/%s", orgID, accountID)
	w := suite.doRequest(http.MethodDelete, url, userID, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_RequiresToken() {
	orgID := uuid.NewString()

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID), nil)
	suite.Require().NoError(err)
	// No Authorization header

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
