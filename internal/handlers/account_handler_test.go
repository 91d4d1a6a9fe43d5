package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardledger/internal/dto"
	"cardledger/internal/models"
	"cardledger/internal/services"
	"cardledger/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	handler     *AccountHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountHandlerSuite runs the test suite
func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

// Helper method to create a test context with the user identity set
func (s *AccountHandlerSuite) createContext(method, path string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", userID)

	return c, rec
}

func (s *AccountHandlerSuite) testAccount() *models.Account {
	return &models.Account{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		AccountName: gofakeit.Company() + " Card",
		CreditLimit: decimal.NewFromInt(5000),
		AmountOwed:  decimal.NewFromInt(1500),
	}
}

// Test CreateAccount functionality
func (s *AccountHandlerSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{
		AccountName: "Sapphire Preferred",
		CreditLimit: decimal.NewFromInt(10000),
		AmountOwed:  decimal.NewFromInt(2500),
	}

	expectedAccount := &models.Account{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		AccountName: "Sapphire Preferred",
		CreditLimit: decimal.NewFromInt(10000),
		AmountOwed:  decimal.NewFromInt(2500),
		Position:    0,
	}

	s.mockService.EXPECT().
		CreateAccount(s.testUserID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
			s.Equal("Sapphire Preferred", req.AccountName)
			return expectedAccount, nil
		})

	c, rec := s.createContext("POST", "/accounts", reqBody, s.testUserID)

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CreateAccountResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal(expectedAccount.ID, resp.Account.ID)
	s.Equal(int64(25), resp.Account.Utilization)
}

func (s *AccountHandlerSuite) TestCreateAccount_MissingName() {
	reqBody := map[string]interface{}{
		"credit_limit": "5000",
	}

	c, rec := s.createContext("POST", "/accounts", reqBody, s.testUserID)

	err := s.handler.CreateAccount(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusBadRequest, rec.Code)
	s.NotEmpty(rec.Body.String())
}

func (s *AccountHandlerSuite) TestCreateAccount_NegativeAmount() {
	reqBody := map[string]interface{}{
		"account_name": "Bad Card",
		"credit_limit": "5000",
		"amount_owed":  "-100",
	}

	c, rec := s.createContext("POST", "/accounts", reqBody, s.testUserID)

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestCreateAccount_MissingIdentity() {
	reqBody := dto.CreateAccountRequest{
		AccountName: "Sapphire Preferred",
		CreditLimit: decimal.NewFromInt(10000),
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/accounts", bytes.NewBuffer(jsonBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("USER_001", errorResp.Error.Code)
}

// Test GetAccount functionality
func (s *AccountHandlerSuite) TestGetAccount_Success() {
	expectedAccount := s.testAccount()

	s.mockService.EXPECT().
		GetAccount(s.testUserID, expectedAccount.ID).
		Return(expectedAccount, nil)

	c, rec := s.createContext("GET", "/accounts/"+expectedAccount.ID.String(), nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(expectedAccount.ID.String())

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Equal(expectedAccount.ID, resp.ID)
	s.Equal(int64(30), resp.Utilization)
	s.True(resp.AvailableCredit.Equal(decimal.NewFromInt(3500)))
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		GetAccount(s.testUserID, accountID).
		Return(nil, services.ErrAccountNotFound)

	c, rec := s.createContext("GET", "/accounts/"+accountID.String(), nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("ACCOUNT_001", errorResp.Error.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_InvalidID() {
	c, rec := s.createContext("GET", "/accounts/not-a-uuid", nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("ACCOUNT_002", errorResp.Error.Code)
}

// Test ListAccounts functionality
func (s *AccountHandlerSuite) TestListAccounts_Success() {
	accounts := []models.Account{*s.testAccount(), *s.testAccount()}

	s.mockService.EXPECT().
		ListAccounts(s.testUserID, "").
		Return(accounts, nil)

	c, rec := s.createContext("GET", "/accounts", nil, s.testUserID)

	err := s.handler.ListAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountListResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	s.NoError(err)
	s.Len(resp.Accounts, 2)
	s.Equal(2, resp.Total)
}

func (s *AccountHandlerSuite) TestListAccounts_SortParam() {
	s.mockService.EXPECT().
		ListAccounts(s.testUserID, models.SortByAmountOwed).
		Return([]models.Account{}, nil)

	c, rec := s.createContext("GET", "/accounts?sort="+models.SortByAmountOwed, nil, s.testUserID)

	err := s.handler.ListAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestListAccounts_InvalidSort() {
	s.mockService.EXPECT().
		ListAccounts(s.testUserID, "feed_access_token").
		Return(nil, services.ErrInvalidSortField)

	c, rec := s.createContext("GET", "/accounts?sort=feed_access_token", nil, s.testUserID)

	err := s.handler.ListAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_003", errorResp.Error.Code)
}

// Test UpdateAccount functionality
func (s *AccountHandlerSuite) TestUpdateAccount_Success() {
	accountID := uuid.New()
	reqBody := dto.UpdateAccountRequest{
		AccountName: "Renamed Card",
		CreditLimit: decimal.NewFromInt(8000),
		AmountOwed:  decimal.NewFromInt(400),
	}

	updated := &models.Account{
		ID:          accountID,
		UserID:      s.testUserID,
		AccountName: "Renamed Card",
		CreditLimit: decimal.NewFromInt(8000),
		AmountOwed:  decimal.NewFromInt(400),
	}

	s.mockService.EXPECT().
		UpdateAccount(s.testUserID, accountID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
			s.Equal("Renamed Card", req.AccountName)
			return updated, nil
		})

	c, rec := s.createContext("PUT", "/accounts/"+accountID.String(), reqBody, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.UpdateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Renamed Card", resp.AccountName)
}

func (s *AccountHandlerSuite) TestUpdateAccount_NotFound() {
	accountID := uuid.New()
	reqBody := dto.UpdateAccountRequest{
		AccountName: "Renamed Card",
		CreditLimit: decimal.NewFromInt(8000),
	}

	s.mockService.EXPECT().
		UpdateAccount(s.testUserID, accountID, gomock.Any()).
		Return(nil, services.ErrAccountNotFound)

	c, rec := s.createContext("PUT", "/accounts/"+accountID.String(), reqBody, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.UpdateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// Test DeleteAccount functionality
func (s *AccountHandlerSuite) TestDeleteAccount_Success() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		DeleteAccount(s.testUserID, accountID).
		Return(nil)

	c, rec := s.createContext("DELETE", "/accounts/"+accountID.String(), nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.DeleteAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestDeleteAccount_NotFound() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		DeleteAccount(s.testUserID, accountID).
		Return(services.ErrAccountNotFound)

	c, rec := s.createContext("DELETE", "/accounts/"+accountID.String(), nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.DeleteAccount(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// Test RecordPayment functionality
func (s *AccountHandlerSuite) TestRecordPayment_Success() {
	accountID := uuid.New()
	reqBody := dto.RecordPaymentRequest{Amount: "120.00"}

	paid := &models.Account{
		ID:          accountID,
		UserID:      s.testUserID,
		AccountName: "Sapphire Preferred",
		CreditLimit: decimal.NewFromInt(5000),
		AmountOwed:  decimal.NewFromInt(380),
	}

	s.mockService.EXPECT().
		ApplyPayment(s.testUserID, accountID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
			if !amount.Equal(decimal.NewFromFloat(120.00)) {
				s.T().Errorf("expected amount 120.00, got %s", amount.String())
			}
			return paid, nil
		})

	c, rec := s.createContext("POST", "/accounts/"+accountID.String()+"/payments", reqBody, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.RecordPayment(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.AmountOwed.Equal(decimal.NewFromInt(380)))
}

func (s *AccountHandlerSuite) TestRecordPayment_MalformedAmount() {
	accountID := uuid.New()
	reqBody := dto.RecordPaymentRequest{Amount: "not-a-number"}

	c, rec := s.createContext("POST", "/accounts/"+accountID.String()+"/payments", reqBody, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.RecordPayment(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_006", errorResp.Error.Code)
}

func (s *AccountHandlerSuite) TestRecordPayment_NonPositiveAmount() {
	accountID := uuid.New()
	reqBody := dto.RecordPaymentRequest{Amount: "0"}

	s.mockService.EXPECT().
		ApplyPayment(s.testUserID, accountID, gomock.Any()).
		Return(nil, services.ErrInvalidPaymentAmount)

	c, rec := s.createContext("POST", "/accounts/"+accountID.String()+"/payments", reqBody, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.RecordPayment(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// Test ReorderAccounts functionality
func (s *AccountHandlerSuite) TestReorderAccounts_Success() {
	firstID := uuid.New()
	secondID := uuid.New()
	reqBody := dto.ReorderAccountsRequest{
		Order: []dto.ReorderEntry{
			{AccountID: firstID.String(), Position: 0},
			{AccountID: secondID.String(), Position: 1},
		},
	}

	s.mockService.EXPECT().
		ReorderAccounts(s.testUserID, map[uuid.UUID]int{firstID: 0, secondID: 1}).
		Return(nil)

	c, rec := s.createContext("PUT", "/accounts/order", reqBody, s.testUserID)

	err := s.handler.ReorderAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestReorderAccounts_PositionConflict() {
	firstID := uuid.New()
	reqBody := dto.ReorderAccountsRequest{
		Order: []dto.ReorderEntry{
			{AccountID: firstID.String(), Position: 0},
		},
	}

	s.mockService.EXPECT().
		ReorderAccounts(s.testUserID, gomock.Any()).
		Return(services.ErrPositionConflict)

	c, rec := s.createContext("PUT", "/accounts/order", reqBody, s.testUserID)

	err := s.handler.ReorderAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("ACCOUNT_005", errorResp.Error.Code)
}

func (s *AccountHandlerSuite) TestReorderAccounts_EmptyOrder() {
	reqBody := map[string]interface{}{
		"order": []interface{}{},
	}

	c, rec := s.createContext("PUT", "/accounts/order", reqBody, s.testUserID)

	err := s.handler.ReorderAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}
