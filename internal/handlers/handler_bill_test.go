package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/handlers"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) ListBillsByAccount(ctx context.Context, accountType domain.AccountType, referenceID string) (*dto.ListBillsResponse, error) {
	args := m.Called(ctx, accountType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBillsResponse), args.Error(1)
}

func (m *MockBillService) UpdateServingStatus(ctx context.Context, billID string, req dto.UpdateServingStatusRequest, actor domain.Actor) (*dto.ServingStatusResponse, error) {
	args := m.Called(ctx, billID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ServingStatusResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByBill(ctx context.Context, billID string, params dto.ListBillPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, billID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actor domain.Actor) (*domain.PaymentResult, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type BillHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBillService    *MockBillService
	mockPaymentService *MockPaymentService
	jwtSecret          string
	userID             string
}

func (suite *BillHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "quickbill-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *BillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBillService = new(MockBillService)
	suite.mockPaymentService = new(MockPaymentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBillRoutes(v1, suite.mockBillService, suite.mockPaymentService)
}

func (suite *BillHandlerTestSuite) doRequest(method, url string, body any, role domain.UserRole) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, role))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BillHandlerTestSuite) TestGetBill_Success() {
	bill := &domain.Bill{
		BillID:        uuid.NewString(),
		BillType:      domain.AccountTypeBusiness,
		ReferenceID:   uuid.NewString(),
		BillingYear:   2026,
		AmountPayable: decimal.RequireFromString("65.00"),
		Status:        domain.BillPending,
		ServedStatus:  domain.ServedStatusNotServed,
	}

	suite.mockBillService.On("GetBillByID", mock.Anything, bill.BillID).Return(bill, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills/"+bill.BillID, nil, domain.RoleOfficer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(bill.BillID, resp.BillID)
	suite.Equal(2026, resp.BillingYear)
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestGetBill_NotFound() {
	billID := uuid.NewString()
	suite.mockBillService.On("GetBillByID", mock.Anything, billID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills/"+billID, nil, domain.RoleOfficer)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BillHandlerTestSuite) TestGetBill_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bills/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *BillHandlerTestSuite) TestUpdateServingStatus_Success() {
	billID := uuid.NewString()
	reqBody := dto.UpdateServingStatusRequest{Status: "Served", Notes: "Handed to the manager"}

	now := time.Now()
	expected := &dto.ServingStatusResponse{
		Success:  true,
		Message:  "Serving status updated",
		Status:   "Served",
		ServedAt: &now,
		ServedBy: &suite.userID,
	}

	suite.mockBillService.On("UpdateServingStatus", mock.Anything, billID, reqBody,
		mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == suite.userID }),
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bills/"+billID+"/serving-status", reqBody, domain.RoleOfficer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ServingStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("Served", resp.Status)
	suite.Require().NotNil(resp.ServedBy)
	suite.Equal(suite.userID, *resp.ServedBy)
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestUpdateServingStatus_InvalidStatus() {
	billID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/bills/"+billID+"/serving-status",
		map[string]string{"status": "Lost"}, domain.RoleOfficer)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBillService.AssertNotCalled(suite.T(), "UpdateServingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestListBillPayments_Success() {
	billID := uuid.NewString()
	expected := &dto.ListPaymentsResponse{
		Payments: []dto.PaymentResponse{
			{PaymentID: uuid.NewString(), BillID: billID, AmountPaid: decimal.RequireFromString("40.00"), Method: "Cash"},
		},
	}

	suite.mockPaymentService.On("ListPaymentsByBill", mock.Anything, billID,
		mock.MatchedBy(func(p dto.ListBillPaymentsParams) bool { return p.Limit == 20 }),
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills/"+billID+"/payments", nil, domain.RoleRevenueOfficer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Payments, 1)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestBillHandler(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}
