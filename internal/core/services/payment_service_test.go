package services_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/core/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByBill(ctx context.Context, billID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, billID, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment, audits []domain.AuditLog) (*domain.PaymentResult, error) {
	args := m.Called(ctx, payment, audits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, audit domain.AuditLog) error {
	args := m.Called(ctx, user, audit)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User, audit domain.AuditLog) error {
	args := m.Called(ctx, user, audit)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockBillRepo    *MockBillRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.PaymentSvcFacade
	actor           domain.Actor
	collector       *domain.User
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockBillRepo, suite.mockUserRepo)
	suite.actor = domain.Actor{UserID: uuid.NewString(), IPAddress: "127.0.0.1", UserAgent: "test"}
	suite.collector = &domain.User{
		UserID:   suite.actor.UserID,
		Username: "collector",
		Role:     domain.RoleRevenueOfficer,
		IsActive: true,
	}
}

func (suite *PaymentServiceTestSuite) pendingBill(payable string) *domain.Bill {
	return &domain.Bill{
		BillID:        uuid.NewString(),
		BillType:      domain.AccountTypeBusiness,
		ReferenceID:   uuid.NewString(),
		BillingYear:   time.Now().Year(),
		AmountPayable: decimal.RequireFromString(payable),
		Status:        domain.BillPending,
		ServedStatus:  domain.ServedStatusNotServed,
	}
}

// decodeSnapshot unmarshals an audit entry's new_values JSON.
func decodeSnapshot(a domain.AuditLog) map[string]any {
	snap := map[string]any{}
	if err := json.Unmarshal([]byte(a.NewValues), &snap); err != nil {
		return nil
	}
	return snap
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestRecordPayment_PartialSuccess() {
	ctx := context.Background()
	bill := suite.pendingBill("100.00")
	req := dto.RecordPaymentRequest{BillID: bill.BillID, Amount: decimal.RequireFromString("40.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()

	expected := &domain.PaymentResult{
		BillStatus:    domain.BillPartiallyPaid,
		BillRemaining: decimal.RequireFromString("60.00"),
		FullyPaid:     false,
	}
	suite.mockPaymentRepo.On("RecordPayment", ctx,
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.BillID == bill.BillID &&
				p.AmountPaid.Equal(req.Amount) &&
				p.Status == domain.PaymentSuccessful &&
				p.ProcessedBy == suite.actor.UserID &&
				strings.HasPrefix(p.Reference, "PAY")
		}),
		mock.MatchedBy(func(audits []domain.AuditLog) bool {
			if len(audits) != 1 || audits[0].Action != domain.ActionPaymentRecorded {
				return false
			}
			snap := decodeSnapshot(audits[0])
			if snap == nil {
				return false
			}
			ref, _ := snap["reference"].(string)
			beforeStr, _ := snap["billBalanceBefore"].(string)
			afterStr, _ := snap["billBalanceAfter"].(string)
			amountStr, _ := snap["amountPaid"].(string)
			before, beforeErr := decimal.NewFromString(beforeStr)
			after, afterErr := decimal.NewFromString(afterStr)
			amount, amountErr := decimal.NewFromString(amountStr)
			return strings.HasPrefix(ref, "PAY") &&
				beforeErr == nil && before.Equal(bill.AmountPayable) &&
				afterErr == nil && after.Equal(decimal.RequireFromString("60.00")) &&
				amountErr == nil && amount.Equal(req.Amount)
		}),
	).Return(expected, nil).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.False(result.FullyPaid)
	suite.Equal(domain.BillPartiallyPaid, result.BillStatus)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExactAmountFullyPaid() {
	ctx := context.Background()
	bill := suite.pendingBill("100.00")
	req := dto.RecordPaymentRequest{BillID: bill.BillID, Amount: decimal.RequireFromString("100.00"), Method: "Mobile Money"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()

	expected := &domain.PaymentResult{
		BillStatus:    domain.BillPaid,
		BillRemaining: decimal.Zero,
		FullyPaid:     true,
	}
	suite.mockPaymentRepo.On("RecordPayment", ctx, mock.AnythingOfType("domain.Payment"),
		mock.MatchedBy(func(audits []domain.AuditLog) bool {
			if len(audits) != 2 ||
				audits[0].Action != domain.ActionPaymentRecorded ||
				audits[1].Action != domain.ActionBillFullyPaid {
				return false
			}
			snap := decodeSnapshot(audits[0])
			if snap == nil {
				return false
			}
			ref, _ := snap["reference"].(string)
			afterStr, _ := snap["billBalanceAfter"].(string)
			after, afterErr := decimal.NewFromString(afterStr)
			return strings.HasPrefix(ref, "PAY") && afterErr == nil && after.IsZero()
		}),
	).Return(expected, nil).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.True(result.FullyPaid)
	suite.Equal(domain.BillPaid, result.BillStatus)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ReferenceCollisionRetry() {
	ctx := context.Background()
	bill := suite.pendingBill("100.00")
	req := dto.RecordPaymentRequest{BillID: bill.BillID, Amount: decimal.RequireFromString("40.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()

	// Each attempt's audit snapshot must carry that attempt's reference.
	var seenRefs []string
	capture := func(args mock.Arguments) {
		p := args.Get(1).(domain.Payment)
		audits := args.Get(2).([]domain.AuditLog)
		suite.Require().Len(audits, 1)
		snap := decodeSnapshot(audits[0])
		suite.Require().NotNil(snap)
		suite.Equal(p.Reference, snap["reference"])
		suite.True(strings.HasPrefix(p.Reference, "PAY"))
		seenRefs = append(seenRefs, p.Reference)
	}

	expected := &domain.PaymentResult{
		BillStatus:    domain.BillPartiallyPaid,
		BillRemaining: decimal.RequireFromString("60.00"),
	}
	suite.mockPaymentRepo.On("RecordPayment", ctx, mock.AnythingOfType("domain.Payment"), mock.Anything).
		Run(capture).Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockPaymentRepo.On("RecordPayment", ctx, mock.AnythingOfType("domain.Payment"), mock.Anything).
		Run(capture).Return(expected, nil).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(seenRefs, 2)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Overpayment() {
	ctx := context.Background()
	bill := suite.pendingBill("100.00")
	req := dto.RecordPaymentRequest{BillID: bill.BillID, Amount: decimal.RequireFromString("150.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BillAlreadyPaid() {
	ctx := context.Background()
	bill := suite.pendingBill("0.00")
	bill.Status = domain.BillPaid
	req := dto.RecordPaymentRequest{BillID: bill.BillID, Amount: decimal.RequireFromString("10.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{BillID: uuid.NewString(), Amount: decimal.Zero, Method: "Cash"}

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RoleNotAllowed() {
	ctx := context.Background()
	officer := &domain.User{UserID: suite.actor.UserID, Role: domain.RoleOfficer, IsActive: true}
	req := dto.RecordPaymentRequest{BillID: uuid.NewString(), Amount: decimal.RequireFromString("10.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(officer, nil).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "FindBillByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BillNotFound() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{BillID: uuid.NewString(), Amount: decimal.RequireFromString("10.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, req.BillID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ConcurrentConflict() {
	ctx := context.Background()
	bill := suite.pendingBill("100.00")
	req := dto.RecordPaymentRequest{BillID: bill.BillID, Amount: decimal.RequireFromString("100.00"), Method: "Cash"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.actor.UserID).Return(suite.collector, nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()
	suite.mockPaymentRepo.On("RecordPayment", ctx, mock.AnythingOfType("domain.Payment"), mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	result, err := suite.service.RecordPayment(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByBill_Success() {
	ctx := context.Background()
	bill := suite.pendingBill("100.00")
	token := "next-page"
	payments := []domain.Payment{
		{PaymentID: uuid.NewString(), BillID: bill.BillID, AmountPaid: decimal.RequireFromString("40.00")},
		{PaymentID: uuid.NewString(), BillID: bill.BillID, AmountPaid: decimal.RequireFromString("20.00")},
	}

	suite.mockBillRepo.On("FindBillByID", ctx, bill.BillID).Return(bill, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByBill", ctx, bill.BillID, 20, (*string)(nil)).Return(payments, &token, nil).Once()

	resp, err := suite.service.ListPaymentsByBill(ctx, bill.BillID, dto.ListBillPaymentsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Payments, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

// --- Run Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
