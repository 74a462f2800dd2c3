package services_test

import (
	"context"
	"fmt"
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

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockAccountRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockAccountRepository) ListBusinesses(ctx context.Context, zoneID int64, limit, offset int) ([]domain.Business, error) {
	args := m.Called(ctx, zoneID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockAccountRepository) ListProperties(ctx context.Context, zoneID int64, limit, offset int) ([]domain.Property, error) {
	args := m.Called(ctx, zoneID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockAccountRepository) SearchAccounts(ctx context.Context, query string, accountType domain.AccountType) ([]domain.AccountSearchResult, error) {
	args := m.Called(ctx, query, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSearchResult), args.Error(1)
}

func (m *MockAccountRepository) TotalSuccessfulPayments(ctx context.Context, accountType domain.AccountType, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountType, accountID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) SaveBusiness(ctx context.Context, business domain.Business, audit domain.AuditLog) error {
	args := m.Called(ctx, business, audit)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveProperty(ctx context.Context, property domain.Property, audit domain.AuditLog) error {
	args := m.Called(ctx, property, audit)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountType domain.AccountType, accountID string, updatedByUserID string, updatedAt time.Time, audit domain.AuditLog) error {
	args := m.Called(ctx, accountType, accountID, updatedByUserID, updatedAt, audit)
	return args.Error(0)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListBillsByAccount(ctx context.Context, billType domain.AccountType, referenceID string) ([]domain.Bill, error) {
	args := m.Called(ctx, billType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) DeliveryStatsByAccount(ctx context.Context, billType domain.AccountType, referenceID string) (*domain.DeliveryStats, error) {
	args := m.Called(ctx, billType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryStats), args.Error(1)
}

func (m *MockBillRepository) UpdateServingStatus(ctx context.Context, billID string, status domain.ServedStatus, notes string, servedBy *string, servedAt *time.Time, updatedByUserID string, updatedAt time.Time, audit domain.AuditLog) (*domain.Bill, error) {
	args := m.Called(ctx, billID, status, notes, servedBy, servedAt, updatedByUserID, updatedAt, audit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

// --- Mock FeeRepository ---
type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) FindActiveFee(ctx context.Context, businessType, category string) (*domain.FeeStructure, error) {
	args := m.Called(ctx, businessType, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func (m *MockFeeRepository) FindFeeByID(ctx context.Context, feeID int64) (*domain.FeeStructure, error) {
	args := m.Called(ctx, feeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func (m *MockFeeRepository) ListFees(ctx context.Context) ([]domain.FeeStructure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeStructure), args.Error(1)
}

// --- Mock ZoneRepository (reader only) ---
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) FindZoneByID(ctx context.Context, zoneID int64) (*domain.Zone, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindSubZoneByID(ctx context.Context, subZoneID int64) (*domain.SubZone, error) {
	args := m.Called(ctx, subZoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubZone), args.Error(1)
}

func (m *MockZoneRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Zone), args.Error(1)
}

func (m *MockZoneRepository) ListSubZones(ctx context.Context, zoneID int64) ([]domain.SubZone, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubZone), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockBillRepo    *MockBillRepository
	mockFeeRepo     *MockFeeRepository
	mockZoneRepo    *MockZoneRepository
	service         portssvc.AccountSvcFacade
	actor           domain.Actor
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockFeeRepo = new(MockFeeRepository)
	suite.mockZoneRepo = new(MockZoneRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockBillRepo, suite.mockFeeRepo, suite.mockZoneRepo)
	suite.actor = domain.Actor{UserID: uuid.NewString(), IPAddress: "127.0.0.1", UserAgent: "test"}
}

func (suite *AccountServiceTestSuite) registerBusinessRequest() dto.RegisterBusinessRequest {
	return dto.RegisterBusinessRequest{
		Name:         "Mama Put Kitchen",
		OwnerName:    "Ama Mensah",
		Telephone:    "0241234567",
		Location:     "Main Market, Stall 12",
		ZoneID:       1,
		BusinessType: "Retail",
		Category:     "Small",
		OldBill:      decimal.RequireFromString("20.00"),
		PreviousPayments: decimal.RequireFromString("10.00"),
		Arrears:      decimal.RequireFromString("5.00"),
		CurrentBill:  decimal.RequireFromString("50.00"),
	}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestRegisterBusiness_Success() {
	ctx := context.Background()
	req := suite.registerBusinessRequest()
	expectedPayable := decimal.RequireFromString("65.00") // 20 + 5 + 50 - 10

	suite.mockZoneRepo.On("FindZoneByID", ctx, int64(1)).Return(&domain.Zone{ZoneID: 1, Name: "Central", Code: "CEN"}, nil).Once()
	suite.mockFeeRepo.On("FindActiveFee", ctx, "Retail", "Small").Return(&domain.FeeStructure{
		FeeID:        1,
		BusinessType: "Retail",
		Category:     "Small",
		FeeAmount:    decimal.RequireFromString("50.00"),
		IsActive:     true,
	}, nil).Once()

	suite.mockAccountRepo.On("SaveBusiness", ctx,
		mock.MatchedBy(func(b domain.Business) bool {
			return b.AmountPayable.Equal(expectedPayable) &&
				b.Status == domain.AccountActive &&
				b.AccountNumber != "" &&
				b.CreatedBy == suite.actor.UserID
		}),
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionCreateBusiness && a.TableName == "businesses" && a.UserID == suite.actor.UserID
		}),
	).Return(nil).Once()

	business, err := suite.service.RegisterBusiness(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(business)
	suite.True(business.AmountPayable.Equal(expectedPayable))
	suite.Equal(domain.AccountTypeBusiness, business.AccountType)
	suite.NotEmpty(business.ID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterBusiness_AccountNumberCollisionRetry() {
	ctx := context.Background()
	req := suite.registerBusinessRequest()

	suite.mockZoneRepo.On("FindZoneByID", ctx, int64(1)).Return(&domain.Zone{ZoneID: 1}, nil).Once()
	suite.mockFeeRepo.On("FindActiveFee", ctx, "Retail", "Small").Return(&domain.FeeStructure{
		FeeAmount: decimal.RequireFromString("50.00"),
		IsActive:  true,
	}, nil).Once()

	// A colliding account number gets re-rolled; each attempt carries one.
	var seenNumbers []string
	capture := func(args mock.Arguments) {
		b := args.Get(1).(domain.Business)
		suite.True(strings.HasPrefix(b.AccountNumber, "BIZ"))
		seenNumbers = append(seenNumbers, b.AccountNumber)
	}
	suite.mockAccountRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business"), mock.AnythingOfType("domain.AuditLog")).
		Run(capture).Return(fmt.Errorf("%w: account number taken", apperrors.ErrDuplicate)).Once()
	suite.mockAccountRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business"), mock.AnythingOfType("domain.AuditLog")).
		Run(capture).Return(nil).Once()

	business, err := suite.service.RegisterBusiness(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(business)
	suite.Len(seenNumbers, 2)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegisterBusiness_FeeMismatch() {
	ctx := context.Background()
	req := suite.registerBusinessRequest()
	req.CurrentBill = decimal.RequireFromString("40.00")

	suite.mockZoneRepo.On("FindZoneByID", ctx, int64(1)).Return(&domain.Zone{ZoneID: 1}, nil).Once()
	suite.mockFeeRepo.On("FindActiveFee", ctx, "Retail", "Small").Return(&domain.FeeStructure{
		FeeAmount: decimal.RequireFromString("50.00"),
		IsActive:  true,
	}, nil).Once()

	business, err := suite.service.RegisterBusiness(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveBusiness", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterBusiness_NoActiveFee() {
	ctx := context.Background()
	req := suite.registerBusinessRequest()

	suite.mockZoneRepo.On("FindZoneByID", ctx, int64(1)).Return(&domain.Zone{ZoneID: 1}, nil).Once()
	suite.mockFeeRepo.On("FindActiveFee", ctx, "Retail", "Small").Return(nil, apperrors.ErrNotFound).Once()

	business, err := suite.service.RegisterBusiness(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestRegisterBusiness_UnknownZone() {
	ctx := context.Background()
	req := suite.registerBusinessRequest()
	req.ZoneID = 99

	suite.mockZoneRepo.On("FindZoneByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	business, err := suite.service.RegisterBusiness(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "FindActiveFee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestRegisterProperty_NegativeArrears() {
	ctx := context.Background()
	req := dto.RegisterPropertyRequest{
		Name:          "Plot 14 Residence",
		OwnerName:     "Kofi Boateng",
		Telephone:     "0209876543",
		Location:      "Ridge Road",
		ZoneID:        1,
		PropertyType:  "Residential",
		UsageCategory: "Owner Occupied",
		Arrears:       decimal.RequireFromString("-5.00"),
		CurrentBill:   decimal.RequireFromString("120.00"),
	}

	property, err := suite.service.RegisterProperty(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(property)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveProperty", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSearchAccounts_Success() {
	ctx := context.Background()
	params := dto.SearchAccountsParams{Query: "Mama", Type: "all"}
	hits := []domain.AccountSearchResult{
		{
			Account:          domain.Account{ID: uuid.NewString(), AccountType: domain.AccountTypeBusiness, Name: "Mama Put Kitchen", AmountPayable: decimal.RequireFromString("65.00")},
			ZoneName:         "Central",
			TotalPaid:        decimal.RequireFromString("10.00"),
			RemainingBalance: decimal.RequireFromString("55.00"),
			BalanceStatus:    domain.BalancePartial,
		},
	}

	suite.mockAccountRepo.On("SearchAccounts", ctx, "Mama", domain.AccountType("")).Return(hits, nil).Once()

	resp, err := suite.service.SearchAccounts(ctx, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(1, resp.Count)
	suite.Equal("partial", resp.Results[0].BalanceStatus)
	suite.Equal("Central", resp.Results[0].ZoneName)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetBusinessByID_WithDeliveryStats() {
	ctx := context.Background()
	businessID := uuid.NewString()
	// Running total after one 40.00 collection against a 100.00 account.
	business := &domain.Business{
		Account: domain.Account{
			ID:            businessID,
			AccountType:   domain.AccountTypeBusiness,
			AmountPayable: decimal.RequireFromString("60.00"),
		},
	}
	stats := &domain.DeliveryStats{TotalBills: 2, ServedBills: 1, DeliveryRate: decimal.RequireFromString("50.00")}

	suite.mockAccountRepo.On("FindBusinessByID", ctx, businessID).Return(business, nil).Once()
	suite.mockBillRepo.On("DeliveryStatsByAccount", ctx, domain.AccountTypeBusiness, businessID).Return(stats, nil).Once()
	suite.mockAccountRepo.On("TotalSuccessfulPayments", ctx, domain.AccountTypeBusiness, businessID).
		Return(decimal.RequireFromString("40.00"), nil).Once()

	resp, err := suite.service.GetBusinessByID(ctx, businessID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.TotalPaid.Equal(decimal.RequireFromString("40.00")))
	// max(0, payable - totalPaid), the same figure search derives.
	suite.True(resp.RemainingBalance.Equal(decimal.RequireFromString("20.00")))
	suite.True(resp.DeliveryRate.Equal(decimal.RequireFromString("50.00")))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetPropertyByID_OverpaidClampsToZero() {
	ctx := context.Background()
	propertyID := uuid.NewString()
	property := &domain.Property{
		Account: domain.Account{
			ID:            propertyID,
			AccountType:   domain.AccountTypeProperty,
			AmountPayable: decimal.RequireFromString("10.00"),
		},
	}
	stats := &domain.DeliveryStats{TotalBills: 1, ServedBills: 1, DeliveryRate: decimal.RequireFromString("100.00")}

	suite.mockAccountRepo.On("FindPropertyByID", ctx, propertyID).Return(property, nil).Once()
	suite.mockBillRepo.On("DeliveryStatsByAccount", ctx, domain.AccountTypeProperty, propertyID).Return(stats, nil).Once()
	suite.mockAccountRepo.On("TotalSuccessfulPayments", ctx, domain.AccountTypeProperty, propertyID).
		Return(decimal.RequireFromString("25.00"), nil).Once()

	resp, err := suite.service.GetPropertyByID(ctx, propertyID)

	suite.Require().NoError(err)
	suite.True(resp.RemainingBalance.IsZero())
	suite.True(resp.TotalPaid.Equal(decimal.RequireFromString("25.00")))
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeactivateAccount", ctx, domain.AccountTypeBusiness, accountID, suite.actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionDeactivateBusiness && a.RecordID == accountID
		}),
	).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, domain.AccountTypeBusiness, accountID, suite.actor)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
