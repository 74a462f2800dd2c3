package services_test

import (
	"context"
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

// --- Test Suite ---
type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo    *MockBillRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.BillSvcFacade
	actor           domain.Actor
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, suite.mockAccountRepo)
	suite.actor = domain.Actor{UserID: uuid.NewString(), IPAddress: "127.0.0.1", UserAgent: "test"}
}

// --- Test Cases ---

func (suite *BillServiceTestSuite) TestUpdateServingStatus_StampsOfficer() {
	ctx := context.Background()
	billID := uuid.NewString()
	req := dto.UpdateServingStatusRequest{Status: "Served", Notes: "Delivered to owner"}

	now := time.Now()
	updated := &domain.Bill{
		BillID:        billID,
		ServedStatus:  domain.ServedStatusServed,
		ServedBy:      &suite.actor.UserID,
		ServedAt:      &now,
		DeliveryNotes: req.Notes,
	}

	suite.mockBillRepo.On("UpdateServingStatus", ctx, billID, domain.ServedStatusServed, req.Notes,
		mock.MatchedBy(func(servedBy *string) bool { return servedBy != nil && *servedBy == suite.actor.UserID }),
		mock.MatchedBy(func(servedAt *time.Time) bool { return servedAt != nil }),
		suite.actor.UserID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionServingStatusUpdated && a.RecordID == billID
		}),
	).Return(updated, nil).Once()

	resp, err := suite.service.UpdateServingStatus(ctx, billID, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Success)
	suite.Equal("Served", resp.Status)
	suite.Require().NotNil(resp.ServedBy)
	suite.Equal(suite.actor.UserID, *resp.ServedBy)
	suite.NotNil(resp.ServedAt)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestUpdateServingStatus_NotServedClearsStamp() {
	ctx := context.Background()
	billID := uuid.NewString()
	req := dto.UpdateServingStatusRequest{Status: "Not Served"}

	updated := &domain.Bill{BillID: billID, ServedStatus: domain.ServedStatusNotServed}

	suite.mockBillRepo.On("UpdateServingStatus", ctx, billID, domain.ServedStatusNotServed, "",
		(*string)(nil), (*time.Time)(nil),
		suite.actor.UserID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.AuditLog"),
	).Return(updated, nil).Once()

	resp, err := suite.service.UpdateServingStatus(ctx, billID, req, suite.actor)

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Equal("Not Served", resp.Status)
	suite.Nil(resp.ServedBy)
	suite.Nil(resp.ServedAt)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestUpdateServingStatus_UnknownStatus() {
	ctx := context.Background()

	resp, err := suite.service.UpdateServingStatus(ctx, uuid.NewString(), dto.UpdateServingStatusRequest{Status: "Lost"}, suite.actor)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "UpdateServingStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestUpdateServingStatus_BillNotFound() {
	ctx := context.Background()
	billID := uuid.NewString()
	req := dto.UpdateServingStatusRequest{Status: "Attempted"}

	suite.mockBillRepo.On("UpdateServingStatus", ctx, billID, domain.ServedStatusAttempted, "",
		mock.Anything, mock.Anything, suite.actor.UserID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.AuditLog"),
	).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.UpdateServingStatus(ctx, billID, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BillServiceTestSuite) TestListBillsByAccount_DeliveryRate() {
	ctx := context.Background()
	businessID := uuid.NewString()
	business := &domain.Business{Account: domain.Account{ID: businessID, AccountType: domain.AccountTypeBusiness}}
	bills := []domain.Bill{
		{BillID: uuid.NewString(), BillingYear: 2026, ServedStatus: domain.ServedStatusServed},
		{BillID: uuid.NewString(), BillingYear: 2025, ServedStatus: domain.ServedStatusAttempted},
		{BillID: uuid.NewString(), BillingYear: 2024, ServedStatus: domain.ServedStatusNotServed},
	}

	suite.mockAccountRepo.On("FindBusinessByID", ctx, businessID).Return(business, nil).Once()
	suite.mockBillRepo.On("ListBillsByAccount", ctx, domain.AccountTypeBusiness, businessID).Return(bills, nil).Once()

	resp, err := suite.service.ListBillsByAccount(ctx, domain.AccountTypeBusiness, businessID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(3, resp.TotalBills)
	suite.Equal(1, resp.ServedBills)
	suite.True(resp.DeliveryRate.Equal(decimal.RequireFromString("33.33")))
	suite.Len(resp.Bills, 3)
}

func (suite *BillServiceTestSuite) TestListBillsByAccount_UnknownAccount() {
	ctx := context.Background()
	propertyID := uuid.NewString()

	suite.mockAccountRepo.On("FindPropertyByID", ctx, propertyID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListBillsByAccount(ctx, domain.AccountTypeProperty, propertyID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "ListBillsByAccount", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestBillService(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
