package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/quickbill305/quickbill_backend/internal/utils/billing"
)

type billService struct {
	billRepo    portsrepo.BillRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewBillService creates the bill service.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.BillSvcFacade {
	return &billService{billRepo: billRepo, accountRepo: accountRepo}
}

// GetBillByID retrieves a specific bill by its ID.
func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

// ListBillsByAccount retrieves an account's yearly bills with delivery stats,
// newest year first.
func (s *billService) ListBillsByAccount(ctx context.Context, accountType domain.AccountType, referenceID string) (*dto.ListBillsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch accountType {
	case domain.AccountTypeBusiness:
		if _, err := s.accountRepo.FindBusinessByID(ctx, referenceID); err != nil {
			return nil, err
		}
	case domain.AccountTypeProperty:
		if _, err := s.accountRepo.FindPropertyByID(ctx, referenceID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
	}

	bills, err := s.billRepo.ListBillsByAccount(ctx, accountType, referenceID)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()), slog.String("reference_id", referenceID))
		return nil, err
	}

	served := 0
	resp := &dto.ListBillsResponse{Bills: make([]dto.BillResponse, 0, len(bills))}
	for i := range bills {
		if bills[i].ServedStatus == domain.ServedStatusServed {
			served++
		}
		resp.Bills = append(resp.Bills, dto.ToBillResponse(&bills[i]))
	}
	resp.TotalBills = len(bills)
	resp.ServedBills = served
	resp.DeliveryRate = billing.DeliveryRate(served, len(bills))
	return resp, nil
}

// UpdateServingStatus records a delivery-status change for a bill. Moving to
// any state other than "Not Served" stamps the acting officer and the time;
// moving back to "Not Served" clears the stamp.
func (s *billService) UpdateServingStatus(ctx context.Context, billID string, req dto.UpdateServingStatusRequest, actor domain.Actor) (*dto.ServingStatusResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := domain.ServedStatus(req.Status)
	if !domain.ValidServedStatus(status) {
		return nil, fmt.Errorf("%w: unknown serving status %q", apperrors.ErrValidation, req.Status)
	}

	now := time.Now()
	var servedBy *string
	var servedAt *time.Time
	if status != domain.ServedStatusNotServed {
		servedBy = &actor.UserID
		servedAt = &now
	}

	audit := newAuditLog(ctx, actor, domain.ActionServingStatusUpdated, "bills", billID,
		map[string]string{"served_status": string(status), "delivery_notes": req.Notes}, now)

	bill, err := s.billRepo.UpdateServingStatus(ctx, billID, status, req.Notes, servedBy, servedAt, actor.UserID, now, audit)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update serving status", slog.String("error", err.Error()), slog.String("bill_id", billID))
		}
		return nil, err
	}

	logger.Info("Serving status updated", slog.String("bill_id", billID), slog.String("status", string(status)))
	return &dto.ServingStatusResponse{
		Success:  true,
		Message:  "Serving status updated",
		Status:   string(bill.ServedStatus),
		ServedAt: bill.ServedAt,
		ServedBy: bill.ServedBy,
	}, nil
}
