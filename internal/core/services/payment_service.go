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
	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/quickbill305/quickbill_backend/internal/utils/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// referenceRetries bounds how often a colliding payment reference is re-rolled.
const referenceRetries = 3

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	billRepo    portsrepo.BillReader
	userRepo    portsrepo.UserReader
}

// NewPaymentService creates the payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, billRepo portsrepo.BillReader, userRepo portsrepo.UserReader) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		userRepo:    userRepo,
	}
}

// paymentAuditSnapshot is the new_values payload for a PAYMENT_RECORDED
// entry: the payment itself plus the bill balance before and after it.
type paymentAuditSnapshot struct {
	domain.Payment
	BillBalanceBefore decimal.Decimal `json:"billBalanceBefore"`
	BillBalanceAfter  decimal.Decimal `json:"billBalanceAfter"`
}

func validPaymentMethod(m string) bool {
	switch domain.PaymentMethod(m) {
	case domain.MethodCash, domain.MethodMobileMoney, domain.MethodBankTransfer, domain.MethodOnline, domain.MethodCheque:
		return true
	}
	return false
}

// RecordPayment validates the amount against the bill's remaining balance and
// applies the collection atomically. The repository re-checks the balance
// under a row lock, so a concurrent payment that slips past this pre-check
// still cannot overdraw the bill.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actor domain.Actor) (*domain.PaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if !validPaymentMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	collector, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: collecting officer not found", apperrors.ErrForbidden)
		}
		return nil, err
	}
	if !collector.IsActive || !collector.CanRecordPayments() {
		return nil, fmt.Errorf("%w: role %s may not record payments", apperrors.ErrForbidden, collector.Role)
	}

	bill, err := s.billRepo.FindBillByID(ctx, req.BillID)
	if err != nil {
		return nil, err
	}
	if bill.AmountPayable.IsZero() {
		return nil, fmt.Errorf("%w: bill %s is already fully paid", apperrors.ErrBusinessRule, bill.BillID)
	}
	if req.Amount.GreaterThan(bill.AmountPayable) {
		return nil, fmt.Errorf("%w: payment of %s exceeds remaining balance of %s", apperrors.ErrBusinessRule, req.Amount.String(), bill.AmountPayable.String())
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		BillID:        bill.BillID,
		AmountPaid:    req.Amount,
		Method:        domain.PaymentMethod(req.Method),
		Channel:       req.Channel,
		TransactionID: req.TransactionID,
		Status:        domain.PaymentSuccessful,
		ProcessedBy:   actor.UserID,
		Notes:         req.Notes,
		PaymentDate:   now,
		CreatedAt:     now,
	}

	newBalance, fullyPaid := billing.ApplyPayment(bill.AmountPayable, req.Amount)

	// The date-scoped random reference can collide; re-roll and retry. The
	// audit entries are rebuilt on each attempt so the serialized snapshot
	// always carries the reference that actually got committed.
	var result *domain.PaymentResult
	for attempt := 0; attempt < referenceRetries; attempt++ {
		payment.Reference, err = utils.GeneratePaymentReference(now)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to generate payment reference", err)
		}
		snapshot := paymentAuditSnapshot{
			Payment:           payment,
			BillBalanceBefore: bill.AmountPayable,
			BillBalanceAfter:  newBalance,
		}
		audits := []domain.AuditLog{
			newAuditLog(ctx, actor, domain.ActionPaymentRecorded, "payments", payment.PaymentID, snapshot, now),
		}
		if fullyPaid {
			audits = append(audits, newAuditLog(ctx, actor, domain.ActionBillFullyPaid, "bills", bill.BillID,
				map[string]string{"status": string(domain.BillPaid)}, now))
		}
		result, err = s.paymentRepo.RecordPayment(ctx, payment, audits)
		if err == nil || !errors.Is(err, apperrors.ErrDuplicate) {
			break
		}
		logger.Warn("Payment reference collision, retrying", slog.String("reference", payment.Reference))
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to record payment", slog.String("error", err.Error()), slog.String("bill_id", bill.BillID))
		}
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", result.Payment.PaymentID),
		slog.String("reference", result.Payment.Reference),
		slog.String("bill_id", bill.BillID),
		slog.String("amount", req.Amount.String()),
		slog.Bool("fully_paid", result.FullyPaid))
	return result, nil
}

// GetPaymentByID retrieves a specific payment by its ID.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// GetPaymentByReference retrieves a payment by its public reference.
func (s *paymentService) GetPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByReference(ctx, reference)
}

// ListPaymentsByBill retrieves a paginated page of a bill's payments, newest first.
func (s *paymentService) ListPaymentsByBill(ctx context.Context, billID string, params dto.ListBillPaymentsParams) (*dto.ListPaymentsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	payments, nextToken, err := s.paymentRepo.ListPaymentsByBill(ctx, billID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		logger.Error("Failed to list payments", slog.String("error", err.Error()), slog.String("bill_id", billID))
		return nil, err
	}

	resp := &dto.ListPaymentsResponse{Payments: make([]dto.PaymentResponse, 0, len(payments)), NextToken: nextToken}
	for i := range payments {
		resp.Payments = append(resp.Payments, dto.ToPaymentResponse(&payments[i]))
	}
	return resp, nil
}
