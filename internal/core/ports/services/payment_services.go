package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// GetPaymentByReference retrieves a payment by its public reference.
	GetPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error)

	// ListPaymentsByBill retrieves a paginated list of a bill's payments.
	ListPaymentsByBill(ctx context.Context, billID string, params dto.ListBillPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// RecordPayment validates the amount against the bill's remaining balance
	// and applies the collection atomically. Requires a role allowed to
	// record payments.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actor domain.Actor) (*domain.PaymentResult, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
