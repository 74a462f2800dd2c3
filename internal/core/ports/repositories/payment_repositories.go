package repositories

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentByReference retrieves a payment by its public reference.
	FindPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error)

	// ListPaymentsByBill retrieves a paginated list of a bill's payments, newest
	// first, using token-based pagination. It returns the payments, a token for
	// the next page, and an error.
	ListPaymentsByBill(ctx context.Context, billID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// RecordPayment persists the payment, decrements the bill's and the owning
	// account's running balances, advances the bill status and writes the audit
	// entries, all within a single transaction. The bill decrement is
	// conditional on sufficient remaining balance; a concurrent payment that
	// would overdraw the bill fails the whole transaction with a conflict.
	RecordPayment(ctx context.Context, payment domain.Payment, audits []domain.AuditLog) (*domain.PaymentResult, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
