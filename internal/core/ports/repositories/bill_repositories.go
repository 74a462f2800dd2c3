package repositories

import (
	"context"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// BillReader defines read operations for billing data.
type BillReader interface {
	// FindBillByID retrieves a bill by its unique identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBillsByAccount retrieves all yearly bills for one account, newest year first.
	ListBillsByAccount(ctx context.Context, billType domain.AccountType, referenceID string) ([]domain.Bill, error)

	// DeliveryStatsByAccount counts served vs total bills for one account.
	DeliveryStatsByAccount(ctx context.Context, billType domain.AccountType, referenceID string) (*domain.DeliveryStats, error)
}

// BillWriter defines write operations for billing data.
type BillWriter interface {
	// UpdateServingStatus sets the delivery state of a bill and records the
	// audit entry within a single transaction. servedBy/servedAt are stored as
	// given; nil clears the stamp. Returns the updated bill.
	UpdateServingStatus(ctx context.Context, billID string, status domain.ServedStatus, notes string, servedBy *string, servedAt *time.Time, updatedByUserID string, updatedAt time.Time, audit domain.AuditLog) (*domain.Bill, error)
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}

// BillRepositoryWithTx extends BillRepositoryFacade with transaction capabilities
type BillRepositoryWithTx interface {
	BillRepositoryFacade
	TransactionManager
}
