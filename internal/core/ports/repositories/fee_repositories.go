package repositories

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// FeeReader defines read operations for the fee schedule.
type FeeReader interface {
	// FindActiveFee retrieves the active fee for a (businessType, category) pair.
	FindActiveFee(ctx context.Context, businessType, category string) (*domain.FeeStructure, error)

	// FindFeeByID retrieves a fee row by its identifier.
	FindFeeByID(ctx context.Context, feeID int64) (*domain.FeeStructure, error)

	// ListFees retrieves the whole fee schedule, active rows first.
	ListFees(ctx context.Context) ([]domain.FeeStructure, error)
}

// FeeWriter defines write operations for the fee schedule.
type FeeWriter interface {
	// SaveFee inserts a new fee row and returns it with its generated ID.
	SaveFee(ctx context.Context, fee domain.FeeStructure, audit domain.AuditLog) (*domain.FeeStructure, error)

	// UpdateFee changes the amount and/or active flag of an existing fee row.
	UpdateFee(ctx context.Context, fee domain.FeeStructure, audit domain.AuditLog) error
}

// FeeRepositoryFacade combines all fee-related repository interfaces
type FeeRepositoryFacade interface {
	FeeReader
	FeeWriter
}
