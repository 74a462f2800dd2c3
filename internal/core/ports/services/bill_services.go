package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// BillReaderSvc defines read operations for billing data
type BillReaderSvc interface {
	// GetBillByID retrieves a specific bill by its ID.
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBillsByAccount retrieves an account's yearly bills with delivery stats.
	ListBillsByAccount(ctx context.Context, accountType domain.AccountType, referenceID string) (*dto.ListBillsResponse, error)
}

// BillWriterSvc defines write operations for billing data
type BillWriterSvc interface {
	// UpdateServingStatus records a delivery-status change for a bill,
	// stamping who served it and when.
	UpdateServingStatus(ctx context.Context, billID string, req dto.UpdateServingStatusRequest, actor domain.Actor) (*dto.ServingStatusResponse, error)
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
