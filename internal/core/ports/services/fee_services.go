package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// FeeReaderSvc defines read operations for the fee schedule
type FeeReaderSvc interface {
	// GetActiveFee retrieves the active fee for a (businessType, category) pair.
	GetActiveFee(ctx context.Context, businessType, category string) (*domain.FeeStructure, error)

	// ListFees retrieves the whole fee schedule.
	ListFees(ctx context.Context) (*dto.ListFeeStructuresResponse, error)
}

// FeeWriterSvc defines write operations for the fee schedule
type FeeWriterSvc interface {
	// CreateFee adds a fee row. Admin only.
	CreateFee(ctx context.Context, req dto.CreateFeeStructureRequest, actor domain.Actor) (*domain.FeeStructure, error)

	// UpdateFee changes a fee row's amount or active flag. Admin only.
	UpdateFee(ctx context.Context, feeID int64, req dto.UpdateFeeStructureRequest, actor domain.Actor) (*domain.FeeStructure, error)
}

// FeeSvcFacade combines all fee-related service interfaces
type FeeSvcFacade interface {
	FeeReaderSvc
	FeeWriterSvc
}
