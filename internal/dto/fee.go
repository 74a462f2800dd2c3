package dto

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFeeStructureRequest defines a yearly fee for a (businessType, category) pair.
type CreateFeeStructureRequest struct {
	BusinessType string          `json:"businessType" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	FeeAmount    decimal.Decimal `json:"feeAmount"`
}

// UpdateFeeStructureRequest changes the fee amount or active flag.
type UpdateFeeStructureRequest struct {
	FeeAmount *decimal.Decimal `json:"feeAmount"`
	IsActive  *bool            `json:"isActive"`
}

// FeeStructureResponse is a fee structure row as returned by the API.
type FeeStructureResponse struct {
	FeeID        int64           `json:"feeID"`
	BusinessType string          `json:"businessType"`
	Category     string          `json:"category"`
	FeeAmount    decimal.Decimal `json:"feeAmount"`
	IsActive     bool            `json:"isActive"`
}

// ToFeeStructureResponse converts a domain.FeeStructure.
func ToFeeStructureResponse(f domain.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeID:        f.FeeID,
		BusinessType: f.BusinessType,
		Category:     f.Category,
		FeeAmount:    f.FeeAmount,
		IsActive:     f.IsActive,
	}
}

// ListFeeStructuresResponse wraps the fee schedule.
type ListFeeStructuresResponse struct {
	Fees []FeeStructureResponse `json:"fees"`
}
