package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
)

type feeService struct {
	feeRepo portsrepo.FeeRepositoryFacade
}

// NewFeeService creates the fee schedule service.
func NewFeeService(feeRepo portsrepo.FeeRepositoryFacade) portssvc.FeeSvcFacade {
	return &feeService{feeRepo: feeRepo}
}

// GetActiveFee retrieves the active fee for a (businessType, category) pair.
func (s *feeService) GetActiveFee(ctx context.Context, businessType, category string) (*domain.FeeStructure, error) {
	return s.feeRepo.FindActiveFee(ctx, businessType, category)
}

// ListFees retrieves the whole fee schedule.
func (s *feeService) ListFees(ctx context.Context) (*dto.ListFeeStructuresResponse, error) {
	fees, err := s.feeRepo.ListFees(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListFeeStructuresResponse{Fees: make([]dto.FeeStructureResponse, 0, len(fees))}
	for _, fee := range fees {
		resp.Fees = append(resp.Fees, dto.ToFeeStructureResponse(fee))
	}
	return resp, nil
}

// CreateFee adds a fee row to the schedule.
func (s *feeService) CreateFee(ctx context.Context, req dto.CreateFeeStructureRequest, actor domain.Actor) (*domain.FeeStructure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.FeeAmount.IsPositive() {
		return nil, fmt.Errorf("%w: fee amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	fee := domain.FeeStructure{
		BusinessType: req.BusinessType,
		Category:     req.Category,
		FeeAmount:    req.FeeAmount,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	// RecordID is filled in by the repository once the row ID is generated.
	audit := newAuditLog(ctx, actor, domain.ActionFeeStructureUpdated, "business_fee_structure", "", fee, now)

	saved, err := s.feeRepo.SaveFee(ctx, fee, audit)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save fee structure", slog.String("error", err.Error()),
				slog.String("business_type", req.BusinessType), slog.String("category", req.Category))
		}
		return nil, err
	}

	logger.Info("Fee structure created", slog.Int64("fee_id", saved.FeeID),
		slog.String("business_type", saved.BusinessType), slog.String("category", saved.Category))
	return saved, nil
}

// UpdateFee changes a fee row's amount or active flag; nil fields are left unchanged.
func (s *feeService) UpdateFee(ctx context.Context, feeID int64, req dto.UpdateFeeStructureRequest, actor domain.Actor) (*domain.FeeStructure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fee, err := s.feeRepo.FindFeeByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	if req.FeeAmount != nil {
		if !req.FeeAmount.IsPositive() {
			return nil, fmt.Errorf("%w: fee amount must be positive", apperrors.ErrValidation)
		}
		fee.FeeAmount = *req.FeeAmount
	}
	if req.IsActive != nil {
		fee.IsActive = *req.IsActive
	}

	now := time.Now()
	fee.LastUpdatedAt = now
	fee.LastUpdatedBy = actor.UserID

	audit := newAuditLog(ctx, actor, domain.ActionFeeStructureUpdated, "business_fee_structure", strconv.FormatInt(feeID, 10), fee, now)

	if err := s.feeRepo.UpdateFee(ctx, *fee, audit); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update fee structure", slog.String("error", err.Error()), slog.Int64("fee_id", feeID))
		}
		return nil, err
	}

	logger.Info("Fee structure updated", slog.Int64("fee_id", feeID))
	return fee, nil
}
