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

// accountNumberRetries bounds how often a colliding account number is re-rolled.
const accountNumberRetries = 3

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
	feeRepo     portsrepo.FeeReader
	zoneRepo    portsrepo.ZoneReader
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, billRepo portsrepo.BillRepositoryFacade, feeRepo portsrepo.FeeReader, zoneRepo portsrepo.ZoneReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		billRepo:    billRepo,
		feeRepo:     feeRepo,
		zoneRepo:    zoneRepo,
	}
}

// validateFinancials rejects negative seed values and a non-positive current bill.
func validateFinancials(oldBill, previousPayments, arrears, currentBill decimal.Decimal) error {
	if oldBill.IsNegative() || previousPayments.IsNegative() || arrears.IsNegative() {
		return fmt.Errorf("%w: financial amounts must not be negative", apperrors.ErrValidation)
	}
	if !currentBill.IsPositive() {
		return fmt.Errorf("%w: current bill must be positive", apperrors.ErrValidation)
	}
	return nil
}

// validateZone checks the zone exists and, when given, that the sub-zone
// belongs to it.
func (s *accountService) validateZone(ctx context.Context, zoneID int64, subZoneID *int64) error {
	if _, err := s.zoneRepo.FindZoneByID(ctx, zoneID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: zone %d does not exist", apperrors.ErrValidation, zoneID)
		}
		return err
	}
	if subZoneID != nil {
		subZone, err := s.zoneRepo.FindSubZoneByID(ctx, *subZoneID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: sub-zone %d does not exist", apperrors.ErrValidation, *subZoneID)
			}
			return err
		}
		if subZone.ZoneID != zoneID {
			return fmt.Errorf("%w: sub-zone %d does not belong to zone %d", apperrors.ErrValidation, *subZoneID, zoneID)
		}
	}
	return nil
}

// RegisterBusiness validates the request against the fee schedule and persists
// the business. No bill row is created here; yearly bills come from the
// separate billing generation process.
func (s *accountService) RegisterBusiness(ctx context.Context, req dto.RegisterBusinessRequest, actor domain.Actor) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateFinancials(req.OldBill, req.PreviousPayments, req.Arrears, req.CurrentBill); err != nil {
		return nil, err
	}
	if err := s.validateZone(ctx, req.ZoneID, req.SubZoneID); err != nil {
		return nil, err
	}

	// The declared current bill must match the active fee for the pair.
	fee, err := s.feeRepo.FindActiveFee(ctx, req.BusinessType, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no active fee for business type %q category %q", apperrors.ErrValidation, req.BusinessType, req.Category)
		}
		return nil, err
	}
	if !fee.FeeAmount.Equal(req.CurrentBill) {
		return nil, fmt.Errorf("%w: current bill %s does not match the %s fee for %s/%s",
			apperrors.ErrBusinessRule, req.CurrentBill.String(), fee.FeeAmount.String(), req.BusinessType, req.Category)
	}

	amountPayable := billing.ComputeAmountPayable(req.OldBill, req.PreviousPayments, req.Arrears, req.CurrentBill)
	if amountPayable.IsNegative() {
		return nil, fmt.Errorf("%w: previous payments exceed the total billed", apperrors.ErrValidation)
	}

	now := time.Now()
	business := domain.Business{
		Account: domain.Account{
			ID:               uuid.NewString(),
			AccountType:      domain.AccountTypeBusiness,
			Name:             req.Name,
			OwnerName:        req.OwnerName,
			Telephone:        req.Telephone,
			Email:            req.Email,
			Location:         req.Location,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			ZoneID:           req.ZoneID,
			SubZoneID:        req.SubZoneID,
			Batch:            req.Batch,
			OldBill:          req.OldBill,
			PreviousPayments: req.PreviousPayments,
			Arrears:          req.Arrears,
			CurrentBill:      req.CurrentBill,
			AmountPayable:    amountPayable,
			Status:           domain.AccountActive,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		},
		BusinessType: req.BusinessType,
		Category:     req.Category,
	}

	// The year-scoped random account number can collide; re-roll and retry.
	// The audit entry is rebuilt each attempt so the snapshot carries the
	// number that actually got committed.
	var saveErr error
	for attempt := 0; attempt < accountNumberRetries; attempt++ {
		business.AccountNumber, saveErr = utils.GenerateAccountNumber("BIZ", now)
		if saveErr != nil {
			return nil, apperrors.NewAppError(500, "failed to generate account number", saveErr)
		}
		audit := newAuditLog(ctx, actor, domain.ActionCreateBusiness, "businesses", business.ID, business, now)
		saveErr = s.accountRepo.SaveBusiness(ctx, business, audit)
		if saveErr == nil || !errors.Is(saveErr, apperrors.ErrDuplicate) {
			break
		}
		logger.Warn("Account number collision, retrying", slog.String("account_number", business.AccountNumber))
	}
	if saveErr != nil {
		if !errors.Is(saveErr, apperrors.ErrDuplicate) {
			logger.Error("Failed to save business in repository", slog.String("error", saveErr.Error()), slog.String("business_id", business.ID))
		}
		return nil, saveErr
	}

	logger.Info("Business registered", slog.String("business_id", business.ID), slog.String("account_number", business.AccountNumber))
	return &business, nil
}

// RegisterProperty validates the request and persists the property. Properties
// carry no fee schedule; the declared current bill is taken as assessed.
func (s *accountService) RegisterProperty(ctx context.Context, req dto.RegisterPropertyRequest, actor domain.Actor) (*domain.Property, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateFinancials(req.OldBill, req.PreviousPayments, req.Arrears, req.CurrentBill); err != nil {
		return nil, err
	}
	if err := s.validateZone(ctx, req.ZoneID, req.SubZoneID); err != nil {
		return nil, err
	}

	amountPayable := billing.ComputeAmountPayable(req.OldBill, req.PreviousPayments, req.Arrears, req.CurrentBill)
	if amountPayable.IsNegative() {
		return nil, fmt.Errorf("%w: previous payments exceed the total billed", apperrors.ErrValidation)
	}

	now := time.Now()
	property := domain.Property{
		Account: domain.Account{
			ID:               uuid.NewString(),
			AccountType:      domain.AccountTypeProperty,
			Name:             req.Name,
			OwnerName:        req.OwnerName,
			Telephone:        req.Telephone,
			Email:            req.Email,
			Location:         req.Location,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			ZoneID:           req.ZoneID,
			SubZoneID:        req.SubZoneID,
			Batch:            req.Batch,
			OldBill:          req.OldBill,
			PreviousPayments: req.PreviousPayments,
			Arrears:          req.Arrears,
			CurrentBill:      req.CurrentBill,
			AmountPayable:    amountPayable,
			Status:           domain.AccountActive,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		},
		PropertyType:  req.PropertyType,
		UsageCategory: req.UsageCategory,
	}

	var saveErr error
	for attempt := 0; attempt < accountNumberRetries; attempt++ {
		property.AccountNumber, saveErr = utils.GenerateAccountNumber("PROP", now)
		if saveErr != nil {
			return nil, apperrors.NewAppError(500, "failed to generate account number", saveErr)
		}
		audit := newAuditLog(ctx, actor, domain.ActionCreateProperty, "properties", property.ID, property, now)
		saveErr = s.accountRepo.SaveProperty(ctx, property, audit)
		if saveErr == nil || !errors.Is(saveErr, apperrors.ErrDuplicate) {
			break
		}
		logger.Warn("Account number collision, retrying", slog.String("account_number", property.AccountNumber))
	}
	if saveErr != nil {
		if !errors.Is(saveErr, apperrors.ErrDuplicate) {
			logger.Error("Failed to save property in repository", slog.String("error", saveErr.Error()), slog.String("property_id", property.ID))
		}
		return nil, saveErr
	}

	logger.Info("Property registered", slog.String("property_id", property.ID), slog.String("account_number", property.AccountNumber))
	return &property, nil
}

// GetBusinessByID retrieves a business account with its lifetime balance and
// delivery stats.
func (s *accountService) GetBusinessByID(ctx context.Context, businessID string) (*dto.AccountDetailResponse, error) {
	business, err := s.accountRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, dto.ToBusinessResponse(business), business.Account)
}

// GetPropertyByID retrieves a property account with its lifetime balance and
// delivery stats.
func (s *accountService) GetPropertyByID(ctx context.Context, propertyID string) (*dto.AccountDetailResponse, error) {
	property, err := s.accountRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, dto.ToPropertyResponse(property), property.Account)
}

// buildDetail annotates the account with its delivery stats and the lifetime
// balance, recomputed from the payments table on every read so the detail
// view agrees with search.
func (s *accountService) buildDetail(ctx context.Context, resp dto.AccountResponse, account domain.Account) (*dto.AccountDetailResponse, error) {
	stats, err := s.billRepo.DeliveryStatsByAccount(ctx, account.AccountType, account.ID)
	if err != nil {
		return nil, err
	}
	totalPaid, err := s.accountRepo.TotalSuccessfulPayments(ctx, account.AccountType, account.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AccountDetailResponse{
		AccountResponse:  resp,
		TotalPaid:        totalPaid,
		RemainingBalance: billing.RemainingBalance(account.AmountPayable, totalPaid),
		DeliveryRate:     stats.DeliveryRate,
	}, nil
}

// ListAccounts retrieves accounts of one kind, optionally filtered by zone.
func (s *accountService) ListAccounts(ctx context.Context, accountType domain.AccountType, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	resp := &dto.ListAccountsResponse{Accounts: []dto.AccountResponse{}}

	switch accountType {
	case domain.AccountTypeBusiness:
		businesses, err := s.accountRepo.ListBusinesses(ctx, params.ZoneID, params.Limit, params.Offset)
		if err != nil {
			logger.Error("Failed to list businesses", slog.String("error", err.Error()))
			return nil, err
		}
		for i := range businesses {
			resp.Accounts = append(resp.Accounts, dto.ToBusinessResponse(&businesses[i]))
		}
	case domain.AccountTypeProperty:
		properties, err := s.accountRepo.ListProperties(ctx, params.ZoneID, params.Limit, params.Offset)
		if err != nil {
			logger.Error("Failed to list properties", slog.String("error", err.Error()))
			return nil, err
		}
		for i := range properties {
			resp.Accounts = append(resp.Accounts, dto.ToPropertyResponse(&properties[i]))
		}
	default:
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
	}

	return resp, nil
}

// SearchAccounts matches the query against names, owners, telephones and
// account numbers across one or both account kinds.
func (s *accountService) SearchAccounts(ctx context.Context, params dto.SearchAccountsParams) (*dto.SearchAccountsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var accountType domain.AccountType
	switch params.Type {
	case "", "all":
		accountType = ""
	case string(domain.AccountTypeBusiness):
		accountType = domain.AccountTypeBusiness
	case string(domain.AccountTypeProperty):
		accountType = domain.AccountTypeProperty
	default:
		return nil, fmt.Errorf("%w: unknown search type %q", apperrors.ErrValidation, params.Type)
	}

	hits, err := s.accountRepo.SearchAccounts(ctx, params.Query, accountType)
	if err != nil {
		logger.Error("Failed to search accounts", slog.String("error", err.Error()))
		return nil, err
	}

	resp := &dto.SearchAccountsResponse{Results: make([]dto.SearchResultResponse, 0, len(hits)), Count: len(hits)}
	for _, hit := range hits {
		resp.Results = append(resp.Results, dto.ToSearchResultResponse(hit))
	}
	logger.Debug("Account search completed", slog.Int("hits", len(hits)))
	return resp, nil
}

// DeactivateAccount marks an account Inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, accountType domain.AccountType, accountID string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	action := domain.ActionDeactivateBusiness
	table := "businesses"
	if accountType == domain.AccountTypeProperty {
		action = domain.ActionDeactivateProperty
		table = "properties"
	}
	audit := newAuditLog(ctx, actor, action, table, accountID, map[string]string{"status": string(domain.AccountInactive)}, now)

	err := s.accountRepo.DeactivateAccount(ctx, accountType, accountID, actor.UserID, now, audit)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID), slog.String("account_type", string(accountType)))
	return nil
}
