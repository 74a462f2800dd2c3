package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// AccountReaderSvc defines read operations over business and property accounts
type AccountReaderSvc interface {
	// GetBusinessByID retrieves a business account with its lifetime balance.
	GetBusinessByID(ctx context.Context, businessID string) (*dto.AccountDetailResponse, error)

	// GetPropertyByID retrieves a property account with its lifetime balance.
	GetPropertyByID(ctx context.Context, propertyID string) (*dto.AccountDetailResponse, error)

	// ListAccounts retrieves accounts of one kind, optionally filtered by zone.
	ListAccounts(ctx context.Context, accountType domain.AccountType, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)

	// SearchAccounts matches the query against names, owners, telephones and
	// account numbers across one or both account kinds.
	SearchAccounts(ctx context.Context, params dto.SearchAccountsParams) (*dto.SearchAccountsResponse, error)
}

// AccountWriterSvc defines write operations over business and property accounts
type AccountWriterSvc interface {
	// RegisterBusiness validates the request against the fee schedule and
	// persists the business with its first yearly bill.
	RegisterBusiness(ctx context.Context, req dto.RegisterBusinessRequest, actor domain.Actor) (*domain.Business, error)

	// RegisterProperty validates the request and persists the property with
	// its first yearly bill.
	RegisterProperty(ctx context.Context, req dto.RegisterPropertyRequest, actor domain.Actor) (*domain.Property, error)

	// DeactivateAccount marks an account Inactive. Admin only.
	DeactivateAccount(ctx context.Context, accountType domain.AccountType, accountID string, actor domain.Actor) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
