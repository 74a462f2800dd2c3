package repositories

import (
	"context"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations over business and property accounts.
type AccountReader interface {
	// FindBusinessByID retrieves a business account by its unique identifier.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// FindPropertyByID retrieves a property account by its unique identifier.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// ListBusinesses retrieves businesses, optionally filtered by zone (zoneID > 0).
	ListBusinesses(ctx context.Context, zoneID int64, limit, offset int) ([]domain.Business, error)

	// ListProperties retrieves properties, optionally filtered by zone (zoneID > 0).
	ListProperties(ctx context.Context, zoneID int64, limit, offset int) ([]domain.Property, error)

	// SearchAccounts matches name, owner, telephone or account number against the
	// query and returns hits annotated with each account's lifetime balance.
	// accountType narrows the search to one account kind; empty means both.
	SearchAccounts(ctx context.Context, query string, accountType domain.AccountType) ([]domain.AccountSearchResult, error)

	// TotalSuccessfulPayments sums amount_paid over the account's bills for
	// Successful payments, the figure the lifetime balance is derived from.
	TotalSuccessfulPayments(ctx context.Context, accountType domain.AccountType, accountID string) (decimal.Decimal, error)
}

// AccountWriter defines write operations over business and property accounts.
type AccountWriter interface {
	// SaveBusiness persists a new business together with the registration
	// audit entry within a single transaction.
	SaveBusiness(ctx context.Context, business domain.Business, audit domain.AuditLog) error

	// SaveProperty persists a new property together with the registration
	// audit entry within a single transaction.
	SaveProperty(ctx context.Context, property domain.Property, audit domain.AuditLog) error

	// DeactivateAccount flips the account status to Inactive and records the
	// audit entry within a single transaction.
	DeactivateAccount(ctx context.Context, accountType domain.AccountType, accountID string, updatedByUserID string, updatedAt time.Time, audit domain.AuditLog) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
