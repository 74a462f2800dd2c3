package repositories

import (
	"context"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// UserReader defines read operations for staff users.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves the staff roster ordered by creation time.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for staff users.
type UserWriter interface {
	// SaveUser persists a new user and the creation audit entry within a
	// single transaction.
	SaveUser(ctx context.Context, user domain.User, audit domain.AuditLog) error

	// UpdateUser persists changed attributes of an existing user and the
	// update audit entry within a single transaction.
	UpdateUser(ctx context.Context, user domain.User, audit domain.AuditLog) error

	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken invalidates the user's refresh token, e.g. on logout.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
