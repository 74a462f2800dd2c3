package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// UserReaderSvc defines read operations for staff users
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves the staff roster.
	ListUsers(ctx context.Context, limit, offset int) (*dto.ListUsersResponse, error)
}

// UserWriterSvc defines write operations for staff users
type UserWriterSvc interface {
	// CreateUser provisions a new staff account. Admin only.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actor domain.Actor) (*domain.User, error)

	// UpdateUser changes user attributes. Admin only.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the active user.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateGoogleUser matches a verified Google profile to an existing
	// staff account by email, or returns not-found when no account exists.
	FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
