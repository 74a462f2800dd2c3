package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/quickbill305/quickbill_backend/internal/platform/config"
	"github.com/quickbill305/quickbill_backend/internal/utils"
)

// refreshTokenBytes is the entropy of the opaque refresh token.
const refreshTokenBytes = 32

type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates the token service.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

// GenerateAccessToken signs a short-lived JWT carrying the user's role.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiry := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign access token", slog.String("error", err.Error()))
		return "", time.Time{}, apperrors.NewAppError(500, "failed to sign access token", err)
	}
	return token, expiry, nil
}

// GenerateRefreshToken mints an opaque refresh token, stores its hash on the
// user row and returns the plaintext token with its expiry.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		return "", time.Time{}, apperrors.NewAppError(500, "failed to generate refresh token", err)
	}

	hash := utils.HashRefreshToken(token)
	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, expiry); err != nil {
		logger.Error("Failed to store refresh token hash", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return token, expiry, nil
}

// ValidateAndParseRefreshToken checks the presented token against the user's
// stored hash and expiry, returning the user when it is still good.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RefreshTokenHash == nil || user.RefreshTokenExpiryTime == nil {
		return nil, fmt.Errorf("%w: no refresh token on record", apperrors.ErrForbidden)
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, fmt.Errorf("%w: refresh token expired", apperrors.ErrForbidden)
	}
	if !utils.CompareRefreshTokenHash(refreshTokenString, *user.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: refresh token mismatch", apperrors.ErrForbidden)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", apperrors.ErrForbidden)
	}
	return user, nil
}

// InvalidateRefreshToken discards the user's stored refresh token.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
