package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/core/services"
	"github.com/quickbill305/quickbill_backend/internal/platform/config"
	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.TokenSvcFacade
	user         *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key-for-token-service",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "quickbill-backend",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	suite.service = services.NewTokenService(suite.cfg, suite.mockUserRepo)
	suite.user = &domain.User{
		UserID:   uuid.NewString(),
		Username: "collector",
		Role:     domain.RoleRevenueOfficer,
		IsActive: true,
	}
}

// --- Test Cases ---

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()

	token, expiry, err := suite.service.GenerateAccessToken(ctx, suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiry.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleRevenueOfficer), claims.Role)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_StoresHash() {
	ctx := context.Background()
	var storedHash string

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, suite.user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil).Once()

	token, expiry, err := suite.service.GenerateRefreshToken(ctx, suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiry.After(time.Now().Add(23 * time.Hour)))
	suite.True(utils.CompareRefreshTokenHash(token, storedHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_Success() {
	ctx := context.Background()
	token := "refresh-token-plaintext"
	hash := utils.HashRefreshToken(token)
	expiry := time.Now().Add(time.Hour)
	suite.user.RefreshTokenHash = &hash
	suite.user.RefreshTokenExpiryTime = &expiry

	suite.mockUserRepo.On("FindUserByID", ctx, suite.user.UserID).Return(suite.user, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, token)

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_Expired() {
	ctx := context.Background()
	token := "refresh-token-plaintext"
	hash := utils.HashRefreshToken(token)
	expiry := time.Now().Add(-time.Minute)
	suite.user.RefreshTokenHash = &hash
	suite.user.RefreshTokenExpiryTime = &expiry

	suite.mockUserRepo.On("FindUserByID", ctx, suite.user.UserID).Return(suite.user, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, token)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_Mismatch() {
	ctx := context.Background()
	hash := utils.HashRefreshToken("the-real-token")
	expiry := time.Now().Add(time.Hour)
	suite.user.RefreshTokenHash = &hash
	suite.user.RefreshTokenExpiryTime = &expiry

	suite.mockUserRepo.On("FindUserByID", ctx, suite.user.UserID).Return(suite.user, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, "a-forged-token")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TokenServiceTestSuite) TestInvalidateRefreshToken() {
	ctx := context.Background()

	suite.mockUserRepo.On("ClearRefreshToken", ctx, suite.user.UserID).Return(nil).Once()

	err := suite.service.InvalidateRefreshToken(ctx, suite.user.UserID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
