package services_test

import (
	"context"
	"testing"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/core/services"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func activeUser(username, password string) *domain.User {
	hash, _ := utils.HashPassword(password)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         "Ama Mensah",
		Role:         domain.RoleRevenueOfficer,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	user := activeUser("ama", "correct-horse")
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ama").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(context.Background(), "ama", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	user := activeUser("ama", "correct-horse")
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ama").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(context.Background(), "ama", "battery-staple")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(context.Background(), "ghost", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DisabledAccount() {
	user := activeUser("ama", "correct-horse")
	user.IsActive = false
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ama").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(context.Background(), "ama", "correct-horse")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestGoogleUser_MatchesStaffByEmail() {
	user := activeUser("kofi@example.com", "irrelevant")
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "kofi@example.com").Return(user, nil).Once()

	got, err := suite.service.FindOrCreateGoogleUser(context.Background(), &domain.GoogleUserInfo{
		Email:         "kofi@example.com",
		Name:          "Kofi Annan",
		VerifiedEmail: true,
	})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestGoogleUser_UnknownEmailNotProvisioned() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "stranger@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.FindOrCreateGoogleUser(context.Background(), &domain.GoogleUserInfo{
		Email:         "stranger@example.com",
		VerifiedEmail: true,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGoogleUser_UnverifiedEmailRejected() {
	_, err := suite.service.FindOrCreateGoogleUser(context.Background(), &domain.GoogleUserInfo{
		Email:         "kofi@example.com",
		VerifiedEmail: false,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndAudits() {
	actor := domain.Actor{UserID: uuid.NewString()}

	suite.mockUserRepo.On("SaveUser", mock.Anything,
		mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "efua" &&
				u.IsActive &&
				u.PasswordHash != "plaintext-pass" &&
				utils.CheckPasswordHash("plaintext-pass", u.PasswordHash)
		}),
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionCreateUser && a.TableName == "users" && a.UserID == actor.UserID
		}),
	).Return(nil).Once()

	user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "efua",
		Password: "plaintext-pass",
		Name:     "Efua Owusu",
		Role:     string(domain.RoleRevenueOfficer),
	}, actor)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}
