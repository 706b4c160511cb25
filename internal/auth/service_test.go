package auth_test

import (
	"testing"
	"time"

	"esports-club-backend/internal/auth"
	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// recordingMailer captures reset mails instead of sending them
type recordingMailer struct {
	to       string
	resetURL string
	sent     int
}

func (m *recordingMailer) SendPasswordReset(to, resetURL string) error {
	m.to = to
	m.resetURL = resetURL
	m.sent++
	return nil
}

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockResetRepo *mocks.MockPasswordResetRepositoryInterface
	mailer        *recordingMailer
	service       *auth.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockResetRepo = mocks.NewMockPasswordResetRepositoryInterface(suite.ctrl)
	suite.mailer = &recordingMailer{}
	suite.service = auth.NewAuthService(suite.mockUserRepo, suite.mockResetRepo, suite.mailer, validator.New(), "test-secret", "http://localhost:3000")
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) TestRegister_CreatesUserAndIssuesToken() {
	req := &auth.RegisterRequest{Username: "smurf", Password: "hunter2hunter2"}

	suite.mockUserRepo.EXPECT().GetByUsername("smurf").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal(models.UserRoleUser, user.Role)
		suite.NotEqual("hunter2hunter2", user.Password)
		user.ID = uuid.New()
		return nil
	}).Times(1)

	resp, err := suite.service.Register(req)

	suite.NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("smurf", resp.Username)
	suite.Equal(models.UserRoleUser, resp.Role)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	req := &auth.RegisterRequest{Username: "smurf", Password: "hunter2hunter2"}

	suite.mockUserRepo.EXPECT().GetByUsername("smurf").Return(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "smurf",
	}, nil).Times(1)

	resp, err := suite.service.Register(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUsernameExists)
}

func (suite *AuthServiceTestSuite) TestRegister_ShortPassword() {
	resp, err := suite.service.Register(&auth.RegisterRequest{Username: "smurf", Password: "short"})

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	suite.Require().NoError(err)
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByUsername("smurf").Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "smurf",
		Password:  string(hash),
		Role:      models.UserRoleAdmin,
	}, nil).Times(1)

	resp, err := suite.service.Login(&auth.LoginRequest{Username: "smurf", Password: "hunter2hunter2"})

	suite.NoError(err)
	suite.Equal(userID, resp.UserID)
	suite.NotEmpty(resp.Token)

	claims, err := suite.service.ValidateJWT(resp.Token)
	suite.NoError(err)
	suite.Equal(userID, claims.UserID)
	suite.Equal(models.UserRoleAdmin, claims.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUserAndBadPasswordLookAlike() {
	suite.mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, unknownErr := suite.service.Login(&auth.LoginRequest{Username: "ghost", Password: "whatever123"})

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.mockUserRepo.EXPECT().GetByUsername("smurf").Return(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "smurf",
		Password:  string(hash),
	}, nil).Times(1)

	_, wrongErr := suite.service.Login(&auth.LoginRequest{Username: "smurf", Password: "wrong-password"})

	suite.ErrorIs(unknownErr, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(wrongErr, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_RejectsGarbage() {
	claims, err := suite.service.ValidateJWT("not.a.token")

	suite.Nil(claims)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestValidateJWT_RejectsForeignSecret() {
	other := auth.NewAuthService(suite.mockUserRepo, suite.mockResetRepo, suite.mailer, validator.New(), "other-secret", "http://localhost:3000")
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().GetByUsername("smurf").Return(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "smurf",
		Password:  string(hash),
	}, nil).Times(1)

	resp, err := other.Login(&auth.LoginRequest{Username: "smurf", Password: "hunter2hunter2"})
	suite.Require().NoError(err)

	claims, err := suite.service.ValidateJWT(resp.Token)

	suite.Nil(claims)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestForgotPassword_SendsMailWithToken() {
	suite.mockUserRepo.EXPECT().GetByEmail("smurf@example.edu").Return(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "smurf@example.edu",
	}, nil).Times(1)
	suite.mockResetRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(reset *models.PasswordReset) error {
		suite.Equal("smurf@example.edu", reset.Email)
		suite.NotEmpty(reset.Token)
		suite.True(reset.ExpiresAt.After(time.Now()))
		return nil
	}).Times(1)

	suite.NoError(suite.service.ForgotPassword(&auth.ForgotPasswordRequest{Email: "smurf@example.edu"}))
	suite.Equal(1, suite.mailer.sent)
	suite.Equal("smurf@example.edu", suite.mailer.to)
	suite.Contains(suite.mailer.resetURL, "http://localhost:3000/reset-password?token=")
}

func (suite *AuthServiceTestSuite) TestForgotPassword_UnknownEmailStaysQuiet() {
	suite.mockUserRepo.EXPECT().GetByEmail("nobody@example.edu").Return(nil, gorm.ErrRecordNotFound).Times(1)

	suite.NoError(suite.service.ForgotPassword(&auth.ForgotPasswordRequest{Email: "nobody@example.edu"}))
	suite.Equal(0, suite.mailer.sent)
}

func (suite *AuthServiceTestSuite) TestResetPassword_Success() {
	resetID := uuid.New()

	suite.mockResetRepo.EXPECT().GetByToken("valid-token").Return(&models.PasswordReset{
		BaseModel: models.BaseModel{ID: resetID},
		Email:     "smurf@example.edu",
		Token:     "valid-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Times(1)
	suite.mockUserRepo.EXPECT().UpdatePasswordByEmail("smurf@example.edu", gomock.Any()).Return(nil).Times(1)
	suite.mockResetRepo.EXPECT().Delete(resetID).Return(nil).Times(1)

	suite.NoError(suite.service.ResetPassword(&auth.ResetPasswordRequest{
		Token:    "valid-token",
		Password: "new-password-1",
	}))
}

func (suite *AuthServiceTestSuite) TestResetPassword_UnknownToken() {
	suite.mockResetRepo.EXPECT().GetByToken("bogus").Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.ResetPassword(&auth.ResetPasswordRequest{Token: "bogus", Password: "new-password-1"})

	suite.ErrorIs(err, apperrors.ErrResetTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestResetPassword_ExpiredTokenIsDeleted() {
	resetID := uuid.New()

	suite.mockResetRepo.EXPECT().GetByToken("stale").Return(&models.PasswordReset{
		BaseModel: models.BaseModel{ID: resetID},
		Email:     "smurf@example.edu",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil).Times(1)
	suite.mockResetRepo.EXPECT().Delete(resetID).Return(nil).Times(1)

	err := suite.service.ResetPassword(&auth.ResetPasswordRequest{Token: "stale", Password: "new-password-1"})

	suite.ErrorIs(err, apperrors.ErrResetTokenExpired)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
