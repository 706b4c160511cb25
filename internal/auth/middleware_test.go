package auth_test

import (
	"net/http"
	"testing"

	"esports-club-backend/internal/auth"
	"esports-club-backend/internal/database/models"
	"esports-club-backend/internal/mocks"
	"esports-club-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	http         *testutils.HTTPTestSuite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *auth.AuthService
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	resetRepo := mocks.NewMockPasswordResetRepositoryInterface(suite.ctrl)
	suite.service = auth.NewAuthService(suite.mockUserRepo, resetRepo, &recordingMailer{}, validator.New(), "test-secret", "http://localhost:3000")

	middleware := auth.NewAuthMiddleware(suite.service)

	protected := suite.http.Router.Group("/", middleware.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, _ := auth.UserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) tokenFor(role models.UserRole) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().GetByUsername("smurf").Return(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "smurf",
		Password:  string(hash),
		Role:      role,
	}, nil).Times(1)

	resp, err := suite.service.Login(&auth.LoginRequest{Username: "smurf", Password: "hunter2hunter2"})
	suite.Require().NoError(err)
	return resp.Token
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_MissingHeader() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/me", nil)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_MalformedHeader() {
	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil,
		map[string]string{"Authorization": "Token abc"})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_BadToken() {
	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil,
		map[string]string{"Authorization": "Bearer not.a.token"})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_ValidToken() {
	token := suite.tokenFor(models.UserRoleUser)

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil,
		map[string]string{"Authorization": "Bearer " + token})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRequireAdmin_RejectsUserRole() {
	token := suite.tokenFor(models.UserRoleUser)

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/admin/ping", nil,
		map[string]string{"Authorization": "Bearer " + token})

	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.Contains(recorder.Body.String(), "Admin access required")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAdmin_AllowsAdmin() {
	token := suite.tokenFor(models.UserRoleAdmin)

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/admin/ping", nil,
		map[string]string{"Authorization": "Bearer " + token})

	suite.Equal(http.StatusOK, recorder.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
