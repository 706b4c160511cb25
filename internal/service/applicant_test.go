package service_test

import (
	"testing"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/mocks"
	"esports-club-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApplicantServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockApplicantRepositoryInterface
	service  *service.ApplicantService
}

func (suite *ApplicantServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockApplicantRepositoryInterface(suite.ctrl)
	suite.service = service.NewApplicantService(suite.mockRepo, validator.New())
}

func (suite *ApplicantServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validSubmission() *service.SubmitApplicantRequest {
	return &service.SubmitApplicantRequest{
		FirstName:     "Jordan",
		LastName:      "Reyes",
		Email:         "jordan@example.edu",
		DiscordHandle: "jordan#1234",
		PhoneNumber:   "+1-555-0100",
		Message:       "I main support",
		IsOver18:      true,
	}
}

func (suite *ApplicantServiceTestSuite) TestSubmit_Success() {
	req := validSubmission()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Applicant) error {
		a.ID = uuid.New()
		return nil
	}).Times(1)

	resp, err := suite.service.Submit(req)

	suite.NoError(err)
	suite.Equal("Jordan", resp.FirstName)
	suite.Equal("jordan@example.edu", resp.Email)
	suite.True(resp.IsOver18)
}

func (suite *ApplicantServiceTestSuite) TestSubmit_RequiresOver18() {
	req := validSubmission()
	req.IsOver18 = false

	resp, err := suite.service.Submit(req)

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ApplicantServiceTestSuite) TestSubmit_BadEmail() {
	req := validSubmission()
	req.Email = "not-an-email"

	resp, err := suite.service.Submit(req)

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *ApplicantServiceTestSuite) TestList_Paginates() {
	applicants := []models.Applicant{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "A", Email: "a@test.com"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "B", Email: "b@test.com"},
	}

	suite.mockRepo.EXPECT().GetAll(10, 10).Return(applicants, int64(12), nil).Times(1)

	resp, err := suite.service.List(2, 10)

	suite.NoError(err)
	suite.Equal(int64(12), resp.Total)
	suite.Len(resp.Applicants, 2)
}

func TestApplicantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicantServiceTestSuite))
}
