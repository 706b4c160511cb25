package handlers_test

import (
	"net/http"
	"testing"

	"esports-club-backend/internal/api/handlers"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/mocks"
	"esports-club-backend/internal/service"
	"esports-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TeamHandlerTestSuite struct {
	suite.Suite
	http       *testutils.HTTPTestSuite
	ctrl       *gomock.Controller
	mockTeams  *mocks.MockTeamServiceInterface
	mockRoster *mocks.MockRosterServiceInterface
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockRoster = mocks.NewMockRosterServiceInterface(suite.ctrl)

	handler := handlers.NewTeamHandler(suite.mockTeams, suite.mockRoster)

	suite.http.Router.POST("/admin/teams", handler.CreateTeam)
	suite.http.Router.DELETE("/admin/teams/:id", handler.DeleteTeam)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_Created() {
	gameID := uuid.New()

	suite.mockTeams.EXPECT().Create(gomock.Any()).Return(&service.TeamResponse{
		ID:     uuid.New(),
		GameID: gameID,
		Name:   "Valorant Red",
	}, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/teams",
		map[string]interface{}{"game_id": gameID.String(), "name": "Valorant Red"})

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_UnknownGameIs404() {
	suite.mockTeams.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrGameNotFound).Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/teams",
		map[string]interface{}{"game_id": uuid.New().String(), "name": "Orphans"})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_DuplicateIs409() {
	suite.mockTeams.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTeamExists).Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/teams",
		map[string]interface{}{"game_id": uuid.New().String(), "name": "Valorant Red"})

	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam_ReturnsOutcome() {
	teamID := uuid.New()

	suite.mockRoster.EXPECT().DeleteTeam(teamID).Return(&service.DeleteTeamResponse{
		Message:         "Team " + teamID.String() + " deleted successfully.",
		UsersUnassigned: 3,
	}, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/teams/"+teamID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var resp service.DeleteTeamResponse
	testutils.DecodeJSON(suite.T(), recorder, &resp)
	suite.Equal(int64(3), resp.UsersUnassigned)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam_BadUUIDIs400() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/teams/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
