package handlers_test

import (
	"net/http"
	"testing"

	"esports-club-backend/internal/api/handlers"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/mocks"
	"esports-club-backend/internal/service"
	"esports-club-backend/internal/storage"
	"esports-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameHandlerTestSuite struct {
	suite.Suite
	http       *testutils.HTTPTestSuite
	ctrl       *gomock.Controller
	mockGames  *mocks.MockGameServiceInterface
	mockRoster *mocks.MockRosterServiceInterface
}

func (suite *GameHandlerTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGames = mocks.NewMockGameServiceInterface(suite.ctrl)
	suite.mockRoster = mocks.NewMockRosterServiceInterface(suite.ctrl)

	handler := handlers.NewGameHandler(suite.mockGames, suite.mockRoster, storage.NewDiskStore(suite.T().TempDir(), "/media"))

	suite.http.Router.GET("/games", handler.ListGames)
	suite.http.Router.GET("/roster", handler.ListRoster)
	suite.http.Router.POST("/admin/games", handler.CreateGame)
	suite.http.Router.PATCH("/admin/games/:id", handler.UpdateGame)
	suite.http.Router.DELETE("/admin/games/:id", handler.DeleteGame)
}

func (suite *GameHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GameHandlerTestSuite) TestListGames_SetsCacheHeader() {
	suite.mockGames.EXPECT().ListNavigation().Return([]service.NavigationGame{
		{ID: uuid.New(), Name: "Valorant", Slug: "valorant"},
	}, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/games", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("public, max-age=300", recorder.Header().Get("Cache-Control"))
	suite.Contains(recorder.Body.String(), "valorant")
}

func (suite *GameHandlerTestSuite) TestListRoster() {
	suite.mockGames.EXPECT().ListRoster().Return([]service.GameRoster{
		{ID: uuid.New(), Name: "Valorant", Slug: "valorant"},
	}, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/roster", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *GameHandlerTestSuite) TestCreateGame_Created() {
	suite.mockGames.EXPECT().Create(gomock.Any()).Return(&service.GameResponse{
		ID:   uuid.New(),
		Name: "Rocket League",
		Slug: "rocket-league",
	}, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/games",
		map[string]interface{}{"name": "Rocket League", "max_players_per_team": 3})

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *GameHandlerTestSuite) TestCreateGame_DuplicateIs409() {
	suite.mockGames.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrGameExists).Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/games",
		map[string]interface{}{"name": "Valorant", "max_players_per_team": 5})

	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *GameHandlerTestSuite) TestUpdateGame_NotFoundIs404() {
	gameID := uuid.New()

	suite.mockGames.EXPECT().Update(gameID, gomock.Any()).Return(nil, apperrors.ErrGameNotFound).Times(1)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/admin/games/"+gameID.String(),
		map[string]interface{}{"description": "x"})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *GameHandlerTestSuite) TestDeleteGame_ReturnsCascadeOutcome() {
	gameID := uuid.New()

	suite.mockRoster.EXPECT().DeleteGame(gameID).Return(&service.DeleteGameResponse{
		Message:         "Game deleted successfully. Removed 2 team(s) and unassigned 7 player(s).",
		TeamsRemoved:    2,
		UsersUnassigned: 7,
	}, nil).Times(1)
	suite.mockGames.EXPECT().InvalidateCache().Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/games/"+gameID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var resp service.DeleteGameResponse
	testutils.DecodeJSON(suite.T(), recorder, &resp)
	suite.Equal(int64(2), resp.TeamsRemoved)
	suite.Equal(int64(7), resp.UsersUnassigned)
}

func (suite *GameHandlerTestSuite) TestDeleteGame_CascadeFailureIs500() {
	gameID := uuid.New()

	suite.mockRoster.EXPECT().DeleteGame(gameID).
		Return(nil, apperrors.NewPartialCascadeError("delete game", "delete teams", nil)).Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/games/"+gameID.String(), nil)

	suite.Equal(http.StatusInternalServerError, recorder.Code)
}

func (suite *GameHandlerTestSuite) TestDeleteGame_BadUUIDIs400() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/games/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func TestGameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}
