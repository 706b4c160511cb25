package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/mocks"
	"esports-club-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RosterServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGameRepo *mocks.MockGameRepositoryInterface
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *service.RosterService
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.service = service.NewRosterService(suite.mockGameRepo, suite.mockTeamRepo, suite.mockUserRepo)
}

func (suite *RosterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterServiceTestSuite) TestDeleteGame_CascadesUsersThenTeamsThenGame() {
	gameID := uuid.New()
	teamIDs := []uuid.UUID{uuid.New(), uuid.New()}

	// Order is part of the contract: unassign users, delete teams, delete game
	first := suite.mockTeamRepo.EXPECT().GetIDsByGameID(gameID).Return(teamIDs, nil).Times(1)
	second := suite.mockUserRepo.EXPECT().UnassignByTeamIDs(teamIDs).Return(int64(7), nil).Times(1).After(first)
	third := suite.mockTeamRepo.EXPECT().DeleteByGameID(gameID).Return(int64(2), nil).Times(1).After(second)
	suite.mockGameRepo.EXPECT().Delete(gameID).Return(nil).Times(1).After(third)

	resp, err := suite.service.DeleteGame(gameID)

	suite.NoError(err)
	suite.Equal(int64(2), resp.TeamsRemoved)
	suite.Equal(int64(7), resp.UsersUnassigned)
	suite.Equal("Game deleted successfully. Removed 2 team(s) and unassigned 7 player(s).", resp.Message)
}

func (suite *RosterServiceTestSuite) TestDeleteGame_NoTeamsSkipsUnassign() {
	gameID := uuid.New()

	suite.mockTeamRepo.EXPECT().GetIDsByGameID(gameID).Return([]uuid.UUID{}, nil).Times(1)
	suite.mockGameRepo.EXPECT().Delete(gameID).Return(nil).Times(1)

	resp, err := suite.service.DeleteGame(gameID)

	suite.NoError(err)
	suite.Equal(int64(0), resp.TeamsRemoved)
	suite.Equal(int64(0), resp.UsersUnassigned)
	suite.Equal("Game deleted successfully. Removed 0 team(s) and unassigned 0 player(s).", resp.Message)
}

func (suite *RosterServiceTestSuite) TestDeleteGame_UnassignFailureStopsCascade() {
	gameID := uuid.New()
	teamIDs := []uuid.UUID{uuid.New()}

	suite.mockTeamRepo.EXPECT().GetIDsByGameID(gameID).Return(teamIDs, nil).Times(1)
	suite.mockUserRepo.EXPECT().UnassignByTeamIDs(teamIDs).Return(int64(0), errors.New("connection reset")).Times(1)

	resp, err := suite.service.DeleteGame(gameID)

	suite.Nil(resp)
	suite.True(apperrors.IsPartialCascade(err))
	var cascadeErr *apperrors.PartialCascadeError
	suite.True(errors.As(err, &cascadeErr))
	suite.Equal("unassign users", cascadeErr.Step)
}

func (suite *RosterServiceTestSuite) TestDeleteGame_TeamDeleteFailureLeavesUsersUnassigned() {
	gameID := uuid.New()
	teamIDs := []uuid.UUID{uuid.New()}

	suite.mockTeamRepo.EXPECT().GetIDsByGameID(gameID).Return(teamIDs, nil).Times(1)
	suite.mockUserRepo.EXPECT().UnassignByTeamIDs(teamIDs).Return(int64(3), nil).Times(1)
	suite.mockTeamRepo.EXPECT().DeleteByGameID(gameID).Return(int64(0), errors.New("connection reset")).Times(1)

	resp, err := suite.service.DeleteGame(gameID)

	suite.Nil(resp)
	var cascadeErr *apperrors.PartialCascadeError
	suite.True(errors.As(err, &cascadeErr))
	suite.Equal("delete teams", cascadeErr.Step)
}

func (suite *RosterServiceTestSuite) TestDeleteGame_GameDeleteFailure() {
	gameID := uuid.New()

	suite.mockTeamRepo.EXPECT().GetIDsByGameID(gameID).Return(nil, nil).Times(1)
	suite.mockGameRepo.EXPECT().Delete(gameID).Return(errors.New("connection reset")).Times(1)

	resp, err := suite.service.DeleteGame(gameID)

	suite.Nil(resp)
	var cascadeErr *apperrors.PartialCascadeError
	suite.True(errors.As(err, &cascadeErr))
	suite.Equal("delete game", cascadeErr.Step)
}

func (suite *RosterServiceTestSuite) TestDeleteTeam_UnassignsThenDeletes() {
	teamID := uuid.New()

	suite.mockUserRepo.EXPECT().UnassignByTeamID(teamID).Return(int64(4), nil).Times(1)
	suite.mockTeamRepo.EXPECT().Delete(teamID).Return(nil).Times(1)

	resp, err := suite.service.DeleteTeam(teamID)

	suite.NoError(err)
	suite.Equal(int64(4), resp.UsersUnassigned)
	suite.Contains(resp.Message, "deleted successfully")
}

func (suite *RosterServiceTestSuite) TestDeleteTeam_UnassignFailureStillDeletes() {
	teamID := uuid.New()

	suite.mockUserRepo.EXPECT().UnassignByTeamID(teamID).Return(int64(0), errors.New("connection reset")).Times(1)
	suite.mockTeamRepo.EXPECT().Delete(teamID).Return(nil).Times(1)

	resp, err := suite.service.DeleteTeam(teamID)

	suite.NoError(err)
	suite.Equal(int64(0), resp.UsersUnassigned)
}

func (suite *RosterServiceTestSuite) TestDeleteTeam_DeleteFailure() {
	teamID := uuid.New()

	suite.mockUserRepo.EXPECT().UnassignByTeamID(teamID).Return(int64(0), nil).Times(1)
	suite.mockTeamRepo.EXPECT().Delete(teamID).Return(errors.New("connection reset")).Times(1)

	resp, err := suite.service.DeleteTeam(teamID)

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *RosterServiceTestSuite) TestAssignUser_AssignToTeam() {
	userID := uuid.New()
	teamID := uuid.New()
	req := &service.AssignUserRequest{TeamID: &teamID, HasTeamID: true}

	suite.mockUserRepo.EXPECT().
		UpdateAssignment(userID, map[string]interface{}{"team_id": teamID}).
		Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "smurf",
		Role:      models.UserRoleUser,
		TeamID:    &teamID,
	}, nil).Times(1)

	resp, err := suite.service.AssignUser(userID, req)

	suite.NoError(err)
	suite.Equal(&teamID, resp.User.TeamID)
	suite.Contains(resp.Message, "assigned to team")
}

func (suite *RosterServiceTestSuite) TestAssignUser_NullTeamClearsMembership() {
	userID := uuid.New()
	req := &service.AssignUserRequest{TeamID: nil, HasTeamID: true}

	suite.mockUserRepo.EXPECT().
		UpdateAssignment(userID, map[string]interface{}{"team_id": nil}).
		Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "smurf",
		Role:      models.UserRoleUser,
	}, nil).Times(1)

	resp, err := suite.service.AssignUser(userID, req)

	suite.NoError(err)
	suite.Nil(resp.User.TeamID)
	suite.Contains(resp.Message, "unassigned from team")
}

func (suite *RosterServiceTestSuite) TestAssignUser_RoleOnly() {
	userID := uuid.New()
	role := "IGL"
	req := &service.AssignUserRequest{AssignedRole: &role, HasAssignedRole: true}

	suite.mockUserRepo.EXPECT().
		UpdateAssignment(userID, map[string]interface{}{"assigned_role": "IGL"}).
		Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel:    models.BaseModel{ID: userID},
		Username:     "smurf",
		Role:         models.UserRoleUser,
		AssignedRole: "IGL",
	}, nil).Times(1)

	resp, err := suite.service.AssignUser(userID, req)

	suite.NoError(err)
	suite.Equal("Assigned role updated to: IGL.", resp.Message)
}

func (suite *RosterServiceTestSuite) TestAssignUser_EmptyRoleClears() {
	userID := uuid.New()
	empty := ""
	req := &service.AssignUserRequest{AssignedRole: &empty, HasAssignedRole: true}

	suite.mockUserRepo.EXPECT().
		UpdateAssignment(userID, map[string]interface{}{"assigned_role": nil}).
		Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "smurf",
		Role:      models.UserRoleUser,
	}, nil).Times(1)

	resp, err := suite.service.AssignUser(userID, req)

	suite.NoError(err)
	suite.Equal("Assigned role updated to: none.", resp.Message)
}

func (suite *RosterServiceTestSuite) TestAssignUser_NoFields() {
	userID := uuid.New()

	resp, err := suite.service.AssignUser(userID, &service.AssignUserRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNoFieldsToUpdate)
}

func (suite *RosterServiceTestSuite) TestAssignUser_UserNotFound() {
	userID := uuid.New()
	teamID := uuid.New()
	req := &service.AssignUserRequest{TeamID: &teamID, HasTeamID: true}

	suite.mockUserRepo.EXPECT().
		UpdateAssignment(userID, gomock.Any()).
		Return(gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.service.AssignUser(userID, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *RosterServiceTestSuite) TestAssignUser_UnknownTeam() {
	userID := uuid.New()
	teamID := uuid.New()
	req := &service.AssignUserRequest{TeamID: &teamID, HasTeamID: true}

	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_teams_users"}
	suite.mockUserRepo.EXPECT().
		UpdateAssignment(userID, gomock.Any()).
		Return(fkErr).Times(1)

	resp, err := suite.service.AssignUser(userID, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamDoesNotExist)
}

func (suite *RosterServiceTestSuite) TestAssignUserRequest_UnmarshalTracksPresence() {
	var absent service.AssignUserRequest
	suite.NoError(json.Unmarshal([]byte(`{}`), &absent))
	suite.False(absent.HasTeamID)
	suite.False(absent.HasAssignedRole)

	var null service.AssignUserRequest
	suite.NoError(json.Unmarshal([]byte(`{"team_id": null}`), &null))
	suite.True(null.HasTeamID)
	suite.Nil(null.TeamID)

	teamID := uuid.New()
	var set service.AssignUserRequest
	suite.NoError(json.Unmarshal([]byte(`{"team_id": "`+teamID.String()+`", "assigned_role": "Support"}`), &set))
	suite.True(set.HasTeamID)
	suite.Equal(teamID, *set.TeamID)
	suite.True(set.HasAssignedRole)
	suite.Equal("Support", *set.AssignedRole)
}

func (suite *RosterServiceTestSuite) TestToggleUserRole_PromotesUser() {
	userID := uuid.New()
	actingID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "smurf",
		Role:      models.UserRoleUser,
	}, nil).Times(1)
	suite.mockUserRepo.EXPECT().SetRole(userID, models.UserRoleAdmin).Return(nil).Times(1)

	resp, err := suite.service.ToggleUserRole(userID, actingID)

	suite.NoError(err)
	suite.Equal(models.UserRoleAdmin, resp.Role)
}

func (suite *RosterServiceTestSuite) TestToggleUserRole_DemotesAdmin() {
	userID := uuid.New()
	actingID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "ops",
		Role:      models.UserRoleAdmin,
	}, nil).Times(1)
	suite.mockUserRepo.EXPECT().SetRole(userID, models.UserRoleUser).Return(nil).Times(1)

	resp, err := suite.service.ToggleUserRole(userID, actingID)

	suite.NoError(err)
	suite.Equal(models.UserRoleUser, resp.Role)
}

func (suite *RosterServiceTestSuite) TestToggleUserRole_SelfRejectedBeforeRead() {
	userID := uuid.New()

	// No GetByID expectation: the self check must run before any read
	resp, err := suite.service.ToggleUserRole(userID, userID)

	suite.Nil(resp)
	suite.True(apperrors.IsSelfAction(err))
}

func (suite *RosterServiceTestSuite) TestToggleUserRole_UserNotFound() {
	userID := uuid.New()
	actingID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.service.ToggleUserRole(userID, actingID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *RosterServiceTestSuite) TestDeleteUser_Success() {
	userID := uuid.New()
	actingID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
	}, nil).Times(1)
	suite.mockUserRepo.EXPECT().Delete(userID).Return(nil).Times(1)

	suite.NoError(suite.service.DeleteUser(userID, actingID))
}

func (suite *RosterServiceTestSuite) TestDeleteUser_SelfRejectedBeforeRead() {
	userID := uuid.New()

	err := suite.service.DeleteUser(userID, userID)

	suite.True(apperrors.IsSelfAction(err))
}

func (suite *RosterServiceTestSuite) TestDeleteUser_NotFound() {
	userID := uuid.New()
	actingID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.DeleteUser(userID, actingID)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *RosterServiceTestSuite) TestListUsers_Paginates() {
	teamID := uuid.New()
	users := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "a", Role: models.UserRoleUser, TeamID: &teamID, AssignedRole: "Tank"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "b", Role: models.UserRoleAdmin},
	}

	suite.mockUserRepo.EXPECT().GetAll(20, 20).Return(users, int64(42), nil).Times(1)

	resp, err := suite.service.ListUsers(2, 20)

	suite.NoError(err)
	suite.Equal(int64(42), resp.Total)
	suite.Equal(2, resp.Page)
	suite.Len(resp.Users, 2)
	suite.Equal("Tank", resp.Users[0].AssignedRole)
}

func (suite *RosterServiceTestSuite) TestListUsers_ClampsBadPaging() {
	suite.mockUserRepo.EXPECT().GetAll(50, 0).Return(nil, int64(0), nil).Times(1)

	resp, err := suite.service.ListUsers(0, 500)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(50, resp.PageSize)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
