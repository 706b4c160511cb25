//go:build integration
// +build integration

package repository

import (
	"testing"

	"esports-club-backend/internal/database/models"
	"esports-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository against a real Postgres
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	gameRepo      *GameRepository
	userRepo      *UserRepository
	games         *testutils.GameFactory
	teams         *testutils.TeamFactory
	users         *testutils.UserFactory
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.gameRepo = NewGameRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.games = testutils.NewGameFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.users = testutils.NewUserFactory()
}

func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) seedGame() *models.Game {
	game := suite.games.Create()
	suite.Require().NoError(suite.gameRepo.Create(game))
	return game
}

func (suite *TeamRepositoryTestSuite) TestCreate() {
	game := suite.seedGame()
	team := suite.teams.Create(game.ID)

	suite.NoError(suite.repo.Create(team))
	suite.NotEqual(uuid.Nil, team.ID)
}

func (suite *TeamRepositoryTestSuite) TestCreate_DuplicateNameSameGame() {
	game := suite.seedGame()

	team1 := suite.teams.WithName(game.ID, "Red")
	suite.Require().NoError(suite.repo.Create(team1))

	team2 := suite.teams.WithName(game.ID, "Red")
	err := suite.repo.Create(team2)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

func (suite *TeamRepositoryTestSuite) TestCreate_SameNameDifferentGame() {
	gameA := suite.seedGame()
	gameB := suite.seedGame()

	suite.NoError(suite.repo.Create(suite.teams.WithName(gameA.ID, "Red")))
	suite.NoError(suite.repo.Create(suite.teams.WithName(gameB.ID, "Red")))
}

func (suite *TeamRepositoryTestSuite) TestCreate_UnknownGameIsFKViolation() {
	team := suite.teams.Create(uuid.New())

	err := suite.repo.Create(team)

	suite.Error(err)
	suite.True(IsForeignKeyViolation(err))
}

func (suite *TeamRepositoryTestSuite) TestGetIDsByGameID() {
	game := suite.seedGame()
	other := suite.seedGame()

	team1 := suite.teams.Create(game.ID)
	team2 := suite.teams.Create(game.ID)
	foreign := suite.teams.Create(other.ID)
	suite.Require().NoError(suite.repo.Create(team1))
	suite.Require().NoError(suite.repo.Create(team2))
	suite.Require().NoError(suite.repo.Create(foreign))

	ids, err := suite.repo.GetIDsByGameID(game.ID)

	suite.NoError(err)
	suite.Len(ids, 2)
	suite.Contains(ids, team1.ID)
	suite.Contains(ids, team2.ID)
	suite.NotContains(ids, foreign.ID)
}

func (suite *TeamRepositoryTestSuite) TestDeleteByGameID_ReturnsCount() {
	game := suite.seedGame()
	suite.Require().NoError(suite.repo.Create(suite.teams.Create(game.ID)))
	suite.Require().NoError(suite.repo.Create(suite.teams.Create(game.ID)))

	count, err := suite.repo.DeleteByGameID(game.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)

	remaining, err := suite.repo.GetByGameID(game.ID)
	suite.NoError(err)
	suite.Empty(remaining)
}

func (suite *TeamRepositoryTestSuite) TestDelete_WithAssignedUsersIsRejected() {
	game := suite.seedGame()
	team := suite.teams.Create(game.ID)
	suite.Require().NoError(suite.repo.Create(team))

	user := suite.users.OnTeam(team.ID, "Tank")
	suite.Require().NoError(suite.userRepo.Create(user))

	// No DB cascade: the row is pinned until the roster service frees the user
	err := suite.repo.Delete(team.ID)

	suite.Error(err)
	suite.True(IsForeignKeyViolation(err))
}

func (suite *TeamRepositoryTestSuite) TestGetWithUsers_OrdersByUsername() {
	game := suite.seedGame()
	team := suite.teams.Create(game.ID)
	suite.Require().NoError(suite.repo.Create(team))

	for _, name := range []string{"zoe", "amy"} {
		user := suite.users.OnTeam(team.ID, "")
		user.Username = name
		suite.Require().NoError(suite.userRepo.Create(user))
	}

	loaded, err := suite.repo.GetWithUsers(team.ID)

	suite.NoError(err)
	suite.Len(loaded.Users, 2)
	suite.Equal("amy", loaded.Users[0].Username)
	suite.Equal("zoe", loaded.Users[1].Username)
}

func (suite *TeamRepositoryTestSuite) TestUpdate_MissingTeam() {
	err := suite.repo.Update(uuid.New(), map[string]interface{}{"name": "Renamed"})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
