package testutils

import (
	"time"

	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
)

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values
func (f *GameFactory) Create() *models.Game {
	id := uuid.New()
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:              "Game " + id.String()[:8],
		Description:       "A test game",
		MaxPlayersPerTeam: 5,
	}
}

// WithName sets a custom name for the game
func (f *GameFactory) WithName(name string) *models.Game {
	game := f.Create()
	game.Name = name
	return game
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team under the given game
func (f *TeamFactory) Create(gameID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID: gameID,
		Name:   "Team " + id.String()[:8],
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(gameID uuid.UUID, name string) *models.Team {
	team := f.Create(gameID)
	team.Name = name
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: "user_" + id.String()[:8],
		Email:    "user_" + id.String()[:8] + "@test.com",
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:     models.UserRoleUser,
	}
}

// Admin creates a test admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Role = models.UserRoleAdmin
	return user
}

// OnTeam creates a test user assigned to a team with an in-game role
func (f *UserFactory) OnTeam(teamID uuid.UUID, assignedRole string) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	user.AssignedRole = assignedRole
	return user
}

// ApplicantFactory provides methods to create test Applicant data
type ApplicantFactory struct{}

// NewApplicantFactory creates a new ApplicantFactory
func NewApplicantFactory() *ApplicantFactory {
	return &ApplicantFactory{}
}

// Create creates a test Applicant with default values
func (f *ApplicantFactory) Create() *models.Applicant {
	id := uuid.New()
	return &models.Applicant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:     "Jordan",
		LastName:      "Reyes",
		Email:         "applicant_" + id.String()[:8] + "@test.com",
		DiscordHandle: "jordan#" + id.String()[:4],
		PhoneNumber:   "+1-555-0100",
		IsOver18:      true,
	}
}

// PageViewFactory provides methods to create test PageView data
type PageViewFactory struct{}

// NewPageViewFactory creates a new PageViewFactory
func NewPageViewFactory() *PageViewFactory {
	return &PageViewFactory{}
}

// Create creates a test PageView for a path and visitor
func (f *PageViewFactory) Create(path, visitorID string) *models.PageView {
	return &models.PageView{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Path:      path,
		VisitorID: visitorID,
	}
}

// PasswordResetFactory provides methods to create test PasswordReset data
type PasswordResetFactory struct{}

// NewPasswordResetFactory creates a new PasswordResetFactory
func NewPasswordResetFactory() *PasswordResetFactory {
	return &PasswordResetFactory{}
}

// Create creates a valid reset token for an email
func (f *PasswordResetFactory) Create(email string) *models.PasswordReset {
	return &models.PasswordReset{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     email,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// Expired creates an already-expired reset token for an email
func (f *PasswordResetFactory) Expired(email string) *models.PasswordReset {
	reset := f.Create(email)
	reset.ExpiresAt = time.Now().Add(-time.Minute)
	return reset
}
