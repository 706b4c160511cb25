package repository

import (
	"time"

	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uuid.UUID) (*models.Game, error)
	GetByName(name string) (*models.Game, error)
	GetAll() ([]models.Game, error)
	GetWithTeams(id uuid.UUID) (*models.Game, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByGameID(gameID uuid.UUID) ([]models.Team, error)
	GetIDsByGameID(gameID uuid.UUID) ([]uuid.UUID, error)
	GetWithUsers(id uuid.UUID) (*models.Team, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	DeleteByGameID(gameID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	CountByTeamID(teamID uuid.UUID) (int64, error)
	UpdateAssignment(id uuid.UUID, updates map[string]interface{}) error
	UnassignByTeamIDs(teamIDs []uuid.UUID) (int64, error)
	UnassignByTeamID(teamID uuid.UUID) (int64, error)
	SetRole(id uuid.UUID, role models.UserRole) error
	UpdateProfile(id uuid.UUID, updates map[string]interface{}) error
	UpdatePasswordByEmail(email, passwordHash string) error
	Delete(id uuid.UUID) error
}

// ApplicantRepositoryInterface defines the interface for applicant repository operations
type ApplicantRepositoryInterface interface {
	Create(applicant *models.Applicant) error
	GetByID(id uuid.UUID) (*models.Applicant, error)
	GetAll(limit, offset int) ([]models.Applicant, int64, error)
	Delete(id uuid.UUID) error
}

// DailyPageViews is one day of aggregated traffic
type DailyPageViews struct {
	Day            time.Time `json:"day"`
	Views          int64     `json:"views"`
	UniqueVisitors int64     `json:"unique_visitors"`
}

// PathCount is an aggregated view count for a single path
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// PageViewRepositoryInterface defines the interface for page view repository operations
type PageViewRepositoryInterface interface {
	Create(view *models.PageView) error
	CountSince(since time.Time) (int64, error)
	CountUniqueVisitorsSince(since time.Time) (int64, error)
	DailyCounts(since time.Time) ([]DailyPageViews, error)
	TopPaths(since time.Time, limit int) ([]PathCount, error)
}

// PasswordResetRepositoryInterface defines the interface for password reset token operations
type PasswordResetRepositoryInterface interface {
	Create(reset *models.PasswordReset) error
	GetByToken(token string) (*models.PasswordReset, error)
	Delete(id uuid.UUID) error
	DeleteByEmail(email string) error
}
