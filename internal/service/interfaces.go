package service

import (
	"mime/multipart"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RosterServiceInterface defines the interface for roster mutations
type RosterServiceInterface interface {
	DeleteGame(gameID uuid.UUID) (*DeleteGameResponse, error)
	DeleteTeam(teamID uuid.UUID) (*DeleteTeamResponse, error)
	AssignUser(userID uuid.UUID, req *AssignUserRequest) (*AssignUserResponse, error)
	ToggleUserRole(userID, actingUserID uuid.UUID) (*RosterUserResponse, error)
	DeleteUser(userID, actingUserID uuid.UUID) error
	ListUsers(page, pageSize int) (*UserListResponse, error)
}

// GameServiceInterface defines the interface for game service
type GameServiceInterface interface {
	ListNavigation() ([]NavigationGame, error)
	ListRoster() ([]GameRoster, error)
	Create(req *CreateGameRequest) (*GameResponse, error)
	Update(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error)
	AttachImage(id uuid.UUID, imageURL string) (*GameResponse, error)
	InvalidateCache()
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Get(userID uuid.UUID) (*ProfileResponse, error)
	Update(userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	UploadImage(userID uuid.UUID, file *multipart.FileHeader) (*ProfileResponse, error)
}

// ApplicantServiceInterface defines the interface for applicant service
type ApplicantServiceInterface interface {
	Submit(req *SubmitApplicantRequest) (*ApplicantResponse, error)
	List(page, pageSize int) (*ApplicantListResponse, error)
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	RecordPageView(req *RecordPageViewRequest) (*RecordPageViewResponse, error)
	Summary(days int) (*AnalyticsSummaryResponse, error)
}
