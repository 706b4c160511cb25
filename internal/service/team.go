package service

import (
	"errors"
	"fmt"
	"time"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	gameRepo  repository.GameRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, gameRepo repository.GameRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		gameRepo:  gameRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	GameID uuid.UUID `json:"game_id" validate:"required"`
	Name   string    `json:"name" validate:"required,min=1,max=100"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID `json:"id"`
	GameID    uuid.UUID `json:"game_id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Create creates a new team under an existing game. Team names are unique
// per game, not globally.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.gameRepo.GetByID(req.GameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to verify game: %w", err)
	}

	team := &models.Team{
		GameID: req.GameID,
		Name:   req.Name,
	}
	if err := s.repo.Create(team); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeamExists
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &TeamResponse{
		ID:        team.ID,
		GameID:    team.GameID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
		UpdatedAt: team.UpdatedAt.Format(time.RFC3339),
	}, nil
}
