package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService handles business logic for games
type GameService struct {
	repo      repository.GameRepositoryInterface
	validator *validator.Validate

	cacheTTL time.Duration
	mu       sync.Mutex
	cached   []NavigationGame
	cachedAt time.Time
}

// NewGameService creates a new game service. cacheTTL bounds how stale the
// navigation list may get after an admin edit on another instance.
func NewGameService(repo repository.GameRepositoryInterface, validator *validator.Validate, cacheTTL time.Duration) *GameService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &GameService{
		repo:      repo,
		validator: validator,
		cacheTTL:  cacheTTL,
	}
}

// NavigationGame is the public navigation entry for a game
type NavigationGame struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// CreateGameRequest represents the request to create a game
type CreateGameRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	Description       string `json:"description" validate:"max=500"`
	ImageURL          string `json:"image_url" validate:"omitempty,max=500"`
	MaxPlayersPerTeam int    `json:"max_players_per_team" validate:"required,gt=0"`
}

// UpdateGameRequest represents a partial update to a game
type UpdateGameRequest struct {
	Description       *string `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL          *string `json:"image_url,omitempty" validate:"omitempty,max=500"`
	MaxPlayersPerTeam *int    `json:"max_players_per_team,omitempty" validate:"omitempty,gt=0"`
}

// GameResponse represents the response for game operations
type GameResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
	MaxPlayersPerTeam int       `json:"max_players_per_team"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         string    `json:"updated_at"`
}

// TeamRosterEntry is one team with its players and capacity
type TeamRosterEntry struct {
	ID       uuid.UUID            `json:"id"`
	Name     string               `json:"name"`
	Players  []RosterUserResponse `json:"players"`
	Capacity int                  `json:"capacity"`
}

// GameRoster is one game with its full team roster
type GameRoster struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	ImageURL string            `json:"image_url,omitempty"`
	Teams    []TeamRosterEntry `json:"teams"`
}

// Slugify derives the URL slug for a game name: lowercase, spaces become
// dashes, everything outside [a-z0-9-] is dropped.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ListNavigation returns the public game list, served from a short-lived
// in-process cache
func (s *GameService) ListNavigation() ([]NavigationGame, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	games, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	nav := make([]NavigationGame, len(games))
	for i, g := range games {
		nav[i] = NavigationGame{
			ID:          g.ID,
			Name:        g.Name,
			Slug:        Slugify(g.Name),
			Description: g.Description,
			ImageURL:    g.ImageURL,
		}
	}

	s.mu.Lock()
	s.cached = nav
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return nav, nil
}

// InvalidateCache drops the navigation cache after a game mutation
func (s *GameService) InvalidateCache() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// ListRoster returns every game with its teams and their players, for the
// public teams page and the admin dashboard
func (s *GameService) ListRoster() ([]GameRoster, error) {
	games, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	rosters := make([]GameRoster, len(games))
	for i, g := range games {
		full, err := s.repo.GetWithTeams(g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster for game %s: %w", g.ID, err)
		}

		teams := make([]TeamRosterEntry, len(full.Teams))
		for j := range full.Teams {
			t := &full.Teams[j]
			players := make([]RosterUserResponse, len(t.Users))
			for k := range t.Users {
				players[k] = toRosterUser(&t.Users[k])
			}
			teams[j] = TeamRosterEntry{
				ID:       t.ID,
				Name:     t.Name,
				Players:  players,
				Capacity: full.MaxPlayersPerTeam,
			}
		}
		rosters[i] = GameRoster{
			ID:       full.ID,
			Name:     full.Name,
			Slug:     Slugify(full.Name),
			ImageURL: full.ImageURL,
			Teams:    teams,
		}
	}

	return rosters, nil
}

// Create creates a new game
func (s *GameService) Create(req *CreateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing game: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGameExists
	}

	game := &models.Game{
		Name:              req.Name,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		MaxPlayersPerTeam: req.MaxPlayersPerTeam,
	}
	if err := s.repo.Create(game); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrGameExists
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.InvalidateCache()
	return s.toResponse(game), nil
}

// Update applies a partial update to a game
func (s *GameService) Update(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.MaxPlayersPerTeam != nil {
		updates["max_players_per_team"] = *req.MaxPlayersPerTeam
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if err := s.repo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	game, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload game: %w", err)
	}

	s.InvalidateCache()
	return s.toResponse(game), nil
}

// AttachImage records the stored image URL on a game
func (s *GameService) AttachImage(id uuid.UUID, imageURL string) (*GameResponse, error) {
	url := imageURL
	return s.Update(id, &UpdateGameRequest{ImageURL: &url})
}

func (s *GameService) toResponse(game *models.Game) *GameResponse {
	return &GameResponse{
		ID:                game.ID,
		Name:              game.Name,
		Slug:              Slugify(game.Name),
		Description:       game.Description,
		ImageURL:          game.ImageURL,
		MaxPlayersPerTeam: game.MaxPlayersPerTeam,
		CreatedAt:         game.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         game.UpdatedAt.Format(time.RFC3339),
	}
}
