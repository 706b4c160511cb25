package repository

import (
	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByName retrieves a game by its exact name
func (r *GameRepository) GetByName(name string) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetAll retrieves all games ordered by name
func (r *GameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Order("name ASC").Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// GetWithTeams retrieves a game with its teams and each team's users preloaded
func (r *GameRepository) GetWithTeams(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.Preload("Teams", func(db *gorm.DB) *gorm.DB {
		return db.Order("teams.name ASC")
	}).Preload("Teams.Users").First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Update applies a partial update to a game
func (r *GameRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Game{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a game by ID
func (r *GameRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Game{}, "id = ?", id).Error
}
