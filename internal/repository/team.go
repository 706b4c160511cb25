package repository

import (
	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByGameID retrieves all teams for a game ordered by name
func (r *TeamRepository) GetByGameID(gameID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("game_id = ?", gameID).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetIDsByGameID retrieves the IDs of all teams belonging to a game
func (r *TeamRepository) GetIDsByGameID(gameID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Team{}).Where("game_id = ?", gameID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetWithUsers retrieves a team with its users preloaded
func (r *TeamRepository) GetWithUsers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Users", func(db *gorm.DB) *gorm.DB {
		return db.Order("users.username ASC")
	}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update applies a partial update to a team
func (r *TeamRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a team by ID
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// DeleteByGameID removes all teams belonging to a game and returns the
// number of rows deleted
func (r *TeamRepository) DeleteByGameID(gameID uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Team{}, "game_id = ?", gameID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
