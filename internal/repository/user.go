package repository

import (
	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users with their team preloaded, with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Team").Order("username ASC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByTeamID retrieves all users assigned to a team
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ?", teamID).Order("username ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountByTeamID counts the users currently assigned to a team
func (r *UserRepository) CountByTeamID(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// UpdateAssignment applies a partial update to a user's roster assignment
// fields. A foreign key violation from a nonexistent team surfaces as the
// driver error and is classified by the caller.
func (r *UserRepository) UpdateAssignment(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UnassignByTeamIDs clears team membership and in-game role for every user
// on any of the given teams. Returns the number of users touched.
func (r *UserRepository) UnassignByTeamIDs(teamIDs []uuid.UUID) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.User{}).
		Where("team_id IN ?", teamIDs).
		Updates(map[string]interface{}{"team_id": nil, "assigned_role": nil})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UnassignByTeamID clears team membership for every user on a single team.
// The in-game role is left as is.
func (r *UserRepository) UnassignByTeamID(teamID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.User{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SetRole sets a user's account role
func (r *UserRepository) SetRole(id uuid.UUID, role models.UserRole) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateProfile applies a partial update to a user's profile fields
func (r *UserRepository) UpdateProfile(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePasswordByEmail replaces the password hash for the account with the
// given email
func (r *UserRepository) UpdatePasswordByEmail(email, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("email = ?", email).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
