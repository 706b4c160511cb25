package repository

import (
	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetRepository handles database operations for password reset tokens
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Create stores a new reset token
func (r *PasswordResetRepository) Create(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

// GetByToken retrieves a reset record by its token value
func (r *PasswordResetRepository) GetByToken(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.First(&reset, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// Delete removes a reset record by ID
func (r *PasswordResetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PasswordReset{}, "id = ?", id).Error
}

// DeleteByEmail removes all reset records issued for an email address
func (r *PasswordResetRepository) DeleteByEmail(email string) error {
	return r.db.Delete(&models.PasswordReset{}, "email = ?", email).Error
}
