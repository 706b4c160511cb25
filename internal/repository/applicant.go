package repository

import (
	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicantRepository handles database operations for join-form applicants
type ApplicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// Create creates a new applicant
func (r *ApplicantRepository) Create(applicant *models.Applicant) error {
	return r.db.Create(applicant).Error
}

// GetByID retrieves an applicant by ID
func (r *ApplicantRepository) GetByID(id uuid.UUID) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.First(&applicant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// GetAll retrieves all applicants newest first, with pagination
func (r *ApplicantRepository) GetAll(limit, offset int) ([]models.Applicant, int64, error) {
	var applicants []models.Applicant
	var total int64

	if err := r.db.Model(&models.Applicant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&applicants).Error
	if err != nil {
		return nil, 0, err
	}

	return applicants, total, nil
}

// Delete removes an applicant by ID
func (r *ApplicantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Applicant{}, "id = ?", id).Error
}
