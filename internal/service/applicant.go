package service

import (
	"fmt"
	"time"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicantService handles join-form submissions
type ApplicantService struct {
	repo      repository.ApplicantRepositoryInterface
	validator *validator.Validate
}

// NewApplicantService creates a new applicant service
func NewApplicantService(repo repository.ApplicantRepositoryInterface, validator *validator.Validate) *ApplicantService {
	return &ApplicantService{
		repo:      repo,
		validator: validator,
	}
}

// SubmitApplicantRequest represents a join form submission
type SubmitApplicantRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	DiscordHandle string `json:"discord_handle" validate:"required,max=50"`
	PhoneNumber   string `json:"phone_number" validate:"required,max=20"`
	Message       string `json:"message" validate:"max=1000"`
	IsOver18      bool   `json:"is_over_18"`
}

// ApplicantResponse represents a stored join form record
type ApplicantResponse struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	DiscordHandle string    `json:"discord_handle"`
	PhoneNumber   string    `json:"phone_number"`
	Message       string    `json:"message,omitempty"`
	IsOver18      bool      `json:"is_over_18"`
	CreatedAt     string    `json:"created_at"`
}

// ApplicantListResponse is a paginated list of applicants
type ApplicantListResponse struct {
	Applicants []ApplicantResponse `json:"applicants"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Submit validates and stores a join form submission. The over-18
// acknowledgment is mandatory.
func (s *ApplicantService) Submit(req *SubmitApplicantRequest) (*ApplicantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.IsOver18 {
		return nil, apperrors.NewValidationError("is_over_18", "must confirm being over 18")
	}

	applicant := &models.Applicant{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		DiscordHandle: req.DiscordHandle,
		PhoneNumber:   req.PhoneNumber,
		Message:       req.Message,
		IsOver18:      req.IsOver18,
	}
	if err := s.repo.Create(applicant); err != nil {
		return nil, fmt.Errorf("failed to store applicant: %w", err)
	}

	return s.toResponse(applicant), nil
}

// List returns applicants newest first
func (s *ApplicantService) List(page, pageSize int) (*ApplicantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	applicants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	responses := make([]ApplicantResponse, len(applicants))
	for i := range applicants {
		responses[i] = *s.toResponse(&applicants[i])
	}

	return &ApplicantListResponse{
		Applicants: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *ApplicantService) toResponse(a *models.Applicant) *ApplicantResponse {
	return &ApplicantResponse{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Email:         a.Email,
		DiscordHandle: a.DiscordHandle,
		PhoneNumber:   a.PhoneNumber,
		Message:       a.Message,
		IsOver18:      a.IsOver18,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}
