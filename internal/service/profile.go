package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/logger"
	"esports-club-backend/internal/repository"
	"esports-club-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService handles a user's own profile
type ProfileService struct {
	userRepo  repository.UserRepositoryInterface
	store     storage.ObjectStore
	validator *validator.Validate
	log       *logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepositoryInterface, store storage.ObjectStore, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		userRepo:  userRepo,
		store:     store,
		validator: validator,
		log:       logger.New().WithField("service", "profile"),
	}
}

// UpdateProfileRequest is a partial update to the caller's profile
type UpdateProfileRequest struct {
	Bio           *string `json:"bio,omitempty" validate:"omitempty,max=150"`
	PreferredRole *string `json:"preferred_role,omitempty" validate:"omitempty,max=50"`
	DiscordHandle *string `json:"discord_handle,omitempty" validate:"omitempty,max=50"`
	ProfileImage  *string `json:"profile_image,omitempty" validate:"omitempty,max=500"`
}

// ProfileResponse is the caller-facing view of their own account
type ProfileResponse struct {
	ID            uuid.UUID       `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email,omitempty"`
	Role          models.UserRole `json:"role"`
	TeamID        *uuid.UUID      `json:"team_id,omitempty"`
	AssignedRole  string          `json:"assigned_role,omitempty"`
	PreferredRole string          `json:"preferred_role,omitempty"`
	ProfileImage  string          `json:"profile_image,omitempty"`
	Bio           string          `json:"bio,omitempty"`
	DiscordHandle string          `json:"discord_handle,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// Get returns the caller's profile
func (s *ProfileService) Get(userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// Update applies a partial update to the caller's profile
func (s *ProfileService) Update(userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.PreferredRole != nil {
		updates["preferred_role"] = *req.PreferredRole
	}
	if req.DiscordHandle != nil {
		updates["discord_handle"] = *req.DiscordHandle
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if err := s.userRepo.UpdateProfile(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.Get(userID)
}

// UploadImage stores a new profile image and points the profile at it. A
// profile update failure after the image is stored is logged, not fatal;
// the stored object is kept and the old profile_image value stands.
func (s *ProfileService) UploadImage(userID uuid.UUID, file *multipart.FileHeader) (*ProfileResponse, error) {
	ext, err := storage.ValidateImage(file)
	if err != nil {
		return nil, apperrors.NewValidationError("image", err.Error())
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	url, err := s.store.Save("profiles", ext, src)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	if err := s.userRepo.UpdateProfile(userID, map[string]interface{}{"profile_image": url}); err != nil {
		s.log.WithField("user_id", userID).Warnf("image stored but profile update failed: %v", err)
	}

	return s.Get(userID)
}

func (s *ProfileService) toResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		TeamID:        user.TeamID,
		AssignedRole:  user.AssignedRole,
		PreferredRole: user.PreferredRole,
		ProfileImage:  user.ProfileImage,
		Bio:           user.Bio,
		DiscordHandle: user.DiscordHandle,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}
