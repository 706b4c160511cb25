package auth

import (
	"errors"
	"fmt"
	"time"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/logger"
	"esports-club-backend/internal/mailer"
	"esports-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost    = 10
	tokenLifetime = 24 * time.Hour
	resetLifetime = time.Hour
	tokenIssuer   = "esports-club-backend"
	tokenAudience = "esports-club"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID       `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthService provides password authentication and account recovery
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	resetRepo repository.PasswordResetRepositoryInterface
	mailer    mailer.Mailer
	validator *validator.Validate
	jwtSecret []byte
	siteURL   string
	log       *logger.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, resetRepo repository.PasswordResetRepositoryInterface, m mailer.Mailer, validator *validator.Validate, jwtSecret, siteURL string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		mailer:    m,
		validator: validator,
		jwtSecret: []byte(jwtSecret),
		siteURL:   siteURL,
		log:       logger.New().WithField("service", "auth"),
	}
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token and the account it belongs to
type LoginResponse struct {
	Token    string          `json:"token"`
	UserID   uuid.UUID       `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// ForgotPasswordRequest asks for a reset mail
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest redeems a reset token
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Register creates a new account with the USER role
func (s *AuthService) Register(req *RegisterRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.userRepo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.UserRoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithField("username", user.Username).Info("user registered")
	return s.issueToken(user)
}

// Login verifies credentials and issues a JWT. Unknown usernames and wrong
// passwords produce the same error.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*LoginResponse, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		Token:    signed,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// ValidateJWT parses and verifies a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	if !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	return claims, nil
}

// ForgotPassword issues a reset token and mails a link. The response is the
// same whether or not the address matches an account.
func (s *AuthService) ForgotPassword(req *ForgotPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal which addresses have accounts
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	reset := &models.PasswordReset{
		Email:     user.Email,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetLifetime),
	}
	if err := s.resetRepo.Create(reset); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.siteURL, reset.Token)
	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		s.log.WithField("email", user.Email).Errorf("failed to send reset mail: %v", err)
	}
	return nil
}

// ResetPassword redeems a token and replaces the account password. Expired
// tokens are deleted on sight; a redeemed token is single use.
func (s *AuthService) ResetPassword(req *ResetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	reset, err := s.resetRepo.GetByToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if reset.Expired() {
		if err := s.resetRepo.Delete(reset.ID); err != nil {
			s.log.Warnf("failed to delete expired reset token: %v", err)
		}
		return apperrors.ErrResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(reset.Email, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.resetRepo.Delete(reset.ID); err != nil {
		s.log.Warnf("failed to delete used reset token: %v", err)
	}
	return nil
}
