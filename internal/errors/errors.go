package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// SelfActionError represents a forbidden action where an admin targets
// their own account (self-delete, self-role-change).
type SelfActionError struct {
	Action string
}

func (e *SelfActionError) Error() string {
	return fmt.Sprintf("cannot %s your own account", e.Action)
}

// Is enables errors.Is() comparison for SelfActionError
func (e *SelfActionError) Is(target error) bool {
	t, ok := target.(*SelfActionError)
	if !ok {
		return false
	}
	return e.Action == t.Action
}

// ForeignKeyError represents a write rejected because it references a row
// that does not exist in the store.
type ForeignKeyError struct {
	Entity string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("the specified %s does not exist", e.Entity)
}

// Is enables errors.Is() comparison for ForeignKeyError
func (e *ForeignKeyError) Is(target error) bool {
	t, ok := target.(*ForeignKeyError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// PartialCascadeError represents a multi-step cascade that failed partway.
// Steps already applied are not rolled back; the store may be in an
// intermediate state.
type PartialCascadeError struct {
	Operation string
	Step      string
	Err       error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("%s failed at step %q; earlier steps are not rolled back: %v", e.Operation, e.Step, e.Err)
}

// Unwrap exposes the underlying store error
func (e *PartialCascadeError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGameNotFound      = &NotFoundError{Entity: "game"}
	ErrTeamNotFound      = &NotFoundError{Entity: "team"}
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrApplicantNotFound = &NotFoundError{Entity: "applicant"}
)

// Already Exists Errors
var (
	ErrGameExists     = &AlreadyExistsError{Entity: "game", Context: "with this name"}
	ErrTeamExists     = &AlreadyExistsError{Entity: "team", Context: "with this name for the selected game"}
	ErrUsernameExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
)

// Roster Errors
var (
	ErrTeamDoesNotExist = &ForeignKeyError{Entity: "team"}
	ErrSelfDelete       = &SelfActionError{Action: "delete"}
	ErrSelfRoleChange   = &SelfActionError{Action: "change the role of"}
	ErrNoFieldsToUpdate = &ValidationError{Message: "no fields to update"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrResetTokenInvalid  = errors.New("invalid or expired token")
	ErrResetTokenExpired  = errors.New("token has expired")
	ErrAdminOnly          = &AuthorizationError{Message: "admin access required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSelfAction checks if an error is a SelfActionError
func IsSelfAction(err error) bool {
	var selfErr *SelfActionError
	return errors.As(err, &selfErr)
}

// IsForeignKey checks if an error is a ForeignKeyError
func IsForeignKey(err error) bool {
	var fkErr *ForeignKeyError
	return errors.As(err, &fkErr)
}

// IsPartialCascade checks if an error is a PartialCascadeError
func IsPartialCascade(err error) bool {
	var cascadeErr *PartialCascadeError
	return errors.As(err, &cascadeErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPartialCascadeError wraps a store error that interrupted a cascade
func NewPartialCascadeError(operation, step string, err error) error {
	return &PartialCascadeError{Operation: operation, Step: step, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
