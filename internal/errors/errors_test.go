package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "esports-club-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("game")

	assert.Equal(t, "game not found", err.Error())
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, errors.Is(err, apperrors.ErrGameNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrTeamNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "game already exists with this name", apperrors.ErrGameExists.Error())
	assert.Equal(t, "team already exists with this name for the selected game", apperrors.ErrTeamExists.Error())
	assert.True(t, apperrors.IsAlreadyExists(apperrors.ErrUsernameExists))
	assert.False(t, errors.Is(apperrors.ErrGameExists, apperrors.ErrTeamExists))
}

func TestSelfActionError(t *testing.T) {
	assert.Equal(t, "cannot delete your own account", apperrors.ErrSelfDelete.Error())
	assert.Equal(t, "cannot change the role of your own account", apperrors.ErrSelfRoleChange.Error())
	assert.True(t, apperrors.IsSelfAction(apperrors.ErrSelfDelete))
	assert.False(t, errors.Is(apperrors.ErrSelfDelete, apperrors.ErrSelfRoleChange))
}

func TestForeignKeyError(t *testing.T) {
	assert.Equal(t, "the specified team does not exist", apperrors.ErrTeamDoesNotExist.Error())
	assert.True(t, apperrors.IsForeignKey(apperrors.ErrTeamDoesNotExist))
	assert.False(t, apperrors.IsForeignKey(apperrors.ErrGameNotFound))
}

func TestPartialCascadeError(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewPartialCascadeError("delete game", "delete teams", cause)

	assert.True(t, apperrors.IsPartialCascade(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "delete teams")
	assert.Contains(t, err.Error(), "not rolled back")
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", apperrors.ErrUserNotFound)

	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.False(t, apperrors.IsValidation(wrapped))
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("is_over_18", "must confirm being over 18")

	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "is_over_18")
	assert.True(t, apperrors.IsValidation(apperrors.ErrNoFieldsToUpdate))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrInvalidCredentials))
	assert.True(t, apperrors.IsAuthentication(apperrors.NewAuthenticationError("invalid token")))
	assert.True(t, apperrors.IsAuthorization(apperrors.ErrAdminOnly))
	assert.False(t, apperrors.IsAuthentication(apperrors.ErrAdminOnly))
}
