package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"esports-club-backend/internal/database/models"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/logger"
	"esports-club-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService handles the mutations that keep games, teams and user
// assignments consistent with each other. Deleting a game or a team fans
// out to dependent rows in a fixed order; there is no DB-level cascade.
type RosterService struct {
	gameRepo repository.GameRepositoryInterface
	teamRepo repository.TeamRepositoryInterface
	userRepo repository.UserRepositoryInterface
	log      *logger.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(gameRepo repository.GameRepositoryInterface, teamRepo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface) *RosterService {
	return &RosterService{
		gameRepo: gameRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		log:      logger.New().WithField("service", "roster"),
	}
}

// DeleteGameResponse reports the outcome of a game cascade delete
type DeleteGameResponse struct {
	Message         string `json:"message"`
	TeamsRemoved    int64  `json:"teams_removed"`
	UsersUnassigned int64  `json:"users_unassigned"`
}

// DeleteTeamResponse reports the outcome of a team delete
type DeleteTeamResponse struct {
	Message         string `json:"message"`
	UsersUnassigned int64  `json:"users_unassigned"`
}

// AssignUserRequest carries a partial update to a user's roster assignment.
// Absent fields are left untouched; an explicit null clears the field.
type AssignUserRequest struct {
	TeamID       *uuid.UUID
	AssignedRole *string

	HasTeamID       bool
	HasAssignedRole bool
}

// UnmarshalJSON tracks which keys were present in the request body so a
// null value can be told apart from an omitted one.
func (r *AssignUserRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["team_id"]; ok {
		r.HasTeamID = true
		if err := json.Unmarshal(v, &r.TeamID); err != nil {
			return err
		}
	}
	if v, ok := raw["assigned_role"]; ok {
		r.HasAssignedRole = true
		if err := json.Unmarshal(v, &r.AssignedRole); err != nil {
			return err
		}
	}
	return nil
}

// AssignUserResponse returns the updated assignment fields
type AssignUserResponse struct {
	Message string             `json:"message"`
	User    RosterUserResponse `json:"user"`
}

// RosterUserResponse is the roster-facing view of a user
type RosterUserResponse struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	Role         models.UserRole `json:"role"`
	TeamID       *uuid.UUID      `json:"team_id"`
	AssignedRole string          `json:"assigned_role,omitempty"`
}

// UserListResponse is a paginated list of users for the admin dashboard
type UserListResponse struct {
	Users    []RosterUserResponse `json:"users"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// DeleteGame removes a game together with its teams and frees every user
// assigned to those teams. Order matters: users first, then teams, then the
// game row, so the RESTRICT foreign keys never fire on a well-formed run.
// The steps are not wrapped in a transaction; a failure partway through is
// surfaced as a PartialCascadeError and earlier steps stand.
func (s *RosterService) DeleteGame(gameID uuid.UUID) (*DeleteGameResponse, error) {
	teamIDs, err := s.teamRepo.GetIDsByGameID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for game: %w", err)
	}

	var usersUnassigned int64
	if len(teamIDs) > 0 {
		usersUnassigned, err = s.userRepo.UnassignByTeamIDs(teamIDs)
		if err != nil {
			return nil, apperrors.NewPartialCascadeError("delete game", "unassign users", err)
		}
		if _, err := s.teamRepo.DeleteByGameID(gameID); err != nil {
			return nil, apperrors.NewPartialCascadeError("delete game", "delete teams", err)
		}
	}

	if err := s.gameRepo.Delete(gameID); err != nil {
		return nil, apperrors.NewPartialCascadeError("delete game", "delete game", err)
	}

	s.log.WithFields(map[string]interface{}{
		"game_id":          gameID,
		"teams_removed":    len(teamIDs),
		"users_unassigned": usersUnassigned,
	}).Info("game cascade delete complete")

	return &DeleteGameResponse{
		Message:         fmt.Sprintf("Game deleted successfully. Removed %d team(s) and unassigned %d player(s).", len(teamIDs), usersUnassigned),
		TeamsRemoved:    int64(len(teamIDs)),
		UsersUnassigned: usersUnassigned,
	}, nil
}

// DeleteTeam frees the team's users and removes the team row. Unassignment
// here clears team membership only and leaves assigned_role in place; the
// game cascade is the one that clears both. Unassignment failure is logged
// and the delete still proceeds.
func (s *RosterService) DeleteTeam(teamID uuid.UUID) (*DeleteTeamResponse, error) {
	usersUnassigned, err := s.userRepo.UnassignByTeamID(teamID)
	if err != nil {
		s.log.WithField("team_id", teamID).Warnf("failed to unassign users before team delete: %v", err)
		usersUnassigned = 0
	}

	if err := s.teamRepo.Delete(teamID); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	return &DeleteTeamResponse{
		Message:         fmt.Sprintf("Team %s deleted successfully.", teamID),
		UsersUnassigned: usersUnassigned,
	}, nil
}

// AssignUser applies a partial update to a user's team membership and
// in-game role. At least one field must be present in the request.
func (s *RosterService) AssignUser(userID uuid.UUID, req *AssignUserRequest) (*AssignUserResponse, error) {
	updates := map[string]interface{}{}
	if req.HasTeamID {
		if req.TeamID != nil {
			updates["team_id"] = *req.TeamID
		} else {
			updates["team_id"] = nil
		}
	}
	if req.HasAssignedRole {
		if req.AssignedRole != nil && *req.AssignedRole != "" {
			updates["assigned_role"] = *req.AssignedRole
		} else {
			updates["assigned_role"] = nil
		}
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if err := s.userRepo.UpdateAssignment(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrTeamDoesNotExist
		}
		return nil, fmt.Errorf("failed to update user assignment: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	return &AssignUserResponse{
		Message: assignmentMessage(userID, req),
		User:    toRosterUser(user),
	}, nil
}

func assignmentMessage(userID uuid.UUID, req *AssignUserRequest) string {
	var message string
	if req.HasTeamID {
		if req.TeamID != nil {
			message = fmt.Sprintf("User %s assigned to team %s.", userID, *req.TeamID)
		} else {
			message = fmt.Sprintf("User %s unassigned from team.", userID)
		}
	}
	if req.HasAssignedRole {
		role := "none"
		if req.AssignedRole != nil && *req.AssignedRole != "" {
			role = *req.AssignedRole
		}
		if message != "" {
			message += " "
		}
		message += fmt.Sprintf("Assigned role updated to: %s.", role)
	}
	return message
}

// ToggleUserRole flips a user between the USER and ADMIN account roles.
// Admins cannot change their own role; the check runs before any read.
func (s *RosterService) ToggleUserRole(userID, actingUserID uuid.UUID) (*RosterUserResponse, error) {
	if userID == actingUserID {
		return nil, apperrors.ErrSelfRoleChange
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	newRole := user.Role.Toggled()
	if err := s.userRepo.SetRole(userID, newRole); err != nil {
		return nil, fmt.Errorf("failed to set user role: %w", err)
	}
	user.Role = newRole

	resp := toRosterUser(user)
	return &resp, nil
}

// DeleteUser removes a user account. Admins cannot delete themselves.
func (s *RosterService) DeleteUser(userID, actingUserID uuid.UUID) error {
	if userID == actingUserID {
		return apperrors.ErrSelfDelete
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListUsers returns all users for the admin dashboard with pagination
func (s *RosterService) ListUsers(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]RosterUserResponse, len(users))
	for i := range users {
		responses[i] = toRosterUser(&users[i])
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toRosterUser(user *models.User) RosterUserResponse {
	return RosterUserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Role:         user.Role,
		TeamID:       user.TeamID,
		AssignedRole: user.AssignedRole,
	}
}
