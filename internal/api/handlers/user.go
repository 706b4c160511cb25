package handlers

import (
	"net/http"
	"strconv"

	"esports-club-backend/internal/auth"
	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles admin HTTP requests for user accounts and roster
// assignments
type UserHandler struct {
	rosterService service.RosterServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(rosterService service.RosterServiceInterface) *UserHandler {
	return &UserHandler{rosterService: rosterService}
}

// ListUsers handles GET /admin/users
// @Summary List users
// @Description Get all users with their team assignment, paginated
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.UserListResponse "Users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	users, err := h.rosterService.ListUsers(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// AssignUser handles PATCH /admin/users/:id/team
// @Summary Assign or unassign a user
// @Description Patch a user's team membership and in-game role. At least one field must be present; null clears a field.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param assignment body object true "team_id and/or assigned_role"
// @Success 200 {object} service.AssignUserResponse "Updated assignment"
// @Failure 400 {object} ErrorResponse "No fields to update or team does not exist"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/users/{id}/team [patch]
func (h *UserHandler) AssignUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req service.AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.rosterService.AssignUser(id, &req)
	if err != nil {
		if apperrors.IsForeignKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The specified team does not exist."})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update."})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleUserRole handles PATCH /admin/users/:id/role
// @Summary Toggle a user's account role
// @Description Flip a user between USER and ADMIN. Admins cannot change their own role.
// @Tags admin
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.RosterUserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Cannot change own role"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/users/{id}/role [patch]
func (h *UserHandler) ToggleUserRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	actingID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication context"})
		return
	}

	user, err := h.rosterService.ToggleUserRole(id, actingID)
	if err != nil {
		if apperrors.IsSelfAction(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id
// @Summary Delete a user account
// @Description Delete a user. Admins cannot delete their own account.
// @Tags admin
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "User deleted"
// @Failure 400 {object} ErrorResponse "Cannot delete own account"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	actingID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication context"})
		return
	}

	if err := h.rosterService.DeleteUser(id, actingID); err != nil {
		if apperrors.IsSelfAction(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
