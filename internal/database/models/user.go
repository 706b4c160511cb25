package models

import (
	"github.com/google/uuid"
)

// UserRole represents the account role of a user
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// User represents a registered account. A user may be assigned to at most
// one team at a time; team_id cleanup on game/team deletion is performed by
// the roster service, not by database cascade.
type User struct {
	BaseModel
	Username      string     `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	Email         string     `json:"email,omitempty" gorm:"size:255;index" validate:"omitempty,email,max=255"`
	Password      string     `json:"-" gorm:"not null;size:100"`
	Role          UserRole   `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	TeamID        *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	AssignedRole  string     `json:"assigned_role,omitempty" gorm:"size:50"`
	PreferredRole string     `json:"preferred_role,omitempty" gorm:"size:50"`
	ProfileImage  string     `json:"profile_image,omitempty" gorm:"size:500"`
	Bio           string     `json:"bio,omitempty" gorm:"size:150" validate:"max=150"`
	DiscordHandle string     `json:"discord_handle,omitempty" gorm:"size:50"`
	PhoneNumber   string     `json:"phone_number,omitempty" gorm:"size:20"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Toggled returns the opposite role. The role space is a binary enum.
func (r UserRole) Toggled() UserRole {
	if r == UserRoleAdmin {
		return UserRoleUser
	}
	return UserRoleAdmin
}
