package models

import (
	"time"
)

// PasswordReset stores a single-use password reset token. Tokens are
// deleted once used or when found expired.
type PasswordReset struct {
	BaseModel
	Email     string    `json:"email" gorm:"not null;size:255;index"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null;size:100"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// TableName returns the table name for PasswordReset
func (PasswordReset) TableName() string {
	return "password_resets"
}

// Expired reports whether the token is past its expiry time
func (p *PasswordReset) Expired() bool {
	return time.Now().After(p.ExpiresAt)
}
