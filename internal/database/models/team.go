package models

import (
	"github.com/google/uuid"
)

// Team represents a named roster belonging to exactly one game.
// Team names are unique within a game, not globally.
type Team struct {
	BaseModel
	GameID uuid.UUID `json:"game_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_teams_game_name" validate:"required"`
	Name   string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_teams_game_name" validate:"required,min=1,max=100"`

	// Relationships
	Game  *Game  `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Users []User `json:"users,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
