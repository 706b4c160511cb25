package models

// Game represents an esports title the club fields teams for
type Game struct {
	BaseModel
	Name              string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description       string `json:"description" gorm:"size:500" validate:"max=500"`
	ImageURL          string `json:"image_url" gorm:"size:500"`
	MaxPlayersPerTeam int    `json:"max_players_per_team" gorm:"not null" validate:"required,gt=0"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:GameID"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
