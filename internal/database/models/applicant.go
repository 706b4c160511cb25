package models

// Applicant represents a submitted join-form record. Applicants are
// independent of user accounts: write-once, read-many, no lifecycle
// interaction with games or teams.
type Applicant struct {
	BaseModel
	FirstName     string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName      string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email         string `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	DiscordHandle string `json:"discord_handle" gorm:"not null;size:50" validate:"required,max=50"`
	PhoneNumber   string `json:"phone_number" gorm:"not null;size:20" validate:"required,max=20"`
	Message       string `json:"message,omitempty" gorm:"size:1000" validate:"max=1000"`
	IsOver18      bool   `json:"is_over_18" gorm:"not null"`
}

// TableName returns the table name for Applicant
func (Applicant) TableName() string {
	return "applicants"
}
