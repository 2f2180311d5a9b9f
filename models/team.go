package models

import (
	"time"
)

// DefaultTeamName is the sentinel team auto-assigned to new accounts. It never
// grants team-scoped access: members of "Default" are treated as having no team.
const DefaultTeamName = "Default"

// Team represents a group of users sharing team-scoped content. Teams are
// referenced, not owned: a team with members cannot be deleted.
type Team struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Relations
	Members []User `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// IsDefault reports whether this is the sentinel Default team.
func (t *Team) IsDefault() bool {
	return t.Name == DefaultTeamName
}
