package models

// Role is the membership of a player in a team. One per (player, team).
type Role struct {
	BaseModel
	PlayerID uint     `json:"player_id" gorm:"not null;uniqueIndex:idx_roles_player_team,priority:1"`
	TeamID   uint     `json:"team_id" gorm:"not null;uniqueIndex:idx_roles_player_team,priority:2;index"`
	Role     TeamRole `json:"role" gorm:"not null"`

	// Relationships
	Player *User `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	Team   *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
