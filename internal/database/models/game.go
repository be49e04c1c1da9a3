package models

import (
	"time"
)

// Game is a scheduled event at a location. A game without teams is a
// pickup game; with one or two teams it is a team game.
type Game struct {
	BaseModel
	Datetime    time.Time `json:"datetime" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:255"`
	Description string    `json:"description" gorm:"size:255"`
	Duration    *int      `json:"duration,omitempty"` // minutes
	LocationID  uint      `json:"location_id" gorm:"not null;index"`
	OrganizerID uint      `json:"organizer_id" gorm:"not null;index"`

	// Relationships
	Location  *Location    `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
	Organizer *User        `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE"`
	GameTeams []GameTeam   `json:"teams,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Rsvps     []RsvpStatus `json:"players,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}

// IsPickup reports whether no team is attached. GameTeams must be loaded.
func (g *Game) IsPickup() bool {
	return len(g.GameTeams) == 0
}

// TeamAt returns the team attached at the given index of the game's team list
func (g *Game) TeamAt(index int) (GameTeam, bool) {
	for _, gt := range g.GameTeams {
		if gt.Position == index {
			return gt, true
		}
	}
	return GameTeam{}, false
}

// GameTeam attaches a team to a game at a fixed position (0 or 1). The
// position is what RsvpStatus.Team refers to.
type GameTeam struct {
	GameID   uint `json:"game_id" gorm:"primaryKey;uniqueIndex:idx_game_teams_game_team"`
	Position int  `json:"position" gorm:"primaryKey;autoIncrement:false"`
	TeamID   uint `json:"team_id" gorm:"not null;uniqueIndex:idx_game_teams_game_team;index"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GameTeam
func (GameTeam) TableName() string {
	return "game_teams"
}

// RsvpStatus is the relation of a player to a game. One per (player, game).
type RsvpStatus struct {
	BaseModel
	GameID   uint `json:"game_id" gorm:"not null;uniqueIndex:idx_rsvps_player_game,priority:2;index"`
	PlayerID uint `json:"player_id" gorm:"not null;uniqueIndex:idx_rsvps_player_game,priority:1"`
	Status   Rsvp `json:"status" gorm:"not null"`
	Team     int  `json:"team" gorm:"not null"` // index into the game's teams, or NoTeam

	// Relationships
	Game   *Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Player *User `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RsvpStatus
func (RsvpStatus) TableName() string {
	return "rsvp_statuses"
}
