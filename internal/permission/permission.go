// Package permission decides who may create, change or delete rsvp and
// team role records. Every function here is pure: callers load the game
// or team context and pass it in.
package permission

import (
	"pickup-sports-backend/internal/database/models"
)

// Action is what the actor wants to do with a record
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// Actor is the authenticated identity. A nil *Actor is an anonymous caller.
type Actor struct {
	ID          uint
	IsSuperuser bool
}

// NewActor builds an Actor from a loaded user
func NewActor(u *models.User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{ID: u.ID, IsSuperuser: u.IsSuperuser}
}

func (a *Actor) is(userID uint) bool {
	return a != nil && userID != 0 && a.ID == userID
}

// TeamContext is what the evaluator needs to know about a team
type TeamContext struct {
	ID         uint
	ManagerIDs []uint
}

// NewTeamContext builds a TeamContext from a team with managers loaded
func NewTeamContext(t *models.Team) TeamContext {
	return TeamContext{ID: t.ID, ManagerIDs: t.ManagerIDs()}
}

// IsManager reports whether the actor manages the team
func (t TeamContext) IsManager(actor *Actor) bool {
	if actor == nil {
		return false
	}
	for _, id := range t.ManagerIDs {
		if id == actor.ID {
			return true
		}
	}
	return false
}

// GameContext is what the evaluator needs to know about a game. Teams are
// ordered by their position in the game.
type GameContext struct {
	OrganizerID uint
	Teams       []TeamContext
}

// IsPickup reports whether the game has no teams attached
func (g GameContext) IsPickup() bool {
	return len(g.Teams) == 0
}

// IsOrganizer reports whether the actor organizes the game
func (g GameContext) IsOrganizer(actor *Actor) bool {
	return actor.is(g.OrganizerID)
}

// ManagesTeam reports whether the actor manages the team at index. NoTeam
// stands for any of the game's teams.
func (g GameContext) ManagesTeam(actor *Actor, index int) bool {
	if index == models.NoTeam {
		for _, t := range g.Teams {
			if t.IsManager(actor) {
				return true
			}
		}
		return false
	}
	if index < 0 || index >= len(g.Teams) {
		return false
	}
	return g.Teams[index].IsManager(actor)
}

// ValidTeamIndex reports whether index can be stored on an rsvp of the game
func (g GameContext) ValidTeamIndex(index int) bool {
	return index == models.NoTeam || (index >= 0 && index < len(g.Teams))
}
