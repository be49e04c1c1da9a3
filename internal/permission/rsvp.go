package permission

import (
	"pickup-sports-backend/internal/database/models"
)

// RsvpChange describes the rsvp record an action is about
type RsvpChange struct {
	SubjectID uint        // the player the record is about
	Team      int         // team index the record is for, or models.NoTeam
	From      models.Rsvp // current status (update)
	To        models.Rsvp // requested status (create, update)
}

// CanChangeRsvp decides whether actor may perform action on an rsvp of game.
//
// Players join pickup games themselves and ask to join team games. The
// organizer invites to pickup games, team managers invite to team games.
// Either one accepts join requests for the games they run.
func CanChangeRsvp(actor *Actor, action Action, game GameContext, change RsvpChange) bool {
	if action == ActionRead {
		return true
	}
	if actor == nil {
		return false
	}
	if actor.IsSuperuser {
		return true
	}

	switch action {
	case ActionCreate:
		return canCreateRsvp(actor, game, change)
	case ActionUpdate:
		return canUpdateRsvp(actor, game, change)
	case ActionDelete:
		return canDeleteRsvp(actor, game, change)
	}
	return false
}

func canCreateRsvp(actor *Actor, game GameContext, change RsvpChange) bool {
	if !change.To.IsValid() {
		return false
	}
	// Picking a side is reserved to the manager of that side.
	if change.Team != models.NoTeam && !game.ManagesTeam(actor, change.Team) {
		return false
	}

	isSubject := actor.is(change.SubjectID)
	isInvite := change.To == models.RsvpInvited
	isRequest := change.To == models.RsvpRequestedToJoin
	isAnswer := change.To.IsSettled()

	switch {
	case isSubject && game.IsPickup() && isAnswer:
		return true
	case isSubject && !game.IsPickup() && isRequest:
		return true
	case !isSubject && game.IsOrganizer(actor) && game.IsPickup() && isInvite:
		return true
	case !isSubject && !game.IsPickup() && game.ManagesTeam(actor, change.Team) && isInvite:
		return true
	}
	return false
}

func canUpdateRsvp(actor *Actor, game GameContext, change RsvpChange) bool {
	if !change.To.IsValid() {
		return false
	}
	if actor.is(change.SubjectID) && selfTransitions.allows(RsvpPhase(change.From), RsvpPhase(change.To)) {
		return true
	}
	return isAcceptingRequest(change) && runsGame(actor, game, change.Team)
}

func canDeleteRsvp(actor *Actor, game GameContext, change RsvpChange) bool {
	return actor.is(change.SubjectID) || runsGame(actor, game, change.Team)
}

// runsGame reports whether actor administers the roster of game: the
// organizer of a pickup game, or the manager of the record's team.
func runsGame(actor *Actor, game GameContext, team int) bool {
	if game.IsPickup() {
		return game.IsOrganizer(actor)
	}
	return game.ManagesTeam(actor, team)
}

func isAcceptingRequest(change RsvpChange) bool {
	return change.From == models.RsvpRequestedToJoin && change.To == models.RsvpGoing
}
