package permission

import "pickup-sports-backend/internal/database/models"

// Phase groups the five status levels shared by rsvps and roles by how a
// record got there: a join request, an invite, or an answer.
type Phase int

const (
	PhaseRequested Phase = iota
	PhaseInvited
	PhaseSettled
)

func phaseOf(level int) Phase {
	switch {
	case level <= int(models.RsvpRequestedToJoin):
		return PhaseRequested
	case level == int(models.RsvpInvited):
		return PhaseInvited
	default:
		return PhaseSettled
	}
}

// RsvpPhase returns the phase of an rsvp status
func RsvpPhase(s models.Rsvp) Phase { return phaseOf(int(s)) }

// RolePhase returns the phase of a team role
func RolePhase(r models.TeamRole) Phase { return phaseOf(int(r)) }

// transitionTable lists, per source phase, the phases a record may move to.
// A missing source phase means no move is allowed from it.
type transitionTable map[Phase][]Phase

func (t transitionTable) allows(from, to Phase) bool {
	for _, p := range t[from] {
		if p == to {
			return true
		}
	}
	return false
}

var (
	// The subject of a record answers an invite or changes an answer.
	// Pending phases are never self-achievable after creation.
	selfTransitions = transitionTable{
		PhaseInvited: {PhaseSettled},
		PhaseSettled: {PhaseSettled},
	}

	// Team managers accept join requests and promote or demote members.
	// Answering an invite stays with the invited player.
	managerRoleTransitions = transitionTable{
		PhaseRequested: {PhaseSettled},
		PhaseSettled:   {PhaseSettled},
	}
)
