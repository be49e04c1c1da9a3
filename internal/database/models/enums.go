package models

import "fmt"

// Rsvp is a player's commitment state for a game. Negative values are
// pending (invite or join request), zero and up are settled answers.
type Rsvp int

const (
	RsvpRequestedToJoin Rsvp = -2
	RsvpInvited         Rsvp = -1
	RsvpNotGoing        Rsvp = 0
	RsvpUncertain       Rsvp = 1
	RsvpGoing           Rsvp = 2
)

// NoTeam is the RsvpStatus.Team sentinel for "no team / don't care".
const NoTeam = 2

// MaxGameTeams is the number of teams a game can have attached.
const MaxGameTeams = 2

var rsvpNames = map[Rsvp]string{
	RsvpRequestedToJoin: "Asked to join",
	RsvpInvited:         "Invited",
	RsvpNotGoing:        "Not going",
	RsvpUncertain:       "Not sure",
	RsvpGoing:           "Going",
}

// IsValid checks if the Rsvp is one of the known values
func (r Rsvp) IsValid() bool {
	_, ok := rsvpNames[r]
	return ok
}

// IsPending reports whether the rsvp is an open invite or join request
func (r Rsvp) IsPending() bool {
	return r < RsvpNotGoing
}

// IsSettled reports whether the rsvp is an answer given by the player
func (r Rsvp) IsSettled() bool {
	return r >= RsvpNotGoing
}

func (r Rsvp) String() string {
	if name, ok := rsvpNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rsvp(%d)", int(r))
}

// TeamRole is a player's membership state in a team, ordered like Rsvp.
type TeamRole int

const (
	TeamRoleRequestedToJoin TeamRole = -2
	TeamRoleInvited         TeamRole = -1
	TeamRoleInactive        TeamRole = 0
	TeamRoleSubstitute      TeamRole = 1
	TeamRoleField           TeamRole = 2
	TeamRoleCaptain         TeamRole = 3
)

var teamRoleNames = map[TeamRole]string{
	TeamRoleRequestedToJoin: "Asked to join",
	TeamRoleInvited:         "Invited",
	TeamRoleInactive:        "Inactive",
	TeamRoleSubstitute:      "Substitute",
	TeamRoleField:           "Field player",
	TeamRoleCaptain:         "Captain",
}

// IsValid checks if the TeamRole is one of the known values
func (r TeamRole) IsValid() bool {
	_, ok := teamRoleNames[r]
	return ok
}

// IsPending reports whether the role is an open invite or join request
func (r TeamRole) IsPending() bool {
	return r < TeamRoleInactive
}

// IsSettled reports whether the player is a member of the team in any capacity
func (r TeamRole) IsSettled() bool {
	return r >= TeamRoleInactive
}

func (r TeamRole) String() string {
	if name, ok := teamRoleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("TeamRole(%d)", int(r))
}

// TeamType is the players gender preference of a team
type TeamType int

const (
	TeamTypeCoed   TeamType = 0
	TeamTypeFemale TeamType = 1
	TeamTypeMale   TeamType = 2
)

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeCoed, TeamTypeFemale, TeamTypeMale:
		return true
	}
	return false
}

func (t TeamType) String() string {
	switch t {
	case TeamTypeCoed:
		return "Coed"
	case TeamTypeFemale:
		return "Female"
	case TeamTypeMale:
		return "Male"
	}
	return fmt.Sprintf("TeamType(%d)", int(t))
}
