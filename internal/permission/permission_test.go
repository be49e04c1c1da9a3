package permission

import (
	"testing"

	"pickup-sports-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

const (
	organizerID uint = 1
	managerAID  uint = 2
	managerBID  uint = 3
	playerID    uint = 4
	otherID     uint = 5
)

var (
	organizer = &Actor{ID: organizerID}
	managerA  = &Actor{ID: managerAID}
	managerB  = &Actor{ID: managerBID}
	player    = &Actor{ID: playerID}
	other     = &Actor{ID: otherID}
	superuser = &Actor{ID: 99, IsSuperuser: true}

	pickupGame = GameContext{OrganizerID: organizerID}
	teamGame   = GameContext{
		OrganizerID: organizerID,
		Teams: []TeamContext{
			{ID: 10, ManagerIDs: []uint{managerAID}},
			{ID: 11, ManagerIDs: []uint{managerBID}},
		},
	}
	teamA = TeamContext{ID: 10, ManagerIDs: []uint{managerAID}}
)

var allRsvps = []models.Rsvp{
	models.RsvpRequestedToJoin,
	models.RsvpInvited,
	models.RsvpNotGoing,
	models.RsvpUncertain,
	models.RsvpGoing,
}

var allRoles = []models.TeamRole{
	models.TeamRoleRequestedToJoin,
	models.TeamRoleInvited,
	models.TeamRoleInactive,
	models.TeamRoleSubstitute,
	models.TeamRoleField,
	models.TeamRoleCaptain,
}

func TestPhases(t *testing.T) {
	assert.Equal(t, PhaseRequested, RsvpPhase(models.RsvpRequestedToJoin))
	assert.Equal(t, PhaseInvited, RsvpPhase(models.RsvpInvited))
	assert.Equal(t, PhaseSettled, RsvpPhase(models.RsvpNotGoing))
	assert.Equal(t, PhaseSettled, RsvpPhase(models.RsvpGoing))
	assert.Equal(t, PhaseRequested, RolePhase(models.TeamRoleRequestedToJoin))
	assert.Equal(t, PhaseInvited, RolePhase(models.TeamRoleInvited))
	assert.Equal(t, PhaseSettled, RolePhase(models.TeamRoleCaptain))
}

func TestGameContext(t *testing.T) {
	t.Run("pickup", func(t *testing.T) {
		assert.True(t, pickupGame.IsPickup())
		assert.False(t, teamGame.IsPickup())
	})

	t.Run("manages team by index", func(t *testing.T) {
		assert.True(t, teamGame.ManagesTeam(managerA, 0))
		assert.False(t, teamGame.ManagesTeam(managerA, 1))
		assert.True(t, teamGame.ManagesTeam(managerB, 1))
		assert.True(t, teamGame.ManagesTeam(managerB, models.NoTeam))
		assert.False(t, teamGame.ManagesTeam(player, models.NoTeam))
		assert.False(t, teamGame.ManagesTeam(managerA, 5))
		assert.False(t, teamGame.ManagesTeam(nil, 0))
	})

	t.Run("valid team index", func(t *testing.T) {
		assert.True(t, pickupGame.ValidTeamIndex(models.NoTeam))
		assert.False(t, pickupGame.ValidTeamIndex(0))
		assert.True(t, teamGame.ValidTeamIndex(0))
		assert.True(t, teamGame.ValidTeamIndex(1))
		assert.False(t, teamGame.ValidTeamIndex(-1))
		assert.False(t, teamGame.ValidTeamIndex(3))
	})
}

func TestCanChangeRsvp_ReadAlwaysAllowed(t *testing.T) {
	for _, actor := range []*Actor{nil, player, other, superuser} {
		assert.True(t, CanChangeRsvp(actor, ActionRead, pickupGame, RsvpChange{SubjectID: playerID}))
		assert.True(t, CanChangeRsvp(actor, ActionRead, teamGame, RsvpChange{SubjectID: playerID}))
	}
}

func TestCanChangeRsvp_AnonymousDenied(t *testing.T) {
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		for _, s := range allRsvps {
			change := RsvpChange{SubjectID: playerID, Team: models.NoTeam, From: models.RsvpInvited, To: s}
			assert.False(t, CanChangeRsvp(nil, action, pickupGame, change), "%s %s", action, s)
			assert.False(t, CanChangeRsvp(nil, action, teamGame, change), "%s %s", action, s)
		}
	}
}

func TestCanChangeRsvp_SuperuserAllowed(t *testing.T) {
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		for _, from := range allRsvps {
			for _, to := range allRsvps {
				change := RsvpChange{SubjectID: playerID, Team: 0, From: from, To: to}
				assert.True(t, CanChangeRsvp(superuser, action, teamGame, change))
				assert.True(t, CanChangeRsvp(superuser, action, pickupGame, change))
			}
		}
	}
}

func TestCanChangeRsvp_Create(t *testing.T) {
	tests := []struct {
		name    string
		actor   *Actor
		game    GameContext
		subject uint
		team    int
		status  models.Rsvp
		want    bool
	}{
		{"self joins pickup going", player, pickupGame, playerID, models.NoTeam, models.RsvpGoing, true},
		{"self joins pickup not sure", player, pickupGame, playerID, models.NoTeam, models.RsvpUncertain, true},
		{"self answers pickup not going", player, pickupGame, playerID, models.NoTeam, models.RsvpNotGoing, true},
		{"self invites self to pickup", player, pickupGame, playerID, models.NoTeam, models.RsvpInvited, false},
		{"self requests pickup", player, pickupGame, playerID, models.NoTeam, models.RsvpRequestedToJoin, false},
		{"self requests team game", player, teamGame, playerID, models.NoTeam, models.RsvpRequestedToJoin, true},
		{"self joins team game going", player, teamGame, playerID, models.NoTeam, models.RsvpGoing, false},
		{"self invites self to team game", player, teamGame, playerID, models.NoTeam, models.RsvpInvited, false},
		{"self requests picking a team", player, teamGame, playerID, 0, models.RsvpRequestedToJoin, false},
		{"organizer invites to pickup", organizer, pickupGame, playerID, models.NoTeam, models.RsvpInvited, true},
		{"organizer sets going on pickup", organizer, pickupGame, playerID, models.NoTeam, models.RsvpGoing, false},
		{"organizer invites to team game", organizer, teamGame, playerID, models.NoTeam, models.RsvpInvited, false},
		{"stranger invites to pickup", other, pickupGame, playerID, models.NoTeam, models.RsvpInvited, false},
		{"manager invites without team", managerA, teamGame, playerID, models.NoTeam, models.RsvpInvited, true},
		{"manager invites to own team", managerA, teamGame, playerID, 0, models.RsvpInvited, true},
		{"manager invites to other team", managerA, teamGame, playerID, 1, models.RsvpInvited, false},
		{"manager sets going", managerA, teamGame, playerID, 0, models.RsvpGoing, false},
		{"manager requests for player", managerA, teamGame, playerID, 0, models.RsvpRequestedToJoin, false},
		{"manager requests for self on own team", managerA, teamGame, managerAID, 0, models.RsvpRequestedToJoin, true},
		{"manager requests for self on other team", managerA, teamGame, managerAID, 1, models.RsvpRequestedToJoin, false},
		{"stranger invites to team game", other, teamGame, playerID, models.NoTeam, models.RsvpInvited, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := RsvpChange{SubjectID: tt.subject, Team: tt.team, To: tt.status}
			assert.Equal(t, tt.want, CanChangeRsvp(tt.actor, ActionCreate, tt.game, change))
		})
	}
}

func TestCanChangeRsvp_SelfUpdate(t *testing.T) {
	for _, game := range []GameContext{pickupGame, teamGame} {
		for _, from := range allRsvps {
			for _, to := range allRsvps {
				want := to.IsSettled() && from != models.RsvpRequestedToJoin
				change := RsvpChange{SubjectID: playerID, Team: models.NoTeam, From: from, To: to}
				assert.Equal(t, want, CanChangeRsvp(player, ActionUpdate, game, change), "%s -> %s", from, to)
			}
		}
	}
}

func TestCanChangeRsvp_AdminUpdate(t *testing.T) {
	tests := []struct {
		name  string
		actor *Actor
		game  GameContext
		team  int
		from  models.Rsvp
		to    models.Rsvp
		want  bool
	}{
		{"organizer accepts pickup request", organizer, pickupGame, models.NoTeam, models.RsvpRequestedToJoin, models.RsvpGoing, true},
		{"organizer sets not sure", organizer, pickupGame, models.NoTeam, models.RsvpRequestedToJoin, models.RsvpUncertain, false},
		{"organizer answers invite", organizer, pickupGame, models.NoTeam, models.RsvpInvited, models.RsvpGoing, false},
		{"organizer on team game", organizer, teamGame, models.NoTeam, models.RsvpRequestedToJoin, models.RsvpGoing, false},
		{"manager accepts request without team", managerA, teamGame, models.NoTeam, models.RsvpRequestedToJoin, models.RsvpGoing, true},
		{"manager accepts request for own team", managerB, teamGame, 1, models.RsvpRequestedToJoin, models.RsvpGoing, true},
		{"manager accepts request for other team", managerA, teamGame, 1, models.RsvpRequestedToJoin, models.RsvpGoing, false},
		{"manager changes settled answer", managerA, teamGame, 0, models.RsvpGoing, models.RsvpNotGoing, false},
		{"manager answers invite", managerA, teamGame, 0, models.RsvpInvited, models.RsvpGoing, false},
		{"stranger accepts request", other, teamGame, models.NoTeam, models.RsvpRequestedToJoin, models.RsvpGoing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := RsvpChange{SubjectID: playerID, Team: tt.team, From: tt.from, To: tt.to}
			assert.Equal(t, tt.want, CanChangeRsvp(tt.actor, ActionUpdate, tt.game, change))
		})
	}
}

func TestCanChangeRsvp_NoSelfAcceptance(t *testing.T) {
	// Only the organizer or a manager turns a join request into an answer,
	// even when the requester is the one asking.
	for _, to := range allRsvps {
		change := RsvpChange{SubjectID: playerID, Team: models.NoTeam, From: models.RsvpRequestedToJoin, To: to}
		assert.False(t, CanChangeRsvp(player, ActionUpdate, teamGame, change), "%s", to)
		assert.False(t, CanChangeRsvp(player, ActionUpdate, pickupGame, change), "%s", to)
	}
}

func TestCanChangeRsvp_Delete(t *testing.T) {
	tests := []struct {
		name  string
		actor *Actor
		game  GameContext
		team  int
		want  bool
	}{
		{"self on pickup", player, pickupGame, models.NoTeam, true},
		{"self on team game", player, teamGame, 0, true},
		{"organizer on pickup", organizer, pickupGame, models.NoTeam, true},
		{"organizer on team game", organizer, teamGame, models.NoTeam, false},
		{"manager of record team", managerA, teamGame, 0, true},
		{"manager of other team", managerA, teamGame, 1, false},
		{"manager when no team", managerB, teamGame, models.NoTeam, true},
		{"stranger", other, teamGame, models.NoTeam, false},
		{"stranger on pickup", other, pickupGame, models.NoTeam, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := RsvpChange{SubjectID: playerID, Team: tt.team, From: models.RsvpGoing}
			assert.Equal(t, tt.want, CanChangeRsvp(tt.actor, ActionDelete, tt.game, change))
		})
	}
}

func TestCanChangeRsvp_InvalidStatusDenied(t *testing.T) {
	change := RsvpChange{SubjectID: playerID, Team: models.NoTeam, From: models.RsvpInvited, To: models.Rsvp(7)}
	assert.False(t, CanChangeRsvp(player, ActionUpdate, pickupGame, change))
	assert.False(t, CanChangeRsvp(player, ActionCreate, pickupGame, change))
}

func TestCanChangeRole_Create(t *testing.T) {
	tests := []struct {
		name    string
		actor   *Actor
		subject uint
		role    models.TeamRole
		want    bool
	}{
		{"self requests to join", player, playerID, models.TeamRoleRequestedToJoin, true},
		{"self invites self", player, playerID, models.TeamRoleInvited, false},
		{"self joins as captain", player, playerID, models.TeamRoleCaptain, false},
		{"manager invites", managerA, playerID, models.TeamRoleInvited, true},
		{"manager adds field player", managerA, playerID, models.TeamRoleField, false},
		{"manager requests for player", managerA, playerID, models.TeamRoleRequestedToJoin, false},
		{"stranger invites", other, playerID, models.TeamRoleInvited, false},
		{"anonymous", nil, playerID, models.TeamRoleRequestedToJoin, false},
		{"superuser adds captain", superuser, playerID, models.TeamRoleCaptain, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := RoleChange{SubjectID: tt.subject, To: tt.role}
			assert.Equal(t, tt.want, CanChangeRole(tt.actor, ActionCreate, teamA, change))
		})
	}
}

func TestCanChangeRole_SelfUpdate(t *testing.T) {
	for _, from := range allRoles {
		for _, to := range allRoles {
			want := to.IsSettled() && from != models.TeamRoleRequestedToJoin
			change := RoleChange{SubjectID: playerID, From: from, To: to}
			assert.Equal(t, want, CanChangeRole(player, ActionUpdate, teamA, change), "%s -> %s", from, to)
		}
	}
}

func TestCanChangeRole_ManagerUpdate(t *testing.T) {
	for _, from := range allRoles {
		for _, to := range allRoles {
			want := to.IsSettled() && from != models.TeamRoleInvited
			change := RoleChange{SubjectID: playerID, From: from, To: to}
			assert.Equal(t, want, CanChangeRole(managerA, ActionUpdate, teamA, change), "%s -> %s", from, to)
			assert.False(t, CanChangeRole(other, ActionUpdate, teamA, change), "%s -> %s", from, to)
		}
	}
}

func TestCanChangeRole_Delete(t *testing.T) {
	change := RoleChange{SubjectID: playerID, From: models.TeamRoleField}
	assert.True(t, CanChangeRole(player, ActionDelete, teamA, change))
	assert.True(t, CanChangeRole(managerA, ActionDelete, teamA, change))
	assert.True(t, CanChangeRole(superuser, ActionDelete, teamA, change))
	assert.False(t, CanChangeRole(other, ActionDelete, teamA, change))
	assert.False(t, CanChangeRole(managerB, ActionDelete, teamA, change))
	assert.False(t, CanChangeRole(nil, ActionDelete, teamA, change))
	assert.True(t, CanChangeRole(nil, ActionRead, teamA, change))
}

func TestCanScheduleGame(t *testing.T) {
	assert.False(t, CanScheduleGame(nil, nil))
	assert.True(t, CanScheduleGame(player, nil))
	assert.True(t, CanScheduleGame(managerA, teamGame.Teams[:1]))
	assert.False(t, CanScheduleGame(managerA, teamGame.Teams))
	assert.True(t, CanScheduleGame(superuser, teamGame.Teams))

	both := []TeamContext{{ID: 10, ManagerIDs: []uint{managerAID}}, {ID: 12, ManagerIDs: []uint{otherID, managerAID}}}
	assert.True(t, CanScheduleGame(managerA, both))
}

func TestCanEditGameAndTeam(t *testing.T) {
	assert.True(t, CanEditGame(organizer, teamGame))
	assert.True(t, CanEditGame(superuser, teamGame))
	assert.False(t, CanEditGame(managerA, teamGame))
	assert.False(t, CanEditGame(nil, teamGame))

	assert.True(t, CanEditTeam(managerA, teamA))
	assert.True(t, CanEditTeam(superuser, teamA))
	assert.False(t, CanEditTeam(player, teamA))
	assert.False(t, CanEditTeam(nil, teamA))
}

func TestNewActor(t *testing.T) {
	assert.Nil(t, NewActor(nil))
	u := &models.User{BaseModel: models.BaseModel{ID: 7}, IsSuperuser: true}
	assert.Equal(t, &Actor{ID: 7, IsSuperuser: true}, NewActor(u))
}
