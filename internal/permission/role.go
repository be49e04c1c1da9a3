package permission

import (
	"pickup-sports-backend/internal/database/models"
)

// RoleChange describes the team role record an action is about
type RoleChange struct {
	SubjectID uint
	From      models.TeamRole // current role (update)
	To        models.TeamRole // requested role (create, update)
}

// CanChangeRole decides whether actor may perform action on a role in team.
// Players ask to join, answer invites and leave; managers invite, accept
// requests, promote, demote and remove.
func CanChangeRole(actor *Actor, action Action, team TeamContext, change RoleChange) bool {
	if action == ActionRead {
		return true
	}
	if actor == nil {
		return false
	}
	if actor.IsSuperuser {
		return true
	}

	isSubject := actor.is(change.SubjectID)
	isManager := team.IsManager(actor)

	switch action {
	case ActionCreate:
		return (isSubject && change.To == models.TeamRoleRequestedToJoin) ||
			(!isSubject && isManager && change.To == models.TeamRoleInvited)
	case ActionUpdate:
		if !change.To.IsValid() {
			return false
		}
		from, to := RolePhase(change.From), RolePhase(change.To)
		return (isSubject && selfTransitions.allows(from, to)) ||
			(isManager && managerRoleTransitions.allows(from, to))
	case ActionDelete:
		return isSubject || isManager
	}
	return false
}
