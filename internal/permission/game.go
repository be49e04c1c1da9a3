package permission

// CanEditGame reports whether actor may update or delete the game itself
func CanEditGame(actor *Actor, game GameContext) bool {
	if actor == nil {
		return false
	}
	return actor.IsSuperuser || game.IsOrganizer(actor)
}

// CanScheduleGame reports whether actor may create a game with teams
// attached. Pickup games can be scheduled by anyone signed in.
func CanScheduleGame(actor *Actor, teams []TeamContext) bool {
	if actor == nil {
		return false
	}
	if actor.IsSuperuser {
		return true
	}
	for _, t := range teams {
		if !t.IsManager(actor) {
			return false
		}
	}
	return true
}

// CanEditTeam reports whether actor may update or delete the team
func CanEditTeam(actor *Actor, team TeamContext) bool {
	if actor == nil {
		return false
	}
	return actor.IsSuperuser || team.IsManager(actor)
}
