package service

import (
	"fmt"
	"time"

	"pickup-sports-backend/internal/database/models"
	"pickup-sports-backend/internal/repository"
)

// inviteJoinedPlayer invites a player who just became a team member to
// the team's games after since. Players who already have an rsvp for a
// game keep it. It returns the number of invites created.
func inviteJoinedPlayer(store *repository.Store, teamID, playerID uint, since time.Time) (int, error) {
	gameTeams, err := store.Games.GetUpcomingForTeam(teamID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to get upcoming games of team: %w", err)
	}

	created := 0
	for _, gt := range gameTeams {
		ok, err := store.Rsvps.GetOrCreateInvite(gt.GameID, playerID, gt.Position)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// rsvpScheduledGame fills the roster of a new game. A pickup game gets its
// organizer as the only player going. A team game gets every settled
// member of each team, invited or going when the member is the organizer,
// tagged with the team's position in the game.
func rsvpScheduledGame(store *repository.Store, game *models.Game, teams []models.Team, organizerID uint) (int, error) {
	if len(teams) == 0 {
		err := store.Rsvps.Create(&models.RsvpStatus{
			GameID:   game.ID,
			PlayerID: organizerID,
			Status:   models.RsvpGoing,
			Team:     models.NoTeam,
		})
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	written := 0
	for index, team := range teams {
		playerIDs, err := store.Roles.GetSettledPlayerIDs(team.ID)
		if err != nil {
			return written, fmt.Errorf("failed to get players of team %d: %w", team.ID, err)
		}
		for _, playerID := range playerIDs {
			status := models.RsvpInvited
			if playerID == organizerID {
				status = models.RsvpGoing
			}
			err := store.Rsvps.Upsert(&models.RsvpStatus{
				GameID:   game.ID,
				PlayerID: playerID,
				Status:   status,
				Team:     index,
			})
			if err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
