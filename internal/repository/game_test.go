//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// GameRepositoryTestSuite tests the GameRepository, RsvpRepository and the transactor
type GameRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	factories     *testutils.FactorySet
	organizer     *models.User
	location      *models.Location
}

// SetupSuite runs before all tests in the suite
func (suite *GameRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GameRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GameRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.organizer = suite.createUser()
	suite.location = suite.factories.Location.Create()
	suite.Require().NoError(suite.store.Locations.Create(suite.location))
}

// TearDownTest runs after each test
func (suite *GameRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GameRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.store.Users.Create(user))
	return user
}

func (suite *GameRepositoryTestSuite) createGame(at time.Time) *models.Game {
	game := suite.factories.Game.At(suite.organizer.ID, suite.location.ID, at)
	suite.Require().NoError(suite.store.Games.Create(game))
	return game
}

func (suite *GameRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.store.Teams.Create(team))
	return team
}

func (suite *GameRepositoryTestSuite) rsvp(game *models.Game, player *models.User, status models.Rsvp) *models.RsvpStatus {
	rsvp := &models.RsvpStatus{GameID: game.ID, PlayerID: player.ID, Status: status, Team: models.NoTeam}
	suite.Require().NoError(suite.store.Rsvps.Create(rsvp))
	return rsvp
}

func ids(games []models.Game) []uint {
	out := make([]uint, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

// TestFutureFilter tests that only games after the cutoff are listed
func (suite *GameRepositoryTestSuite) TestFutureFilter() {
	now := time.Now()
	suite.createGame(now.Add(-24 * time.Hour))
	future := suite.createGame(now.Add(24 * time.Hour))

	since := now.Add(-90 * time.Minute)
	games, err := suite.store.Games.List(GameFilter{Since: &since})

	suite.NoError(err)
	suite.Equal([]uint{future.ID}, ids(games))

	all, err := suite.store.Games.List(GameFilter{})
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestFutureFilterKeepsGameInProgress tests the tolerance window of the cutoff
func (suite *GameRepositoryTestSuite) TestFutureFilterKeepsGameInProgress() {
	now := time.Now()
	started := suite.createGame(now.Add(-30 * time.Minute))
	suite.createGame(now.Add(-2 * time.Hour))

	since := now.Add(-90 * time.Minute)
	games, err := suite.store.Games.List(GameFilter{Since: &since})

	suite.NoError(err)
	suite.Equal([]uint{started.ID}, ids(games))
}

// TestListOrderedByDatetime tests the default ordering
func (suite *GameRepositoryTestSuite) TestListOrderedByDatetime() {
	now := time.Now()
	later := suite.createGame(now.Add(48 * time.Hour))
	sooner := suite.createGame(now.Add(24 * time.Hour))

	games, err := suite.store.Games.List(GameFilter{})

	suite.NoError(err)
	suite.Equal([]uint{sooner.ID, later.ID}, ids(games))
	suite.NotNil(games[0].Location)
	suite.NotNil(games[0].Organizer)
}

// TestPickupAndTeamFilters tests the pickup and team projections
func (suite *GameRepositoryTestSuite) TestPickupAndTeamFilters() {
	tomorrow := time.Now().Add(24 * time.Hour)
	pickup := suite.createGame(tomorrow)
	teamGame := suite.createGame(tomorrow.Add(time.Hour))
	team := suite.createTeam()
	suite.Require().NoError(suite.store.Games.AttachTeam(teamGame.ID, 0, team.ID))

	pickups, err := suite.store.Games.List(GameFilter{PickupOnly: true})
	suite.NoError(err)
	suite.Equal([]uint{pickup.ID}, ids(pickups))

	teamGames, err := suite.store.Games.List(GameFilter{TeamID: team.ID})
	suite.NoError(err)
	suite.Require().Equal([]uint{teamGame.ID}, ids(teamGames))
	suite.Require().Len(teamGames[0].GameTeams, 1)
	suite.Equal(team.ID, teamGames[0].GameTeams[0].Team.ID)
}

// TestMembershipFilters tests the my games and invites projections
func (suite *GameRepositoryTestSuite) TestMembershipFilters() {
	player := suite.createUser()
	tomorrow := time.Now().Add(24 * time.Hour)
	going := suite.createGame(tomorrow)
	notGoing := suite.createGame(tomorrow.Add(time.Hour))
	invited := suite.createGame(tomorrow.Add(2 * time.Hour))
	requested := suite.createGame(tomorrow.Add(3 * time.Hour))
	suite.createGame(tomorrow.Add(4 * time.Hour))
	suite.rsvp(going, player, models.RsvpGoing)
	suite.rsvp(notGoing, player, models.RsvpNotGoing)
	suite.rsvp(invited, player, models.RsvpInvited)
	suite.rsvp(requested, player, models.RsvpRequestedToJoin)

	mine, err := suite.store.Games.List(GameFilter{PlayerID: player.ID, Membership: GamesCommitted})
	suite.NoError(err)
	suite.Equal([]uint{going.ID, notGoing.ID}, ids(mine))

	invites, err := suite.store.Games.List(GameFilter{PlayerID: player.ID, Membership: GamesInvited})
	suite.NoError(err)
	suite.Equal([]uint{invited.ID}, ids(invites))
}

// TestRsvpAnnotations tests the per game rsvp of a player
func (suite *GameRepositoryTestSuite) TestRsvpAnnotations() {
	player := suite.createUser()
	other := suite.createUser()
	tomorrow := time.Now().Add(24 * time.Hour)
	first := suite.createGame(tomorrow)
	second := suite.createGame(tomorrow)
	rsvp := suite.rsvp(first, player, models.RsvpUncertain)
	suite.rsvp(first, other, models.RsvpGoing)
	suite.rsvp(second, other, models.RsvpGoing)

	annotations, err := suite.store.Games.GetRsvpAnnotations(player.ID, []uint{first.ID, second.ID})

	suite.NoError(err)
	suite.Len(annotations, 1)
	suite.Equal(RsvpAnnotation{GameID: first.ID, Status: models.RsvpUncertain, RsvpID: rsvp.ID}, annotations[first.ID])
	_, ok := annotations[second.ID]
	suite.False(ok)

	empty, err := suite.store.Games.GetRsvpAnnotations(player.ID, nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestRsvpUniqueness tests that a player has one rsvp per game
func (suite *GameRepositoryTestSuite) TestRsvpUniqueness() {
	player := suite.createUser()
	game := suite.createGame(time.Now().Add(time.Hour))
	suite.rsvp(game, player, models.RsvpGoing)

	err := suite.store.Rsvps.Create(&models.RsvpStatus{GameID: game.ID, PlayerID: player.ID, Status: models.RsvpInvited, Team: models.NoTeam})

	suite.Equal(apperrors.ErrRsvpExists, err)
}

// TestZeroValueStatus tests that NOT_GOING and team 0 are stored as given
func (suite *GameRepositoryTestSuite) TestZeroValueStatus() {
	player := suite.createUser()
	game := suite.createGame(time.Now().Add(time.Hour))
	rsvp := &models.RsvpStatus{GameID: game.ID, PlayerID: player.ID, Status: models.RsvpNotGoing, Team: 0}
	suite.Require().NoError(suite.store.Rsvps.Create(rsvp))

	found, err := suite.store.Rsvps.GetByID(rsvp.ID)

	suite.NoError(err)
	suite.Equal(models.RsvpNotGoing, found.Status)
	suite.Equal(0, found.Team)
}

// TestUpsert tests that an existing rsvp is overwritten
func (suite *GameRepositoryTestSuite) TestUpsert() {
	player := suite.createUser()
	game := suite.createGame(time.Now().Add(time.Hour))
	suite.rsvp(game, player, models.RsvpInvited)

	err := suite.store.Rsvps.Upsert(&models.RsvpStatus{GameID: game.ID, PlayerID: player.ID, Status: models.RsvpGoing, Team: 1})
	suite.NoError(err)

	rsvps, err := suite.store.Rsvps.GetByGameID(game.ID)
	suite.NoError(err)
	suite.Require().Len(rsvps, 1)
	suite.Equal(models.RsvpGoing, rsvps[0].Status)
	suite.Equal(1, rsvps[0].Team)
}

// TestGetOrCreateInvite tests that inviting twice leaves one row
func (suite *GameRepositoryTestSuite) TestGetOrCreateInvite() {
	player := suite.createUser()
	game := suite.createGame(time.Now().Add(time.Hour))

	created, err := suite.store.Rsvps.GetOrCreateInvite(game.ID, player.ID, 0)
	suite.NoError(err)
	suite.True(created)

	created, err = suite.store.Rsvps.GetOrCreateInvite(game.ID, player.ID, 0)
	suite.NoError(err)
	suite.False(created)

	rsvps, err := suite.store.Rsvps.GetByGameID(game.ID)
	suite.NoError(err)
	suite.Require().Len(rsvps, 1)
	suite.Equal(models.RsvpInvited, rsvps[0].Status)
}

// TestGetByGameIDOrdering tests that rsvps come most committed first
func (suite *GameRepositoryTestSuite) TestGetByGameIDOrdering() {
	game := suite.createGame(time.Now().Add(time.Hour))
	suite.rsvp(game, suite.createUser(), models.RsvpInvited)
	suite.rsvp(game, suite.createUser(), models.RsvpGoing)
	suite.rsvp(game, suite.createUser(), models.RsvpNotGoing)

	rsvps, err := suite.store.Rsvps.GetByGameID(game.ID)

	suite.NoError(err)
	suite.Require().Len(rsvps, 3)
	suite.Equal(models.RsvpGoing, rsvps[0].Status)
	suite.Equal(models.RsvpNotGoing, rsvps[1].Status)
	suite.Equal(models.RsvpInvited, rsvps[2].Status)
}

// TestAttachTeamTwice tests that a team joins a game once
func (suite *GameRepositoryTestSuite) TestAttachTeamTwice() {
	game := suite.createGame(time.Now().Add(time.Hour))
	team := suite.createTeam()
	suite.Require().NoError(suite.store.Games.AttachTeam(game.ID, 0, team.ID))

	err := suite.store.Games.AttachTeam(game.ID, 1, team.ID)

	suite.Equal(apperrors.ErrGameTeamExists, err)
}

// TestGetUpcomingForTeam tests finding the future games of a team
func (suite *GameRepositoryTestSuite) TestGetUpcomingForTeam() {
	now := time.Now()
	team := suite.createTeam()
	past := suite.createGame(now.Add(-24 * time.Hour))
	future := suite.createGame(now.Add(24 * time.Hour))
	suite.Require().NoError(suite.store.Games.AttachTeam(past.ID, 0, team.ID))
	suite.Require().NoError(suite.store.Games.AttachTeam(future.ID, 1, team.ID))

	gameTeams, err := suite.store.Games.GetUpcomingForTeam(team.ID, now.Add(-90*time.Minute))

	suite.NoError(err)
	suite.Require().Len(gameTeams, 1)
	suite.Equal(future.ID, gameTeams[0].GameID)
	suite.Equal(1, gameTeams[0].Position)
}

// TestGetDetails tests loading a game with teams, managers and rsvps
func (suite *GameRepositoryTestSuite) TestGetDetails() {
	game := suite.createGame(time.Now().Add(time.Hour))
	team := suite.createTeam()
	suite.Require().NoError(suite.store.Teams.AddManager(team.ID, suite.organizer.ID))
	suite.Require().NoError(suite.store.Games.AttachTeam(game.ID, 0, team.ID))
	suite.rsvp(game, suite.organizer, models.RsvpGoing)

	found, err := suite.store.Games.GetDetails(game.ID)

	suite.NoError(err)
	suite.False(found.IsPickup())
	gt, ok := found.TeamAt(0)
	suite.Require().True(ok)
	suite.Equal([]uint{suite.organizer.ID}, gt.Team.ManagerIDs())
	suite.Require().Len(found.Rsvps, 1)
	suite.NotNil(found.Rsvps[0].Player)
}

// TestDeleteCascades tests that a deleted game takes its rsvps along
func (suite *GameRepositoryTestSuite) TestDeleteCascades() {
	game := suite.createGame(time.Now().Add(time.Hour))
	suite.rsvp(game, suite.organizer, models.RsvpGoing)

	suite.NoError(suite.store.Games.Delete(game.ID))

	rsvps, err := suite.store.Rsvps.GetByGameID(game.ID)
	suite.NoError(err)
	suite.Empty(rsvps)
}

// TestTransactionRollback tests that a failing unit of work leaves nothing behind
func (suite *GameRepositoryTestSuite) TestTransactionRollback() {
	tx := NewTransactor(suite.baseTestSuite.DB)
	player := suite.createUser()
	boom := errors.New("boom")

	err := tx.WithinTransaction(func(store *Store) error {
		game := suite.factories.Game.Create(suite.organizer.ID, suite.location.ID)
		if err := store.Games.Create(game); err != nil {
			return err
		}
		if err := store.Rsvps.Create(&models.RsvpStatus{GameID: game.ID, PlayerID: player.ID, Status: models.RsvpGoing, Team: models.NoTeam}); err != nil {
			return err
		}
		return boom
	})

	suite.ErrorIs(err, boom)
	games, err := suite.store.Games.List(GameFilter{})
	suite.NoError(err)
	suite.Empty(games)
}

// TestTransactionRollbackOnConflict tests that a duplicate aborts the whole unit
func (suite *GameRepositoryTestSuite) TestTransactionRollbackOnConflict() {
	tx := NewTransactor(suite.baseTestSuite.DB)
	player := suite.createUser()

	err := tx.WithinTransaction(func(store *Store) error {
		game := suite.factories.Game.Create(suite.organizer.ID, suite.location.ID)
		if err := store.Games.Create(game); err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			rsvp := &models.RsvpStatus{GameID: game.ID, PlayerID: player.ID, Status: models.RsvpGoing, Team: models.NoTeam}
			if err := store.Rsvps.Create(rsvp); err != nil {
				return err
			}
		}
		return nil
	})

	suite.Equal(apperrors.ErrRsvpExists, err)
	games, err := suite.store.Games.List(GameFilter{})
	suite.NoError(err)
	suite.Empty(games)
}

// TestGameRepositoryTestSuite runs the test suite
func TestGameRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GameRepositoryTestSuite))
}
