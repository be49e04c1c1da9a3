package service_test

import (
	"context"
	"testing"
	"time"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/repository"
	"pickup-sports-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const (
	organizerID uint = 1
	managerID   uint = 2
	playerID    uint = 3
	strangerID  uint = 4
)

// GameServiceTestSuite defines the test suite for GameService
type GameServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *mockStore
	service *service.GameService
	ctx     context.Context
}

// SetupTest sets up the test suite
func (suite *GameServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newMockStore(suite.ctrl)
	suite.service = service.NewGameService(suite.m.store, suite.m.tx, service.NewValidator(), 90*time.Minute)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *GameServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GameServiceTestSuite) expectGamesCreated(firstID uint, created *[]*models.Game) {
	next := firstID
	suite.m.games.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Game) error {
		g.ID = next
		next++
		*created = append(*created, g)
		return nil
	}).AnyTimes()
	suite.m.games.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uint) (*models.Game, error) {
		for _, g := range *created {
			if g.ID == id {
				return g, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}).AnyTimes()
}

// TestCreatePickupGame tests that the organizer is going to a new pickup game
func (suite *GameServiceTestSuite) TestCreatePickupGame() {
	at := time.Now().Add(24 * time.Hour)
	locationID := uint(5)
	req := &service.CreateGameRequest{Datetime: &at, Name: "Sunday run", LocationID: &locationID}

	var created []*models.Game
	suite.m.locations.EXPECT().GetByID(locationID).Return(&models.Location{BaseModel: models.BaseModel{ID: locationID}}, nil)
	suite.m.expectTransaction()
	suite.expectGamesCreated(10, &created)
	suite.m.rsvps.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.RsvpStatus) error {
		suite.Equal(uint(10), r.GameID)
		suite.Equal(organizerID, r.PlayerID)
		suite.Equal(models.RsvpGoing, r.Status)
		suite.Equal(models.NoTeam, r.Team)
		return nil
	})

	games, err := suite.service.Create(suite.ctx, actor(organizerID), req)

	suite.NoError(err)
	suite.Require().Len(games, 1)
	suite.Equal("Sunday run", games[0].Name)
	suite.True(games[0].IsPickup)
	suite.Equal(locationID, created[0].LocationID)
	suite.Equal(organizerID, created[0].OrganizerID)
}

// TestCreateMultipleDatetimes tests that each datetime produces a numbered game
func (suite *GameServiceTestSuite) TestCreateMultipleDatetimes() {
	base := time.Now().Add(24 * time.Hour)
	first := base
	req := &service.CreateGameRequest{
		Datetime:  &first,
		Datetimes: []time.Time{base.Add(7 * 24 * time.Hour), base.Add(14 * 24 * time.Hour), base.Add(21 * 24 * time.Hour)},
		Name:      "X",
		Location:  &service.LocationInput{Name: "Dolores Park", Address: "Dolores St"},
	}

	var created []*models.Game
	suite.m.expectTransaction()
	suite.m.locations.EXPECT().GetOrCreate("Dolores Park", "Dolores St").Return(&models.Location{BaseModel: models.BaseModel{ID: 8}}, nil)
	suite.expectGamesCreated(1, &created)
	suite.m.rsvps.EXPECT().Create(gomock.Any()).Return(nil).Times(4)

	games, err := suite.service.Create(suite.ctx, actor(organizerID), req)

	suite.NoError(err)
	suite.Require().Len(games, 4)
	names := make([]string, 0, len(games))
	for _, g := range games {
		names = append(names, g.Name)
	}
	suite.Equal([]string{"X", "X (2)", "X (3)", "X (4)"}, names)
	for i, g := range created {
		suite.Equal(uint(8), g.LocationID)
		suite.Equal(req.Datetimes[0].Add(time.Duration(i-1)*7*24*time.Hour), g.Datetime)
	}
}

// TestCreateTeamGame tests that team members are put on the roster of a new team game
func (suite *GameServiceTestSuite) TestCreateTeamGame() {
	at := time.Now().Add(24 * time.Hour)
	locationID := uint(5)
	home := team(7, managerID)
	req := &service.CreateGameRequest{Datetime: &at, LocationID: &locationID, Teams: []uint{7}}

	var created []*models.Game
	suite.m.teams.EXPECT().GetByIDs([]uint{7}).Return([]models.Team{*home}, nil)
	suite.m.locations.EXPECT().GetByID(locationID).Return(&models.Location{BaseModel: models.BaseModel{ID: locationID}}, nil)
	suite.m.expectTransaction()
	suite.expectGamesCreated(10, &created)
	suite.m.games.EXPECT().AttachTeam(uint(10), 0, uint(7)).Return(nil)
	suite.m.roles.EXPECT().GetSettledPlayerIDs(uint(7)).Return([]uint{managerID, playerID}, nil)

	written := map[uint]*models.RsvpStatus{}
	suite.m.rsvps.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(r *models.RsvpStatus) error {
		written[r.PlayerID] = r
		return nil
	}).Times(2)

	_, err := suite.service.Create(suite.ctx, actor(managerID), req)

	suite.NoError(err)
	suite.Require().Len(written, 2)
	suite.Equal(models.RsvpGoing, written[managerID].Status)
	suite.Equal(models.RsvpInvited, written[playerID].Status)
	suite.Equal(0, written[playerID].Team)
}

// TestCreateTeamGameRequiresManager tests that only managers schedule their teams
func (suite *GameServiceTestSuite) TestCreateTeamGameRequiresManager() {
	at := time.Now().Add(24 * time.Hour)
	locationID := uint(5)
	req := &service.CreateGameRequest{Datetime: &at, LocationID: &locationID, Teams: []uint{7, 8}}

	suite.m.teams.EXPECT().GetByIDs([]uint{7, 8}).Return([]models.Team{*team(7, managerID), *team(8, strangerID)}, nil)

	games, err := suite.service.Create(suite.ctx, actor(managerID), req)

	suite.Equal(apperrors.ErrPermissionDenied, err)
	suite.Nil(games)
}

// TestCreateCascadeFailureAborts tests that a failing roster write fails the whole create
func (suite *GameServiceTestSuite) TestCreateCascadeFailureAborts() {
	at := time.Now().Add(24 * time.Hour)
	locationID := uint(5)
	req := &service.CreateGameRequest{Datetime: &at, LocationID: &locationID}

	suite.m.locations.EXPECT().GetByID(locationID).Return(&models.Location{BaseModel: models.BaseModel{ID: locationID}}, nil)
	suite.m.expectTransaction()
	suite.m.games.EXPECT().Create(gomock.Any()).Return(nil)
	suite.m.rsvps.EXPECT().Create(gomock.Any()).Return(apperrors.ErrRsvpExists)

	games, err := suite.service.Create(suite.ctx, actor(organizerID), req)

	suite.Equal(apperrors.ErrRsvpExists, err)
	suite.Nil(games)
}

// TestCreateValidation tests the request checks made before any write
func (suite *GameServiceTestSuite) TestCreateValidation() {
	at := time.Now()
	locationID := uint(5)

	testCases := []struct {
		name    string
		actor   bool
		request *service.CreateGameRequest
		want    error
	}{
		{"anonymous", false, &service.CreateGameRequest{Datetime: &at, LocationID: &locationID}, apperrors.ErrAuthenticationRequired},
		{"no datetime", true, &service.CreateGameRequest{LocationID: &locationID}, apperrors.ErrDatetimeRequired},
		{"too many teams", true, &service.CreateGameRequest{Datetime: &at, LocationID: &locationID, Teams: []uint{1, 2, 3}}, apperrors.ErrTooManyTeams},
		{"no location", true, &service.CreateGameRequest{Datetime: &at}, apperrors.ErrLocationRequired},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			a := actor(organizerID)
			if !tc.actor {
				a = nil
			}
			_, err := suite.service.Create(suite.ctx, a, tc.request)
			suite.Equal(tc.want, err)
		})
	}

	suite.Run("negative duration", func() {
		d := -5
		_, err := suite.service.Create(suite.ctx, actor(organizerID), &service.CreateGameRequest{Datetime: &at, LocationID: &locationID, Duration: &d})
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("same team twice", func() {
		_, err := suite.service.Create(suite.ctx, actor(organizerID), &service.CreateGameRequest{Datetime: &at, LocationID: &locationID, Teams: []uint{4, 4}})
		suite.True(apperrors.IsValidation(err))
	})
}

// TestUpdateOnlyOrganizer tests that only the organizer edits a game
func (suite *GameServiceTestSuite) TestUpdateOnlyOrganizer() {
	name := "Renamed"
	suite.m.games.EXPECT().GetByID(uint(10)).Return(teamGame(10, organizerID, team(7, managerID)), nil)

	_, err := suite.service.Update(suite.ctx, actor(managerID), 10, &service.UpdateGameRequest{Name: &name})

	suite.Equal(apperrors.ErrPermissionDenied, err)
}

// TestUpdate tests changing a game
func (suite *GameServiceTestSuite) TestUpdate() {
	name := "Renamed"
	duration := 60
	suite.m.games.EXPECT().GetByID(uint(10)).Return(pickupGame(10, organizerID), nil)
	suite.m.games.EXPECT().Update(gomock.Any()).DoAndReturn(func(g *models.Game) error {
		suite.Equal("Renamed", g.Name)
		suite.Equal(60, *g.Duration)
		return nil
	})

	resp, err := suite.service.Update(suite.ctx, actor(organizerID), 10, &service.UpdateGameRequest{Name: &name, Duration: &duration})

	suite.NoError(err)
	suite.Equal("Renamed", resp.Name)
}

// TestDelete tests deleting a game
func (suite *GameServiceTestSuite) TestDelete() {
	suite.m.games.EXPECT().GetByID(uint(10)).Return(pickupGame(10, organizerID), nil).Times(2)
	suite.m.games.EXPECT().Delete(uint(10)).Return(nil)

	suite.Equal(apperrors.ErrPermissionDenied, suite.service.Delete(suite.ctx, actor(strangerID), 10))
	suite.NoError(suite.service.Delete(suite.ctx, actor(organizerID), 10))
}

// TestDeleteNotFound tests deleting a missing game
func (suite *GameServiceTestSuite) TestDeleteNotFound() {
	suite.m.games.EXPECT().GetByID(uint(10)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(suite.ctx, actor(organizerID), 10)

	suite.Equal(apperrors.ErrGameNotFound, err)
}

// TestGetAnnotatesOwnRsvp tests that the details carry the actor's rsvp
func (suite *GameServiceTestSuite) TestGetAnnotatesOwnRsvp() {
	game := pickupGame(10, organizerID)
	game.Rsvps = []models.RsvpStatus{
		{BaseModel: models.BaseModel{ID: 20}, GameID: 10, PlayerID: organizerID, Status: models.RsvpGoing, Player: user(organizerID)},
		{BaseModel: models.BaseModel{ID: 21}, GameID: 10, PlayerID: playerID, Status: models.RsvpInvited, Player: user(playerID)},
	}
	suite.m.games.EXPECT().GetDetails(uint(10)).Return(game, nil).Times(2)

	resp, err := suite.service.Get(suite.ctx, actor(playerID), 10)
	suite.NoError(err)
	suite.Len(resp.Players, 2)
	suite.Equal(models.RsvpInvited, *resp.Rsvp)
	suite.Equal(uint(21), *resp.RsvpID)

	anonymous, err := suite.service.Get(suite.ctx, nil, 10)
	suite.NoError(err)
	suite.Nil(anonymous.Rsvp)
}

// TestListUpcomingUsesCutoff tests the default future filter
func (suite *GameServiceTestSuite) TestListUpcomingUsesCutoff() {
	before := time.Now()
	suite.m.games.EXPECT().List(gomock.Any()).DoAndReturn(func(f repository.GameFilter) ([]models.Game, error) {
		suite.Require().NotNil(f.Since)
		suite.WithinDuration(before.Add(-90*time.Minute), *f.Since, 5*time.Second)
		suite.False(f.PickupOnly)
		return []models.Game{*pickupGame(1, organizerID)}, nil
	})

	games, err := suite.service.List(suite.ctx, nil, service.GameListUpcoming, service.GameListOptions{})

	suite.NoError(err)
	suite.Len(games, 1)
	suite.Nil(games[0].Rsvp)
}

// TestListAllSkipsCutoff tests that the all flag returns history too
func (suite *GameServiceTestSuite) TestListAllSkipsCutoff() {
	suite.m.games.EXPECT().List(repository.GameFilter{PickupOnly: true}).Return(nil, nil)

	games, err := suite.service.List(suite.ctx, nil, service.GameListPickup, service.GameListOptions{All: true})

	suite.NoError(err)
	suite.Empty(games)
}

// TestListMineAnnotates tests the my games projection with rsvp annotations
func (suite *GameServiceTestSuite) TestListMineAnnotates() {
	suite.m.games.EXPECT().List(gomock.Any()).DoAndReturn(func(f repository.GameFilter) ([]models.Game, error) {
		suite.Equal(playerID, f.PlayerID)
		suite.Equal(repository.GamesCommitted, f.Membership)
		return []models.Game{*pickupGame(1, organizerID), *pickupGame(2, organizerID)}, nil
	})
	suite.m.games.EXPECT().GetRsvpAnnotations(playerID, []uint{1, 2}).Return(map[uint]repository.RsvpAnnotation{
		1: {GameID: 1, Status: models.RsvpGoing, RsvpID: 30},
	}, nil)

	games, err := suite.service.List(suite.ctx, actor(playerID), service.GameListMine, service.GameListOptions{})

	suite.NoError(err)
	suite.Require().Len(games, 2)
	suite.Equal(models.RsvpGoing, *games[0].Rsvp)
	suite.Equal(uint(30), *games[0].RsvpID)
	suite.Nil(games[1].Rsvp)
}

// TestListRequiresActor tests that personal lists need a signed in user
func (suite *GameServiceTestSuite) TestListRequiresActor() {
	for _, action := range []service.GameListAction{service.GameListMine, service.GameListInvites} {
		_, err := suite.service.List(suite.ctx, nil, action, service.GameListOptions{})
		suite.Equal(apperrors.ErrAuthenticationRequired, err)
	}
}

// TestListTeamGames tests the games of one team
func (suite *GameServiceTestSuite) TestListTeamGames() {
	suite.m.teams.EXPECT().GetByID(uint(7)).Return(team(7, managerID), nil)
	suite.m.games.EXPECT().List(gomock.Any()).DoAndReturn(func(f repository.GameFilter) ([]models.Game, error) {
		suite.Equal(uint(7), f.TeamID)
		return nil, nil
	})

	_, err := suite.service.List(suite.ctx, nil, service.GameListTeam, service.GameListOptions{TeamID: 7})
	suite.NoError(err)

	suite.m.teams.EXPECT().GetByID(uint(8)).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.List(suite.ctx, nil, service.GameListTeam, service.GameListOptions{TeamID: 8})
	suite.Equal(apperrors.ErrTeamNotFound, err)
}

// TestGameServiceTestSuite runs the test suite
func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
