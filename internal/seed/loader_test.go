package seed

import (
	"context"
	"testing"
	"time"

	"pickup-sports-backend/internal/database/models"
	"pickup-sports-backend/internal/mocks"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"
	"pickup-sports-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LoaderTestSuite loads the test fixtures into mocked repositories
type LoaderTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	users     *mocks.MockUserRepositoryInterface
	locations *mocks.MockLocationRepositoryInterface
	teams     *mocks.MockTeamRepositoryInterface
	roles     *mocks.MockRoleRepositoryInterface
	games     *mocks.MockGameRepositoryInterface
	rsvps     *mocks.MockRsvpRepositoryInterface
	scheduler *mocks.MockGameServiceInterface
	loader    *Loader
	fixtures  *Fixtures
	now       time.Time
}

func (suite *LoaderTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.locations = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.teams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.roles = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.games = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.rsvps = mocks.NewMockRsvpRepositoryInterface(suite.ctrl)
	suite.scheduler = mocks.NewMockGameServiceInterface(suite.ctrl)

	store := &repository.Store{
		Users:     suite.users,
		Locations: suite.locations,
		Teams:     suite.teams,
		Roles:     suite.roles,
		Games:     suite.games,
		Rsvps:     suite.rsvps,
	}
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.loader = NewLoader(store, suite.scheduler)
	suite.loader.now = func() time.Time { return suite.now }

	f, err := LoadFile("testdata/fixtures.yaml")
	suite.Require().NoError(err)
	suite.fixtures = f
}

func (suite *LoaderTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func seededUser(id uint, username string) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Username: username}
}

func (suite *LoaderTestSuite) expectLocations() {
	suite.locations.EXPECT().GetOrCreate("Granite Regional Park", gomock.Any()).
		Return(&models.Location{BaseModel: models.BaseModel{ID: 10}, Name: "Granite Regional Park"}, nil)
	suite.locations.EXPECT().GetOrCreate("Hagginwood Park", gomock.Any()).
		Return(&models.Location{BaseModel: models.BaseModel{ID: 11}, Name: "Hagginwood Park"}, nil)
}

func (suite *LoaderTestSuite) TestLoadCreatesEverything() {
	ids := map[string]uint{"maria": 2, "jane": 3, "kim": 4}
	suite.users.EXPECT().GetByUsername("admin").Return(&models.User{BaseModel: models.BaseModel{ID: 1}, Username: "admin", IsSuperuser: true}, nil)
	for _, name := range []string{"maria", "jane", "kim"} {
		suite.users.EXPECT().GetByUsername(name).Return(nil, gorm.ErrRecordNotFound)
	}
	suite.users.EXPECT().Create(gomock.Any()).Times(3).DoAndReturn(func(u *models.User) error {
		u.ID = ids[u.Username]
		return nil
	})

	suite.expectLocations()

	suite.teams.EXPECT().List(repository.TeamFilter{Membership: repository.TeamsAll}).Return(nil, nil)
	suite.teams.EXPECT().Create(gomock.Any()).DoAndReturn(func(team *models.Team) error {
		suite.Equal("Honey Badgers", team.Name)
		suite.Equal(models.TeamTypeFemale, team.Type)
		team.ID = 20
		return nil
	})
	suite.teams.EXPECT().AddManager(uint(20), uint(2)).Return(nil)
	suite.roles.EXPECT().Create(&models.Role{PlayerID: 2, TeamID: 20, Role: models.TeamRoleCaptain}).Return(nil)
	suite.roles.EXPECT().Create(&models.Role{PlayerID: 3, TeamID: 20, Role: models.TeamRoleField}).Return(nil)
	suite.roles.EXPECT().Create(&models.Role{PlayerID: 4, TeamID: 20, Role: models.TeamRoleInvited}).Return(nil)

	suite.games.EXPECT().List(repository.GameFilter{}).Return(nil, nil)
	suite.scheduler.EXPECT().
		Create(gomock.Any(), &permission.Actor{ID: 3}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *permission.Actor, req *service.CreateGameRequest) ([]service.GameResponse, error) {
			suite.Equal(suite.now.Add(72*time.Hour), *req.Datetime)
			suite.Equal(uint(11), *req.LocationID)
			suite.Empty(req.Teams)
			return []service.GameResponse{{ID: 30}}, nil
		})
	suite.rsvps.EXPECT().Upsert(&models.RsvpStatus{GameID: 30, PlayerID: 4, Status: models.RsvpUncertain, Team: models.NoTeam}).Return(nil)
	suite.scheduler.EXPECT().
		Create(gomock.Any(), &permission.Actor{ID: 2}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *permission.Actor, req *service.CreateGameRequest) ([]service.GameResponse, error) {
			suite.Equal([]uint{20}, req.Teams)
			suite.Equal(60, *req.Duration)
			return []service.GameResponse{{ID: 31}}, nil
		})

	result, err := suite.loader.Load(context.Background(), suite.fixtures)

	suite.Require().NoError(err)
	suite.Equal(&Result{Users: 3, Locations: 2, Teams: 1, Games: 2}, result)
}

func (suite *LoaderTestSuite) TestLoadTwiceCreatesNothing() {
	users := map[string]uint{"admin": 1, "maria": 2, "jane": 3, "kim": 4}
	for name, id := range users {
		suite.users.EXPECT().GetByUsername(name).Return(seededUser(id, name), nil)
	}
	suite.expectLocations()
	suite.teams.EXPECT().List(gomock.Any()).Return([]models.Team{{BaseModel: models.BaseModel{ID: 20}, Name: "Honey Badgers"}}, nil)
	suite.games.EXPECT().List(gomock.Any()).Return([]models.Game{
		{Name: "Sunday pickup", OrganizerID: 3, Datetime: suite.now.Add(72 * time.Hour)},
		{Name: "Badgers practice", OrganizerID: 2, Datetime: suite.now.Add(96 * time.Hour)},
	}, nil)

	result, err := suite.loader.Load(context.Background(), suite.fixtures)

	suite.Require().NoError(err)
	suite.Equal(&Result{Locations: 2}, result)
}

func (suite *LoaderTestSuite) TestLoadUnknownOrganizer() {
	f := &Fixtures{Games: []GameData{{Name: "G", In: "1h", Organizer: "ghost"}}}
	suite.games.EXPECT().List(gomock.Any()).Return(nil, nil)
	suite.users.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.loader.Load(context.Background(), f)

	suite.Require().Error(err)
	suite.Contains(err.Error(), `unknown user "ghost"`)
}

func (suite *LoaderTestSuite) TestLoadUnknownTeam() {
	f := &Fixtures{
		Users:     []UserData{{Username: "maria"}},
		Locations: []LocationData{{Name: "Hagginwood Park"}},
		Games:     []GameData{{Name: "G", In: "1h", Organizer: "maria", Location: "Hagginwood Park", Teams: []string{"Nobody"}}},
	}
	suite.users.EXPECT().GetByUsername("maria").Return(seededUser(2, "maria"), nil)
	suite.locations.EXPECT().GetOrCreate("Hagginwood Park", "").Return(&models.Location{BaseModel: models.BaseModel{ID: 11}}, nil)
	suite.games.EXPECT().List(gomock.Any()).Return(nil, nil)

	_, err := suite.loader.Load(context.Background(), f)

	suite.Require().Error(err)
	suite.Contains(err.Error(), `unknown team "Nobody"`)
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}
