package service_test

import (
	"context"
	"testing"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/repository"
	"pickup-sports-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *mockStore
	service *service.TeamService
	ctx     context.Context
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newMockStore(suite.ctrl)
	suite.service = service.NewTeamService(suite.m.store, suite.m.tx, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateAddsCreatorAsManager tests that the creator manages the new team
func (suite *TeamServiceTestSuite) TestCreateAddsCreatorAsManager() {
	suite.m.expectTransaction()
	suite.m.teams.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Team) error {
		suite.Equal("Hammers", t.Name)
		suite.Equal(models.TeamTypeFemale, t.Type)
		t.ID = 7
		return nil
	})
	suite.m.teams.EXPECT().AddManager(uint(7), managerID).Return(nil)
	suite.m.teams.EXPECT().GetDetails(uint(7)).Return(team(7, managerID), nil)

	resp, err := suite.service.Create(suite.ctx, actor(managerID), &service.CreateTeamRequest{Name: "  Hammers ", Type: models.TeamTypeFemale})

	suite.NoError(err)
	suite.Equal(uint(7), resp.ID)
	suite.Require().Len(resp.Managers, 1)
	suite.Equal(managerID, resp.Managers[0].ID)
	suite.Empty(resp.Players)
}

// TestCreateValidation tests the team request checks
func (suite *TeamServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		request *service.CreateTeamRequest
	}{
		{"blank name", &service.CreateTeamRequest{Name: "   "}},
		{"long name", &service.CreateTeamRequest{Name: "a team name that is much too long"}},
		{"unknown type", &service.CreateTeamRequest{Name: "Hammers", Type: models.TeamType(5)}},
		{"negative slots", &service.CreateTeamRequest{Name: "Hammers", SlotsMale: -1}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Create(suite.ctx, actor(managerID), tc.request)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}

	_, err := suite.service.Create(suite.ctx, nil, &service.CreateTeamRequest{Name: "Hammers"})
	suite.Equal(apperrors.ErrAuthenticationRequired, err)
}

// TestUpdate tests that only managers change a team
func (suite *TeamServiceTestSuite) TestUpdate() {
	name := "Anvils"
	suite.m.teams.EXPECT().GetByID(uint(7)).Return(team(7, managerID), nil).Times(2)
	suite.m.teams.EXPECT().Update(gomock.Any()).DoAndReturn(func(t *models.Team) error {
		suite.Equal("Anvils", t.Name)
		return nil
	})
	suite.m.teams.EXPECT().GetDetails(uint(7)).Return(team(7, managerID), nil)

	_, err := suite.service.Update(suite.ctx, actor(playerID), 7, &service.UpdateTeamRequest{Name: &name})
	suite.Equal(apperrors.ErrPermissionDenied, err)

	_, err = suite.service.Update(suite.ctx, actor(managerID), 7, &service.UpdateTeamRequest{Name: &name})
	suite.NoError(err)
}

// TestDelete tests deleting a team
func (suite *TeamServiceTestSuite) TestDelete() {
	suite.m.teams.EXPECT().GetByID(uint(7)).Return(team(7, managerID), nil).Times(2)
	suite.m.teams.EXPECT().Delete(uint(7)).Return(nil)

	suite.Equal(apperrors.ErrPermissionDenied, suite.service.Delete(suite.ctx, actor(playerID), 7))
	suite.NoError(suite.service.Delete(suite.ctx, actor(managerID), 7))

	suite.m.teams.EXPECT().GetByID(uint(8)).Return(nil, gorm.ErrRecordNotFound)
	suite.Equal(apperrors.ErrTeamNotFound, suite.service.Delete(suite.ctx, actor(managerID), 8))
}

// TestList tests the team list actions
func (suite *TeamServiceTestSuite) TestList() {
	suite.m.teams.EXPECT().List(repository.TeamFilter{Membership: repository.TeamsAll}).Return([]models.Team{*team(7), *team(8)}, nil)
	suite.m.teams.EXPECT().List(repository.TeamFilter{PlayerID: playerID, Membership: repository.TeamsInvited}).Return(nil, nil)

	all, err := suite.service.List(suite.ctx, nil, service.TeamListAll)
	suite.NoError(err)
	suite.Len(all, 2)

	invites, err := suite.service.List(suite.ctx, actor(playerID), service.TeamListInvites)
	suite.NoError(err)
	suite.Empty(invites)

	for _, action := range []service.TeamListAction{service.TeamListMine, service.TeamListManaged, service.TeamListInvites} {
		_, err := suite.service.List(suite.ctx, nil, action)
		suite.Equal(apperrors.ErrAuthenticationRequired, err)
	}
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
