package service_test

import (
	"pickup-sports-backend/internal/database/models"
	"pickup-sports-backend/internal/mocks"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// mockStore is a repository.Store whose repositories are gomock mocks
type mockStore struct {
	store     *repository.Store
	tx        *mocks.MockTransactor
	users     *mocks.MockUserRepositoryInterface
	locations *mocks.MockLocationRepositoryInterface
	teams     *mocks.MockTeamRepositoryInterface
	roles     *mocks.MockRoleRepositoryInterface
	games     *mocks.MockGameRepositoryInterface
	rsvps     *mocks.MockRsvpRepositoryInterface
}

func newMockStore(ctrl *gomock.Controller) *mockStore {
	m := &mockStore{
		tx:        mocks.NewMockTransactor(ctrl),
		users:     mocks.NewMockUserRepositoryInterface(ctrl),
		locations: mocks.NewMockLocationRepositoryInterface(ctrl),
		teams:     mocks.NewMockTeamRepositoryInterface(ctrl),
		roles:     mocks.NewMockRoleRepositoryInterface(ctrl),
		games:     mocks.NewMockGameRepositoryInterface(ctrl),
		rsvps:     mocks.NewMockRsvpRepositoryInterface(ctrl),
	}
	m.store = &repository.Store{
		Users:     m.users,
		Locations: m.locations,
		Teams:     m.teams,
		Roles:     m.roles,
		Games:     m.games,
		Rsvps:     m.rsvps,
	}
	return m
}

// expectTransaction runs the unit of work against the same mocked store
func (m *mockStore) expectTransaction() *gomock.Call {
	return m.tx.EXPECT().WithinTransaction(gomock.Any()).DoAndReturn(func(fn func(*repository.Store) error) error {
		return fn(m.store)
	})
}

func user(id uint) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Username: "user"}
}

func actor(id uint) *permission.Actor {
	return &permission.Actor{ID: id}
}

func team(id uint, managerIDs ...uint) *models.Team {
	t := &models.Team{BaseModel: models.BaseModel{ID: id}, Name: "team"}
	for _, m := range managerIDs {
		t.Managers = append(t.Managers, *user(m))
	}
	return t
}

func pickupGame(id, organizerID uint) *models.Game {
	return &models.Game{BaseModel: models.BaseModel{ID: id}, OrganizerID: organizerID}
}

func teamGame(id, organizerID uint, teams ...*models.Team) *models.Game {
	g := pickupGame(id, organizerID)
	for i, t := range teams {
		g.GameTeams = append(g.GameTeams, models.GameTeam{GameID: id, Position: i, TeamID: t.ID, Team: t})
	}
	return g
}

func rsvpPtr(r models.Rsvp) *models.Rsvp {
	return &r
}

func rolePtr(r models.TeamRole) *models.TeamRole {
	return &r
}
