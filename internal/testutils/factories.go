package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"pickup-sports-backend/internal/database/models"
)

var sequence atomic.Uint64

func next() uint64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username and email
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Username:  fmt.Sprintf("player%d", n),
		Email:     fmt.Sprintf("player%d@example.com", n),
		FirstName: "Test",
		LastName:  fmt.Sprintf("Player %d", n),
		Gender:    "F",
	}
}

// WithID sets the ID, for tests that never touch the database
func (f *UserFactory) WithID(id uint) *models.User {
	user := f.Create()
	user.ID = id
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Superuser creates a user with superuser rights
func (f *UserFactory) Superuser() *models.User {
	user := f.Create()
	user.IsSuperuser = true
	return user
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with a unique name
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		Name:    fmt.Sprintf("Field %d", next()),
		Address: "1 Park Avenue",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name:        fmt.Sprintf("Team %d", next()),
		Info:        "Sunday league",
		Type:        models.TeamTypeCoed,
		SlotsFemale: 5,
		SlotsMale:   5,
	}
}

// WithManagers creates a team managed by the given users
func (f *TeamFactory) WithManagers(managers ...*models.User) *models.Team {
	team := f.Create()
	for _, m := range managers {
		team.Managers = append(team.Managers, *m)
	}
	return team
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test pickup Game starting tomorrow
func (f *GameFactory) Create(organizerID, locationID uint) *models.Game {
	return &models.Game{
		Datetime:    time.Now().Add(24 * time.Hour).Truncate(time.Second),
		Name:        fmt.Sprintf("Game %d", next()),
		LocationID:  locationID,
		OrganizerID: organizerID,
	}
}

// At creates a test Game at the given time
func (f *GameFactory) At(organizerID, locationID uint, at time.Time) *models.Game {
	game := f.Create(organizerID, locationID)
	game.Datetime = at
	return game
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Location *LocationFactory
	Team     *TeamFactory
	Game     *GameFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Location: NewLocationFactory(),
		Team:     NewTeamFactory(),
		Game:     NewGameFactory(),
	}
}
