package repository

import (
	"time"

	"pickup-sports-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetWithManagedTeams(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uint) (*models.Location, error)
	GetOrCreate(name, address string) (*models.Location, error)
	Search(query string) ([]models.Location, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetDetails(id uint) (*models.Team, error)
	GetByIDs(ids []uint) ([]models.Team, error)
	List(filter TeamFilter) ([]models.Team, error)
	AddManager(teamID, userID uint) error
	Update(team *models.Team) error
	Delete(id uint) error
}

// RoleRepositoryInterface defines the interface for team role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uint) (*models.Role, error)
	GetByTeamID(teamID uint) ([]models.Role, error)
	GetSettledPlayerIDs(teamID uint) ([]uint, error)
	Update(role *models.Role) error
	Delete(id uint) error
}

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uint) (*models.Game, error)
	GetDetails(id uint) (*models.Game, error)
	List(filter GameFilter) ([]models.Game, error)
	AttachTeam(gameID uint, position int, teamID uint) error
	GetUpcomingForTeam(teamID uint, since time.Time) ([]models.GameTeam, error)
	GetRsvpAnnotations(playerID uint, gameIDs []uint) (map[uint]RsvpAnnotation, error)
	Update(game *models.Game) error
	Delete(id uint) error
}

// RsvpRepositoryInterface defines the interface for rsvp status repository operations
type RsvpRepositoryInterface interface {
	Create(rsvp *models.RsvpStatus) error
	GetByID(id uint) (*models.RsvpStatus, error)
	GetByGameID(gameID uint) ([]models.RsvpStatus, error)
	Upsert(rsvp *models.RsvpStatus) error
	GetOrCreateInvite(gameID, playerID uint, team int) (bool, error)
	Update(rsvp *models.RsvpStatus) error
	Delete(id uint) error
}

// Transactor runs a unit of work against a Store bound to one transaction
type Transactor interface {
	WithinTransaction(fn func(store *Store) error) error
}
