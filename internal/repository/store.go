package repository

import (
	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle
type Store struct {
	Users     UserRepositoryInterface
	Locations LocationRepositoryInterface
	Teams     TeamRepositoryInterface
	Roles     RoleRepositoryInterface
	Games     GameRepositoryInterface
	Rsvps     RsvpRepositoryInterface
}

// NewStore creates a Store whose repositories all run on db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:     NewUserRepository(db),
		Locations: NewLocationRepository(db),
		Teams:     NewTeamRepository(db),
		Roles:     NewRoleRepository(db),
		Games:     NewGameRepository(db),
		Rsvps:     NewRsvpRepository(db),
	}
}

// GormTransactor opens gorm transactions
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new gorm backed Transactor
func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction runs fn on a Store bound to a new transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (t *GormTransactor) WithinTransaction(fn func(store *Store) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
