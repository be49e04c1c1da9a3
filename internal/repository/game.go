package repository

import (
	"time"

	"pickup-sports-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameMembership selects games by the rsvp a player holds there
type GameMembership int

const (
	GamesAll       GameMembership = iota // no rsvp condition
	GamesCommitted                       // rsvp is a settled answer
	GamesInvited                         // rsvp is an open invite
)

// GameFilter narrows a game list. The zero value lists every game.
type GameFilter struct {
	Since      *time.Time // only games after this instant
	PickupOnly bool
	TeamID     uint
	PlayerID   uint
	Membership GameMembership
}

// RsvpAnnotation is the rsvp one player holds for one game
type RsvpAnnotation struct {
	GameID uint
	Status models.Rsvp
	RsvpID uint
}

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func orderedGameTeams(db *gorm.DB) *gorm.DB {
	return db.Order("game_teams.position ASC")
}

// Create creates a new game. Teams are attached with AttachTeam.
func (r *GameRepository) Create(game *models.Game) error {
	return translateError(r.db.Omit(clause.Associations).Create(game).Error)
}

// GetByID retrieves a game with location, organizer and teams with their managers
func (r *GameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.
		Preload("Location").
		Preload("Organizer").
		Preload("GameTeams", orderedGameTeams).
		Preload("GameTeams.Team.Managers").
		First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetDetails retrieves a game like GetByID plus its rsvps, most committed first
func (r *GameRepository) GetDetails(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.
		Preload("Location").
		Preload("Organizer").
		Preload("GameTeams", orderedGameTeams).
		Preload("GameTeams.Team.Managers").
		Preload("Rsvps", func(db *gorm.DB) *gorm.DB {
			return db.Order("rsvp_statuses.status DESC, rsvp_statuses.id ASC")
		}).
		Preload("Rsvps.Player").
		First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// List retrieves games matching filter in ascending datetime order
func (r *GameRepository) List(filter GameFilter) ([]models.Game, error) {
	db := r.db.Model(&models.Game{})
	if filter.Since != nil {
		db = db.Where("games.datetime > ?", *filter.Since)
	}
	if filter.PickupOnly {
		db = db.Where("NOT EXISTS (SELECT 1 FROM game_teams WHERE game_teams.game_id = games.id)")
	}
	if filter.TeamID != 0 {
		db = db.Where("EXISTS (SELECT 1 FROM game_teams WHERE game_teams.game_id = games.id AND game_teams.team_id = ?)", filter.TeamID)
	}
	switch filter.Membership {
	case GamesCommitted:
		db = db.Where("EXISTS (SELECT 1 FROM rsvp_statuses WHERE rsvp_statuses.game_id = games.id AND rsvp_statuses.player_id = ? AND rsvp_statuses.status > ?)",
			filter.PlayerID, models.RsvpInvited)
	case GamesInvited:
		db = db.Where("EXISTS (SELECT 1 FROM rsvp_statuses WHERE rsvp_statuses.game_id = games.id AND rsvp_statuses.player_id = ? AND rsvp_statuses.status = ?)",
			filter.PlayerID, models.RsvpInvited)
	}

	var games []models.Game
	err := db.
		Preload("Location").
		Preload("Organizer").
		Preload("GameTeams", orderedGameTeams).
		Preload("GameTeams.Team").
		Order("games.datetime ASC, games.id ASC").
		Find(&games).Error
	return games, err
}

// AttachTeam attaches a team to the game at position
func (r *GameRepository) AttachTeam(gameID uint, position int, teamID uint) error {
	return translateError(r.db.Create(&models.GameTeam{
		GameID:   gameID,
		Position: position,
		TeamID:   teamID,
	}).Error)
}

// GetUpcomingForTeam returns the attachments of a team to games after since
func (r *GameRepository) GetUpcomingForTeam(teamID uint, since time.Time) ([]models.GameTeam, error) {
	var gameTeams []models.GameTeam
	err := r.db.
		Joins("JOIN games ON games.id = game_teams.game_id").
		Where("game_teams.team_id = ? AND games.datetime > ?", teamID, since).
		Order("games.datetime ASC").
		Find(&gameTeams).Error
	return gameTeams, err
}

// GetRsvpAnnotations returns, per game, the rsvp of the player. The
// aggregate keeps it to one row per game.
func (r *GameRepository) GetRsvpAnnotations(playerID uint, gameIDs []uint) (map[uint]RsvpAnnotation, error) {
	annotations := make(map[uint]RsvpAnnotation, len(gameIDs))
	if len(gameIDs) == 0 {
		return annotations, nil
	}

	var rows []RsvpAnnotation
	err := r.db.Model(&models.RsvpStatus{}).
		Select("game_id, MAX(status) AS status, MAX(id) AS rsvp_id").
		Where("player_id = ? AND game_id IN ?", playerID, gameIDs).
		Group("game_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		annotations[row.GameID] = row
	}
	return annotations, nil
}

// Update updates a game's own columns
func (r *GameRepository) Update(game *models.Game) error {
	return translateError(r.db.Omit(clause.Associations).Save(game).Error)
}

// Delete deletes a game
func (r *GameRepository) Delete(id uint) error {
	return r.db.Delete(&models.Game{}, "id = ?", id).Error
}
