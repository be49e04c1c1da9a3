package repository

import (
	"pickup-sports-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RsvpRepository handles database operations for rsvp statuses
type RsvpRepository struct {
	db *gorm.DB
}

// NewRsvpRepository creates a new rsvp repository
func NewRsvpRepository(db *gorm.DB) *RsvpRepository {
	return &RsvpRepository{db: db}
}

// Create creates a new rsvp status
func (r *RsvpRepository) Create(rsvp *models.RsvpStatus) error {
	return translateError(r.db.Omit(clause.Associations).Create(rsvp).Error)
}

// GetByID retrieves an rsvp status by ID with its player
func (r *RsvpRepository) GetByID(id uint) (*models.RsvpStatus, error) {
	var rsvp models.RsvpStatus
	err := r.db.Preload("Player").First(&rsvp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// GetByGameID retrieves the rsvps of a game, most committed first
func (r *RsvpRepository) GetByGameID(gameID uint) ([]models.RsvpStatus, error) {
	var rsvps []models.RsvpStatus
	err := r.db.Preload("Player").
		Where("game_id = ?", gameID).
		Order("status DESC, id ASC").
		Find(&rsvps).Error
	return rsvps, err
}

// Upsert creates the rsvp or overwrites status and team of the existing
// one for the same player and game.
func (r *RsvpRepository) Upsert(rsvp *models.RsvpStatus) error {
	return translateError(r.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "team", "updated_at"}),
	}).Create(rsvp).Error)
}

// GetOrCreateInvite invites the player to the game unless they already
// have an rsvp there. It reports whether a row was created.
func (r *RsvpRepository) GetOrCreateInvite(gameID, playerID uint, team int) (bool, error) {
	var existing []models.RsvpStatus
	err := r.db.Where("game_id = ? AND player_id = ?", gameID, playerID).Limit(1).Find(&existing).Error
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	invite := &models.RsvpStatus{GameID: gameID, PlayerID: playerID, Status: models.RsvpInvited, Team: team}
	if err := r.Create(invite); err != nil {
		return false, err
	}
	return true, nil
}

// Update updates an rsvp status
func (r *RsvpRepository) Update(rsvp *models.RsvpStatus) error {
	return translateError(r.db.Omit(clause.Associations).Save(rsvp).Error)
}

// Delete deletes an rsvp status
func (r *RsvpRepository) Delete(id uint) error {
	return r.db.Delete(&models.RsvpStatus{}, "id = ?", id).Error
}
