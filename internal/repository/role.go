package repository

import (
	"pickup-sports-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepository handles database operations for team roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(role *models.Role) error {
	return translateError(r.db.Omit(clause.Associations).Create(role).Error)
}

// GetByID retrieves a role by ID with its player
func (r *RoleRepository) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	err := r.db.Preload("Player").First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByTeamID retrieves the roles of a team, most committed first
func (r *RoleRepository) GetByTeamID(teamID uint) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Preload("Player").
		Where("team_id = ?", teamID).
		Order("role DESC, id ASC").
		Find(&roles).Error
	return roles, err
}

// GetSettledPlayerIDs returns the players holding a non-pending role in the team
func (r *RoleRepository) GetSettledPlayerIDs(teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Role{}).
		Where("team_id = ? AND role >= ?", teamID, models.TeamRoleInactive).
		Order("player_id ASC").
		Pluck("player_id", &ids).Error
	return ids, err
}

// Update updates a role
func (r *RoleRepository) Update(role *models.Role) error {
	return translateError(r.db.Omit(clause.Associations).Save(role).Error)
}

// Delete deletes a role
func (r *RoleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Role{}, "id = ?", id).Error
}
