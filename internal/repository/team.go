package repository

import (
	"pickup-sports-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMembership selects which teams of a player a list returns
type TeamMembership int

const (
	TeamsAll      TeamMembership = iota // every team, PlayerID ignored
	TeamsSettled                        // player holds a settled role
	TeamsInvited                        // player has an open invite
	TeamsManaged                        // player is a manager
)

// TeamFilter narrows a team list
type TeamFilter struct {
	PlayerID   uint
	Membership TeamMembership
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team. Managers are attached with AddManager.
func (r *TeamRepository) Create(team *models.Team) error {
	return translateError(r.db.Omit(clause.Associations).Create(team).Error)
}

// GetByID retrieves a team by ID with its managers
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Managers").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetDetails retrieves a team with managers and players, most committed first
func (r *TeamRepository) GetDetails(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Managers").
		Preload("Roles", func(db *gorm.DB) *gorm.DB {
			return db.Order("roles.role DESC, roles.id ASC")
		}).
		Preload("Roles.Player").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDs retrieves teams with their managers, in the order of ids.
// Unknown ids are skipped; callers compare lengths.
func (r *TeamRepository) GetByIDs(ids []uint) ([]models.Team, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []models.Team
	if err := r.db.Preload("Managers").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Team, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	teams := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

// List retrieves teams ordered by name
func (r *TeamRepository) List(filter TeamFilter) ([]models.Team, error) {
	db := r.db.Model(&models.Team{})
	switch filter.Membership {
	case TeamsSettled:
		db = db.Where("EXISTS (SELECT 1 FROM roles WHERE roles.team_id = teams.id AND roles.player_id = ? AND roles.role >= ?)",
			filter.PlayerID, models.TeamRoleInactive)
	case TeamsInvited:
		db = db.Where("EXISTS (SELECT 1 FROM roles WHERE roles.team_id = teams.id AND roles.player_id = ? AND roles.role = ?)",
			filter.PlayerID, models.TeamRoleInvited)
	case TeamsManaged:
		db = db.Where("EXISTS (SELECT 1 FROM team_managers WHERE team_managers.team_id = teams.id AND team_managers.user_id = ?)",
			filter.PlayerID)
	}

	var teams []models.Team
	err := db.Preload("Managers").Order("teams.name ASC, teams.id ASC").Find(&teams).Error
	return teams, err
}

// AddManager makes a user a manager of the team
func (r *TeamRepository) AddManager(teamID, userID uint) error {
	return translateError(r.db.Exec(
		"INSERT INTO team_managers (team_id, user_id) VALUES (?, ?)", teamID, userID,
	).Error)
}

// Update updates a team's own columns
func (r *TeamRepository) Update(team *models.Team) error {
	return translateError(r.db.Omit(clause.Associations).Save(team).Error)
}

// Delete deletes a team together with its manager links
func (r *TeamRepository) Delete(id uint) error {
	return r.db.Select("Managers").Delete(&models.Team{BaseModel: models.BaseModel{ID: id}}).Error
}
