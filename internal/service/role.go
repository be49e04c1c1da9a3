package service

import (
	"context"
	"fmt"
	"time"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// RoleService handles business logic for the players of a team
type RoleService struct {
	store     *repository.Store
	tx        repository.Transactor
	validator *validator.Validate
	cutoff    time.Duration
}

// NewRoleService creates a new role service
func NewRoleService(store *repository.Store, tx repository.Transactor, validator *validator.Validate, cutoff time.Duration) *RoleService {
	return &RoleService{
		store:     store,
		tx:        tx,
		validator: validator,
		cutoff:    cutoff,
	}
}

// CreateRoleRequest represents the request to add a player to a team
type CreateRoleRequest struct {
	PlayerID uint             `json:"id" validate:"required"`
	Role     *models.TeamRole `json:"role" validate:"required"`
}

// UpdateRoleRequest represents the request to change a role
type UpdateRoleRequest struct {
	Role *models.TeamRole `json:"role" validate:"required"`
}

// List returns the players of a team, most committed first
func (s *RoleService) List(ctx context.Context, teamID uint) ([]RoleResponse, error) {
	if _, err := s.store.Teams.GetByID(teamID); err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}

	roles, err := s.store.Roles.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	resp := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, newRoleResponse(&roles[i]))
	}
	return resp, nil
}

// Create adds a player to a team. A player who joins with a settled role
// is invited to the team's upcoming games in the same transaction.
func (s *RoleService) Create(ctx context.Context, actor *permission.Actor, teamID uint, req *CreateRoleRequest) (*RoleResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	team, err := s.store.Teams.GetByID(teamID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	player, err := s.store.Users.GetByID(req.PlayerID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "player")
	}

	change := permission.RoleChange{SubjectID: player.ID, To: *req.Role}
	if !permission.CanChangeRole(actor, permission.ActionCreate, permission.NewTeamContext(team), change) {
		s.logDenied(ctx, permission.ActionCreate, team, change)
		return nil, apperrors.ErrPermissionDenied
	}

	role := &models.Role{PlayerID: player.ID, TeamID: team.ID, Role: *req.Role}
	err = s.tx.WithinTransaction(func(store *repository.Store) error {
		if err := store.Roles.Create(role); err != nil {
			return err
		}
		if role.Role.IsSettled() {
			return s.inviteToUpcomingGames(ctx, store, role)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	role.Player = player

	resp := newRoleResponse(role)
	return &resp, nil
}

// Update changes the role of a player. Accepting an invite or a join
// request invites the player to the team's upcoming games.
func (s *RoleService) Update(ctx context.Context, actor *permission.Actor, teamID, roleID uint, req *UpdateRoleRequest) (*RoleResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	team, role, err := s.load(teamID, roleID)
	if err != nil {
		return nil, err
	}

	change := permission.RoleChange{SubjectID: role.PlayerID, From: role.Role, To: *req.Role}
	if !permission.CanChangeRole(actor, permission.ActionUpdate, permission.NewTeamContext(team), change) {
		s.logDenied(ctx, permission.ActionUpdate, team, change)
		return nil, apperrors.ErrPermissionDenied
	}

	joined := role.Role.IsPending() && req.Role.IsSettled()
	role.Role = *req.Role
	err = s.tx.WithinTransaction(func(store *repository.Store) error {
		if err := store.Roles.Update(role); err != nil {
			return err
		}
		if joined {
			return s.inviteToUpcomingGames(ctx, store, role)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := newRoleResponse(role)
	return &resp, nil
}

// Delete removes a player from a team
func (s *RoleService) Delete(ctx context.Context, actor *permission.Actor, teamID, roleID uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	team, role, err := s.load(teamID, roleID)
	if err != nil {
		return err
	}

	change := permission.RoleChange{SubjectID: role.PlayerID, From: role.Role}
	if !permission.CanChangeRole(actor, permission.ActionDelete, permission.NewTeamContext(team), change) {
		s.logDenied(ctx, permission.ActionDelete, team, change)
		return apperrors.ErrPermissionDenied
	}

	if err := s.store.Roles.Delete(role.ID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (s *RoleService) inviteToUpcomingGames(ctx context.Context, store *repository.Store, role *models.Role) error {
	created, err := inviteJoinedPlayer(store, role.TeamID, role.PlayerID, time.Now().Add(-s.cutoff))
	if err != nil {
		return err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   role.TeamID,
		"player_id": role.PlayerID,
		"invites":   created,
	}).Debug("Invited new team member to upcoming games")
	return nil
}

// load fetches a team and one of its roles
func (s *RoleService) load(teamID, roleID uint) (*models.Team, *models.Role, error) {
	team, err := s.store.Teams.GetByID(teamID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	role, err := s.store.Roles.GetByID(roleID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrRoleNotFound, "role")
	}
	if role.TeamID != team.ID {
		return nil, nil, apperrors.ErrRoleNotFound
	}
	return team, role, nil
}

func (s *RoleService) logDenied(ctx context.Context, action permission.Action, team *models.Team, change permission.RoleChange) {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"action":  action.String(),
		"team_id": team.ID,
		"subject": change.SubjectID,
		"from":    int(change.From),
		"to":      int(change.To),
	}).Warn("Denied role change")
}
