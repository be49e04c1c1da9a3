package service

import (
	"context"
	"fmt"
	"strings"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TeamService handles business logic for teams
type TeamService struct {
	store     *repository.Store
	tx        repository.Transactor
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store *repository.Store, tx repository.Transactor, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		tx:        tx,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=30"`
	Info        string          `json:"info" validate:"max=1000"`
	Type        models.TeamType `json:"type"`
	SlotsFemale int             `json:"slots_female" validate:"min=0"`
	SlotsMale   int             `json:"slots_male" validate:"min=0"`
}

// UpdateTeamRequest represents the request to update a team. Nil fields are left as is.
type UpdateTeamRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=30"`
	Info        *string          `json:"info" validate:"omitempty,max=1000"`
	Type        *models.TeamType `json:"type"`
	SlotsFemale *int             `json:"slots_female" validate:"omitempty,min=0"`
	SlotsMale   *int             `json:"slots_male" validate:"omitempty,min=0"`
}

// TeamListAction names a team list endpoint
type TeamListAction int

const (
	TeamListAll TeamListAction = iota
	TeamListMine
	TeamListManaged
	TeamListInvites
)

type teamListRule struct {
	requiresActor bool
	membership    repository.TeamMembership
}

var teamListRules = map[TeamListAction]teamListRule{
	TeamListAll:     {membership: repository.TeamsAll},
	TeamListMine:    {requiresActor: true, membership: repository.TeamsSettled},
	TeamListManaged: {requiresActor: true, membership: repository.TeamsManaged},
	TeamListInvites: {requiresActor: true, membership: repository.TeamsInvited},
}

// Create creates a team managed by its creator
func (s *TeamService) Create(ctx context.Context, actor *permission.Actor, req *CreateTeamRequest) (*TeamDetailsResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid team type")
	}

	team := &models.Team{
		Name:        req.Name,
		Info:        req.Info,
		Type:        req.Type,
		SlotsFemale: req.SlotsFemale,
		SlotsMale:   req.SlotsMale,
	}
	err := s.tx.WithinTransaction(func(store *repository.Store) error {
		if err := store.Teams.Create(team); err != nil {
			return err
		}
		return store.Teams.AddManager(team.ID, actor.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("Created team")
	return s.Get(ctx, team.ID)
}

// Get retrieves a team with its managers and players
func (s *TeamService) Get(ctx context.Context, id uint) (*TeamDetailsResponse, error) {
	team, err := s.store.Teams.GetDetails(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	return newTeamDetailsResponse(team), nil
}

// Update changes a team. Only its managers may do so.
func (s *TeamService) Update(ctx context.Context, actor *permission.Actor, id uint, req *UpdateTeamRequest) (*TeamDetailsResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Type != nil && !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid team type")
	}

	team, err := s.store.Teams.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	if !permission.CanEditTeam(actor, permission.NewTeamContext(team)) {
		logger.WithContext(ctx).WithField("team_id", id).Warn("Denied team update")
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Info != nil {
		team.Info = *req.Info
	}
	if req.Type != nil {
		team.Type = *req.Type
	}
	if req.SlotsFemale != nil {
		team.SlotsFemale = *req.SlotsFemale
	}
	if req.SlotsMale != nil {
		team.SlotsMale = *req.SlotsMale
	}
	if err := s.store.Teams.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete removes a team. Only its managers may do so.
func (s *TeamService) Delete(ctx context.Context, actor *permission.Actor, id uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	team, err := s.store.Teams.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	if !permission.CanEditTeam(actor, permission.NewTeamContext(team)) {
		logger.WithContext(ctx).WithField("team_id", id).Warn("Denied team deletion")
		return apperrors.ErrPermissionDenied
	}

	if err := s.store.Teams.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// List returns the teams of a list action ordered by name
func (s *TeamService) List(ctx context.Context, actor *permission.Actor, action TeamListAction) ([]TeamResponse, error) {
	rule, ok := teamListRules[action]
	if !ok {
		return nil, apperrors.NewValidationError("action", "unknown team list")
	}
	filter := repository.TeamFilter{Membership: rule.membership}
	if rule.requiresActor {
		if err := requireActor(actor); err != nil {
			return nil, err
		}
		filter.PlayerID = actor.ID
	}

	teams, err := s.store.Teams.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	resp := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, newTeamResponse(&teams[i]))
	}
	return resp, nil
}
