package service

import (
	"context"
	"fmt"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// RsvpService handles business logic for the players of a game
type RsvpService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewRsvpService creates a new rsvp service
func NewRsvpService(store *repository.Store, validator *validator.Validate) *RsvpService {
	return &RsvpService{
		store:     store,
		validator: validator,
	}
}

// CreateRsvpRequest represents the request to add a player to a game
type CreateRsvpRequest struct {
	PlayerID uint         `json:"id" validate:"required"`
	Rsvp     *models.Rsvp `json:"rsvp" validate:"required"`
	Team     *int         `json:"team"`
}

// UpdateRsvpRequest represents the request to change an rsvp
type UpdateRsvpRequest struct {
	Rsvp *models.Rsvp `json:"rsvp" validate:"required"`
}

// List returns the players of a game, most committed first
func (s *RsvpService) List(ctx context.Context, gameID uint) ([]RsvpResponse, error) {
	if _, err := s.store.Games.GetByID(gameID); err != nil {
		return nil, lookupError(err, apperrors.ErrGameNotFound, "game")
	}

	rsvps, err := s.store.Rsvps.GetByGameID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvps: %w", err)
	}
	resp := make([]RsvpResponse, 0, len(rsvps))
	for i := range rsvps {
		resp = append(resp, newRsvpResponse(&rsvps[i]))
	}
	return resp, nil
}

// Create adds a player to a game with the requested status
func (s *RsvpService) Create(ctx context.Context, actor *permission.Actor, gameID uint, req *CreateRsvpRequest) (*RsvpResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.Rsvp.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	game, err := s.store.Games.GetByID(gameID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrGameNotFound, "game")
	}
	gctx := gameContext(game)

	team := models.NoTeam
	if req.Team != nil {
		team = *req.Team
	}
	if !gctx.ValidTeamIndex(team) {
		return nil, apperrors.ErrInvalidTeamIndex
	}

	player, err := s.store.Users.GetByID(req.PlayerID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "player")
	}

	change := permission.RsvpChange{SubjectID: player.ID, Team: team, To: *req.Rsvp}
	if !permission.CanChangeRsvp(actor, permission.ActionCreate, gctx, change) {
		s.logDenied(ctx, permission.ActionCreate, game, change)
		return nil, apperrors.ErrPermissionDenied
	}

	rsvp := &models.RsvpStatus{
		GameID:   game.ID,
		PlayerID: player.ID,
		Status:   *req.Rsvp,
		Team:     team,
	}
	if err := s.store.Rsvps.Create(rsvp); err != nil {
		return nil, err
	}
	rsvp.Player = player

	resp := newRsvpResponse(rsvp)
	return &resp, nil
}

// Update changes the status of an rsvp
func (s *RsvpService) Update(ctx context.Context, actor *permission.Actor, gameID, rsvpID uint, req *UpdateRsvpRequest) (*RsvpResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !req.Rsvp.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	game, rsvp, err := s.load(gameID, rsvpID)
	if err != nil {
		return nil, err
	}

	change := permission.RsvpChange{SubjectID: rsvp.PlayerID, Team: rsvp.Team, From: rsvp.Status, To: *req.Rsvp}
	if !permission.CanChangeRsvp(actor, permission.ActionUpdate, gameContext(game), change) {
		s.logDenied(ctx, permission.ActionUpdate, game, change)
		return nil, apperrors.ErrPermissionDenied
	}

	rsvp.Status = *req.Rsvp
	if err := s.store.Rsvps.Update(rsvp); err != nil {
		return nil, fmt.Errorf("failed to update rsvp: %w", err)
	}

	resp := newRsvpResponse(rsvp)
	return &resp, nil
}

// Delete removes a player from a game
func (s *RsvpService) Delete(ctx context.Context, actor *permission.Actor, gameID, rsvpID uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	game, rsvp, err := s.load(gameID, rsvpID)
	if err != nil {
		return err
	}

	change := permission.RsvpChange{SubjectID: rsvp.PlayerID, Team: rsvp.Team, From: rsvp.Status}
	if !permission.CanChangeRsvp(actor, permission.ActionDelete, gameContext(game), change) {
		s.logDenied(ctx, permission.ActionDelete, game, change)
		return apperrors.ErrPermissionDenied
	}

	if err := s.store.Rsvps.Delete(rsvp.ID); err != nil {
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}
	return nil
}

// load fetches a game and one of its rsvps
func (s *RsvpService) load(gameID, rsvpID uint) (*models.Game, *models.RsvpStatus, error) {
	game, err := s.store.Games.GetByID(gameID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrGameNotFound, "game")
	}
	rsvp, err := s.store.Rsvps.GetByID(rsvpID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrRsvpNotFound, "rsvp")
	}
	if rsvp.GameID != game.ID {
		return nil, nil, apperrors.ErrRsvpNotFound
	}
	return game, rsvp, nil
}

func (s *RsvpService) logDenied(ctx context.Context, action permission.Action, game *models.Game, change permission.RsvpChange) {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"action":  action.String(),
		"game_id": game.ID,
		"subject": change.SubjectID,
		"from":    int(change.From),
		"to":      int(change.To),
	}).Warn("Denied rsvp change")
}
