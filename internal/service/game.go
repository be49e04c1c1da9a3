package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// GameService handles business logic for games
type GameService struct {
	store     *repository.Store
	tx        repository.Transactor
	validator *validator.Validate
	cutoff    time.Duration
}

// NewGameService creates a new game service. Games that started less than
// cutoff ago still count as upcoming.
func NewGameService(store *repository.Store, tx repository.Transactor, validator *validator.Validate, cutoff time.Duration) *GameService {
	return &GameService{
		store:     store,
		tx:        tx,
		validator: validator,
		cutoff:    cutoff,
	}
}

// LocationInput names a location to reuse or create
type LocationInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"max=255"`
}

// CreateGameRequest represents the request to schedule one or more games.
// Every datetime given produces one game.
type CreateGameRequest struct {
	Datetime    *time.Time     `json:"datetime"`
	Datetimes   []time.Time    `json:"datetimes"`
	Name        string         `json:"name" validate:"max=255"`
	Description string         `json:"description" validate:"max=255"`
	Duration    *int           `json:"duration" validate:"omitempty,min=0"`
	LocationID  *uint          `json:"location_id"`
	Location    *LocationInput `json:"location"`
	Teams       []uint         `json:"teams"`
}

// UpdateGameRequest represents the request to update a game. Nil fields are left as is.
type UpdateGameRequest struct {
	Datetime    *time.Time `json:"datetime"`
	Name        *string    `json:"name" validate:"omitempty,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=255"`
	Duration    *int       `json:"duration" validate:"omitempty,min=0"`
	LocationID  *uint      `json:"location_id"`
}

// GameListAction names a game list endpoint
type GameListAction int

const (
	GameListUpcoming GameListAction = iota
	GameListPickup
	GameListMine
	GameListInvites
	GameListTeam
)

// GameListOptions are the query options of a game list
type GameListOptions struct {
	All    bool // include past games
	TeamID uint // for GameListTeam
}

type gameListRule struct {
	requiresActor bool
	filter        func(opts GameListOptions, actorID uint) repository.GameFilter
}

var gameListRules = map[GameListAction]gameListRule{
	GameListUpcoming: {
		filter: func(GameListOptions, uint) repository.GameFilter {
			return repository.GameFilter{}
		},
	},
	GameListPickup: {
		filter: func(GameListOptions, uint) repository.GameFilter {
			return repository.GameFilter{PickupOnly: true}
		},
	},
	GameListMine: {
		requiresActor: true,
		filter: func(_ GameListOptions, actorID uint) repository.GameFilter {
			return repository.GameFilter{PlayerID: actorID, Membership: repository.GamesCommitted}
		},
	},
	GameListInvites: {
		requiresActor: true,
		filter: func(_ GameListOptions, actorID uint) repository.GameFilter {
			return repository.GameFilter{PlayerID: actorID, Membership: repository.GamesInvited}
		},
	},
	GameListTeam: {
		filter: func(opts GameListOptions, _ uint) repository.GameFilter {
			return repository.GameFilter{TeamID: opts.TeamID}
		},
	},
}

func (r *CreateGameRequest) datetimes() []time.Time {
	var all []time.Time
	if r.Datetime != nil {
		all = append(all, *r.Datetime)
	}
	return append(all, r.Datetimes...)
}

// gameName numbers the games of a series: "X", "X (2)", "X (3)" and so on
func gameName(name string, index int) string {
	if name == "" || index == 0 {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, index+1)
}

// Create schedules one game per datetime of the request. The games, their
// teams and their rosters are written in one transaction.
func (s *GameService) Create(ctx context.Context, actor *permission.Actor, req *CreateGameRequest) ([]GameResponse, error) {
	log := logger.WithContext(ctx)

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	datetimes := req.datetimes()
	if len(datetimes) == 0 {
		return nil, apperrors.ErrDatetimeRequired
	}
	if len(req.Teams) > models.MaxGameTeams {
		return nil, apperrors.ErrTooManyTeams
	}
	if len(req.Teams) == 2 && req.Teams[0] == req.Teams[1] {
		return nil, apperrors.NewValidationError("teams", "a team cannot play against itself")
	}
	if req.LocationID == nil && req.Location == nil {
		return nil, apperrors.ErrLocationRequired
	}

	var teams []models.Team
	if len(req.Teams) > 0 {
		found, err := s.store.Teams.GetByIDs(req.Teams)
		if err != nil {
			return nil, fmt.Errorf("failed to get teams: %w", err)
		}
		if len(found) != len(req.Teams) {
			return nil, apperrors.ErrTeamNotFound
		}
		teams = found
	}
	teamContexts := make([]permission.TeamContext, 0, len(teams))
	for i := range teams {
		teamContexts = append(teamContexts, permission.NewTeamContext(&teams[i]))
	}
	if !permission.CanScheduleGame(actor, teamContexts) {
		log.WithField("teams", req.Teams).Warn("Denied scheduling a game for teams the user does not manage")
		return nil, apperrors.ErrPermissionDenied
	}

	var locationID uint
	if req.LocationID != nil {
		location, err := s.store.Locations.GetByID(*req.LocationID)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrLocationNotFound, "location")
		}
		locationID = location.ID
	}

	gameIDs := make([]uint, 0, len(datetimes))
	err := s.tx.WithinTransaction(func(store *repository.Store) error {
		if locationID == 0 {
			location, err := store.Locations.GetOrCreate(req.Location.Name, req.Location.Address)
			if err != nil {
				return err
			}
			locationID = location.ID
		}

		for i, dt := range datetimes {
			game := &models.Game{
				Datetime:    dt,
				Name:        gameName(req.Name, i),
				Description: req.Description,
				Duration:    req.Duration,
				LocationID:  locationID,
				OrganizerID: actor.ID,
			}
			if err := store.Games.Create(game); err != nil {
				return err
			}
			for position, team := range teams {
				if err := store.Games.AttachTeam(game.ID, position, team.ID); err != nil {
					return err
				}
			}
			written, err := rsvpScheduledGame(store, game, teams, actor.ID)
			if err != nil {
				return err
			}
			log.WithFields(map[string]interface{}{
				"game_id": game.ID,
				"rsvps":   written,
			}).Debug("Filled roster of new game")
			gameIDs = append(gameIDs, game.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"games": len(gameIDs),
		"teams": len(teams),
	}).Info("Scheduled games")

	games := make([]GameResponse, 0, len(gameIDs))
	for _, id := range gameIDs {
		game, err := s.store.Games.GetByID(id)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrGameNotFound, "game")
		}
		games = append(games, newGameResponse(game))
	}
	return games, nil
}

// Get retrieves a game with its players
func (s *GameService) Get(ctx context.Context, actor *permission.Actor, id uint) (*GameDetailsResponse, error) {
	game, err := s.store.Games.GetDetails(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrGameNotFound, "game")
	}

	resp := newGameDetailsResponse(game)
	if actor != nil {
		for _, rsvp := range game.Rsvps {
			if rsvp.PlayerID == actor.ID {
				resp.annotate(repository.RsvpAnnotation{GameID: game.ID, Status: rsvp.Status, RsvpID: rsvp.ID})
			}
		}
	}
	return resp, nil
}

// Update changes the details of a game. Only the organizer may do so.
func (s *GameService) Update(ctx context.Context, actor *permission.Actor, id uint, req *UpdateGameRequest) (*GameResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	game, err := s.store.Games.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrGameNotFound, "game")
	}
	if !permission.CanEditGame(actor, gameContext(game)) {
		logger.WithContext(ctx).WithField("game_id", id).Warn("Denied game update")
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Datetime != nil {
		game.Datetime = *req.Datetime
	}
	if req.Name != nil {
		game.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		game.Description = *req.Description
	}
	if req.Duration != nil {
		game.Duration = req.Duration
	}
	if req.LocationID != nil && *req.LocationID != game.LocationID {
		location, err := s.store.Locations.GetByID(*req.LocationID)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrLocationNotFound, "location")
		}
		game.LocationID = location.ID
		game.Location = location
	}

	if err := s.store.Games.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	resp := newGameResponse(game)
	return &resp, nil
}

// Delete removes a game and its rsvps. Only the organizer may do so.
func (s *GameService) Delete(ctx context.Context, actor *permission.Actor, id uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	game, err := s.store.Games.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrGameNotFound, "game")
	}
	if !permission.CanEditGame(actor, gameContext(game)) {
		logger.WithContext(ctx).WithField("game_id", id).Warn("Denied game deletion")
		return apperrors.ErrPermissionDenied
	}

	if err := s.store.Games.Delete(id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// List returns the games of a list action, earliest first. Past games
// are left out unless opts.All is set. When an actor is given, every game
// carries the actor's own rsvp.
func (s *GameService) List(ctx context.Context, actor *permission.Actor, action GameListAction, opts GameListOptions) ([]GameResponse, error) {
	rule, ok := gameListRules[action]
	if !ok {
		return nil, apperrors.NewValidationError("action", "unknown game list")
	}
	if rule.requiresActor {
		if err := requireActor(actor); err != nil {
			return nil, err
		}
	}

	var actorID uint
	if actor != nil {
		actorID = actor.ID
	}

	if action == GameListTeam {
		if _, err := s.store.Teams.GetByID(opts.TeamID); err != nil {
			return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
		}
	}

	filter := rule.filter(opts, actorID)
	if !opts.All {
		since := time.Now().Add(-s.cutoff)
		filter.Since = &since
	}

	games, err := s.store.Games.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	resp := make([]GameResponse, 0, len(games))
	for i := range games {
		resp = append(resp, newGameResponse(&games[i]))
	}
	if actor == nil || len(games) == 0 {
		return resp, nil
	}

	ids := make([]uint, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	annotations, err := s.store.Games.GetRsvpAnnotations(actorID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvps: %w", err)
	}
	for i := range resp {
		if a, ok := annotations[resp[i].ID]; ok {
			resp[i].annotate(a)
		}
	}
	return resp, nil
}
