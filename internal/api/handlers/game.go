package handlers

import (
	"net/http"
	"strconv"

	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for game operations
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateGame handles POST /games
// @Summary Schedule games
// @Description Schedule one game per datetime given. Games of a series are named "X", "X (2)" and so on.
// @Tags games
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {array} service.GameResponse "Scheduled games"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not a manager of every team"
// @Failure 404 {object} ErrorResponse "Team or location not found"
// @Security BearerAuth
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	games, err := h.gameService.Create(c.Request.Context(), auth.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, games)
}

// GetGame handles GET /games/:id
// @Summary Get game by ID
// @Description Get a game with its location, organizer, teams and players
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} service.GameDetailsResponse "Game details"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.Get(c.Request.Context(), auth.ActorFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// UpdateGame handles PUT /games/:id
// @Summary Update a game
// @Description Change the details of a game. Only the organizer may do so.
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body service.UpdateGameRequest true "Fields to change"
// @Success 200 {object} service.GameResponse "Updated game"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the organizer"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	game, err := h.gameService.Update(c.Request.Context(), auth.ActorFromContext(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE /games/:id
// @Summary Delete a game
// @Description Delete a game and its players. Only the organizer may do so.
// @Tags games
// @Param id path int true "Game ID"
// @Success 204 "Game deleted"
// @Failure 403 {object} ErrorResponse "Not the organizer"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), auth.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListGames handles GET /games
// @Summary List upcoming games
// @Description List games earliest first. Past games are included when all is true.
// @Tags games
// @Produce json
// @Param all query bool false "Include past games"
// @Success 200 {array} service.GameResponse "Games"
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	h.list(c, service.GameListUpcoming, 0)
}

// ListPickupGames handles GET /games/pickup
// @Summary List pickup games
// @Description List games without teams
// @Tags games
// @Produce json
// @Param all query bool false "Include past games"
// @Success 200 {array} service.GameResponse "Games"
// @Router /games/pickup [get]
func (h *GameHandler) ListPickupGames(c *gin.Context) {
	h.list(c, service.GameListPickup, 0)
}

// ListMyGames handles GET /games/my
// @Summary List my games
// @Description List games the caller has answered
// @Tags games
// @Produce json
// @Param all query bool false "Include past games"
// @Success 200 {array} service.GameResponse "Games"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /games/my [get]
func (h *GameHandler) ListMyGames(c *gin.Context) {
	h.list(c, service.GameListMine, 0)
}

// ListGameInvites handles GET /games/invites
// @Summary List my game invites
// @Description List games the caller is invited to and has not answered
// @Tags games
// @Produce json
// @Param all query bool false "Include past games"
// @Success 200 {array} service.GameResponse "Games"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /games/invites [get]
func (h *GameHandler) ListGameInvites(c *gin.Context) {
	h.list(c, service.GameListInvites, 0)
}

// ListTeamGames handles GET /teams/:id/games
// @Summary List games of a team
// @Tags games
// @Produce json
// @Param id path int true "Team ID"
// @Param all query bool false "Include past games"
// @Success 200 {array} service.GameResponse "Games"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id}/games [get]
func (h *GameHandler) ListTeamGames(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.list(c, service.GameListTeam, id)
}

func (h *GameHandler) list(c *gin.Context, action service.GameListAction, teamID uint) {
	all := false
	if raw := c.Query("all"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid all parameter"})
			return
		}
		all = parsed
	}

	games, err := h.gameService.List(c.Request.Context(), auth.ActorFromContext(c), action, service.GameListOptions{All: all, TeamID: teamID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}
