package handlers

import (
	"net/http"

	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RsvpHandler handles HTTP requests for the players of a game
type RsvpHandler struct {
	rsvpService service.RsvpServiceInterface
}

// NewRsvpHandler creates a new rsvp handler
func NewRsvpHandler(rsvpService service.RsvpServiceInterface) *RsvpHandler {
	return &RsvpHandler{
		rsvpService: rsvpService,
	}
}

// ListPlayers handles GET /games/:id/players
// @Summary List players of a game
// @Description List the rsvps of a game, most committed first
// @Tags rsvps
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {array} service.RsvpResponse "Players"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Router /games/{id}/players [get]
func (h *RsvpHandler) ListPlayers(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rsvps, err := h.rsvpService.List(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rsvps)
}

// AddPlayer handles POST /games/:id/players
// @Summary Add a player to a game
// @Description Join a game, ask to join it, or invite another player
// @Tags rsvps
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param rsvp body service.CreateRsvpRequest true "Player and status"
// @Success 201 {object} service.RsvpResponse "Created rsvp"
// @Failure 400 {object} ErrorResponse "Invalid status or team index"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Game or player not found"
// @Failure 409 {object} ErrorResponse "Player already has an rsvp"
// @Security BearerAuth
// @Router /games/{id}/players [post]
func (h *RsvpHandler) AddPlayer(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.CreateRsvpRequest
	if !bindJSON(c, &req) {
		return
	}

	rsvp, err := h.rsvpService.Create(c.Request.Context(), auth.ActorFromContext(c), gameID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rsvp)
}

// UpdatePlayer handles PUT and PATCH /games/:id/players/:rsvpId
// @Summary Change an rsvp
// @Description Answer an invite, change an answer, or accept a join request
// @Tags rsvps
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param rsvpId path int true "Rsvp ID"
// @Param rsvp body service.UpdateRsvpRequest true "New status"
// @Success 200 {object} service.RsvpResponse "Updated rsvp"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Game or rsvp not found"
// @Security BearerAuth
// @Router /games/{id}/players/{rsvpId} [put]
func (h *RsvpHandler) UpdatePlayer(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rsvpID, ok := parseID(c, "rsvpId")
	if !ok {
		return
	}
	var req service.UpdateRsvpRequest
	if !bindJSON(c, &req) {
		return
	}

	rsvp, err := h.rsvpService.Update(c.Request.Context(), auth.ActorFromContext(c), gameID, rsvpID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rsvp)
}

// RemovePlayer handles DELETE /games/:id/players/:rsvpId
// @Summary Remove a player from a game
// @Tags rsvps
// @Param id path int true "Game ID"
// @Param rsvpId path int true "Rsvp ID"
// @Success 204 "Rsvp deleted"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Game or rsvp not found"
// @Security BearerAuth
// @Router /games/{id}/players/{rsvpId} [delete]
func (h *RsvpHandler) RemovePlayer(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rsvpID, ok := parseID(c, "rsvpId")
	if !ok {
		return
	}

	if err := h.rsvpService.Delete(c.Request.Context(), auth.ActorFromContext(c), gameID, rsvpID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
