package handlers

import (
	"net/http"
	"strings"

	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// CreateLocation handles POST /locations
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Created location"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Location already exists"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), auth.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// GetLocation handles GET /locations/:id
// @Summary Get location by ID
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} service.LocationResponse "Location"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	location, err := h.locationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// SearchLocations handles GET /locations
// @Summary Search locations
// @Description List locations whose name or address contains q
// @Tags locations
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} service.LocationResponse "Locations"
// @Router /locations [get]
func (h *LocationHandler) SearchLocations(c *gin.Context) {
	locations, err := h.locationService.Search(c.Request.Context(), strings.TrimSpace(c.Query("q")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}
