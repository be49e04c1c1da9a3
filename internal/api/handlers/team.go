package handlers

import (
	"net/http"

	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
	roleService service.RoleServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, roleService service.RoleServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		roleService: roleService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team managed by the caller
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamDetailsResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), auth.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team with its managers and players
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamDetailsResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Change a team. Only its managers may do so.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} service.TeamDetailsResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a manager"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), auth.ActorFromContext(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Param id path int true "Team ID"
// @Success 204 "Team deleted"
// @Failure 403 {object} ErrorResponse "Not a manager"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), auth.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	h.list(c, service.TeamListAll)
}

// ListMyTeams handles GET /teams/my
// @Summary List my teams
// @Description List teams the caller is a member of
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /teams/my [get]
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	h.list(c, service.TeamListMine)
}

// ListManagedTeams handles GET /teams/managed
// @Summary List teams I manage
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /teams/managed [get]
func (h *TeamHandler) ListManagedTeams(c *gin.Context) {
	h.list(c, service.TeamListManaged)
}

// ListTeamInvites handles GET /teams/invites
// @Summary List my team invites
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /teams/invites [get]
func (h *TeamHandler) ListTeamInvites(c *gin.Context) {
	h.list(c, service.TeamListInvites)
}

func (h *TeamHandler) list(c *gin.Context, action service.TeamListAction) {
	teams, err := h.teamService.List(c.Request.Context(), auth.ActorFromContext(c), action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// ListPlayers handles GET /teams/:id/players
// @Summary List players of a team
// @Description List the roles of a team, most committed first
// @Tags roles
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.RoleResponse "Players"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id}/players [get]
func (h *TeamHandler) ListPlayers(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}

	roles, err := h.roleService.List(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roles)
}

// AddPlayer handles POST /teams/:id/players
// @Summary Add a player to a team
// @Description Ask to join a team, or invite another player as a manager
// @Tags roles
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param role body service.CreateRoleRequest true "Player and role"
// @Success 201 {object} service.RoleResponse "Created role"
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Team or player not found"
// @Failure 409 {object} ErrorResponse "Player already has a role"
// @Security BearerAuth
// @Router /teams/{id}/players [post]
func (h *TeamHandler) AddPlayer(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.CreateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), auth.ActorFromContext(c), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

// UpdatePlayer handles PUT and PATCH /teams/:id/players/:roleId
// @Summary Change a role
// @Description Answer a team invite, change a role, or accept a join request
// @Tags roles
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param roleId path int true "Role ID"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.RoleResponse "Updated role"
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Team or role not found"
// @Security BearerAuth
// @Router /teams/{id}/players/{roleId} [put]
func (h *TeamHandler) UpdatePlayer(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleId")
	if !ok {
		return
	}
	var req service.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.roleService.Update(c.Request.Context(), auth.ActorFromContext(c), teamID, roleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// RemovePlayer handles DELETE /teams/:id/players/:roleId
// @Summary Remove a player from a team
// @Tags roles
// @Param id path int true "Team ID"
// @Param roleId path int true "Role ID"
// @Success 204 "Role deleted"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Team or role not found"
// @Security BearerAuth
// @Router /teams/{id}/players/{roleId} [delete]
func (h *TeamHandler) RemovePlayer(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleId")
	if !ok {
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), auth.ActorFromContext(c), teamID, roleID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
