package service

import (
	"time"

	"pickup-sports-backend/internal/database/models"
	"pickup-sports-backend/internal/repository"
)

// UserSummary is the short form of a user embedded in other responses
type UserSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserResponse is the public profile of a user
type UserResponse struct {
	UserSummary
	Bio    string `json:"bio"`
	Gender string `json:"gender"`
}

// CurrentUserResponse is the profile of the authenticated user
type CurrentUserResponse struct {
	UserResponse
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	IsSuperuser  bool          `json:"is_superuser"`
	ManagedTeams []TeamSummary `json:"managed_teams"`
}

// LocationResponse represents a location
type LocationResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
}

// TeamSummary is the short form of a team embedded in other responses
type TeamSummary struct {
	ID   uint            `json:"id"`
	Name string          `json:"name"`
	Type models.TeamType `json:"type"`
}

// TeamResponse represents a team in lists
type TeamResponse struct {
	TeamSummary
	TypeDisplay string        `json:"type_display"`
	Info        string        `json:"info"`
	SlotsFemale int           `json:"slots_female"`
	SlotsMale   int           `json:"slots_male"`
	Managers    []UserSummary `json:"managers"`
}

// TeamDetailsResponse is a team with its players
type TeamDetailsResponse struct {
	TeamResponse
	Players []RoleResponse `json:"players"`
}

// RoleResponse represents the membership of a player in a team
type RoleResponse struct {
	ID          uint            `json:"id"`
	TeamID      uint            `json:"team_id"`
	Player      UserSummary     `json:"player"`
	Role        models.TeamRole `json:"role"`
	RoleDisplay string          `json:"role_display"`
}

// RsvpResponse represents the rsvp of a player for a game
type RsvpResponse struct {
	ID          uint        `json:"id"`
	GameID      uint        `json:"game_id"`
	Player      UserSummary `json:"player"`
	Rsvp        models.Rsvp `json:"rsvp"`
	RsvpDisplay string      `json:"rsvp_display"`
	Team        int         `json:"team"`
}

// GameResponse represents a game in lists. Rsvp and RsvpID carry the
// requesting player's own rsvp and are null when there is none.
type GameResponse struct {
	ID          uint             `json:"id"`
	Datetime    time.Time        `json:"datetime"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Duration    *int             `json:"duration"`
	Location    LocationResponse `json:"location"`
	Organizer   UserSummary      `json:"organizer"`
	Teams       []TeamSummary    `json:"teams"`
	IsPickup    bool             `json:"is_pickup"`
	Rsvp        *models.Rsvp     `json:"rsvp"`
	RsvpID      *uint            `json:"rsvp_id"`
}

// GameDetailsResponse is a game with its players
type GameDetailsResponse struct {
	GameResponse
	Players []RsvpResponse `json:"players"`
}

func newUserSummary(u *models.User) UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{ID: u.ID, Username: u.Username, FirstName: u.FirstName, LastName: u.LastName}
}

func newUserResponse(u *models.User) *UserResponse {
	return &UserResponse{UserSummary: newUserSummary(u), Bio: u.Bio, Gender: u.Gender}
}

func newCurrentUserResponse(u *models.User) *CurrentUserResponse {
	resp := &CurrentUserResponse{
		UserResponse: *newUserResponse(u),
		Email:        u.Email,
		Phone:        u.Phone,
		IsSuperuser:  u.IsSuperuser,
		ManagedTeams: make([]TeamSummary, 0, len(u.ManagedTeams)),
	}
	for i := range u.ManagedTeams {
		resp.ManagedTeams = append(resp.ManagedTeams, newTeamSummary(&u.ManagedTeams[i]))
	}
	return resp
}

func newLocationResponse(l *models.Location) LocationResponse {
	if l == nil {
		return LocationResponse{}
	}
	return LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address, Latitude: l.Latitude, Longitude: l.Longitude}
}

func newTeamSummary(t *models.Team) TeamSummary {
	return TeamSummary{ID: t.ID, Name: t.Name, Type: t.Type}
}

func newTeamResponse(t *models.Team) TeamResponse {
	resp := TeamResponse{
		TeamSummary: newTeamSummary(t),
		TypeDisplay: t.Type.String(),
		Info:        t.Info,
		SlotsFemale: t.SlotsFemale,
		SlotsMale:   t.SlotsMale,
		Managers:    make([]UserSummary, 0, len(t.Managers)),
	}
	for i := range t.Managers {
		resp.Managers = append(resp.Managers, newUserSummary(&t.Managers[i]))
	}
	return resp
}

func newTeamDetailsResponse(t *models.Team) *TeamDetailsResponse {
	resp := &TeamDetailsResponse{
		TeamResponse: newTeamResponse(t),
		Players:      make([]RoleResponse, 0, len(t.Roles)),
	}
	for i := range t.Roles {
		resp.Players = append(resp.Players, newRoleResponse(&t.Roles[i]))
	}
	return resp
}

func newRoleResponse(r *models.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		TeamID:      r.TeamID,
		Player:      newUserSummary(r.Player),
		Role:        r.Role,
		RoleDisplay: r.Role.String(),
	}
}

func newRsvpResponse(r *models.RsvpStatus) RsvpResponse {
	return RsvpResponse{
		ID:          r.ID,
		GameID:      r.GameID,
		Player:      newUserSummary(r.Player),
		Rsvp:        r.Status,
		RsvpDisplay: r.Status.String(),
		Team:        r.Team,
	}
}

func newGameResponse(g *models.Game) GameResponse {
	resp := GameResponse{
		ID:          g.ID,
		Datetime:    g.Datetime,
		Name:        g.Name,
		Description: g.Description,
		Duration:    g.Duration,
		Location:    newLocationResponse(g.Location),
		Organizer:   newUserSummary(g.Organizer),
		Teams:       make([]TeamSummary, 0, len(g.GameTeams)),
		IsPickup:    g.IsPickup(),
	}
	for _, gt := range g.GameTeams {
		if gt.Team != nil {
			resp.Teams = append(resp.Teams, newTeamSummary(gt.Team))
		} else {
			resp.Teams = append(resp.Teams, TeamSummary{ID: gt.TeamID})
		}
	}
	return resp
}

func (r *GameResponse) annotate(a repository.RsvpAnnotation) {
	status, id := a.Status, a.RsvpID
	r.Rsvp = &status
	r.RsvpID = &id
}

func newGameDetailsResponse(g *models.Game) *GameDetailsResponse {
	resp := &GameDetailsResponse{
		GameResponse: newGameResponse(g),
		Players:      make([]RsvpResponse, 0, len(g.Rsvps)),
	}
	for i := range g.Rsvps {
		resp.Players = append(resp.Players, newRsvpResponse(&g.Rsvps[i]))
	}
	return resp
}
