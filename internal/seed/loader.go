package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pickup-sports-backend/internal/database/models"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"
	"pickup-sports-backend/internal/repository"
	"pickup-sports-backend/internal/service"

	"gorm.io/gorm"
)

// GameScheduler creates games with their rosters
type GameScheduler interface {
	Create(ctx context.Context, actor *permission.Actor, req *service.CreateGameRequest) ([]service.GameResponse, error)
}

// Result counts the records a load created. Existing records are reused.
type Result struct {
	Users     int
	Locations int // every location given, created or found
	Teams     int
	Games     int
}

// Loader writes fixtures to the database. Loading the same fixtures twice
// creates nothing the second time.
type Loader struct {
	store *repository.Store
	games GameScheduler
	now   func() time.Time
}

// NewLoader creates a loader. Games go through games so that their
// rosters are filled the same way as games scheduled over the API.
func NewLoader(store *repository.Store, games GameScheduler) *Loader {
	return &Loader{store: store, games: games, now: time.Now}
}

type loadState struct {
	users     map[string]*models.User
	locations map[string]*models.Location
	teams     map[string]*models.Team
}

// Load writes f, users first and games last
func (l *Loader) Load(ctx context.Context, f *Fixtures) (*Result, error) {
	log := logger.WithContext(ctx)
	result := &Result{}
	state := &loadState{
		users:     make(map[string]*models.User),
		locations: make(map[string]*models.Location),
		teams:     make(map[string]*models.Team),
	}

	for _, data := range f.Users {
		created, err := l.loadUser(state, data)
		if err != nil {
			return result, fmt.Errorf("failed to create user %s: %w", data.Username, err)
		}
		if created {
			result.Users++
		}
	}
	log.WithFields(map[string]interface{}{"created": result.Users, "total": len(f.Users)}).Info("Loaded users")

	for _, data := range f.Locations {
		location, err := l.store.Locations.GetOrCreate(data.Name, data.Address)
		if err != nil {
			return result, fmt.Errorf("failed to create location %s: %w", data.Name, err)
		}
		result.Locations++
		state.locations[data.Name] = location
	}
	log.WithField("total", len(f.Locations)).Info("Loaded locations")

	if len(f.Teams) > 0 {
		existing, err := l.store.Teams.List(repository.TeamFilter{Membership: repository.TeamsAll})
		if err != nil {
			return result, fmt.Errorf("failed to list teams: %w", err)
		}
		for i := range existing {
			state.teams[existing[i].Name] = &existing[i]
		}
	}
	for _, data := range f.Teams {
		created, err := l.loadTeam(state, data)
		if err != nil {
			return result, fmt.Errorf("failed to create team %s: %w", data.Name, err)
		}
		if created {
			result.Teams++
		}
	}
	log.WithFields(map[string]interface{}{"created": result.Teams, "total": len(f.Teams)}).Info("Loaded teams")

	if len(f.Games) > 0 {
		existing, err := l.store.Games.List(repository.GameFilter{})
		if err != nil {
			return result, fmt.Errorf("failed to list games: %w", err)
		}
		seen := make(map[string]bool, len(existing))
		for _, g := range existing {
			seen[gameKey(g.Name, g.OrganizerID, g.Datetime)] = true
		}
		now := l.now()
		for _, data := range f.Games {
			created, err := l.loadGame(ctx, state, seen, data, now)
			if err != nil {
				return result, fmt.Errorf("failed to create game %s: %w", data.Name, err)
			}
			if created {
				result.Games++
			}
		}
	}
	log.WithFields(map[string]interface{}{"created": result.Games, "total": len(f.Games)}).Info("Loaded games")

	return result, nil
}

func (l *Loader) loadUser(state *loadState, data UserData) (bool, error) {
	user, err := l.store.Users.GetByUsername(data.Username)
	if err == nil {
		state.users[data.Username] = user
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	user = &models.User{
		Username:    data.Username,
		Email:       data.Email,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Bio:         data.Bio,
		Phone:       data.Phone,
		Gender:      data.Gender,
		IsSuperuser: data.IsSuperuser,
	}
	if err := l.store.Users.Create(user); err != nil {
		return false, err
	}
	state.users[data.Username] = user
	return true, nil
}

// user resolves a username from the fixtures or the database
func (l *Loader) user(state *loadState, username string) (*models.User, error) {
	if user, ok := state.users[username]; ok {
		return user, nil
	}
	user, err := l.store.Users.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("unknown user %q", username)
	}
	if err != nil {
		return nil, err
	}
	state.users[username] = user
	return user, nil
}

func (l *Loader) loadTeam(state *loadState, data TeamData) (bool, error) {
	if _, ok := state.teams[data.Name]; ok {
		return false, nil
	}

	team := &models.Team{
		Name:        data.Name,
		Info:        data.Info,
		Type:        teamTypes[data.Type],
		SlotsFemale: data.SlotsFemale,
		SlotsMale:   data.SlotsMale,
	}
	if err := l.store.Teams.Create(team); err != nil {
		return false, err
	}
	for _, username := range data.Managers {
		manager, err := l.user(state, username)
		if err != nil {
			return false, err
		}
		if err := l.store.Teams.AddManager(team.ID, manager.ID); err != nil {
			return false, err
		}
		team.Managers = append(team.Managers, *manager)
	}
	for _, p := range data.Players {
		player, err := l.user(state, p.Username)
		if err != nil {
			return false, err
		}
		err = l.store.Roles.Create(&models.Role{PlayerID: player.ID, TeamID: team.ID, Role: teamRoles[p.Role]})
		if err != nil {
			return false, err
		}
	}

	state.teams[data.Name] = team
	return true, nil
}

func gameKey(name string, organizerID uint, at time.Time) string {
	return fmt.Sprintf("%s|%d|%d", name, organizerID, at.Unix())
}

func (l *Loader) loadGame(ctx context.Context, state *loadState, seen map[string]bool, data GameData, now time.Time) (bool, error) {
	organizer, err := l.user(state, data.Organizer)
	if err != nil {
		return false, err
	}
	at := data.at(now)
	key := gameKey(data.Name, organizer.ID, at)
	if seen[key] {
		return false, nil
	}

	location, ok := state.locations[data.Location]
	if !ok {
		return false, fmt.Errorf("unknown location %q", data.Location)
	}
	req := &service.CreateGameRequest{
		Datetime:    &at,
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		LocationID:  &location.ID,
	}
	for _, name := range data.Teams {
		team, ok := state.teams[name]
		if !ok {
			return false, fmt.Errorf("unknown team %q", name)
		}
		req.Teams = append(req.Teams, team.ID)
	}

	games, err := l.games.Create(ctx, permission.NewActor(organizer), req)
	if err != nil {
		return false, err
	}
	if len(games) == 0 {
		return false, fmt.Errorf("no game was created")
	}

	for _, p := range data.Players {
		player, err := l.user(state, p.Username)
		if err != nil {
			return false, err
		}
		team := models.NoTeam
		if p.Team != nil {
			team = *p.Team
		}
		err = l.store.Rsvps.Upsert(&models.RsvpStatus{
			GameID:   games[0].ID,
			PlayerID: player.ID,
			Status:   rsvps[p.Rsvp],
			Team:     team,
		})
		if err != nil {
			return false, err
		}
	}

	seen[key] = true
	return true, nil
}
