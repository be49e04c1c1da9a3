package seed

import (
	"fmt"
	"os"
	"time"

	"pickup-sports-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Fixtures is the content of a seed file. Entities refer to each other by
// username, location name and team name.
type Fixtures struct {
	Users     []UserData     `yaml:"users"`
	Locations []LocationData `yaml:"locations"`
	Teams     []TeamData     `yaml:"teams"`
	Games     []GameData     `yaml:"games"`
}

type UserData struct {
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Bio         string `yaml:"bio"`
	Phone       string `yaml:"phone"`
	Gender      string `yaml:"gender"`
	IsSuperuser bool   `yaml:"is_superuser"`
}

type LocationData struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type TeamData struct {
	Name        string       `yaml:"name"`
	Info        string       `yaml:"info"`
	Type        string       `yaml:"type"` // coed, female or male
	SlotsFemale int          `yaml:"slots_female"`
	SlotsMale   int          `yaml:"slots_male"`
	Managers    []string     `yaml:"managers"`
	Players     []PlayerData `yaml:"players"`
}

type PlayerData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

// GameData describes one game. Datetime is absolute; In is an offset from
// load time such as "72h" and keeps fixtures upcoming.
type GameData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Datetime    *time.Time `yaml:"datetime"`
	In          string     `yaml:"in"`
	Duration    *int       `yaml:"duration"`
	Location    string     `yaml:"location"`
	Organizer   string     `yaml:"organizer"`
	Teams       []string   `yaml:"teams"`
	Players     []RsvpData `yaml:"players"`
}

type RsvpData struct {
	Username string `yaml:"username"`
	Rsvp     string `yaml:"rsvp"`
	Team     *int   `yaml:"team"`
}

var teamTypes = map[string]models.TeamType{
	"":       models.TeamTypeCoed,
	"coed":   models.TeamTypeCoed,
	"female": models.TeamTypeFemale,
	"male":   models.TeamTypeMale,
}

var teamRoles = map[string]models.TeamRole{
	"requested":  models.TeamRoleRequestedToJoin,
	"invited":    models.TeamRoleInvited,
	"inactive":   models.TeamRoleInactive,
	"substitute": models.TeamRoleSubstitute,
	"field":      models.TeamRoleField,
	"captain":    models.TeamRoleCaptain,
}

var rsvps = map[string]models.Rsvp{
	"requested": models.RsvpRequestedToJoin,
	"invited":   models.RsvpInvited,
	"not_going": models.RsvpNotGoing,
	"uncertain": models.RsvpUncertain,
	"going":     models.RsvpGoing,
}

// LoadFile reads fixtures from a YAML file
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and checks YAML fixtures
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixtures) check() error {
	for _, t := range f.Teams {
		if _, ok := teamTypes[t.Type]; !ok {
			return fmt.Errorf("team %q: unknown type %q", t.Name, t.Type)
		}
		for _, p := range t.Players {
			if _, ok := teamRoles[p.Role]; !ok {
				return fmt.Errorf("team %q: unknown role %q for %s", t.Name, p.Role, p.Username)
			}
		}
	}
	for _, g := range f.Games {
		if g.Datetime == nil && g.In == "" {
			return fmt.Errorf("game %q: datetime or in is required", g.Name)
		}
		if g.In != "" {
			if _, err := time.ParseDuration(g.In); err != nil {
				return fmt.Errorf("game %q: %w", g.Name, err)
			}
		}
		for _, p := range g.Players {
			if _, ok := rsvps[p.Rsvp]; !ok {
				return fmt.Errorf("game %q: unknown rsvp %q for %s", g.Name, p.Rsvp, p.Username)
			}
		}
	}
	return nil
}

// at resolves the start of the game relative to now
func (g *GameData) at(now time.Time) time.Time {
	if g.Datetime != nil {
		return *g.Datetime
	}
	d, _ := time.ParseDuration(g.In)
	return now.Add(d).Truncate(time.Minute)
}
