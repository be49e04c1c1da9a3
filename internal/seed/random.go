package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// RandomPrefix marks generated usernames so they can be told apart from real accounts
const RandomPrefix = "_rndgnd"

// MaxRandomUsers bounds a generated user population
const MaxRandomUsers = 5000

var teamNames = []string{
	"Kickballers", "Real Madrid", "Dortmund", "Manchester United",
	"Atlético Madrid", "Arsenal", "Milan", "Manchester City", "Chelsea",
	"Barcelona", "The Tigers", "Goaldiggers", "Obstruction", "Ball Busters",
	"Danger Zone", "Blackout", "Team has no name", "Highly Unstable",
	"Honey Badgers", "The Gunners", "Dirty Martini United", "Team Iceland",
	"Tangarang United", "Benchwarmers", "Kasik's Greatest Hits",
	"Purple Drank FC", "Come-Back Kids", "Shark Week", "We'll Let You Know",
	"Cuervos FC", "Team E", "Not the Beeeees!", "Libertad FC", "Team D",
	"The BlueTang Clan",
}

// three male teams for every two coed
var randomTeamTypes = []string{"male", "male", "male", "coed", "coed"}

var randomLocations = []LocationData{
	{Name: "Granite Bay Park", Address: "6010 Douglas Blvd., Granite Bay, CA 95746"},
	{Name: "Granite Regional Park", Address: "Ramona and Power Inn, Sacramento, CA 95812"},
	{Name: "Grant Park, Midtown", Address: "205 21st St, Sacramento, CA 95811"},
	{Name: "Hagginwood Park", Address: "3271 Marysville Blvd, Sacramento, CA 95815"},
	{Name: "Kemp Park 2", Address: "1322 Bundrick Dr, Folsom, CA 95630"},
	{Name: "Kemp Park, Folsom", Address: "1322 Bundrick Dr, Folsom, CA 95630"},
	{Name: "Peterson Park, Lodi", Address: "2715 W Elm St, Lodi, CA 95242"},
}

var femaleNames = []string{"Olivia", "Emma", "Ava", "Sophia", "Mia", "Amelia", "Harper", "Evelyn", "Abigail", "Emily", "Ella", "Grace"}
var maleNames = []string{"Liam", "Noah", "William", "James", "Logan", "Benjamin", "Mason", "Elijah", "Oliver", "Jacob", "Lucas", "Michael"}
var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Wilson", "Anderson"}

var bios = []string{
	"Test User. Please Ignore",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit",
	"Fusce at odio velit. Phasellus magna eros, blandit in odio luctus",
	"Donec volutpat in ante sed feugiat. Donec tempor dapibus justo vel dapibus",
	"Nulla feugiat efficitur enim, quis luctus nisl laoreet sit amet",
	"Pellentesque viverra ante sed tortor pretium sollicitudin",
}

var gameDurations = []int{40, 45, 90}

// RandomOptions sizes a generated data set
type RandomOptions struct {
	Users int
	Games int
	Teams bool
}

// Generator builds random fixtures for development databases
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a generator. The same seed gives the same fixtures.
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate builds users, the test locations, optionally teams with
// rosters, and pickup games starting over the next two weeks from now.
func (g *Generator) Generate(opts RandomOptions, now time.Time) (*Fixtures, error) {
	if opts.Users > MaxRandomUsers {
		return nil, fmt.Errorf("can't be more than %d users", MaxRandomUsers)
	}
	if opts.Games > 0 && opts.Users == 0 {
		return nil, fmt.Errorf("games need at least one user to organize them")
	}

	f := &Fixtures{Locations: randomLocations}
	f.Users = g.users(opts.Users)
	if opts.Teams {
		f.Teams = g.teams(f.Users)
	}
	f.Games = g.games(opts.Games, f.Users, now)
	return f, nil
}

func (g *Generator) users(count int) []UserData {
	users := make([]UserData, 0, count)
	for i := 0; i < count; i++ {
		gender, first := "M", maleNames[g.rnd.Intn(len(maleNames))]
		if g.rnd.Intn(2) == 0 {
			gender, first = "F", femaleNames[g.rnd.Intn(len(femaleNames))]
		}
		last := lastNames[g.rnd.Intn(len(lastNames))]
		username := fmt.Sprintf("%s%s.%s%d", RandomPrefix, strings.ToLower(first), strings.ToLower(last), i)
		users = append(users, UserData{
			Username:  username,
			Email:     strings.TrimPrefix(username, RandomPrefix) + "@example.com",
			FirstName: first,
			LastName:  last,
			Bio:       bios[i%len(bios)],
			Phone:     fmt.Sprintf("916%07d", g.rnd.Intn(10000000)),
			Gender:    gender,
		})
	}
	return users
}

// teamSize is 11 players 60% of the time and 8 otherwise, plus 3 or 4 subs
func (g *Generator) teamSize() (players, subs int) {
	players = 8
	if g.rnd.Intn(5) > 1 {
		players = 11
	}
	return players, 3 + g.rnd.Intn(2)
}

func (g *Generator) teams(users []UserData) []TeamData {
	var female, male []string
	for _, u := range users {
		if u.Gender == "F" {
			female = append(female, u.Username)
		} else {
			male = append(male, u.Username)
		}
	}
	all := append(append([]string{}, male...), female...)

	teams := make([]TeamData, 0, len(teamNames))
	for i, name := range teamNames {
		team := TeamData{Name: name, Info: "Test team", Type: randomTeamTypes[i%len(randomTeamTypes)]}

		candidates := all
		switch team.Type {
		case "male":
			candidates = male
		case "female":
			candidates = female
		}
		players, subs := g.teamSize()
		picked := g.sample(candidates, players+subs)
		if len(picked) > 0 {
			team.Managers = []string{picked[0]}
		}
		for j, username := range picked {
			if j == 0 {
				continue
			}
			role := "field"
			if j >= players {
				role = "substitute"
			}
			team.Players = append(team.Players, PlayerData{Username: username, Role: role})
		}
		teams = append(teams, team)
	}
	return teams
}

// sample picks up to n distinct items
func (g *Generator) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	picked := make([]string, 0, n)
	for _, i := range g.rnd.Perm(len(items))[:n] {
		picked = append(picked, items[i])
	}
	return picked
}

func (g *Generator) games(count int, users []UserData, now time.Time) []GameData {
	games := make([]GameData, 0, count)
	start := now.Truncate(time.Hour)
	for i := 0; i < count; i++ {
		at := start.Add(time.Duration(1+g.rnd.Intn(14*24)) * time.Hour)
		duration := gameDurations[g.rnd.Intn(len(gameDurations))]
		games = append(games, GameData{
			Name:        fmt.Sprintf("Pickup #%d", i+1),
			Description: RandomPrefix,
			Datetime:    &at,
			Duration:    &duration,
			Location:    randomLocations[g.rnd.Intn(len(randomLocations))].Name,
			Organizer:   users[g.rnd.Intn(len(users))].Username,
		})
	}
	return games
}
