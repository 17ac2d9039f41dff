package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// Creator is anything that can accept new teams, such as a store or a remote collection.
type Creator interface {
	CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error)
}

// Teams returns a deterministic set of NFL teams useful for local testing and bootstrapping.
func Teams() []teams.Fields {
	return []teams.Fields{
		{Name: "Patriots", Conference: "AFC", Division: "East", City: "Foxborough"},
		{Name: "Chiefs", Conference: "AFC", Division: "West", City: "Kansas City"},
		{Name: "Steelers", Conference: "AFC", Division: "North", City: "Pittsburgh"},
		{Name: "Texans", Conference: "AFC", Division: "South", City: "Houston"},
		{Name: "Eagles", Conference: "NFC", Division: "East", City: "Philadelphia"},
		{Name: "Packers", Conference: "NFC", Division: "North", City: "Green Bay"},
		{Name: "49ers", Conference: "NFC", Division: "West", City: "San Francisco"},
		{Name: "Saints", Conference: "NFC", Division: "South", City: "New Orleans"},
	}
}

// Seed creates every fixture team through c in order and returns the created teams.
func Seed(ctx context.Context, c Creator) ([]teams.Team, error) {
	seeds := Teams()
	created := make([]teams.Team, 0, len(seeds))
	for _, f := range seeds {
		t, err := c.CreateTeam(ctx, f)
		if err != nil {
			return created, fmt.Errorf("fixture: seed %s: %w", f.Name, err)
		}
		created = append(created, t)
	}
	return created, nil
}
