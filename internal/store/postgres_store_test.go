package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		in   teams.ID
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseID(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseID(%q) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTeamRowMapsToTeam(t *testing.T) {
	row := teamRow{ID: 9, Name: "Bills", Conference: "AFC", Division: "East", City: "Orchard Park"}
	team := row.team()
	if team.ID != "9" || team.Name != "Bills" || team.City != "Orchard Park" {
		t.Fatalf("unexpected team %+v", team)
	}
}

// Runs against a real database when TEAMS_API_TEST_DATABASE_URL is set.
func TestPostgresStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv("TEAMS_API_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEAMS_API_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Close()

	created, err := s.CreateTeam(ctx, teams.Fields{Name: "Jets", Conference: "AFC", Division: "East", City: "New York"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.GetTeam(ctx, created.ID)
	if err != nil || got != created {
		t.Fatalf("expected created team back, got %+v err %v", got, err)
	}
	if err := s.DeleteTeam(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteTeam(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteTeam(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-numeric id, got %v", err)
	}
}
