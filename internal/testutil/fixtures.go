package testutil

import "github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"

// SampleTeam returns a Patriots team carrying the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{
		ID:         teams.ID(id),
		Name:       "Patriots",
		Conference: "AFC",
		Division:   "East",
		City:       "Foxborough",
	}
}

// SampleFields returns creation fields for a team that is not in SampleTeam.
func SampleFields() teams.Fields {
	return teams.Fields{
		Name:       "Jets",
		Conference: "AFC",
		Division:   "East",
		City:       "New York",
	}
}
