package teamsapi

import "github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:         t.ID,
		Name:       t.Name,
		Conference: t.Conference,
		Division:   t.Division,
		City:       t.City,
	}
}

func mapTeams(items []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(items))
	for _, t := range items {
		out = append(out, mapTeam(t))
	}
	return out
}

func toCreateRequest(f teams.Fields) createRequest {
	return createRequest{
		Name:       f.Name,
		Conference: f.Conference,
		Division:   f.Division,
		City:       f.City,
	}
}
