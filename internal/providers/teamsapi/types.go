package teamsapi

import "github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"

// ProviderName labels this client in logs, metrics, and status errors.
const ProviderName = "teamsapi"

type teamResponse struct {
	ID         teams.ID `json:"id"`
	Name       string   `json:"name"`
	Conference string   `json:"conference"`
	Division   string   `json:"division"`
	City       string   `json:"city"`
}

type createRequest struct {
	Name       string `json:"name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	City       string `json:"city"`
}
