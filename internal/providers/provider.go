package providers

import (
	"context"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// Operation names used in logs and metrics for calls against a collection.
const (
	OpList   = "list"
	OpCreate = "create"
	OpDelete = "delete"
)

// TeamCollection is the remote teams resource: list everything, create from
// submitted fields, delete by server-assigned id.
type TeamCollection interface {
	ListTeams(ctx context.Context) ([]teams.Team, error)
	CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error)
	DeleteTeam(ctx context.Context, id teams.ID) error
}
