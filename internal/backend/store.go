package backend

import (
	"context"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// Store is the persistence behind the collection API. Implementations assign ids
// on create and return store.ErrNotFound for unknown ids.
type Store interface {
	ListTeams(ctx context.Context) ([]teams.Team, error)
	GetTeam(ctx context.Context, id teams.ID) (teams.Team, error)
	CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error)
	DeleteTeam(ctx context.Context, id teams.ID) error
	Close() error
}
