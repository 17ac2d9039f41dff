package backend

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/providers/fixture"
)

// SeedIfEmpty fills an empty store with the fixture teams. A store that already
// holds teams is left alone so restarts against Postgres do not duplicate rows.
func SeedIfEmpty(ctx context.Context, s Store, logger *slog.Logger) error {
	existing, err := s.ListTeams(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	created, err := fixture.Seed(ctx, s)
	if err != nil {
		return err
	}
	logging.Info(logger, "seeded teams", slog.Int(logging.FieldCount, len(created)))
	return nil
}
