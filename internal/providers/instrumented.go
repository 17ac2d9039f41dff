package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
)

// instrumentedCollection records latency and failures for every call to the wrapped
// collection. It never retries.
type instrumentedCollection struct {
	inner   TeamCollection
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedCollection wraps inner with metrics and debug/warn logging.
// An empty name is derived from the concrete type of inner.
func NewInstrumentedCollection(inner TeamCollection, logger *slog.Logger, recorder *metrics.Recorder, name string) TeamCollection {
	return &instrumentedCollection{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    ProviderName(name, inner),
		now:     time.Now,
	}
}

// ProviderName returns a lower-cased provider name, deriving it from the instance when not set.
func ProviderName(raw string, collection TeamCollection) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if collection != nil {
		return strings.ToLower(fmt.Sprintf("%T", collection))
	}
	return "provider"
}

func (c *instrumentedCollection) ListTeams(ctx context.Context) ([]teams.Team, error) {
	if c.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := c.now()
	items, err := c.inner.ListTeams(ctx)
	c.observe(ctx, OpList, start, err, slog.Int(logging.FieldCount, len(items)))
	return items, err
}

func (c *instrumentedCollection) CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error) {
	if c.inner == nil {
		return teams.Team{}, ErrProviderUnavailable
	}
	start := c.now()
	team, err := c.inner.CreateTeam(ctx, fields)
	c.observe(ctx, OpCreate, start, err, slog.String(logging.FieldTeamID, team.ID.String()))
	return team, err
}

func (c *instrumentedCollection) DeleteTeam(ctx context.Context, id teams.ID) error {
	if c.inner == nil {
		return ErrProviderUnavailable
	}
	start := c.now()
	err := c.inner.DeleteTeam(ctx, id)
	c.observe(ctx, OpDelete, start, err, slog.String(logging.FieldTeamID, id.String()))
	return err
}

func (c *instrumentedCollection) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	elapsed := c.now().Sub(start)
	c.metrics.RecordUpstreamCall(c.name, op, elapsed, err)

	attrs = append(attrs,
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if err != nil {
		attrs = append(attrs, slog.String("kind", Kind(err)), slog.Any("error", err))
		logWithProvider(ctx, c.logger, slog.LevelWarn, c.name, "collection call failed", attrs...)
		return
	}
	logWithProvider(ctx, c.logger, slog.LevelDebug, c.name, "collection call complete", attrs...)
}
