package teams

import (
	"context"
	"log/slog"
	"slices"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
	"github.com/preston-bernstein/nfl-teams-console/internal/view"
)

// Collection is the remote teams resource the controller mediates.
type Collection interface {
	ListTeams(ctx context.Context) ([]teams.Team, error)
	CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error)
	DeleteTeam(ctx context.Context, id teams.ID) error
}

// Controller keeps a page in step with the remote collection. Every change is
// followed by a full re-fetch and a clear-and-rebuild render; no collection state
// is kept between renders. Failures are logged and otherwise swallowed, leaving
// the page as it was.
//
// Calls are not serialized: overlapping requests each trigger their own re-fetch
// and the page shows whichever list response is applied last.
type Controller struct {
	collection Collection
	page       *view.Page
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewController wires a controller to its collection and page.
func NewController(collection Collection, page *view.Page, logger *slog.Logger, recorder *metrics.Recorder) *Controller {
	if page == nil {
		page = view.NewPage()
	}
	return &Controller{
		collection: collection,
		page:       page,
		logger:     logger,
		metrics:    recorder,
	}
}

// Page exposes the page the controller renders into.
func (c *Controller) Page() *view.Page {
	return c.page
}

// Load is the page-load reaction: fetch and render the collection.
func (c *Controller) Load(ctx context.Context) {
	c.List(ctx)
}

// List fetches the whole collection and renders it in server order.
// On failure the current list stays on the page.
func (c *Controller) List(ctx context.Context) {
	items, err := c.collection.ListTeams(ctx)
	if err != nil {
		logging.Error(c.log(ctx), "error fetching teams", err)
		return
	}
	c.Render(items)
}

// Create submits fields as a new team, then re-lists whatever the outcome.
func (c *Controller) Create(ctx context.Context, fields teams.Fields) {
	if _, err := c.collection.CreateTeam(ctx, fields); err != nil {
		logging.Error(c.log(ctx), "error creating team", err)
	}
	c.List(ctx)
}

// Delete removes the team by id, then re-lists whatever the outcome.
func (c *Controller) Delete(ctx context.Context, id teams.ID) {
	if err := c.collection.DeleteTeam(ctx, id); err != nil {
		logging.Error(c.log(ctx), "error deleting team", err, slog.String(logging.FieldTeamID, id.String()))
	}
	c.List(ctx)
}

// Render replaces the list container with one row per team. A render failure
// is logged and the current list stays on the page.
func (c *Controller) Render(items []teams.Team) {
	list, err := view.Render(items)
	if err != nil {
		logging.Error(c.logger, "error rendering teams", err, slog.Int(logging.FieldCount, len(items)))
		return
	}
	c.page.ReplaceList(list, len(items))
	c.metrics.RecordRender(len(items))
}

// Submit is the form-submit reaction. The typed values are collected from the
// form, created, and the form is cleared afterwards even when the create failed.
func (c *Controller) Submit(ctx context.Context, typed teams.Fields) {
	c.page.SetForm(typed)
	c.Create(ctx, c.page.Form())
	c.page.ResetForm()
}

// Target describes the element a click on the list container landed on.
type Target struct {
	Classes []string
	DataID  string
}

// IsDelete reports whether the target is a delete affordance.
func (t Target) IsDelete() bool {
	return slices.Contains(t.Classes, view.DeleteClass)
}

// Click is the list container's delegated click reaction: clicks on a delete
// affordance delete the team named by its data-id; anything else is ignored.
func (c *Controller) Click(ctx context.Context, target Target) {
	if !target.IsDelete() {
		return
	}
	c.Delete(ctx, teams.ID(target.DataID))
}

func (c *Controller) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, c.logger)
}
