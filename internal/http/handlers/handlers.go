package handlers

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"net/url"

	"github.com/gorilla/mux"

	appteams "github.com/preston-bernstein/nfl-teams-console/internal/app/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/view"
)

// Handler turns browser requests into controller events.
type Handler struct {
	controller *appteams.Controller
	logger     *slog.Logger
	readyFn    func() bool
}

// NewHandler constructs a Handler. A nil readyFn reports always ready.
func NewHandler(controller *appteams.Controller, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		controller: controller,
		logger:     logger,
		readyFn:    readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.readyFn != nil && !h.readyFn() {
		writeJSON(w, nethttp.StatusServiceUnavailable, map[string]string{"status": "starting"}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Index is the page load: list the collection and serve the document.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.controller.Load(r.Context())
	h.writePage(w, r)
}

// CreateTeam is the form submit. The page is always redirected back to the
// index so the browser reloads the freshly rendered list.
func (h *Handler) CreateTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid form", h.logger)
		return
	}
	h.controller.Submit(r.Context(), teams.Fields{
		Name:       r.PostFormValue("name"),
		Conference: r.PostFormValue("conference"),
		Division:   r.PostFormValue("division"),
		City:       r.PostFormValue("city"),
	})
	nethttp.Redirect(w, r, "/", nethttp.StatusSeeOther)
}

// DeleteTeam is a click on a row's delete button. The router matches on the
// escaped path, so the id segment arrives still percent-encoded.
func (h *Handler) DeleteTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	h.controller.Click(r.Context(), appteams.Target{
		Classes: []string{view.DeleteClass},
		DataID:  id,
	})
	nethttp.Redirect(w, r, "/", nethttp.StatusSeeOther)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) writePage(w nethttp.ResponseWriter, r *nethttp.Request) {
	var buf bytes.Buffer
	if err := view.WritePage(&buf, h.controller.Page().Snapshot()); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "failed to render page", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to render page", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
