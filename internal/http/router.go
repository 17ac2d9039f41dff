package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nfl-teams-console/internal/http/handlers"
)

// NewRouter registers the console routes.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter().UseEncodedPath()
	r.HandleFunc("/", handler.Index).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams", handler.CreateTeam).Methods(nethttp.MethodPost)
	r.HandleFunc("/teams/{id}/delete", handler.DeleteTeam).Methods(nethttp.MethodPost)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)
	return r
}
