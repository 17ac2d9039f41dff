package teamsapi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// itemURL addresses a single team under the collection.
func itemURL(base string, id teams.ID) string {
	return base + "/" + url.PathEscape(id.String())
}
