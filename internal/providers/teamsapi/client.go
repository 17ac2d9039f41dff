package teamsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/providers"
)

// Config controls how the client reaches the teams collection.
type Config struct {
	// BaseURL is the collection URL itself, e.g. http://localhost:3000/teams.
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to a JSON teams collection: GET and POST on the collection,
// DELETE on collection/{id}.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// BaseURL returns the normalized collection URL.
func (c *Client) BaseURL() string { return c.baseURL }

// ListTeams fetches the whole collection in server order.
func (c *Client) ListTeams(ctx context.Context) ([]teams.Team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("teamsapi: list: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payload []teamResponse
	if err := c.do(req, &payload); err != nil {
		return nil, fmt.Errorf("teamsapi: list: %w", err)
	}
	return mapTeams(payload), nil
}

// CreateTeam posts the fields as a new team and returns the created record.
func (c *Client) CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error) {
	body, err := json.Marshal(toCreateRequest(fields))
	if err != nil {
		return teams.Team{}, fmt.Errorf("teamsapi: create: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return teams.Team{}, fmt.Errorf("teamsapi: create: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var created teamResponse
	if err := c.do(req, &created); err != nil {
		return teams.Team{}, fmt.Errorf("teamsapi: create: %w", err)
	}
	return mapTeam(created), nil
}

// DeleteTeam removes the team with the given id. The response body is not parsed.
func (c *Client) DeleteTeam(ctx context.Context, id teams.ID) error {
	if id.IsZero() {
		return errors.New("teamsapi: delete: missing team id")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, itemURL(c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("teamsapi: delete: %w", err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("teamsapi: delete %s: %w", id, err)
	}
	return nil
}

// do sends req and decodes a 2xx body into dest when dest is non-nil.
func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", providers.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %w", providers.ErrDecode, err)
	}
	return nil
}
