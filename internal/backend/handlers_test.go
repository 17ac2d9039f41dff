package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
	"github.com/preston-bernstein/nfl-teams-console/internal/store"
	"github.com/preston-bernstein/nfl-teams-console/internal/testutil"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type failingStore struct {
	store.MemoryStore
	err error
}

func (f *failingStore) ListTeams(ctx context.Context) ([]teams.Team, error) { return nil, f.err }
func (f *failingStore) GetTeam(ctx context.Context, id teams.ID) (teams.Team, error) {
	return teams.Team{}, f.err
}
func (f *failingStore) CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error) {
	return teams.Team{}, f.err
}
func (f *failingStore) DeleteTeam(ctx context.Context, id teams.ID) error { return f.err }

func newTestRouter() (http.Handler, *store.MemoryStore) {
	s := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(s, logger, metrics.NewRecorder()), s
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter()
	rr := testutil.Serve(r, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestListEmptyReturnsArray(t *testing.T) {
	r, _ := newTestRouter()
	rr := testutil.Serve(r, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestCreateAssignsIDAndListsInOrder(t *testing.T) {
	r, _ := newTestRouter()

	rr := testutil.Serve(r, http.MethodPost, "/teams", strings.NewReader(`{"name":"Patriots","conference":"AFC","division":"East","city":"Foxborough"}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var first teams.Team
	testutil.DecodeJSON(t, rr, &first)
	if first.ID.IsZero() || first.Name != "Patriots" {
		t.Fatalf("unexpected created team %+v", first)
	}

	rr = testutil.Serve(r, http.MethodPost, "/teams", strings.NewReader(`{"name":"Jets","conference":"AFC","division":"East","city":"New York"}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var second teams.Team
	testutil.DecodeJSON(t, rr, &second)
	if second.ID == first.ID {
		t.Fatalf("expected distinct ids, got %s twice", first.ID)
	}

	rr = testutil.Serve(r, http.MethodGet, "/teams", nil)
	var list []teams.Team
	testutil.DecodeJSON(t, rr, &list)
	if len(list) != 2 || list[0].Name != "Patriots" || list[1].Name != "Jets" {
		t.Fatalf("expected insertion order, got %+v", list)
	}
}

func TestCreateIgnoresClientSuppliedID(t *testing.T) {
	r, _ := newTestRouter()
	rr := testutil.Serve(r, http.MethodPost, "/teams", strings.NewReader(`{"id":"999","name":"Bills"}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var created teams.Team
	testutil.DecodeJSON(t, rr, &created)
	if created.ID == "999" {
		t.Fatalf("expected server-assigned id")
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	r, _ := newTestRouter()
	rr := testutil.Serve(r, http.MethodPost, "/teams", strings.NewReader(`{"name":`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.Error.Code != codeBadRequest {
		t.Fatalf("expected BAD_REQUEST, got %+v", body)
	}
}

func TestGetAndDelete(t *testing.T) {
	r, s := newTestRouter()
	created, _ := s.CreateTeam(context.Background(), testutil.SampleFields())

	rr := testutil.Serve(r, http.MethodGet, "/teams/"+created.ID.String(), nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(r, http.MethodDelete, "/teams/"+created.ID.String(), nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := strings.TrimSpace(rr.Body.String()); body != "{}" {
		t.Fatalf("expected empty object, got %s", body)
	}

	rr = testutil.Serve(r, http.MethodGet, "/teams/"+created.ID.String(), nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(r, http.MethodDelete, "/teams/"+created.ID.String(), nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.Error.Code != codeNotFound {
		t.Fatalf("expected NOT_FOUND, got %+v", body)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	r, _ := newTestRouter()
	testutil.AssertStatus(t, testutil.Serve(r, http.MethodGet, "/divisions", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(r, http.MethodDelete, "/teams", nil), http.StatusMethodNotAllowed)
}

func TestStoreFailuresReturnInternal(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	r := NewRouter(&failingStore{err: errors.New("db down")}, logger, nil)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/teams", ""},
		{http.MethodGet, "/teams/1", ""},
		{http.MethodPost, "/teams", `{"name":"x"}`},
		{http.MethodDelete, "/teams/1", ""},
	}
	for _, tc := range cases {
		rr := testutil.Serve(r, tc.method, tc.path, strings.NewReader(tc.body))
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("%s %s expected 500, got %d", tc.method, tc.path, rr.Code)
		}
	}
	if !strings.Contains(buf.String(), "db down") {
		t.Fatalf("expected store error logged, got %s", buf.String())
	}
}

func TestRequestIDEchoed(t *testing.T) {
	r, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set(requestutil.HeaderRequestID, "trace-1")
	rr := testutil.ServeRequest(r, req)
	if got := rr.Header().Get(requestutil.HeaderRequestID); got != "trace-1" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	s := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	ctx := context.Background()

	if err := SeedIfEmpty(ctx, s, logger); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	first, _ := s.ListTeams(ctx)
	if len(first) == 0 {
		t.Fatalf("expected seeded teams")
	}

	if err := SeedIfEmpty(ctx, s, logger); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := s.ListTeams(ctx)
	if len(second) != len(first) {
		t.Fatalf("expected non-empty store left alone, got %d then %d", len(first), len(second))
	}

	if err := SeedIfEmpty(ctx, &failingStore{err: errors.New("boom")}, logger); err == nil {
		t.Fatalf("expected list error to surface")
	}
}
