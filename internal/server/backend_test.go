package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nfl-teams-console/internal/backend"
	"github.com/preston-bernstein/nfl-teams-console/internal/config"
	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/store"
	"github.com/preston-bernstein/nfl-teams-console/internal/testutil"
)

func TestNewBackendSeedsMemoryStore(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv, err := NewBackend(context.Background(), config.BackendConfig{Port: "0", Seed: true}, logger)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var list []teams.Team
	testutil.DecodeJSON(t, rr, &list)
	if len(list) == 0 {
		t.Fatalf("expected seeded teams")
	}
	if len(srv.closers) != 1 {
		t.Fatalf("expected store closer registered")
	}
}

func TestNewBackendWithoutSeedStartsEmpty(t *testing.T) {
	srv, err := NewBackend(context.Background(), config.BackendConfig{Port: "0"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/teams", nil)
	var list []teams.Team
	testutil.DecodeJSON(t, rr, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %d", len(list))
	}
}

func TestNewBackendUsesPostgresWhenConfigured(t *testing.T) {
	orig := openPostgres
	defer func() { openPostgres = orig }()

	var gotDSN string
	openPostgres = func(ctx context.Context, dsn string) (backend.Store, error) {
		gotDSN = dsn
		return store.NewMemoryStore(), nil
	}

	_, err := NewBackend(context.Background(), config.BackendConfig{Port: "0", DatabaseURL: "postgres://x"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotDSN != "postgres://x" {
		t.Fatalf("expected postgres opener called with dsn, got %q", gotDSN)
	}
}

func TestNewBackendPropagatesStoreError(t *testing.T) {
	orig := openPostgres
	defer func() { openPostgres = orig }()
	openPostgres = func(ctx context.Context, dsn string) (backend.Store, error) {
		return nil, errors.New("refused")
	}

	if _, err := NewBackend(context.Background(), config.BackendConfig{DatabaseURL: "postgres://x"}, nil); err == nil {
		t.Fatalf("expected error from store open")
	}
}
