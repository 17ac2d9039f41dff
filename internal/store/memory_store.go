package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// MemoryStore keeps the teams collection in memory in insertion order.
// Ids are assigned from a counter and never reused, even after deletes.
type MemoryStore struct {
	mu     sync.RWMutex
	order  []teams.ID
	teams  map[teams.ID]teams.Team
	lastID int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams: make(map[teams.ID]teams.Team),
	}
}

// ListTeams returns a copy of the collection in insertion order.
func (s *MemoryStore) ListTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.teams[id])
	}
	return result, nil
}

// GetTeam retrieves a team by id.
func (s *MemoryStore) GetTeam(ctx context.Context, id teams.ID) (teams.Team, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	if !ok {
		return teams.Team{}, ErrNotFound
	}
	return t, nil
}

// CreateTeam stores the fields under a freshly assigned id.
func (s *MemoryStore) CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	t := fields.WithID(teams.ID(strconv.Itoa(s.lastID)))
	s.teams[t.ID] = t
	s.order = append(s.order, t.ID)
	return t, nil
}

// DeleteTeam removes a team by id.
func (s *MemoryStore) DeleteTeam(ctx context.Context, id teams.ID) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return ErrNotFound
	}
	delete(s.teams, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op so MemoryStore satisfies the same lifecycle as database stores.
func (s *MemoryStore) Close() error { return nil }
