package teststubs

import (
	"context"
	"strconv"
	"sync"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// StubCollection is an in-memory test double for providers.TeamCollection.
// It assigns ids on create, removes on delete, and records the order of calls.
// Configured errors short-circuit the matching operation.
type StubCollection struct {
	mu sync.Mutex

	Teams     []teams.Team
	ListErr   error
	CreateErr error
	DeleteErr error

	// Calls holds operation names ("list", "create", "delete") in call order.
	Calls   []string
	Created []teams.Fields
	Deleted []teams.ID

	// OnList, when set, runs before ListTeams returns (e.g. to block or signal).
	OnList func()

	nextID int
}

// ListTeams returns a copy of the current teams.
func (s *StubCollection) ListTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.mu.Lock()
	s.Calls = append(s.Calls, "list")
	err := s.ListErr
	out := append([]teams.Team(nil), s.Teams...)
	hook := s.OnList
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTeam appends a team with the next numeric id.
func (s *StubCollection) CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "create")
	s.Created = append(s.Created, fields)
	if s.CreateErr != nil {
		return teams.Team{}, s.CreateErr
	}
	if s.nextID == 0 {
		s.nextID = len(s.Teams)
	}
	s.nextID++
	team := fields.WithID(teams.ID(strconv.Itoa(s.nextID)))
	s.Teams = append(s.Teams, team)
	return team, nil
}

// DeleteTeam removes the team with the given id when present.
func (s *StubCollection) DeleteTeam(ctx context.Context, id teams.ID) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "delete")
	s.Deleted = append(s.Deleted, id)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	kept := make([]teams.Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.Teams = kept
	return nil
}

// CallLog returns a copy of the recorded call order.
func (s *StubCollection) CallLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Calls...)
}
