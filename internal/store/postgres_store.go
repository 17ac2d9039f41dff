package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

const schema = `CREATE TABLE IF NOT EXISTS teams (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	conference TEXT NOT NULL DEFAULT '',
	division   TEXT NOT NULL DEFAULT '',
	city       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const (
	listTeamsQuery  = `SELECT id, name, conference, division, city FROM teams ORDER BY id`
	getTeamQuery    = `SELECT id, name, conference, division, city FROM teams WHERE id = $1`
	insertTeamQuery = `INSERT INTO teams (name, conference, division, city) VALUES ($1, $2, $3, $4) RETURNING id`
	deleteTeamQuery = `DELETE FROM teams WHERE id = $1`
)

// PostgresStore persists the teams collection in Postgres. SERIAL ids give the
// same never-reused, server-assigned semantics as MemoryStore.
type PostgresStore struct {
	db *sqlx.DB
}

type teamRow struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Conference string `db:"conference"`
	Division   string `db:"division"`
	City       string `db:"city"`
}

func (r teamRow) team() teams.Team {
	return teams.Team{
		ID:         teams.ID(strconv.FormatInt(r.ID, 10)),
		Name:       r.Name,
		Conference: r.Conference,
		Division:   r.Division,
		City:       r.City,
	}
}

// NewPostgresStore connects to dbURL and ensures the teams table exists.
func NewPostgresStore(ctx context.Context, dbURL string) (*PostgresStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	s := NewPostgresStoreFromDB(db)
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStoreFromDB wraps an existing connection pool.
func NewPostgresStoreFromDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// ListTeams returns every team ordered by id, which matches insertion order.
func (s *PostgresStore) ListTeams(ctx context.Context) ([]teams.Team, error) {
	var rows []teamRow
	if err := s.db.SelectContext(ctx, &rows, listTeamsQuery); err != nil {
		return nil, fmt.Errorf("store: list teams: %w", err)
	}
	out := make([]teams.Team, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.team())
	}
	return out, nil
}

// GetTeam retrieves a team by id.
func (s *PostgresStore) GetTeam(ctx context.Context, id teams.ID) (teams.Team, error) {
	n, ok := parseID(id)
	if !ok {
		return teams.Team{}, ErrNotFound
	}
	var row teamRow
	if err := s.db.GetContext(ctx, &row, getTeamQuery, n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return teams.Team{}, ErrNotFound
		}
		return teams.Team{}, fmt.Errorf("store: get team: %w", err)
	}
	return row.team(), nil
}

// CreateTeam inserts the fields and returns the team with its assigned id.
func (s *PostgresStore) CreateTeam(ctx context.Context, fields teams.Fields) (teams.Team, error) {
	var id int64
	err := s.db.QueryRowxContext(ctx, insertTeamQuery, fields.Name, fields.Conference, fields.Division, fields.City).Scan(&id)
	if err != nil {
		return teams.Team{}, fmt.Errorf("store: create team: %w", err)
	}
	return fields.WithID(teams.ID(strconv.FormatInt(id, 10))), nil
}

// DeleteTeam removes a team by id.
func (s *PostgresStore) DeleteTeam(ctx context.Context, id teams.ID) error {
	n, ok := parseID(id)
	if !ok {
		return ErrNotFound
	}
	res, err := s.db.ExecContext(ctx, deleteTeamQuery, n)
	if err != nil {
		return fmt.Errorf("store: delete team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete team: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func parseID(id teams.ID) (int64, bool) {
	n, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
