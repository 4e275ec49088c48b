package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// ─── Models ──────────────────────────────────────────────────────────────────

// Search is one recommendation query. Only the outcome is recorded, never the
// computed options.
type Search struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Found       bool      `json:"found"`
	DistanceKM  float64   `json:"distance_km,omitempty"`
	ModeCount   int       `json:"mode_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is the PostgreSQL search log.
type Store struct {
	db *sql.DB
}

// ─── Init ─────────────────────────────────────────────────────────────────────

// Open connects to PostgreSQL, waiting for it to come up, and runs migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 0; i < 10; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database after retries: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// ─── Migrations ───────────────────────────────────────────────────────────────

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS route_searches (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL,
		destination TEXT NOT NULL,
		found       BOOLEAN NOT NULL,
		distance_km NUMERIC(10,2),
		mode_count  INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_route_searches_created_at
		ON route_searches(created_at DESC)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func (s *Store) SaveSearch(ctx context.Context, search *Search) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO route_searches (id, source, destination, found, distance_km, mode_count)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		search.ID, search.Source, search.Destination, search.Found, search.DistanceKM, search.ModeCount)
	return err
}

// RecentSearches returns up to limit searches, newest first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]Search, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, destination, found, COALESCE(distance_km, 0), mode_count, created_at
		FROM route_searches
		ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []Search{}
	for rows.Next() {
		var r Search
		if err := rows.Scan(&r.ID, &r.Source, &r.Destination, &r.Found,
			&r.DistanceKM, &r.ModeCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		searches = append(searches, r)
	}
	return searches, rows.Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
