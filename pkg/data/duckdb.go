package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kerbaras/anitrack/pkg/log"
	"github.com/kerbaras/anitrack/pkg/where"
	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS watched_anime (
	mal_id BIGINT PRIMARY KEY,
	title TEXT,
	watched_episodes BIGINT DEFAULT 0,
	total_episodes BIGINT,
	status TEXT,
	user_rating DOUBLE,
	last_updated TIMESTAMP,
	notes TEXT
)`

func InitDuckDB(path string) (*sql.DB, error) {
	if err := where.EnsureParent(path); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Store is the watchlist table backed by a local DuckDB file.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at path and makes sure the watchlist table exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, fmt.Errorf("open watchlist %s: %w", path, err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Debugf("opened watchlist at %s", path)
	return s, nil
}

// Initialize creates the watchlist table when it is missing. Safe to call repeatedly.
func (s *Store) Initialize(ctx context.Context) error {
	return s.withConn(ctx, func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("create watchlist table: %w", err)
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withConn scopes a single connection to fn and always hands it back to the pool.
func (s *Store) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
