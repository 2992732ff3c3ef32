package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL/MariaDB implementation of Store, for archives
// shared by several processes.
type MySQLStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewMySQLStore connects using dsn and creates the schema if needed.
//
// DSN format:
//
//	[username[:password]@][protocol[(address)]]/dbname[?param1=value1&...]
//
// Keep credentials out of source; read the DSN from the environment:
//
//	st, err := store.NewMySQLStore(os.Getenv("MYSQL_DSN"))
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	s := &MySQLStore{db: db}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *MySQLStore) createTables(ctx context.Context) error {
	table := `
		CREATE TABLE IF NOT EXISTS search_results (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(255) NOT NULL,
			strategy VARCHAR(32) NOT NULL,
			solved BOOLEAN NOT NULL,
			cost DOUBLE NOT NULL,
			depth INT NOT NULL,
			nodes_visited BIGINT NOT NULL,
			expanded BIGINT NOT NULL,
			relinks BIGINT NOT NULL,
			duration_ns BIGINT NOT NULL,
			head TEXT NOT NULL,
			steps LONGTEXT NOT NULL,
			created_at BIGINT NOT NULL,
			UNIQUE KEY idx_run_id (run_id),
			INDEX idx_strategy (strategy)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci
	`
	if _, err := s.db.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("failed to create search_results table: %w", err)
	}
	return nil
}

// SaveResult inserts rec, replacing an existing row with the same run ID.
func (s *MySQLStore) SaveResult(ctx context.Context, rec Record) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	stampCreatedAt(&rec)
	args, err := recordArgs(rec)
	if err != nil {
		return err
	}

	// REPLACE deletes the old row, so a re-saved run gets a new id and
	// lists as the most recent.
	query := `REPLACE INTO search_results (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// LoadResult returns the record for runID.
func (s *MySQLStore) LoadResult(ctx context.Context, runID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Record{}, ErrClosed
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM search_results WHERE run_id = ?`, runID)
	return scanRecord(row)
}

// ListResults returns records most recently saved first.
func (s *MySQLStore) ListResults(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	query := `SELECT ` + recordColumns + ` FROM search_results ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return scanRecords(rows)
}

// Close closes the connection pool. Closing twice is a no-op.
func (s *MySQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
