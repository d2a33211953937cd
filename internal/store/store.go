// Package store provides SQLite-backed persistence for DNS records.
//
// The store is a deliberately dumb keyed collection: it knows how to insert,
// enumerate by hostname, and delete by exact (hostname, type, value) match.
// All validation and consistency rules live in the engine layer on top of it.
//
// Enumeration order is insertion order, which callers rely on both for
// deterministic multi-A answers and for first-CNAME selection.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Supported record types. The schema enforces membership via a CHECK
// constraint; the engine enforces it before records ever get here.
const (
	TypeA     = "A"
	TypeCNAME = "CNAME"
)

// ErrUnavailable indicates the backing database could not be reached or
// refused the operation. It is never swallowed; callers surface it as an
// infrastructure failure.
var ErrUnavailable = errors.New("record store unavailable")

// Record is a single DNS record as persisted.
//
// ID is assigned by the store on insert and immutable afterwards. Value
// holds an IPv4 address for A records and a target hostname for CNAMEs.
type Record struct {
	ID        string
	Hostname  string
	Type      string
	Value     string
	CreatedAt time.Time
}

// Store wraps a SQLite database connection with thread-safe operations.
type Store struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// Open opens or creates a SQLite database at the given path and applies
// any pending schema migrations.
func Open(path string) (*Store, error) {
	// Use WAL mode for better concurrency
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := runMigrations(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{conn: conn}, nil
}

// runMigrations applies the embedded migrations to the open connection.
func runMigrations(conn *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Health checks database connectivity.
func (s *Store) Health(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// FindByHostname retrieves all records for a hostname in insertion order.
// The result is empty (not an error) when the hostname has no records.
func (s *Store) FindByHostname(ctx context.Context, hostname string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, hostname, type, value, created_at
		FROM dns_records
		WHERE hostname = ?
		ORDER BY rowid
	`

	rows, err := s.conn.QueryContext(ctx, query, hostname)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query records for %s: %v", ErrUnavailable, hostname, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Hostname, &r.Type, &r.Value, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan record: %v", ErrUnavailable, err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating records: %v", ErrUnavailable, err)
	}

	return records, nil
}

// Insert persists a record, assigning its ID and creation time.
func (s *Store) Insert(ctx context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO dns_records (id, hostname, type, value, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := s.conn.ExecContext(ctx, query, rec.ID, rec.Hostname, rec.Type, rec.Value, rec.CreatedAt); err != nil {
		return Record{}, fmt.Errorf("%w: failed to insert record %s %s -> %s: %v",
			ErrUnavailable, rec.Type, rec.Hostname, rec.Value, err)
	}

	return rec, nil
}

// DeleteExact removes the record matching (hostname, type, value) exactly
// and reports how many rows were deleted (0 or 1).
func (s *Store) DeleteExact(ctx context.Context, hostname, recordType, value string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := "DELETE FROM dns_records WHERE hostname = ? AND type = ? AND value = ?"

	result, err := s.conn.ExecContext(ctx, query, hostname, recordType, value)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete record: %v", ErrUnavailable, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get affected rows: %v", ErrUnavailable, err)
	}

	return deleted, nil
}
