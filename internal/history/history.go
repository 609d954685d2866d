package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/seqpilot/runreport/internal/model"
)

// dbFileName is the history database file name inside the history
// directory.
const dbFileName = "runreport.db"

// ErrNoReports is returned by LatestByKind when no report of the
// requested kind has been recorded.
var ErrNoReports = errors.New("no reports recorded for kind")

// Record describes one generated report.
type Record struct {
	// ID is the database row identifier, assigned on save.
	ID int64

	// Kind is the report variant that was generated.
	Kind model.Kind

	// OutputPath is where the report was written.
	OutputPath string

	// PipelineVersion is the resolved pipeline version at generation
	// time, possibly the Unknown sentinel.
	PipelineVersion string

	// CreatedAt is when the report was generated.
	CreatedAt time.Time
}

// Store provides SQLite-based storage for the report-generation log.
// Report generation itself never depends on the store; it is additive
// bookkeeping for the history command.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{CreateIfNotExists: true}
}

// Open opens or creates the history store under dir.
// If CreateIfNotExists is false and the database does not exist, an
// error is returned.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, dbFileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check history database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite supports a single writer; the history log has no need for
	// reader parallelism either.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the schema if it doesn't exist.
func (s *Store) createTables() error {
	const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	output_path TEXT NOT NULL,
	pipeline_version TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_kind ON reports(kind, created_at DESC);`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Save records a generated report and returns its assigned ID.
func (s *Store) Save(ctx context.Context, rec *Record) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	// Timestamps are stored as RFC 3339 UTC text: lexicographic order
	// equals chronological order, which the list queries rely on.
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (kind, output_path, pipeline_version, created_at) VALUES (?, ?, ?, ?)`,
		string(rec.Kind), rec.OutputPath, rec.PipelineVersion, rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to save report record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record id: %w", err)
	}
	rec.ID = id
	return id, nil
}

// List returns the most recently generated reports, newest first,
// limited to limit rows. A non-positive limit returns all rows.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, kind, output_path, pipeline_version, created_at
FROM reports ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list report records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var kind, createdAt string
		if err := rows.Scan(&rec.ID, &kind, &rec.OutputPath, &rec.PipelineVersion, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report record: %w", err)
		}
		rec.Kind = model.Kind(kind)
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report records: %w", err)
	}
	return records, nil
}

// LatestByKind returns the most recent record of the given kind, or
// ErrNoReports when none exists.
func (s *Store) LatestByKind(ctx context.Context, kind model.Kind) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, output_path, pipeline_version, created_at
FROM reports WHERE kind = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		string(kind))

	var rec Record
	var k, createdAt string
	if err := row.Scan(&rec.ID, &k, &rec.OutputPath, &rec.PipelineVersion, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNoReports, kind)
		}
		return nil, fmt.Errorf("failed to query latest report: %w", err)
	}
	rec.Kind = model.Kind(k)
	rec.CreatedAt = parseTimestamp(createdAt)
	return &rec, nil
}

// parseTimestamp parses a stored RFC 3339 timestamp. Unparseable values
// yield the zero time rather than failing the query.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
