// Package sqlite persists report snapshots to a SQLite database, one row per
// (run, year, object) with the snapshot serialized as JSON. It is an optional
// sink; the engine itself only knows the report.Sink interface.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/simweave/simweave/core"
	"github.com/simweave/simweave/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	run_id     TEXT NOT NULL,
	year       INTEGER NOT NULL,
	object_id  TEXT NOT NULL,
	kind       TEXT NOT NULL,
	snapshot   TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_reports_run_object ON reports(run_id, object_id, year);
`

// Sink writes snapshots to a SQLite file.
type Sink struct {
	db *sql.DB
}

// Open creates (or opens) the database at path and ensures the schema.
func Open(path string) (*Sink, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open report db: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize report schema: %w", err)
	}

	return &Sink{db: db}, nil
}

// Record implements report.Sink.
func (s *Sink) Record(runID string, year int, id core.Ident, snapshot core.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot for '%s': %w", id, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO reports (run_id, year, object_id, kind, snapshot) VALUES (?, ?, ?, ?, ?)`,
		runID, year, id.String(), id.Kind, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot for '%s': %w", id, err)
	}
	return nil
}

// Count returns the number of rows stored for a run. Mostly useful for
// inspection and tests.
func (s *Sink) Count(runID string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reports WHERE run_id = ?`, runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *Sink) Close() error { return s.db.Close() }

var _ report.Sink = (*Sink)(nil)
