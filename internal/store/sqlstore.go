package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"coverdash/internal/testrail"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	unit TEXT PRIMARY KEY,
	project_id INTEGER NOT NULL,
	suite_id INTEGER NOT NULL,
	fetched_at TEXT NOT NULL,
	cases BLOB NOT NULL
);
`

// SqlStore implements Store with SQLite. Case payloads are stored as JSON
// blobs; the summary pipeline re-derives everything else on read.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and ensures the schema exists.
// Creates the parent directory (e.g. .coverdash) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SqlStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SqlStore) Close() error { return s.db.Close() }

// Save upserts the snapshot for its business unit.
func (s *SqlStore) Save(snap *Snapshot) error {
	payload, err := json.Marshal(snap.Cases)
	if err != nil {
		return fmt.Errorf("marshal cases: %w", err)
	}
	fetchedAt := snap.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots(unit, project_id, suite_id, fetched_at, cases)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(unit) DO UPDATE SET
			project_id = excluded.project_id,
			suite_id = excluded.suite_id,
			fetched_at = excluded.fetched_at,
			cases = excluded.cases`,
		snap.Unit, snap.ProjectID, snap.SuiteID,
		fetchedAt.Format(time.RFC3339), payload)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot for the unit, or nil if none is stored.
func (s *SqlStore) Get(unit string) (*Snapshot, error) {
	var (
		snap      = Snapshot{Unit: unit}
		fetchedAt string
		payload   []byte
	)
	err := s.db.QueryRow(`
		SELECT project_id, suite_id, fetched_at, cases
		FROM snapshots WHERE unit = ?`, unit).
		Scan(&snap.ProjectID, &snap.SuiteID, &fetchedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	if snap.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt); err != nil {
		return nil, fmt.Errorf("parse fetched_at: %w", err)
	}
	var cases []testrail.RawCase
	if err := json.Unmarshal(payload, &cases); err != nil {
		return nil, fmt.Errorf("unmarshal cases: %w", err)
	}
	snap.Cases = cases
	return &snap, nil
}

// List returns info for every stored snapshot, most recent first.
func (s *SqlStore) List() ([]Info, error) {
	rows, err := s.db.Query(`
		SELECT unit, fetched_at, cases FROM snapshots
		ORDER BY fetched_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var (
			info      Info
			fetchedAt string
			payload   []byte
		)
		if err := rows.Scan(&info.Unit, &fetchedAt, &payload); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if info.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt); err != nil {
			return nil, fmt.Errorf("parse fetched_at: %w", err)
		}
		var cases []testrail.RawCase
		if err := json.Unmarshal(payload, &cases); err != nil {
			return nil, fmt.Errorf("unmarshal cases: %w", err)
		}
		info.CaseCount = len(cases)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
