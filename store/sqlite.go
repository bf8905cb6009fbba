package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MOH131185/genarch/plan"
)

// SQLiteStore is a plan cache backed by a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the cache database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// EnsureSchema creates the cache table if it does not exist.
func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS plans (
  fingerprint TEXT PRIMARY KEY,
  seed INTEGER NOT NULL,
  plan_json TEXT NOT NULL,
  metadata_json TEXT NOT NULL DEFAULT '{}',
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_plans_seed ON plans(seed);`); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Fingerprint derives the cache key for a constraints+seed pair: the
// hex SHA-256 of the canonical constraints JSON followed by the seed.
func Fingerprint(c *plan.Constraints, seed int64) (string, error) {
	doc, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("store: fingerprint: %w", err)
	}
	h := sha256.New()
	h.Write(doc)
	fmt.Fprintf(h, "|%d", seed)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Put stores a generated plan under its fingerprint, replacing any
// previous entry.
func (s *SQLiteStore) Put(fingerprint string, seed int64, fp *plan.FloorPlan, md *plan.RunMetadata) error {
	planJSON, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	mdJSON, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	_, err = s.db.Exec(`
INSERT OR REPLACE INTO plans (fingerprint, seed, plan_json, metadata_json, created_at)
VALUES (?, ?, ?, ?, ?)
`, fingerprint, seed, string(planJSON), string(mdJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	return nil
}

// Get returns the cached plan for a fingerprint. The second return value
// is false on a cache miss.
func (s *SQLiteStore) Get(fingerprint string) (*plan.FloorPlan, *plan.RunMetadata, bool, error) {
	var planJSON, mdJSON string
	err := s.db.QueryRow(`
SELECT plan_json, metadata_json FROM plans WHERE fingerprint = ?
`, fingerprint).Scan(&planJSON, &mdJSON)
	if err == sql.ErrNoRows {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("store: get: %w", err)
	}

	var fp plan.FloorPlan
	if err := json.Unmarshal([]byte(planJSON), &fp); err != nil {
		return nil, nil, false, fmt.Errorf("store: get: %w", err)
	}
	var md plan.RunMetadata
	if err := json.Unmarshal([]byte(mdJSON), &md); err != nil {
		return nil, nil, false, fmt.Errorf("store: get: %w", err)
	}
	return &fp, &md, true, nil
}

// Count returns the number of cached plans.
func (s *SQLiteStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&n)
	return n, err
}

// Delete removes a cached plan, reporting whether an entry existed.
func (s *SQLiteStore) Delete(fingerprint string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM plans WHERE fingerprint = ?`, fingerprint)
	if err != nil {
		return false, fmt.Errorf("store: delete: %w", err)
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
