// Package sqlite implements the SQLite-backed run store for Stowage:
// every solve run's report is persisted so it can be listed and inspected
// later through the CLI.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stowage/pkg/types"
)

// dbFileName is the SQLite database file created under the data directory.
const dbFileName = "stowage.db"

// timeFormat is the timestamp encoding used in the database.
const timeFormat = time.RFC3339Nano

// Store persists assignment reports. The zero value is detached; call
// Attach with a StoreConfig before use and Detach when done.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.StoreConfig
	db       *sql.DB
}

// RunSummary is one row of ListRuns.
type RunSummary struct {
	RunID      string    `json:"run_id"`
	Strategy   string    `json:"strategy"`
	Status     string    `json:"status"`
	Objective  float64   `json:"objective"`
	Items      int       `json:"items"`
	Unassigned int       `json:"unassigned"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewStore creates a detached Store.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the database under the configured data directory, creating
// the directory and schema as needed. Returns ErrAlreadyAttached if called
// while attached.
func (s *Store) Attach(config types.StoreConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("init schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach all operations
// return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// SaveRun persists the report together with the config that produced it and
// returns the report with its assigned run identifier. Identifiers are
// UUID v7 so listing by identifier follows creation order.
func (s *Store) SaveRun(rep types.AssignmentReport, cfg types.Config) (types.AssignmentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.AssignmentReport{}, types.ErrStoreDetached
	}

	rep.RunID = generateUUID()
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return types.AssignmentReport{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, strategy, status, objective, allow_unassigned, default_deny, time_limit_seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.RunID, cfg.Strategy, rep.Status, rep.Objective,
		boolToInt(cfg.AllowUnassigned), boolToInt(cfg.DefaultDeny),
		cfg.TimeLimitSeconds, rep.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return types.AssignmentReport{}, fmt.Errorf("insert run: %w", err)
	}

	for i, p := range rep.Placements {
		_, err = tx.Exec(
			`INSERT INTO placements (run_id, position, item_id, slot_id, assigned, cost)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rep.RunID, i, p.ItemID, nullable(p.SlotID), boolToInt(p.Assigned), p.Cost,
		)
		if err != nil {
			return types.AssignmentReport{}, fmt.Errorf("insert placement %s: %w", p.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.AssignmentReport{}, err
	}
	return rep, nil
}

// GetRun loads a persisted report by run identifier. Returns ErrRunNotFound
// if no such run exists.
func (s *Store) GetRun(runID string) (types.AssignmentReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.AssignmentReport{}, types.ErrStoreDetached
	}

	var (
		rep       types.AssignmentReport
		createdAt string
	)
	row := s.db.QueryRow(`SELECT run_id, status, objective, created_at FROM runs WHERE run_id = ?`, runID)
	if err := row.Scan(&rep.RunID, &rep.Status, &rep.Objective, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return types.AssignmentReport{}, types.ErrRunNotFound
		}
		return types.AssignmentReport{}, err
	}
	ts, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return types.AssignmentReport{}, fmt.Errorf("parse created_at: %w", err)
	}
	rep.CreatedAt = ts

	rows, err := s.db.Query(
		`SELECT item_id, slot_id, assigned, cost FROM placements WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return types.AssignmentReport{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p        types.Placement
			slotID   sql.NullString
			assigned int
		)
		if err := rows.Scan(&p.ItemID, &slotID, &assigned, &p.Cost); err != nil {
			return types.AssignmentReport{}, err
		}
		p.SlotID = slotID.String
		p.Assigned = assigned != 0
		rep.Placements = append(rep.Placements, p)
		if !p.Assigned {
			rep.Unassigned = append(rep.Unassigned, p.ItemID)
		}
	}
	if err := rows.Err(); err != nil {
		return types.AssignmentReport{}, err
	}
	return rep, nil
}

// ListRuns returns summaries of all persisted runs, newest first.
func (s *Store) ListRuns() ([]RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		`SELECT r.run_id, r.strategy, r.status, r.objective, r.created_at,
		        COUNT(p.item_id), COALESCE(SUM(1 - p.assigned), 0)
		 FROM runs r LEFT JOIN placements p ON p.run_id = r.run_id
		 GROUP BY r.run_id
		 ORDER BY r.created_at DESC, r.run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var (
			sum       RunSummary
			createdAt string
		)
		if err := rows.Scan(&sum.RunID, &sum.Strategy, &sum.Status, &sum.Objective,
			&createdAt, &sum.Items, &sum.Unassigned); err != nil {
			return nil, err
		}
		ts, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		sum.CreatedAt = ts
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteRun removes a run and its placements. Returns ErrRunNotFound if no
// such run exists.
func (s *Store) DeleteRun(runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM placements WHERE run_id = ?`, runID); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrRunNotFound
	}
	return tx.Commit()
}

// generateUUID generates a UUID v7 for run IDs, falling back to v4 if v7
// generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullable maps an empty string to NULL so unassigned placements have no
// slot value at all.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
