package sqlite

// Schema DDL for the run store. Runs persist across sessions, so creation
// is idempotent.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    strategy TEXT NOT NULL,
    status TEXT NOT NULL,
    objective REAL NOT NULL,
    allow_unassigned INTEGER NOT NULL,
    default_deny INTEGER NOT NULL,
    time_limit_seconds REAL NOT NULL,
    created_at TEXT NOT NULL
);`

	createPlacements = `CREATE TABLE IF NOT EXISTS placements (
    run_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    item_id TEXT NOT NULL,
    slot_id TEXT,
    assigned INTEGER NOT NULL,
    cost REAL NOT NULL,
    PRIMARY KEY (run_id, item_id),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`
)

// schemaDDL lists the statements Attach executes in order.
var schemaDDL = []string{
	createRuns,
	createPlacements,
}
