package store

// snapshotSchemaSQL creates the snapshot archive tables.
const snapshotSchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at     TEXT NOT NULL,
    project_name TEXT NOT NULL,
    task_count   INTEGER NOT NULL,
    document     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);
`
