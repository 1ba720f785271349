package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SnapshotFileName is the archive database file name inside the data directory.
const SnapshotFileName = "snapshots.db"

// Snapshots is the SQLite-backed revision archive. Every successful save of
// the document records a snapshot here; `trackdeck restore` brings one back.
// The archive is auxiliary; the JSON file stays the source of truth.
type Snapshots struct {
	db *sql.DB
}

// SnapshotInfo describes one archived revision.
type SnapshotInfo struct {
	ID          int64
	TakenAt     time.Time
	ProjectName string
	TaskCount   int
}

// OpenSnapshots opens or creates the archive database at dbPath.
func OpenSnapshots(dbPath string) (*Snapshots, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(snapshotSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating snapshot schema: %w", err)
	}

	return &Snapshots{db: db}, nil
}

// Close closes the archive database.
func (s *Snapshots) Close() error {
	return s.db.Close()
}

// Record archives the document in its persisted form and returns the new
// snapshot ID.
func (s *Snapshots) Record(doc *model.Document) (int64, error) {
	data, err := Marshal(doc)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		`INSERT INTO snapshots (taken_at, project_name, task_count, document) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), doc.Project.Name, len(doc.Tasks), string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("recording snapshot: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit snapshots, newest first.
func (s *Snapshots) List(limit int) ([]SnapshotInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, taken_at, project_name, task_count FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var infos []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		var takenAt string
		if err := rows.Scan(&info.ID, &takenAt, &info.ProjectName, &info.TaskCount); err != nil {
			return nil, err
		}
		info.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Get decodes and validates the archived document with the given ID.
func (s *Snapshots) Get(id int64) (*model.Document, error) {
	var raw string
	err := s.db.QueryRow(`SELECT document FROM snapshots WHERE id = ?`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot %d: %w", id, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Prune deletes all but the newest keep snapshots.
func (s *Snapshots) Prune(keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`, keep)
	return err
}
