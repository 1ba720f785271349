// Package store persists the project document as a single JSON file and keeps
// a snapshot archive of previous revisions.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

// DefaultFileName is the document file name inside the data directory.
const DefaultFileName = "project_data.json"

// DefaultDir returns the XDG-compliant data directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "trackdeck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "trackdeck")
}

// DefaultPath returns the full default document path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), DefaultFileName)
}

// ParseError means the document file exists but is not valid JSON. It is
// surfaced to the caller instead of being masked with defaults, which would
// silently hide data loss. `trackdeck restore` can bring back a snapshot.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the document at path. A missing file yields the seeded default
// document without writing anything; the seed only reaches disk on an
// explicit save. Malformed JSON and invalid records are errors.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config/flag
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal renders the document in its persisted form: pretty-printed JSON
// with a trailing newline. Export and Save both go through here so an export
// is byte-identical to the file on disk.
func Marshal(doc *model.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

// Save validates and writes the whole document, replacing the file via a
// temp-file rename so a crash mid-write cannot truncate it.
func Save(path string, doc *model.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, DefaultFileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Export writes the document to w, byte-identical to the persisted form.
func Export(w io.Writer, doc *model.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
