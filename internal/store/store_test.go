package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

func TestLoadMissingFileSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project_data.json")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Project.Name == "" || len(doc.Tasks) == 0 {
		t.Fatal("missing file did not yield the seeded document")
	}

	// The seed must not reach disk until an explicit save.
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load wrote the file: stat err = %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project_data.json")
	doc := Defaults()
	doc.Project.CurrentWeek = 3
	if err := doc.CompleteTask(2); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Project.CurrentWeek != 3 {
		t.Errorf("CurrentWeek = %d, want 3", back.Project.CurrentWeek)
	}
	if back.FindTask(2).Status != model.TaskCompleted {
		t.Error("completed status lost in the round trip")
	}
	if len(back.Tasks) != len(doc.Tasks) {
		t.Errorf("task count = %d, want %d", len(back.Tasks), len(doc.Tasks))
	}
}

func TestSaveRejectsInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project_data.json")
	doc := Defaults()
	doc.Tasks[0].Week = 99

	if err := Save(path, doc); err == nil {
		t.Fatal("invalid document saved")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("rejected save still wrote the file")
	}
}

func TestLoadMalformedJSONIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestExportMatchesSavedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project_data.json")
	doc := Defaults()
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, doc); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), onDisk) {
		t.Fatal("export differs from the persisted file")
	}
	if !bytes.HasSuffix(onDisk, []byte("\n")) {
		t.Error("persisted document missing trailing newline")
	}
}

func TestDefaultsIsValidAndFresh(t *testing.T) {
	doc := Defaults()
	if err := doc.Validate(); err != nil {
		t.Fatalf("seed document invalid: %v", err)
	}

	doc.Tasks[0].Description = "mutated"
	if Defaults().Tasks[0].Description == "mutated" {
		t.Fatal("Defaults shares state between calls")
	}
}
