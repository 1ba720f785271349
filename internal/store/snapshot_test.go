package store

import (
	"path/filepath"
	"testing"
)

func openTestSnapshots(t *testing.T) *Snapshots {
	t.Helper()
	s, err := OpenSnapshots(filepath.Join(t.TempDir(), SnapshotFileName))
	if err != nil {
		t.Fatalf("OpenSnapshots: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotRecordAndGet(t *testing.T) {
	s := openTestSnapshots(t)
	doc := Defaults()

	id, err := s.Record(doc)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	back, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if back.Project.Name != doc.Project.Name {
		t.Errorf("project name = %q, want %q", back.Project.Name, doc.Project.Name)
	}
	if len(back.Tasks) != len(doc.Tasks) {
		t.Errorf("task count = %d, want %d", len(back.Tasks), len(doc.Tasks))
	}

	if _, err := s.Get(id + 100); err == nil {
		t.Fatal("missing snapshot id returned a document")
	}
}

func TestSnapshotListNewestFirst(t *testing.T) {
	s := openTestSnapshots(t)
	doc := Defaults()

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := s.Record(doc)
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	infos, err := s.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("len = %d, want 3", len(infos))
	}
	if infos[0].ID != ids[2] || infos[2].ID != ids[0] {
		t.Errorf("order = [%d %d %d], want newest first", infos[0].ID, infos[1].ID, infos[2].ID)
	}
	if infos[0].TaskCount != len(doc.Tasks) {
		t.Errorf("TaskCount = %d, want %d", infos[0].TaskCount, len(doc.Tasks))
	}
	if infos[0].TakenAt.IsZero() {
		t.Error("TakenAt not recorded")
	}

	limited, err := s.List(2)
	if err != nil {
		t.Fatalf("List(2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestSnapshots(t)
	doc := Defaults()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := s.Record(doc)
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
		last = id
	}

	if err := s.Prune(2); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	infos, err := s.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len after prune = %d, want 2", len(infos))
	}
	if infos[0].ID != last {
		t.Errorf("newest snapshot pruned: kept %d, want %d", infos[0].ID, last)
	}

	// Prune with a nonpositive keep is a no-op.
	if err := s.Prune(0); err != nil {
		t.Fatalf("Prune(0): %v", err)
	}
	infos, _ = s.List(10)
	if len(infos) != 2 {
		t.Error("Prune(0) deleted snapshots")
	}
}
