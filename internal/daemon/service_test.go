package daemon

import (
	"testing"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/report"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		TasksDone:    3,
		TasksOverdue: 1,
		Received:     11400,
		PaidOut:      5000,
		Alerts:       2,
	}
	curr := Snapshot{
		TasksDone:    5,
		TasksOverdue: 0,
		Received:     19300,
		PaidOut:      5000,
		Alerts:       1,
	}

	delta := diffSnapshots(prev, curr)
	if delta.TasksDone != 2 {
		t.Fatalf("TasksDone delta = %d, want 2", delta.TasksDone)
	}
	if delta.TasksOverdue != -1 {
		t.Fatalf("TasksOverdue delta = %d, want -1", delta.TasksOverdue)
	}
	if delta.Received != 7900 {
		t.Fatalf("Received delta = %d, want 7900", delta.Received)
	}
	if delta.PaidOut != 0 {
		t.Fatalf("PaidOut delta = %d, want 0", delta.PaidOut)
	}
	if delta.Alerts != -1 {
		t.Fatalf("Alerts delta = %d, want -1", delta.Alerts)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	if !diffSnapshots(prev, prev).isZero() {
		t.Fatal("identical snapshots should produce a zero delta")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DataFile:     "project_data.json",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

func TestPublishEventSubscribers(t *testing.T) {
	s := New(Config{})

	ch := make(chan Event, 4)
	id := s.addSubscriber(ch)

	s.publishEvent(Event{ID: 1, Type: "snapshot"})

	select {
	case got := <-ch:
		if got.ID != 1 || got.Type != "snapshot" {
			t.Fatalf("subscriber got %+v, want ID 1 snapshot", got)
		}
	default:
		t.Fatal("subscriber did not receive the published event")
	}

	s.removeSubscriber(id)
	s.publishEvent(Event{ID: 2, Type: "document_delta"})
	select {
	case <-ch:
		t.Fatal("removed subscriber still received an event")
	default:
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{})

	if s.cfg.Interval != 30*time.Second {
		t.Fatalf("Interval = %v, want 30s default", s.cfg.Interval)
	}
	if s.cfg.EventsBuffer != 200 {
		t.Fatalf("EventsBuffer = %d, want 200", s.cfg.EventsBuffer)
	}
	if s.cfg.Addr != "127.0.0.1:7373" {
		t.Fatalf("Addr = %q, want default local address", s.cfg.Addr)
	}
	if s.cfg.Thresholds != report.DefaultThresholds() {
		t.Fatalf("Thresholds = %+v, want defaults", s.cfg.Thresholds)
	}
}
