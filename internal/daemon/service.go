// Package daemon provides the long-running background project monitor service.
// It watches the document file for changes, recomputes the derived summaries,
// and serves them over a small local HTTP API.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/store"

	"github.com/fsnotify/fsnotify"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DataFile     string
	Thresholds   report.Thresholds
	Interval     time.Duration // fallback poll interval when fsnotify misses
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact derived-state summary for status/event payloads.
type Snapshot struct {
	At            time.Time `json:"at"`
	ProjectName   string    `json:"project_name"`
	CurrentWeek   int       `json:"current_week"`
	TasksTotal    int       `json:"tasks_total"`
	TasksDone     int       `json:"tasks_done"`
	TasksOverdue  int       `json:"tasks_overdue"`
	Received      int       `json:"received"`
	PaidOut       int       `json:"paid_out"`
	Profit        int       `json:"profit"`
	Balance       int       `json:"balance"`
	BudgetUsedPct float64   `json:"budget_used_pct"`
	DaysToLaunch  int       `json:"days_to_launch"`
	Launched      bool      `json:"launched"`
	Alerts        int       `json:"alerts"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	TasksDone    int `json:"tasks_done"`
	TasksOverdue int `json:"tasks_overdue"`
	Received     int `json:"received"`
	PaidOut      int `json:"paid_out"`
	Alerts       int `json:"alerts"`
}

func (d Delta) isZero() bool {
	return d.TasksDone == 0 &&
		d.TasksOverdue == 0 &&
		d.Received == 0 &&
		d.PaidOut == 0 &&
		d.Alerts == 0
}

// Event is emitted whenever the derived state changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time            `json:"started_at"`
	LastPollAt      time.Time            `json:"last_poll_at"`
	PollCount       int64                `json:"poll_count"`
	DataFile        string               `json:"data_file"`
	Summary         Snapshot             `json:"summary"`
	Notifications   []model.Notification `json:"notifications"`
	LastError       string               `json:"last_error,omitempty"`
	EventCount      int                  `json:"event_count"`
	SubscriberCount int                  `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	notes       []model.Notification
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7373"
	}
	if cfg.Thresholds == (report.Thresholds{}) {
		cfg.Thresholds = report.DefaultThresholds()
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run serves the HTTP endpoints and refreshes on file changes until ctx is
// canceled. The fsnotify watcher catches external edits immediately; the
// ticker is a fallback for editors that bypass rename events.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("trackdeck daemon: file watching disabled: %v", err)
	} else {
		defer func() { _ = watcher.Close() }()
		// Watch the directory: saves replace the file via rename, which
		// drops a watch set on the file itself.
		if err := watcher.Add(dirOf(s.cfg.DataFile)); err != nil {
			log.Printf("trackdeck daemon: cannot watch %s: %v", s.cfg.DataFile, err)
		}
	}

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if watcher != nil {
		watchEvents = watcher.Events
		watchErrors = watcher.Errors
	}

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case ev := <-watchEvents:
			if ev.Name == s.cfg.DataFile && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.pollOnce()
			}
		case err := <-watchErrors:
			log.Printf("trackdeck daemon watch error: %v", err)
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	doc, err := store.Load(s.cfg.DataFile)
	now := time.Now()

	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("trackdeck daemon poll error: %v", err)
		return
	}

	notes := report.Notifications(doc, now, s.cfg.Thresholds)
	snap := snapshotFromDocument(doc, notes, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.notes = notes
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{ID: s.nextEventID, Type: "snapshot", Timestamp: now, Snapshot: snap}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{ID: s.nextEventID, Type: "document_delta", Timestamp: now, Snapshot: snap, Delta: delta}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

func snapshotFromDocument(doc *model.Document, notes []model.Notification, at time.Time) Snapshot {
	stats := report.TaskStats(doc.Tasks, at)
	summary := report.FinancialSummary(doc.Finances)
	countdown := report.LaunchCountdown(doc.Project, at)

	return Snapshot{
		At:            at,
		ProjectName:   doc.Project.Name,
		CurrentWeek:   doc.Project.CurrentWeek,
		TasksTotal:    stats.Total,
		TasksDone:     stats.Completed,
		TasksOverdue:  stats.Overdue,
		Received:      summary.Received,
		PaidOut:       summary.PaidOut,
		Profit:        summary.Profit,
		Balance:       summary.Balance,
		BudgetUsedPct: report.BudgetUtilization(doc.Finances) * 100,
		DaysToLaunch:  countdown.DaysRemaining,
		Launched:      countdown.Launched,
		Alerts:        len(notes),
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		TasksDone:    curr.TasksDone - prev.TasksDone,
		TasksOverdue: curr.TasksOverdue - prev.TasksOverdue,
		Received:     curr.Received - prev.Received,
		PaidOut:      curr.PaidOut - prev.PaidOut,
		Alerts:       curr.Alerts - prev.Alerts,
	}
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollCount:       s.pollCount,
		DataFile:        s.cfg.DataFile,
		Summary:         s.snapshot,
		Notifications:   s.notes,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
