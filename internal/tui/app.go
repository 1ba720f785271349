// Package tui provides the interactive Bubble Tea dashboard for trackdeck.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/store"
	"github.com/kwesthuizen/trackdeck/internal/tui/components"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
)

// DocLoadedMsg is sent when the document finishes loading.
type DocLoadedMsg struct {
	Doc *model.Document
	Err error
}

// DocChangedMsg is sent when the data file changes on disk.
type DocChangedMsg struct{}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabTasks
	tabFinances
	tabWeeks
	tabContacts
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	dataPath string

	doc     *model.Document
	loaded  bool
	loadErr error
	saveErr error

	// Derived state, recomputed on every document change
	stats     model.TaskStats
	finances  model.FinancialSummary
	countdown model.LaunchCountdown
	notes     []model.Notification
	weeks     []model.WeekProgress

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Tasks tab state
	taskCursor int
	taskFilter int // index into report.FilterKeys

	// Add-task form (huh)
	addForm *huh.Form
	addVals addTaskValues
	adding  bool

	// Watch channel fed by the fsnotify goroutine
	watchSub chan tea.Msg
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model for the given document path.
func NewApp(dataPath string) App {
	return App{
		dataPath: dataPath,
		watchSub: make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDocCmd(a.dataPath),
		watchDocCmd(a.dataPath, a.watchSub),
	)
}

func (a *App) recompute() {
	if a.doc == nil {
		return
	}
	now := time.Now()
	a.stats = report.TaskStats(a.doc.Tasks, now)
	a.finances = report.FinancialSummary(a.doc.Finances)
	a.countdown = report.LaunchCountdown(a.doc.Project, now)
	a.notes = report.Notifications(a.doc, now, report.DefaultThresholds())
	a.weeks = report.Timeline(a.doc)

	if a.taskCursor >= len(a.visibleTasks()) {
		a.taskCursor = len(a.visibleTasks()) - 1
	}
	if a.taskCursor < 0 {
		a.taskCursor = 0
	}
}

// visibleTasks returns the tasks tab list under the current filter, in
// priority order.
func (a App) visibleTasks() []model.Task {
	if a.doc == nil {
		return nil
	}
	now := time.Now()
	f := report.Filter{Key: report.FilterKeys[a.taskFilter]}
	return report.PriorityOrder(report.FilterTasks(a.doc.Tasks, f, now), now)
}

// save persists the document and surfaces any failure in the status area.
func (a *App) save() {
	if a.doc == nil {
		return
	}
	a.saveErr = store.Save(a.dataPath, a.doc)
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.adding {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabTasks && a.taskCursor > 0 {
				a.taskCursor--
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabTasks && a.taskCursor < len(a.visibleTasks())-1 {
				a.taskCursor++
			}
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// Add-task form intercepts all keys
		if a.adding && a.addForm != nil {
			return a.updateAddForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Manual reload
		if key == "r" {
			return a, loadDocCmd(a.dataPath)
		}

		// Tasks tab keybindings
		if a.activeTab == tabTasks {
			tasks := a.visibleTasks()
			switch key {
			case "j", "down":
				if a.taskCursor < len(tasks)-1 {
					a.taskCursor++
				}
				return a, nil
			case "k", "up":
				if a.taskCursor > 0 {
					a.taskCursor--
				}
				return a, nil
			case "g":
				a.taskCursor = 0
				return a, nil
			case "G":
				if len(tasks) > 0 {
					a.taskCursor = len(tasks) - 1
				}
				return a, nil
			case "tab":
				a.taskFilter = (a.taskFilter + 1) % len(report.FilterKeys)
				a.taskCursor = 0
				return a, nil
			case "enter", " ":
				if a.taskCursor < len(tasks) {
					t := tasks[a.taskCursor]
					if t.Status == model.TaskCompleted {
						_ = a.doc.ReopenTask(t.ID)
					} else {
						_ = a.doc.CompleteTask(t.ID)
					}
					a.save()
				}
				return a, nil
			case "a":
				return a.startAddForm()
			}
		}

		// Settings tab: cycle theme
		if a.activeTab == tabSettings && key == "enter" {
			a.cycleTheme()
			return a, nil
		}

		// Tab navigation
		switch key {
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DocLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.doc = msg.Doc
			a.recompute()
		}
		return a, nil

	case DocChangedMsg:
		// External edit: reload and keep listening.
		return a, tea.Batch(loadDocCmd(a.dataPath), waitForWatchMsg(a.watchSub))
	}

	if a.adding && a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  trackdeck needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return "\n  Loading project data..."
	}

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render("Could not load project data") +
			"\n\n  " + a.loadErr.Error() +
			"\n\n  [q]uit"
	}

	if a.adding && a.addForm != nil {
		return a.addForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	bindings := []struct{ key, desc string }{
		{"o t f w c x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate tasks"},
		{"g G", "First / Last task"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actions := []struct{ key, desc string }{
		{"enter/space", "Toggle task done"},
		{"a", "Add a task"},
		{"tab", "Cycle task filter"},
		{"r", "Reload from disk"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actions {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"

	statusBar := components.RenderStatusBar(w, len(a.notes), true)
	if a.saveErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		statusBar = errStyle.Render(" save failed: "+a.saveErr.Error()) + "\n" + statusBar
	}

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTasks:
		content = a.renderTasksTab(cw, contentH)
	case tabFinances:
		content = a.renderFinancesTab(cw)
	case tabWeeks:
		content = a.renderWeeksTab(cw)
	case tabContacts:
		content = a.renderContactsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func (a *App) cycleTheme() {
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			theme.SetActive(theme.All[(i+1)%len(theme.All)].Name)
			return
		}
	}
	theme.SetActive(theme.All[0].Name)
}

// ─── Commands ───────────────────────────────────────────────────

func loadDocCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := store.Load(path)
		return DocLoadedMsg{Doc: doc, Err: err}
	}
}

// watchDocCmd starts an fsnotify watcher on the document's directory and
// forwards change events through sub. Watching the directory (not the file)
// survives the save-rename cycle.
func watchDocCmd(path string, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			_ = watcher.Close()
			return nil
		}

		go func() {
			defer func() { _ = watcher.Close() }()
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Name == path && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
						select {
						case sub <- DocChangedMsg{}:
						default:
						}
					}
				case _, ok := <-watcher.Errors:
					if !ok {
						return
					}
				}
			}
		}()

		return <-sub
	}
}

func waitForWatchMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
