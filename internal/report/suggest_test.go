package report

import (
	"strings"
	"testing"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

func TestSuggestShortInput(t *testing.T) {
	if got := Suggest("de", nil); got != nil {
		t.Errorf("two-char input suggested %v", got)
	}
	if got := Suggest("  d  ", nil); got != nil {
		t.Errorf("whitespace-padded short input suggested %v", got)
	}
}

func TestSuggestPhrases(t *testing.T) {
	got := Suggest("design homepage", nil)

	want := "Review and approve design homepage"
	found := false
	for _, s := range got {
		if s == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestions %v missing %q", got, want)
	}
}

func TestSuggestCapsAndDedupes(t *testing.T) {
	// "design payment meeting content build" trips all five categories, but
	// pattern suggestions cap at three.
	got := Suggest("design payment meeting content build", nil)
	if len(got) > 3 {
		t.Fatalf("got %d pattern suggestions, want at most 3: %v", len(got), got)
	}

	seen := make(map[string]bool)
	for _, s := range got {
		key := strings.ToLower(s)
		if seen[key] {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[key] = true
	}
}

func TestSuggestRecentTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Description: "Old design review"}, // beyond the recency window
		{ID: 2, Description: "Book the venue"},
		{ID: 3, Description: "Collect logo files"},
		{ID: 4, Description: "Write About page copy"},
		{ID: 5, Description: "Approve logo variants"},
		{ID: 6, Description: "Send invoice"},
	}

	got := Suggest("logo", tasks)

	hasRecent := false
	for _, s := range got {
		if s == "Collect logo files" || s == "Approve logo variants" {
			hasRecent = true
		}
		if s == "Old design review" {
			t.Error("matched a task outside the five most recent")
		}
	}
	if !hasRecent {
		t.Fatalf("suggestions %v missing recent logo tasks", got)
	}

	if len(got) > 5 {
		t.Errorf("got %d suggestions, want at most 5", len(got))
	}
}
