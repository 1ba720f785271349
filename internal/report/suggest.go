package report

import (
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

// maxSuggestions caps the combined suggestion list.
const maxSuggestions = 5

// phraseCategory maps trigger words to a canned verb phrase.
type phraseCategory struct {
	prefix   string
	triggers []string
}

// Fixed domain phrase table. A category fires when any trigger word appears
// in the input.
var phraseCategories = []phraseCategory{
	{prefix: "Review and approve", triggers: []string{"design", "mockup", "logo", "layout", "wireframe"}},
	{prefix: "Check progress on", triggers: []string{"build", "develop", "page", "site", "feature"}},
	{prefix: "Send payment reminder to", triggers: []string{"pay", "payment", "invoice", "deposit", "milestone"}},
	{prefix: "Schedule meeting with", triggers: []string{"meet", "meeting", "call", "review", "sync"}},
	{prefix: "Create content for", triggers: []string{"content", "copy", "photo", "write", "text"}},
}

// Suggest returns up to five candidate completions for a partially typed task:
// canned verb-phrase completions from the phrase table (at most three), then
// fuzzy substring matches against the five most recent task descriptions.
// Duplicates are dropped case-insensitively; inputs under three characters
// produce nothing.
func Suggest(input string, tasks []model.Task) []string {
	input = strings.TrimSpace(input)
	if len(input) < 3 {
		return nil
	}

	lower := strings.ToLower(input)
	words := strings.Fields(lower)

	seen := make(map[string]bool)
	var suggestions []string
	add := func(s string) {
		key := strings.ToLower(s)
		if seen[key] || len(suggestions) >= maxSuggestions {
			return
		}
		seen[key] = true
		suggestions = append(suggestions, s)
	}

	// Existing descriptions never get re-suggested.
	for _, t := range tasks {
		seen[strings.ToLower(t.Description)] = true
	}

	patternCount := 0
	for _, cat := range phraseCategories {
		if patternCount >= 3 {
			break
		}
		for _, w := range words {
			if containsWord(cat.triggers, w) {
				before := len(suggestions)
				add(cat.prefix + " " + input)
				if len(suggestions) > before {
					patternCount++
				}
				break
			}
		}
	}

	// Fuzzy matches against the most recent five descriptions.
	start := len(tasks) - 5
	if start < 0 {
		start = 0
	}
	for _, t := range tasks[start:] {
		desc := strings.ToLower(t.Description)
		for _, w := range words {
			if strings.Contains(desc, w) {
				delete(seen, desc) // recent matches are offered even though they exist
				add(t.Description)
				break
			}
		}
	}

	return suggestions
}

func containsWord(words []string, w string) bool {
	for _, candidate := range words {
		if strings.Contains(w, candidate) || strings.Contains(candidate, w) {
			return true
		}
	}
	return false
}
