package tui

import (
	"fmt"
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/tui/components"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderContactsTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(headerStyle.Render("Contacts"))
	b.WriteString("\n\n")

	if len(a.doc.Contacts) == 0 {
		b.WriteString(mutedStyle.Render("  No contacts. Add them with `trackdeck contacts add`."))
		return b.String()
	}

	for _, c := range a.doc.Contacts {
		var cb strings.Builder
		cb.WriteString(nameStyle.Render(c.Name))
		cb.WriteString(mutedStyle.Render("  " + c.Role))
		if c.Notes != "" {
			cb.WriteString("\n")
			cb.WriteString(mutedStyle.Render(truncStr(c.Notes, components.CardInnerWidth(cw-2))))
		}
		b.WriteString(components.ContentCard("", cb.String(), cw-2))
		b.WriteString("\n")
	}

	if len(a.doc.Communications) > 0 {
		b.WriteString("\n ")
		b.WriteString(headerStyle.Render("Message templates"))
		b.WriteString("\n\n")
		for _, c := range a.doc.Communications {
			body := fmt.Sprintf("%s\n%s",
				mutedStyle.Render("for "+c.Audience),
				truncStr(c.Body, components.CardInnerWidth(cw-2)))
			b.WriteString(components.ContentCard(c.Name, body, cw-2))
			b.WriteString("\n")
		}
	}

	return b.String()
}
