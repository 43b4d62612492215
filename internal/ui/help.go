package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the fullscreen help overlay. Any key dismisses it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move down/up"},
				{"enter", "Drill into selection"},
				{"esc", "Back"},
			},
		},
		{
			title: "Actions",
			items: []helpItem{
				{"/", "Filter current view"},
				{":", "Command mode"},
				{"c", "Copy selection"},
				{"r", "Refresh"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	for _, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Registered services and their command aliases.
	b.WriteString(styles.AccentText.Bold(true).Render("Services"))
	b.WriteString("\n")
	for _, meta := range m.registry.Metadata() {
		b.WriteString(keyStyle.Render(":" + meta.Command))
		b.WriteString(styles.Text.Render(meta.Name))
		b.WriteString(styles.MutedText.Render(" - " + meta.Description))
		b.WriteString("\n")
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
