package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaehong21/ats/internal/service"
)

// renderHeader renders the top bar: application identity on the left,
// profile, region, and clock on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("ats")
	if m.version != "" {
		left += styles.MutedText.Render(" v" + m.version)
	}

	right := styles.MutedText.Render("Profile: ") +
		styles.SuccessText.Render(m.identity.Profile) +
		styles.FaintText.Render(" | ") +
		styles.MutedText.Render("Region: ") +
		styles.SuccessText.Render(m.identity.Region) +
		styles.FaintText.Render(" | ") +
		styles.WarningText.Render(m.now.Format("15:04:05"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderInputBar renders the second line: breadcrumb in normal mode, the
// live input buffer in command and search modes.
func (m Model) renderInputBar() string {
	styles := m.theme.Styles()

	switch m.mode {
	case modeCommand:
		return styles.InfoText.Render(m.input.View()) + m.modeTag("[:]")
	case modeSearch:
		return styles.WarningText.Render(m.input.View()) + m.modeTag("[/]")
	}

	crumb := m.breadcrumb()
	line := styles.FaintText.Render("> ") + styles.Text.Render(crumb)
	if m.active.SearchFilter != "" {
		line += styles.MutedText.Render("  filter=") + styles.WarningText.Render(m.active.SearchFilter)
	}
	return line
}

func (m Model) modeTag(tag string) string {
	pad := m.width - lipgloss.Width(m.input.View()) - len(tag) - 2
	if pad < 1 {
		pad = 1
	}
	return strings.Repeat(" ", pad) + m.theme.Styles().MutedText.Render(tag)
}

// breadcrumb names the active navigational coordinate, e.g. "ecr" or
// "ecr/my-repo".
func (m Model) breadcrumb() string {
	id := string(m.active.Service)
	switch m.active.View {
	case service.ViewDetail:
		if m.active.Drill != nil {
			return id + "/" + m.active.Drill.ParentName
		}
		return id + "/detail"
	case service.ViewCustom:
		if m.active.CustomTag != "" {
			return id + "/" + m.active.CustomTag
		}
		return id
	default:
		return id
	}
}

// renderContent renders the main pane: the session-wide error when present,
// otherwise the active service's view of its cached data.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	contentHeight := m.contentHeight()

	var body string
	switch {
	case m.errMsg != "":
		title := fmt.Sprintf("%s - Error", m.active.Service)
		body = styles.DangerText.Render(title) + "\n\n" + styles.DangerText.Render(m.errMsg)

	default:
		svc, ok := m.registry.Get(m.active.Service)
		if !ok {
			body = styles.MutedText.Render("No service selected. Use :ecr to start.")
			break
		}
		rc := service.RenderContext{
			Width:   m.width,
			Height:  contentHeight,
			Loading: m.loading,
			Theme:   m.theme,
		}
		body = svc.Render(rc, m.active, m.dataFor(m.active))
	}

	return lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(body)
}

// contentHeight is the pane height left after header, input bar, and footer.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// renderFooter renders the status line: load/copy status on the left,
// mode-specific hotkeys on the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var left string
	switch {
	case m.loading:
		left = styles.WarningText.Render("Loading...")
	case m.copied != nil:
		left = styles.SuccessText.Render(fmt.Sprintf("✓ %s copied", m.copied.Label))
	default:
		left = styles.SuccessText.Render("Ready")
	}

	var right string
	switch m.mode {
	case modeCommand:
		right = m.hotkeys("Enter", "Execute", "Esc", "Cancel")
	case modeSearch:
		right = m.hotkeys("Enter", "Apply", "Esc", "Cancel")
	default:
		right = m.hotkeys("q", "Quit", ":", "Command", "/", "Search", "c", "Copy", "?", "Help")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// hotkeys renders alternating key/description pairs.
func (m Model) hotkeys(pairs ...string) string {
	styles := m.theme.Styles()
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.WarningText.Render(pairs[i]+" ")+styles.MutedText.Render(pairs[i+1]))
	}
	return strings.Join(parts, styles.FaintText.Render(" | "))
}
