package ecr

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaehong21/ats/internal/service"
	"github.com/jaehong21/ats/internal/theme"
)

type themeStyles = theme.Styles

type column struct {
	label string
	width int
}

type cell struct {
	text  string
	style lipgloss.Style
}

// paneTitle builds the content pane title, reflecting loading state and the
// active filter.
func paneTitle(heading string, loading bool, filter string, filtered, total int) string {
	if loading {
		return heading + " (Loading...)"
	}
	if filter == "" {
		return fmt.Sprintf("%s (%d)", heading, filtered)
	}
	return fmt.Sprintf("%s (%d/%d) - Filter: %s", heading, filtered, total, filter)
}

// emptyMessage picks the message for an empty filtered view. "No ... found"
// and "No ... match the current filter" are deliberately distinct.
func emptyMessage(noun string, loading bool, filter string) string {
	if loading {
		return fmt.Sprintf("Loading ECR %s...", noun)
	}
	if filter != "" {
		return fmt.Sprintf("No %s match the current filter", noun)
	}
	return fmt.Sprintf("No ECR %s found", noun)
}

func renderEmptyPane(rc service.RenderContext, title, message string) string {
	styles := rc.Theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(message))
	return b.String()
}

// renderTable renders a title line, a header row, and one line per row with
// the selected row highlighted. When rows outrun the pane height, a window
// around the selection is shown.
func renderTable(rc service.RenderContext, title string, cols []column, rows [][]cell, selected int) string {
	styles := rc.Theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = styles.TableHdr.Render(pad(col.label, col.width))
	}
	b.WriteString(strings.Join(headers, " "))
	b.WriteString("\n")

	// Title and header occupy two lines of the pane.
	visible := rc.Height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := start; i < end; i++ {
		row := rows[i]
		if i == selected {
			parts := make([]string, len(row))
			for j, c := range row {
				parts[j] = pad(c.text, cols[j].width)
			}
			b.WriteString(styles.Selected.Render(strings.Join(parts, " ")))
		} else {
			parts := make([]string, len(row))
			for j, c := range row {
				parts[j] = c.style.Render(pad(c.text, cols[j].width))
			}
			b.WriteString(strings.Join(parts, " "))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "Unknown"
	}
	return t.Format("2006-01-02 15:04")
}

func formatSize(bytes int64) string {
	if bytes <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/1048576.0)
}
