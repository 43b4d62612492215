package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaehong21/ats/internal/prefs"
	"github.com/jaehong21/ats/internal/service"
	"github.com/jaehong21/ats/internal/theme"
)

// handleKey dispatches keyboard input by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits regardless of mode.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = theme.Get(theme.Next(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.mode = modeCommand
		m.input.SetValue("")
		m.input.Prompt = ":"
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.SetValue("")
		m.input.Prompt = "/"
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.drillDown()

	case key.Matches(msg, m.keys.Back):
		return m.navigateBack()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		return m, m.startReload(m.active)

	case key.Matches(msg, m.keys.Copy):
		m.copySelection()
		return m, nil
	}

	return m, nil
}

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.exitInput()
		return m, nil

	case tea.KeyEnter:
		command := strings.TrimSpace(m.input.Value())
		m.exitInput()
		return m.executeCommand(command)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		// Cancelling discards the filter entirely.
		m.exitInput()
		m.active.SearchFilter = ""
		m.active.SelectedIndex = 0
		return m, nil

	case tea.KeyEnter:
		// Committing keeps the filter typed so far.
		m.active.SearchFilter = m.input.Value()
		m.exitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Every edit re-derives the filtered view from the cached data and
	// resets the selection. No network access happens here.
	m.active.SearchFilter = m.input.Value()
	m.active.SelectedIndex = 0
	return m, cmd
}

func (m *Model) exitInput() {
	m.mode = modeNormal
	m.input.SetValue("")
	m.input.Blur()
}

// executeCommand runs a typed command: quit, refresh, or a registered
// service alias. Unknown commands are ignored without feedback.
func (m Model) executeCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit", "q":
		return m, tea.Quit

	case "refresh", "r":
		if m.loading {
			return m, nil
		}
		return m, m.startReload(m.active)
	}

	if id, _, ok := m.registry.ByCommand(command); ok {
		// A command switch resets to the service's root list view; it is
		// not a drill-down, so the stack is discarded rather than pushed.
		m.active = service.NewViewState(id, service.ViewList)
		m.stack = nil
		return m, m.startReload(m.active)
	}

	return m, nil
}

// drillDown performs the forward navigation transition for the selected
// filtered item, pushing the current view onto the stack.
func (m Model) drillDown() (tea.Model, tea.Cmd) {
	svc, ok := m.registry.Get(m.active.Service)
	if !ok {
		return m, nil
	}
	next, ok := svc.HandleEnter(m.active, m.dataFor(m.active))
	if !ok {
		return m, nil
	}
	m.stack = append(m.stack, m.active)
	m.active = next
	return m, m.startReload(m.active)
}

// navigateBack pops the navigation stack. The popped state's selection and
// filter are reused as-is, but its data is reloaded rather than trusted
// stale. With an empty stack this is a no-op.
func (m Model) navigateBack() (tea.Model, tea.Cmd) {
	if len(m.stack) == 0 {
		return m, nil
	}
	m.active = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return m, m.startReload(m.active)
}

// moveSelection moves the selection by delta within the filtered view,
// saturating at both ends.
func (m *Model) moveSelection(delta int) {
	n := m.filteredLen(m.active)
	if n == 0 {
		m.active.SelectedIndex = 0
		return
	}
	idx := m.active.SelectedIndex + delta
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	m.active.SelectedIndex = idx
}

// copySelection exports the selected item to the clipboard. Copy is
// best-effort: clipboard failures are silent and only a success records the
// transient footer status.
func (m *Model) copySelection() {
	svc, ok := m.registry.Get(m.active.Service)
	if !ok {
		return
	}
	payload, ok := svc.CopyContent(m.active, m.dataFor(m.active))
	if !ok {
		return
	}
	if err := m.writeClipboard(payload.Content); err != nil {
		return
	}
	m.copied = &copyStatus{Label: payload.Label, At: time.Now()}
}
