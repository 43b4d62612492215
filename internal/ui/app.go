package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaehong21/ats/internal/config"
	"github.com/jaehong21/ats/internal/prefs"
	"github.com/jaehong21/ats/internal/service"
	"github.com/jaehong21/ats/internal/state"
	"github.com/jaehong21/ats/internal/theme"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeCommand
	modeSearch
)

const (
	defaultRefreshInterval = 30 * time.Second
	uiTickInterval         = time.Second
	// copyStatusTTL governs both how long the footer shows the copied
	// message and when it is cleared from state.
	copyStatusTTL = 3 * time.Second
)

// copyStatus is the transient footer feedback after a successful copy.
type copyStatus struct {
	Label string
	At    time.Time
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Registry     *service.Registry
	Cache        *state.Cache
	Identity     config.Identity
	Root         service.ID
	RefreshEvery time.Duration
	ThemeName    string
	PrefsPath    string
	Version      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx          context.Context
	registry     *service.Registry
	cache        *state.Cache
	identity     config.Identity
	version      string
	prefsPath    string
	refreshEvery time.Duration

	theme  theme.Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	mode  inputMode
	input textinput.Model

	active service.ViewState
	stack  []service.ViewState

	loading    bool
	errMsg     string
	copied     *copyStatus
	lastReload time.Time
	now        time.Time

	showHelp bool

	// writeClipboard is swapped out in tests so they never touch the OS
	// clipboard.
	writeClipboard func(string) error
}

// New creates the controller model rooted at opts.Root's list view.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refreshEvery := opts.RefreshEvery
	if refreshEvery <= 0 {
		refreshEvery = defaultRefreshInterval
	}

	input := textinput.New()
	input.CharLimit = 128
	input.Prompt = ""

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:          ctx,
		registry:     opts.Registry,
		cache:        opts.Cache,
		identity:     opts.Identity,
		version:      opts.Version,
		prefsPath:    prefsPath,
		refreshEvery: refreshEvery,
		theme:        theme.Get(opts.ThemeName),
		keys:         defaultKeyMap(),
		mode:         modeNormal,
		input:        input,
		active:       service.NewViewState(opts.Root, service.ViewList),
		// The initial load is issued from Init, so the session starts in
		// the loading state.
		loading:        true,
		lastReload:     time.Now(),
		now:            time.Now(),
		writeClipboard: clipboard.WriteAll,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if svc, ok := m.registry.Get(m.active.Service); ok {
		cmds = append(cmds, loadCmd(m.ctx, svc, m.active))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case dataMsg:
		return m.handleData(msg)
	}

	return m, nil
}

// handleTick drives the clock, copy-status expiry, and the periodic refresh
// of the active view.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now

	if m.copied != nil && now.Sub(m.copied.At) >= copyStatusTTL {
		m.copied = nil
	}

	var reload tea.Cmd
	if !m.loading && now.Sub(m.lastReload) >= m.refreshEvery {
		reload = m.startReload(m.active)
	}

	return m, tea.Batch(tickCmd(), reload)
}

// handleData finishes a reload. The result is always written to the slot the
// load was issued for, never the currently active view, so a load that
// resolves after the user navigated away cannot cross-assign results.
func (m Model) handleData(msg dataMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, nil
	}

	m.cache.Replace(msg.key, msg.data)
	m.errMsg = ""

	// Clamp the active selection only when the completed load belongs to
	// the active view.
	if msg.key == state.KeyFor(m.active) {
		m.active.SelectedIndex = service.ClampIndex(m.active.SelectedIndex, m.filteredLen(m.active))
	}

	return m, nil
}

// startReload marks the session as loading and issues the fetch for view.
// Callers must not start a second reload while one is outstanding.
func (m *Model) startReload(view service.ViewState) tea.Cmd {
	svc, ok := m.registry.Get(view.Service)
	if !ok {
		return nil
	}
	m.loading = true
	m.lastReload = time.Now()
	return loadCmd(m.ctx, svc, view)
}

// dataFor returns the cached result set for view's slot.
func (m Model) dataFor(view service.ViewState) service.Data {
	data, _ := m.cache.Get(state.KeyFor(view))
	return data
}

// filteredLen returns the filtered item count of view's cached data.
func (m Model) filteredLen(view service.ViewState) int {
	svc, ok := m.registry.Get(view.Service)
	if !ok {
		return 0
	}
	return len(service.Filter(svc, m.dataFor(view), view.SearchFilter))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderHeader() + "\n" +
		m.renderInputBar() + "\n" +
		m.renderContent() + "\n" +
		m.renderFooter()
}

// Messages

type tickMsg time.Time

// dataMsg carries a completed load, keyed by the slot it was fetched for.
type dataMsg struct {
	key  state.Key
	data service.Data
	err  error
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(uiTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadCmd(ctx context.Context, svc service.Service, view service.ViewState) tea.Cmd {
	key := state.KeyFor(view)
	return func() tea.Msg {
		data, err := svc.LoadData(ctx, view)
		return dataMsg{key: key, data: data, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
