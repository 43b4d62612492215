package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaehong21/ats/internal/config"
	"github.com/jaehong21/ats/internal/service"
	"github.com/jaehong21/ats/internal/state"
)

type navItem struct {
	id string
}

func (n navItem) ItemID() string { return n.id }

// navService is a minimal browsable service: list items drill into a detail
// view named after the selected item.
type navService struct {
	meta    service.Metadata
	byView  map[service.ViewType]service.Data
	loadErr error
	loads   int
}

func newNavService(id service.ID) *navService {
	return &navService{
		meta: service.Metadata{
			ID:      id,
			Name:    string(id),
			Command: string(id),
		},
		byView: make(map[service.ViewType]service.Data),
	}
}

func (s *navService) Metadata() service.Metadata { return s.meta }

func (s *navService) LoadData(_ context.Context, view service.ViewState) (service.Data, error) {
	s.loads++
	if s.loadErr != nil {
		return service.Data{}, s.loadErr
	}
	return s.byView[view.View], nil
}

func (s *navService) Render(_ service.RenderContext, _ service.ViewState, _ service.Data) string {
	return "content"
}

func (s *navService) HandleEnter(view service.ViewState, data service.Data) (service.ViewState, bool) {
	if view.View != service.ViewList {
		return service.ViewState{}, false
	}
	filtered := service.Filter(s, data, view.SearchFilter)
	if view.SelectedIndex >= len(filtered) {
		return service.ViewState{}, false
	}
	id := filtered[view.SelectedIndex].ItemID()
	next := service.NewViewState(s.meta.ID, service.ViewDetail)
	next.Drill = &service.DrillContext{ParentName: id, ParentURI: id + "-uri"}
	return next, true
}

func (s *navService) CopyContent(view service.ViewState, data service.Data) (service.CopyPayload, bool) {
	filtered := service.Filter(s, data, view.SearchFilter)
	if view.SelectedIndex >= len(filtered) {
		return service.CopyPayload{}, false
	}
	id := filtered[view.SelectedIndex].ItemID()
	return service.CopyPayload{Content: id + "-uri", Label: id}, true
}

func (s *navService) MatchesFilter(item service.Item, filter string) bool {
	return strings.Contains(strings.ToLower(item.ItemID()), strings.ToLower(filter))
}

func listData(ids ...string) service.Data {
	items := make([]service.Item, len(ids))
	for i, id := range ids {
		items[i] = navItem{id: id}
	}
	return service.Data{Items: items}
}

func newTestModel(svc service.Service, extra ...service.Service) Model {
	registry := service.NewRegistry()
	registry.Register(svc)
	for _, s := range extra {
		registry.Register(s)
	}
	m := New(Options{
		Registry: registry,
		Cache:    state.NewCache(),
		Identity: config.Identity{Profile: "default", Region: "us-east-1"},
		Root:     svc.Metadata().ID,
	})
	m.ready = true
	m.width = 120
	m.height = 40
	m.loading = false
	m.writeClipboard = func(string) error { return nil }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

func seed(m Model, view service.ViewState, data service.Data) {
	m.cache.Replace(state.KeyFor(view), data)
}

func TestEmptyLoadSelectsZero(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	m.active.SelectedIndex = 3
	m.loading = true

	m, _ = update(t, m, dataMsg{key: state.KeyFor(m.active), data: service.Data{}})

	if m.loading {
		t.Fatalf("loading should clear after a completed load")
	}
	if m.active.SelectedIndex != 0 {
		t.Fatalf("SelectedIndex = %d, want 0 for empty data", m.active.SelectedIndex)
	}
	if m.errMsg != "" {
		t.Fatalf("empty result is a success, got error %q", m.errMsg)
	}
}

func TestLoadClampsSelection(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	m.active.SelectedIndex = 5

	m, _ = update(t, m, dataMsg{key: state.KeyFor(m.active), data: listData("a", "b")})

	if m.active.SelectedIndex != 1 {
		t.Fatalf("SelectedIndex = %d, want clamped to 1", m.active.SelectedIndex)
	}
}

func TestSearchNarrowsSelectsAndCopies(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("api-service", "web-service", "db-service"))
	m.active.SelectedIndex = 2

	var copied string
	m.writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	m = press(t, m, "/", "w", "e", "b", "enter")

	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want normal after commit", m.mode)
	}
	if m.active.SearchFilter != "web" {
		t.Fatalf("SearchFilter = %q, want web", m.active.SearchFilter)
	}
	if got := m.filteredLen(m.active); got != 1 {
		t.Fatalf("filtered length = %d, want 1", got)
	}
	if m.active.SelectedIndex != 0 {
		t.Fatalf("SelectedIndex = %d, want 0 after filter edit", m.active.SelectedIndex)
	}

	m = press(t, m, "c")
	if copied != "web-service-uri" {
		t.Fatalf("clipboard = %q, want web-service-uri", copied)
	}
	if m.copied == nil || m.copied.Label != "web-service" {
		t.Fatalf("copy status = %+v, want label web-service", m.copied)
	}
}

func TestSearchCancelClearsFilter(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("api-service", "web-service"))

	m = press(t, m, "/", "w", "e", "b", "esc")

	if m.active.SearchFilter != "" {
		t.Fatalf("SearchFilter = %q, want cleared on cancel", m.active.SearchFilter)
	}
	if m.active.SelectedIndex != 0 {
		t.Fatalf("SelectedIndex = %d, want 0", m.active.SelectedIndex)
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
}

func TestSearchEditsNeverTouchTheNetwork(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("api-service", "web-service"))
	before := svc.loads

	m = press(t, m, "/", "w", "e", "b", "enter")

	if svc.loads != before {
		t.Fatalf("filter editing issued %d loads, want 0", svc.loads-before)
	}
	_ = m
}

func TestDrillDownPushesAndReloadsDetailSlot(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("repo-a", "repo-b"))

	next, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = next

	if len(m.stack) != 1 {
		t.Fatalf("stack length = %d, want 1", len(m.stack))
	}
	if m.stack[0].View != service.ViewList {
		t.Fatalf("pushed view = %v, want list", m.stack[0].View)
	}
	if m.active.View != service.ViewDetail {
		t.Fatalf("active view = %v, want detail", m.active.View)
	}
	if m.active.Drill == nil || m.active.Drill.ParentName != "repo-a" {
		t.Fatalf("Drill = %+v, want parent repo-a", m.active.Drill)
	}
	if !m.loading {
		t.Fatalf("drill-down must trigger a reload")
	}
	if cmd == nil {
		t.Fatalf("expected a load command")
	}

	msg, ok := cmd().(dataMsg)
	if !ok {
		t.Fatalf("command produced %T, want dataMsg", cmd())
	}
	want := state.Key{Service: "ecr", View: service.ViewDetail}
	if msg.key != want {
		t.Fatalf("reload keyed to %+v, want the detail slot %+v", msg.key, want)
	}
}

func TestDrillDownWithEmptySelectionIsNoOp(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, service.Data{})

	next, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = next

	if len(m.stack) != 0 || m.active.View != service.ViewList {
		t.Fatalf("no transition expected on empty data")
	}
	if cmd != nil {
		t.Fatalf("no reload expected")
	}
}

func TestBackPopsAndReloads(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("repo-a"))
	m.active.SearchFilter = "repo"
	before := m.active

	m = press(t, m, "enter")
	if m.active.View != service.ViewDetail {
		t.Fatalf("setup: expected detail view")
	}

	next, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = next

	if len(m.stack) != 0 {
		t.Fatalf("stack length = %d, want 0", len(m.stack))
	}
	if m.active.Service != before.Service || m.active.View != before.View {
		t.Fatalf("popped state = %+v, want %+v", m.active, before)
	}
	if m.active.SearchFilter != "repo" || m.active.SelectedIndex != before.SelectedIndex {
		t.Fatalf("popped selection/filter not preserved: %+v", m.active)
	}
	if cmd == nil || !m.loading {
		t.Fatalf("pop must reload the restored view")
	}
}

func TestBackAtRootIsNoOp(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)

	next, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = next

	if cmd != nil || m.loading {
		t.Fatalf("escape at the root must do nothing")
	}
}

func TestStaleReloadWritesItsOwnSlot(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("repo-a"))

	// Drill into the detail view while a list reload is conceptually in
	// flight, then let the list reload resolve.
	m = press(t, m, "enter")
	detailView := m.active
	m.cache.Replace(state.KeyFor(detailView), listData("sha-1", "sha-2"))
	m.active.SelectedIndex = 1

	listKey := state.Key{Service: "ecr", View: service.ViewList}
	m, _ = update(t, m, dataMsg{key: listKey, data: listData("repo-a", "repo-b", "repo-c")})

	// The stale result lands in the list slot.
	listSlot, ok := m.cache.Get(listKey)
	if !ok || len(listSlot.Items) != 3 {
		t.Fatalf("list slot = %v, want 3 items", listSlot.Items)
	}

	// The active detail slot and its selection are untouched.
	detailSlot, ok := m.cache.Get(state.KeyFor(detailView))
	if !ok || len(detailSlot.Items) != 2 {
		t.Fatalf("detail slot = %v, want 2 items", detailSlot.Items)
	}
	if m.active.SelectedIndex != 1 {
		t.Fatalf("SelectedIndex = %d, want untouched 1", m.active.SelectedIndex)
	}
}

func TestLoadErrorSetsSessionErrorUntilNextSuccess(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)

	m, _ = update(t, m, dataMsg{key: state.KeyFor(m.active), err: errors.New("ecr: access denied")})
	if m.errMsg == "" || !strings.Contains(m.errMsg, "access denied") {
		t.Fatalf("errMsg = %q, want the fetch failure", m.errMsg)
	}

	view := m.View()
	if !strings.Contains(view, "access denied") {
		t.Fatalf("error must replace the content pane, got %q", view)
	}

	// Any successful load clears the session error.
	m, _ = update(t, m, dataMsg{key: state.KeyFor(m.active), data: listData("a")})
	if m.errMsg != "" {
		t.Fatalf("errMsg = %q, want cleared after success", m.errMsg)
	}
}

func TestRefreshIsIdempotent(t *testing.T) {
	svc := newNavService("ecr")
	svc.byView[service.ViewList] = listData("a", "b")
	m := newTestModel(svc)

	for i := 0; i < 2; i++ {
		next, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		m = next
		if cmd == nil {
			t.Fatalf("refresh %d issued no load", i)
		}
		m, _ = update(t, m, cmd())
	}

	got, ok := m.cache.Get(state.KeyFor(m.active))
	if !ok || len(got.Items) != 2 {
		t.Fatalf("cache = %v, want the same 2 items after both refreshes", got.Items)
	}
}

func TestRefreshWhileLoadingIsIgnored(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	m.loading = true

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Fatalf("only one reload may be in flight")
	}
}

func TestMoveSelectionSaturates(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("a", "b", "c"))

	m = press(t, m, "down", "down", "down", "down", "down")
	if m.active.SelectedIndex != 2 {
		t.Fatalf("SelectedIndex = %d, want saturated at 2", m.active.SelectedIndex)
	}

	m = press(t, m, "up", "up", "up", "up")
	if m.active.SelectedIndex != 0 {
		t.Fatalf("SelectedIndex = %d, want saturated at 0", m.active.SelectedIndex)
	}
}

func TestCommandSwitchesToServiceRoot(t *testing.T) {
	first := newNavService("ecr")
	second := newNavService("s3")
	m := newTestModel(first, second)
	seed(m, m.active, listData("repo-a"))
	m = press(t, m, "enter") // drill so the stack is non-empty

	next, cmd := update(t, press(t, m, ":", "s", "3"), tea.KeyMsg{Type: tea.KeyEnter})
	m = next

	if m.active.Service != "s3" || m.active.View != service.ViewList {
		t.Fatalf("active = %+v, want s3 list view", m.active)
	}
	if m.active.SearchFilter != "" || m.active.SelectedIndex != 0 {
		t.Fatalf("command switch must reset selection and filter: %+v", m.active)
	}
	if len(m.stack) != 0 {
		t.Fatalf("command switch resets to a root view, stack = %d", len(m.stack))
	}
	if cmd == nil || !m.loading {
		t.Fatalf("command switch must reload the new view")
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	before := m.active

	next, cmd := update(t, press(t, m, ":", "x", "y", "z"), tea.KeyMsg{Type: tea.KeyEnter})
	m = next

	if m.active != before {
		t.Fatalf("unknown command changed the view: %+v", m.active)
	}
	if cmd != nil {
		t.Fatalf("unknown command must be ignored silently")
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
}

func TestQuitCommand(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)

	_, cmd := update(t, press(t, m, ":", "q"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("quit command must produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestCopyOutOfRangeIsNoOp(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("a"))
	m.active.SelectedIndex = 4

	called := false
	m.writeClipboard = func(string) error {
		called = true
		return nil
	}

	m = press(t, m, "c")
	if called || m.copied != nil {
		t.Fatalf("out-of-range copy must be a no-op")
	}
}

func TestClipboardFailureIsSilent(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	seed(m, m.active, listData("a"))

	m.writeClipboard = func(string) error { return errors.New("no display") }

	m = press(t, m, "c")
	if m.copied != nil {
		t.Fatalf("failed copy must not record a status")
	}
}

func TestCopyStatusExpires(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	now := time.Now()
	m.copied = &copyStatus{Label: "web-service", At: now}

	next, _ := m.handleTick(now.Add(copyStatusTTL - time.Millisecond))
	m = next.(Model)
	if m.copied == nil {
		t.Fatalf("status expired early")
	}

	next, _ = m.handleTick(now.Add(copyStatusTTL))
	m = next.(Model)
	if m.copied != nil {
		t.Fatalf("status should expire after %v", copyStatusTTL)
	}
}

func TestTickTriggersPeriodicReload(t *testing.T) {
	svc := newNavService("ecr")
	m := newTestModel(svc)
	m.lastReload = time.Now().Add(-m.refreshEvery - time.Second)

	next, cmd := m.handleTick(time.Now())
	m = next.(Model)
	if !m.loading || cmd == nil {
		t.Fatalf("refresh interval elapsed, expected a reload")
	}

	// While loading, ticks never start another reload.
	next, _ = m.handleTick(time.Now())
	m = next.(Model)
	if svc.loads > 1 {
		t.Fatalf("loads = %d, want at most one in flight", svc.loads)
	}
}
