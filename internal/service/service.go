// Package service defines the pluggable resource-browsing contract: every
// browsable AWS resource kind (repositories, images, future kinds) implements
// Service, and the UI drives them uniformly through view states without
// knowing the concrete shape of the items behind them.
package service

import (
	"context"
	"fmt"

	"github.com/jaehong21/ats/internal/theme"
)

// ID uniquely identifies a registered resource kind (e.g. "ecr").
type ID string

// Metadata describes a registered service. Set once at registration time.
type Metadata struct {
	ID          ID
	Name        string
	Description string
	// Command is the alias typed in command mode to switch to this service.
	Command string
}

// ViewType selects which level of a service is being browsed.
type ViewType int

const (
	ViewList ViewType = iota
	ViewDetail
	ViewCustom
)

func (v ViewType) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewCustom:
		return "custom"
	}
	return fmt.Sprintf("viewtype(%d)", int(v))
}

// DrillContext carries the parent entity a detail view is scoped to.
// Only the owning service interprets it.
type DrillContext struct {
	ParentName string
	ParentURI  string
}

// ViewState is the navigational coordinate for what is currently shown:
// which service, which view level, the highlighted row, and the active
// search filter. Drill is set only by a forward transition.
type ViewState struct {
	Service       ID
	View          ViewType
	CustomTag     string
	SelectedIndex int
	SearchFilter  string
	Drill         *DrillContext
}

// NewViewState returns a view state with default selection and no filter.
func NewViewState(id ID, view ViewType) ViewState {
	return ViewState{Service: id, View: view}
}

// Item is one browsable resource. Concrete variants live with the service
// that produced them; the framework only ever asks for the unique id.
type Item interface {
	ItemID() string
}

// Data is one service's cached result set, replaced in full on every
// successful load and never patched incrementally.
type Data struct {
	Items []Item
}

// CopyPayload is what the copy key exports: the clipboard text plus a short
// label for footer feedback.
type CopyPayload struct {
	Content string
	Label   string
}

// RenderContext carries the shared presentation inputs into Render calls so
// services stay pure functions of (context, view, data).
type RenderContext struct {
	Width   int
	Height  int
	Loading bool
	Theme   theme.Theme
}

// Service is the capability contract every resource kind implements.
type Service interface {
	// Metadata returns the static service description. No side effects.
	Metadata() Metadata

	// LoadData performs the remote fetch appropriate to the view: List
	// fetches top-level items, Detail fetches children of view.Drill.
	// An empty result is a valid success; failures carry a human-readable
	// cause via RemoteError.
	LoadData(ctx context.Context, view ViewState) (Data, error)

	// Render produces the content pane for the view. It must not mutate
	// data or view, and must distinguish loading, empty, filtered-empty,
	// and populated states.
	Render(rc RenderContext, view ViewState, data Data) string

	// HandleEnter computes the drill-down transition for the currently
	// selected filtered item. ok is false when no transition applies.
	HandleEnter(view ViewState, data Data) (next ViewState, ok bool)

	// CopyContent resolves the selected filtered item to a clipboard
	// payload. ok is false when the selection is out of range or the item
	// has nothing exportable.
	CopyContent(view ViewState, data Data) (payload CopyPayload, ok bool)

	// MatchesFilter reports whether item matches the filter text. Services
	// choose the textual field; matching is case-insensitive substring.
	MatchesFilter(item Item, filter string) bool
}

// Filter derives the filtered view of data. An empty filter returns the full
// result set in original order.
func Filter(svc Service, data Data, filter string) []Item {
	if filter == "" {
		return data.Items
	}
	var out []Item
	for _, item := range data.Items {
		if svc.MatchesFilter(item, filter) {
			out = append(out, item)
		}
	}
	return out
}

// ClampIndex clamps idx to the valid selection range for n filtered items.
// Out-of-range indices clamp down, never wrap; an empty view selects 0.
func ClampIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}

// RemoteError wraps a failed remote fetch with the service it was issued for.
type RemoteError struct {
	Service ID
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
