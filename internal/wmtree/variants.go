package wmtree

import "github.com/1broseidon/tilewm/internal/geometry"

// Handle is an opaque native window or monitor handle, copied by value.
// The platform adapter is the only package that interprets it.
type Handle uint32

// MonitorData holds the Monitor-variant fields.
type MonitorData struct {
	Handle       Handle
	Rect         geometry.Rect // native monitor rect
	WorkingRect  geometry.Rect // rect minus OS-reserved space (taskbars, docks)
	DPI          int
	ScaleFactor  float64
	DeviceName   string
	DevicePath   string
	HardwareID   string
}

// WorkspaceData holds the Workspace-variant fields.
type WorkspaceData struct {
	Name             string
	DisplayName      string
	KeepAlive        bool
	TilingDirection  geometry.TilingDirection
	InnerGap         geometry.LengthValue
	OuterGap         geometry.RectDelta
	BoundMonitorIndex *int // config's workspaces[].bind_to_monitor, nil if unbound
}

// SplitData holds the Split-variant fields.
type SplitData struct {
	TilingDirection geometry.TilingDirection
	TilingSize      float64 // fraction of parent's extent along TilingDirection, in [0,1]
}

// DisplayState is the four-value visibility cycle a window passes through
// as its workspace is shown or hidden.
type DisplayState int

const (
	DisplayHidden DisplayState = iota
	DisplayShowing
	DisplayShown
	DisplayHiding
)

func (d DisplayState) String() string {
	switch d {
	case DisplayHidden:
		return "hidden"
	case DisplayShowing:
		return "showing"
	case DisplayShown:
		return "shown"
	case DisplayHiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// IsVisible reports whether the platform should currently be asked to show
// the window (Showing and Shown both map to a visible set_position call).
func (d DisplayState) IsVisible() bool {
	return d == DisplayShowing || d == DisplayShown
}

// DragOperation classifies an in-progress pointer drag once its direction
// is known (width/height unchanged => Moving, otherwise Resizing).
type DragOperation int

const (
	DragOperationNone DragOperation = iota
	DragOperationMoving
	DragOperationResizing
)

// DragState is the record kept on a window while the user has a
// mouse-driven move or resize in progress; see Container.ActiveDrag for
// why it lives on the variant rather than a separate side table.
type DragState struct {
	Operation  DragOperation
	StartFrame geometry.Rect
}

// WindowStateKind discriminates the NonTilingWindow/TilingWindow state
// union.
type WindowStateKind int

const (
	WindowStateTiling WindowStateKind = iota
	WindowStateFloating
	WindowStateFullscreen
	WindowStateMinimized
)

func (k WindowStateKind) String() string {
	switch k {
	case WindowStateTiling:
		return "tiling"
	case WindowStateFloating:
		return "floating"
	case WindowStateFullscreen:
		return "fullscreen"
	case WindowStateMinimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// WindowState is the sum type `Tiling | Floating{..} | Fullscreen{..} |
// Minimized`. Only the fields relevant to Kind are meaningful.
type WindowState struct {
	Kind        WindowStateKind
	Centered    bool // Floating only
	Maximized   bool // Fullscreen only
	ShownOnTop  bool // Floating and Fullscreen
}

// TilingWindowState is the WindowState for a window currently tiled.
func TilingWindowState() WindowState {
	return WindowState{Kind: WindowStateTiling}
}

// InsertionTarget is a (parent, index) hint a non-tiling window remembers
// so a later SetTiling command can restore it to its former position.
type InsertionTarget struct {
	Parent ContainerID
	Index  int
}

// TilingWindowData holds the TilingWindow-variant fields.
//
// A tiling window can carry a Fullscreen or Minimized State without being
// restructured out of its split; only a
// transition to Floating detaches it into a NonTilingWindow, because only
// floating placement needs to escape the split's proportional layout.
// State is therefore WindowStateTiling, WindowStateFullscreen, or
// WindowStateMinimized — never WindowStateFloating.
type TilingWindowData struct {
	Handle                  Handle
	TilingSize              float64
	InnerGap                geometry.LengthValue
	DisplayState            DisplayState
	BorderDelta             geometry.RectDelta
	HasPendingDPIAdjustment bool
	State                   WindowState
	PrevState               *WindowState // state to fall back to on Fullscreen/Minimized -> prev
	FloatingPlacement       geometry.Rect // preserved across Tiling->Floating->Tiling round trips
	DoneWindowRules         []string
	ActiveDrag              *DragState
}

// NonTilingWindowData holds the NonTilingWindow-variant fields.
type NonTilingWindowData struct {
	Handle            Handle
	State             WindowState // Floating, Fullscreen, or Minimized
	FloatingPlacement geometry.Rect
	InsertionTarget   *InsertionTarget
	PrevState         *WindowState
	BorderDelta       geometry.RectDelta
	DisplayState      DisplayState
	DoneWindowRules   []string
	ActiveDrag        *DragState
}
