// Package platform declares the contract the core requires from the
// host window system.
// The core only ever talks to this interface; internal/platform/x11adapter
// is the concrete Linux/X11 implementation.
package platform

import "github.com/1broseidon/tilewm/internal/geometry"

// Handle is an opaque native window or monitor identifier, copied by
// value and otherwise meaningless to the core.
type Handle uint32

// Point is a screen coordinate.
type Point struct {
	X, Y int
}

// Monitor describes one physical display as the platform reports it.
type Monitor struct {
	Handle      Handle
	Rect        geometry.Rect // native rect
	WorkingRect geometry.Rect // rect minus OS-reserved space
	DPI         int
	ScaleFactor float64
	DeviceName  string
	DevicePath  string
	HardwareID  string
}

// WindowInfo is the platform-reported metadata about a top-level window,
// refreshed by the adapter's refresh_* family on demand.
type WindowInfo struct {
	Handle      Handle
	Title       string
	ClassName   string
	ProcessName string
	Frame       geometry.Rect
	IsMinimized bool
	IsMaximized bool
	Manageable  bool
}

// DisplayStateWire is the visibility instruction sent with set_position,
// deliberately a narrower type than wmtree.DisplayState so the platform
// package stays independent of the tree package.
type DisplayStateWire int

const (
	WireHidden DisplayStateWire = iota
	WireShowing
	WireShown
	WireHiding
)

// Backend abstracts every window-system operation the core issues.
// Every method is synchronous; failures are returned, never panicked
//.
type Backend interface {
	ForegroundWindow() (Handle, error)
	DesktopWindow() (Handle, error)
	SetForeground(h Handle) error

	MousePosition() (Point, error)
	SetCursorPos(p Point) error

	Monitors() ([]Monitor, error)

	RefreshWindowInfo(h Handle) (WindowInfo, error)
	IsFullscreen(h Handle, monitorRect geometry.Rect) (bool, error)

	SetPosition(h Handle, state DisplayStateWire, rect geometry.Rect, visible bool, hasPendingDPIAdjustment bool) error
	SetBorderColor(h Handle, color *geometry.Color) error

	Close(h Handle) error
	Minimize(h Handle) error
}
