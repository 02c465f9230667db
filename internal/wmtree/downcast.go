package wmtree

import "github.com/1broseidon/tilewm/internal/geometry"

// AsMonitor returns c's MonitorData and true if c is a Monitor.
func (c *Container) AsMonitor() (*MonitorData, bool) {
	if c.Kind != KindMonitor {
		return nil, false
	}
	return c.Monitor, true
}

// AsWorkspace returns c's WorkspaceData and true if c is a Workspace.
func (c *Container) AsWorkspace() (*WorkspaceData, bool) {
	if c.Kind != KindWorkspace {
		return nil, false
	}
	return c.Workspace, true
}

// AsSplit returns c's SplitData and true if c is a Split.
func (c *Container) AsSplit() (*SplitData, bool) {
	if c.Kind != KindSplit {
		return nil, false
	}
	return c.Split, true
}

// AsTilingWindow returns c's TilingWindowData and true if c is a
// TilingWindow.
func (c *Container) AsTilingWindow() (*TilingWindowData, bool) {
	if c.Kind != KindTilingWindow {
		return nil, false
	}
	return c.TilingWindow, true
}

// AsNonTilingWindow returns c's NonTilingWindowData and true if c is a
// NonTilingWindow.
func (c *Container) AsNonTilingWindow() (*NonTilingWindowData, bool) {
	if c.Kind != KindNonTilingWindow {
		return nil, false
	}
	return c.NonTilingWindow, true
}

// IsWindow reports whether c is either window variant.
func (c *Container) IsWindow() bool {
	return c.Kind == KindTilingWindow || c.Kind == KindNonTilingWindow
}

// Handle returns the native handle of a window container, or false if c is
// not a window.
func (c *Container) Handle() (Handle, bool) {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.Handle, true
	case KindNonTilingWindow:
		return c.NonTilingWindow.Handle, true
	default:
		return 0, false
	}
}

// DisplayState returns the display state of a window container, defaulting
// to DisplayShown for non-window containers (they have no concept of
// display state but callers sometimes query uniformly).
func (c *Container) DisplayState() DisplayState {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.DisplayState
	case KindNonTilingWindow:
		return c.NonTilingWindow.DisplayState
	default:
		return DisplayShown
	}
}

// SetDisplayState sets the display state of a window container. No-op on
// non-window containers.
func (c *Container) SetDisplayState(s DisplayState) {
	switch c.Kind {
	case KindTilingWindow:
		c.TilingWindow.DisplayState = s
	case KindNonTilingWindow:
		c.NonTilingWindow.DisplayState = s
	}
}

// State returns the stored logical WindowState of a window container:
// Tiling, Fullscreen or Minimized for a tiling window; Floating,
// Fullscreen or Minimized for a non-tiling one.
func (c *Container) State() WindowState {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.State
	case KindNonTilingWindow:
		return c.NonTilingWindow.State
	default:
		return WindowState{}
	}
}

// SetState overwrites a window's logical state directly, without touching
// PrevState. Used for in-place field updates (e.g. a Fullscreen window's
// maximized flag flipping) that are not a state transition and so should
// not disturb the fallback state a transition-out would restore.
func (c *Container) SetState(s WindowState) {
	switch c.Kind {
	case KindTilingWindow:
		c.TilingWindow.State = s
	case KindNonTilingWindow:
		c.NonTilingWindow.State = s
	}
}

// PrevState returns the window's remembered previous state (used to
// restore from Fullscreen or Minimized), or nil if none is recorded.
func (c *Container) PrevState() *WindowState {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.PrevState
	case KindNonTilingWindow:
		return c.NonTilingWindow.PrevState
	default:
		return nil
	}
}

// SetPrevState records the window's remembered previous state.
func (c *Container) SetPrevState(s *WindowState) {
	switch c.Kind {
	case KindTilingWindow:
		c.TilingWindow.PrevState = s
	case KindNonTilingWindow:
		c.NonTilingWindow.PrevState = s
	}
}

// BorderDelta returns the extra inset/outset a window's border effect
// applies to its computed rect before SetPosition, or a zero delta for
// non-window containers.
func (c *Container) BorderDelta() geometry.RectDelta {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.BorderDelta
	case KindNonTilingWindow:
		return c.NonTilingWindow.BorderDelta
	default:
		return geometry.RectDelta{}
	}
}

// SetBorderDelta sets the border-effect delta of a window container.
// No-op on non-window containers.
func (c *Container) SetBorderDelta(d geometry.RectDelta) {
	switch c.Kind {
	case KindTilingWindow:
		c.TilingWindow.BorderDelta = d
	case KindNonTilingWindow:
		c.NonTilingWindow.BorderDelta = d
	}
}

// HasPendingDPIAdjustment reports whether a tiling window carries the
// pending-DPI-adjustment flag, which a move to a workspace on a monitor
// of different DPI sets and which stays set afterwards; always false for
// non-tiling windows,
// which are not subject to proportional-layout DPI rescaling.
func (c *Container) HasPendingDPIAdjustment() bool {
	if c.Kind == KindTilingWindow {
		return c.TilingWindow.HasPendingDPIAdjustment
	}
	return false
}

// ActiveDrag returns a window's in-progress drag record, or nil if none.
//
// A side table keyed by container id would also work, since a tiling
// window's variant can change mid-drag, but the record lives directly on
// TilingWindowData/NonTilingWindowData instead: winstate's ToFloating and
// ToTiling already copy every other per-window field (handle, display
// state, border delta, done rules) across the variant swap, so carrying
// ActiveDrag the same way costs nothing extra and avoids a second
// id-keyed map that would need its own cleanup on window destruction.
func (c *Container) ActiveDrag() *DragState {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.ActiveDrag
	case KindNonTilingWindow:
		return c.NonTilingWindow.ActiveDrag
	default:
		return nil
	}
}

// SetActiveDrag records or clears a window's in-progress drag.
func (c *Container) SetActiveDrag(d *DragState) {
	switch c.Kind {
	case KindTilingWindow:
		c.TilingWindow.ActiveDrag = d
	case KindNonTilingWindow:
		c.NonTilingWindow.ActiveDrag = d
	}
}

// DoneWindowRules returns the ids of run_once window rules already fired
// for this window, or nil for non-window containers.
func (c *Container) DoneWindowRules() []string {
	switch c.Kind {
	case KindTilingWindow:
		return c.TilingWindow.DoneWindowRules
	case KindNonTilingWindow:
		return c.NonTilingWindow.DoneWindowRules
	default:
		return nil
	}
}

// SetDoneWindowRules replaces the set of fired run_once rule ids. No-op on
// non-window containers.
func (c *Container) SetDoneWindowRules(ids []string) {
	switch c.Kind {
	case KindTilingWindow:
		c.TilingWindow.DoneWindowRules = ids
	case KindNonTilingWindow:
		c.NonTilingWindow.DoneWindowRules = ids
	}
}

// TilingSize returns the tiling-size fraction of a Split or TilingWindow,
// or 0 for any other variant.
func (c *Container) TilingSize() float64 {
	switch c.Kind {
	case KindSplit:
		return c.Split.TilingSize
	case KindTilingWindow:
		return c.TilingWindow.TilingSize
	default:
		return 0
	}
}

// SetTilingSize sets the tiling-size fraction of a Split or TilingWindow.
// No-op on any other variant.
func (c *Container) SetTilingSize(size float64) {
	switch c.Kind {
	case KindSplit:
		c.Split.TilingSize = size
	case KindTilingWindow:
		c.TilingWindow.TilingSize = size
	}
}

// TilingDirection returns the tiling direction of a Workspace or Split, or
// "" for any other variant.
func (c *Container) TilingDirection() (geometry.TilingDirection, bool) {
	switch c.Kind {
	case KindWorkspace:
		return c.Workspace.TilingDirection, true
	case KindSplit:
		return c.Split.TilingDirection, true
	default:
		return "", false
	}
}
