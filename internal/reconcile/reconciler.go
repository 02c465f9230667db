package reconcile

import (
	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/platform"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// Run drains pending against state in the five-step order: redraw, cursor
// jump, focus change, window effects, clear. A platform call failure warns
// and continues rather than aborting the pass, since a single stuck window
// should never block the others from reconciling.
func Run(state *wmcore.State, pending *PendingSync, events ipc.Sink) {
	if pending.IsEmpty() {
		return
	}

	redrawContainers(state, pending)

	if pending.cursorJump {
		resolveCursorJump(state)
	}

	prevFocused := state.RecentFocused
	if pending.focusChange {
		applyFocusChange(state, events)
	}

	applyWindowEffects(state, pending, prevFocused)

	pending.clear()
}

// redrawContainers walks each queued container's window descendants and
// repositions them.
func redrawContainers(state *wmcore.State, pending *PendingSync) {
	for _, id := range pending.redrawSet() {
		for _, windowID := range state.Tree.DescendantWindows(id) {
			redrawWindow(state, windowID)
		}
		// The queued container itself may be a window (e.g. a single
		// TilingWindow resized in place), in which case it has no window
		// descendants and must be redrawn directly.
		if c, ok := state.Tree.Get(id); ok && c.IsWindow() {
			redrawWindow(state, id)
		}
	}
}

func redrawWindow(state *wmcore.State, windowID wmtree.ContainerID) {
	c, ok := state.Tree.Get(windowID)
	if !ok {
		return
	}
	handle, ok := c.Handle()
	if !ok {
		return
	}

	targetDisplay(state.Tree, windowID, c)

	rect, err := state.Tree.ToRect(windowID)
	if err != nil {
		state.Logger.Warn("reconcile: failed to compute rect", "window", windowID, "error", err)
		return
	}
	rect = rect.ApplyDelta(c.BorderDelta(), dpiScale(state, windowID))

	wire, visible := displayWire(c.DisplayState())

	err = state.Backend.SetPosition(handle, wire, rect, visible, c.HasPendingDPIAdjustment())
	if err != nil {
		state.Logger.Warn("reconcile: set_position failed", "window", windowID, "handle", handle, "error", err)
		return
	}

	advanceDisplayState(state.Tree, windowID, c)
}

// targetDisplay moves a window's display-state onto the Showing/Hiding edge
// implied by its workspace's current displayed-ness: Hidden/Hiding windows
// on a now-displayed workspace start Showing; Shown/Showing windows on a
// now-hidden workspace start Hiding.
func targetDisplay(t *wmtree.Tree, windowID wmtree.ContainerID, c *wmtree.Container) {
	workspaceID, ok := t.Workspace(windowID)
	if !ok {
		return
	}
	displayed := t.IsDisplayed(workspaceID)
	cur := c.DisplayState()
	switch {
	case (cur == wmtree.DisplayHidden || cur == wmtree.DisplayHiding) && displayed:
		c.SetDisplayState(wmtree.DisplayShowing)
	case (cur == wmtree.DisplayShown || cur == wmtree.DisplayShowing) && !displayed:
		c.SetDisplayState(wmtree.DisplayHiding)
	}
}

func dpiScale(state *wmcore.State, id wmtree.ContainerID) float64 {
	monitorID, ok := state.Tree.Monitor(id)
	if !ok {
		return 1
	}
	return state.Tree.MustGet(monitorID).Monitor.ScaleFactor
}

// displayWire maps a container's DisplayState to the wire visibility
// instruction the backend understands.
func displayWire(s wmtree.DisplayState) (platform.DisplayStateWire, bool) {
	switch s {
	case wmtree.DisplayHidden:
		return platform.WireHidden, false
	case wmtree.DisplayShowing:
		return platform.WireShowing, true
	case wmtree.DisplayShown:
		return platform.WireShown, true
	case wmtree.DisplayHiding:
		return platform.WireHiding, false
	default:
		return platform.WireHidden, false
	}
}

// advanceDisplayState moves a just-redrawn window one step along the
// Showing->Shown or Hiding->Hidden edge of the display-state cycle; the
// Hidden->Showing and Shown->Hiding edges are taken earlier in the same
// redraw, by targetDisplay.
func advanceDisplayState(t *wmtree.Tree, id wmtree.ContainerID, c *wmtree.Container) {
	switch c.DisplayState() {
	case wmtree.DisplayShowing:
		t.MustGet(id).SetDisplayState(wmtree.DisplayShown)
	case wmtree.DisplayHiding:
		t.MustGet(id).SetDisplayState(wmtree.DisplayHidden)
	}
}

// resolveCursorJump warps the pointer to the center of the now-focused
// container, subject to the configured trigger.
func resolveCursorJump(state *wmcore.State) {
	if !state.Config.General.CursorJumpEnabled {
		return
	}

	focusedID := state.Tree.FocusedContainer()
	if state.Config.General.CursorJumpTrigger == config.CursorJumpMonitorFocus {
		focusedMonitor, ok := state.Tree.Monitor(focusedID)
		if !ok {
			return
		}
		prevMonitor, ok := state.Tree.Monitor(state.RecentFocused)
		if ok && prevMonitor == focusedMonitor {
			return
		}
	}

	rect, err := state.Tree.ToRect(focusedID)
	if err != nil {
		return
	}
	if err := state.Backend.SetCursorPos(platform.Point(rect.CenterPoint())); err != nil {
		state.Logger.Warn("reconcile: set_cursor_pos failed", "error", err)
	}
}

// applyFocusChange asks the platform to raise the focused window, emits a
// FocusChanged event, and updates the RecentFocused cache.
func applyFocusChange(state *wmcore.State, events ipc.Sink) {
	focusedID := state.Tree.FocusedContainer()
	c, ok := state.Tree.Get(focusedID)
	if !ok {
		return
	}

	if handle, ok := c.Handle(); ok {
		if err := state.Backend.SetForeground(handle); err != nil {
			state.Logger.Warn("reconcile: set_foreground failed", "window", focusedID, "error", err)
		}
	}

	if events != nil {
		dto := ipc.ToDTO(state.Tree, focusedID)
		events.Publish(ipc.Event{Kind: ipc.EventFocusChanged, Container: &dto})
	}

	state.RecentFocused = focusedID
}

// applyWindowEffects reapplies the focused-window border effect to the
// focused window, and the unfocused effect either to just the
// previously-focused window, or to every other window in the tree when
// resetWindowEffects is set.
func applyWindowEffects(state *wmcore.State, pending *PendingSync, prevFocused wmtree.ContainerID) {
	if !pending.focusChange && !pending.resetWindowEffects {
		return
	}

	focusedID := state.Tree.FocusedContainer()
	applyEffect(state, focusedID, state.Config.WindowEffects.FocusedWindow)

	if pending.resetWindowEffects {
		for _, id := range state.Tree.DescendantWindows(state.Tree.RootID()) {
			if id == focusedID {
				continue
			}
			if c, ok := state.Tree.Get(id); ok && c.DisplayState().IsVisible() {
				applyEffect(state, id, state.Config.WindowEffects.OtherWindows)
			}
		}
		return
	}

	if pending.focusChange && prevFocused != 0 && prevFocused != focusedID {
		applyEffect(state, prevFocused, state.Config.WindowEffects.OtherWindows)
	}
}

func applyEffect(state *wmcore.State, id wmtree.ContainerID, group config.WindowEffectGroup) {
	c, ok := state.Tree.Get(id)
	if !ok {
		return
	}
	handle, ok := c.Handle()
	if !ok {
		return
	}
	var color *geometry.Color
	if group.BorderEnabled {
		clr := group.BorderColor
		color = &clr
	}
	if err := state.Backend.SetBorderColor(handle, color); err != nil {
		state.Logger.Warn("reconcile: set_border_color failed", "window", id, "error", err)
	}
}
