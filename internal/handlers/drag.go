package handlers

import (
	"github.com/1broseidon/tilewm/internal/command"
	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/winstate"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// handleWindowMovedOrResizedStart attaches an active-drag record so the
// next WindowLocationChanged events can classify the drag.
func handleWindowMovedOrResizedStart(state *wmcore.State, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}
	c := state.Tree.MustGet(windowID)
	startFrame, err := state.Tree.ToRect(windowID)
	if err != nil {
		return
	}
	c.SetActiveDrag(&wmtree.DragState{Operation: wmtree.DragOperationNone, StartFrame: startFrame})
}

// handleWindowMovedOrResizedEnd clears the active-drag record. A window
// that got drag-floated mid-move is left floating where it was dropped
// unless the cursor sits inside the rect of its workspace, in which case
// it is reattached next to the tiling window under the cursor, or
// appended to the workspace when no tiling window is under it.
func handleWindowMovedOrResizedEnd(state *wmcore.State, pending *reconcile.PendingSync, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}
	c, ok := state.Tree.Get(windowID)
	if !ok {
		return
	}
	drag := c.ActiveDrag()
	c.SetActiveDrag(nil)
	if drag == nil || drag.Operation != wmtree.DragOperationMoving || c.Kind != wmtree.KindNonTilingWindow {
		return
	}

	point, err := state.Backend.MousePosition()
	if err != nil {
		return
	}
	workspaceID, ok := state.Tree.Workspace(windowID)
	if !ok {
		return
	}
	parentID, index, ok := hitTestTilingContainer(state.Tree, workspaceID, geometry.Point(point))
	if !ok {
		return
	}

	c.NonTilingWindow.InsertionTarget = &wmtree.InsertionTarget{Parent: parentID, Index: index}
	res, err := winstate.ToTiling(state.Tree, windowID, state.Config.Gaps.InnerGap)
	if err != nil {
		state.Logger.Warn("handlers: drag-drop to tiling failed", "window", windowID, "error", err)
		return
	}
	pending.QueueRedraw(res.Redraw...)
}

// hitTestTilingContainer finds the tiling container (Split or
// TilingWindow) within workspaceID whose rect contains point, and returns
// the (parent, index) at which a new sibling should be inserted next to
// it. If none contains point but the workspace rect does, it returns the
// end of the workspace's children.
func hitTestTilingContainer(t *wmtree.Tree, workspaceID wmtree.ContainerID, point geometry.Point) (wmtree.ContainerID, int, bool) {
	for _, id := range t.TilingChildren(workspaceID) {
		if parentID, index, ok := hitTestWithin(t, id, point); ok {
			return parentID, index, true
		}
	}
	rect, err := t.ToRect(workspaceID)
	if err == nil && rect.ContainsPoint(point) {
		return workspaceID, len(t.MustGet(workspaceID).Children), true
	}
	return 0, 0, false
}

func hitTestWithin(t *wmtree.Tree, id wmtree.ContainerID, point geometry.Point) (wmtree.ContainerID, int, bool) {
	c := t.MustGet(id)
	if c.Kind == wmtree.KindSplit {
		for _, childID := range t.TilingChildren(id) {
			if parentID, index, ok := hitTestWithin(t, childID, point); ok {
				return parentID, index, true
			}
		}
		return 0, 0, false
	}

	rect, err := t.ToRect(id)
	if err != nil || !rect.ContainsPoint(point) {
		return 0, 0, false
	}
	parentID := c.Parent
	index := t.IndexOfChild(parentID, id)
	return parentID, index + 1, true
}

// handleWindowLocationChanged refreshes a window's frame/minimized/
// maximized flags and dispatches on its current state.
func handleWindowLocationChanged(state *wmcore.State, pending *reconcile.PendingSync, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}
	c, ok := state.Tree.Get(windowID)
	if !ok {
		return
	}

	if drag := c.ActiveDrag(); drag != nil && drag.Operation == wmtree.DragOperationNone {
		handleDragStarted(state, pending, c, windowID, drag, ev)
		// The container may have just become a NonTilingWindow; re-fetch.
		c, ok = state.Tree.Get(windowID)
		if !ok {
			return
		}
	}

	isFullscreen := false
	if monitorID, ok := state.Tree.Monitor(windowID); ok {
		monitor := state.Tree.MustGet(monitorID)
		isFullscreen = ev.Frame == monitor.Monitor.Rect
	}

	switch c.State().Kind {
	case wmtree.WindowStateFullscreen:
		dispatchFullscreenLocationChange(state, pending, c, windowID, ev, isFullscreen)
	case wmtree.WindowStateFloating:
		dispatchFloatingLocationChange(state, pending, windowID, ev)
	default:
		if ev.IsMaximized || isFullscreen {
			shownOnTop := state.Config.WindowBehavior.StateDefaults.ShownOnTop
			res, err := winstate.ToFullscreen(state.Tree, windowID, ev.IsMaximized || isFullscreen, shownOnTop)
			if err != nil {
				state.Logger.Warn("handlers: to_fullscreen failed", "window", windowID, "error", err)
				return
			}
			pending.QueueRedraw(res.Redraw...)
		}
	}
}

func handleDragStarted(state *wmcore.State, pending *reconcile.PendingSync, c *wmtree.Container, windowID wmtree.ContainerID, drag *wmtree.DragState, ev Event) {
	isMove := ev.Frame.Width == drag.StartFrame.Width && ev.Frame.Height == drag.StartFrame.Height
	operation := wmtree.DragOperationResizing
	if isMove {
		operation = wmtree.DragOperationMoving
	}
	c.SetActiveDrag(&wmtree.DragState{Operation: operation, StartFrame: drag.StartFrame})

	if operation != wmtree.DragOperationMoving || c.Kind != wmtree.KindTilingWindow {
		return
	}

	res, err := winstate.ToFloating(state.Tree, windowID, false, false)
	if err != nil {
		state.Logger.Warn("handlers: drag-to-float failed", "window", windowID, "error", err)
		return
	}
	pending.QueueRedraw(res.Redraw...)

	floated := state.Tree.MustGet(windowID)
	floated.NonTilingWindow.FloatingPlacement = ev.Frame
	floated.SetActiveDrag(&wmtree.DragState{Operation: operation, StartFrame: drag.StartFrame})
}

func dispatchFullscreenLocationChange(state *wmcore.State, pending *reconcile.PendingSync, c *wmtree.Container, windowID wmtree.ContainerID, ev Event, isFullscreen bool) {
	s := c.State()
	if !isFullscreen && !ev.IsMaximized && !ev.IsMinimized {
		res, err := winstate.FromFullscreen(state.Tree, windowID, command.DefaultWindowState(state))
		if err != nil {
			state.Logger.Warn("handlers: from_fullscreen failed", "window", windowID, "error", err)
			return
		}
		pending.QueueRedraw(res.Redraw...)
		return
	}
	if ev.IsMaximized != s.Maximized {
		s.Maximized = ev.IsMaximized
		c.SetState(s)
		pending.QueueRedraw(windowID)
	}
}

func dispatchFloatingLocationChange(state *wmcore.State, pending *reconcile.PendingSync, windowID wmtree.ContainerID, ev Event) {
	c := state.Tree.MustGet(windowID)
	current := c.NonTilingWindow.FloatingPlacement
	if ev.Frame == current {
		return
	}
	c.NonTilingWindow.FloatingPlacement = ev.Frame
	pending.QueueRedraw(windowID)

	currentMonitorID, ok := state.Tree.Monitor(windowID)
	if !ok {
		return
	}
	targetMonitorID, ok := nearestMonitorByOverlap(state.Tree, ev.Frame)
	if !ok || targetMonitorID == currentMonitorID {
		return
	}
	targetWorkspaceID, ok := state.Tree.DisplayedWorkspace(targetMonitorID)
	if !ok {
		return
	}
	res, err := treeops.MoveWithinTree(state.Tree, windowID, targetWorkspaceID, -1)
	if err != nil {
		state.Logger.Warn("handlers: cross-monitor float reparent failed", "window", windowID, "error", err)
		return
	}
	pending.QueueRedraw(res.Redraw...)
}

// nearestMonitorByOverlap returns the monitor whose rect shares the most
// area with rect, used to decide which workspace a dragged floating
// window crossed into.
func nearestMonitorByOverlap(t *wmtree.Tree, rect geometry.Rect) (wmtree.ContainerID, bool) {
	var best wmtree.ContainerID
	bestArea := -1
	found := false
	for _, id := range t.DescendantsOfKind(t.RootID(), wmtree.KindMonitor) {
		monitor := t.MustGet(id)
		area := overlapArea(rect, monitor.Monitor.Rect)
		if area > bestArea {
			bestArea = area
			best = id
			found = true
		}
	}
	return best, found
}

func overlapArea(a, b geometry.Rect) int {
	left := max(a.X, b.X)
	top := max(a.Y, b.Y)
	right := min(a.X+a.Width, b.X+b.Width)
	bottom := min(a.Y+a.Height, b.Y+b.Height)
	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}
