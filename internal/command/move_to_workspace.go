package command

import (
	"fmt"

	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// runMoveToWorkspace reparents subject into the workspace named
// cmd.WorkspaceName, grounded on the original move_window_to_workspace
// command: DPI-adjustment flagging, floating-placement re-centering on a
// cross-monitor move, focus retargeting within the source workspace, and
// a focus reset on the destination monitor if its previously-displayed
// workspace is not the destination (the destination is never activated
// by this move alone, per scenario 5).
func runMoveToWorkspace(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok || !c.IsWindow() {
		return subject, nil
	}

	currentWorkspaceID, ok := state.Tree.Workspace(subject)
	if !ok {
		return subject, fmt.Errorf("command: window %d has no workspace", subject)
	}
	currentMonitorID, ok := state.Tree.Monitor(subject)
	if !ok {
		return subject, fmt.Errorf("command: window %d has no monitor", subject)
	}

	targetWorkspaceID, ok := findWorkspaceByName(state.Tree, cmd.WorkspaceName)
	if !ok {
		return subject, fmt.Errorf("command: no workspace named %q", cmd.WorkspaceName)
	}
	if targetWorkspaceID == currentWorkspaceID {
		return subject, nil
	}
	targetMonitorID := state.Tree.MustGet(targetWorkspaceID).Parent

	if dpiDiffers(state.Tree, currentMonitorID, targetMonitorID) {
		setPendingDPIAdjustment(c)
	}

	if targetMonitorID != currentMonitorID {
		recenterFloatingPlacement(state.Tree, c, targetWorkspaceID)
	}

	if nonTiling, ok := c.AsNonTilingWindow(); ok {
		nonTiling.InsertionTarget = nil
	}

	focusWasHere := state.Tree.FocusedContainer() == subject
	targetWasDisplayed := state.Tree.IsDisplayed(targetWorkspaceID)
	prevDisplayed, hadDisplayed := state.Tree.DisplayedWorkspace(targetMonitorID)

	destParent, destIndex := destinationSlot(state.Tree, c, targetWorkspaceID)
	res, err := treeops.MoveWithinTree(state.Tree, subject, destParent, destIndex)
	if err != nil {
		return subject, err
	}

	if !targetWasDisplayed && hadDisplayed {
		treeops.SetFocusedDescendant(state.Tree, prevDisplayed, targetMonitorID)
		pending.SetFocusChange()
	}

	if focusWasHere {
		treeops.SetFocusedDescendant(state.Tree, currentWorkspaceID, 0)
		pending.SetFocusChange()
	}

	pending.QueueRedraw(res.Redraw...)
	pending.QueueRedraw(state.Tree.DescendantWindows(currentWorkspaceID)...)
	pending.QueueRedraw(state.Tree.DescendantWindows(targetWorkspaceID)...)

	return subject, nil
}

func findWorkspaceByName(t *wmtree.Tree, name string) (wmtree.ContainerID, bool) {
	for _, id := range t.DescendantsOfKind(t.RootID(), wmtree.KindWorkspace) {
		if t.MustGet(id).Workspace.Name == name {
			return id, true
		}
	}
	return 0, false
}

func dpiDiffers(t *wmtree.Tree, monitorA, monitorB wmtree.ContainerID) bool {
	a := t.MustGet(monitorA).Monitor
	b := t.MustGet(monitorB).Monitor
	return a.DPI != b.DPI
}

func setPendingDPIAdjustment(c *wmtree.Container) {
	if c.Kind == wmtree.KindTilingWindow {
		c.TilingWindow.HasPendingDPIAdjustment = true
	}
}

func recenterFloatingPlacement(t *wmtree.Tree, c *wmtree.Container, targetWorkspaceID wmtree.ContainerID) {
	nonTiling, ok := c.AsNonTilingWindow()
	if !ok {
		return
	}
	targetRect, err := t.ToRect(targetWorkspaceID)
	if err != nil {
		return
	}
	nonTiling.FloatingPlacement = nonTiling.FloatingPlacement.TranslateToCenter(targetRect)
}

// destinationSlot picks where in the target workspace's tree subject
// lands: next to an existing tiling window if subject is itself tiling,
// otherwise appended directly under the workspace (matching how Floating
// windows always attach directly under their workspace).
func destinationSlot(t *wmtree.Tree, c *wmtree.Container, targetWorkspaceID wmtree.ContainerID) (wmtree.ContainerID, int) {
	if c.Kind == wmtree.KindTilingWindow {
		for _, id := range t.DescendantWindows(targetWorkspaceID) {
			sibling := t.MustGet(id)
			if sibling.Kind == wmtree.KindTilingWindow {
				parentID := sibling.Parent
				return parentID, t.IndexOfChild(parentID, id) + 1
			}
		}
	}
	workspace := t.MustGet(targetWorkspaceID)
	return targetWorkspaceID, len(workspace.Children)
}
