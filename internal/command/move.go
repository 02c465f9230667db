package command

import (
	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// runMove swaps subject with its adjacent tiling sibling in the requested
// direction, ascending through ancestor splits/workspaces whose tiling
// direction does not match the move's axis until one does.
//
// This covers the common case (reordering within a matching-axis split or
// workspace) but, unlike a full i3-style move, never wraps the container
// into a newly-created split when no matching-direction ancestor has room;
// in that case the container is left in place.
func runMove(state *wmcore.State, pending *reconcile.PendingSync, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok || !c.Kind.IsTilingVariant() {
		return subject, nil
	}

	axis := geometry.TilingDirectionFromDirection(cmd.Direction)
	forward := cmd.Direction == geometry.DirectionRight || cmd.Direction == geometry.DirectionDown

	current := subject
	for {
		cc, ok := state.Tree.Get(current)
		if !ok || !cc.HasParent() {
			return subject, nil
		}
		parent := state.Tree.MustGet(cc.Parent)
		direction, hasDirection := parent.TilingDirection()
		if !hasDirection || direction != axis {
			current = cc.Parent
			continue
		}

		siblings := state.Tree.TilingChildren(parent.ID)
		index := -1
		for i, id := range siblings {
			if id == current {
				index = i
			}
		}
		var targetIndex int
		if forward {
			targetIndex = index + 1
		} else {
			targetIndex = index - 1
		}
		if targetIndex < 0 || targetIndex >= len(siblings) {
			current = cc.Parent
			continue
		}

		res, err := swapTilingChildren(state.Tree, parent.ID, index, targetIndex)
		if err != nil {
			return subject, err
		}
		pending.QueueRedraw(res.Redraw...)
		return subject, nil
	}
}

// swapTilingChildren exchanges the tiling-order position of the children
// at a and b under parent by swapping their slots in parent's children
// (both children keep their own tiling-size and the focus order is left
// as it is; only their order changes).
func swapTilingChildren(t *wmtree.Tree, parentID wmtree.ContainerID, a, b int) (*treeops.Result, error) {
	children := t.TilingChildren(parentID)
	movedID := children[a]
	targetID := children[b]

	parent := t.MustGet(parentID)
	ia, ib := t.IndexOfChild(parentID, movedID), t.IndexOfChild(parentID, targetID)
	parent.Children[ia], parent.Children[ib] = parent.Children[ib], parent.Children[ia]
	return &treeops.Result{Redraw: children}, nil
}

// runFocus shifts focus to the adjacent tiling sibling of subject in the
// requested direction, ascending ancestors the same way runMove does, but
// mutates only focus order, never the tree structure.
func runFocus(state *wmcore.State, pending *reconcile.PendingSync, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok {
		return subject, nil
	}
	if !c.Kind.IsTilingVariant() {
		return subject, nil
	}

	axis := geometry.TilingDirectionFromDirection(cmd.Direction)
	forward := cmd.Direction == geometry.DirectionRight || cmd.Direction == geometry.DirectionDown

	current := subject
	for {
		cc, ok := state.Tree.Get(current)
		if !ok || !cc.HasParent() {
			return subject, nil
		}
		parent := state.Tree.MustGet(cc.Parent)
		direction, hasDirection := parent.TilingDirection()
		if !hasDirection || direction != axis {
			current = cc.Parent
			continue
		}

		siblings := state.Tree.TilingChildren(parent.ID)
		index := -1
		for i, id := range siblings {
			if id == current {
				index = i
			}
		}
		var targetIndex int
		if forward {
			targetIndex = index + 1
		} else {
			targetIndex = index - 1
		}
		if targetIndex < 0 || targetIndex >= len(siblings) {
			current = cc.Parent
			continue
		}

		target := state.Tree.DescendantFocusOrder(siblings[targetIndex])
		treeops.SetFocusedDescendant(state.Tree, target, 0)
		pending.SetFocusChange()
		return target, nil
	}
}

// runMoveWorkspaceInDirection cycles the displayed workspace on subject's
// monitor forward or backward through that monitor's configured workspace
// order (Right/Down = next, Left/Up = previous), wrapping around.
func runMoveWorkspaceInDirection(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	monitorID, ok := state.Tree.Monitor(subject)
	if !ok {
		return subject, nil
	}
	workspaceID, ok := state.Tree.DisplayedWorkspace(monitorID)
	if !ok {
		return subject, nil
	}

	siblingWorkspaces := state.Tree.MustGet(monitorID).Children
	index := state.Tree.IndexOfChild(monitorID, workspaceID)
	if len(siblingWorkspaces) < 2 || index < 0 {
		return subject, nil
	}

	forward := cmd.Direction == geometry.DirectionRight || cmd.Direction == geometry.DirectionDown
	var nextIndex int
	if forward {
		nextIndex = (index + 1) % len(siblingWorkspaces)
	} else {
		nextIndex = (index - 1 + len(siblingWorkspaces)) % len(siblingWorkspaces)
	}

	next := siblingWorkspaces[nextIndex]
	treeops.SetFocusedDescendant(state.Tree, next, 0)
	monitor := state.Tree.MustGet(monitorID)
	moveToFrontOf(monitor, next)
	pending.SetFocusChange()
	pending.QueueRedraw(state.Tree.DescendantWindows(monitorID)...)

	if events != nil {
		deactivated := ipc.ToDTO(state.Tree, workspaceID)
		events.Publish(ipc.Event{Kind: ipc.EventWorkspaceDeactivated, Container: &deactivated})
		activated := ipc.ToDTO(state.Tree, next)
		events.Publish(ipc.Event{Kind: ipc.EventWorkspaceActivated, Container: &activated})
	}

	return state.Tree.DescendantFocusOrder(next), nil
}

func moveToFrontOf(monitor *wmtree.Container, workspaceID wmtree.ContainerID) {
	order := monitor.ChildFocusOrder
	for i, id := range order {
		if id == workspaceID {
			copy(order[1:i+1], order[0:i])
			order[0] = workspaceID
			return
		}
	}
}
